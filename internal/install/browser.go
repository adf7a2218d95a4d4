package install

import "context"

type outcomeKey struct{}

// WithReportedOutcome attaches the choice the browser reported after it ran
// its own prompt.
func WithReportedOutcome(ctx context.Context, outcome Outcome) context.Context {
	return context.WithValue(ctx, outcomeKey{}, outcome)
}

// BrowserHandle stands for a prompt held by the browser. The browser shows
// the dialog itself and reports the answer with the trigger request.
type BrowserHandle struct{}

// Prompt returns the reported outcome; no report counts as dismissed.
func (BrowserHandle) Prompt(ctx context.Context) (Outcome, error) {
	if o, ok := ctx.Value(outcomeKey{}).(Outcome); ok && o == OutcomeAccepted {
		return OutcomeAccepted, nil
	}
	return OutcomeDismissed, nil
}
