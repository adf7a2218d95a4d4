package view

import (
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// RichText turns the admin-authored HTML fields into template values.
//
// By default markup is run through a bluemonday UGC policy: formatting,
// links, images and tables survive, scripts and event handlers do not.
// With raw set the HTML is passed through untouched.
type RichText struct {
	policy *bluemonday.Policy
	raw    bool
}

// NewRichText creates a RichText. raw disables sanitising.
func NewRichText(raw bool) *RichText {
	p := bluemonday.UGCPolicy()
	p.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td")
	p.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
	p.AllowElements("u", "s", "sub", "sup", "mark")
	p.AllowAttrs("style").OnElements("p", "span", "div", "table", "th", "td")
	p.AllowStyles("color", "text-align", "font-weight").Globally()

	return &RichText{policy: p, raw: raw}
}

// HTML returns s ready to be rendered without escaping.
func (r *RichText) HTML(s string) template.HTML {
	if s == "" {
		return ""
	}
	if r.raw {
		return template.HTML(s)
	}
	return template.HTML(r.policy.Sanitize(s))
}

// FontCSS returns the custom @font-face block for a <style> element. The
// CSS is trusted admin input. Every "<" is rewritten as the CSS escape \3c
// so no tag, however it is nested or split, can end the style element.
func FontCSS(css string) template.CSS {
	return template.CSS(strings.ReplaceAll(css, "<", `\3c `))
}

var fontNameUnsafe = regexp.MustCompile(`["'\\<>{};]`)

// FontFamily returns a font-family value naming family first, followed by
// the default stack. An empty family yields "".
func FontFamily(family string) template.CSS {
	family = strings.TrimSpace(fontNameUnsafe.ReplaceAllString(family, ""))
	if family == "" {
		return ""
	}
	return template.CSS(`"` + family + `", system-ui, sans-serif`)
}
