package state

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MrSnakeDoc/pali/internal/content"
	"github.com/MrSnakeDoc/pali/internal/domain"
	"github.com/MrSnakeDoc/pali/internal/logger"
	"github.com/MrSnakeDoc/pali/internal/store"
)

func open(t *testing.T, backend store.Backend, id string) *Container {
	t.Helper()
	log := logger.New("error", false)
	c := Open(context.Background(), store.NewAdapter(backend, log, id), Options{
		NotifyAfter: 50 * time.Millisecond,
		Logger:      log,
	})
	t.Cleanup(c.Close)
	return c
}

func TestOpenDefaults(t *testing.T) {
	c := open(t, store.NewMemoryBackend(), "p1")

	if got := c.Theme.Get(); got != domain.ThemeLight {
		t.Errorf("Theme = %q, want light", got)
	}
	if got := c.Lang.Get(); got != domain.LangMyanmar {
		t.Errorf("Lang = %q, want my", got)
	}
	if c.User.Get() != nil {
		t.Errorf("User = %v, want nil", *c.User.Get())
	}
	if c.IsAdmin.Get() {
		t.Error("IsAdmin = true, want false")
	}
	got := c.Content.Get()
	if got.ContactViber != domain.DefaultContactViber || got.Videos == nil || len(got.Videos) != 0 {
		t.Errorf("Content = %+v, want default content", got)
	}
	if c.UI.ActivePage() != domain.PageVideos {
		t.Errorf("ActivePage = %q, want videos", c.UI.ActivePage())
	}
}

func TestOpenSeedContent(t *testing.T) {
	seed := domain.DefaultContent()
	seed.Schedule = "<p>Mon</p>"
	log := logger.New("error", false)

	c := Open(context.Background(), store.NewAdapter(store.NewMemoryBackend(), log, "p1"), Options{
		SeedContent: &seed,
		Logger:      log,
	})
	defer c.Close()

	if got := c.Content.Get().Schedule; got != "<p>Mon</p>" {
		t.Errorf("Schedule = %q, want seeded value", got)
	}
}

func TestSetPersistsAndSurvivesReload(t *testing.T) {
	backend := store.NewMemoryBackend()
	ctx := context.Background()

	c := open(t, backend, "p1")
	name := "Maya"
	c.User.Set(ctx, &name)
	c.Theme.Set(ctx, domain.ThemeDark)
	c.Lang.Set(ctx, domain.LangEnglish)
	c.IsAdmin.Set(ctx, true)
	c.Content.Update(ctx, func(v domain.Content) domain.Content {
		v.Videos = append(v.Videos, domain.Video{ID: "v1", Title: "Intro"})
		return v
	})

	reloaded := open(t, backend, "p1")
	if u := reloaded.User.Get(); u == nil || *u != "Maya" {
		t.Errorf("reloaded User = %v, want Maya", u)
	}
	if reloaded.Theme.Get() != domain.ThemeDark {
		t.Errorf("reloaded Theme = %q", reloaded.Theme.Get())
	}
	if reloaded.Lang.Get() != domain.LangEnglish {
		t.Errorf("reloaded Lang = %q", reloaded.Lang.Get())
	}
	if !reloaded.IsAdmin.Get() {
		t.Error("reloaded IsAdmin = false")
	}
	if v := reloaded.Content.Get().Videos; len(v) != 1 || v[0].Title != "Intro" {
		t.Errorf("reloaded Videos = %+v", v)
	}
	// Transient state starts over.
	if reloaded.UI.ActivePage() != domain.PageVideos {
		t.Errorf("reloaded ActivePage = %q", reloaded.UI.ActivePage())
	}
}

func TestSlicesAreIndependent(t *testing.T) {
	backend := store.NewMemoryBackend()
	ctx := context.Background()
	log := logger.New("error", false)

	// A corrupt content blob must not take the other slices with it.
	_ = backend.Set(ctx, store.ProfileKey("p1", store.KeyAppData), []byte("{not json"))
	raw, _ := json.Marshal(domain.ThemeDark)
	_ = backend.Set(ctx, store.ProfileKey("p1", store.KeyTheme), raw)

	c := Open(ctx, store.NewAdapter(backend, log, "p1"), Options{Logger: log})
	defer c.Close()

	if c.Theme.Get() != domain.ThemeDark {
		t.Errorf("Theme = %q, want dark", c.Theme.Get())
	}
	if c.Content.Get().ContactViber != domain.DefaultContactViber {
		t.Errorf("Content = %+v, want default after corrupt blob", c.Content.Get())
	}
}

func TestUnknownEnumsFallBack(t *testing.T) {
	backend := store.NewMemoryBackend()
	ctx := context.Background()
	_ = backend.Set(ctx, store.ProfileKey("p1", store.KeyTheme), []byte(`"sepia"`))
	_ = backend.Set(ctx, store.ProfileKey("p1", store.KeyLang), []byte(`"fr"`))

	c := open(t, backend, "p1")
	if c.Theme.Get() != domain.ThemeLight {
		t.Errorf("Theme = %q, want light", c.Theme.Get())
	}
	if c.Lang.Get() != domain.LangMyanmar {
		t.Errorf("Lang = %q, want my", c.Lang.Get())
	}
}

func TestGetReturnsCopy(t *testing.T) {
	c := open(t, store.NewMemoryBackend(), "p1")
	ctx := context.Background()
	c.Content.Update(ctx, func(v domain.Content) domain.Content {
		v.Teachers = []domain.Teacher{{ID: "t1", Name: "U Ba"}}
		return v
	})

	got := c.Content.Get()
	got.Teachers[0].Name = "changed"

	if c.Content.Get().Teachers[0].Name != "U Ba" {
		t.Error("mutating a Get() result changed the stored value")
	}
}

func TestSubscribe(t *testing.T) {
	c := open(t, store.NewMemoryBackend(), "p1")
	ctx := context.Background()

	var seen []domain.Theme
	unsubscribe := c.Theme.Subscribe(func(th domain.Theme) { seen = append(seen, th) })

	c.Theme.Update(ctx, domain.Theme.Toggle)
	c.Theme.Update(ctx, domain.Theme.Toggle)
	unsubscribe()
	c.Theme.Set(ctx, domain.ThemeDark)

	if len(seen) != 2 || seen[0] != domain.ThemeDark || seen[1] != domain.ThemeLight {
		t.Errorf("subscriber saw %v, want [dark light]", seen)
	}
}

func TestDraftLifecycle(t *testing.T) {
	c := open(t, store.NewMemoryBackend(), "p1")
	ctx := context.Background()

	c.SetActivePage(domain.PageAdmin)
	d := c.Draft()
	d.AddTeacher(domain.Teacher{ID: "t1", Name: "Daw Mya"})

	if text, visible := c.UI.Notifier.Current(); !visible || text == "" {
		t.Errorf("adding an item should show the notification, got (%q, %v)", text, visible)
	}
	if !c.UI.Cue.Take() {
		t.Error("adding an item should queue the audio cue")
	}
	if len(c.Content.Get().Teachers) != 0 {
		t.Fatal("draft edits leaked into committed content")
	}

	if !c.CommitDraft(ctx) {
		t.Fatal("CommitDraft() = false with an open draft")
	}
	if got := c.Content.Get().Teachers; len(got) != 1 || got[0].Name != "Daw Mya" {
		t.Errorf("committed Teachers = %+v", got)
	}

	// Leaving admin throws away uncommitted work.
	c.Draft().AddVideo(domain.Video{ID: "v1"})
	c.SetActivePage(domain.PageVideos)
	if c.UI.CurrentDraft() != nil {
		t.Error("draft should be discarded when leaving admin")
	}
	if c.CommitDraft(ctx) {
		t.Error("CommitDraft() = true without a draft")
	}
	if len(c.Content.Get().Videos) != 0 {
		t.Error("discarded draft was committed")
	}
}

func TestDraftRemoveNeedsConfirmation(t *testing.T) {
	c := open(t, store.NewMemoryBackend(), "p1")
	ctx := context.Background()
	c.Content.Update(ctx, func(v domain.Content) domain.Content {
		v.Videos = []domain.Video{{ID: "v1"}, {ID: "v2"}}
		return v
	})

	d := c.Draft()
	removed, err := d.Remove(content.SectionVideos, "v1", content.ConfirmFunc(func(string) bool { return false }))
	if err != nil || removed {
		t.Fatalf("declined Remove() = (%v, %v)", removed, err)
	}
	c.CommitDraft(ctx)
	if len(c.Content.Get().Videos) != 2 {
		t.Errorf("declined removal changed content: %+v", c.Content.Get().Videos)
	}
}

func TestResetClearsStore(t *testing.T) {
	backend := store.NewMemoryBackend()
	ctx := context.Background()

	c := open(t, backend, "p1")
	c.Theme.Set(ctx, domain.ThemeDark)
	c.IsAdmin.Set(ctx, true)

	if err := c.Reset(ctx); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if backend.Len() != 0 {
		t.Errorf("backend still holds %d keys", backend.Len())
	}
	if open(t, backend, "p1").IsAdmin.Get() {
		t.Error("IsAdmin survived Reset()")
	}
}

func TestExclusiveReturnsError(t *testing.T) {
	c := open(t, store.NewMemoryBackend(), "p1")
	want := context.Canceled
	if err := c.Exclusive(func() error { return want }); err != want {
		t.Errorf("Exclusive() error = %v, want %v", err, want)
	}
}

func TestFlashIsShownOnce(t *testing.T) {
	c := open(t, store.NewMemoryBackend(), "p1")
	c.UI.SetFlash("Changes saved!")

	if got := c.UI.TakeFlash(); got != "Changes saved!" {
		t.Errorf("TakeFlash() = %q", got)
	}
	if got := c.UI.TakeFlash(); got != "" {
		t.Errorf("second TakeFlash() = %q, want empty", got)
	}
}
