package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/pali/internal/domain"
	"github.com/MrSnakeDoc/pali/internal/httpserver/deps"
	"github.com/MrSnakeDoc/pali/internal/httpserver/mw"
	"github.com/MrSnakeDoc/pali/internal/httpserver/render"
	"github.com/MrSnakeDoc/pali/internal/logger"
	"github.com/MrSnakeDoc/pali/internal/session"
	"github.com/MrSnakeDoc/pali/internal/state"
	"github.com/MrSnakeDoc/pali/internal/view"
)

// navPages maps each navigation entry to its label key.
var navPages = []struct {
	page  domain.Page
	label string
}{
	{domain.PageVideos, "courseVideos"},
	{domain.PageTeachers, "teachers"},
	{domain.PageSchedule, "schedule"},
	{domain.PagePosts, "posts"},
	{domain.PageHistory, "courseHistory"},
}

// Page renders the active page. ?page= navigates first; ?teacher= and
// ?date= filter the videos page.
func Page(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mw.Container(r.Context())
		q := r.URL.Query()

		if raw := q.Get("page"); raw != "" {
			c.SetActivePage(domain.ParsePage(raw))
		}

		filter := view.Filter{Teacher: q.Get("teacher"), Date: q.Get("date")}
		data := buildPageData(d, c, filter)
		renderPage(d, w, http.StatusOK, data)
	}
}

func buildPageData(d deps.Deps, c *state.Container, filter view.Filter) render.PageData {
	lang := c.Lang.Get()
	committed := c.Content.Get()
	isAdmin := c.IsAdmin.Get()
	active := c.UI.ActivePage()

	data := render.PageData{
		Lang:    lang,
		Theme:   c.Theme.Get(),
		HasUser: session.HasUser(c),
		IsAdmin: isAdmin,

		LoginOpen:  c.UI.LoginOpen(),
		LoginError: c.UI.LoginError(),
		Flash:      c.UI.TakeFlash(),
		PlayCue:    c.UI.Cue.Take(),

		InstallAvailable: c.UI.Install.Available(),
		ContactViber:     committed.ContactViber,
		FontCSS:          view.FontCSS(committed.CustomFontCSS),
		FontFamily:       view.FontFamily(committed.CustomFontFamily),
	}
	if u := c.User.Get(); u != nil {
		data.User = *u
	}
	if text, visible := c.UI.Notifier.Current(); visible {
		data.Notification = text
	}

	for _, n := range navPages {
		data.Nav = append(data.Nav, render.NavItem{Page: n.page, Label: n.label, Active: n.page == active})
	}

	data.Page = d.Selector.Select(active, committed, isAdmin, filter)
	if data.Page.Kind == view.KindAdmin {
		draft := c.Draft().Content()
		data.Draft = &draft
	}

	return data
}

func renderPage(d deps.Deps, w http.ResponseWriter, status int, data render.PageData) {
	if err := d.Renderer.Render(w, status, data); err != nil {
		d.Logger.Error("failed to render page", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// redirectHome sends the browser back to the page after a form post.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
