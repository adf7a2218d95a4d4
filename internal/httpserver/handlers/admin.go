package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/pali/internal/content"
	"github.com/MrSnakeDoc/pali/internal/httpserver/deps"
	"github.com/MrSnakeDoc/pali/internal/httpserver/mw"
	"github.com/MrSnakeDoc/pali/internal/i18n"
	"github.com/MrSnakeDoc/pali/internal/logger"
)

// AdminAdd prepends a blank item to a section of the draft.
func AdminAdd(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mw.Container(r.Context())

		section, err := content.ParseSection(chi.URLParam(r, "section"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		id, err := c.Draft().AddBlank(section)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		d.Logger.Debug("draft item added",
			logger.String("profile", c.ProfileID()),
			logger.String("section", string(section)),
			logger.String("id", id))
		redirectHome(w, r)
	}
}

// AdminUpdate changes fields of one draft item. The form carries either a
// field/value pair or one form value per field name.
func AdminUpdate(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mw.Container(r.Context())

		section, err := content.ParseSection(chi.URLParam(r, "section"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		edits, err := formEdits(r, content.KindOf(section), chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := applyEdits(c.Draft(), edits); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		redirectHome(w, r)
	}
}

// AdminScalar changes scalar fields (schedule, history, contact, font) of
// the draft.
func AdminScalar(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mw.Container(r.Context())

		edits, err := formEdits(r, content.EditScalar, "")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := applyEdits(c.Draft(), edits); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		redirectHome(w, r)
	}
}

// AdminDelete removes a draft item. Nothing is removed unless the form
// confirms with confirm=yes.
func AdminDelete(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mw.Container(r.Context())

		section, err := content.ParseSection(chi.URLParam(r, "section"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		confirmed := r.PostFormValue("confirm") == "yes"
		removed, err := c.Draft().Remove(section, chi.URLParam(r, "id"), content.ConfirmFunc(func(string) bool {
			return confirmed
		}))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		d.Logger.Debug("draft item delete",
			logger.String("profile", c.ProfileID()),
			logger.String("section", string(section)),
			logger.Bool("confirmed", confirmed),
			logger.Bool("removed", removed))
		redirectHome(w, r)
	}
}

// AdminCommit saves the whole draft as the site content.
func AdminCommit(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mw.Container(r.Context())

		if c.CommitDraft(r.Context()) {
			c.UI.SetFlash(i18n.T(c.Lang.Get(), "changesSaved"))
			d.Logger.Info("content committed", logger.String("profile", c.ProfileID()))
		}
		redirectHome(w, r)
	}
}

func formEdits(r *http.Request, kind content.EditKind, id string) ([]content.Edit, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	if f := r.PostForm.Get("field"); f != "" {
		return []content.Edit{{
			Kind:   kind,
			ItemID: id,
			Field:  content.Field(f),
			Value:  r.PostForm.Get("value"),
		}}, nil
	}

	var edits []content.Edit
	for _, f := range content.FieldsOf(kind) {
		if vals, ok := r.PostForm[string(f)]; ok && len(vals) > 0 {
			edits = append(edits, content.Edit{Kind: kind, ItemID: id, Field: f, Value: vals[0]})
		}
	}
	if len(edits) == 0 {
		return nil, errors.New("no field to update")
	}
	return edits, nil
}

func applyEdits(draft *content.Draft, edits []content.Edit) error {
	for _, e := range edits {
		if err := draft.Apply(e); err != nil {
			return err
		}
	}
	return nil
}
