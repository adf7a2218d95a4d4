// Package view selects and prepares what a page shows. Everything here is
// pure: the stored content is never modified.
package view

import (
	"html/template"

	"github.com/MrSnakeDoc/pali/internal/domain"
)

// Kind is the page actually rendered.
type Kind string

const (
	KindVideos       Kind = Kind(domain.PageVideos)
	KindPosts        Kind = Kind(domain.PagePosts)
	KindTeachers     Kind = Kind(domain.PageTeachers)
	KindSchedule     Kind = Kind(domain.PageSchedule)
	KindHistory      Kind = Kind(domain.PageHistory)
	KindAdmin        Kind = Kind(domain.PageAdmin)
	KindAccessDenied Kind = "accessDenied"
)

// Page is the data of one rendered page. Only the fields of Kind are set.
type Page struct {
	Kind   Kind
	Filter Filter

	Videos   []domain.Video
	Posts    []domain.Post
	Teachers []domain.Teacher
	Body     template.HTML // schedule or course history
}

// Selector builds pages from content.
type Selector struct {
	rich *RichText
}

// NewSelector creates a Selector that renders rich text with rich.
func NewSelector(rich *RichText) *Selector {
	return &Selector{rich: rich}
}

// Select builds the page for p. The admin page requires isAdmin; anything
// else asking for it gets KindAccessDenied. The admin page carries no data:
// it is rendered from the draft.
func (s *Selector) Select(p domain.Page, c domain.Content, isAdmin bool, f Filter) Page {
	switch p {
	case domain.PagePosts:
		return Page{Kind: KindPosts, Posts: SortPostsByDate(c.Posts)}
	case domain.PageTeachers:
		return Page{Kind: KindTeachers, Teachers: append([]domain.Teacher(nil), c.Teachers...)}
	case domain.PageSchedule:
		return Page{Kind: KindSchedule, Body: s.rich.HTML(c.Schedule)}
	case domain.PageHistory:
		return Page{Kind: KindHistory, Body: s.rich.HTML(c.CourseHistory)}
	case domain.PageAdmin:
		if !isAdmin {
			return Page{Kind: KindAccessDenied}
		}
		return Page{Kind: KindAdmin}
	default:
		return Page{
			Kind:   KindVideos,
			Filter: f,
			Videos: SortVideosByDate(FilterVideos(c.Videos, f)),
		}
	}
}
