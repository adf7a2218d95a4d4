// Package content implements the admin draft: a private working copy of the
// site content that is edited field by field and committed as a whole.
package content

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MrSnakeDoc/pali/internal/domain"
)

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Target receives a committed draft.
type Target interface {
	Set(ctx context.Context, c domain.Content)
}

// Draft is safe for concurrent use.
type Draft struct {
	mu      sync.Mutex
	content domain.Content
	onAdd   func()
	now     func() time.Time
}

// NewDraft copies committed into a new draft. onAdd, if not nil, runs after
// every added item.
func NewDraft(committed domain.Content, onAdd func()) *Draft {
	return &Draft{
		content: committed.Clone().Normalize(),
		onAdd:   onAdd,
		now:     time.Now,
	}
}

// Content returns a copy of the current draft.
func (d *Draft) Content() domain.Content {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.content.Clone()
}

// AddVideo prepends v.
func (d *Draft) AddVideo(v domain.Video) {
	d.mu.Lock()
	d.content.Videos = append([]domain.Video{v}, d.content.Videos...)
	d.mu.Unlock()
	d.added()
}

// AddPost prepends p.
func (d *Draft) AddPost(p domain.Post) {
	d.mu.Lock()
	d.content.Posts = append([]domain.Post{p}, d.content.Posts...)
	d.mu.Unlock()
	d.added()
}

// AddTeacher prepends t.
func (d *Draft) AddTeacher(t domain.Teacher) {
	d.mu.Lock()
	d.content.Teachers = append([]domain.Teacher{t}, d.content.Teachers...)
	d.mu.Unlock()
	d.added()
}

// AddBlank prepends an empty item to section and returns its id. New posts
// are stamped with the current time; other fields start empty.
func (d *Draft) AddBlank(section Section) (string, error) {
	id := domain.NewID()
	switch section {
	case SectionVideos:
		d.AddVideo(domain.Video{ID: id})
	case SectionPosts:
		d.AddPost(domain.Post{ID: id, Date: d.now().UTC().Format(time.RFC3339)})
	case SectionTeachers:
		d.AddTeacher(domain.Teacher{ID: id})
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	return id, nil
}

func (d *Draft) added() {
	if d.onAdd != nil {
		d.onAdd()
	}
}

// Apply changes one field. An unknown item id is a no-op; a field that does
// not belong to the edit kind is ErrUnknownField.
func (d *Draft) Apply(e Edit) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch e.Kind {
	case EditVideo:
		var probe domain.Video
		if err := setVideoField(&probe, e.Field, e.Value); err != nil {
			return err
		}
		for i := range d.content.Videos {
			if d.content.Videos[i].ID == e.ItemID {
				return setVideoField(&d.content.Videos[i], e.Field, e.Value)
			}
		}
	case EditPost:
		var probe domain.Post
		if err := setPostField(&probe, e.Field, e.Value); err != nil {
			return err
		}
		for i := range d.content.Posts {
			if d.content.Posts[i].ID == e.ItemID {
				return setPostField(&d.content.Posts[i], e.Field, e.Value)
			}
		}
	case EditTeacher:
		var probe domain.Teacher
		if err := setTeacherField(&probe, e.Field, e.Value); err != nil {
			return err
		}
		for i := range d.content.Teachers {
			if d.content.Teachers[i].ID == e.ItemID {
				return setTeacherField(&d.content.Teachers[i], e.Field, e.Value)
			}
		}
	case EditScalar:
		return setScalarField(&d.content, e.Field, e.Value)
	default:
		return fmt.Errorf("content: unknown edit kind %v", e.Kind)
	}
	return nil
}

// UpdateScalar replaces one scalar field of the aggregate.
func (d *Draft) UpdateScalar(f Field, value string) error {
	return d.Apply(Edit{Kind: EditScalar, Field: f, Value: value})
}

// ConfirmDeletePrompt is the question asked before a removal.
const ConfirmDeletePrompt = "Are you sure you want to delete this?"

// Remove deletes the first item of section whose id matches, after asking
// confirm. It reports whether an item was removed; a declined confirmation
// leaves the draft unchanged.
func (d *Draft) Remove(section Section, id string, confirm Confirmer) (bool, error) {
	if _, err := ParseSection(string(section)); err != nil {
		return false, err
	}
	if confirm == nil || !confirm.Confirm(ConfirmDeletePrompt) {
		return false, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	switch section {
	case SectionVideos:
		for i, v := range d.content.Videos {
			if v.ID == id {
				d.content.Videos = append(d.content.Videos[:i:i], d.content.Videos[i+1:]...)
				return true, nil
			}
		}
	case SectionPosts:
		for i, p := range d.content.Posts {
			if p.ID == id {
				d.content.Posts = append(d.content.Posts[:i:i], d.content.Posts[i+1:]...)
				return true, nil
			}
		}
	case SectionTeachers:
		for i, t := range d.content.Teachers {
			if t.ID == id {
				d.content.Teachers = append(d.content.Teachers[:i:i], d.content.Teachers[i+1:]...)
				return true, nil
			}
		}
	}
	return false, nil
}

// Commit hands the whole draft to target in a single write. Fields the admin
// never touched are written too.
func (d *Draft) Commit(ctx context.Context, target Target) {
	target.Set(ctx, d.Content())
}
