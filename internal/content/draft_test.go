package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MrSnakeDoc/pali/internal/domain"
)

type recordingTarget struct {
	writes int
	last   domain.Content
}

func (r *recordingTarget) Set(_ context.Context, c domain.Content) {
	r.writes++
	r.last = c
}

func seeded() domain.Content {
	c := domain.DefaultContent()
	c.Videos = []domain.Video{
		{ID: "v2", Title: "Second", Teacher: "Bob", Date: "2024-02-01"},
		{ID: "v1", Title: "First", Teacher: "Ana", Date: "2024-01-01"},
	}
	c.Posts = []domain.Post{{ID: "p1", Text: "hello"}}
	c.Teachers = []domain.Teacher{{ID: "t1", Name: "U Ba"}}
	return c
}

func yes() Confirmer { return ConfirmFunc(func(string) bool { return true }) }
func no() Confirmer  { return ConfirmFunc(func(string) bool { return false }) }

func TestAddVideoPrependsAndNotifies(t *testing.T) {
	notified := 0
	d := NewDraft(seeded(), func() { notified++ })

	v := domain.Video{ID: "v3", Title: "Intro", Teacher: "U Ba", Date: "2024-01-10", TelegramLink: "https://t.me/x"}
	d.AddVideo(v)

	got := d.Content().Videos
	if len(got) != 3 {
		t.Fatalf("len(Videos) = %d, want 3", len(got))
	}
	if got[0] != v {
		t.Errorf("Videos[0] = %+v, want %+v", got[0], v)
	}
	if notified != 1 {
		t.Errorf("onAdd called %d times, want 1", notified)
	}
}

func TestAddBlank(t *testing.T) {
	d := NewDraft(domain.DefaultContent(), nil)
	fixed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return fixed }

	for _, s := range []Section{SectionVideos, SectionPosts, SectionTeachers} {
		id, err := d.AddBlank(s)
		if err != nil {
			t.Fatalf("AddBlank(%s) error = %v", s, err)
		}
		if id == "" {
			t.Fatalf("AddBlank(%s) returned empty id", s)
		}
	}

	c := d.Content()
	if len(c.Videos) != 1 || len(c.Posts) != 1 || len(c.Teachers) != 1 {
		t.Fatalf("AddBlank() should add one item per section, got %+v", c)
	}
	if c.Posts[0].Date != "2024-03-01T10:00:00Z" {
		t.Errorf("new post date = %q, want the current time", c.Posts[0].Date)
	}
	if c.Videos[0].Date != "" {
		t.Errorf("new video date = %q, want empty", c.Videos[0].Date)
	}

	if _, err := d.AddBlank(Section("schedule")); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("AddBlank(schedule) error = %v, want ErrUnknownSection", err)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		edit    Edit
		wantErr error
		check   func(domain.Content) bool
	}{
		{
			name:  "video title",
			edit:  Edit{Kind: EditVideo, ItemID: "v1", Field: FieldTitle, Value: "Renamed"},
			check: func(c domain.Content) bool { return c.Videos[1].Title == "Renamed" && c.Videos[0].Title == "Second" },
		},
		{
			name:  "post image",
			edit:  Edit{Kind: EditPost, ItemID: "p1", Field: FieldImageURL, Value: "https://img"},
			check: func(c domain.Content) bool { return c.Posts[0].ImageURL == "https://img" },
		},
		{
			name:  "teacher bio",
			edit:  Edit{Kind: EditTeacher, ItemID: "t1", Field: FieldBio, Value: "monk"},
			check: func(c domain.Content) bool { return c.Teachers[0].Bio == "monk" },
		},
		{
			name:  "scalar schedule",
			edit:  Edit{Kind: EditScalar, Field: FieldSchedule, Value: "<b>Mon</b>"},
			check: func(c domain.Content) bool { return c.Schedule == "<b>Mon</b>" },
		},
		{
			name:  "unknown id is a no-op",
			edit:  Edit{Kind: EditVideo, ItemID: "missing", Field: FieldTitle, Value: "x"},
			check: func(c domain.Content) bool { return c.Videos[0].Title == "Second" && c.Videos[1].Title == "First" },
		},
		{
			name:    "field of another kind",
			edit:    Edit{Kind: EditTeacher, ItemID: "t1", Field: FieldTitle, Value: "x"},
			wantErr: ErrUnknownField,
		},
		{
			name:    "bad field on missing id still rejected",
			edit:    Edit{Kind: EditPost, ItemID: "missing", Field: FieldName, Value: "x"},
			wantErr: ErrUnknownField,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDraft(seeded(), nil)
			err := d.Apply(tt.edit)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Apply() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if !tt.check(d.Content()) {
				t.Errorf("Apply() did not produce the expected content: %+v", d.Content())
			}
		})
	}
}

func TestUpdateScalar(t *testing.T) {
	d := NewDraft(seeded(), nil)

	fields := map[Field]string{
		FieldSchedule:         "s",
		FieldCourseHistory:    "h",
		FieldContactViber:     "+95 9",
		FieldCustomFontCSS:    "@font-face{}",
		FieldCustomFontFamily: "Padauk",
	}
	for f, v := range fields {
		if err := d.UpdateScalar(f, v); err != nil {
			t.Fatalf("UpdateScalar(%s) error = %v", f, err)
		}
	}

	c := d.Content()
	if c.Schedule != "s" || c.CourseHistory != "h" || c.ContactViber != "+95 9" ||
		c.CustomFontCSS != "@font-face{}" || c.CustomFontFamily != "Padauk" {
		t.Errorf("UpdateScalar() result = %+v", c)
	}
	if err := d.UpdateScalar(FieldTitle, "x"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("UpdateScalar(title) error = %v, want ErrUnknownField", err)
	}
}

func TestRemove(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		d := NewDraft(seeded(), nil)
		removed, err := d.Remove(SectionVideos, "v1", yes())
		if err != nil || !removed {
			t.Fatalf("Remove() = (%v, %v), want (true, nil)", removed, err)
		}
		videos := d.Content().Videos
		if len(videos) != 1 {
			t.Fatalf("len(Videos) = %d, want 1", len(videos))
		}
		for _, v := range videos {
			if v.ID == "v1" {
				t.Error("removed id still present")
			}
		}
	})

	t.Run("declined", func(t *testing.T) {
		d := NewDraft(seeded(), nil)
		removed, err := d.Remove(SectionVideos, "v1", no())
		if err != nil || removed {
			t.Fatalf("Remove() = (%v, %v), want (false, nil)", removed, err)
		}
		if len(d.Content().Videos) != 2 {
			t.Error("declined Remove() must leave the collection unchanged")
		}
	})

	t.Run("nil confirmer declines", func(t *testing.T) {
		d := NewDraft(seeded(), nil)
		if removed, _ := d.Remove(SectionTeachers, "t1", nil); removed {
			t.Error("Remove() without a confirmer must not delete")
		}
	})

	t.Run("unknown section", func(t *testing.T) {
		d := NewDraft(seeded(), nil)
		if _, err := d.Remove(Section("nope"), "v1", yes()); !errors.Is(err, ErrUnknownSection) {
			t.Errorf("Remove() error = %v, want ErrUnknownSection", err)
		}
	})

	t.Run("does not alias committed content", func(t *testing.T) {
		committed := seeded()
		d := NewDraft(committed, nil)
		if _, err := d.Remove(SectionVideos, "v2", yes()); err != nil {
			t.Fatal(err)
		}
		if committed.Videos[0].ID != "v2" || committed.Videos[1].ID != "v1" {
			t.Errorf("Remove() modified the committed content: %+v", committed.Videos)
		}
	})
}

func TestCommitWritesWholeDraftOnce(t *testing.T) {
	d := NewDraft(seeded(), nil)
	d.AddTeacher(domain.Teacher{ID: "t2", Name: "Daw Mya"})
	if err := d.UpdateScalar(FieldContactViber, "+95 1"); err != nil {
		t.Fatal(err)
	}

	target := &recordingTarget{}
	d.Commit(context.Background(), target)

	if target.writes != 1 {
		t.Fatalf("Commit() wrote %d times, want 1", target.writes)
	}
	if len(target.last.Teachers) != 2 || target.last.ContactViber != "+95 1" {
		t.Errorf("Commit() wrote %+v", target.last)
	}
	if len(target.last.Videos) != 2 {
		t.Errorf("Commit() must also write untouched fields, got %d videos", len(target.last.Videos))
	}
}

func TestParseSectionAndKind(t *testing.T) {
	for _, raw := range []string{"videos", "posts", "teachers"} {
		s, err := ParseSection(raw)
		if err != nil {
			t.Fatalf("ParseSection(%q) error = %v", raw, err)
		}
		if KindOf(s) == 0 {
			t.Errorf("KindOf(%s) = 0", s)
		}
	}
	if _, err := ParseSection("schedule"); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("ParseSection(schedule) error = %v", err)
	}
	if EditScalar.String() != "scalar" {
		t.Errorf("EditScalar.String() = %q", EditScalar.String())
	}
}

func TestFieldsOfAreAccepted(t *testing.T) {
	for _, k := range []EditKind{EditVideo, EditPost, EditTeacher, EditScalar} {
		d := NewDraft(seeded(), nil)
		id := map[EditKind]string{EditVideo: "v1", EditPost: "p1", EditTeacher: "t1"}[k]
		for _, f := range FieldsOf(k) {
			if err := d.Apply(Edit{Kind: k, ItemID: id, Field: f, Value: "x"}); err != nil {
				t.Errorf("Apply(%s.%s) error = %v", k, f, err)
			}
		}
	}
}
