package domain

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestDefaultContent(t *testing.T) {
	c := DefaultContent()

	if c.Videos == nil || c.Posts == nil || c.Teachers == nil {
		t.Fatal("DefaultContent() collections must be non-nil")
	}
	if len(c.Videos)+len(c.Posts)+len(c.Teachers) != 0 {
		t.Errorf("DefaultContent() collections should be empty")
	}
	if c.ContactViber != DefaultContactViber {
		t.Errorf("ContactViber = %q, want %q", c.ContactViber, DefaultContactViber)
	}
	if c.Schedule != "" || c.CourseHistory != "" || c.CustomFontCSS != "" || c.CustomFontFamily != "" {
		t.Errorf("DefaultContent() scalar fields should be empty, got %+v", c)
	}
}

func TestContentCloneIsDeep(t *testing.T) {
	orig := DefaultContent()
	orig.Videos = append(orig.Videos, Video{ID: "v1", Title: "Intro"})
	orig.Teachers = append(orig.Teachers, Teacher{ID: "t1", Name: "U Ba"})

	cp := orig.Clone()
	cp.Videos[0].Title = "changed"
	cp.Teachers = append(cp.Teachers, Teacher{ID: "t2"})

	if orig.Videos[0].Title != "Intro" {
		t.Errorf("Clone() shares video storage with the original")
	}
	if len(orig.Teachers) != 1 {
		t.Errorf("Clone() shares teacher storage with the original")
	}
}

func TestContentNormalize(t *testing.T) {
	c := Content{ContactViber: "x"}.Normalize()
	if c.Videos == nil || c.Posts == nil || c.Teachers == nil {
		t.Fatal("Normalize() should replace nil collections")
	}
	if c.ContactViber != "x" {
		t.Errorf("Normalize() must not touch scalars")
	}
}

func TestNewIDShape(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	id := newIDAt(now)
	prefix := strconv.FormatInt(now.UnixMilli(), 36)

	if !strings.HasPrefix(id, prefix) {
		t.Errorf("newIDAt() = %q, want prefix %q", id, prefix)
	}
	if len(id) != len(prefix)+idSuffixLen {
		t.Errorf("newIDAt() length = %d, want %d", len(id), len(prefix)+idSuffixLen)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("NewID() produced a duplicate: %s", id)
		}
		seen[id] = true
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw  string
		want Page
	}{
		{"videos", PageVideos},
		{"posts", PagePosts},
		{"admin", PageAdmin},
		{"history", PageHistory},
		{"", PageVideos},
		{"nope", PageVideos},
	}
	for _, tt := range tests {
		if got := ParsePage(tt.raw); got != tt.want {
			t.Errorf("ParsePage(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestToggles(t *testing.T) {
	if ThemeLight.Toggle() != ThemeDark || ThemeDark.Toggle() != ThemeLight {
		t.Error("Theme.Toggle() should flip light/dark")
	}
	if LangMyanmar.Toggle() != LangEnglish || LangEnglish.Toggle() != LangMyanmar {
		t.Error("Language.Toggle() should flip en/my")
	}
	if Language("fr").Valid() {
		t.Error("fr should not be a valid language")
	}
}
