package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeSeed(t, `---
contactViber: "+95 9 123"
schedule: |
  <p>Monday 7pm</p>
videos:
  - title: Lesson 1
    teacher: U Ba
    date: "2024-01-10"
    telegramLink: https://t.me/pali/1
teachers:
  - name: U Ba
    bio: Pali scholar
`)

	f, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if f.ContactViber != "+95 9 123" {
		t.Errorf("ContactViber = %q", f.ContactViber)
	}
	if len(f.Videos) != 1 || f.Videos[0].Title != "Lesson 1" {
		t.Errorf("Videos = %+v", f.Videos)
	}
	if len(f.Teachers) != 1 || f.Teachers[0].Bio != "Pali scholar" {
		t.Errorf("Teachers = %+v", f.Teachers)
	}
	if f.Schedule != "<p>Monday 7pm</p>\n" {
		t.Errorf("Schedule = %q", f.Schedule)
	}
}

func TestLoaderLoadWithVariables(t *testing.T) {
	t.Setenv("PALI_VAR_VIBER", "+95 9 555")
	path := writeSeed(t, `contactViber: "{{PALI_VAR_VIBER}}"
customFontFamily: "{{ PALI_VAR_UNSET_FONT }}"
`)

	f, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if f.ContactViber != "+95 9 555" {
		t.Errorf("ContactViber = %q, want expanded variable", f.ContactViber)
	}
	if f.CustomFontFamily != "" {
		t.Errorf("CustomFontFamily = %q, want empty for unset variable", f.CustomFontFamily)
	}
}

func TestLoaderErrors(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load(); err == nil {
		t.Error("Load() of a missing file should fail")
	}
	if _, err := NewLoader(writeSeed(t, "videos: [unclosed")).Load(); err == nil {
		t.Error("Load() of invalid yaml should fail")
	}
}
