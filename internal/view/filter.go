package view

import (
	"slices"
	"strings"
	"time"

	"github.com/MrSnakeDoc/pali/internal/domain"
)

// Filter narrows the videos page. Empty fields match everything.
type Filter struct {
	Teacher string
	Date    string
}

// dateLayouts are tried in order when sorting by date.
var dateLayouts = []string{time.RFC3339, time.RFC3339Nano, "2006-01-02"}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterVideos keeps videos whose teacher contains the trimmed teacher
// filter, ignoring case, and whose date contains the date filter. The
// result is a new slice.
func FilterVideos(videos []domain.Video, f Filter) []domain.Video {
	teacher := strings.ToLower(strings.TrimSpace(f.Teacher))
	date := f.Date

	out := make([]domain.Video, 0, len(videos))
	for _, v := range videos {
		if teacher != "" && !strings.Contains(strings.ToLower(v.Teacher), teacher) {
			continue
		}
		if date != "" && !strings.Contains(v.Date, date) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// SortVideosByDate returns a copy of videos, newest first. Videos whose date
// does not parse come after all others; ties keep their order.
func SortVideosByDate(videos []domain.Video) []domain.Video {
	return sortByDateDesc(videos, func(v domain.Video) string { return v.Date })
}

// SortPostsByDate returns a copy of posts, newest first, with the same rules
// as SortVideosByDate.
func SortPostsByDate(posts []domain.Post) []domain.Post {
	return sortByDateDesc(posts, func(p domain.Post) string { return p.Date })
}

func sortByDateDesc[T any](items []T, date func(T) string) []T {
	type keyed struct {
		item T
		at   time.Time
		ok   bool
	}
	ks := make([]keyed, len(items))
	for i, it := range items {
		at, ok := parseDate(date(it))
		ks[i] = keyed{item: it, at: at, ok: ok}
	}

	slices.SortStableFunc(ks, func(a, b keyed) int {
		switch {
		case a.ok && b.ok:
			return b.at.Compare(a.at)
		case a.ok:
			return -1
		case b.ok:
			return 1
		}
		return 0
	})

	out := make([]T, len(ks))
	for i, k := range ks {
		out[i] = k.item
	}
	return out
}
