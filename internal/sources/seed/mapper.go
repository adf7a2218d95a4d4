package seed

import (
	"fmt"

	"github.com/MrSnakeDoc/pali/internal/domain"
)

// Mapper converts a seed File to domain.Content
type Mapper struct {
	newID func() string
}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{newID: domain.NewID}
}

// MapContent converts f into content. Items without an id get a fresh one;
// an empty contact number falls back to domain.DefaultContactViber. Items
// are kept in file order. Duplicate ids within a collection are an error.
func (m *Mapper) MapContent(f File) (domain.Content, error) {
	c := domain.DefaultContent()
	c.Schedule = f.Schedule
	c.CourseHistory = f.CourseHistory
	c.CustomFontCSS = f.CustomFontCSS
	c.CustomFontFamily = f.CustomFontFamily
	if f.ContactViber != "" {
		c.ContactViber = f.ContactViber
	}

	seen := make(map[string]bool)
	for _, v := range f.Videos {
		id, err := m.id(seen, "videos", v.ID)
		if err != nil {
			return domain.Content{}, err
		}
		c.Videos = append(c.Videos, domain.Video{
			ID:           id,
			Title:        v.Title,
			Teacher:      v.Teacher,
			Date:         v.Date,
			TelegramLink: v.TelegramLink,
		})
	}

	seen = make(map[string]bool)
	for _, p := range f.Posts {
		id, err := m.id(seen, "posts", p.ID)
		if err != nil {
			return domain.Content{}, err
		}
		c.Posts = append(c.Posts, domain.Post{
			ID:       id,
			Text:     p.Text,
			ImageURL: p.ImageURL,
			Date:     p.Date,
		})
	}

	seen = make(map[string]bool)
	for _, t := range f.Teachers {
		id, err := m.id(seen, "teachers", t.ID)
		if err != nil {
			return domain.Content{}, err
		}
		c.Teachers = append(c.Teachers, domain.Teacher{
			ID:   id,
			Name: t.Name,
			Bio:  t.Bio,
		})
	}

	return c, nil
}

func (m *Mapper) id(seen map[string]bool, section, id string) (string, error) {
	if id == "" {
		id = m.newID()
	}
	if seen[id] {
		return "", fmt.Errorf("duplicate id %q in %s", id, section)
	}
	seen[id] = true
	return id, nil
}
