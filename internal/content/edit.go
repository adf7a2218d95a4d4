package content

import (
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/pali/internal/domain"
)

var (
	ErrUnknownSection = errors.New("content: unknown section")
	ErrUnknownField   = errors.New("content: unknown field")
)

// Section names one of the item collections.
type Section string

const (
	SectionVideos   Section = "videos"
	SectionPosts    Section = "posts"
	SectionTeachers Section = "teachers"
)

// ParseSection validates raw as a Section.
func ParseSection(raw string) (Section, error) {
	switch s := Section(raw); s {
	case SectionVideos, SectionPosts, SectionTeachers:
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, raw)
}

// EditKind tags which record shape an Edit targets.
type EditKind int

const (
	EditVideo EditKind = iota + 1
	EditPost
	EditTeacher
	EditScalar
)

func (k EditKind) String() string {
	switch k {
	case EditVideo:
		return "video"
	case EditPost:
		return "post"
	case EditTeacher:
		return "teacher"
	case EditScalar:
		return "scalar"
	}
	return fmt.Sprintf("EditKind(%d)", int(k))
}

// KindOf returns the edit kind of items in s.
func KindOf(s Section) EditKind {
	switch s {
	case SectionVideos:
		return EditVideo
	case SectionPosts:
		return EditPost
	case SectionTeachers:
		return EditTeacher
	}
	return 0
}

// Field names an editable field. Which fields are valid depends on the kind.
type Field string

// Video fields
const (
	FieldTitle        Field = "title"
	FieldTeacher      Field = "teacher"
	FieldDate         Field = "date"
	FieldTelegramLink Field = "telegramLink"
)

// Post fields (FieldDate is shared with videos)
const (
	FieldText     Field = "text"
	FieldImageURL Field = "imageUrl"
)

// Teacher fields
const (
	FieldName Field = "name"
	FieldBio  Field = "bio"
)

// Scalar fields of the aggregate
const (
	FieldSchedule         Field = "schedule"
	FieldCourseHistory    Field = "courseHistory"
	FieldContactViber     Field = "contactViber"
	FieldCustomFontCSS    Field = "customFontCss"
	FieldCustomFontFamily Field = "customFontFamily"
)

// FieldsOf lists the fields valid for k, in form order.
func FieldsOf(k EditKind) []Field {
	switch k {
	case EditVideo:
		return []Field{FieldTitle, FieldTeacher, FieldDate, FieldTelegramLink}
	case EditPost:
		return []Field{FieldText, FieldImageURL, FieldDate}
	case EditTeacher:
		return []Field{FieldName, FieldBio}
	case EditScalar:
		return []Field{FieldSchedule, FieldCourseHistory, FieldContactViber, FieldCustomFontCSS, FieldCustomFontFamily}
	}
	return nil
}

// Edit is one field change. ItemID is ignored for EditScalar.
type Edit struct {
	Kind   EditKind
	ItemID string
	Field  Field
	Value  string
}

func setVideoField(v *domain.Video, f Field, value string) error {
	switch f {
	case FieldTitle:
		v.Title = value
	case FieldTeacher:
		v.Teacher = value
	case FieldDate:
		v.Date = value
	case FieldTelegramLink:
		v.TelegramLink = value
	default:
		return fmt.Errorf("%w: video.%s", ErrUnknownField, f)
	}
	return nil
}

func setPostField(p *domain.Post, f Field, value string) error {
	switch f {
	case FieldText:
		p.Text = value
	case FieldImageURL:
		p.ImageURL = value
	case FieldDate:
		p.Date = value
	default:
		return fmt.Errorf("%w: post.%s", ErrUnknownField, f)
	}
	return nil
}

func setTeacherField(t *domain.Teacher, f Field, value string) error {
	switch f {
	case FieldName:
		t.Name = value
	case FieldBio:
		t.Bio = value
	default:
		return fmt.Errorf("%w: teacher.%s", ErrUnknownField, f)
	}
	return nil
}

func setScalarField(c *domain.Content, f Field, value string) error {
	switch f {
	case FieldSchedule:
		c.Schedule = value
	case FieldCourseHistory:
		c.CourseHistory = value
	case FieldContactViber:
		c.ContactViber = value
	case FieldCustomFontCSS:
		c.CustomFontCSS = value
	case FieldCustomFontFamily:
		c.CustomFontFamily = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, f)
	}
	return nil
}
