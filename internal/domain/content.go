package domain

// Video is one recorded lesson, linked out to Telegram.
type Video struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Teacher      string `json:"teacher" yaml:"teacher"`
	Date         string `json:"date" yaml:"date"` // calendar date, usually YYYY-MM-DD
	TelegramLink string `json:"telegramLink" yaml:"telegramLink"`
}

// Post is a short announcement with an optional image.
type Post struct {
	ID       string `json:"id" yaml:"id"`
	Text     string `json:"text" yaml:"text"`
	ImageURL string `json:"imageUrl" yaml:"imageUrl"`
	Date     string `json:"date" yaml:"date"` // RFC3339 timestamp
}

// Teacher is a bio entry. Videos reference teachers by free-text name only.
type Teacher struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Bio  string `json:"bio" yaml:"bio"`
}

// DefaultContactViber is the placeholder contact number used on first run.
const DefaultContactViber = "+123456789"

// Content is the whole editable site content. It is persisted as one value
// and always replaced as a whole.
//
// Collection order is insertion order: new items are prepended.
type Content struct {
	// ─────────────────────────────
	// Collections
	// ─────────────────────────────

	Videos   []Video   `json:"videos" yaml:"videos"`
	Posts    []Post    `json:"posts" yaml:"posts"`
	Teachers []Teacher `json:"teachers" yaml:"teachers"`

	// ─────────────────────────────
	// Rich text (HTML)
	// ─────────────────────────────

	Schedule      string `json:"schedule" yaml:"schedule"`
	CourseHistory string `json:"courseHistory" yaml:"courseHistory"`

	// ─────────────────────────────
	// Contact & appearance
	// ─────────────────────────────

	ContactViber     string `json:"contactViber" yaml:"contactViber"`
	CustomFontCSS    string `json:"customFontCss" yaml:"customFontCss"`
	CustomFontFamily string `json:"customFontFamily" yaml:"customFontFamily"`
}

// DefaultContent returns the first-run content: empty collections and the
// placeholder contact number.
func DefaultContent() Content {
	return Content{
		Videos:       []Video{},
		Posts:        []Post{},
		Teachers:     []Teacher{},
		ContactViber: DefaultContactViber,
	}
}

// Clone returns a deep copy. Collections are never shared between the copy
// and the receiver.
func (c Content) Clone() Content {
	out := c
	out.Videos = append(make([]Video, 0, len(c.Videos)), c.Videos...)
	out.Posts = append(make([]Post, 0, len(c.Posts)), c.Posts...)
	out.Teachers = append(make([]Teacher, 0, len(c.Teachers)), c.Teachers...)
	return out
}

// Normalize replaces nil collections with empty ones so the aggregate is
// always fully present, e.g. after decoding a blob written as `null`.
func (c Content) Normalize() Content {
	if c.Videos == nil {
		c.Videos = []Video{}
	}
	if c.Posts == nil {
		c.Posts = []Post{}
	}
	if c.Teachers == nil {
		c.Teachers = []Teacher{}
	}
	return c
}
