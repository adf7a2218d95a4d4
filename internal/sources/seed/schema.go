package seed

// File is the top-level structure of a seed content file
type File struct {
	ContactViber     string         `yaml:"contactViber,omitempty"`
	CustomFontCSS    string         `yaml:"customFontCss,omitempty"`
	CustomFontFamily string         `yaml:"customFontFamily,omitempty"`
	Schedule         string         `yaml:"schedule,omitempty"`
	CourseHistory    string         `yaml:"courseHistory,omitempty"`
	Videos           []VideoProps   `yaml:"videos,omitempty"`
	Posts            []PostProps    `yaml:"posts,omitempty"`
	Teachers         []TeacherProps `yaml:"teachers,omitempty"`
}

// VideoProps is one seeded video. ID is optional.
type VideoProps struct {
	ID           string `yaml:"id,omitempty"`
	Title        string `yaml:"title"`
	Teacher      string `yaml:"teacher,omitempty"`
	Date         string `yaml:"date,omitempty"`
	TelegramLink string `yaml:"telegramLink,omitempty"`
}

// PostProps is one seeded post. ID is optional.
type PostProps struct {
	ID       string `yaml:"id,omitempty"`
	Text     string `yaml:"text"`
	ImageURL string `yaml:"imageUrl,omitempty"`
	Date     string `yaml:"date,omitempty"`
}

// TeacherProps is one seeded teacher. ID is optional.
type TeacherProps struct {
	ID   string `yaml:"id,omitempty"`
	Name string `yaml:"name"`
	Bio  string `yaml:"bio,omitempty"`
}
