package domain

// Page is the in-memory "route": which section of the site is shown.
type Page string

const (
	PageVideos   Page = "videos"
	PagePosts    Page = "posts"
	PageTeachers Page = "teachers"
	PageSchedule Page = "schedule"
	PageHistory  Page = "history"
	PageAdmin    Page = "admin"
)

// Pages lists every selectable page in navigation order.
var Pages = []Page{PageVideos, PageTeachers, PageSchedule, PagePosts, PageHistory, PageAdmin}

// ParsePage maps raw input to a Page, falling back to PageVideos.
func ParsePage(raw string) Page {
	for _, p := range Pages {
		if string(p) == raw {
			return p
		}
	}
	return PageVideos
}
