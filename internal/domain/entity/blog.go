package entity

// BlogPost is a marketing article shown on the blog page.
type BlogPost struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Excerpt  string `json:"excerpt" yaml:"excerpt"`
	Content  string `json:"content" yaml:"content"`
	Image    string `json:"image" yaml:"image"`
	Author   string `json:"author" yaml:"author"`
	Date     string `json:"date" yaml:"date"`
	Category string `json:"category" yaml:"category"`
	ReadTime int    `json:"readTime" yaml:"readTime"` // Minutes.
}
