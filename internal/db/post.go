package db

// Post is a blog article. Content is authored in markdown; the public
// detail endpoint returns a sanitized HTML rendering alongside it.
type Post struct {
	Model
	Title       string      `gorm:"not null" json:"title"`
	Slug        string      `gorm:"uniqueIndex;not null" json:"slug"`
	Description string      `json:"description"`
	Content     string      `json:"content"`
	Published   bool        `gorm:"default:false" json:"published"`
	Featured    bool        `gorm:"default:false" json:"featured"`
	CategoryID  *uint       `json:"categoryId"`
	Category    *Category   `json:"category,omitempty"`
	AuthorID    uint        `json:"authorId"`
	Author      *User       `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Tags        []Tag       `gorm:"many2many:post_tags;" json:"tags"`
	Images      []PostImage `gorm:"constraint:OnDelete:CASCADE" json:"images"`
}

// PostImage is an image attached to a post.
type PostImage struct {
	Model
	PostID uint   `gorm:"index;not null" json:"postId"`
	URL    string `gorm:"not null" json:"url"`
	Alt    string `json:"alt"`
	Order  int    `gorm:"default:0" json:"order"`
}

// Tag labels posts, many-to-many.
type Tag struct {
	Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
}
