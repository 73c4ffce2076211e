package db

// Category groups posts. Color is the hex accent used by the site when
// rendering the category chip.
type Category struct {
	Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Posts       []Post `json:"posts,omitempty"`
}
