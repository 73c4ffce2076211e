package db

// Gallery is an ordered, publishable set of project photos.
type Gallery struct {
	Model
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	Order       int            `gorm:"column:sort_order;default:0" json:"order"`
	Published   bool           `gorm:"default:true" json:"published"`
	Images      []GalleryImage `gorm:"constraint:OnDelete:CASCADE" json:"images"`
}

// GalleryImage is a single photo inside a gallery.
type GalleryImage struct {
	Model
	GalleryID uint   `gorm:"index;not null" json:"galleryId"`
	URL       string `gorm:"not null" json:"url"`
	Alt       string `json:"alt"`
	Order     int    `gorm:"column:sort_order;default:0" json:"order"`
}
