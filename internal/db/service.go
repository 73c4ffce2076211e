package db

// Service is a landscaping service listed on the site (garden design,
// maintenance, irrigation, ...). Category is a free-form label, not a
// relation to Category.
type Service struct {
	Model
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Category    string         `json:"category"`
	Order       int            `gorm:"column:sort_order;default:0" json:"order"`
	Published   bool           `gorm:"default:true" json:"published"`
	Images      []ServiceImage `gorm:"constraint:OnDelete:CASCADE" json:"images"`
}

// ServiceImage is an additional photo attached to a service.
type ServiceImage struct {
	Model
	ServiceID uint   `gorm:"index;not null" json:"serviceId"`
	URL       string `gorm:"not null" json:"url"`
	Alt       string `json:"alt"`
}
