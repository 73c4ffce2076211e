package db

// ServiceArea is a district the company serves, shown as an ordered strip
// of named photos.
type ServiceArea struct {
	Model
	Name      string `gorm:"not null" json:"name"`
	Image     string `gorm:"not null" json:"image"`
	Order     int    `gorm:"column:sort_order;default:0" json:"order"`
	Published bool   `gorm:"default:true" json:"published"`
}
