package db

// Reference is a client testimonial / logo entry.
type Reference struct {
	Model
	CompanyName string `gorm:"not null" json:"companyName"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Order       int    `gorm:"column:sort_order;default:0" json:"order"`
	Published   bool   `gorm:"default:true" json:"published"`
}
