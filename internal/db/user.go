package db

// User roles. The site runs with a single implicit admin plus any accounts
// created through sign-up.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User holds an account. Password stores the bcrypt hash and is never
// serialized.
type User struct {
	Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:user" json:"role"`
	Avatar   string `json:"avatar"`
	Posts    []Post `gorm:"foreignKey:AuthorID" json:"-"`
}
