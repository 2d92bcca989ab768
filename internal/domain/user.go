package domain

import "time"

const RoleUser = "user"

// User is a registered storefront account. Password holds the bcrypt
// hash and must never be serialized in API responses.
type User struct {
	ID        int64     `gorm:"primaryKey" json:"id,string"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Address   string    `gorm:"type:text" json:"address"`
	Role      string    `gorm:"size:20;default:user" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName Specify table name
func (User) TableName() string {
	return "users"
}
