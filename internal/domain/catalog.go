package domain

// Category is a short-slug product grouping, seeded at startup and
// effectively immutable afterwards.
type Category struct {
	ID   string `gorm:"primaryKey;size:50" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

// TableName Specify table name
func (Category) TableName() string {
	return "categories"
}

// Product is a catalog item. Price is stored in the smallest currency
// unit (VND has no subunit, so an integer).
type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:200;not null;index" json:"name"`
	Price       int64  `gorm:"not null" json:"price"`
	Image       string `gorm:"size:500" json:"image"`
	Category    string `gorm:"size:50;index" json:"category"`
	Description string `gorm:"type:text" json:"description"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}
