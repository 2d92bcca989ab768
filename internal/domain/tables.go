package domain

var Tables = []interface{}{
	// Catalog
	&Category{},
	&Product{},
	// Commerce
	&Order{},
	// Accounts
	&User{},
	// System
	&AuditLog{},
}
