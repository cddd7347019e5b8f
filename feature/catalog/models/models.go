// Package models defines the database models and request/response types for
// the catalog feature.
package models

// Size is a canonical size label, derived from sales statistics or promoted
// from a cleaning session.
type Size struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Label      string `gorm:"size:64;uniqueIndex" json:"label"`
	UsageCount int    `json:"usage_count"`
}

// SizeAlias maps a vendor spelling to a canonical size label.
type SizeAlias struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Text       string `gorm:"size:128;uniqueIndex" json:"text"`
	MappedSize string `gorm:"size:64;index" json:"mapped_size"`
}

// Product is a canonical product name.
type Product struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;uniqueIndex" json:"name"`
}

// ProductAlias maps a vendor product description to a canonical product name.
type ProductAlias struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Text       string `gorm:"size:255;uniqueIndex" json:"text"`
	MappedName string `gorm:"size:255;index" json:"mapped_name"`
}

// CreateSizeRequest is the body for POST /catalog/sizes.
type CreateSizeRequest struct {
	Label string `json:"label"`
}

// CreateSizeAliasRequest is the body for POST /catalog/sizes/aliases.
type CreateSizeAliasRequest struct {
	Text       string `json:"text"`
	MappedSize string `json:"mapped_size"`
}

// CreateProductRequest is the body for POST /catalog/products.
type CreateProductRequest struct {
	Name string `json:"name"`
}

// CreateProductAliasRequest is the body for POST /catalog/products/aliases.
type CreateProductAliasRequest struct {
	Text       string `json:"text"`
	MappedName string `json:"mapped_name"`
}
