// Package catalog owns the learned dictionaries: canonical sizes, size
// aliases, canonical product names and product aliases.
//
// It is the durable side of the cleaning engine. The Store type implements
// cleaning.AliasStore on GORM (MySQL in production, SQLite in tests), and the
// feature exposes CRUD endpoints under /catalog for inspecting and seeding
// the dictionaries outside of a cleaning session.
package catalog
