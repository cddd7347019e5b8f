// Package cleaning is the HTTP slice over the core cleaning engine.
//
// It owns session lifecycle: uploads become sessions (parsed by core/sheetio,
// original bytes archived to object storage), user actions are serialized by
// a per-session mutex, idle sessions expire, and the product-name search
// applies last-request-wins supersession so stale results never overwrite
// newer ones. The engine itself lives in core/cleaning.
package cleaning
