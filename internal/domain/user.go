// Package domain defines the catalog and overlay entity types for the Jobeee feed.
//
// JSON field names are camelCase because they are the wire contract the web
// client already depends on; renaming them would orphan persisted overlay data.
package domain

// User is a catalog member referenced by stories and server-origin comments.
// Seeded once, never mutated.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}
