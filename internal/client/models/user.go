// Package models holds the wire-level domain types shared by the client
// layers: the signed-in User and the feed Post.
package models

// User is the identity of the signed-in actor, as stored by the resource
// store. The password travels in clear between the client and the store;
// whether the store hashes it is the store's business.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}
