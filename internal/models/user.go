package models

// User represents a registered author. Users are seeded out of band;
// this service only checks existence before attributing a comment.
type User struct {
	Username  string `json:"username" db:"username"`
	Name      string `json:"name" db:"name"`
	AvatarURL string `json:"avatar_url" db:"avatar_url"`
}
