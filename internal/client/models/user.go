// Package models defines the client-side data models of the Lumina client.
package models

// DefaultInterests is assigned to every account at signup.
var DefaultInterests = []string{"Coding", "Design", "AI"}

// User is the session-facing identity. It never carries a secret.
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Interests []string `json:"interests"`
}

// Clone returns a deep copy so callers cannot mutate shared state through
// the Interests slice.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Interests != nil {
		c.Interests = append([]string(nil), u.Interests...)
	}
	return &c
}

// CredentialRecord is the persisted registry entry: a User plus the hashed
// secret. It stays inside the auth service and the record store.
type CredentialRecord struct {
	User
	Secret string `json:"secret"`
}

// Public strips the secret.
func (r *CredentialRecord) Public() *User {
	return r.User.Clone()
}
