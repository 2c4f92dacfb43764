package model

// User is the account the remote auth API returns on sign-in.
type User struct {
	ID      string `json:"id,omitempty"`
	AltID   string `json:"_id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
}

// Key returns whichever identifier the server populated.
func (u User) Key() string {
	if u.ID != "" {
		return u.ID
	}
	return u.AltID
}

// Merge applies a partial update, leaving zero-valued fields untouched.
func (u *User) Merge(partial User) {
	if partial.Name != "" {
		u.Name = partial.Name
	}
	if partial.Email != "" {
		u.Email = partial.Email
	}
	if partial.Company != "" {
		u.Company = partial.Company
	}
}
