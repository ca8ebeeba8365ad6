package models

// User is a record in the user registry. The password hash is serialized
// into the registry slot but stripped from every copy handed to callers.
type User struct {
	ID                 string   `json:"id"`
	Username           string   `json:"username"`
	Email              string   `json:"email"`
	PasswordHash       string   `json:"password,omitempty"`
	ProfilePicture     string   `json:"profilePicture,omitempty"`
	DietaryPreferences []string `json:"dietaryPreferences"`
}

// Sanitized returns a copy safe to hand outside the auth store.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// Clone returns a deep copy.
func (u User) Clone() User {
	u.DietaryPreferences = append([]string(nil), u.DietaryPreferences...)
	return u
}

// UserUpdate is a partial profile update. Nil fields are left untouched,
// so only fields declared here can ever be merged into a record.
type UserUpdate struct {
	Username           *string
	Email              *string
	ProfilePicture     *string
	DietaryPreferences *[]string
}

// Apply merges the update into u.
func (p UserUpdate) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = *p.ProfilePicture
	}
	if p.DietaryPreferences != nil {
		u.DietaryPreferences = append([]string(nil), *p.DietaryPreferences...)
	}
}
