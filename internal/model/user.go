package model

import "time"

// User is a registered library member. Users are never mutated after creation.
type User struct {
	ID             string    `json:"id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	Phone          *string   `json:"phone"`
	Institution    *string   `json:"institution"`
	AreaOfInterest *string   `json:"areaOfInterest"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewUser is the registration payload.
type NewUser struct {
	FullName       string  `json:"fullName" validate:"required,max=200"`
	Email          string  `json:"email" validate:"required,email,max=254"`
	Phone          *string `json:"phone" validate:"omitempty,max=50"`
	Institution    *string `json:"institution" validate:"omitempty,max=200"`
	AreaOfInterest *string `json:"areaOfInterest" validate:"omitempty,max=100"`
}

// Clone returns a deep copy of u.
func (u User) Clone() User {
	u.Phone = cloneString(u.Phone)
	u.Institution = cloneString(u.Institution)
	u.AreaOfInterest = cloneString(u.AreaOfInterest)
	return u
}
