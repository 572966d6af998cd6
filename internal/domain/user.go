package domain

import "time"

type User struct {
	ID            int32     `json:"id"`
	AuthSubject   string    `json:"-"` // identity-provider subject, unique
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	PhoneNumber   string    `json:"phone_number"`
	PhoneVerified bool      `json:"phone_verified"`
	AvatarURL     string    `json:"avatar_url"`
	CreatedOn     time.Time `json:"created_on"`
	UpdatedOn     time.Time `json:"updated_on"`
}
