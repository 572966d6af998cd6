package domain

import "time"

// PhoneVerification is a pending OTP challenge. CodeHash is a bcrypt hash;
// the plain code exists only in the SMS/email sent to the user.
type PhoneVerification struct {
	ID          string    `json:"id"` // uuid
	UserID      int32     `json:"user_id"`
	PhoneNumber string    `json:"phone_number"`
	CodeHash    string    `json:"-"`
	Attempts    int32     `json:"attempts"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedOn   time.Time `json:"created_on"`
}
