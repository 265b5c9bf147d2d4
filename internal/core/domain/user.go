package domain

import (
	"errors"
	"time"
)

// ActivationTokenLength is the number of hex characters in an activation token.
const ActivationTokenLength = 16

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidToken = errors.New("invalid activation token")
var ErrEmailInUse = errors.New("email already in use")
var ErrEmailDelivery = errors.New("activation email delivery failed")

// User models a registered account.
//
// A user is created inactive with a non-empty activation token; successful
// activation flips Inactive to false and clears the token. No other
// combination is produced by the defined operations.
type User struct {
	ID              string
	Username        string
	Email           string
	PasswordHash    string
	Inactive        bool
	ActivationToken string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
