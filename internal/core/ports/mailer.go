package ports

import "context"

// ActivationMailer delivers account activation emails.
type ActivationMailer interface {
	SendActivation(ctx context.Context, to string, token string) error
}
