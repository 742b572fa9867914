package ports

import "context"

// Emailer dispatches the email-verification message. Actual delivery is an
// external collaborator; the default implementation only logs the link.
type Emailer interface {
	SendVerification(ctx context.Context, email, fullName, verificationToken string) error
}
