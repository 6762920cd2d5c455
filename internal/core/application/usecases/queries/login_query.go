package queries

import (
	"errors"

	"urbanmart/internal/pkg/guard"
)

var ErrLoginQueryIsNotConstructed = errors.New(
	"LoginQuery must be created via NewLoginQuery constructor",
)

// ErrInvalidCredentials is returned for an unknown email or a wrong password.
// Both cases share one error so callers cannot probe which emails exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginQuery verifies a user's credentials.
type LoginQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a login query.
func NewLoginQuery(email, password string) (LoginQuery, error) {
	if email == "" || password == "" {
		return LoginQuery{}, ErrInvalidCredentials
	}

	return LoginQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Email returns the login email.
func (q LoginQuery) Email() string {
	return q.email
}

// Password returns the plaintext password to verify.
func (q LoginQuery) Password() string {
	return q.password
}

// LoginQueryResponse represents an authenticated user. The password hash never
// leaves the handler.
type LoginQueryResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	DeliveryOrgID string `json:"deliveryOrgId,omitempty"`
}
