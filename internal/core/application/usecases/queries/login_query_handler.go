package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginQueryHandler verifies credentials against the stored bcrypt hash.
type LoginQueryHandler struct {
	db *gorm.DB
}

// NewLoginQueryHandler creates a handler for login queries.
func NewLoginQueryHandler(db *gorm.DB) LoginQueryHandler {
	return LoginQueryHandler{db: db}
}

// Handle executes the login query.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginQueryResponse{}, err
	}

	var (
		id            uuid.UUID
		email, name   string
		passwordHash  string
		role          string
		deliveryOrgID uuid.NullUUID
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, email, name, password_hash, role, delivery_org_id
		FROM users
		WHERE email = ?
	`, query.Email()).Row()

	err := row.Scan(&id, &email, &name, &passwordHash, &role, &deliveryOrgID)
	if errors.Is(err, sql.ErrNoRows) {
		return LoginQueryResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginQueryResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password())) != nil {
		return LoginQueryResponse{}, ErrInvalidCredentials
	}

	response := LoginQueryResponse{
		ID:    id.String(),
		Email: email,
		Name:  name,
		Role:  role,
	}
	if deliveryOrgID.Valid {
		response.DeliveryOrgID = deliveryOrgID.UUID.String()
	}

	return response, nil
}
