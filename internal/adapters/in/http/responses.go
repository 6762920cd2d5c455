package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"urbanmart/internal/core/application/usecases/commands"
	"urbanmart/internal/core/application/usecases/queries"
	"urbanmart/internal/core/domain/model/cart"
	"urbanmart/internal/core/domain/model/delivery"
	"urbanmart/internal/core/domain/model/hiring"
	"urbanmart/internal/core/domain/model/order"
	"urbanmart/internal/core/domain/model/product"
	"urbanmart/internal/core/domain/model/user"
	"urbanmart/internal/core/domain/services"
	"urbanmart/internal/pkg/errs"
)

// envelope is the uniform response shape: {success, data, message} on the
// happy path, {success: false, error} otherwise.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondData(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{Success: true, Message: message})
}

// respondError maps domain and application errors onto HTTP statuses.
// Unrecognized errors become an opaque 500 so internals never leak.
func respondError(c echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return c.JSON(status, envelope{Success: false, Error: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, cart.ErrItemNotInCart):
		return http.StatusNotFound

	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden

	case errors.Is(err, queries.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, commands.ErrOrderAlreadyHasAssignment),
		errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, delivery.ErrInvalidAssignmentTransition),
		errors.Is(err, delivery.ErrDeliveryInProgress),
		errors.Is(err, hiring.ErrRequestAlreadyResolved),
		errors.Is(err, user.ErrAlreadyOrgMember):
		return http.StatusConflict

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, services.ErrCartIsEmpty),
		errors.Is(err, services.ErrProductUnavailable),
		errors.Is(err, services.ErrMixedMerchants),
		errors.Is(err, commands.ErrInvalidAddress),
		errors.Is(err, commands.ErrPaymentMethodIsRequired),
		errors.Is(err, commands.ErrPasswordIsTooShort),
		errors.Is(err, commands.ErrDeliveryTargetIsInvalid),
		errors.Is(err, commands.ErrCourierIsRequiredOnAccept),
		errors.Is(err, commands.ErrRequestNotForOrganization),
		errors.Is(err, user.ErrNotDeliveryRole):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
