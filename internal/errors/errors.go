package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for any failed login. The message is
	// deliberately identical for unknown users and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrItemNotFound is returned when a menu item does not exist.
	ErrItemNotFound = errors.New("menu item not found")
	// ErrInvalidQuantity is returned when a quantity is zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
	// ErrItemNotStaged is returned when removing an item absent from the current sale.
	ErrItemNotStaged = errors.New("item not found in current sale")
	// ErrEmptySale is returned when completing a sale with no staged lines.
	ErrEmptySale = errors.New("no items in current sale")
	// ErrCheckoutFailed is returned when the checkout transaction aborts.
	ErrCheckoutFailed = errors.New("failed to complete sale")
	// ErrSaleNotFound is returned when a completed sale does not exist.
	ErrSaleNotFound = errors.New("sale not found")
	// ErrUserNotFound is returned when a user record does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when creating a duplicate user id.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrAdminUndeletable is returned on attempts to delete an admin user.
	ErrAdminUndeletable = errors.New("admin users cannot be deleted")
	// ErrInvalidDateRange is returned when a report range is malformed.
	ErrInvalidDateRange = errors.New("start date cannot be greater than end date")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrItemNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ITEM_NOT_FOUND")
	case errors.Is(err, ErrInvalidQuantity):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_QUANTITY")
	case errors.Is(err, ErrItemNotStaged):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ITEM_NOT_STAGED")
	case errors.Is(err, ErrEmptySale):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_SALE")
	case errors.Is(err, ErrCheckoutFailed):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CHECKOUT_FAILED")
	case errors.Is(err, ErrSaleNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SALE_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrAdminUndeletable):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_UNDELETABLE")
	case errors.Is(err, ErrInvalidDateRange):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATE_RANGE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
