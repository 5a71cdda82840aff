package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrPartNotFound is returned when a part is not found.
	ErrPartNotFound = errors.New("part not found")
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrForbidden is returned when the caller lacks the role or
	// ownership an operation requires.
	ErrForbidden = errors.New("not authorized to perform this action")
	// ErrEmptyOrder is returned when an order is submitted with no items.
	ErrEmptyOrder = errors.New("no order items")
	// ErrInsufficientStock is returned when a line quantity exceeds the
	// part's stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrOrderNotPaid is returned when delivery is attempted on an
	// unpaid order.
	ErrOrderNotPaid = errors.New("cannot deliver an unpaid order")
	// ErrInvalidQuantity is returned when a line quantity is not positive.
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrPartNotFound), errors.Is(err, ErrOrderNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrEmptyOrder), errors.Is(err, ErrInsufficientStock), errors.Is(err, ErrInvalidQuantity):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrOrderNotPaid):
		return NewHTTPError(http.StatusConflict, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
