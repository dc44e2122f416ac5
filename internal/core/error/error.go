package errx

import (
	"errors"
	"fmt"
)

// Kind classifies an AppError for the presentation layers.
type Kind string

const (
	KindNotFound    Kind = "not_found"
	KindUnavailable Kind = "unavailable"
	KindSource      Kind = "source"
)

const (
	// ProductNotFoundMessage is shown when a lookup name matches nothing.
	ProductNotFoundMessage = "product not found"
	// SourceErrorMessage describes failures while reading the raw catalog.
	SourceErrorMessage = "catalog source failed"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// RedisNotFoundMessage is used when the catalog key does not exist.
	RedisNotFoundMessage = "catalog key not found in redis"
)

var (
	ErrProductNotFound    = errors.New(ProductNotFoundMessage)
	ErrPricingUnavailable = errors.New("pricing unavailable")
)

// AppError wraps an underlying error with a kind and a safe message.
type AppError struct {
	Err     error
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, kind Kind, message string) *AppError {
	return &AppError{
		Err:     err,
		Kind:    kind,
		Message: message,
	}
}

// NotFound reports that no product is named name.
func NotFound(name string) *AppError {
	return New(ErrProductNotFound, KindNotFound, fmt.Sprintf("no product named %q", name))
}

// Unavailable reports that no pricing can be derived, for reason.
func Unavailable(reason string) *AppError {
	return New(ErrPricingUnavailable, KindUnavailable, reason)
}

// WrapSource tags a catalog source failure.
func WrapSource(err error, source string) error {
	if err == nil {
		return nil
	}
	return New(err, KindSource, SourceErrorMessage+" ("+source+")")
}

// KindOf returns the kind of the first AppError in err's chain, or "".
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}
