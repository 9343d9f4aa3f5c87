package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain error taxonomy. Services return these typed errors so that handlers
// (and callers embedding the services as a library) can render the specific
// failure kind and its carried context instead of a generic message.

// NotFoundError indicates the referenced entity id does not exist.
type NotFoundError struct {
	Entidad string // "producto", "servicio", "comision", "usuario", …
	ID      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s no encontrado: %s", e.Entidad, e.ID)
}

func NewNotFound(entidad, id string) *NotFoundError {
	return &NotFoundError{Entidad: entidad, ID: id}
}

// ValidationError indicates bad input: empty required field, non-positive
// amount or quantity, value outside its allowed set.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// InsufficientStockError carries the product name and the quantities involved
// so callers can report "stock insuficiente: disponible 3, solicitado 5".
type InsufficientStockError struct {
	Producto    string
	StockActual int
	Solicitado  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente de %s: disponible %d, solicitado %d",
		e.Producto, e.StockActual, e.Solicitado)
}

// ConflictError indicates a uniqueness or state conflict (duplicate category
// name, commission no longer editable, …).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func NewConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// StorageError wraps a repository-layer failure. Not decomposed further:
// connectivity and constraint problems surface to the caller as one kind.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("error de almacenamiento en %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func NewStorage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// HTTPStatus maps a domain error to the status code rendered at the API edge.
func HTTPStatus(err error) int {
	var nf *NotFoundError
	var ve *ValidationError
	var is *InsufficientStockError
	var ce *ConflictError
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &is):
		return http.StatusConflict
	case errors.As(err, &ce):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
