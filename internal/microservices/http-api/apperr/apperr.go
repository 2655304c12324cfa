// Package apperr carries the HTTP-facing errors of the catalog API.
//
// Every error that reaches a handler is turned into an *Error and rendered as
// {"error": true, "msg": "..."}. Messages are client facing and stay in the
// API locale (Spanish).
package apperr

import (
	"errors"
	"net/http"
)

// Client-facing messages.
const (
	MsgNotFound        = "Objeto no encontrado"
	MsgCountryNotFound = "Pais no existe"
	MsgTypeNotFound    = "Tipo no existe"
	MsgHasUsers        = "Manga tiene usuarios asociados"
	MsgInvalidID       = "Identificador invalido"
	MsgInvalidBody     = "Cuerpo de la solicitud invalido"
	MsgInternal        = "Error interno del servidor"
	MsgTooManyRequests = "Demasiadas solicitudes"
)

// Error is an HTTP status plus a client-safe message. Cause is for logs only.
type Error struct {
	Status int
	Msg    string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Body is the JSON payload written for every error response.
func (e *Error) Body() Body {
	return Body{Error: true, Msg: e.Msg}
}

// Body is the wire shape of an error response.
type Body struct {
	Error bool   `json:"error"`
	Msg   string `json:"msg"`
}

func NotFound() *Error {
	return &Error{Status: http.StatusNotFound, Msg: MsgNotFound}
}

func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Msg: msg}
}

func Internal(cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Msg: MsgInternal, Cause: cause}
}

func TooManyRequests() *Error {
	return &Error{Status: http.StatusTooManyRequests, Msg: MsgTooManyRequests}
}

// From returns err as an *Error, wrapping anything unknown as Internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
