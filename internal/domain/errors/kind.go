package errors

import (
	"fmt"
	"net/http"

	"storeradar/internal/errors"
)

// Kind classifies failures so callers branch on category rather than message text.
type Kind int

const (
	KindUnknown Kind = iota
	// KindTransport covers upstream connectivity failures and non-2xx responses.
	KindTransport
	// KindDecode covers malformed or unexpected upstream payloads.
	KindDecode
	KindNotFound
	// KindConstraint covers store-layer failures such as constraint violations.
	KindConstraint
	// KindValidation covers user-actionable input problems.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindNotFound:
		return "not_found"
	case KindConstraint:
		return "constraint"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a kinded failure carrying the operation that produced it.
type Error struct {
	Kind Kind
	Op   string
	Code string
	Msg  string
	Err  error
}

// New creates a kinded error. cause may be nil.
func New(kind Kind, op, msg string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg, Err: cause}
}

// Newf is New with a formatted message.
func Newf(kind Kind, op string, cause error, format string, args ...any) *Error {
	return New(kind, op, fmt.Sprintf(format, args...), cause)
}

// WithCode overrides the default error code for the kind.
func (e *Error) WithCode(code string) *Error {
	cloned := *e
	cloned.Code = code

	return &cloned
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPCode maps the kind onto a status code
func (e *Error) HTTPCode() int {
	switch e.Kind {
	case KindTransport, KindDecode:
		return http.StatusBadGateway
	case KindNotFound:
		return http.StatusNotFound
	case KindConstraint:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (e *Error) ErrorCode() string {
	if e.Code != "" {
		return e.Code
	}

	switch e.Kind {
	case KindTransport:
		return "UPSTREAM_TRANSPORT"
	case KindDecode:
		return "PAYLOAD_DECODE"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConstraint:
		return "CONSTRAINT_VIOLATION"
	case KindValidation:
		return "VALIDATION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

func (e *Error) Message() string {
	return e.Msg
}

func (e *Error) Details() string {
	return e.Op
}

// KindOf reports the kind of the first classified error in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var kinded *Error
	if errors.As(err, &kinded) {
		return kinded.Kind
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		switch appErr.HTTPCode() {
		case http.StatusNotFound:
			return KindNotFound
		case http.StatusBadRequest, http.StatusUnprocessableEntity:
			return KindValidation
		case http.StatusConflict:
			return KindConstraint
		}
	}

	return KindUnknown
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
