package errors

import log "github.com/sirupsen/logrus"

// Error codes for decode and encode failures.
const (
	ErrUnknownType = iota + 1
	ErrMalformedPayload
	ErrUnsafeStringField
	ErrVersionUnsupported
	ErrTransport = 500
)

type Error interface {
	Fatal() bool
	Temporary() bool
	Code() int
	Reason() string
	Caller() string
	Log()
}

// UnknownTypeError reports a type id with no registered decoder.
// Routine when the peer runs a newer protocol revision.
func UnknownTypeError(reason string, caller string) Error {
	return &genericErr{
		code:   ErrUnknownType,
		reason: reason,
		caller: caller,
	}
}

// MalformedPayloadError reports a known type whose payload could not be
// parsed (wrong token count, non-numeric field, failed sub-validator).
func MalformedPayloadError(reason string, caller string) Error {
	return &genericErr{
		code:   ErrMalformedPayload,
		reason: reason,
		caller: caller,
	}
}

// UnsafeStringError reports a free-form field value that would corrupt
// the wire format. Raised at message construction, before any I/O.
func UnsafeStringError(reason string, caller string) Error {
	return &genericErr{
		code:   ErrUnsafeStringField,
		reason: reason,
		caller: caller,
	}
}

// VersionUnsupportedError reports an attempt to send a type outside the
// version bounds negotiated with the peer.
func VersionUnsupportedError(reason string, caller string) Error {
	return &genericErr{
		code:   ErrVersionUnsupported,
		reason: reason,
		caller: caller,
	}
}

func NonFatalError(code int, reason string, caller string) Error {
	return &genericErr{
		fatal:     false,
		temporary: false,
		code:      code,
		reason:    reason,
		caller:    caller,
	}
}

func FatalError(code int, reason string, caller string) Error {
	return &genericErr{
		fatal:     true,
		temporary: false,
		code:      code,
		reason:    reason,
		caller:    caller,
	}
}

func TemporaryError(code int, reason string, caller string) Error {
	return &genericErr{
		fatal:     false,
		temporary: true,
		code:      code,
		reason:    reason,
		caller:    caller,
	}
}

type genericErr struct {
	fatal     bool
	temporary bool
	code      int
	reason    string
	caller    string
}

func (err *genericErr) Log() {
	log.Errorf("[%s]: Error type: %d, Reason: %s", err.Caller(), err.Code(), err.Reason())
}

func (err *genericErr) Fatal() bool {
	return err.fatal
}

func (err *genericErr) Temporary() bool {
	return err.temporary
}

func (err *genericErr) Code() int {
	return err.code
}

func (err *genericErr) Caller() string {
	return err.caller
}

func (err *genericErr) Reason() string {
	return err.reason
}
