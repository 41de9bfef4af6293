package clip

import "fmt"

// ParserError represents the type of error.
type ParserError uint

// ORDER IN WHICH THE ERROR CONSTANTS APPEAR MATTERS.
const (
	// ErrUnknown indicates a generic error.
	ErrUnknown ParserError = iota

	// ErrUnknownArgument indicates a lookup of a sub-argument id that was
	// never declared on the option.
	ErrUnknownArgument

	// ErrOptionNotFound indicates a lookup of an alias that was never
	// registered on the parser.
	ErrOptionNotFound

	// ErrEmptyAliases indicates an option registered without any alias.
	ErrEmptyAliases

	// ErrReservedAlias indicates an option registered under one of the
	// built-in help aliases (--help, -h, /?).
	ErrReservedAlias

	// ErrDuplicatedAlias indicates that an alias has been registered
	// more than once, on the same or on different options.
	ErrDuplicatedAlias

	// ErrDuplicatedArgument indicates that a sub-argument id appears more
	// than once within a single option.
	ErrDuplicatedArgument
)

func (e ParserError) String() string {
	errs := [...]string{
		"unknown",              // ErrUnknown
		"unknown argument",     // ErrUnknownArgument
		"option not found",     // ErrOptionNotFound
		"empty aliases",        // ErrEmptyAliases
		"reserved alias",       // ErrReservedAlias
		"duplicated alias",     // ErrDuplicatedAlias
		"duplicated argument",  // ErrDuplicatedArgument
	}
	if int(e) >= len(errs) {
		return "unrecognized error type"
	}

	return errs[e]
}

func (e ParserError) Error() string {
	return e.String()
}

// Error represents a parser error. Errors returned from registration and
// lookup calls are of this type. The error contains both a Type and Message.
type Error struct {
	// The type of error
	Type ParserError

	// The error message
	Message string
}

// Error returns the error's message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the error type, so that
// errors.Is(err, clip.ErrOptionNotFound) works as expected.
func (e *Error) Unwrap() error {
	return e.Type
}

func newError(tp ParserError, message string) *Error {
	return &Error{
		Type:    tp,
		Message: message,
	}
}

func newErrorf(tp ParserError, format string, args ...interface{}) *Error {
	return newError(tp, fmt.Sprintf(format, args...))
}
