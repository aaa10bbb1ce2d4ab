package failure

import (
	"errors"
)

// Sentinel errors for failure package.
var (
	// ErrEscaped indicates a failure that no declared catching region accepted.
	ErrEscaped = errors.New("failure escaped its catching region")

	// ErrNoFailure indicates a trigger that completed without failing.
	ErrNoFailure = errors.New("trigger completed without failing")

	// ErrUnknownKind indicates a slug that names no failure kind.
	ErrUnknownKind = errors.New("unknown failure kind")
)

// Failure is a classified failure produced by a trigger.
type Failure struct {
	Kind    Kind   // Classified kind
	Message string // Text printed after "caught:"
	Err     error  // Underlying error, nil for authored failures without a cause
}

// New creates an authored failure of the given kind.
func New(kind Kind, message string) *Failure {
	return &Failure{Kind: kind, Message: message}
}

// Wrap classifies err as kind, keeping err's own text as the message.
func Wrap(kind Kind, err error) *Failure {
	return &Failure{Kind: kind, Message: err.Error(), Err: err}
}

// Error returns the failure message.
func (f *Failure) Error() string {
	return f.Message
}

// Unwrap returns the underlying error.
func (f *Failure) Unwrap() error {
	return f.Err
}

// IsEscaped checks if an error is ErrEscaped.
func IsEscaped(err error) bool {
	return errors.Is(err, ErrEscaped)
}

// IsNoFailure checks if an error is ErrNoFailure.
func IsNoFailure(err error) bool {
	return errors.Is(err, ErrNoFailure)
}

// IsUnknownKind checks if an error is ErrUnknownKind.
func IsUnknownKind(err error) bool {
	return errors.Is(err, ErrUnknownKind)
}

// AsFailure checks if an error is a Failure and extracts it.
func AsFailure(err error, target **Failure) bool {
	var f *Failure
	if errors.As(err, &f) {
		*target = f
		return true
	}
	return false
}

// KindOf returns the kind of the outermost Failure in err's chain.
func KindOf(err error) Kind {
	var f *Failure
	if AsFailure(err, &f) {
		return f.Kind
	}
	return KindUnknown
}
