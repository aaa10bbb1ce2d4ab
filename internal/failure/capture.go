package failure

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// Capture calls fn and returns its failure classified. A panic raised by
// fn is recovered and classified from the runtime error it carries.
func Capture(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = classifyPanic(r)
		}
	}()
	return Classify(fn())
}

// Classify turns a returned error into a *Failure. Errors that already
// carry a Failure are returned unchanged; anything unrecognized becomes
// KindUnknown, which no catching region accepts.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var f *Failure
	if errors.As(err, &f) {
		return err
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return Wrap(KindMalformedNumber, err)
	}

	return Wrap(KindUnknown, err)
}

func classifyPanic(r any) error {
	switch v := r.(type) {
	case *runtime.TypeAssertionError:
		return Wrap(KindInvalidCast, v)
	case runtime.Error:
		msg := v.Error()
		switch {
		case strings.Contains(msg, "divide by zero"):
			return Wrap(KindArithmetic, v)
		case strings.Contains(msg, "nil pointer dereference"):
			return Wrap(KindNullReference, v)
		case strings.Contains(msg, "index out of range"), strings.Contains(msg, "slice bounds out of range"):
			return Wrap(KindOutOfBounds, v)
		default:
			return Wrap(KindUnknown, v)
		}
	case error:
		return Classify(v)
	default:
		return Wrap(KindUnknown, fmt.Errorf("[%T]: %v", r, r))
	}
}

// Catch tries each declared kind in order and returns the first whose
// catching region accepts err. The boolean is false when err escapes.
func Catch(err error, declared ...Kind) (Kind, bool) {
	kind := KindOf(err)
	if kind == KindUnknown {
		return KindUnknown, false
	}

	for _, d := range declared {
		if d.Includes(kind) {
			return d, true
		}
	}
	return KindUnknown, false
}
