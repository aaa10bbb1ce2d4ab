// Package trigger provides functions that each fail in exactly one way.
//
// The authored failures return a *failure.Failure with a fixed message.
// The runtime failures are left to the Go runtime or the standard library,
// so their messages are whatever those naturally carry.
package trigger

import (
	"io"
	"io/fs"
	"strconv"

	"github.com/ryantking/faultdemo/internal/failure"
)

// sink keeps the results of the runtime triggers observable.
var sink int

// IO fails with a general input/output failure.
func IO() error {
	return failure.New(failure.KindIO, "Simulated IOException")
}

// MissingFile fails with a missing-file failure. It unwraps to fs.ErrNotExist.
func MissingFile() error {
	return &failure.Failure{
		Kind:    failure.KindMissingFile,
		Message: "Simulated FileNotFoundException",
		Err:     fs.ErrNotExist,
	}
}

// EndOfStream fails with an unexpected-end-of-stream failure. It unwraps
// to io.ErrUnexpectedEOF.
func EndOfStream() error {
	return &failure.Failure{
		Kind:    failure.KindEndOfStream,
		Message: "Simulated EOFException",
		Err:     io.ErrUnexpectedEOF,
	}
}

// Database fails with a database-operation failure. No connection is made.
func Database() error {
	return failure.New(failure.KindDatabase, "Simulated SQLException")
}

// MissingType fails with a missing-type failure.
func MissingType() error {
	return failure.New(failure.KindMissingType, "Simulated ClassNotFoundException")
}

// Arithmetic divides by zero.
func Arithmetic() error {
	divisor := 0
	sink = 10 / divisor
	return nil
}

// NullReference dereferences a nil pointer.
func NullReference() error {
	var str *string
	sink = len(*str)
	return nil
}

// OutOfBounds reads past the end of a five element slice.
func OutOfBounds() error {
	arr := make([]int, 5)
	index := 10
	sink = arr[index]
	return nil
}

// InvalidCast asserts an int held in an interface to a string.
func InvalidCast() error {
	var obj any = 0
	str := obj.(string)
	sink = len(str)
	return nil
}

// InvalidArgument fails with an invalid-argument failure.
func InvalidArgument() error {
	return failure.New(failure.KindInvalidArgument, "Simulated IllegalArgumentException")
}

// MalformedNumber parses a string that is not a number.
func MalformedNumber() error {
	num, err := strconv.Atoi("NotANumber")
	if err != nil {
		return err
	}
	sink = num
	return nil
}
