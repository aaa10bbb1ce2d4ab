// Package demo runs the failure demonstration cases.
package demo

import (
	"github.com/ryantking/faultdemo/internal/failure"
	"github.com/ryantking/faultdemo/internal/trigger"
)

// Case pairs a trigger with the kinds its catching region declares.
type Case struct {
	Kind     failure.Kind   // Kind the trigger raises
	Trigger  func() error   // Fails every time it is called
	Catches  []failure.Kind // Tried in order; narrower kinds first
	Expected string         // Authored message, empty when the runtime supplies it
}

// Catalog returns the demonstration cases in execution order.
func Catalog() []Case {
	return []Case{
		{Kind: failure.KindIO, Trigger: trigger.IO, Catches: catches(failure.KindIO), Expected: "Simulated IOException"},
		{Kind: failure.KindMissingFile, Trigger: trigger.MissingFile, Catches: catches(failure.KindMissingFile), Expected: "Simulated FileNotFoundException"},
		{Kind: failure.KindEndOfStream, Trigger: trigger.EndOfStream, Catches: catches(failure.KindEndOfStream, failure.KindIO), Expected: "Simulated EOFException"},
		{Kind: failure.KindDatabase, Trigger: trigger.Database, Catches: catches(failure.KindDatabase), Expected: "Simulated SQLException"},
		{Kind: failure.KindMissingType, Trigger: trigger.MissingType, Catches: catches(failure.KindMissingType), Expected: "Simulated ClassNotFoundException"},
		{Kind: failure.KindArithmetic, Trigger: trigger.Arithmetic, Catches: catches(failure.KindArithmetic)},
		{Kind: failure.KindNullReference, Trigger: trigger.NullReference, Catches: catches(failure.KindNullReference)},
		{Kind: failure.KindOutOfBounds, Trigger: trigger.OutOfBounds, Catches: catches(failure.KindOutOfBounds)},
		{Kind: failure.KindInvalidCast, Trigger: trigger.InvalidCast, Catches: catches(failure.KindInvalidCast)},
		{Kind: failure.KindInvalidArgument, Trigger: trigger.InvalidArgument, Catches: catches(failure.KindInvalidArgument), Expected: "Simulated IllegalArgumentException"},
		{Kind: failure.KindMalformedNumber, Trigger: trigger.MalformedNumber, Catches: catches(failure.KindMalformedNumber)},
	}
}

func catches(kinds ...failure.Kind) []failure.Kind { return kinds }
