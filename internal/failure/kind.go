// Package failure classifies the failures raised by demonstration triggers.
package failure

import (
	"fmt"
)

// Kind identifies one failure kind from a fixed, closed set.
type Kind int

// Failure kinds, in demonstration order.
const (
	KindUnknown Kind = iota
	KindIO
	KindMissingFile
	KindEndOfStream
	KindDatabase
	KindMissingType
	KindArithmetic
	KindNullReference
	KindOutOfBounds
	KindInvalidCast
	KindInvalidArgument
	KindMalformedNumber
)

type kindInfo struct {
	slug   string
	label  string
	parent Kind
}

var kinds = [...]kindInfo{
	KindUnknown:         {"unknown", "unknown failure", KindUnknown},
	KindIO:              {"io", "general input/output failure", KindUnknown},
	KindMissingFile:     {"missing-file", "missing-file failure", KindIO},
	KindEndOfStream:     {"end-of-stream", "unexpected-end-of-stream failure", KindIO},
	KindDatabase:        {"database", "database-operation failure", KindUnknown},
	KindMissingType:     {"missing-type", "missing-type/class failure", KindUnknown},
	KindArithmetic:      {"arithmetic", "arithmetic failure", KindUnknown},
	KindNullReference:   {"null-reference", "null-reference dereference failure", KindUnknown},
	KindOutOfBounds:     {"out-of-bounds", "out-of-bounds index access failure", KindUnknown},
	KindInvalidCast:     {"invalid-cast", "invalid type-cast failure", KindUnknown},
	KindInvalidArgument: {"invalid-argument", "invalid-argument failure", KindUnknown},
	KindMalformedNumber: {"malformed-number", "malformed-number-parse failure", KindInvalidArgument},
}

// Kinds returns every known kind in demonstration order. KindUnknown is not included.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds)-1)
	for k := KindIO; int(k) < len(kinds); k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) info() kindInfo {
	if k < 0 || int(k) >= len(kinds) {
		return kinds[KindUnknown]
	}
	return kinds[k]
}

// Label returns the human-readable name printed in front of "caught:".
func (k Kind) Label() string { return k.info().label }

// Slug returns the short identifier used on the command line.
func (k Kind) Slug() string { return k.info().slug }

func (k Kind) String() string { return k.Slug() }

// Parent returns the broader kind k belongs to, or KindUnknown for a root kind.
func (k Kind) Parent() Kind { return k.info().parent }

// Includes reports whether a catching region declared for k accepts a
// failure of kind other: other is k or one of k's narrower kinds.
func (k Kind) Includes(other Kind) bool {
	for c := other; c != KindUnknown; c = c.Parent() {
		if c == k {
			return true
		}
	}
	return false
}

// MarshalText encodes the kind as its slug.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.Slug()), nil
}

// UnmarshalText decodes a slug produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind looks up a kind by slug.
func ParseKind(slug string) (Kind, error) {
	for _, k := range Kinds() {
		if k.Slug() == slug {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, slug)
}
