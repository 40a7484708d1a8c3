package domain

import "errors"

// ErrInvalidStack is returned when a label does not name a dispatch stack
var ErrInvalidStack = errors.New("invalid dispatch stack")

// Stack represents the dispatch stack a package is sorted into
type Stack struct {
	value string
}

// Stack labels. These strings are compared externally and must not change.
const (
	stackStandard = "STANDARD"
	stackSpecial  = "SPECIAL"
	stackRejected = "REJECTED"
)

// Predefined Stack instances
var (
	// StackStandard holds packages that are neither bulky nor heavy
	StackStandard = Stack{value: stackStandard}
	// StackSpecial holds packages that are bulky or heavy, but not both
	StackSpecial = Stack{value: stackSpecial}
	// StackRejected holds packages that are both bulky and heavy
	StackRejected = Stack{value: stackRejected}
)

// ParseStack returns the Stack with the given label. Matching is case-sensitive.
func ParseStack(s string) (Stack, error) {
	switch s {
	case stackStandard, stackSpecial, stackRejected:
		return Stack{value: s}, nil
	default:
		return Stack{}, ErrInvalidStack
	}
}

// String returns the stack label
func (s Stack) String() string {
	return s.value
}

// IsZero reports whether s is the zero Stack, which names no stack
func (s Stack) IsZero() bool {
	return s.value == ""
}

// Equals checks if two stacks are equal
func (s Stack) Equals(other Stack) bool {
	return s.value == other.value
}

// IsMoreRestrictiveThan orders stacks STANDARD < SPECIAL < REJECTED
func (s Stack) IsMoreRestrictiveThan(other Stack) bool {
	return s.rank() > other.rank()
}

func (s Stack) rank() int {
	switch s.value {
	case stackRejected:
		return 3
	case stackSpecial:
		return 2
	case stackStandard:
		return 1
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler
func (s Stack) MarshalText() ([]byte, error) {
	return []byte(s.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Stack) UnmarshalText(text []byte) error {
	stack, err := ParseStack(string(text))
	if err != nil {
		return err
	}
	*s = stack
	return nil
}
