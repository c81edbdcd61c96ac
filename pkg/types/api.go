package types

import (
	"errors"
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindConfig   ErrKind = iota // invalid option or flag value
	ErrKindNotFound                // unknown algorithm or array name
	ErrKindLimit                   // input outside the configured Limits
	ErrKindState                   // run ended in an unexpected state
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidInput indicates a malformed option, flag or input sequence.
	ErrInvalidInput = &Error{Kind: ErrKindConfig, Msg: "invalid input"}
	// ErrUnknownAlgorithm indicates no sort strategy has the requested name.
	ErrUnknownAlgorithm = &Error{Kind: ErrKindNotFound, Msg: "unknown algorithm"}
	// ErrLimitExceeded indicates an input outside the configured limits.
	ErrLimitExceeded = &Error{Kind: ErrKindLimit, Msg: "limit exceeded"}
	// ErrNotSorted indicates a run finished without sorting its input.
	ErrNotSorted = &Error{Kind: ErrKindState, Msg: "result is not sorted"}
)

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind, true
	}
	return 0, false
}

// -----------------------------------------------------------------------------
// Input Kinds
// -----------------------------------------------------------------------------

// InputKind selects how an input sequence is generated.
type InputKind uint8

const (
	InputRandom     InputKind = iota // uniform values in [low, high]
	InputShuffled                    // permutation of 1..n
	InputAscending                   // 1..n
	InputDescending                  // n..1
)

var inputKindNames = [...]string{
	InputRandom:     "random",
	InputShuffled:   "shuffled",
	InputAscending:  "ascending",
	InputDescending: "descending",
}

// String implements the Stringer interface for InputKind.
func (k InputKind) String() string {
	if int(k) < len(inputKindNames) {
		return inputKindNames[k]
	}
	return fmt.Sprintf("UNKNOWN_KIND_%d", k)
}

// InputKinds returns every input kind in declaration order.
func InputKinds() []InputKind {
	return []InputKind{InputRandom, InputShuffled, InputAscending, InputDescending}
}

// ParseInputKind maps a name (case-insensitive) to its InputKind.
func ParseInputKind(s string) (InputKind, error) {
	for i, name := range inputKindNames {
		if strings.EqualFold(s, name) {
			return InputKind(i), nil
		}
	}
	return 0, fmt.Errorf("input kind %q: %w", s, ErrInvalidInput)
}
