package sdk

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ToJSON marshals a value for a payload or a state record, aborting on
// failure since a broken encode means corrupted contract state.
func ToJSON[T any](v T, objectType string) string {
	b, err := json.Marshal(v)
	if err != nil {
		Abort(fmt.Sprintf("failed to marshal %s: %v", objectType, err))
	}
	return string(b)
}

// FromJSON decodes an incoming payload, reverting with invalid_argument so a
// malformed call never touches state.
func FromJSON[T any](data string, objectType string) *T {
	data = strings.TrimSpace(data)
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		Revert(fmt.Sprintf("failed to unmarshal %s: %v", objectType, err), ErrInvalidArgument)
	}
	return &v
}

// U64 is an unsigned integer that rides through JSON as a decimal string, so
// values survive clients whose native numbers stop at 2^53. Wire arguments
// like amounts, from_index and limit all use it.
type U64 uint64

// MarshalJSON quotes the decimal form.
func (u U64) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatUint(uint64(u), 10))), nil
}

// UnmarshalJSON accepts both the quoted form and a bare JSON number for
// convenience when calls are handwritten.
func (u *U64) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid u64 %q: %w", string(b), err)
	}
	*u = U64(v)
	return nil
}

// Strptr wraps a string into the pointer form the export ABI wants.
func Strptr(s string) *string { return &s }
