package transform

import "strings"

// Policy selects what happens to values that are empty after trimming.
type Policy int

const (
	// KeepEmpty trims but never removes anything.
	KeepEmpty Policy = iota
	// DropEmpty trims and removes values whose trimmed form is empty.
	DropEmpty
)

func (p Policy) String() string {
	if p == DropEmpty {
		return "drop-empty"
	}
	return "keep-empty"
}

// Space returns s without leading and trailing white space, as defined by
// [unicode.IsSpace]. A blank s yields "".
func Space(s string) string {
	return strings.TrimSpace(s)
}

// Optional trims the string s points to. It returns nil when s is nil or
// when nothing is left after trimming, so a blank value collapses to absent.
// The pointee of s is never modified.
func Optional(s *string) *string {
	if s == nil {
		return nil
	}
	t := Space(*s)
	if t == "" {
		return nil
	}
	return &t
}

// keep reports whether a trimmed value survives p.
func (p Policy) keep(trimmed string) bool {
	return p != DropEmpty || trimmed != ""
}
