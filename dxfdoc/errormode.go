package dxfdoc

import "fmt"

// ErrorMode defines how recoverable problems are handled,
// both when reading a file and when rendering it.
type ErrorMode uint8

const (
	// WarnErrorMode logs the problem and goes on. This is the default.
	WarnErrorMode ErrorMode = iota
	// IgnoreErrorMode silently goes on.
	IgnoreErrorMode
	// StrictErrorMode stops at the first problem and returns an error.
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case WarnErrorMode:
		return "warn"
	case IgnoreErrorMode:
		return "ignore"
	case StrictErrorMode:
		return "strict"
	default:
		return fmt.Sprintf("<unknown error mode %d>", m)
	}
}
