package dxfread

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrSyntax is returned for files which are not a sequence of
// group code/value pairs.
var ErrSyntax = errors.New("invalid DXF syntax")

// Tag is a group code/value pair.
type Tag struct {
	Code  int
	Value string
	Line  int // line of the group code, starting at 1
}

func (t Tag) String() string { return fmt.Sprintf("%d:%q", t.Code, t.Value) }

// Is returns true if t has the given code and value,
// ignoring surrounding spaces.
func (t Tag) Is(code int, value string) bool {
	return t.Code == code && strings.TrimSpace(t.Value) == value
}

// Name returns the value without surrounding spaces, as used
// for entity, table and section names.
func (t Tag) Name() string { return strings.TrimSpace(t.Value) }

// Float parses the value as a float.
func (t Tag) Float() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: group %d: invalid number %q", t.Line+1, t.Code, t.Value)
	}
	return f, nil
}

// Int parses the value as an integer. Some writers emit
// integers with a fractional part, which is truncated.
func (t Tag) Int() (int, error) {
	v := strings.TrimSpace(t.Value)
	i, err := strconv.Atoi(v)
	if err == nil {
		return i, nil
	}
	if f, errF := strconv.ParseFloat(v, 64); errF == nil {
		return int(f), nil
	}
	return 0, fmt.Errorf("line %d: group %d: invalid integer %q", t.Line+1, t.Code, t.Value)
}

// Scanner splits an ASCII DXF stream into tags.
// Both LF and CRLF line endings are accepted.
type Scanner struct {
	lines  *bufio.Scanner
	line   int
	tag    Tag
	err    error
	unread bool
}

// NewScanner returns a scanner reading from r,
// which must already be decoded to UTF-8.
func NewScanner(r io.Reader) *Scanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Scanner{lines: lines}
}

func (s *Scanner) readLine() (string, bool) {
	if !s.lines.Scan() {
		return "", false
	}
	s.line++
	return strings.TrimSuffix(s.lines.Text(), "\r"), true
}

// Next advances to the next tag, returning false at the
// end of the input or on error. Comments (group 999) are skipped.
func (s *Scanner) Next() bool {
	if s.unread {
		s.unread = false
		return true
	}
	for s.err == nil {
		code, ok := s.readLine()
		if !ok {
			s.err = s.lines.Err()
			return false
		}
		line := s.line
		if line == 1 {
			code = strings.TrimPrefix(code, "\ufeff")
		}
		value, ok := s.readLine()
		if !ok {
			s.err = s.lines.Err()
			if s.err == nil && strings.TrimSpace(code) != "" {
				s.err = fmt.Errorf("%w: line %d: group code without value", ErrSyntax, line)
			}
			return false
		}
		c, err := strconv.Atoi(strings.TrimSpace(code))
		if err != nil {
			s.err = fmt.Errorf("%w: line %d: invalid group code %q", ErrSyntax, line, code)
			return false
		}
		if c == 999 {
			continue
		}
		s.tag = Tag{Code: c, Value: value, Line: line}
		return true
	}
	return false
}

// Tag returns the current tag.
func (s *Scanner) Tag() Tag { return s.tag }

// Unread makes the next call to Next return the current tag again.
func (s *Scanner) Unread() { s.unread = true }

// Err returns the first error met, or nil at the end of the input.
func (s *Scanner) Err() error { return s.err }
