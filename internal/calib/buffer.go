// Package calib reads MapCal calibration files (CHARTCAL.DIR): it splits
// the stream into records and looks up fields within a record.
package calib

import "strings"

// Buffer stores the logical lines of one calibration record (a "section").
//
// The buffer is an append-only log read with a first-match rule: Field
// returns the value of the earliest line carrying the key. Lines appended
// while the record is being converted (for example by header commands in
// the comment field) are visible to every later lookup but never shadow a
// field the record already defines.
type Buffer struct {
	lines []string
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Reset empties the buffer for reuse.
func (b *Buffer) Reset() { b.lines = b.lines[:0] }

// Len returns the number of logical lines.
func (b *Buffer) Len() int { return len(b.lines) }

// Empty reports whether the buffer holds no lines.
func (b *Buffer) Empty() bool { return len(b.lines) == 0 }

// AddLine appends text as a new logical line.
func (b *Buffer) AddLine(text string) {
	b.lines = append(b.lines, text)
}

// AppendLine joins text onto the last logical line with a newline.
func (b *Buffer) AppendLine(text string) error {
	if b.Empty() {
		return ErrNoLineToAppend
	}
	b.lines[len(b.lines)-1] += "\n" + text
	return nil
}

// Line returns the n-th logical line, or "" when n is out of range.
func (b *Buffer) Line(n int) string {
	if n < 0 || n >= len(b.lines) {
		return ""
	}
	return b.lines[n]
}

// Lines returns a copy of all logical lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Title returns line 0 with its enclosing brackets removed.
func (b *Buffer) Title() string {
	first := b.Line(0)
	if len(first) < 2 {
		return ""
	}
	return first[1 : len(first)-1]
}

// Field returns the raw value after "key=" on the first matching line.
// A line only matches when it is longer than the key plus the '=', so an
// empty assignment like "SK=" is treated as if the key were missing.
func (b *Buffer) Field(key string) string {
	n := len(key)
	for _, line := range b.lines {
		if len(line) > n+1 && strings.HasPrefix(line, key) && line[n] == '=' {
			return line[n+1:]
		}
	}
	return ""
}

// Has reports whether Field(key) would find a value.
func (b *Buffer) Has(key string) bool {
	return b.Field(key) != ""
}

// FieldString returns the index-th comma separated sub-field of key.
func (b *Buffer) FieldString(key string, index int) string {
	return SubField(b.Field(key), index)
}

// FieldFloat returns the index-th sub-field of key as a number.
func (b *Buffer) FieldFloat(key string, index int) Float {
	return ParseFloat(b.FieldString(key, index))
}

// FieldInt returns the index-th sub-field of key truncated toward zero.
func (b *Buffer) FieldInt(key string, index int) Int {
	return ParseInt(b.FieldString(key, index))
}

// SubField returns the index-th comma separated part of s, or "" when s
// has fewer parts.
func SubField(s string, index int) string {
	if s == "" || index < 0 {
		return ""
	}
	for ; index > 0; index-- {
		i := strings.IndexByte(s, ',')
		if i < 0 {
			return ""
		}
		s = s[i+1:]
	}
	if i := strings.IndexByte(s, ','); i >= 0 {
		return s[:i]
	}
	return s
}
