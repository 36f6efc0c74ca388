// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"fmt"
	"iter"

	"cogentcore.org/svgbbox/math32"
	"github.com/tdewolff/parse/v2/strconv"
)

// Scanner reads numbers, arc flags and command letters from
// SVG path data and number lists such as the points attribute.
// Numbers may be separated by whitespace and at most one comma,
// or not at all where the grammar allows it: 1.5.3 is 1.5 then .3,
// and 1-2 is 1 then -2.
type Scanner struct {
	data []byte
	pos  int
}

// NewScanner returns a new [Scanner] over the given data.
func NewScanner(data string) *Scanner {
	return &Scanner{data: []byte(data)}
}

// Pos returns the current byte offset in the data.
func (s *Scanner) Pos() int {
	return s.pos
}

// Remainder returns the data that has not been consumed yet.
func (s *Scanner) Remainder() string {
	return string(s.data[s.pos:])
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// afterSeparators returns the position after any whitespace
// with at most one comma in it, starting at the current position.
func (s *Scanner) afterSeparators() int {
	i := s.pos
	for i < len(s.data) && isSpace(s.data[i]) {
		i++
	}
	if i < len(s.data) && s.data[i] == ',' {
		i++
		for i < len(s.data) && isSpace(s.data[i]) {
			i++
		}
	}
	return i
}

// skipSeparators consumes whitespace with at most one comma in it.
func (s *Scanner) skipSeparators() {
	s.pos = s.afterSeparators()
}

// Done returns whether only separators remain in the data.
// It does not consume anything.
func (s *Scanner) Done() bool {
	return s.afterSeparators() >= len(s.data)
}

// Letter consumes and returns the next token if it is a letter.
// It returns false and consumes nothing otherwise.
func (s *Scanner) Letter() (byte, bool) {
	i := s.afterSeparators()
	if i < len(s.data) && isLetter(s.data[i]) {
		s.pos = i + 1
		return s.data[i], true
	}
	return 0, false
}

// Number consumes the longest leading number in the data.
// A number that does not fit in a float32 is an error.
func (s *Scanner) Number() (float32, error) {
	s.skipSeparators()
	f, n := strconv.ParseFloat(s.data[s.pos:])
	if n == 0 {
		return 0, s.errorf("expected number")
	}
	v := float32(f)
	if !math32.IsFinite(v) {
		return 0, s.errorf("number out of range")
	}
	s.pos += n
	return v, nil
}

// Flag consumes a single-character arc flag, 0 or 1. The flag
// may be directly followed by the next number without a separator,
// as in "a5 5 0 1110 10".
func (s *Scanner) Flag() (bool, error) {
	s.skipSeparators()
	if s.pos >= len(s.data) {
		return false, s.errorf("expected flag")
	}
	switch s.data[s.pos] {
	case '0':
		s.pos++
		return false, nil
	case '1':
		s.pos++
		return true, nil
	}
	return false, s.errorf("expected flag 0 or 1")
}

// Point consumes the next two numbers as a point.
func (s *Scanner) Point() (math32.Vector2, error) {
	x, err := s.Number()
	if err != nil {
		return math32.Vector2{}, err
	}
	y, err := s.Number()
	if err != nil {
		return math32.Vector2{}, err
	}
	return math32.Vec2(x, y), nil
}

func (s *Scanner) errorf(msg string) error {
	if s.pos >= len(s.data) {
		return fmt.Errorf("%w: %s at end of data", ErrInvalidPath, msg)
	}
	return fmt.Errorf("%w: %s at offset %d (%q)", ErrInvalidPath, msg, s.pos, s.data[s.pos])
}

// Points returns an iterator over the pairs of numbers in the given
// number list, such as the points attribute of a polyline. It stops
// at the end of the data or at the first value that is not a number,
// and ignores a trailing unpaired number.
func Points(data string) iter.Seq[math32.Vector2] {
	return func(yield func(math32.Vector2) bool) {
		s := NewScanner(data)
		for {
			p, err := s.Point()
			if err != nil || !yield(p) {
				return
			}
		}
	}
}

// ParseNumber returns the leading number of the given attribute
// value, ignoring surrounding space and any unit suffix such as px.
// It returns false if the value does not start with a number.
func ParseNumber(value string) (float32, bool) {
	s := NewScanner(value)
	f, err := s.Number()
	if err != nil {
		return 0, false
	}
	return f, true
}
