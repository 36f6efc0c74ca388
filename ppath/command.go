// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPath is returned, wrapped with the location of the
// problem, for path data that cannot be parsed.
var ErrInvalidPath = errors.New("invalid path data")

// MaxArgs is the largest number of operands of any command (the arc).
const MaxArgs = 7

// Command is one path data command with its operands, as given in
// the data. Uppercase letters have absolute coordinates and lowercase
// letters have coordinates relative to the current pen position.
// The arc flags are stored as 0 or 1.
type Command struct {
	Letter byte
	Args   [MaxArgs]float32
}

// cmdArgs is the number of operands of each command letter,
// indexed by its uppercase form. Letters not listed are invalid.
var cmdArgs = map[byte]int{
	'M': 2, // x y
	'L': 2, // x y
	'H': 1, // x
	'V': 1, // y
	'C': 6, // x1 y1 x2 y2 x y
	'S': 4, // x2 y2 x y
	'Q': 4, // x1 y1 x y
	'T': 2, // x y
	'A': 7, // rx ry rotation large-arc sweep x y
	'Z': 0,
}

// upper returns the uppercase form of an ASCII letter.
func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// NumArgs returns the number of operands of the given command
// letter, and false if it is not a path command.
func NumArgs(letter byte) (int, bool) {
	n, ok := cmdArgs[upper(letter)]
	return n, ok
}

// Op returns the uppercase command letter.
func (c Command) Op() byte {
	return upper(c.Letter)
}

// Relative returns whether the command coordinates are relative
// to the current pen position.
func (c Command) Relative() bool {
	return c.Letter >= 'a' && c.Letter <= 'z'
}

// Values returns the operands used by the command.
func (c Command) Values() []float32 {
	n, _ := NumArgs(c.Letter)
	return c.Args[:n]
}

func (c Command) String() string {
	var b strings.Builder
	b.WriteByte(c.Letter)
	for _, v := range c.Values() {
		fmt.Fprintf(&b, " %g", v)
	}
	return b.String()
}

// Parse parses the given path data into a list of commands. Commands
// start with a letter, and the last letter repeats implicitly while
// operands remain, except that the repeats of a move are lines.
// Before any letter, the command is a move. If the data is invalid,
// the commands up to the invalid one are returned with an error
// wrapping [ErrInvalidPath].
func Parse(data string) ([]Command, error) {
	s := NewScanner(data)
	var cmds []Command
	letter := byte('M')
	for !s.Done() {
		start := s.Pos()
		if l, ok := s.Letter(); ok {
			if _, known := NumArgs(l); !known {
				return cmds, fmt.Errorf("%w: unknown command %q at offset %d", ErrInvalidPath, l, start)
			}
			letter = l
		} else if upper(letter) == 'Z' {
			return cmds, fmt.Errorf("%w: operands after close path at offset %d", ErrInvalidPath, start)
		}
		cmd := Command{Letter: letter}
		if err := readArgs(s, &cmd); err != nil {
			return cmds, fmt.Errorf("command %c at offset %d: %w", letter, start, err)
		}
		cmds = append(cmds, cmd)
		switch letter {
		case 'M':
			letter = 'L'
		case 'm':
			letter = 'l'
		}
	}
	return cmds, nil
}

// MustParse is like [Parse] but panics on invalid data.
func MustParse(data string) []Command {
	cmds, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return cmds
}

// readArgs reads the operands of cmd, following the grammar of its
// letter. The two arc flags are single characters that may be
// followed directly by the next operand.
func readArgs(s *Scanner, cmd *Command) error {
	n, _ := NumArgs(cmd.Letter)
	for i := range n {
		if cmd.Op() == 'A' && (i == 3 || i == 4) {
			f, err := s.Flag()
			if err != nil {
				return err
			}
			if f {
				cmd.Args[i] = 1
			}
			continue
		}
		v, err := s.Number()
		if err != nil {
			return err
		}
		cmd.Args[i] = v
	}
	return nil
}
