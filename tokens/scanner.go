package tokens

import (
	"errors"
	"unicode/utf8"
)

// ErrOutOfBounds reports an advance past end of input. The state machine
// always peeks before advancing, so this error indicates a defect in the
// tokenizer, not malformed caller input.
var ErrOutOfBounds = errors.New("tokens: advance past end of input")

// scanner is a forward-only cursor over one line. Offsets count runes so
// that token spans are stable under multi-byte input.
type scanner struct {
	src string
	pos int // byte offset
	off int // rune offset
}

func (s *scanner) peek() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r, true
}

func (s *scanner) advance() (rune, error) {
	if s.pos >= len(s.src) {
		return 0, ErrOutOfBounds
	}
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += size
	s.off++
	return r, nil
}

func (s *scanner) offset() int {
	return s.off
}
