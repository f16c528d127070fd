package tokens

import (
	"iter"
	"strings"
)

// Tokenize splits one line into tokens using DefaultConfig. It is a pure
// function over its input: no state survives the call, so concurrent calls
// on independent lines need no synchronization. It is total over all text:
// unterminated quotes and brackets and trailing escapes are tolerated, never
// reported as errors.
func Tokenize(line string) []Token {
	return DefaultConfig().Tokenize(line)
}

// Tokenize splits one line according to the config. See Tokenize.
func (c Config) Tokenize(line string) []Token {
	m := &machine{config: c}
	s := &scanner{src: line}
	for {
		if _, ok := s.peek(); !ok {
			break
		}
		at := s.offset()
		r, err := s.advance()
		if err != nil {
			// peek above guarantees input remains
			panic(err)
		}
		m.step(r, at, s.offset())
	}
	m.finish(s.offset())
	return m.tokens
}

// All is the iterator form of Tokenize.
func (c Config) All(line string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for _, token := range c.Tokenize(line) {
			if !yield(token) {
				break
			}
		}
	}
}

type scanMode uint8

const (
	modePlain scanMode = iota
	modeQuote
	modeBracket
)

// machine holds one call's scanning state: the current mode, the pending
// escape, and the in-progress token. Never reused across calls.
type machine struct {
	config Config

	mode    scanMode
	quote   rune        // closing quote, valid in modeQuote
	pair    BracketPair // valid in modeBracket
	depth   int         // nested same-kind brackets, valid in modeBracket
	escaped bool

	buf   strings.Builder
	kind  Kind
	start int
	open  bool

	tokens []Token
}

func (m *machine) step(r rune, at, after int) {
	if m.escaped {
		// the escaped character is literal, whatever it is
		m.escaped = false
		m.buf.WriteRune(r)
		return
	}

	if m.config.EscapeChar != 0 && r == m.config.EscapeChar {
		m.escaped = true
		if !m.open {
			m.begin(Plain, at)
		}
		return
	}

	switch m.mode {

	case modePlain:
		switch {
		case m.config.isDelimiter(r):
			m.closePlain(at)
		case m.config.isQuote(r):
			m.closePlain(at)
			m.begin(Quoted, at)
			m.mode = modeQuote
			m.quote = r
		default:
			if pair, ok := m.config.openBracket(r); ok {
				m.closePlain(at)
				m.begin(Bracketed, at)
				m.mode = modeBracket
				m.pair = pair
				m.depth = 1
				m.buf.WriteRune(r)
			} else {
				if !m.open {
					m.begin(Plain, at)
				}
				m.buf.WriteRune(r)
			}
		}

	case modeQuote:
		if r == m.quote {
			m.mode = modePlain
			// an empty quoted span still emits: "" is a value
			m.emit(after)
		} else {
			m.buf.WriteRune(r)
		}

	case modeBracket:
		switch r {
		case m.pair.Open:
			m.depth++
			m.buf.WriteRune(r)
		case m.pair.Close:
			m.depth--
			m.buf.WriteRune(r)
			if m.depth == 0 {
				m.mode = modePlain
				m.emit(after)
			}
		default:
			m.buf.WriteRune(r)
		}
	}
}

func (m *machine) finish(end int) {
	if m.escaped {
		// trailing lone escape is literal
		m.escaped = false
		m.buf.WriteRune(m.config.EscapeChar)
	}
	switch m.mode {
	case modePlain:
		m.closePlain(end)
	default:
		// unterminated quote or bracket closes implicitly at end of line
		m.emit(end)
	}
}

func (m *machine) begin(kind Kind, at int) {
	m.kind = kind
	m.start = at
	m.open = true
}

// closePlain ends the current plain token, if any. Runs of delimiters reach
// here with nothing open and emit nothing.
func (m *machine) closePlain(at int) {
	if !m.open {
		return
	}
	if m.buf.Len() == 0 {
		m.open = false
		return
	}
	m.emit(at)
}

func (m *machine) emit(end int) {
	m.tokens = append(m.tokens, Token{
		Kind:  m.kind,
		Text:  m.buf.String(),
		Start: m.start,
		End:   end,
	})
	m.buf.Reset()
	m.open = false
}
