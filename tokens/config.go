package tokens

import "slices"

// BracketPair names one recognized open/close bracket pair.
type BracketPair struct {
	Open  rune
	Close rune
}

// Config selects the characters the tokenizer recognizes. An empty
// QuoteChars or BracketPairs disables that span type; a zero EscapeChar
// disables escaping. The zero Config recognizes nothing and yields the
// whole line as one Plain token.
type Config struct {
	QuoteChars   []rune
	BracketPairs []BracketPair
	Delimiters   []rune
	EscapeChar   rune
}

// DefaultConfig matches common syslog-style and key/value log formats:
// space and tab delimit, double and single quotes quote, square brackets
// and parentheses group, backslash escapes.
func DefaultConfig() Config {
	return Config{
		QuoteChars:   []rune{'"', '\''},
		BracketPairs: []BracketPair{{'[', ']'}, {'(', ')'}},
		Delimiters:   []rune{' ', '\t'},
		EscapeChar:   '\\',
	}
}

func (c Config) isDelimiter(r rune) bool {
	return slices.Contains(c.Delimiters, r)
}

func (c Config) isQuote(r rune) bool {
	return slices.Contains(c.QuoteChars, r)
}

func (c Config) openBracket(r rune) (BracketPair, bool) {
	for _, pair := range c.BracketPairs {
		if pair.Open == r {
			return pair, true
		}
	}
	return BracketPair{}, false
}
