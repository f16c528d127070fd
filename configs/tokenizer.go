package configs

import (
	"errors"

	"github.com/linetok/linetok/tokens"
)

// tokenizerSection mirrors the `tokenizer` block of the schema. Pointer
// fields distinguish "absent, keep the default" from "present and empty,
// disable".
type tokenizerSection struct {
	QuoteChars   *string `json:"quote_chars"`
	Delimiters   *string `json:"delimiters"`
	EscapeChar   *string `json:"escape_char"`
	BracketPairs []struct {
		Open  string `json:"open"`
		Close string `json:"close"`
	} `json:"bracket_pairs"`
}

func (Module) TokenizerConfig(loader Loader) tokens.Config {
	config := tokens.DefaultConfig()

	var section tokenizerSection
	err := loader.AssignFirst("tokenizer", &section)
	if errors.Is(err, ErrValueNotFound) {
		return config
	}
	if err != nil {
		panic(err)
	}

	if section.QuoteChars != nil {
		config.QuoteChars = []rune(*section.QuoteChars)
	}
	if section.Delimiters != nil {
		config.Delimiters = []rune(*section.Delimiters)
	}
	if section.EscapeChar != nil {
		config.EscapeChar = 0
		if chars := []rune(*section.EscapeChar); len(chars) > 0 {
			config.EscapeChar = chars[0]
		}
	}
	if section.BracketPairs != nil {
		config.BracketPairs = nil
		for _, pair := range section.BracketPairs {
			opening := []rune(pair.Open)
			closing := []rune(pair.Close)
			if len(opening) == 0 || len(closing) == 0 {
				continue
			}
			config.BracketPairs = append(config.BracketPairs, tokens.BracketPair{
				Open:  opening[0],
				Close: closing[0],
			})
		}
	}

	return config
}
