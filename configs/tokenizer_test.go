package configs

import (
	"testing"

	"github.com/linetok/linetok/tokens"
	"github.com/reusee/dscope"
	"github.com/stretchr/testify/require"
)

func TestTokenizerConfig(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() FilePaths {
			return FilePaths{"test.cue"}
		},
	).Call(func(
		config tokens.Config,
	) {
		require.Equal(t, []rune(`"'`), config.QuoteChars)
		require.Equal(t, []tokens.BracketPair{{Open: '{', Close: '}'}}, config.BracketPairs)
		// absent fields keep defaults
		require.Equal(t, []rune{' ', '\t'}, config.Delimiters)
		require.Equal(t, '\\', config.EscapeChar)

		parsed := config.Tokenize(`a {b c} [d]`)
		require.Len(t, parsed, 3)
		require.Equal(t, tokens.Bracketed, parsed[1].Kind)
		require.Equal(t, "{b c}", parsed[1].Text)
		require.Equal(t, tokens.Plain, parsed[2].Kind)
	})
}

func TestTokenizerConfigDisable(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() FilePaths {
			return FilePaths{"test2.cue"}
		},
	).Call(func(
		config tokens.Config,
	) {
		// empty escape_char disables escaping
		require.Equal(t, rune(0), config.EscapeChar)
		require.Equal(t, []rune(" \t,"), config.Delimiters)

		parsed := config.Tokenize(`a\ b,c`)
		require.Len(t, parsed, 3)
		require.Equal(t, `a\`, parsed[0].Text)
		require.Equal(t, "c", parsed[2].Text)
	})
}

func TestTokenizerConfigDefaults(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() FilePaths {
			return nil
		},
	).Call(func(
		config tokens.Config,
	) {
		require.Equal(t, tokens.DefaultConfig(), config)
	})
}
