package tokens

import "fmt"

type Kind uint8

const (
	Plain Kind = iota
	Quoted
	Bracketed
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Quoted:
		return "quoted"
	case Bracketed:
		return "bracketed"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Token is one classified span of a source line. Start and End are half-open
// rune offsets into the line and cover the token's full source extent,
// including quote marks stripped from Text and brackets retained in it.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}
