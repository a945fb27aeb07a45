package synop

import "fmt"

// --- Tokens of the synopsis language ---------------------------------------

// TokType is a category type for a Token.
type TokType int

// Token categories. EOF is returned by tokenizers at the end of input, Illegal
// for input which could not be lexed (see scanner.LexError).
const (
	Illegal  TokType = iota
	Text             // bare word: cmd, FILE, <path>
	ShortOpt         // -x
	LongOpt          // --long-option
	LBracket         // [
	RBracket         // ]
	LBrace           // {
	RBrace           // }
	Dots             // ...
	Bar              // |
	EOF      TokType = -1
)

var tokTypeNames = [...]string{"Illegal", "Text", "ShortOpt", "LongOpt", "LBracket",
	"RBracket", "LBrace", "RBrace", "Dots", "Bar"}

func (tt TokType) String() string {
	if tt == EOF {
		return "EOF"
	}
	if tt < 0 || int(tt) >= len(tokTypeNames) {
		return fmt.Sprintf("TokType(%d)", int(tt))
	}
	return tokTypeNames[tt]
}

// Token represents an input token of a synopsis. Tokens are values and compare
// structurally with ==. Only Text, ShortOpt and LongOpt carry a payload
// (Illegal tokens carry the offending lexeme).
//
// An example would be a token for a long option:
//
//    Kind  = LongOpt       // category
//    Value = "verbose"     // text following "--"
//
// Tokens do not record their position; tokenizers report the span of the token
// last returned (see scanner.Tokenizer).
type Token struct {
	Kind  TokType
	Value string
}

// MakeToken creates a token of a given category.
func MakeToken(kind TokType, value string) Token {
	return Token{Kind: kind, Value: value}
}

// Pretty returns the lexeme which would re-lex to t.
func (t Token) Pretty() string {
	switch t.Kind {
	case Text, Illegal:
		return t.Value
	case ShortOpt:
		return "-" + t.Value
	case LongOpt:
		return "--" + t.Value
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case Dots:
		return "..."
	case Bar:
		return "|"
	case EOF:
		return "EOF"
	}
	panic(fmt.Sprintf("synop: unknown token type %d", int(t.Kind)))
}

// IsWord is true for tokens which may form a leaf of a synopsis tree.
func (t Token) IsWord() bool {
	return t.Kind == Text || t.Kind == ShortOpt || t.Kind == LongOpt
}

func (t Token) String() string {
	if t.IsWord() || t.Kind == Illegal {
		return fmt.Sprintf("%s(%q)", t.Kind, t.Value)
	}
	return t.Kind.String()
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. Tokenizers report
// the span of every token, errors carry the span of the offending input.
// A span denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
