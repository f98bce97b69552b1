package token

type Type int

const (
	EOF Type = iota
	NUMBER
	IDENT
	OPERATOR
	LPAREN
	RPAREN
	INVALID
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case IDENT:
		return "IDENT"
	case OPERATOR:
		return "OPERATOR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case INVALID:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// IsOperand reports whether tokens of this type are placed directly on the output.
func (t Type) IsOperand() bool {
	return t == NUMBER || t == IDENT
}

// Token represents a lexical token with its type and literal value.
type Token struct {
	Type  Type
	Value string
}

// New classifies value and returns the resulting Token.
func New(value string) Token {
	return Token{Type: Classify(value), Value: value}
}

func (t Token) String() string {
	return t.Value
}

// Classify maps a raw whitespace-delimited field to its token type.
func Classify(s string) Type {
	switch s {
	case "":
		return INVALID
	case "+", "-", "*", "/":
		return OPERATOR
	case "(":
		return LPAREN
	case ")":
		return RPAREN
	}

	if IsNumber(s) {
		return NUMBER
	}
	if isIdent(s) {
		return IDENT
	}
	return INVALID
}

func isIdent(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isASCIILetter(c):
		case i > 0 && (c >= '0' && c <= '9' || c == '_'):
		default:
			return false
		}
	}
	return true
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
