package frontend

// TokenType classifies the abstract tokens all language front ends produce.
type TokenType int

const (
	Keyword TokenType = iota + 1
	Identifier
	Number
	String
	Char
	Operator
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Semicolon
	Comma
	Dot
	Colon
	Question
	Newline
	EOF
)

var tokenTypeNames = map[TokenType]string{
	Keyword:    "KEYWORD",
	Identifier: "IDENTIFIER",
	Number:     "NUMBER",
	String:     "STRING",
	Char:       "CHAR",
	Operator:   "OPERATOR",
	LParen:     "LPAREN",
	RParen:     "RPAREN",
	LBrace:     "LBRACE",
	RBrace:     "RBRACE",
	LBracket:   "LBRACKET",
	RBracket:   "RBRACKET",
	Semicolon:  "SEMICOLON",
	Comma:      "COMMA",
	Dot:        "DOT",
	Colon:      "COLON",
	Question:   "QUESTION",
	Newline:    "NEWLINE",
	EOF:        "EOF",
}

func (t TokenType) String() string {
	if s, ok := tokenTypeNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Token is one lexeme. Level is the complexity level: 0 for clean tokens,
// >=1 for malformed input (stray bytes, unterminated literals).
type Token struct {
	Type  TokenType
	Value string
	Line  int
	Col   int
	Level int
}

// Filter drops the EOF sentinel (and any trailing noise after it), leaving
// the stream the composition engine consumes.
func Filter(tokens []Token) []Token {
	var res []Token
	for _, t := range tokens {
		if t.Type == EOF {
			continue
		}
		res = append(res, t)
	}
	return res
}

var delimiters = map[byte]TokenType{
	'(': LParen,
	')': RParen,
	'{': LBrace,
	'}': RBrace,
	'[': LBracket,
	']': RBracket,
	';': Semicolon,
	',': Comma,
	'.': Dot,
	':': Colon,
	'?': Question,
}
