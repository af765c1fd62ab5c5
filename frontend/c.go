package frontend

import "strings"

var cKeywords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true,
	"else": true, "enum": true, "extern": true, "float": true, "for": true,
	"goto": true, "if": true, "inline": true, "int": true, "long": true,
	"register": true, "restrict": true, "return": true, "short": true,
	"signed": true, "sizeof": true, "static": true, "struct": true,
	"switch": true, "typedef": true, "union": true, "unsigned": true,
	"void": true, "volatile": true, "while": true,
}

// cOperators are tried longest first so "==" lexes before "=".
var cOperators = []string{
	"<<=", ">>=", "...",
	"==", "!=", "<=", ">=", "&&", "||", "++", "--", "->", "<<", ">>",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"+", "-", "*", "/", "%", "=", "<", ">", "!", "&", "|", "^", "~", "#",
}

// LexC tokenizes C source into the abstract token stream. It is a plain
// lexical scan, not a parse: preprocessor directive names lex as keywords
// and comments are skipped.
func LexC(source string) []Token {
	lx := &lexer{src: source, line: 1, col: 1}

	for !lx.eof() {
		c := lx.peek()
		switch {
		case c == '\n':
			lx.advance()
		case c == ' ' || c == '\t' || c == '\r':
			lx.advance()
		case c == '/' && lx.peekAt(1) == '/':
			lx.skipLine()
		case c == '/' && lx.peekAt(1) == '*':
			lx.skipBlockComment()
		case isIdentStart(c):
			word := lx.scanIdent()
			if cKeywords[word.Value] {
				word.Type = Keyword
			}
			lx.emit(word)
		case isDigit(c):
			lx.emit(lx.scanNumber())
		case c == '"':
			lx.emit(lx.scanString('"', String))
		case c == '\'':
			lx.emit(lx.scanString('\'', Char))
		default:
			// operators before delimiters so "..." beats "."
			if op := lx.scanOperator(cOperators); op != nil {
				lx.emit(*op)
				break
			}
			if typ, ok := delimiters[c]; ok {
				lx.emit(Token{Type: typ, Value: string(c), Line: lx.line, Col: lx.col})
				lx.advance()
				break
			}
			// stray byte: keep it, flagged
			lx.emit(Token{Type: Operator, Value: string(c), Line: lx.line, Col: lx.col, Level: 1})
			lx.advance()
		}
	}

	lx.emit(Token{Type: EOF, Line: lx.line, Col: lx.col})
	return lx.tokens
}

// lexer is the byte cursor shared by the C and Python scanners.
type lexer struct {
	src    string
	pos    int
	line   int
	col    int
	tokens []Token
}

func (lx *lexer) eof() bool {
	return lx.pos >= len(lx.src)
}

func (lx *lexer) peek() byte {
	return lx.src[lx.pos]
}

func (lx *lexer) peekAt(offset int) byte {
	if lx.pos+offset >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+offset]
}

func (lx *lexer) advance() byte {
	c := lx.src[lx.pos]
	lx.pos++
	if c == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return c
}

func (lx *lexer) emit(t Token) {
	lx.tokens = append(lx.tokens, t)
}

func (lx *lexer) skipLine() {
	for !lx.eof() && lx.peek() != '\n' {
		lx.advance()
	}
}

func (lx *lexer) skipBlockComment() {
	lx.advance()
	lx.advance()
	for !lx.eof() {
		if lx.peek() == '*' && lx.peekAt(1) == '/' {
			lx.advance()
			lx.advance()
			return
		}
		lx.advance()
	}
}

func (lx *lexer) scanIdent() Token {
	line, col := lx.line, lx.col
	start := lx.pos
	for !lx.eof() && (isIdentStart(lx.peek()) || isDigit(lx.peek())) {
		lx.advance()
	}
	return Token{Type: Identifier, Value: lx.src[start:lx.pos], Line: line, Col: col}
}

func (lx *lexer) scanNumber() Token {
	line, col := lx.line, lx.col
	start := lx.pos
	for !lx.eof() && (isDigit(lx.peek()) || lx.peek() == '.' ||
		lx.peek() == 'x' || lx.peek() == 'X' ||
		(lx.peek() >= 'a' && lx.peek() <= 'f') ||
		(lx.peek() >= 'A' && lx.peek() <= 'F')) {
		lx.advance()
	}
	value := lx.src[start:lx.pos]
	level := 0
	if strings.Count(value, ".") > 1 {
		level = 1
	}
	return Token{Type: Number, Value: value, Line: line, Col: col, Level: level}
}

// scanString reads a quoted literal. An unterminated literal is still
// emitted, at complexity level 2.
func (lx *lexer) scanString(quote byte, typ TokenType) Token {
	line, col := lx.line, lx.col
	start := lx.pos
	lx.advance()
	for !lx.eof() && lx.peek() != quote && lx.peek() != '\n' {
		if lx.peek() == '\\' {
			lx.advance()
			if lx.eof() {
				break
			}
		}
		lx.advance()
	}
	level := 0
	if lx.eof() || lx.peek() != quote {
		level = 2
	} else {
		lx.advance()
	}
	return Token{Type: typ, Value: lx.src[start:lx.pos], Line: line, Col: col, Level: level}
}

func (lx *lexer) scanOperator(operators []string) *Token {
	for _, op := range operators {
		if strings.HasPrefix(lx.src[lx.pos:], op) {
			t := Token{Type: Operator, Value: op, Line: lx.line, Col: lx.col}
			for range op {
				lx.advance()
			}
			return &t
		}
	}
	return nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
