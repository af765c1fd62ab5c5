package frontend

var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true,
	"class": true, "continue": true, "def": true, "del": true, "elif": true,
	"else": true, "except": true, "finally": true, "for": true, "from": true,
	"global": true, "if": true, "import": true, "in": true, "is": true,
	"lambda": true, "nonlocal": true, "not": true, "or": true, "pass": true,
	"raise": true, "return": true, "try": true, "while": true, "with": true,
	"yield": true,
}

var pythonOperators = []string{
	"**=", "//=", ">>=", "<<=",
	"==", "!=", "<=", ">=", "**", "//", "<<", ">>", "->", ":=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "@",
	"+", "-", "*", "/", "%", "=", "<", ">", "&", "|", "^", "~",
}

// LexPython tokenizes Python source. Indentation is not tracked; logical
// line breaks surface as Newline tokens, which the engine filters like any
// other structural token.
func LexPython(source string) []Token {
	lx := &lexer{src: source, line: 1, col: 1}

	for !lx.eof() {
		c := lx.peek()
		switch {
		case c == '\n':
			lx.emit(Token{Type: Newline, Value: "\n", Line: lx.line, Col: lx.col})
			lx.advance()
		case c == ' ' || c == '\t' || c == '\r':
			lx.advance()
		case c == '#':
			lx.skipLine()
		case isIdentStart(c):
			word := lx.scanIdent()
			if pythonKeywords[word.Value] {
				word.Type = Keyword
			}
			lx.emit(word)
		case isDigit(c):
			lx.emit(lx.scanNumber())
		case c == '"' || c == '\'':
			lx.emit(lx.scanPythonString(c))
		default:
			// operators before delimiters so ":=" beats ":"
			if op := lx.scanOperator(pythonOperators); op != nil {
				lx.emit(*op)
				break
			}
			if typ, ok := delimiters[c]; ok {
				lx.emit(Token{Type: typ, Value: string(c), Line: lx.line, Col: lx.col})
				lx.advance()
				break
			}
			lx.emit(Token{Type: Operator, Value: string(c), Line: lx.line, Col: lx.col, Level: 1})
			lx.advance()
		}
	}

	lx.emit(Token{Type: EOF, Line: lx.line, Col: lx.col})
	return lx.tokens
}

// scanPythonString handles both quote characters and triple-quoted strings.
func (lx *lexer) scanPythonString(quote byte) Token {
	if lx.peekAt(1) == quote && lx.peekAt(2) == quote {
		return lx.scanTripleString(quote)
	}
	return lx.scanString(quote, String)
}

func (lx *lexer) scanTripleString(quote byte) Token {
	line, col := lx.line, lx.col
	start := lx.pos
	lx.advance()
	lx.advance()
	lx.advance()
	for !lx.eof() {
		if lx.peek() == quote && lx.peekAt(1) == quote && lx.peekAt(2) == quote {
			lx.advance()
			lx.advance()
			lx.advance()
			return Token{Type: String, Value: lx.src[start:lx.pos], Line: line, Col: col}
		}
		lx.advance()
	}
	return Token{Type: String, Value: lx.src[start:lx.pos], Line: line, Col: col, Level: 2}
}
