package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexesSimplePython(t *testing.T) {
	tokens := Filter(LexPython("def f(x):\n    return x + 1\n"))

	assert.Equal(t,
		[]TokenType{Keyword, Identifier, LParen, Identifier, RParen, Colon, Newline,
			Keyword, Identifier, Operator, Number, Newline},
		types(tokens))
}

func TestPythonCommentsAreSkipped(t *testing.T) {
	tokens := Filter(LexPython("x = 1  # the answer\n"))

	assert.Equal(t, []TokenType{Identifier, Operator, Number, Newline}, types(tokens))
}

func TestPythonStringsBothQuotes(t *testing.T) {
	tokens := Filter(LexPython(`a = 'one'` + "\n" + `b = "two"`))

	assert.Equal(t, String, tokens[2].Type)
	assert.Equal(t, "'one'", tokens[2].Value)
	assert.Equal(t, String, tokens[6].Type)
}

func TestPythonTripleQuotedString(t *testing.T) {
	src := "s = \"\"\"multi\nline\"\"\"\n"
	tokens := Filter(LexPython(src))

	assert.Equal(t, String, tokens[2].Type)
	assert.Zero(t, tokens[2].Level)
	assert.Contains(t, tokens[2].Value, "multi\nline")
}

func TestUnterminatedTripleStringIsLevelTwo(t *testing.T) {
	tokens := Filter(LexPython(`s = """never closed`))

	last := tokens[len(tokens)-1]
	assert.Equal(t, String, last.Type)
	assert.Equal(t, 2, last.Level)
}

func TestPythonWalrusAndArrow(t *testing.T) {
	tokens := Filter(LexPython("if (n := 10) -> x"))

	values := make([]string, len(tokens))
	for i, tok := range tokens {
		values[i] = tok.Value
	}
	assert.Contains(t, values, ":=")
	assert.Contains(t, values, "->")
}

func TestDetectLanguage(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("c", DetectLanguage("#include <stdio.h>\nint main(void) { return 0; }"))
	assert.Equal("python", DetectLanguage("import os\ndef main():\n    print(os.getcwd())"))
	assert.Equal("c", DetectLanguage(""))
}

func TestLexDispatchesOnLanguage(t *testing.T) {
	// '#' starts a comment in python but lexes as an operator in C
	src := "# hello"
	assert.Empty(t, Filter(LexPython(src))[0:0])
	assert.Equal(t, Operator, Filter(Lex(src, "c"))[0].Type)

	pyTokens := Filter(Lex(src, "python"))
	assert.Empty(t, pyTokens)
}
