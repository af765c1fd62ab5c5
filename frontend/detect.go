package frontend

import "strings"

// Lex tokenizes source in the named language ("c" or "python"); anything
// else falls back to language detection.
func Lex(source, language string) []Token {
	switch language {
	case "c":
		return LexC(source)
	case "python":
		return LexPython(source)
	default:
		if DetectLanguage(source) == "python" {
			return LexPython(source)
		}
		return LexC(source)
	}
}

// DetectLanguage guesses the source language by a keyword census. Ties go
// to C.
func DetectLanguage(source string) string {
	cHints := []string{"#include", "int ", "char ", "void", "printf", "->", ";"}
	pythonHints := []string{"import ", "def ", "class ", "print(", "elif", "lambda", "self"}

	var cCount, pyCount int
	for _, h := range cHints {
		if strings.Contains(source, h) {
			cCount++
		}
	}
	for _, h := range pythonHints {
		if strings.Contains(source, h) {
			pyCount++
		}
	}
	if pyCount > cCount {
		return "python"
	}
	return "c"
}
