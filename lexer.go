package pycheat

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexMode uint8

const (
	modeNormal lexMode = iota
	modeString
	modeLineComment
)

var keywords = map[string]struct{}{
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {}, "assert": {},
	"async": {}, "await": {}, "break": {}, "class": {}, "continue": {},
	"def": {}, "del": {}, "elif": {}, "else": {}, "except": {}, "finally": {},
	"for": {}, "from": {}, "global": {}, "if": {}, "import": {}, "in": {},
	"is": {}, "lambda": {}, "nonlocal": {}, "not": {}, "or": {}, "pass": {},
	"raise": {}, "return": {}, "try": {}, "while": {}, "with": {}, "yield": {},
}

// Longest spellings first so the first prefix hit is the maximal match.
var multiCharOperators = [...]string{
	"**=", "//=", ">>=", "<<=", "...",
	"->", ":=", "**", "//", "<<", ">>", "<=", ">=", "==", "!=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "@=",
}

const singleCharOperators = "+-*/%@&|^~<>()[]{},:.;=!"

// IsKeyword reports whether word is a reserved word of the highlighted grammar.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// Lexer scans one text span into tokens. A Lexer is single-use; create a new
// one (or call Tokenize again) to rescan.
type Lexer struct {
	src   string
	pos   int
	start int
	mode  lexMode

	quote  byte
	triple bool
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Tokenize returns the tokens of src in order. Concatenating their texts
// yields src exactly.
func Tokenize(src string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		l := NewLexer(src)
		for {
			tok, ok := l.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Next returns the next token, or false once the input is exhausted.
func (l *Lexer) Next() (Token, bool) {
	if l.pos >= len(l.src) {
		return Token{}, false
	}
	switch l.mode {
	case modeString:
		return l.scanString(), true
	case modeLineComment:
		return l.scanComment(), true
	}

	l.start = l.pos
	c := l.src[l.pos]
	switch {
	case c == '#':
		l.mode = modeLineComment
		return l.scanComment(), true
	case c == '\'' || c == '"':
		l.openString(l.pos)
		return l.scanString(), true
	case isDigit(c):
		return l.scanNumber(), true
	case l.atIdentStart():
		return l.scanWord(), true
	}
	if n := operatorLen(l.src[l.pos:]); n > 0 {
		l.pos += n
		return l.emit(TokenOperator), true
	}
	if isSpace(c) {
		for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
			l.pos++
		}
		return l.emit(TokenWhitespace), true
	}
	_, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += size
	return l.emit(TokenOther), true
}

func (l *Lexer) emit(kind TokenKind) Token {
	tok := Token{Kind: kind, Text: l.src[l.start:l.pos]}
	l.start = l.pos
	l.mode = modeNormal
	return tok
}

func (l *Lexer) scanComment() Token {
	if i := strings.IndexAny(l.src[l.pos:], "\r\n"); i >= 0 {
		l.pos += i
	} else {
		l.pos = len(l.src)
	}
	return l.emit(TokenComment)
}

// openString records the delimiter starting at index at and moves past it.
func (l *Lexer) openString(at int) {
	q := l.src[at]
	l.quote = q
	l.triple = at+2 < len(l.src) && l.src[at+1] == q && l.src[at+2] == q
	if l.triple {
		l.pos = at + 3
	} else {
		l.pos = at + 1
	}
	l.mode = modeString
}

func (l *Lexer) scanString() Token {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\\':
			if l.pos+1 < len(l.src) && !isLineBreak(l.src[l.pos+1]) {
				l.pos += 2
			} else {
				l.pos++
			}
		case isLineBreak(c) && !l.triple:
			return l.emit(TokenString)
		case c == l.quote && !l.triple:
			l.pos++
			return l.emit(TokenString)
		case c == l.quote && l.closesTriple():
			l.pos += 3
			return l.emit(TokenString)
		default:
			l.pos++
		}
	}
	// Unterminated at end of input.
	return l.emit(TokenString)
}

func (l *Lexer) closesTriple() bool {
	return l.pos+2 < len(l.src) && l.src[l.pos+1] == l.quote && l.src[l.pos+2] == l.quote
}

func (l *Lexer) scanNumber() Token {
	src := l.src
	if src[l.pos] == '0' && l.pos+1 < len(src) && isRadixMarker(src[l.pos+1]) {
		l.pos += 2
		for l.pos < len(src) && (isHexDigit(src[l.pos]) || src[l.pos] == '_') {
			l.pos++
		}
		return l.emit(TokenNumber)
	}
	seenDot, seenExp := false, false
scan:
	for l.pos < len(src) {
		c := src[l.pos]
		switch {
		case isDigit(c) || c == '_':
			l.pos++
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
			l.pos++
		case (c == 'e' || c == 'E') && !seenExp && l.pos+1 < len(src) && isExponentTail(src[l.pos+1]):
			seenExp = true
			l.pos += 2
		default:
			break scan
		}
	}
	if l.pos < len(src) && (src[l.pos] == 'j' || src[l.pos] == 'J') {
		l.pos++
	}
	return l.emit(TokenNumber)
}

func (l *Lexer) atIdentStart() bool {
	c := l.src[l.pos]
	if c < utf8.RuneSelf {
		return isASCIILetter(c) || c == '_'
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return unicode.IsLetter(r)
}

// scanWord consumes an identifier or keyword. A string prefix directly
// followed by a quote is folded into the string literal.
func (l *Lexer) scanWord() Token {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c < utf8.RuneSelf {
			if !isASCIILetter(c) && !isDigit(c) && c != '_' {
				break
			}
			l.pos++
			continue
		}
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.pos += size
	}
	word := l.src[l.start:l.pos]
	if l.pos < len(l.src) && (l.src[l.pos] == '\'' || l.src[l.pos] == '"') && isStringPrefix(word) {
		l.openString(l.pos)
		return l.scanString()
	}
	if IsKeyword(word) {
		return l.emit(TokenKeyword)
	}
	return l.emit(TokenIdentifier)
}

func operatorLen(s string) int {
	for _, op := range multiCharOperators {
		if strings.HasPrefix(s, op) {
			return len(op)
		}
	}
	if strings.IndexByte(singleCharOperators, s[0]) >= 0 {
		return 1
	}
	return 0
}

// isStringPrefix matches r, b, u, f, rb, br, fr and rf in any case.
func isStringPrefix(word string) bool {
	switch len(word) {
	case 1:
		c := word[0] | 0x20
		return c == 'r' || c == 'b' || c == 'u' || c == 'f'
	case 2:
		a, b := word[0]|0x20, word[1]|0x20
		return (a == 'r' && (b == 'b' || b == 'f')) || (b == 'r' && (a == 'b' || a == 'f'))
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isRadixMarker(c byte) bool {
	switch c {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

func isExponentTail(c byte) bool {
	return isDigit(c) || c == '+' || c == '-'
}

func isLineBreak(c byte) bool { return c == '\n' || c == '\r' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
