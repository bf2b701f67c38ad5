package pycheat

// Token is an exact, classified substring of highlighted text.
type Token struct {
	Kind TokenKind
	Text string
}

// TokenKind is the lexical category of a Token.
type TokenKind uint8

const (
	// TokenOther covers runes no other rule claims, including invalid UTF-8 bytes.
	TokenOther TokenKind = iota
	// TokenKeyword is a reserved word.
	TokenKeyword
	// TokenIdentifier is a name that is not a reserved word.
	TokenIdentifier
	// TokenString is a quoted literal, prefix and delimiters included.
	TokenString
	// TokenComment runs from '#' to the end of the line.
	TokenComment
	// TokenNumber is a numeric literal.
	TokenNumber
	// TokenOperator is an operator or punctuation mark.
	TokenOperator
	// TokenWhitespace is a run of spaces, tabs and line breaks.
	TokenWhitespace
)

var tokenKindNames = [...]string{
	TokenOther:      "Other",
	TokenKeyword:    "Keyword",
	TokenIdentifier: "Identifier",
	TokenString:     "StringLiteral",
	TokenComment:    "Comment",
	TokenNumber:     "Number",
	TokenOperator:   "Operator",
	TokenWhitespace: "Whitespace",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "TokenKind(?)"
}
