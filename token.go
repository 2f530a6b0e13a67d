package postfix

import (
	"fmt"
)

type Kind int

const (
	KindEOF Kind = iota
	KindIdent
	KindNumber
	KindPlus
	KindMinus
	KindTimes
	KindDivide
	KindLParen
	KindRParen
)

var kindNames = [...]string{
	KindEOF:    "EOF",
	KindIdent:  "ID",
	KindNumber: "NUMBER",
	KindPlus:   "PLUS",
	KindMinus:  "MINUS",
	KindTimes:  "TIMES",
	KindDivide: "DIVIDE",
	KindLParen: "LPAREN",
	KindRParen: "RPAREN",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is a lexical unit. Text is the matched source; for KindNumber the
// integer payload is Value (Overflow is set when it did not fit in an int64).
type Token struct {
	Kind     Kind
	Text     string
	Value    int64
	Overflow bool
	Line     int
}

func (t Token) String() string {
	if t.Kind == KindEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Text)
}
