package postfix

import (
	"io"
	"log/slog"
	"strconv"
	"unicode/utf8"
)

type config struct {
	logger *slog.Logger
}

type Option func(*config)

// WithLogger sets the logger diagnostics are reported to. By default
// nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var glyphs = map[byte]Kind{
	'+': KindPlus,
	'-': KindMinus,
	'*': KindTimes,
	'/': KindDivide,
	'(': KindLParen,
	')': KindRParen,
}

// Lexer produces tokens on demand from a source text. It is single pass:
// once KindEOF has been returned every later call returns KindEOF again.
type Lexer struct {
	src   string
	pos   int
	line  int
	diags []*IllegalCharacterError
	log   *slog.Logger
}

func NewLexer(src string, opts ...Option) *Lexer {
	c := newConfig(opts)
	return &Lexer{
		src:  src,
		line: 1,
		log:  c.logger,
	}
}

// Line returns the current line, starting at 1.
func (l *Lexer) Line() int {
	return l.line
}

// Diagnostics returns the illegal characters skipped so far.
func (l *Lexer) Diagnostics() []*IllegalCharacterError {
	return l.diags
}

func (l *Lexer) Next() Token {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t':
			l.pos++
		case c == '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		case c == '\n':
			l.line++
			l.pos++
		// a minus sign directly before a digit or a letter belongs to the literal
		case isDigit(c) || (c == '-' && isDigit(l.peek())):
			return l.scanNumber()
		case isAlpha(c) || (c == '-' && isAlpha(l.peek())):
			return l.scanIdent()
		default:
			if kind, ok := glyphs[c]; ok {
				l.pos++
				return Token{Kind: kind, Text: string(c), Line: l.line}
			}
			l.skipIllegal()
		}
	}
	return Token{Kind: KindEOF, Line: l.line}
}

func (l *Lexer) peek() byte {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

func (l *Lexer) skipIllegal() {
	r, n := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += n
	err := &IllegalCharacterError{Char: r, Line: l.line}
	l.diags = append(l.diags, err)
	l.log.Warn("illegal character skipped", "char", string(r), "line", l.line)
}

func (l *Lexer) scanNumber() Token {
	start := l.pos
	if l.src[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	intEnd := l.pos
	if l.pos+1 < len(l.src) && l.src[l.pos] == '.' && isDigit(l.src[l.pos+1]) {
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	tok := Token{Kind: KindNumber, Text: l.src[start:l.pos], Line: l.line}
	// the fraction is dropped: 2.9 is 2 and -2.9 is -2
	v, err := strconv.ParseInt(l.src[start:intEnd], 10, 64)
	if err != nil {
		tok.Overflow = true
	}
	tok.Value = v
	return tok
}

func (l *Lexer) scanIdent() Token {
	start := l.pos
	if l.src[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.src) && isAlpha(l.src[l.pos]) {
		l.pos++
	}
	return Token{Kind: KindIdent, Text: l.src[start:l.pos], Line: l.line}
}

// Tokenize drains a lexer over src. The returned error aggregates the
// illegal characters that were skipped, if any.
func Tokenize(src string, opts ...Option) ([]Token, error) {
	l := NewLexer(src, opts...)
	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == KindEOF {
			break
		}
	}
	if len(l.diags) == 0 {
		return toks, nil
	}
	errs := &Errors{}
	for _, d := range l.diags {
		errs.add(d)
	}
	return toks, errs
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
