package postfix

import (
	"log/slog"
)

// Parser builds a tree from the tokens of one Lexer for the grammar
//
//	E -> '(' op E E ')' | ID | NUMBER
//
// with op one of + - * /. One token of lookahead decides every step.
type Parser struct {
	lx  *Lexer
	tok Token
	log *slog.Logger

	done bool
	node Node
	err  error
}

func NewParser(lx *Lexer) *Parser {
	p := &Parser{
		lx:  lx,
		log: lx.log,
	}
	p.next()
	return p
}

// Parse parses src as a single expression.
func Parse(src string, opts ...Option) (Node, error) {
	return NewParser(NewLexer(src, opts...)).Parse()
}

// Parse reads exactly one expression followed by the end of input.
//
// On a syntax error the node is nil and the error is an *Errors holding the
// illegal characters met so far and the *SyntaxError. When the only problems
// were illegal characters the node is returned together with an *Errors;
// use IsFatal to tell the cases apart.
//
// A Parser consumes its lexer; later calls return the first result.
func (p *Parser) Parse() (Node, error) {
	if !p.done {
		p.node, p.err = p.parse()
		p.done = true
	}
	return p.node, p.err
}

func (p *Parser) parse() (Node, error) {
	node, err := p.parseExpr()
	if err == nil && p.tok.Kind != KindEOF {
		err = p.unexpected()
	}

	errs := &Errors{}
	for _, d := range p.lx.Diagnostics() {
		errs.add(d)
	}
	if err != nil {
		p.log.Debug("syntax error", "token", p.tok.String(), "line", p.tok.Line)
		errs.add(err)
		return nil, errs
	}
	if errs.Len() > 0 {
		return node, errs
	}
	return node, nil
}

func (p *Parser) next() {
	p.tok = p.lx.Next()
}

func (p *Parser) unexpected() error {
	return &SyntaxError{Token: p.tok}
}

func (p *Parser) parseExpr() (Node, error) {
	switch p.tok.Kind {
	case KindIdent:
		node := &Identifier{Name: p.tok.Text}
		p.next()
		return node, nil
	case KindNumber:
		if p.tok.Overflow {
			return nil, &SyntaxError{Token: p.tok, Reason: "number out of range"}
		}
		node := &Number{Value: p.tok.Value}
		p.next()
		return node, nil
	case KindLParen:
		p.next()
		return p.parseParen()
	}
	return nil, p.unexpected()
}

func (p *Parser) parseParen() (Node, error) {
	op, ok := opKinds[p.tok.Kind]
	if !ok {
		return nil, p.unexpected()
	}
	p.next()

	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != KindRParen {
		return nil, p.unexpected()
	}
	p.next()

	return &BinaryOp{
		Op:    op,
		Left:  left,
		Right: right,
	}, nil
}
