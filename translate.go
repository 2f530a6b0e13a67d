package postfix

import (
	"fmt"
	"strings"
)

// Translate renders node in postfix notation, operands before their
// operator, separated by single spaces.
func Translate(node Node) string {
	return strings.Join(TranslateTokens(node), " ")
}

// TranslateTokens returns the postfix token stream of node.
func TranslateTokens(node Node) []string {
	var toks []string
	Walk(node, func(n Node) {
		switch n := n.(type) {
		case *BinaryOp:
			toks = append(toks, n.Op.String())
		case *Identifier:
			toks = append(toks, n.Name)
		case *Number:
			toks = append(toks, n.String())
		default:
			panic(fmt.Sprintf("postfix: unknown node %T", n))
		}
	})
	return toks
}
