package postfix

import (
	"fmt"
	"strconv"
)

// Op is a binary operator glyph.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
)

func (o Op) String() string {
	return string(rune(o))
}

var opKinds = map[Kind]Op{
	KindPlus:   OpAdd,
	KindMinus:  OpSub,
	KindTimes:  OpMul,
	KindDivide: OpDiv,
}

// Node is one of *BinaryOp, *Identifier or *Number. The set is closed.
type Node interface {
	fmt.Stringer
	node()
}

type BinaryOp struct {
	Op    Op
	Left  Node
	Right Node
}

type Identifier struct {
	Name string
}

type Number struct {
	Value int64
}

func (*BinaryOp) node() {}
func (*Identifier) node() {}
func (*Number) node() {}

func (n *BinaryOp) String() string {
	return fmt.Sprintf("(%v %v %v)", n.Op, n.Left, n.Right)
}

func (n *Identifier) String() string {
	return n.Name
}

func (n *Number) String() string {
	return strconv.FormatInt(n.Value, 10)
}

// Walk calls fn for every node of the tree rooted at node, children first.
func Walk(node Node, fn func(Node)) {
	switch n := node.(type) {
	case *BinaryOp:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
		fn(n)
	case *Identifier, *Number:
		fn(n)
	default:
		panic(fmt.Sprintf("postfix: unknown node %T", node))
	}
}

// Equal reports whether a and b have the same shape and payloads.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *BinaryOp:
		y, ok := b.(*BinaryOp)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Identifier:
		y, ok := b.(*Identifier)
		return ok && x.Name == y.Name
	case *Number:
		y, ok := b.(*Number)
		return ok && x.Value == y.Value
	}
	return false
}

// Count returns the number of operator applications in the tree.
func Count(node Node) int {
	count := 0
	Walk(node, func(n Node) {
		if _, ok := n.(*BinaryOp); ok {
			count++
		}
	})
	return count
}
