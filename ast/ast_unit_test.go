// ==============================================================================================
// FILE: ast/ast_unit_test.go
// PURPOSE: Verifies String() renderings of individual node types, the contract the parser's
//          own tests lean on for readable failure diffs.
// ==============================================================================================

package ast

import (
	"testing"

	"github.com/convo-lang/convo/token"
	"github.com/stretchr/testify/require"
)

func TestIdentifierString(t *testing.T) {
	id := &Identifier{Token: token.Token{Type: token.IDENT, Literal: "total"}, Value: "total"}
	require.Equal(t, "total", id.String())
}

func TestNumberLiteralString(t *testing.T) {
	n := &NumberLiteral{Token: token.Token{Literal: "42"}, IntValue: 42}
	require.Equal(t, "42", n.String())
}

func TestBinaryExpressionString(t *testing.T) {
	be := &BinaryExpression{
		Left:     &Identifier{Value: "a"},
		Operator: "+",
		Right:    &Identifier{Value: "b"},
	}
	require.Equal(t, "(a + b)", be.String())
}

func TestUnaryExpressionString(t *testing.T) {
	ue := &UnaryExpression{Operator: "not", Operand: &Identifier{Value: "ready"}}
	require.Equal(t, "(not ready)", ue.String())
}

func TestLetStatementStringWithField(t *testing.T) {
	ls := &LetStatement{
		Name:  &Identifier{Value: "account"},
		Field: &Identifier{Value: "balance"},
		Value: &NumberLiteral{Token: token.Token{Literal: "0"}},
	}
	require.Equal(t, "Let account.balance be 0", ls.String())
}

func TestIfStatementStringWithoutElse(t *testing.T) {
	is := &IfStatement{
		Condition:   &BoolLiteral{Value: true},
		Consequence: &BlockStatement{},
	}
	require.Contains(t, is.String(), "If true then:")
	require.NotContains(t, is.String(), "Else")
}

func TestListLiteralString(t *testing.T) {
	ll := &ListLiteral{Elements: []Expression{
		&NumberLiteral{Token: token.Token{Literal: "1"}, IntValue: 1},
		&NumberLiteral{Token: token.Token{Literal: "2"}, IntValue: 2},
	}}
	require.Equal(t, "[1, 2]", ll.String())
}

func TestDictLiteralString(t *testing.T) {
	dl := &DictLiteral{Pairs: []DictPair{
		{Key: &StringLiteral{Value: "name"}, Value: &StringLiteral{Value: "ada"}},
	}}
	require.Equal(t, `{"name": "ada"}`, dl.String())
}

func TestNewExpressionString(t *testing.T) {
	ne := &NewExpression{
		ClassName: &Identifier{Value: "Account"},
		Arguments: []Expression{&NumberLiteral{Token: token.Token{Literal: "0"}, IntValue: 0}},
	}
	require.Equal(t, "New Account with 0", ne.String())
}
