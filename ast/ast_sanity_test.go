// ==============================================================================================
// FILE: ast/ast_sanity_test.go
// PURPOSE: Confirms every statement/expression node satisfies its marker interface.
// ==============================================================================================

package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatementNodesSatisfyInterface(t *testing.T) {
	var stmts = []Statement{
		&SayStatement{}, &LetStatement{Name: &Identifier{}}, &FunctionDefStatement{Name: &Identifier{}},
		&ClassDefStatement{Name: &Identifier{}}, &CallStatement{Function: &Identifier{}}, &IfStatement{},
		&WhileStatement{}, &ForStatement{VarName: &Identifier{}}, &TryStatement{CatchVar: &Identifier{}},
		&ThrowStatement{}, &ReturnStatement{}, &ImportStatement{Name: &Identifier{}}, &StopStatement{},
		&ExpressionStatement{}, &BlockStatement{},
	}
	for _, s := range stmts {
		require.NotPanics(t, func() { _ = s.TokenLiteral() })
	}
}

func TestExpressionNodesSatisfyInterface(t *testing.T) {
	var exprs = []Expression{
		&Identifier{}, &NumberLiteral{}, &StringLiteral{}, &BoolLiteral{}, &NullLiteral{},
		&BinaryExpression{Left: &Identifier{}, Right: &Identifier{}},
		&UnaryExpression{Operand: &Identifier{}},
		&ListLiteral{}, &DictLiteral{},
		&IndexExpression{Target: &Identifier{}, Key: &Identifier{}},
		&MemberExpression{Target: &Identifier{}, Field: &Identifier{}},
		&CallExpression{Callee: &Identifier{}},
		&NewExpression{ClassName: &Identifier{}},
	}
	for _, e := range exprs {
		require.NotPanics(t, func() { _ = e.String() })
	}
}
