// ==============================================================================================
// FILE: ast/ast.go
// ==============================================================================================
// PACKAGE: ast
// PURPOSE: Defines the tagged node variants that form the data contract between the Parser
//          and the Evaluator. Every node knows how to stringify itself, which both aids
//          debugging (the REPL's AST dump) and backs this package's own tests.
// ==============================================================================================

package ast

import (
	"bytes"
	"strings"

	"github.com/convo-lang/convo/token"
)

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement is a Node that is executed for its effect.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that evaluates to a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: an ordered list of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// ----------------------------------------------------------------------------------------------
// BLOCK
// ----------------------------------------------------------------------------------------------

// BlockStatement groups the statements of an indented block (if/while/for
// body, function/class body, try/catch body).
type BlockStatement struct {
	Token      token.Token // the INDENT token that opened the block
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	for _, s := range bs.Statements {
		out.WriteString("    " + s.String() + "\n")
	}
	return out.String()
}

// ----------------------------------------------------------------------------------------------
// STATEMENTS
// ----------------------------------------------------------------------------------------------

// SayStatement is `Say expr`.
type SayStatement struct {
	Token token.Token
	Value Expression
}

func (s *SayStatement) statementNode()       {}
func (s *SayStatement) TokenLiteral() string { return s.Token.Literal }
func (s *SayStatement) String() string       { return "Say " + exprString(s.Value) }

// LetStatement is `Let name be expr` or `Let name.field be expr`.
type LetStatement struct {
	Token token.Token
	Name  *Identifier
	Field *Identifier // non-nil for `Let name.field be expr`
	Value Expression
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LetStatement) String() string {
	target := ls.Name.String()
	if ls.Field != nil {
		target += "." + ls.Field.String()
	}
	return "Let " + target + " be " + exprString(ls.Value)
}

// FunctionDefStatement is `Define name with (params): block`.
type FunctionDefStatement struct {
	Token      token.Token
	Name       *Identifier
	Parameters []*Identifier
	Body       *BlockStatement
}

func (fd *FunctionDefStatement) statementNode()       {}
func (fd *FunctionDefStatement) TokenLiteral() string { return fd.Token.Literal }
func (fd *FunctionDefStatement) String() string {
	var params []string
	for _, p := range fd.Parameters {
		params = append(params, p.String())
	}
	return "Define " + fd.Name.String() + " with " + strings.Join(params, ", ") + ":\n" + fd.Body.String()
}

// ClassDefStatement is `Class name: block`, whose body holds nested
// FunctionDefStatements (methods, including an optional "new" constructor)
// and LetStatements of the form `Let this.field be expr` (field defaults).
type ClassDefStatement struct {
	Token token.Token
	Name  *Identifier
	Body  *BlockStatement
}

func (cd *ClassDefStatement) statementNode()       {}
func (cd *ClassDefStatement) TokenLiteral() string { return cd.Token.Literal }
func (cd *ClassDefStatement) String() string {
	return "Class " + cd.Name.String() + ":\n" + cd.Body.String()
}

// CallStatement is the statement form `Call name` / `Call name with args`.
type CallStatement struct {
	Token     token.Token
	Function  *Identifier
	Arguments []Expression
}

func (cs *CallStatement) statementNode()       {}
func (cs *CallStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *CallStatement) String() string {
	var args []string
	for _, a := range cs.Arguments {
		args = append(args, exprString(a))
	}
	out := "Call " + cs.Function.String()
	if len(args) > 0 {
		out += " with " + strings.Join(args, ", ")
	}
	return out
}

// IfStatement is `If cond then: block (Else (If ...)? : block)?`.
type IfStatement struct {
	Token       token.Token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement // nil if no Else
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) String() string {
	out := "If " + exprString(is.Condition) + " then:\n" + is.Consequence.String()
	if is.Alternative != nil {
		out += "Else:\n" + is.Alternative.String()
	}
	return out
}

// WhileStatement is `While cond do: block`.
type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Body      *BlockStatement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) String() string {
	return "While " + exprString(ws.Condition) + " do:\n" + ws.Body.String()
}

// ForStatement is `For each var in iterExpr do: block`.
type ForStatement struct {
	Token    token.Token
	VarName  *Identifier
	Iterable Expression
	Body     *BlockStatement
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) String() string {
	return "For each " + fs.VarName.String() + " in " + exprString(fs.Iterable) + " do:\n" + fs.Body.String()
}

// TryStatement is `Try: block Catch var: block`.
type TryStatement struct {
	Token      token.Token
	TryBlock   *BlockStatement
	CatchVar   *Identifier
	CatchBlock *BlockStatement
}

func (ts *TryStatement) statementNode()       {}
func (ts *TryStatement) TokenLiteral() string { return ts.Token.Literal }
func (ts *TryStatement) String() string {
	out := "Try:\n" + ts.TryBlock.String()
	if ts.CatchBlock != nil {
		out += "Catch " + ts.CatchVar.String() + ":\n" + ts.CatchBlock.String()
	}
	return out
}

// ThrowStatement is `Throw expr`.
type ThrowStatement struct {
	Token token.Token
	Value Expression
}

func (th *ThrowStatement) statementNode()       {}
func (th *ThrowStatement) TokenLiteral() string { return th.Token.Literal }
func (th *ThrowStatement) String() string       { return "Throw " + exprString(th.Value) }

// ReturnStatement is `Return expr?`.
type ReturnStatement struct {
	Token       token.Token
	ReturnValue Expression // nil for bare `Return`
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) String() string {
	if rs.ReturnValue == nil {
		return "return"
	}
	return "return " + exprString(rs.ReturnValue)
}

// ImportStatement is `Import name`.
type ImportStatement struct {
	Token token.Token
	Name  *Identifier
}

func (is *ImportStatement) statementNode()       {}
func (is *ImportStatement) TokenLiteral() string { return is.Token.Literal }
func (is *ImportStatement) String() string       { return "Import " + is.Name.String() }

// StopStatement is the bare `Stop` statement.
type StopStatement struct {
	Token token.Token
}

func (ss *StopStatement) statementNode()       {}
func (ss *StopStatement) TokenLiteral() string { return ss.Token.Literal }
func (ss *StopStatement) String() string       { return "Stop" }

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) String() string       { return exprString(es.Expression) }

// ----------------------------------------------------------------------------------------------
// EXPRESSIONS
// ----------------------------------------------------------------------------------------------

// Identifier is a variable or function/class name reference.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }

// NumberLiteral holds either an integer or a floating point literal.
type NumberLiteral struct {
	Token    token.Token
	IsFloat  bool
	IntValue int64
	FltValue float64
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) String() string       { return n.Token.Literal }

// StringLiteral is a double-quoted string literal.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) String() string       { return `"` + s.Value + `"` }

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Token token.Token
	Value bool
}

func (b *BoolLiteral) expressionNode()      {}
func (b *BoolLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BoolLiteral) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// NullLiteral is `none`/`null`.
type NullLiteral struct {
	Token token.Token
}

func (n *NullLiteral) expressionNode()      {}
func (n *NullLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NullLiteral) String() string       { return "none" }

// BinaryExpression is `left op right`.
type BinaryExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) String() string {
	return "(" + exprString(be.Left) + " " + be.Operator + " " + exprString(be.Right) + ")"
}

// UnaryExpression is `not expr` or unary `-expr`.
type UnaryExpression struct {
	Token    token.Token
	Operator string
	Operand  Expression
}

func (ue *UnaryExpression) expressionNode()      {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Literal }
func (ue *UnaryExpression) String() string {
	return "(" + ue.Operator + " " + exprString(ue.Operand) + ")"
}

// ListLiteral is `[e1, e2, ...]`.
type ListLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (al *ListLiteral) expressionNode()      {}
func (al *ListLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *ListLiteral) String() string {
	var parts []string
	for _, e := range al.Elements {
		parts = append(parts, exprString(e))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// DictPair is one `key: value` entry of a DictLiteral, kept in source order.
type DictPair struct {
	Key   Expression
	Value Expression
}

// DictLiteral is `{k1: v1, k2: v2, ...}`, order-preserving.
type DictLiteral struct {
	Token token.Token
	Pairs []DictPair
}

func (dl *DictLiteral) expressionNode()      {}
func (dl *DictLiteral) TokenLiteral() string { return dl.Token.Literal }
func (dl *DictLiteral) String() string {
	var parts []string
	for _, p := range dl.Pairs {
		parts = append(parts, exprString(p.Key)+": "+exprString(p.Value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// IndexExpression is `target[key]`.
type IndexExpression struct {
	Token  token.Token
	Target Expression
	Key    Expression
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IndexExpression) String() string {
	return exprString(ie.Target) + "[" + exprString(ie.Key) + "]"
}

// MemberExpression is `target.field`.
type MemberExpression struct {
	Token  token.Token
	Target Expression
	Field  *Identifier
}

func (me *MemberExpression) expressionNode()      {}
func (me *MemberExpression) TokenLiteral() string { return me.Token.Literal }
func (me *MemberExpression) String() string {
	return exprString(me.Target) + "." + me.Field.String()
}

// CallExpression is `callee(args)`, used for both plain calls and method
// calls (where Callee is a MemberExpression).
type CallExpression struct {
	Token     token.Token
	Callee    Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	var args []string
	for _, a := range ce.Arguments {
		args = append(args, exprString(a))
	}
	return exprString(ce.Callee) + "(" + strings.Join(args, ", ") + ")"
}

// NewExpression is `New ClassName with args`.
type NewExpression struct {
	Token     token.Token
	ClassName *Identifier
	Arguments []Expression
}

func (ne *NewExpression) expressionNode()      {}
func (ne *NewExpression) TokenLiteral() string { return ne.Token.Literal }
func (ne *NewExpression) String() string {
	var args []string
	for _, a := range ne.Arguments {
		args = append(args, exprString(a))
	}
	return "New " + ne.ClassName.String() + " with " + strings.Join(args, ", ")
}

func exprString(e Expression) string {
	if e == nil {
		return ""
	}
	return e.String()
}
