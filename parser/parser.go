// ==============================================================================================
// FILE: parser/parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Recursive descent parser with Pratt parsing for expressions. Turns a token stream
//          from the lexer into an *ast.Program. Statement-level productions use the convention
//          that once a parse*Statement function returns, curToken already sits on the first
//          token NOT belonging to that statement; expression parsing (Pratt) instead leaves
//          curToken on the last token it consumed.
// ==============================================================================================

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/convo-lang/convo/ast"
	"github.com/convo-lang/convo/lexer"
	"github.com/convo-lang/convo/token"
)

// Precedence levels, lowest to highest binding. The ordering below encodes
// the grammar: or < and < not < comparisons < +- < */ < unary- < postfix.
const (
	LOWEST      int = iota
	OR_PREC         // or
	AND_PREC        // and
	NOT_PREC        // not (prefix)
	COMPARISON      // equals, not equals, greater, greater equal, less, less equal
	SUM             // +, -
	PRODUCT         // *, /
	PREFIX          // unary -
	CALL_PREC       // call(...), index[...], member.field
)

var precedences = map[token.TokenType]int{
	token.OR:            OR_PREC,
	token.AND:           AND_PREC,
	token.EQUALS:        COMPARISON,
	token.NOT_EQUALS:    COMPARISON,
	token.GREATER:       COMPARISON,
	token.GREATER_EQUAL: COMPARISON,
	token.LESS:          COMPARISON,
	token.LESS_EQUAL:    COMPARISON,
	token.PLUS:          SUM,
	token.MINUS:         SUM,
	token.STAR:          PRODUCT,
	token.SLASH:         PRODUCT,
	token.LPAREN:        CALL_PREC,
	token.LBRACKET:      CALL_PREC,
	token.DOT:           CALL_PREC,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser consumes a token stream and builds an *ast.Program.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []string

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

// New builds a Parser over l and primes curToken/peekToken.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l, errors: []string{}}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.THIS, p.parseThis)
	p.registerPrefix(token.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBoolLiteral)
	p.registerPrefix(token.FALSE, p.parseBoolLiteral)
	p.registerPrefix(token.NULL, p.parseNullLiteral)
	p.registerPrefix(token.MINUS, p.parseUnaryMinus)
	p.registerPrefix(token.NOT, p.parseUnaryNot)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.LBRACKET, p.parseListLiteral)
	p.registerPrefix(token.LBRACE, p.parseDictLiteral)
	p.registerPrefix(token.NEW, p.parseNewExpression)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for _, tt := range []token.TokenType{
		token.PLUS, token.MINUS, token.STAR, token.SLASH,
		token.AND, token.OR,
		token.EQUALS, token.NOT_EQUALS,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL,
	} {
		p.registerInfix(tt, p.parseBinaryExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)
	p.registerInfix(token.DOT, p.parseMemberExpression)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(tt token.TokenType, fn prefixParseFn) { p.prefixParseFns[tt] = fn }
func (p *Parser) registerInfix(tt token.TokenType, fn infixParseFn)   { p.infixParseFns[tt] = fn }

// Errors returns accumulated parse errors; the lexer's own Errors() should be
// merged in by the caller (see cmd/convo) so a bad indent and a bad token
// both surface in one report.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf("line %d: %s", p.curToken.Line, fmt.Sprintf(format, args...)))
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(tt token.TokenType) bool  { return p.curToken.Type == tt }
func (p *Parser) peekTokenIs(tt token.TokenType) bool { return p.peekToken.Type == tt }

func (p *Parser) expectPeek(tt token.TokenType) bool {
	if p.peekTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.peekError(tt)
	return false
}

func (p *Parser) peekError(tt token.TokenType) {
	p.errors = append(p.errors, fmt.Sprintf("line %d: expected next token to be %s, got %s instead",
		p.peekToken.Line, tt, p.peekToken.Type))
}

// expectCur asserts curToken is tt and advances past it. Used by the
// statement-level parsers, which treat "advance past the last consumed
// token" as their return convention.
func (p *Parser) expectCur(tt token.TokenType) bool {
	if p.curTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.errorf("expected %s, got %s (%q)", tt, p.curToken.Type, p.curToken.Literal)
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) skipNewlines() {
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

// ----------------------------------------------------------------------------------------------
// PROGRAM / STATEMENTS
// ----------------------------------------------------------------------------------------------

// ParseProgram parses the whole token stream into a *ast.Program. Parse
// errors are accumulated in p.errors rather than stopping the parse, so a
// caller can report every problem in one pass.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	p.skipNewlines()
	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.skipNewlines()
	}
	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.SAY:
		return p.parseSayStatement()
	case token.LET:
		return p.parseLetStatement()
	case token.DEFINE:
		return p.parseFunctionDefStatement()
	case token.CLASS:
		return p.parseClassDefStatement()
	case token.CALL:
		return p.parseCallStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR, token.FOREACH:
		return p.parseForStatement()
	case token.TRY:
		return p.parseTryStatement()
	case token.THROW:
		return p.parseThrowStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.IMPORT:
		return p.parseImportStatement()
	case token.STOP:
		return p.parseStopStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseBlockStatement parses an INDENT ... DEDENT body. On return curToken
// is already past the closing DEDENT (or sits on EOF if the block was never
// properly closed, which is recorded as an error).
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	if !p.curTokenIs(token.INDENT) {
		p.errorf("expected an indented block, got %s", p.curToken.Type)
		return block
	}
	p.nextToken()
	p.skipNewlines()
	for !p.curTokenIs(token.DEDENT) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.skipNewlines()
	}
	if p.curTokenIs(token.DEDENT) {
		p.nextToken()
	} else {
		p.errorf("unterminated block, expected dedent")
	}
	return block
}

func (p *Parser) parseSayStatement() ast.Statement {
	stmt := &ast.SayStatement{Token: p.curToken}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	p.nextToken()
	return stmt
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}
	p.nextToken()

	if p.curTokenIs(token.THIS) {
		stmt.Name = &ast.Identifier{Token: p.curToken, Value: "this"}
	} else if p.curTokenIs(token.IDENT) {
		stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	} else {
		p.errorf("expected identifier after Let, got %s", p.curToken.Type)
		return stmt
	}
	p.nextToken()

	if p.curTokenIs(token.DOT) {
		p.nextToken()
		if !p.curTokenIs(token.IDENT) {
			p.errorf("expected field name after '.', got %s", p.curToken.Type)
			return stmt
		}
		stmt.Field = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		p.nextToken()
	}

	if !p.expectCur(token.BE) {
		return stmt
	}
	stmt.Value = p.parseExpression(LOWEST)
	p.nextToken()
	return stmt
}

func (p *Parser) parseIdentifierList() []*ast.Identifier {
	var params []*ast.Identifier
	if !p.curTokenIs(token.IDENT) {
		return params
	}
	params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	p.nextToken()
	for p.curTokenIs(token.COMMA) {
		p.nextToken()
		if !p.curTokenIs(token.IDENT) {
			p.errorf("expected parameter name, got %s", p.curToken.Type)
			break
		}
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
		p.nextToken()
	}
	return params
}

func (p *Parser) parseFunctionDefStatement() ast.Statement {
	stmt := &ast.FunctionDefStatement{Token: p.curToken}
	p.nextToken()
	switch {
	case p.curTokenIs(token.IDENT):
		stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	case p.curTokenIs(token.NEW):
		// `Define new` names a class constructor.
		stmt.Name = &ast.Identifier{Token: p.curToken, Value: "new"}
	default:
		p.errorf("expected function name after Define, got %s", p.curToken.Type)
		return stmt
	}
	p.nextToken()

	if p.curTokenIs(token.WITH) {
		p.nextToken()
		if p.curTokenIs(token.LPAREN) {
			p.nextToken()
			stmt.Parameters = p.parseIdentifierList()
			if !p.expectCur(token.RPAREN) {
				return stmt
			}
		} else {
			stmt.Parameters = p.parseIdentifierList()
		}
	}

	if !p.expectCur(token.COLON) {
		return stmt
	}
	p.skipNewlines()
	stmt.Body = p.parseBlockStatement()
	return stmt
}

func (p *Parser) parseClassDefStatement() ast.Statement {
	stmt := &ast.ClassDefStatement{Token: p.curToken}
	p.nextToken()
	if !p.curTokenIs(token.IDENT) {
		p.errorf("expected class name after Class, got %s", p.curToken.Type)
		return stmt
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken()

	if !p.expectCur(token.COLON) {
		return stmt
	}
	p.skipNewlines()
	stmt.Body = p.parseBlockStatement()
	return stmt
}

func (p *Parser) parseExpressionCSV() []ast.Expression {
	var list []ast.Expression
	list = append(list, p.parseExpression(LOWEST))
	p.nextToken()
	for p.curTokenIs(token.COMMA) {
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
		p.nextToken()
	}
	return list
}

func (p *Parser) parseCallStatement() ast.Statement {
	stmt := &ast.CallStatement{Token: p.curToken}
	p.nextToken()
	if !p.curTokenIs(token.IDENT) {
		p.errorf("expected function name after Call, got %s", p.curToken.Type)
		return stmt
	}
	stmt.Function = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken()

	if p.curTokenIs(token.WITH) {
		p.nextToken()
		stmt.Arguments = p.parseExpressionCSV()
	}
	return stmt
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	p.nextToken()

	if p.curTokenIs(token.THEN) {
		p.nextToken()
	}
	if !p.expectCur(token.COLON) {
		return stmt
	}
	p.skipNewlines()
	stmt.Consequence = p.parseBlockStatement()

	if p.curTokenIs(token.ELSE) {
		p.nextToken()
		if p.curTokenIs(token.IF) {
			elseIfTok := p.curToken
			nested := p.parseIfStatement()
			stmt.Alternative = &ast.BlockStatement{Token: elseIfTok, Statements: []ast.Statement{nested}}
			return stmt
		}
		if !p.expectCur(token.COLON) {
			return stmt
		}
		p.skipNewlines()
		stmt.Alternative = p.parseBlockStatement()
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	p.nextToken()

	if p.curTokenIs(token.DO) {
		p.nextToken()
	}
	if !p.expectCur(token.COLON) {
		return stmt
	}
	p.skipNewlines()
	stmt.Body = p.parseBlockStatement()
	return stmt
}

func (p *Parser) parseForStatement() ast.Statement {
	stmt := &ast.ForStatement{Token: p.curToken}
	if p.curTokenIs(token.FOR) {
		p.nextToken()
		if !p.expectCur(token.EACH) {
			return stmt
		}
	} else {
		p.nextToken() // consume the merged FOR_EACH token
	}

	if !p.curTokenIs(token.IDENT) {
		p.errorf("expected loop variable name, got %s", p.curToken.Type)
		return stmt
	}
	stmt.VarName = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken()

	if !p.expectCur(token.IN) {
		return stmt
	}
	stmt.Iterable = p.parseExpression(LOWEST)
	p.nextToken()

	if p.curTokenIs(token.DO) {
		p.nextToken()
	}
	if !p.expectCur(token.COLON) {
		return stmt
	}
	p.skipNewlines()
	stmt.Body = p.parseBlockStatement()
	return stmt
}

func (p *Parser) parseTryStatement() ast.Statement {
	stmt := &ast.TryStatement{Token: p.curToken}
	p.nextToken()
	if !p.expectCur(token.COLON) {
		return stmt
	}
	p.skipNewlines()
	stmt.TryBlock = p.parseBlockStatement()

	if !p.curTokenIs(token.CATCH) {
		p.errorf("expected Catch after Try block, got %s", p.curToken.Type)
		return stmt
	}
	p.nextToken()
	if !p.curTokenIs(token.IDENT) {
		p.errorf("expected caught-error variable name, got %s", p.curToken.Type)
		return stmt
	}
	stmt.CatchVar = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken()

	if !p.expectCur(token.COLON) {
		return stmt
	}
	p.skipNewlines()
	stmt.CatchBlock = p.parseBlockStatement()
	return stmt
}

func (p *Parser) parseThrowStatement() ast.Statement {
	stmt := &ast.ThrowStatement{Token: p.curToken}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	p.nextToken()
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	p.nextToken()
	if p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.DEDENT) || p.curTokenIs(token.EOF) {
		return stmt
	}
	stmt.ReturnValue = p.parseExpression(LOWEST)
	p.nextToken()
	return stmt
}

func (p *Parser) parseImportStatement() ast.Statement {
	stmt := &ast.ImportStatement{Token: p.curToken}
	p.nextToken()
	if !p.curTokenIs(token.IDENT) {
		p.errorf("expected module name after Import, got %s", p.curToken.Type)
		return stmt
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken()
	return stmt
}

func (p *Parser) parseStopStatement() ast.Statement {
	stmt := &ast.StopStatement{Token: p.curToken}
	p.nextToken()
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		p.errorf("unexpected token %s (%q)", p.curToken.Type, p.curToken.Literal)
	}
	p.nextToken()
	return stmt
}

// ----------------------------------------------------------------------------------------------
// EXPRESSIONS (Pratt parsing)
// ----------------------------------------------------------------------------------------------

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		if token.IsKeyword(p.curToken.Literal) {
			p.errorf("reserved word %q cannot start an expression", p.curToken.Literal)
		} else {
			p.errorf("no prefix parse function for %s found", p.curToken.Type)
		}
		return nil
	}
	leftExp := prefix()

	for !p.peekTokenIs(token.NEWLINE) && !p.peekTokenIs(token.EOF) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}
	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseThis() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: "this"}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	lit := &ast.NumberLiteral{Token: p.curToken}
	if strings.Contains(p.curToken.Literal, ".") {
		val, err := strconv.ParseFloat(p.curToken.Literal, 64)
		if err != nil {
			p.errorf("could not parse %q as a number", p.curToken.Literal)
			return nil
		}
		lit.IsFloat = true
		lit.FltValue = val
		return lit
	}
	val, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errorf("could not parse %q as a number", p.curToken.Literal)
		return nil
	}
	lit.IntValue = val
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.BoolLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Token: p.curToken}
}

func (p *Parser) parseUnaryMinus() ast.Expression {
	tok := p.curToken
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	return &ast.UnaryExpression{Token: tok, Operator: "-", Operand: operand}
}

func (p *Parser) parseUnaryNot() ast.Expression {
	tok := p.curToken
	p.nextToken()
	operand := p.parseExpression(NOT_PREC)
	return &ast.UnaryExpression{Token: tok, Operator: "not", Operand: operand}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseExpressionList(end token.TokenType) []ast.Expression {
	var list []ast.Expression
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parseListLiteral() ast.Expression {
	lit := &ast.ListLiteral{Token: p.curToken}
	lit.Elements = p.parseExpressionList(token.RBRACKET)
	return lit
}

func (p *Parser) parseDictLiteral() ast.Expression {
	lit := &ast.DictLiteral{Token: p.curToken}
	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		key := p.parseExpression(LOWEST)
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		value := p.parseExpression(LOWEST)
		lit.Pairs = append(lit.Pairs, ast.DictPair{Key: key, Value: value})
		if !p.peekTokenIs(token.RBRACE) && !p.expectPeek(token.COMMA) {
			return nil
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return lit
}

func (p *Parser) parseNewExpression() ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	ne := &ast.NewExpression{Token: tok, ClassName: &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}}
	if p.peekTokenIs(token.WITH) {
		p.nextToken()
		p.nextToken()
		ne.Arguments = append(ne.Arguments, p.parseExpression(LOWEST))
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			ne.Arguments = append(ne.Arguments, p.parseExpression(LOWEST))
		}
	}
	return ne
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	exp := &ast.BinaryExpression{Token: p.curToken, Left: left, Operator: binaryOpName(p.curToken.Type)}
	precedence := p.curPrecedence()
	p.nextToken()
	exp.Right = p.parseExpression(precedence)
	return exp
}

func (p *Parser) parseCallExpression(fn ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.curToken, Callee: fn}
	exp.Arguments = p.parseExpressionList(token.RPAREN)
	return exp
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	exp := &ast.IndexExpression{Token: p.curToken, Target: left}
	p.nextToken()
	exp.Key = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return exp
}

func (p *Parser) parseMemberExpression(left ast.Expression) ast.Expression {
	exp := &ast.MemberExpression{Token: p.curToken, Target: left}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	exp.Field = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	return exp
}

func binaryOpName(tt token.TokenType) string {
	switch tt {
	case token.PLUS:
		return "+"
	case token.MINUS:
		return "-"
	case token.STAR:
		return "*"
	case token.SLASH:
		return "/"
	case token.AND:
		return "and"
	case token.OR:
		return "or"
	case token.EQUALS:
		return "equals"
	case token.NOT_EQUALS:
		return "not_equals"
	case token.GREATER:
		return "greater"
	case token.GREATER_EQUAL:
		return "greater_equal"
	case token.LESS:
		return "less"
	case token.LESS_EQUAL:
		return "less_equal"
	default:
		return string(tt)
	}
}
