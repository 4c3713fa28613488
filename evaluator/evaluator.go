// ==============================================================================================
// FILE: evaluator/evaluator.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: The tree-walking execution engine. Eval walks the AST produced by the parser,
//          threading a signal state (Normal/Returning/Throwing/Stopping) through block, loop,
//          function and try/catch evaluation exactly the way the control-flow statements
//          describe it.
// ==============================================================================================

package evaluator

import (
	"fmt"

	"github.com/convo-lang/convo/ast"
	"github.com/convo-lang/convo/modules"
	"github.com/convo-lang/convo/object"
)

// Singletons, avoiding an allocation per truthy/falsy result.
var (
	NULL  = &object.Null{}
	TRUE  = &object.Boolean{Value: true}
	FALSE = &object.Boolean{Value: false}
)

// Eval recursively evaluates an AST node against env, returning either a
// plain value or one of the four signal wrappers (ReturnValue, Thrown,
// StopSignal, Error) that the caller must check for and propagate.
func Eval(node ast.Node, env *object.Environment) object.Object {
	switch node := node.(type) {

	case *ast.Program:
		return evalProgram(node, env)
	case *ast.BlockStatement:
		return evalBlockStatement(node, env)

	case *ast.SayStatement:
		val := Eval(node.Value, env)
		if isSignal(val) {
			return val
		}
		fmt.Println(val.Inspect())
		return NULL

	case *ast.LetStatement:
		return evalLetStatement(node, env)

	case *ast.FunctionDefStatement:
		fn := &object.Function{Name: node.Name.Value, Parameters: node.Parameters, Body: node.Body, Env: env}
		env.Declare(node.Name.Value, fn)
		return NULL

	case *ast.ClassDefStatement:
		return evalClassDefStatement(node, env)

	case *ast.CallStatement:
		return evalCallStatement(node, env)

	case *ast.IfStatement:
		return evalIfStatement(node, env)

	case *ast.WhileStatement:
		return evalWhileStatement(node, env)

	case *ast.ForStatement:
		return evalForStatement(node, env)

	case *ast.TryStatement:
		return evalTryStatement(node, env)

	case *ast.ThrowStatement:
		val := Eval(node.Value, env)
		if isSignal(val) {
			return val
		}
		return &object.Thrown{Value: val}

	case *ast.ReturnStatement:
		if node.ReturnValue == nil {
			return &object.ReturnValue{Value: NULL}
		}
		val := Eval(node.ReturnValue, env)
		if isSignal(val) {
			return val
		}
		return &object.ReturnValue{Value: val}

	case *ast.ImportStatement:
		return evalImportStatement(node, env)

	case *ast.StopStatement:
		return &object.StopSignal{}

	case *ast.ExpressionStatement:
		return Eval(node.Expression, env)

	// --- Expressions ---
	case *ast.Identifier:
		return evalIdentifier(node, env)
	case *ast.NumberLiteral:
		if node.IsFloat {
			return &object.Float{Value: node.FltValue}
		}
		return &object.Integer{Value: node.IntValue}
	case *ast.StringLiteral:
		return &object.String{Value: node.Value}
	case *ast.BoolLiteral:
		return nativeBool(node.Value)
	case *ast.NullLiteral:
		return NULL
	case *ast.BinaryExpression:
		return evalBinaryExpression(node, env)
	case *ast.UnaryExpression:
		return evalUnaryExpression(node, env)
	case *ast.ListLiteral:
		elements, sig := evalExpressionList(node.Elements, env)
		if sig != nil {
			return sig
		}
		return &object.List{Elements: elements}
	case *ast.DictLiteral:
		return evalDictLiteral(node, env)
	case *ast.IndexExpression:
		return evalIndexExpression(node, env)
	case *ast.MemberExpression:
		return evalMemberExpression(node, env)
	case *ast.CallExpression:
		return evalCallExpression(node, env)
	case *ast.NewExpression:
		return evalNewExpression(node, env)
	}

	return NULL
}

// isSignal reports whether obj is one of the four control-flow wrappers
// that must interrupt normal statement-by-statement execution.
func isSignal(obj object.Object) bool {
	if obj == nil {
		return false
	}
	switch obj.Type() {
	case object.RETURN_VALUE_OBJ, object.ERROR_OBJ, object.THROWN_OBJ, object.STOP_SIGNAL_OBJ:
		return true
	}
	return false
}

func evalProgram(p *ast.Program, env *object.Environment) object.Object {
	var result object.Object = NULL
	for _, stmt := range p.Statements {
		result = Eval(stmt, env)
		if isSignal(result) {
			switch sig := result.(type) {
			case *object.ReturnValue:
				return sig.Value
			case *object.StopSignal:
				return NULL
			default:
				return result
			}
		}
	}
	return result
}

func evalBlockStatement(b *ast.BlockStatement, env *object.Environment) object.Object {
	var result object.Object = NULL
	for _, stmt := range b.Statements {
		result = Eval(stmt, env)
		if isSignal(result) {
			return result
		}
	}
	return result
}

// ----------------------------------------------------------------------------------------------
// Let / field assignment
// ----------------------------------------------------------------------------------------------

func evalLetStatement(ls *ast.LetStatement, env *object.Environment) object.Object {
	val := Eval(ls.Value, env)
	if isSignal(val) {
		return val
	}
	if ls.Field == nil {
		env.Assign(ls.Name.Value, val)
		return NULL
	}

	target, ok := env.Get(ls.Name.Value)
	if !ok {
		return &object.Error{Kind: "NameError", Message: "identifier not found: " + ls.Name.Value}
	}
	inst, ok := target.(*object.Instance)
	if !ok {
		return &object.Error{Kind: "TypeError", Message: fmt.Sprintf("cannot assign field on %s", target.Type())}
	}
	inst.Fields[ls.Field.Value] = val
	return NULL
}

// ----------------------------------------------------------------------------------------------
// Class / New
// ----------------------------------------------------------------------------------------------

func evalClassDefStatement(cd *ast.ClassDefStatement, env *object.Environment) object.Object {
	class := &object.Class{
		Name:    cd.Name.Value,
		Methods: make(map[string]*object.Function),
		Env:     env,
	}
	for _, stmt := range cd.Body.Statements {
		switch s := stmt.(type) {
		case *ast.FunctionDefStatement:
			class.Methods[s.Name.Value] = &object.Function{
				Name: s.Name.Value, Parameters: s.Parameters, Body: s.Body, Env: env,
			}
		case *ast.LetStatement:
			if s.Field == nil || s.Name.Value != "this" {
				return &object.Error{Kind: "SyntaxError", Message: "class body may only contain method definitions and `Let this.field be ...` defaults"}
			}
			class.FieldDefaults = append(class.FieldDefaults, object.FieldDefault{Name: s.Field.Value, Value: s.Value})
		default:
			return &object.Error{Kind: "SyntaxError", Message: "class body may only contain method definitions and field defaults"}
		}
	}
	env.Declare(cd.Name.Value, class)
	return NULL
}

func evalNewExpression(ne *ast.NewExpression, env *object.Environment) object.Object {
	obj, ok := env.Get(ne.ClassName.Value)
	if !ok {
		return &object.Error{Kind: "NameError", Message: "unknown class: " + ne.ClassName.Value}
	}
	class, ok := obj.(*object.Class)
	if !ok {
		return &object.Error{Kind: "TypeError", Message: ne.ClassName.Value + " is not a class"}
	}

	inst := &object.Instance{Class: class, Fields: make(map[string]object.Object)}
	for _, fd := range class.FieldDefaults {
		defaultEnv := object.NewEnclosedEnvironment(class.Env)
		val := Eval(fd.Value, defaultEnv)
		if isSignal(val) {
			return val
		}
		inst.Fields[fd.Name] = val
	}

	args, sig := evalExpressionList(ne.Arguments, env)
	if sig != nil {
		return sig
	}

	if ctor, ok := class.Method("new"); ok {
		result := callFunction(ctor, args, inst)
		if isSignal(result) {
			if rv, ok := result.(*object.ReturnValue); ok {
				_ = rv // constructor return value is discarded; only errors/throws propagate
			} else {
				return result
			}
		}
	}
	return inst
}

// ----------------------------------------------------------------------------------------------
// If / While / For / Try / Stop
// ----------------------------------------------------------------------------------------------

func evalIfStatement(is *ast.IfStatement, env *object.Environment) object.Object {
	cond := Eval(is.Condition, env)
	if isSignal(cond) {
		return cond
	}
	if isTruthy(cond) {
		return evalBlockStatement(is.Consequence, env)
	}
	if is.Alternative != nil {
		return evalBlockStatement(is.Alternative, env)
	}
	return NULL
}

func evalWhileStatement(ws *ast.WhileStatement, env *object.Environment) object.Object {
	for {
		cond := Eval(ws.Condition, env)
		if isSignal(cond) {
			return cond
		}
		if !isTruthy(cond) {
			break
		}
		// The body shares env (not a fresh enclosed scope) so a counter
		// declared outside the loop and rebound with Let keeps updating.
		result := Eval(ws.Body, env)
		if isSignal(result) {
			if _, ok := result.(*object.StopSignal); ok {
				break
			}
			return result
		}
	}
	return NULL
}

func evalForStatement(fs *ast.ForStatement, env *object.Environment) object.Object {
	iterable := Eval(fs.Iterable, env)
	if isSignal(iterable) {
		return iterable
	}

	var items []object.Object
	switch coll := iterable.(type) {
	case *object.List:
		items = append(items, coll.Elements...) // snapshot at entry
	case *object.Dict:
		for _, pair := range coll.Pairs() {
			items = append(items, pair.Key)
		}
	default:
		return &object.Error{Kind: "TypeError", Message: "For each requires a List or Dict, got " + string(coll.Type())}
	}

	for _, item := range items {
		env.Assign(fs.VarName.Value, item)
		result := Eval(fs.Body, env)
		if isSignal(result) {
			if _, ok := result.(*object.StopSignal); ok {
				break
			}
			return result
		}
	}
	return NULL
}

func evalTryStatement(ts *ast.TryStatement, env *object.Environment) object.Object {
	result := evalBlockStatement(ts.TryBlock, env)

	var caught object.Object
	switch sig := result.(type) {
	case *object.Thrown:
		caught = sig.Value
	case *object.Error:
		caught = sig
	default:
		return result // Normal, Return, or Stop all pass through untouched
	}

	env.Declare(ts.CatchVar.Value, caught)
	return evalBlockStatement(ts.CatchBlock, env)
}

func evalImportStatement(is *ast.ImportStatement, env *object.Environment) object.Object {
	exports, ok := modules.Lookup(is.Name.Value)
	if !ok {
		return &object.Error{Kind: "RuntimeError", Message: "unknown module: " + is.Name.Value}
	}
	global := env.Global()
	for _, name := range exports {
		builtin, ok := object.GetBuiltin(name)
		if !ok {
			continue
		}
		global.Declare(name, builtin)
	}
	return NULL
}

// ----------------------------------------------------------------------------------------------
// Calls
// ----------------------------------------------------------------------------------------------

func evalCallStatement(cs *ast.CallStatement, env *object.Environment) object.Object {
	callee, sig := resolveCallable(cs.Function.Value, env)
	if sig != nil {
		return sig
	}
	args, sig := evalExpressionList(cs.Arguments, env)
	if sig != nil {
		return sig
	}
	return applyCallable(callee, args, nil)
}

func evalCallExpression(ce *ast.CallExpression, env *object.Environment) object.Object {
	if member, ok := ce.Callee.(*ast.MemberExpression); ok {
		return evalMethodCall(ce, member, env)
	}

	var callee object.Object
	var sig object.Object
	if ident, ok := ce.Callee.(*ast.Identifier); ok {
		callee, sig = resolveCallable(ident.Value, env)
	} else {
		callee = Eval(ce.Callee, env)
		sig = callee
		if !isSignal(sig) {
			sig = nil
		}
	}
	if sig != nil {
		return sig
	}

	args, argSig := evalExpressionList(ce.Arguments, env)
	if argSig != nil {
		return argSig
	}
	return applyCallable(callee, args, nil)
}

func evalMethodCall(ce *ast.CallExpression, member *ast.MemberExpression, env *object.Environment) object.Object {
	target := Eval(member.Target, env)
	if isSignal(target) {
		return target
	}
	inst, ok := target.(*object.Instance)
	if !ok {
		return &object.Error{Kind: "TypeError", Message: "cannot call method on " + string(target.Type())}
	}
	method, ok := inst.Class.Method(member.Field.Value)
	if !ok {
		return &object.Error{Kind: "NameError", Message: fmt.Sprintf("%s has no method %s", inst.Class.Name, member.Field.Value)}
	}
	args, sig := evalExpressionList(ce.Arguments, env)
	if sig != nil {
		return sig
	}
	return callFunction(method, args, inst)
}

// resolveCallable looks a bare name up as a user-defined or builtin
// function; a user binding always shadows a builtin of the same name.
func resolveCallable(name string, env *object.Environment) (object.Object, object.Object) {
	if val, ok := env.Get(name); ok {
		return val, nil
	}
	if builtin, ok := object.GetBuiltin(name); ok {
		return builtin, nil
	}
	return nil, &object.Error{Kind: "NameError", Message: "identifier not found: " + name}
}

func applyCallable(callee object.Object, args []object.Object, this object.Object) object.Object {
	switch fn := callee.(type) {
	case *object.Function:
		return callFunction(fn, args, this)
	case *object.Builtin:
		return fn.Fn(args...)
	default:
		return &object.Error{Kind: "TypeError", Message: "not callable: " + string(callee.Type())}
	}
}

func callFunction(fn *object.Function, args []object.Object, this object.Object) object.Object {
	if len(args) != len(fn.Parameters) {
		return &object.Error{Kind: "ArityError", Message: fmt.Sprintf("%s expects %d argument(s), got %d", fn.Name, len(fn.Parameters), len(args))}
	}
	callEnv := object.NewEnclosedEnvironment(fn.Env)
	if this != nil {
		callEnv.Declare("this", this)
	}
	for i, param := range fn.Parameters {
		callEnv.Declare(param.Value, args[i])
	}
	result := Eval(fn.Body, callEnv)
	if rv, ok := result.(*object.ReturnValue); ok {
		return rv.Value
	}
	return result
}

func evalExpressionList(exps []ast.Expression, env *object.Environment) ([]object.Object, object.Object) {
	values := make([]object.Object, 0, len(exps))
	for _, e := range exps {
		val := Eval(e, env)
		if isSignal(val) {
			return nil, val
		}
		values = append(values, val)
	}
	return values, nil
}

// ----------------------------------------------------------------------------------------------
// Identifiers / indexing / member access
// ----------------------------------------------------------------------------------------------

func evalIdentifier(node *ast.Identifier, env *object.Environment) object.Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	if builtin, ok := object.GetBuiltin(node.Value); ok {
		return builtin
	}
	return &object.Error{Kind: "NameError", Message: "identifier not found: " + node.Value}
}

func evalIndexExpression(ie *ast.IndexExpression, env *object.Environment) object.Object {
	target := Eval(ie.Target, env)
	if isSignal(target) {
		return target
	}
	key := Eval(ie.Key, env)
	if isSignal(key) {
		return key
	}

	switch coll := target.(type) {
	case *object.List:
		idx, ok := key.(*object.Integer)
		if !ok {
			return &object.Error{Kind: "TypeError", Message: "list index must be an integer"}
		}
		i := int(idx.Value)
		if i < 0 {
			i += len(coll.Elements)
		}
		if i < 0 || i >= len(coll.Elements) {
			return &object.Error{Kind: "IndexError", Message: fmt.Sprintf("index %d out of range", int(idx.Value))}
		}
		return coll.Elements[i]
	case *object.Dict:
		hk, ok := key.(object.Hashable)
		if !ok {
			return &object.Error{Kind: "TypeError", Message: "unusable as a dict key: " + string(key.Type())}
		}
		val, found := coll.Get(hk)
		if !found {
			return &object.Error{Kind: "IndexError", Message: "key not found: " + key.Inspect()}
		}
		return val
	default:
		return &object.Error{Kind: "TypeError", Message: "cannot index into " + string(target.Type())}
	}
}

func evalMemberExpression(me *ast.MemberExpression, env *object.Environment) object.Object {
	target := Eval(me.Target, env)
	if isSignal(target) {
		return target
	}
	inst, ok := target.(*object.Instance)
	if !ok {
		return &object.Error{Kind: "TypeError", Message: "cannot access field on " + string(target.Type())}
	}
	val, ok := inst.Fields[me.Field.Value]
	if !ok {
		return &object.Error{Kind: "NameError", Message: fmt.Sprintf("%s has no field %s", inst.Class.Name, me.Field.Value)}
	}
	return val
}

func evalDictLiteral(dl *ast.DictLiteral, env *object.Environment) object.Object {
	dict := object.NewDict()
	for _, pair := range dl.Pairs {
		key := Eval(pair.Key, env)
		if isSignal(key) {
			return key
		}
		hk, ok := key.(object.Hashable)
		if !ok {
			return &object.Error{Kind: "TypeError", Message: "unusable as a dict key: " + string(key.Type())}
		}
		val := Eval(pair.Value, env)
		if isSignal(val) {
			return val
		}
		dict.Set(hk, key, val)
	}
	return dict
}

// ----------------------------------------------------------------------------------------------
// Operators
// ----------------------------------------------------------------------------------------------

func evalUnaryExpression(ue *ast.UnaryExpression, env *object.Environment) object.Object {
	operand := Eval(ue.Operand, env)
	if isSignal(operand) {
		return operand
	}
	switch ue.Operator {
	case "-":
		switch v := operand.(type) {
		case *object.Integer:
			return &object.Integer{Value: -v.Value}
		case *object.Float:
			return &object.Float{Value: -v.Value}
		default:
			return &object.Error{Kind: "TypeError", Message: "unary - requires a number, got " + string(operand.Type())}
		}
	case "not":
		return nativeBool(!isTruthy(operand))
	default:
		return &object.Error{Kind: "RuntimeError", Message: "unknown unary operator: " + ue.Operator}
	}
}

func evalBinaryExpression(be *ast.BinaryExpression, env *object.Environment) object.Object {
	// "and"/"or" short-circuit, so the right side is evaluated lazily.
	if be.Operator == "and" || be.Operator == "or" {
		left := Eval(be.Left, env)
		if isSignal(left) {
			return left
		}
		leftTruthy := isTruthy(left)
		if be.Operator == "and" && !leftTruthy {
			return FALSE
		}
		if be.Operator == "or" && leftTruthy {
			return TRUE
		}
		right := Eval(be.Right, env)
		if isSignal(right) {
			return right
		}
		return nativeBool(isTruthy(right))
	}

	left := Eval(be.Left, env)
	if isSignal(left) {
		return left
	}
	right := Eval(be.Right, env)
	if isSignal(right) {
		return right
	}
	return evalBinaryOp(be.Operator, left, right)
}

func evalBinaryOp(op string, left, right object.Object) object.Object {
	// equals/not_equals are structural across every runtime type, so they're
	// resolved before the type-matched dispatch below ever sees them.
	if op == "equals" || op == "not_equals" {
		eq := object.DeepEqual(left, right)
		if op == "not_equals" {
			eq = !eq
		}
		return nativeBool(eq)
	}

	switch {
	case isNumber(left) && isNumber(right):
		return evalNumericOp(op, left, right)
	case left.Type() == object.STRING_OBJ || right.Type() == object.STRING_OBJ:
		if op == "+" {
			return &object.String{Value: stringify(left) + stringify(right)}
		}
		if left.Type() == object.STRING_OBJ && right.Type() == object.STRING_OBJ {
			return evalStringOp(op, left.(*object.String), right.(*object.String))
		}
		return &object.Error{Kind: "TypeError", Message: fmt.Sprintf("unsupported operand types for %s: %s and %s", op, left.Type(), right.Type())}
	case left.Type() == object.BOOLEAN_OBJ && right.Type() == object.BOOLEAN_OBJ:
		return evalBooleanOp(op, left.(*object.Boolean), right.(*object.Boolean))
	case left.Type() == object.NULL_OBJ || right.Type() == object.NULL_OBJ:
		return evalNullComparison(op, left, right)
	default:
		return &object.Error{Kind: "TypeError", Message: fmt.Sprintf("unsupported operand types for %s: %s and %s", op, left.Type(), right.Type())}
	}
}

// stringify renders an operand's textual form for the `+` operator's string
// overload: a String contributes its raw value, anything else its Inspect().
func stringify(o object.Object) string {
	if s, ok := o.(*object.String); ok {
		return s.Value
	}
	return o.Inspect()
}

func isNumber(o object.Object) bool {
	switch o.(type) {
	case *object.Integer, *object.Float:
		return true
	}
	return false
}

func asFloat(o object.Object) float64 {
	switch v := o.(type) {
	case *object.Integer:
		return float64(v.Value)
	case *object.Float:
		return v.Value
	}
	return 0
}

func evalNumericOp(op string, left, right object.Object) object.Object {
	li, lIsInt := left.(*object.Integer)
	ri, rIsInt := right.(*object.Integer)
	if lIsInt && rIsInt {
		switch op {
		case "+":
			return &object.Integer{Value: li.Value + ri.Value}
		case "-":
			return &object.Integer{Value: li.Value - ri.Value}
		case "*":
			return &object.Integer{Value: li.Value * ri.Value}
		case "/":
			if ri.Value == 0 {
				return &object.Error{Kind: "RuntimeError", Message: "division by zero"}
			}
			return &object.Integer{Value: li.Value / ri.Value}
		case "greater":
			return nativeBool(li.Value > ri.Value)
		case "greater_equal":
			return nativeBool(li.Value >= ri.Value)
		case "less":
			return nativeBool(li.Value < ri.Value)
		case "less_equal":
			return nativeBool(li.Value <= ri.Value)
		}
		return &object.Error{Kind: "RuntimeError", Message: "unknown operator: " + op}
	}

	lf, rf := asFloat(left), asFloat(right)
	switch op {
	case "+":
		return &object.Float{Value: lf + rf}
	case "-":
		return &object.Float{Value: lf - rf}
	case "*":
		return &object.Float{Value: lf * rf}
	case "/":
		if rf == 0 {
			return &object.Error{Kind: "RuntimeError", Message: "division by zero"}
		}
		return &object.Float{Value: lf / rf}
	case "greater":
		return nativeBool(lf > rf)
	case "greater_equal":
		return nativeBool(lf >= rf)
	case "less":
		return nativeBool(lf < rf)
	case "less_equal":
		return nativeBool(lf <= rf)
	}
	return &object.Error{Kind: "RuntimeError", Message: "unknown operator: " + op}
}

// evalStringOp handles the remaining string operators once `+` and
// equals/not_equals have already been peeled off by evalBinaryOp.
func evalStringOp(op string, l, r *object.String) object.Object {
	switch op {
	case "greater":
		return nativeBool(l.Value > r.Value)
	case "greater_equal":
		return nativeBool(l.Value >= r.Value)
	case "less":
		return nativeBool(l.Value < r.Value)
	case "less_equal":
		return nativeBool(l.Value <= r.Value)
	}
	return &object.Error{Kind: "TypeError", Message: "unsupported operator for strings: " + op}
}

// evalBooleanOp handles boolean operators other than equals/not_equals,
// which evalBinaryOp resolves structurally before dispatch reaches here.
func evalBooleanOp(op string, l, r *object.Boolean) object.Object {
	return &object.Error{Kind: "TypeError", Message: "unsupported operator for booleans: " + op}
}

// evalNullComparison handles any operator paired with a Null operand other
// than equals/not_equals, which evalBinaryOp already resolves structurally.
func evalNullComparison(op string, left, right object.Object) object.Object {
	return &object.Error{Kind: "TypeError", Message: "unsupported operator against none: " + op}
}

func nativeBool(b bool) *object.Boolean {
	if b {
		return TRUE
	}
	return FALSE
}

// isTruthy implements the language's truthiness rule: only Null and false
// are falsy. 0, "", and empty collections are all truthy.
func isTruthy(obj object.Object) bool {
	switch v := obj.(type) {
	case *object.Null:
		return false
	case *object.Boolean:
		return v.Value
	default:
		return true
	}
}
