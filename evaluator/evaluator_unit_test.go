// ==============================================================================================
// FILE: evaluator/evaluator_unit_test.go
// PURPOSE: Exercises individual statement and expression evaluators in isolation.
// ==============================================================================================

package evaluator

import (
	"testing"

	"github.com/convo-lang/convo/lexer"
	"github.com/convo-lang/convo/object"
	"github.com/convo-lang/convo/parser"
	"github.com/stretchr/testify/require"
)

func testEval(t *testing.T, input string) object.Object {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "parser errors: %v", p.Errors())
	env := object.NewEnvironment()
	return Eval(program, env)
}

func TestEvalIntegerArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5 + 5", 10},
		{"10 - 4", 6},
		{"3 * 4", 12},
		{"7 / 2", 3}, // truncating integer division
		{"-5 + 10", 5},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		require.Equal(t, tt.expected, result.(*object.Integer).Value)
	}
}

func TestEvalFloatPromotion(t *testing.T) {
	result := testEval(t, "7 / 2.0")
	require.Equal(t, 3.5, result.(*object.Float).Value)
}

func TestEvalDivisionByZero(t *testing.T) {
	result := testEval(t, "1 / 0")
	err, ok := result.(*object.Error)
	require.True(t, ok)
	require.Equal(t, "RuntimeError", err.Kind)
}

func TestEvalStringConcatenation(t *testing.T) {
	result := testEval(t, `"hello " + "world"`)
	require.Equal(t, "hello world", result.(*object.String).Value)
}

func TestEvalStringConcatenationMixedTypes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"count=" + 7`, "count=7"},
		{`7 + "=count"`, "7=count"},
		{"Let n be 3\nLet m be 4\n\"sum=\" + (n + m)", "sum=7"},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		str, ok := result.(*object.String)
		require.True(t, ok, "expected *object.String for %q, got %T", tt.input, result)
		require.Equal(t, tt.expected, str.Value)
	}
}

func TestEvalListNegativeIndex(t *testing.T) {
	result := testEval(t, `[10, 20, 30][-1]`)
	require.Equal(t, int64(30), result.(*object.Integer).Value)

	result = testEval(t, `[10, 20, 30][-3]`)
	require.Equal(t, int64(10), result.(*object.Integer).Value)

	result = testEval(t, `[10, 20, 30][-4]`)
	err, ok := result.(*object.Error)
	require.True(t, ok)
	require.Equal(t, "IndexError", err.Kind)
}

func TestEvalStructuralEquality(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"[1, 2, 3] equals [1, 2, 3]", true},
		{"[1, 2, 3] equals [1, 2, 4]", false},
		{"[1, 2] equals [1, 2, 3]", false},
		{`5 equals "5"`, false},
		{"[1, [2, 3]] equals [1, [2, 3]]", true},
		{"[1, 2, 3] not equals [1, 2, 4]", true},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		b, ok := result.(*object.Boolean)
		require.True(t, ok, "expected *object.Boolean for %q, got %T (%v)", tt.input, result, result)
		require.Equal(t, tt.expected, b.Value, "input: %s", tt.input)
	}
}

func TestEvalBooleanComparisons(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1 less than 2", true},
		{"2 greater than 1", true},
		{"2 equals 2", true},
		{"2 not equals 3", true},
		{"true and false", false},
		{"true or false", true},
		{"not true", false},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		require.Equal(t, tt.expected, result.(*object.Boolean).Value)
	}
}

func TestEvalAndShortCircuitsRight(t *testing.T) {
	input := `Define boom with ():
    Throw "should not run"

false and boom()
`
	result := testEval(t, input)
	require.Equal(t, object.BOOLEAN_OBJ, result.Type())
	require.False(t, result.(*object.Boolean).Value)
}

func TestEvalOrShortCircuitsRight(t *testing.T) {
	input := `Define boom with ():
    Throw "should not run"

true or boom()
`
	result := testEval(t, input)
	require.True(t, result.(*object.Boolean).Value)
}

func TestEvalLetAndIdentifier(t *testing.T) {
	result := testEval(t, "Let x be 5\nx\n")
	require.Equal(t, int64(5), result.(*object.Integer).Value)
}

func TestEvalIfElse(t *testing.T) {
	result := testEval(t, "If 1 less than 2 then:\n    Let x be \"yes\"\nElse:\n    Let x be \"no\"\nx\n")
	require.Equal(t, "yes", result.(*object.String).Value)
}

func TestEvalWhileLoopMutatesOuterCounter(t *testing.T) {
	input := `Let i be 0
While i less than 5 do:
    Let i be i + 1
i
`
	result := testEval(t, input)
	require.Equal(t, int64(5), result.(*object.Integer).Value)
}

func TestEvalForEachSnapshotsAtEntry(t *testing.T) {
	input := `Let items be [1, 2, 3]
Let total be 0
For each n in items do:
    Let total be total + n
    Let items be []
total
`
	result := testEval(t, input)
	require.Equal(t, int64(6), result.(*object.Integer).Value)
}

func TestEvalStopBreaksLoop(t *testing.T) {
	input := `Let i be 0
While true do:
    Let i be i + 1
    If i equals 3 then:
        Stop
i
`
	result := testEval(t, input)
	require.Equal(t, int64(3), result.(*object.Integer).Value)
}

func TestEvalFunctionCallAndReturn(t *testing.T) {
	input := `Define add with (a, b):
    Return a + b
add(2, 3)
`
	result := testEval(t, input)
	require.Equal(t, int64(5), result.(*object.Integer).Value)
}

func TestEvalArityErrorOnWrongArgCount(t *testing.T) {
	input := `Define add with (a, b):
    Return a + b
add(2)
`
	result := testEval(t, input)
	err, ok := result.(*object.Error)
	require.True(t, ok)
	require.Equal(t, "ArityError", err.Kind)
}

func TestEvalTryCatchCatchesThrow(t *testing.T) {
	input := `Try:
    Throw "boom"
Catch err:
    Let message be err
message
`
	result := testEval(t, input)
	require.Equal(t, "boom", result.(*object.String).Value)
}

func TestEvalTryCatchCatchesRuntimeError(t *testing.T) {
	input := `Try:
    Let x be 1 / 0
Catch err:
    Let caught be err
caught
`
	result := testEval(t, input)
	errVal, ok := result.(*object.Error)
	require.True(t, ok)
	require.Equal(t, "RuntimeError", errVal.Kind)
}

func TestEvalListIndexing(t *testing.T) {
	result := testEval(t, "Let xs be [10, 20, 30]\nxs[1]\n")
	require.Equal(t, int64(20), result.(*object.Integer).Value)
}

func TestEvalListIndexOutOfRangeIsIndexError(t *testing.T) {
	result := testEval(t, "Let xs be [1]\nxs[5]\n")
	err, ok := result.(*object.Error)
	require.True(t, ok)
	require.Equal(t, "IndexError", err.Kind)
}

func TestEvalDictIndexing(t *testing.T) {
	result := testEval(t, `Let d be {"a": 1}` + "\n" + `d["a"]` + "\n")
	require.Equal(t, int64(1), result.(*object.Integer).Value)
}

func TestEvalClassNewAndFieldAccess(t *testing.T) {
	input := `Class Point:
    Let this.x be 0
    Let this.y be 0

Let p be New Point
p.x
`
	result := testEval(t, input)
	require.Equal(t, int64(0), result.(*object.Integer).Value)
}

func TestEvalClassMethodCallMutatesInstanceField(t *testing.T) {
	input := `Class Counter:
    Let this.value be 0

    Define increment with ():
        Let this.value be this.value + 1

Let c be New Counter
c.increment()
c.increment()
c.value
`
	result := testEval(t, input)
	require.Equal(t, int64(2), result.(*object.Integer).Value)
}

func TestEvalClassConstructorRunsOnNew(t *testing.T) {
	input := `Class Account:
    Let this.balance be 0

    Define new with (opening):
        Let this.balance be opening

Let a be New Account with 100
a.balance
`
	result := testEval(t, input)
	require.Equal(t, int64(100), result.(*object.Integer).Value)
}

func TestEvalFieldDefaultsDoNotAliasAcrossInstances(t *testing.T) {
	input := `Class Bag:
    Let this.items be []

Let a be New Bag
Let b be New Bag
Let a be a
append(a.items, 1)
b.items
`
	// append returns a new list and does not mutate a.items in place, so
	// this mainly documents that each instance starts with its own [].
	result := testEval(t, input)
	list, ok := result.(*object.List)
	require.True(t, ok)
	require.Empty(t, list.Elements)
}

func TestEvalImportInstallsModuleBuiltinsGlobally(t *testing.T) {
	input := `Import strings
upper("hi")
`
	result := testEval(t, input)
	require.Equal(t, "HI", result.(*object.String).Value)
}

func TestEvalImportUnknownModuleIsRuntimeError(t *testing.T) {
	result := testEval(t, "Import not_a_real_module\n")
	err, ok := result.(*object.Error)
	require.True(t, ok)
	require.Equal(t, "RuntimeError", err.Kind)
}

func TestEvalUndefinedIdentifierIsNameError(t *testing.T) {
	result := testEval(t, "missing_variable\n")
	err, ok := result.(*object.Error)
	require.True(t, ok)
	require.Equal(t, "NameError", err.Kind)
}
