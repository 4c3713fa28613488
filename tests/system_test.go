// ==============================================================================================
// FILE: system_test.go
// ==============================================================================================
// PURPOSE: System-level integration tests.
//          These tests verify that all components (Lexer -> Parser -> Evaluator) work together
//          to execute valid Convo programs end to end.
// ==============================================================================================

package tests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/convo-lang/convo/evaluator"
	"github.com/convo-lang/convo/lexer"
	"github.com/convo-lang/convo/object"
	"github.com/convo-lang/convo/parser"
)

func runCode(t *testing.T, input string) object.Object {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "parser errors: %v", p.Errors())

	env := object.NewEnvironment()
	return evaluator.Eval(program, env)
}

func TestSystem_FibonacciRecursion(t *testing.T) {
	input := `Define fib with (x):
    If x less than 2 then:
        Return x
    Return fib(x - 1) + fib(x - 2)

fib(10)
`
	result := runCode(t, input)
	require.Equal(t, int64(55), result.(*object.Integer).Value)
}

func TestSystem_HeavyLoopAccumulates(t *testing.T) {
	input := `Let sum be 0
Let counter be 0
While counter less than 1000 do:
    Let sum be sum + 1
    Let counter be counter + 1
sum
`
	result := runCode(t, input)
	require.Equal(t, int64(1000), result.(*object.Integer).Value)
}

func TestSystem_ClassesAndTryCatchCombined(t *testing.T) {
	input := `Class Stack:
    Let this.items be []

    Define push with (value):
        append(this.items, value)

    Define pop with ():
        If length(this.items) equals 0 then:
            Throw "stack is empty"
        Return this.items[length(this.items) - 1]

Let s be New Stack
s.push(1)
s.push(2)

Let caught be "no error"
Try:
    s.pop()
    Let empty be New Stack
    empty.pop()
Catch err:
    Let caught be err
caught
`
	result := runCode(t, input)
	require.Equal(t, "stack is empty", result.(*object.String).Value)
}

func TestSystem_ModuleImportIsUsableAcrossStatements(t *testing.T) {
	input := `Import strings
Import math

Let shouted be upper("convo")
Let magnitude be abs(0 - 7)
Let combined be shouted + to_text(magnitude)
combined
`
	result := runCode(t, input)
	require.Equal(t, "CONVO7", result.(*object.String).Value)
}

func TestSystem_UncaughtThrowSurfacesAsThrownValue(t *testing.T) {
	input := `Throw "boom"
`
	result := runCode(t, input)
	thrown, ok := result.(*object.Thrown)
	require.True(t, ok)
	require.Equal(t, "boom", thrown.Value.(*object.String).Value)
}

func TestSystem_DivisionByZeroIsRuntimeError(t *testing.T) {
	result := runCode(t, "10 / 0\n")
	err, ok := result.(*object.Error)
	require.True(t, ok)
	require.Equal(t, "RuntimeError", err.Kind)
}
