// ==============================================================================================
// FILE: object/object.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: The runtime type system: every value a Convo program can produce or hold, plus the
//          wrapper types (ReturnValue, Error, Thrown, StopSignal) the evaluator uses to propagate control
//          flow signals back up through the AST walk.
// ==============================================================================================

package object

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/convo-lang/convo/ast"
)

// ObjectType identifies the runtime type of a value.
type ObjectType string

const (
	INTEGER_OBJ = "INTEGER"
	FLOAT_OBJ   = "FLOAT"
	BOOLEAN_OBJ = "BOOLEAN"
	STRING_OBJ  = "STRING"
	NULL_OBJ    = "NULL"

	RETURN_VALUE_OBJ = "RETURN_VALUE" // bubbles a Return up through block/loop/function evaluation
	ERROR_OBJ        = "ERROR"        // a language-level error value (SyntaxError, NameError, ...)
	THROWN_OBJ       = "THROWN"       // wraps a value raised by Throw while it bubbles to a Catch
	STOP_SIGNAL_OBJ  = "STOP_SIGNAL"  // bubbles a Stop up to the nearest enclosing loop

	FUNCTION_OBJ = "FUNCTION"
	LIST_OBJ     = "LIST"
	DICT_OBJ     = "DICT"

	CLASS_OBJ    = "CLASS"
	INSTANCE_OBJ = "INSTANCE"

	BUILTIN_OBJ = "BUILTIN"
)

// Object is the interface every runtime value implements.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// ==============================================================================================
// PRIMITIVES
// ==============================================================================================

type Integer struct{ Value int64 }

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }

type Float struct{ Value float64 }

func (f *Float) Type() ObjectType { return FLOAT_OBJ }
func (f *Float) Inspect() string  { return formatFloat(f.Value) }

// formatFloat renders a float so whole-valued floats still read as floats
// (2.0 -> "2.0") while never picking up a spurious decimal point on values
// that already have one (2.5 -> "2.5").
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

type Boolean struct{ Value bool }

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return fmt.Sprintf("%t", b.Value) }

type String struct{ Value string }

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

type Null struct{}

func (n *Null) Type() ObjectType { return NULL_OBJ }
func (n *Null) Inspect() string  { return "none" }

// ==============================================================================================
// CONTROL-FLOW WRAPPERS
// ==============================================================================================

// ReturnValue wraps the value of a Return statement so Eval can unwind the
// current block/loop chain back to the enclosing function call.
type ReturnValue struct{ Value Object }

func (rv *ReturnValue) Type() ObjectType { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string  { return rv.Value.Inspect() }

// Error is a language-level error value: NameError, TypeError, IndexError,
// ArityError, RuntimeError or SyntaxError. It is data, not a Go error - it
// flows through Eval like any other Object and is what a Catch block binds.
type Error struct {
	Kind    string // "NameError", "TypeError", "IndexError", "ArityError", "RuntimeError", "SyntaxError"
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return e.Kind + ": " + e.Message }

// Thrown wraps a value raised with Throw while it propagates toward the
// nearest enclosing Catch.
type Thrown struct{ Value Object }

func (t *Thrown) Type() ObjectType { return THROWN_OBJ }
func (t *Thrown) Inspect() string  { return "thrown: " + t.Value.Inspect() }

// StopSignal bubbles a Stop statement up to the nearest enclosing loop,
// where it is absorbed; one reaching Program's top level simply ends
// evaluation early, the same way a loop absorbs it at loop scope.
type StopSignal struct{}

func (s *StopSignal) Type() ObjectType { return STOP_SIGNAL_OBJ }
func (s *StopSignal) Inspect() string  { return "stop" }

// ==============================================================================================
// FUNCTIONS
// ==============================================================================================

// Function is a user-defined Convo function or method, closing over the
// environment in which it was defined.
type Function struct {
	Name       string // empty for anonymous use, set for Define/method lookup diagnostics
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	var params []string
	for _, p := range f.Parameters {
		params = append(params, p.Value)
	}
	return "Define " + f.Name + " with " + strings.Join(params, ", ")
}

// ==============================================================================================
// LIST
// ==============================================================================================

type List struct{ Elements []Object }

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	var parts []string
	for _, el := range l.Elements {
		parts = append(parts, el.Inspect())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ==============================================================================================
// DICT (insertion-order preserving)
// ==============================================================================================

// HashKey identifies a Dict key by type and a 64-bit hash of its value.
type HashKey struct {
	Type  ObjectType
	Value uint64
}

// Hashable is implemented by any Object usable as a Dict key.
type Hashable interface {
	HashKey() HashKey
}

func (i *Integer) HashKey() HashKey { return HashKey{Type: INTEGER_OBJ, Value: uint64(i.Value)} }

func (b *Boolean) HashKey() HashKey {
	var v uint64
	if b.Value {
		v = 1
	}
	return HashKey{Type: BOOLEAN_OBJ, Value: v}
}

func (s *String) HashKey() HashKey {
	h := fnv.New64a()
	h.Write([]byte(s.Value))
	return HashKey{Type: STRING_OBJ, Value: h.Sum64()}
}

// dictEntry is one key/value slot; Dict keeps these in insertion order in
// addition to the HashKey index used for O(1) lookup/update.
type dictEntry struct {
	Key   Object
	Value Object
}

// Dict is Convo's associative collection. Unlike the hash map it descends
// from, it remembers insertion order so iteration (For each, Say, string
// conversion) is deterministic and matches what a user typed.
type Dict struct {
	order []HashKey
	index map[HashKey]int // HashKey -> position in order/entries
	entry map[HashKey]*dictEntry
}

// NewDict returns an empty, ready-to-use Dict.
func NewDict() *Dict {
	return &Dict{index: make(map[HashKey]int), entry: make(map[HashKey]*dictEntry)}
}

func (d *Dict) Type() ObjectType { return DICT_OBJ }

func (d *Dict) Inspect() string {
	var parts []string
	for _, k := range d.order {
		e := d.entry[k]
		parts = append(parts, fmt.Sprintf("%s: %s", e.Key.Inspect(), e.Value.Inspect()))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Set inserts or updates key -> value. An existing key keeps its original
// position; a new key is appended at the end.
func (d *Dict) Set(key Hashable, keyObj, value Object) {
	hk := key.HashKey()
	if _, ok := d.entry[hk]; ok {
		d.entry[hk].Value = value
		return
	}
	d.order = append(d.order, hk)
	d.index[hk] = len(d.order) - 1
	d.entry[hk] = &dictEntry{Key: keyObj, Value: value}
}

// Get looks up a key, reporting whether it was present.
func (d *Dict) Get(key Hashable) (Object, bool) {
	e, ok := d.entry[key.HashKey()]
	if !ok {
		return nil, false
	}
	return e.Value, true
}

// Delete removes a key if present, preserving the relative order of what remains.
func (d *Dict) Delete(key Hashable) {
	hk := key.HashKey()
	if _, ok := d.entry[hk]; !ok {
		return
	}
	delete(d.entry, hk)
	delete(d.index, hk)
	for i, k := range d.order {
		if k == hk {
			d.order = append(d.order[:i], d.order[i+1:]...)
			for j := i; j < len(d.order); j++ {
				d.index[d.order[j]] = j
			}
			break
		}
	}
}

// Len reports the number of entries.
func (d *Dict) Len() int { return len(d.order) }

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []Object {
	keys := make([]Object, 0, len(d.order))
	for _, k := range d.order {
		keys = append(keys, d.entry[k].Key)
	}
	return keys
}

// Pairs returns key/value pairs in insertion order.
func (d *Dict) Pairs() []struct{ Key, Value Object } {
	pairs := make([]struct{ Key, Value Object }, 0, len(d.order))
	for _, k := range d.order {
		e := d.entry[k]
		pairs = append(pairs, struct{ Key, Value Object }{Key: e.Key, Value: e.Value})
	}
	return pairs
}

// ==============================================================================================
// CLASSES & INSTANCES
// ==============================================================================================

// FieldDefault is one `Let this.field be expr` line from a class body. The
// expression is re-evaluated for every new Instance so mutable defaults
// (lists, dicts) never alias across instances.
type FieldDefault struct {
	Name  string
	Value ast.Expression
}

// Class is the runtime value produced by a ClassDefStatement: an ordered set
// of field defaults plus a method table, one of which may be "new".
type Class struct {
	Name          string
	FieldDefaults []FieldDefault
	Methods       map[string]*Function
	Env           *Environment // environment the Class was defined in (for method closures)
}

func (c *Class) Type() ObjectType { return CLASS_OBJ }
func (c *Class) Inspect() string  { return "Class " + c.Name }

// Method looks up a method by name, returning ok=false if undefined.
func (c *Class) Method(name string) (*Function, bool) {
	fn, ok := c.Methods[name]
	return fn, ok
}

// Instance is a concrete object created with New.
type Instance struct {
	Class  *Class
	Fields map[string]Object
}

func (inst *Instance) Type() ObjectType { return INSTANCE_OBJ }
func (inst *Instance) Inspect() string {
	var parts []string
	for _, fd := range inst.Class.FieldDefaults {
		parts = append(parts, fmt.Sprintf("%s: %s", fd.Name, inst.Fields[fd.Name].Inspect()))
	}
	return inst.Class.Name + "{" + strings.Join(parts, ", ") + "}"
}

// ==============================================================================================
// BUILTINS
// ==============================================================================================

// Builtin wraps a host-implemented function exposed to Convo programs. It
// returns an *Error (not a Go error) on misuse so it composes with Eval's
// normal error propagation.
type Builtin struct {
	Name string
	Fn   func(args ...Object) Object
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "builtin " + b.Name }

// DeepEqual implements Convo's structural equality: a deep value comparison
// across every runtime type, used by the `equals`/`not_equals` operators and
// by the `contains` builtin. An Integer and a Float compare by numeric value;
// other operands of differing types compare unequal rather than raising an
// error.
func DeepEqual(a, b Object) bool {
	switch av := a.(type) {
	case *Integer:
		switch bv := b.(type) {
		case *Integer:
			return av.Value == bv.Value
		case *Float:
			return float64(av.Value) == bv.Value
		}
		return false
	case *Float:
		switch bv := b.(type) {
		case *Integer:
			return av.Value == float64(bv.Value)
		case *Float:
			return av.Value == bv.Value
		}
		return false
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !DeepEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Dict:
		bv, ok := b.(*Dict)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, pair := range av.Pairs() {
			key, ok := pair.Key.(Hashable)
			if !ok {
				return false
			}
			other, found := bv.Get(key)
			if !found || !DeepEqual(pair.Value, other) {
				return false
			}
		}
		return true
	case *Instance:
		bv, ok := b.(*Instance)
		if !ok || av.Class != bv.Class || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for name, val := range av.Fields {
			other, found := bv.Fields[name]
			if !found || !DeepEqual(val, other) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
