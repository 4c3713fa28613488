// ==============================================================================================
// FILE: object/builtins.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: The process-wide built-in function registry. Populated once at startup and read-only
//          during evaluation; the evaluator falls back here whenever a name isn't bound in the
//          current environment chain.
// ==============================================================================================

package object

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// Builtins is the flat list of native functions available to every Convo
// program, plus whatever a module manifest entry (see modules/registry.yaml)
// re-exposes under Import.
var Builtins = []struct {
	Name    string
	Builtin *Builtin
}{
	// ---------------------------------------------------------------- arithmetic / utility
	{"length", &Builtin{Name: "length", Fn: builtinLength}},
	{"to_text", &Builtin{Name: "to_text", Fn: builtinToText}},
	{"to_number", &Builtin{Name: "to_number", Fn: builtinToNumber}},
	{"range", &Builtin{Name: "range", Fn: builtinRange}},
	{"round", &Builtin{Name: "round", Fn: builtinRound}},
	{"abs", &Builtin{Name: "abs", Fn: builtinAbs}},
	{"random_int", &Builtin{Name: "random_int", Fn: builtinRandomInt}},

	// ---------------------------------------------------------------- string
	{"lower", &Builtin{Name: "lower", Fn: builtinLower}},
	{"upper", &Builtin{Name: "upper", Fn: builtinUpper}},
	{"contains", &Builtin{Name: "contains", Fn: builtinContains}},
	{"split", &Builtin{Name: "split", Fn: builtinSplit}},
	{"join", &Builtin{Name: "join", Fn: builtinJoin}},

	// ---------------------------------------------------------------- list / dict
	{"append", &Builtin{Name: "append", Fn: builtinAppend}},
	{"remove", &Builtin{Name: "remove", Fn: builtinRemove}},
	{"get", &Builtin{Name: "get", Fn: builtinGet}},
	{"keys", &Builtin{Name: "keys", Fn: builtinKeys}},
	{"values", &Builtin{Name: "values", Fn: builtinValues}},

	// ---------------------------------------------------------------- I/O
	{"read_file", &Builtin{Name: "read_file", Fn: builtinReadFile}},
	{"write_file", &Builtin{Name: "write_file", Fn: builtinWriteFile}},
	{"append_file", &Builtin{Name: "append_file", Fn: builtinAppendFile}},
	{"file_exists", &Builtin{Name: "file_exists", Fn: builtinFileExists}},
	{"file_size", &Builtin{Name: "file_size", Fn: builtinFileSize}},
	{"delete_file", &Builtin{Name: "delete_file", Fn: builtinDeleteFile}},
	{"read_lines", &Builtin{Name: "read_lines", Fn: builtinReadLines}},
	{"read_json", &Builtin{Name: "read_json", Fn: builtinReadJSON}},
	{"write_json", &Builtin{Name: "write_json", Fn: builtinWriteJSON}},

	// ---------------------------------------------------------------- environment
	{"get_env", &Builtin{Name: "get_env", Fn: builtinGetEnv}},
	{"set_env", &Builtin{Name: "set_env", Fn: builtinSetEnv}},
	{"has_env", &Builtin{Name: "has_env", Fn: builtinHasEnv}},
	{"list_env", &Builtin{Name: "list_env", Fn: builtinListEnv}},
}

// GetBuiltin looks a native function up by name.
func GetBuiltin(name string) (*Builtin, bool) {
	for _, def := range Builtins {
		if def.Name == name {
			return def.Builtin, true
		}
	}
	return nil, false
}

func newBuiltinError(format string, a ...interface{}) *Error {
	return &Error{Kind: "RuntimeError", Message: fmt.Sprintf(format, a...)}
}

func arityError(name string, want, got int) *Error {
	return &Error{Kind: "ArityError", Message: fmt.Sprintf("%s expects %d argument(s), got %d", name, want, got)}
}

func typeError(name string, arg Object) *Error {
	return &Error{Kind: "TypeError", Message: fmt.Sprintf("%s does not support %s", name, arg.Type())}
}

// ---------------------------------------------------------------------------------------------
// arithmetic / utility
// ---------------------------------------------------------------------------------------------

func builtinLength(args ...Object) Object {
	if len(args) != 1 {
		return arityError("length", 1, len(args))
	}
	switch v := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len([]rune(v.Value)))}
	case *List:
		return &Integer{Value: int64(len(v.Elements))}
	case *Dict:
		return &Integer{Value: int64(v.Len())}
	default:
		return typeError("length", args[0])
	}
}

func builtinToText(args ...Object) Object {
	if len(args) != 1 {
		return arityError("to_text", 1, len(args))
	}
	return &String{Value: args[0].Inspect()}
}

func builtinToNumber(args ...Object) Object {
	if len(args) != 1 {
		return arityError("to_number", 1, len(args))
	}
	s, ok := args[0].(*String)
	if !ok {
		return typeError("to_number", args[0])
	}
	if i, err := strconv.ParseInt(strings.TrimSpace(s.Value), 10, 64); err == nil {
		return &Integer{Value: i}
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s.Value), 64)
	if err != nil {
		return newBuiltinError("to_number: %q is not a valid number", s.Value)
	}
	return &Float{Value: f}
}

func builtinRange(args ...Object) Object {
	if len(args) < 1 || len(args) > 2 {
		return newBuiltinError("range expects 1 or 2 arguments, got %d", len(args))
	}
	var start, end int64
	if len(args) == 1 {
		n, ok := args[0].(*Integer)
		if !ok {
			return typeError("range", args[0])
		}
		start, end = 0, n.Value
	} else {
		lo, ok1 := args[0].(*Integer)
		hi, ok2 := args[1].(*Integer)
		if !ok1 || !ok2 {
			return newBuiltinError("range requires integer arguments")
		}
		start, end = lo.Value, hi.Value
	}
	elements := make([]Object, 0, max64(end-start, 0))
	for i := start; i < end; i++ {
		elements = append(elements, &Integer{Value: i})
	}
	return &List{Elements: elements}
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func builtinRound(args ...Object) Object {
	if len(args) != 1 {
		return arityError("round", 1, len(args))
	}
	switch v := args[0].(type) {
	case *Integer:
		return v
	case *Float:
		r := v.Value
		if r >= 0 {
			return &Integer{Value: int64(r + 0.5)}
		}
		return &Integer{Value: int64(r - 0.5)}
	default:
		return typeError("round", args[0])
	}
}

func builtinAbs(args ...Object) Object {
	if len(args) != 1 {
		return arityError("abs", 1, len(args))
	}
	switch v := args[0].(type) {
	case *Integer:
		if v.Value < 0 {
			return &Integer{Value: -v.Value}
		}
		return v
	case *Float:
		if v.Value < 0 {
			return &Float{Value: -v.Value}
		}
		return v
	default:
		return typeError("abs", args[0])
	}
}

func builtinRandomInt(args ...Object) Object {
	if len(args) != 2 {
		return arityError("random_int", 2, len(args))
	}
	lo, ok1 := args[0].(*Integer)
	hi, ok2 := args[1].(*Integer)
	if !ok1 || !ok2 {
		return newBuiltinError("random_int requires integer arguments")
	}
	if hi.Value < lo.Value {
		return newBuiltinError("random_int: upper bound below lower bound")
	}
	return &Integer{Value: lo.Value + rand.Int63n(hi.Value-lo.Value+1)}
}

// ---------------------------------------------------------------------------------------------
// string
// ---------------------------------------------------------------------------------------------

func builtinLower(args ...Object) Object {
	if len(args) != 1 {
		return arityError("lower", 1, len(args))
	}
	s, ok := args[0].(*String)
	if !ok {
		return typeError("lower", args[0])
	}
	return &String{Value: strings.ToLower(s.Value)}
}

func builtinUpper(args ...Object) Object {
	if len(args) != 1 {
		return arityError("upper", 1, len(args))
	}
	s, ok := args[0].(*String)
	if !ok {
		return typeError("upper", args[0])
	}
	return &String{Value: strings.ToUpper(s.Value)}
}

func builtinContains(args ...Object) Object {
	if len(args) != 2 {
		return arityError("contains", 2, len(args))
	}
	switch coll := args[0].(type) {
	case *String:
		needle, ok := args[1].(*String)
		if !ok {
			return typeError("contains", args[1])
		}
		return &Boolean{Value: strings.Contains(coll.Value, needle.Value)}
	case *List:
		for _, el := range coll.Elements {
			if DeepEqual(el, args[1]) {
				return &Boolean{Value: true}
			}
		}
		return &Boolean{Value: false}
	case *Dict:
		key, ok := args[1].(Hashable)
		if !ok {
			return typeError("contains", args[1])
		}
		_, found := coll.Get(key)
		return &Boolean{Value: found}
	default:
		return typeError("contains", args[0])
	}
}

func builtinSplit(args ...Object) Object {
	if len(args) != 2 {
		return arityError("split", 2, len(args))
	}
	s, ok1 := args[0].(*String)
	sep, ok2 := args[1].(*String)
	if !ok1 || !ok2 {
		return newBuiltinError("split requires (string, separator)")
	}
	parts := strings.Split(s.Value, sep.Value)
	elements := make([]Object, len(parts))
	for i, p := range parts {
		elements[i] = &String{Value: p}
	}
	return &List{Elements: elements}
}

func builtinJoin(args ...Object) Object {
	if len(args) != 2 {
		return arityError("join", 2, len(args))
	}
	list, ok1 := args[0].(*List)
	sep, ok2 := args[1].(*String)
	if !ok1 || !ok2 {
		return newBuiltinError("join requires (list, separator)")
	}
	parts := make([]string, len(list.Elements))
	for i, el := range list.Elements {
		if s, ok := el.(*String); ok {
			parts[i] = s.Value
		} else {
			parts[i] = el.Inspect()
		}
	}
	return &String{Value: strings.Join(parts, sep.Value)}
}

// ---------------------------------------------------------------------------------------------
// list / dict
// ---------------------------------------------------------------------------------------------

func builtinAppend(args ...Object) Object {
	if len(args) != 2 {
		return arityError("append", 2, len(args))
	}
	list, ok := args[0].(*List)
	if !ok {
		return typeError("append", args[0])
	}
	next := make([]Object, len(list.Elements)+1)
	copy(next, list.Elements)
	next[len(list.Elements)] = args[1]
	return &List{Elements: next}
}

func builtinRemove(args ...Object) Object {
	if len(args) != 2 {
		return arityError("remove", 2, len(args))
	}
	switch coll := args[0].(type) {
	case *List:
		idx, ok := args[1].(*Integer)
		if !ok {
			return typeError("remove", args[1])
		}
		i := int(idx.Value)
		if i < 0 {
			i += len(coll.Elements)
		}
		if i < 0 || i >= len(coll.Elements) {
			return &Error{Kind: "IndexError", Message: fmt.Sprintf("remove: index %d out of range", int(idx.Value))}
		}
		next := make([]Object, 0, len(coll.Elements)-1)
		next = append(next, coll.Elements[:i]...)
		next = append(next, coll.Elements[i+1:]...)
		return &List{Elements: next}
	case *Dict:
		key, ok := args[1].(Hashable)
		if !ok {
			return typeError("remove", args[1])
		}
		next := NewDict()
		for _, pair := range coll.Pairs() {
			if pair.Key.(Hashable).HashKey() == key.HashKey() {
				continue
			}
			next.Set(pair.Key.(Hashable), pair.Key, pair.Value)
		}
		return next
	default:
		return typeError("remove", args[0])
	}
}

func builtinGet(args ...Object) Object {
	if len(args) != 2 && len(args) != 3 {
		return newBuiltinError("get expects 2 or 3 arguments, got %d", len(args))
	}
	var fallback Object = &Null{}
	if len(args) == 3 {
		fallback = args[2]
	}
	switch coll := args[0].(type) {
	case *List:
		idx, ok := args[1].(*Integer)
		if !ok {
			return typeError("get", args[1])
		}
		i := int(idx.Value)
		if i < 0 {
			i += len(coll.Elements)
		}
		if i < 0 || i >= len(coll.Elements) {
			return fallback
		}
		return coll.Elements[i]
	case *Dict:
		key, ok := args[1].(Hashable)
		if !ok {
			return typeError("get", args[1])
		}
		if v, found := coll.Get(key); found {
			return v
		}
		return fallback
	default:
		return typeError("get", args[0])
	}
}

func builtinKeys(args ...Object) Object {
	if len(args) != 1 {
		return arityError("keys", 1, len(args))
	}
	switch coll := args[0].(type) {
	case *List:
		elements := make([]Object, len(coll.Elements))
		for i := range coll.Elements {
			elements[i] = &Integer{Value: int64(i)}
		}
		return &List{Elements: elements}
	case *Dict:
		return &List{Elements: coll.Keys()}
	default:
		return typeError("keys", args[0])
	}
}

func builtinValues(args ...Object) Object {
	if len(args) != 1 {
		return arityError("values", 1, len(args))
	}
	switch coll := args[0].(type) {
	case *List:
		return &List{Elements: append([]Object{}, coll.Elements...)}
	case *Dict:
		pairs := coll.Pairs()
		elements := make([]Object, len(pairs))
		for i, p := range pairs {
			elements[i] = p.Value
		}
		return &List{Elements: elements}
	default:
		return typeError("values", args[0])
	}
}

// ---------------------------------------------------------------------------------------------
// I/O
// ---------------------------------------------------------------------------------------------

func builtinReadFile(args ...Object) Object {
	if len(args) != 1 {
		return arityError("read_file", 1, len(args))
	}
	path, ok := args[0].(*String)
	if !ok {
		return typeError("read_file", args[0])
	}
	data, err := os.ReadFile(path.Value)
	if err != nil {
		return &Error{Kind: "RuntimeError", Message: fmt.Sprintf("read_file: %s", err)}
	}
	return &String{Value: string(data)}
}

func builtinWriteFile(args ...Object) Object {
	if len(args) != 2 {
		return arityError("write_file", 2, len(args))
	}
	path, ok1 := args[0].(*String)
	content, ok2 := args[1].(*String)
	if !ok1 || !ok2 {
		return newBuiltinError("write_file requires (path, content)")
	}
	if err := os.WriteFile(path.Value, []byte(content.Value), 0o644); err != nil {
		return &Error{Kind: "RuntimeError", Message: fmt.Sprintf("write_file: %s", err)}
	}
	return &Null{}
}

func builtinAppendFile(args ...Object) Object {
	if len(args) != 2 {
		return arityError("append_file", 2, len(args))
	}
	path, ok1 := args[0].(*String)
	content, ok2 := args[1].(*String)
	if !ok1 || !ok2 {
		return newBuiltinError("append_file requires (path, content)")
	}
	f, err := os.OpenFile(path.Value, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &Error{Kind: "RuntimeError", Message: fmt.Sprintf("append_file: %s", err)}
	}
	defer f.Close()
	if _, err := f.WriteString(content.Value); err != nil {
		return &Error{Kind: "RuntimeError", Message: fmt.Sprintf("append_file: %s", err)}
	}
	return &Null{}
}

func builtinFileExists(args ...Object) Object {
	if len(args) != 1 {
		return arityError("file_exists", 1, len(args))
	}
	path, ok := args[0].(*String)
	if !ok {
		return typeError("file_exists", args[0])
	}
	_, err := os.Stat(path.Value)
	return &Boolean{Value: err == nil}
}

func builtinFileSize(args ...Object) Object {
	if len(args) != 1 {
		return arityError("file_size", 1, len(args))
	}
	path, ok := args[0].(*String)
	if !ok {
		return typeError("file_size", args[0])
	}
	info, err := os.Stat(path.Value)
	if err != nil {
		return &Error{Kind: "RuntimeError", Message: fmt.Sprintf("file_size: %s", err)}
	}
	return &Integer{Value: info.Size()}
}

func builtinDeleteFile(args ...Object) Object {
	if len(args) != 1 {
		return arityError("delete_file", 1, len(args))
	}
	path, ok := args[0].(*String)
	if !ok {
		return typeError("delete_file", args[0])
	}
	if err := os.Remove(path.Value); err != nil {
		return &Error{Kind: "RuntimeError", Message: fmt.Sprintf("delete_file: %s", err)}
	}
	return &Null{}
}

func builtinReadLines(args ...Object) Object {
	if len(args) != 1 {
		return arityError("read_lines", 1, len(args))
	}
	path, ok := args[0].(*String)
	if !ok {
		return typeError("read_lines", args[0])
	}
	data, err := os.ReadFile(path.Value)
	if err != nil {
		return &Error{Kind: "RuntimeError", Message: fmt.Sprintf("read_lines: %s", err)}
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return &List{}
	}
	lines := strings.Split(text, "\n")
	elements := make([]Object, len(lines))
	for i, l := range lines {
		elements[i] = &String{Value: strings.TrimSuffix(l, "\r")}
	}
	return &List{Elements: elements}
}

func builtinReadJSON(args ...Object) Object {
	if len(args) != 1 {
		return arityError("read_json", 1, len(args))
	}
	path, ok := args[0].(*String)
	if !ok {
		return typeError("read_json", args[0])
	}
	data, err := os.ReadFile(path.Value)
	if err != nil {
		return &Error{Kind: "RuntimeError", Message: fmt.Sprintf("read_json: %s", err)}
	}
	var decoded interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return &Error{Kind: "RuntimeError", Message: fmt.Sprintf("read_json: %s", err)}
	}
	return fromJSON(decoded)
}

func builtinWriteJSON(args ...Object) Object {
	if len(args) != 2 {
		return arityError("write_json", 2, len(args))
	}
	path, ok := args[0].(*String)
	if !ok {
		return typeError("write_json", args[0])
	}
	encoded, err := toJSON(args[1])
	if err != nil {
		return &Error{Kind: "RuntimeError", Message: fmt.Sprintf("write_json: %s", err)}
	}
	data, err := json.MarshalIndent(encoded, "", "  ")
	if err != nil {
		return &Error{Kind: "RuntimeError", Message: fmt.Sprintf("write_json: %s", err)}
	}
	if err := os.WriteFile(path.Value, data, 0o644); err != nil {
		return &Error{Kind: "RuntimeError", Message: fmt.Sprintf("write_json: %s", err)}
	}
	return &Null{}
}

// fromJSON converts a decoded encoding/json value into the dynamically typed
// Convo object it represents.
func fromJSON(v interface{}) Object {
	switch val := v.(type) {
	case nil:
		return &Null{}
	case bool:
		return &Boolean{Value: val}
	case float64:
		if val == float64(int64(val)) {
			return &Integer{Value: int64(val)}
		}
		return &Float{Value: val}
	case string:
		return &String{Value: val}
	case []interface{}:
		elements := make([]Object, len(val))
		for i, el := range val {
			elements[i] = fromJSON(el)
		}
		return &List{Elements: elements}
	case map[string]interface{}:
		d := NewDict()
		for k, v := range val {
			key := &String{Value: k}
			d.Set(key, key, fromJSON(v))
		}
		return d
	default:
		return &Null{}
	}
}

// toJSON converts a Convo object into a plain Go value encoding/json can
// marshal, failing on unsupported runtime types (functions, classes).
func toJSON(o Object) (interface{}, error) {
	switch val := o.(type) {
	case *Null:
		return nil, nil
	case *Boolean:
		return val.Value, nil
	case *Integer:
		return val.Value, nil
	case *Float:
		return val.Value, nil
	case *String:
		return val.Value, nil
	case *List:
		out := make([]interface{}, len(val.Elements))
		for i, el := range val.Elements {
			v, err := toJSON(el)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case *Dict:
		out := make(map[string]interface{})
		for _, pair := range val.Pairs() {
			v, err := toJSON(pair.Value)
			if err != nil {
				return nil, err
			}
			out[pair.Key.Inspect()] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("value of type %s cannot be converted to JSON", o.Type())
	}
}

// ---------------------------------------------------------------------------------------------
// environment variables
// ---------------------------------------------------------------------------------------------

func builtinGetEnv(args ...Object) Object {
	if len(args) != 1 {
		return arityError("get_env", 1, len(args))
	}
	name, ok := args[0].(*String)
	if !ok {
		return typeError("get_env", args[0])
	}
	val, found := os.LookupEnv(name.Value)
	if !found {
		return &Null{}
	}
	return &String{Value: val}
}

func builtinSetEnv(args ...Object) Object {
	if len(args) != 2 {
		return arityError("set_env", 2, len(args))
	}
	name, ok1 := args[0].(*String)
	val, ok2 := args[1].(*String)
	if !ok1 || !ok2 {
		return newBuiltinError("set_env requires (name, value)")
	}
	if err := os.Setenv(name.Value, val.Value); err != nil {
		return &Error{Kind: "RuntimeError", Message: fmt.Sprintf("set_env: %s", err)}
	}
	return &Null{}
}

func builtinHasEnv(args ...Object) Object {
	if len(args) != 1 {
		return arityError("has_env", 1, len(args))
	}
	name, ok := args[0].(*String)
	if !ok {
		return typeError("has_env", args[0])
	}
	_, found := os.LookupEnv(name.Value)
	return &Boolean{Value: found}
}

func builtinListEnv(args ...Object) Object {
	if len(args) != 0 {
		return arityError("list_env", 0, len(args))
	}
	d := NewDict()
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := &String{Value: parts[0]}
		val := ""
		if len(parts) == 2 {
			val = parts[1]
		}
		d.Set(key, key, &String{Value: val})
	}
	return d
}
