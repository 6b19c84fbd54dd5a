// FILE: dash-website/console/inspect/classify.go
package inspect

import (
	"math/big"
	"reflect"
	"regexp"
)

// Kind is the closed set of rendering categories. Classification assigns
// exactly one Kind per value.
type Kind int

const (
	KindNullish Kind = iota
	KindString
	KindNumber
	KindBool
	KindBigInt
	KindFunction
	KindError
	KindRegexp
	KindSet
	KindMap
	KindWeakSet
	KindWeakMap
	KindArray
	KindObject
	KindOther
)

// String returns the category name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNullish:
		return "nullish"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindBigInt:
		return "bigint"
	case KindFunction:
		return "function"
	case KindError:
		return "error"
	case KindRegexp:
		return "regexp"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	case KindWeakSet:
		return "weakset"
	case KindWeakMap:
		return "weakmap"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "other"
	}
}

// Classify places a value into exactly one rendering category. The check order
// is fixed and significant: primitive tags first, then the built-in-like shapes
// (weak collections, sets, maps, errors, regular expressions, functions), and
// the generic object/array fallback last, so a value that looks like a built-in
// is never structurally dumped. Classification reads type information only and
// never invokes methods on the value.
func Classify(v any) Kind {
	if v == nil {
		return KindNullish
	}

	switch v.(type) {
	case string:
		return KindString
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return KindNumber
	case bool:
		return KindBool
	case *big.Int:
		return KindBigInt
	case BigIntValue:
		return KindBigInt
	case WeakSetValue:
		return KindWeakSet
	case WeakMapValue:
		return KindWeakMap
	case SetValue:
		return KindSet
	case MapValue:
		return KindMap
	case *regexp.Regexp:
		return KindRegexp
	case error, StackTracer:
		return KindError
	case Callable:
		return KindFunction
	case ArrayObject:
		return KindArray
	case Object:
		return KindObject
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return KindNullish
		}
		if rv.Kind() == reflect.Pointer && rv.Elem().Kind() == reflect.Struct {
			return KindObject
		}
	case reflect.Func:
		return KindFunction
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		return KindObject
	case reflect.Struct:
		return KindObject
	}

	return KindOther
}
