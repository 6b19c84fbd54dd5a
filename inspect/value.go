// FILE: dash-website/console/inspect/value.go
package inspect

// Values produced by the sandboxed interpreter cross into the engine behind the
// capability interfaces below. Every read is fallible and none of them may run
// user code as a side effect of being called; in particular a getter-backed
// property is reported, never invoked. Plain Go data (strings, numbers, maps,
// slices, structs) needs no interface and is read through reflection.

// Property describes one own property of an Object without touching its value
// when it is accessor-backed.
type Property struct {
	// Getter reports an accessor-backed property. Value is meaningless and the
	// engine renders a fixed marker instead.
	Getter bool

	// Enumerable mirrors the descriptor flag; non-enumerable properties render
	// in a hidden style.
	Enumerable bool

	Value any
}

// Object is a property carrier of unknown provenance.
type Object interface {
	// PropertyNames returns the own property names, including non-enumerable
	// ones, in enumeration order.
	PropertyNames() ([]string, error)

	// Property returns the descriptor for one own property.
	Property(name string) (Property, error)
}

// ArrayObject is an Object that renders with array brackets. Index-shaped keys
// are rendered positionally, remaining keys as key/value pairs.
type ArrayObject interface {
	Object

	// ArrayLength reports the value's claimed length. The result is untrusted
	// and re-inspected before being embedded in the prefix.
	ArrayLength() (any, error)
}

// Constructed exposes a constructor name for the object type label. A forged
// name is neutralized by inspecting it as a nested value.
type Constructed interface {
	ConstructorName() string
}

// SetValue is an enumerable set-shaped collection.
type SetValue interface {
	// Size reports the claimed element count, untrusted.
	Size() (any, error)
	Elements() ([]any, error)
}

// MapValue is an enumerable map-shaped collection with arbitrary keys.
type MapValue interface {
	Size() (any, error)
	Entries() ([][2]any, error)
}

// WeakSetValue marks a set whose elements are unreachable by design.
type WeakSetValue interface {
	WeakSet()
}

// WeakMapValue marks a map whose entries are unreachable by design.
type WeakMapValue interface {
	WeakMap()
}

// Callable describes a function value. FuncSource is read here rather than
// through any stringer the value itself carries.
type Callable interface {
	// FuncName returns the function's name, empty for anonymous functions.
	FuncName() string

	// FuncSource returns the function's source form.
	FuncSource() string
}

// StackTracer is an error-like value carrying a stack trace. Error internals
// are never walked as a generic object; the trace (or the message) is all that
// renders.
type StackTracer interface {
	Stack() string
}

// BigIntValue renders with a trailing "n" to distinguish it from a number.
type BigIntValue interface {
	BigInt() string
}
