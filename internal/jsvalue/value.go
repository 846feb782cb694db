// Package jsvalue models JavaScript literal trees with insertion-ordered
// object members. encoding/json cannot express what model output needs:
// an explicit undefined sentinel, verbatim expression text (Ext.Direct
// method references, converter functions), unquoted identifier keys, and a
// configurable quote character. The tree here is deliberately tiny and the
// writer is deterministic, so rendering the same tree twice is byte
// identical.
package jsvalue

// Value is one node of a literal tree.
type Value interface {
	value()
}

// String renders as a quoted string literal.
type String string

// Number renders with the shortest decimal representation.
type Number float64

// Bool renders as a bare true/false literal.
type Bool bool

// Raw renders verbatim. Used for method references, regular expressions,
// converter function bodies and the undefined sentinel.
type Raw string

// Undefined is the explicit undefined sentinel. Emitting it differs
// observably from omitting the key: the framework skips its own default.
var Undefined = Raw("undefined")

func (String) value() {}
func (Number) value() {}
func (Bool) value()   {}
func (Raw) value()    {}

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is an insertion-ordered collection of members.
type Object struct {
	members []Member
}

func NewObject() *Object {
	return &Object{}
}

// Put appends a member. Keys are expected to be unique; callers own that
// invariant since every key set here is fixed at compile time.
func (o *Object) Put(key string, value Value) *Object {
	o.members = append(o.members, Member{Key: key, Value: value})
	return o
}

// PutString appends a string member only when the value is non-empty.
func (o *Object) PutString(key, value string) *Object {
	if value != "" {
		o.Put(key, String(value))
	}
	return o
}

// Len reports the number of members.
func (o *Object) Len() int {
	return len(o.members)
}

// Members returns the members in insertion order.
func (o *Object) Members() []Member {
	return o.members
}

func (*Object) value() {}

// Array is an ordered sequence of values.
type Array []Value

func (Array) value() {}
