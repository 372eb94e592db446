// Package jsondoc decodes JSON and YAML documents into value types that keep
// object members in their input order, which encoding/json's maps discard.
package jsondoc

// Value is a single decoded document value.
type Value interface {
	isValue()
}

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered collection of members.
type Object []Member

// Array is an ordered sequence of values.
type Array []Value

// String is a JSON string value.
type String string

// Number keeps the literal text of a JSON number as written.
type Number string

// Bool is a JSON boolean value.
type Bool bool

// Null is the JSON null value.
type Null struct{}

func (Object) isValue() {}
func (Array) isValue()  {}
func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Null) isValue()   {}

// Find returns the value of the first member with the given key.
func (o Object) Find(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// IsScalar reports whether v is neither an object nor an array.
func IsScalar(v Value) bool {
	switch v.(type) {
	case Object, Array:
		return false
	}
	return true
}
