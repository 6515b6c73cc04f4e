// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

package nvparse

// Object is the value of an object expression: a mapping from member
// name to value that preserves the order in which members appeared in
// the input. Member names are unique; assigning an existing name
// replaces the value but keeps the original position.
//
// Values held by an Object are the same Go types produced by
// [Parser.Parse]: nil, bool, int64, float64, string, []any, *Object.
type Object struct {
	names  []string
	values map[string]any
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set assigns value to name. A new name is appended to the member
// order; an existing name keeps its position.
func (o *Object) Set(name string, value any) {
	if _, ok := o.values[name]; !ok {
		o.names = append(o.names, name)
	}
	o.values[name] = value
}

// Get returns the value assigned to name, and whether it is present.
func (o *Object) Get(name string) (any, bool) {
	value, ok := o.values[name]
	return value, ok
}

// Names returns the member names in input order. The returned slice is
// a copy.
func (o *Object) Names() []string {
	names := make([]string, len(o.names))
	copy(names, o.names)
	return names
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.names)
}

// ToMap returns the members as a plain map. Member order is lost; use
// [Object.Names] when order matters.
func (o *Object) ToMap() map[string]any {
	out := make(map[string]any, len(o.names))
	for name, value := range o.values {
		out[name] = value
	}
	return out
}
