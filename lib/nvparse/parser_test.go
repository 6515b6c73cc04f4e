// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

package nvparse

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// object builds an Object from alternating name/value pairs.
func object(pairs ...any) *Object {
	o := NewObject()
	for i := 0; i < len(pairs); i += 2 {
		o.Set(pairs[i].(string), pairs[i+1])
	}
	return o
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"null", nil},
		{"true", true},
		{"false", false},
		{"42", int64(42)},
		{"0", int64(0)},
		{"007", int64(7)},
		{"42.", 42.0},
		{".1", 0.1},
		{"4.25", 4.25},
		{"abc", "abc"},
		{"10.11.12.13", "10.11.12.13"},
		// Signs and exponents are not part of the number grammar.
		{"-42", "-42"},
		{"+1", "+1"},
		{"1e3", "1e3"},
		// Out-of-range integers degrade to float64 rather than failing.
		{"99999999999999999999", 1e20},
	}
	parser := New()
	for _, test := range tests {
		got, err := parser.Parse(test.input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", test.input, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("Parse(%q) = %#v (%T), want %#v (%T)", test.input, got, got, test.want, test.want)
		}
	}
}

func TestParseQuotedStrings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// Quoting always yields a string, bypassing coercion.
		{`"true"`, "true"},
		{`"false"`, "false"},
		{`"null"`, "null"},
		{`"42"`, "42"},
		{`""`, ""},
		{`"ab c"`, "ab c"},
		// Structural and grammar characters lose significance inside quotes.
		{`"[a,b]={c}"`, "[a,b]={c}"},
		// Escape sequences.
		{`"a\nb"`, "a\nb"},
		{`"a\rb"`, "a\rb"},
		{`"a\tb"`, "a\tb"},
		{`"a\bb"`, "a\bb"},
		{`"a\"b"`, `a"b`},
		{`"a\\b"`, `a\b`},
		// Unicode escapes: exactly four hex digits.
		{`"aAb"`, "aAb"},
		{`"grün"`, "grün"},
		{`"aéb"`, "aéb"},
		// Non-ASCII passes through unescaped.
		{`"grün"`, "grün"},
	}
	parser := New()
	for _, test := range tests {
		got, err := parser.Parse(test.input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("Parse(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestParseArrays(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"[]", []any{}},
		{"[42]", []any{int64(42)}},
		{"[abc,42]", []any{"abc", int64(42)}},
		{"[null,true,.5]", []any{nil, true, 0.5}},
		{"[[1,2],[3]]", []any{[]any{int64(1), int64(2)}, []any{int64(3)}}},
		{"[{x=1},2]", []any{object("x", int64(1)), int64(2)}},
	}
	parser := New()
	for _, test := range tests {
		got, err := parser.Parse(test.input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", test.input, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("Parse(%q) = %#v, want %#v", test.input, got, test.want)
		}
	}
}

func TestParseObjects(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"{}", object()},
		{"{x=42}", object("x", int64(42))},
		{"{interface-name=abc,port=42}", object("interface-name", "abc", "port", int64(42))},
		{"{a_b=1,C2=2}", object("a_b", int64(1), "C2", int64(2))},
		{`{title="ab\tc",host-addrs=[10.11.12.13,null]}`,
			object("title", "ab\tc", "host-addrs", []any{"10.11.12.13", nil})},
		{"{outer={inner=[1]}}", object("outer", object("inner", []any{int64(1)}))},
	}
	parser := New()
	for _, test := range tests {
		got, err := parser.Parse(test.input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", test.input, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("Parse(%q) = %#v, want %#v", test.input, got, test.want)
		}
	}
}

func TestObjectMemberOrder(t *testing.T) {
	parser := New()
	got, err := parser.Parse("{zz=1,aa=2,mm=3}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	obj, ok := got.(*Object)
	if !ok {
		t.Fatalf("Parse returned %T, want *Object", got)
	}
	wantNames := []string{"zz", "aa", "mm"}
	if !reflect.DeepEqual(obj.Names(), wantNames) {
		t.Errorf("Names() = %v, want %v (insertion order)", obj.Names(), wantNames)
	}
}

func TestObjectDuplicateNameLastWins(t *testing.T) {
	parser := New()
	got, err := parser.Parse("{x=1,x=2}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	obj := got.(*Object)
	if obj.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", obj.Len())
	}
	value, _ := obj.Get("x")
	if value != int64(2) {
		t.Errorf("Get(x) = %v, want 2", value)
	}
}

func TestParseSpaceTolerance(t *testing.T) {
	// A single space around a token is tolerated. This matches the
	// original grammar's behavior and is deliberately not tightened.
	tests := []struct {
		input string
		want  any
	}{
		{" abc", "abc"},
		{"abc ", "abc"},
		{" 42 ", int64(42)},
		{"[1, 2]", []any{int64(1), int64(2)}},
		{"[ 1 , 2 ]", []any{int64(1), int64(2)}},
		{"{x = 42}", object("x", int64(42))},
		{"{ x=42 }", object("x", int64(42))},
	}
	parser := New()
	for _, test := range tests {
		got, err := parser.Parse(test.input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", test.input, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("Parse(%q) = %#v, want %#v", test.input, got, test.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		// pos is the expected error position, found the expected token
		// ("" for end of text).
		pos   int
		found string
	}{
		{"", 0, ""},
		{"a b", 2, "b"},          // interior space in a bare token
		{"a  ", 2, " "},          // second trailing space
		{"  a", 1, " "},          // second leading space
		{"[42,]", 4, "]"},        // trailing separator
		{"[,42]", 1, ","},        // leading separator
		{"[42,,43]", 4, ","},     // doubled separator
		{"[42", 3, ""},           // missing closing bracket
		{"[42]]", 4, "]"},        // extra closing bracket
		{"{x=42", 5, ""},         // missing closing brace
		{"{x=1=2}", 4, "="},      // duplicate assignment in one member
		{"{-a=42}", 1, "-"},      // name starting with hyphen
		{"{1a=42}", 1, "1"},      // name starting with digit
		{"{_a=42}", 1, "_"},      // name starting with underscore
		{"{x 42}", 3, "4"},       // missing assignment
		{"{x=}", 3, "}"},         // missing value
		{`"abc`, 4, ""},          // unterminated quoted string
		{`"a\`, 2, "\\"},         // backslash at end of string
		{`"a\xb"`, 2, "\\"},      // unsupported escape
		{`"a\u12"`, 2, "\\"},     // truncated unicode escape
		{`"a\uzzzz"`, 2, "\\"},   // malformed unicode escape
		{"42 43", 3, "4"},        // trailing text after value
		{"[1,2] x", 6, "x"},      // trailing text after array
	}
	parser := New()
	for _, test := range tests {
		_, err := parser.Parse(test.input)
		if err == nil {
			t.Errorf("Parse(%q): expected error, got none", test.input)
			continue
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("Parse(%q): error is %T, want *ParseError", test.input, err)
			continue
		}
		if parseErr.Pos != test.pos {
			t.Errorf("Parse(%q): error at position %d, want %d (error: %v)",
				test.input, parseErr.Pos, test.pos, err)
		}
		if parseErr.Found != test.found {
			t.Errorf("Parse(%q): found %q, want %q (error: %v)",
				test.input, parseErr.Found, test.found, err)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	parser := New()

	_, err := parser.Parse("[42")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "found end of text") {
		t.Errorf("error %q should mention end of text", err.Error())
	}

	_, err = parser.Parse("[42,]")
	if err == nil {
		t.Fatal("expected error")
	}
	message := err.Error()
	if !strings.Contains(message, "']'") || !strings.Contains(message, "position 4") {
		t.Errorf("error %q should name the found token and position", message)
	}
}

func TestNestingConsistency(t *testing.T) {
	// parse("[" + a + "," + b + "]") equals [parse(a), parse(b)] for
	// independently valid value texts a and b.
	parts := []string{"null", "true", "42", ".5", "abc", `"x,y"`, "[1,2]", "{n=1}"}
	parser := New()
	for _, a := range parts {
		for _, b := range parts {
			wantA, err := parser.Parse(a)
			if err != nil {
				t.Fatalf("Parse(%q): %v", a, err)
			}
			wantB, err := parser.Parse(b)
			if err != nil {
				t.Fatalf("Parse(%q): %v", b, err)
			}
			combined := "[" + a + "," + b + "]"
			got, err := parser.Parse(combined)
			if err != nil {
				t.Errorf("Parse(%q): unexpected error: %v", combined, err)
				continue
			}
			want := []any{wantA, wantB}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Parse(%q) = %#v, want %#v", combined, got, want)
			}
		}
	}
}

func TestCustomSeparator(t *testing.T) {
	parser, err := NewWithChars('"', ';', '=')
	if err != nil {
		t.Fatalf("NewWithChars: %v", err)
	}

	got, err := parser.Parse("[42;43]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(got, []any{int64(42), int64(43)}) {
		t.Errorf("Parse([42;43]) = %#v, want [42 43]", got)
	}

	// The default separator is now an ordinary token character.
	got, err = parser.Parse("[a,b;c]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(got, []any{"a,b", "c"}) {
		t.Errorf("Parse([a,b;c]) = %#v, want [a,b c]", got)
	}
}

func TestCustomAssignment(t *testing.T) {
	parser, err := NewWithChars('"', ',', ':')
	if err != nil {
		t.Fatalf("NewWithChars: %v", err)
	}
	got, err := parser.Parse("{x:42}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(got, object("x", int64(42))) {
		t.Errorf("Parse({x:42}) = %#v, want {x: 42}", got)
	}
}

func TestCustomQuote(t *testing.T) {
	parser, err := NewWithChars('\'', ',', '=')
	if err != nil {
		t.Fatalf("NewWithChars: %v", err)
	}
	got, err := parser.Parse("['a b','true']")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(got, []any{"a b", "true"}) {
		t.Errorf("Parse = %#v, want [a b, true]", got)
	}
}

func TestSpaceSeparator(t *testing.T) {
	// With separator ' ', a space splits tokens instead of being
	// trimmed as leniency.
	parser, err := NewWithChars('"', ' ', '=')
	if err != nil {
		t.Fatalf("NewWithChars: %v", err)
	}
	got, err := parser.Parse("[42 43]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(got, []any{int64(42), int64(43)}) {
		t.Errorf("Parse([42 43]) = %#v, want [42 43]", got)
	}
}

func TestNewWithCharsRejectsInvalid(t *testing.T) {
	invalid := []struct {
		quote, separator, assignment byte
	}{
		{'[', ',', '='},
		{'"', ']', '='},
		{'"', ',', '{'},
		{'"', '}', '='},
		{'\\', ',', '='},
		{'"', '"', '='},  // quote == separator
		{'"', ',', ','},  // separator == assignment
		{'=', ',', '='},  // quote == assignment
	}
	for _, test := range invalid {
		if _, err := NewWithChars(test.quote, test.separator, test.assignment); err == nil {
			t.Errorf("NewWithChars(%q, %q, %q): expected error, got none",
				test.quote, test.separator, test.assignment)
		}
	}
}

func TestParserAccessors(t *testing.T) {
	parser, err := NewWithChars('\'', ';', ':')
	if err != nil {
		t.Fatalf("NewWithChars: %v", err)
	}
	if parser.Quote() != '\'' || parser.Separator() != ';' || parser.Assignment() != ':' {
		t.Errorf("accessors = %q %q %q, want ' ; :",
			parser.Quote(), parser.Separator(), parser.Assignment())
	}
}

func TestDeepNesting(t *testing.T) {
	// Nesting is bounded only by recursion depth.
	const depth = 200
	input := strings.Repeat("[", depth) + "1" + strings.Repeat("]", depth)
	parser := New()
	got, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for i := 0; i < depth; i++ {
		array, ok := got.([]any)
		if !ok || len(array) != 1 {
			t.Fatalf("level %d: got %#v, want single-element array", i, got)
		}
		got = array[0]
	}
	if got != int64(1) {
		t.Errorf("innermost value = %v, want 1", got)
	}
}
