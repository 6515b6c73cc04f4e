// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

package nvparse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Default grammar characters. All three can be overridden per parser
// instance via [NewWithChars].
const (
	DefaultQuote      byte = '"'
	DefaultSeparator  byte = ','
	DefaultAssignment byte = '='
)

// structuralChars have fixed grammar meaning and cannot be chosen as
// quoting, separator, or assignment characters. The backslash is the
// (non-configurable) escape character inside quoted strings.
const structuralChars = `[]{}\`

// Parser holds the grammar configuration for parsing name-value
// strings. A Parser carries no mutable state: Parse may be called
// concurrently, and distinct parsers with different configurations do
// not interact.
type Parser struct {
	quote      byte
	separator  byte
	assignment byte
}

// New returns a parser with the default characters: '"' for quoting,
// ',' as item separator, '=' as name/value assignment.
func New() *Parser {
	return &Parser{
		quote:      DefaultQuote,
		separator:  DefaultSeparator,
		assignment: DefaultAssignment,
	}
}

// NewWithChars returns a parser with the given quoting, separator, and
// assignment characters. The three characters must be distinct and
// must not be one of the structural characters '[', ']', '{', '}', or
// the escape character '\'.
func NewWithChars(quote, separator, assignment byte) (*Parser, error) {
	for _, c := range []byte{quote, separator, assignment} {
		if strings.IndexByte(structuralChars, c) >= 0 {
			return nil, fmt.Errorf("nvparse: %q cannot be used as a grammar character", c)
		}
	}
	if quote == separator || quote == assignment || separator == assignment {
		return nil, fmt.Errorf("nvparse: quoting %q, separator %q, and assignment %q characters must be distinct",
			quote, separator, assignment)
	}
	return &Parser{quote: quote, separator: separator, assignment: assignment}, nil
}

// Quote returns the configured quoting character.
func (p *Parser) Quote() byte { return p.quote }

// Separator returns the configured item separator character.
func (p *Parser) Separator() byte { return p.separator }

// Assignment returns the configured assignment character.
func (p *Parser) Assignment() byte { return p.assignment }

// ParseError describes a grammar violation. Pos is the byte offset in
// Input where parsing failed; Found is the token found there, or empty
// when the input ended prematurely.
type ParseError struct {
	Input    string
	Pos      int
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	found := "end of text"
	if e.Found != "" {
		found = fmt.Sprintf("'%s'", e.Found)
	}
	return fmt.Sprintf("cannot parse value %q: expected %s, found %s at position %d",
		e.Input, e.Expected, found, e.Pos)
}

// Parse parses a complete name-value string and returns the value it
// describes, as nil, bool, int64, float64, string, []any, or [*Object].
// The entire input must be consumed; trailing text is an error. All
// failures are reported as [*ParseError].
func (p *Parser) Parse(input string) (any, error) {
	s := &scanner{parser: p, input: input}
	value, err := s.parseValue()
	if err != nil {
		return nil, err
	}
	if s.pos != len(s.input) {
		return nil, s.fail("end of text")
	}
	return value, nil
}

// scanner is the per-call parse state: a cursor into the input.
type scanner struct {
	parser *Parser
	input  string
	pos    int
}

// fail builds a ParseError at the current position.
func (s *scanner) fail(expected string) error {
	found := ""
	if s.pos < len(s.input) {
		r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
		found = string(r)
	}
	return &ParseError{Input: s.input, Pos: s.pos, Expected: expected, Found: found}
}

// skipSpace consumes at most one space character at the cursor. A
// single space is tolerated around tokens (this leniency is inherited
// from the original grammar and deliberately kept); a second space is
// left in place and becomes a parse error at the caller. When the
// space character itself is a configured grammar character (e.g.
// separator ' '), it keeps its grammar meaning and is never skipped.
func (s *scanner) skipSpace() {
	p := s.parser
	if p.quote == ' ' || p.separator == ' ' || p.assignment == ' ' {
		return
	}
	if s.pos < len(s.input) && s.input[s.pos] == ' ' {
		s.pos++
	}
}

// parseValue parses one value of any form. It consumes at most one
// space before and one space after the value.
func (s *scanner) parseValue() (any, error) {
	s.skipSpace()
	if s.pos >= len(s.input) {
		return nil, s.fail("a value")
	}

	var value any
	var err error
	switch c := s.input[s.pos]; {
	case c == '[':
		value, err = s.parseArray()
	case c == '{':
		value, err = s.parseObject()
	case c == s.parser.quote:
		value, err = s.parseQuotedString()
	default:
		value, err = s.parseBareValue()
	}
	if err != nil {
		return nil, err
	}

	s.skipSpace()
	return value, nil
}

// parseArray parses '[' (value (SEP value)*)? ']' with the cursor on
// the opening bracket.
func (s *scanner) parseArray() (any, error) {
	s.pos++ // '['
	values := []any{}

	s.skipSpace()
	if s.pos < len(s.input) && s.input[s.pos] == ']' {
		s.pos++
		return values, nil
	}

	for {
		value, err := s.parseValue()
		if err != nil {
			return nil, err
		}
		values = append(values, value)

		if s.pos >= len(s.input) {
			return nil, s.fail(fmt.Sprintf("'%c' or ']'", s.parser.separator))
		}
		switch s.input[s.pos] {
		case s.parser.separator:
			s.pos++
		case ']':
			s.pos++
			return values, nil
		default:
			return nil, s.fail(fmt.Sprintf("'%c' or ']'", s.parser.separator))
		}
	}
}

// parseObject parses '{' (name ASSIGN value (SEP name ASSIGN value)*)?
// '}' with the cursor on the opening brace.
func (s *scanner) parseObject() (any, error) {
	s.pos++ // '{'
	object := NewObject()

	s.skipSpace()
	if s.pos < len(s.input) && s.input[s.pos] == '}' {
		s.pos++
		return object, nil
	}

	for {
		name, err := s.parseName()
		if err != nil {
			return nil, err
		}

		if s.pos >= len(s.input) || s.input[s.pos] != s.parser.assignment {
			return nil, s.fail(fmt.Sprintf("'%c'", s.parser.assignment))
		}
		s.pos++

		value, err := s.parseValue()
		if err != nil {
			return nil, err
		}
		object.Set(name, value)

		if s.pos >= len(s.input) {
			return nil, s.fail(fmt.Sprintf("'%c' or '}'", s.parser.separator))
		}
		switch s.input[s.pos] {
		case s.parser.separator:
			s.pos++
		case '}':
			s.pos++
			return object, nil
		default:
			return nil, s.fail(fmt.Sprintf("'%c' or '}'", s.parser.separator))
		}
	}
}

// parseName parses an object member name: a letter followed by
// letters, digits, '-', or '_'.
func (s *scanner) parseName() (string, error) {
	s.skipSpace()
	if s.pos >= len(s.input) || !isLetter(s.input[s.pos]) {
		return "", s.fail("a name")
	}
	start := s.pos
	s.pos++
	for s.pos < len(s.input) && isNameChar(s.input[s.pos]) {
		s.pos++
	}
	name := s.input[start:s.pos]
	s.skipSpace()
	return name, nil
}

// parseQuotedString parses a quoted string with the cursor on the
// opening quote. Escape sequences: \b \t \n \r, the escaped quoting
// character, the escaped backslash, and \uNNNN with exactly four hex
// digits. Any other backslash use is an error at the backslash.
func (s *scanner) parseQuotedString() (any, error) {
	quote := s.parser.quote
	s.pos++ // opening quote

	var builder strings.Builder
	for s.pos < len(s.input) {
		c := s.input[s.pos]

		if c == quote {
			s.pos++
			return builder.String(), nil
		}

		if c == '\\' {
			escapeStart := s.pos
			s.pos++
			if s.pos >= len(s.input) {
				s.pos = escapeStart
				return nil, s.fail("an escape sequence")
			}
			switch e := s.input[s.pos]; {
			case e == 'b':
				builder.WriteByte('\b')
				s.pos++
			case e == 't':
				builder.WriteByte('\t')
				s.pos++
			case e == 'n':
				builder.WriteByte('\n')
				s.pos++
			case e == 'r':
				builder.WriteByte('\r')
				s.pos++
			case e == quote:
				builder.WriteByte(quote)
				s.pos++
			case e == '\\':
				builder.WriteByte('\\')
				s.pos++
			case e == 'u':
				s.pos++
				if s.pos+4 > len(s.input) {
					s.pos = escapeStart
					return nil, s.fail("a \\uNNNN escape sequence")
				}
				code, err := strconv.ParseUint(s.input[s.pos:s.pos+4], 16, 32)
				if err != nil {
					s.pos = escapeStart
					return nil, s.fail("a \\uNNNN escape sequence")
				}
				builder.WriteRune(rune(code))
				s.pos += 4
			default:
				s.pos = escapeStart
				return nil, s.fail("an escape sequence")
			}
			continue
		}

		_, size := utf8.DecodeRuneInString(s.input[s.pos:])
		builder.WriteString(s.input[s.pos : s.pos+size])
		s.pos += size
	}

	return nil, s.fail(fmt.Sprintf("'%c'", quote))
}

// parseBareValue parses an unquoted token and coerces it: the literals
// null, true, and false; then integer; then float (including the
// leading-dot and trailing-dot forms); otherwise the literal text.
func (s *scanner) parseBareValue() (any, error) {
	start := s.pos
	for s.pos < len(s.input) && !s.isForbiddenInBareToken(s.input[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return nil, s.fail("a value")
	}
	return coerceBareToken(s.input[start:s.pos]), nil
}

// isForbiddenInBareToken reports whether c terminates an unquoted
// token. Bare tokens cannot contain spaces, structural characters, the
// escape character, or any of the configured grammar characters.
func (s *scanner) isForbiddenInBareToken(c byte) bool {
	if c == ' ' || strings.IndexByte(structuralChars, c) >= 0 {
		return true
	}
	return c == s.parser.quote || c == s.parser.separator || c == s.parser.assignment
}

// coerceBareToken maps an unquoted token to its typed value.
func coerceBareToken(text string) any {
	switch text {
	case "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if isIntegerToken(text) {
		if value, err := strconv.ParseInt(text, 10, 64); err == nil {
			return value
		}
		// Out of int64 range: fall through to the float form, which
		// accepts plain digit strings.
	}
	if isFloatToken(text) || isIntegerToken(text) {
		if value, err := strconv.ParseFloat(text, 64); err == nil {
			return value
		}
	}
	return text
}

// isIntegerToken reports whether text is one or more decimal digits.
// Signs and exponents are not part of the number grammar; a token like
// "-42" stays a string.
func isIntegerToken(text string) bool {
	if len(text) == 0 {
		return false
	}
	for i := 0; i < len(text); i++ {
		if !isDigit(text[i]) {
			return false
		}
	}
	return true
}

// isFloatToken reports whether text has one of the float forms:
// digits '.' digits?, or '.' digits.
func isFloatToken(text string) bool {
	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		return false
	}
	integer, fraction := text[:dot], text[dot+1:]
	if integer == "" && fraction == "" {
		return false
	}
	if integer != "" && !isIntegerToken(integer) {
		return false
	}
	if fraction != "" && !isIntegerToken(fraction) {
		return false
	}
	// The leading-dot form requires a fraction; the trailing-dot form
	// requires an integer part. Both were checked above, so the only
	// remaining requirement is at least one digit overall.
	return integer != "" || fraction != ""
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-' || c == '_'
}
