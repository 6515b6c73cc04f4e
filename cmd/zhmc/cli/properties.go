// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/pflag"

	"github.com/zhmcclient/zhmc-go/lib/nvparse"
)

// propertyNamePattern matches valid HMC property names on the left
// side of a name=value property argument.
var propertyNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// PropertySyntax holds the shared flags that configure the name=value
// property mini-language used by commands accepting --property
// arguments. The three configurable characters let property values
// contain the default characters literally, for example a description
// with commas parsed with --separator-char ';'.
//
// PropertySyntax implements [FlagBinder]; embed it in a params struct
// to pick up the flags:
//
//	type updateParams struct {
//	    cli.PropertySyntax
//	    Properties []string `flag:"property,p" desc:"property in name=value syntax (repeatable)"`
//	}
type PropertySyntax struct {
	QuoteChar      string
	SeparatorChar  string
	AssignmentChar string
}

// AddFlags registers --quote-char, --separator-char, and
// --assignment-char on the given flag set.
func (p *PropertySyntax) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&p.QuoteChar, "quote-char", string(nvparse.DefaultQuote),
		"quote character for string values in property syntax")
	flagSet.StringVar(&p.SeparatorChar, "separator-char", string(nvparse.DefaultSeparator),
		"separator character for arrays and objects in property syntax")
	flagSet.StringVar(&p.AssignmentChar, "assignment-char", string(nvparse.DefaultAssignment),
		"assignment character between property names and values")
}

// Parser builds an [nvparse.Parser] from the configured characters.
// Each flag value must be a single ASCII character; the parser
// constructor additionally rejects structural characters and
// non-distinct combinations.
func (p *PropertySyntax) Parser() (*nvparse.Parser, error) {
	quote, err := singleChar("quote-char", p.QuoteChar)
	if err != nil {
		return nil, err
	}
	separator, err := singleChar("separator-char", p.SeparatorChar)
	if err != nil {
		return nil, err
	}
	assignment, err := singleChar("assignment-char", p.AssignmentChar)
	if err != nil {
		return nil, err
	}
	return nvparse.NewWithChars(quote, separator, assignment)
}

// singleChar validates that a syntax flag value is one ASCII character.
func singleChar(flagName, value string) (byte, error) {
	if len(value) != 1 || value[0] > 0x7f {
		return 0, fmt.Errorf("--%s must be a single ASCII character, got %q", flagName, value)
	}
	return value[0], nil
}

// ParseProperties parses a list of name=value property arguments (the
// collected values of a repeatable --property flag) into a map of
// property names to typed values. The assignment character comes from
// the parser's configuration; everything after the first assignment
// character is parsed as a value in the property mini-language. A
// repeated property name keeps the last value.
func ParseProperties(parser *nvparse.Parser, properties []string) (map[string]any, error) {
	parsed := make(map[string]any, len(properties))
	for _, property := range properties {
		name, text, found := strings.Cut(property, string(parser.Assignment()))
		if !found {
			return nil, fmt.Errorf("invalid property %q: missing '%c' between name and value",
				property, parser.Assignment())
		}
		if !propertyNamePattern.MatchString(name) {
			return nil, fmt.Errorf("invalid property name %q in %q", name, property)
		}

		value, err := parser.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("invalid value for property %q: %w", name, err)
		}
		parsed[name] = value
	}
	return parsed, nil
}
