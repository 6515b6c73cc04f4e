// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package nvparse parses the compact name-value syntax used for typed
// values of zhmc command line options.
//
// The syntax expresses scalars, arrays, and nested objects in a single
// option argument without shell-hostile characters:
//
//	null                      -> nil
//	true                      -> bool
//	42                        -> int64
//	42. and .5                -> float64
//	abc                       -> string
//	"true"                    -> string (quoting suppresses coercion)
//	[abc,42]                  -> []any
//	{interface-name=abc,port=42}  -> *Object
//
// A [Parser] is a stateless grammar configuration: the quoting,
// separator, and assignment characters can be changed per parser
// instance. [Parser.Parse] is a pure function of its input and either
// returns the parsed value tree or a [*ParseError] carrying the input
// position and the token that was found.
//
// The grammar is implemented as a recursive descent over a byte cursor.
// Productions return a value and the next position; failures are plain
// error returns, never panics. The whole input must be consumed: any
// trailing text is a parse error.
package nvparse
