// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

package sessionfile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// sessionFields maps each required session field to the schema rule
// its YAML node must satisfy.
var sessionFields = map[string]string{
	"host":          "must be a string",
	"userid":        "must be a string",
	"session_id":    "must be a string",
	"ca_verify":     "must be a boolean",
	"ca_cert_path":  "must be a string or null",
	"creation_time": "must be a string",
}

// documentRoot unwraps the document node produced by decoding into a
// yaml.Node. An empty file has no content node; nil is returned then.
func documentRoot(document *yaml.Node) *yaml.Node {
	if document.Kind != yaml.DocumentNode || len(document.Content) == 0 {
		return nil
	}
	return document.Content[0]
}

// validateFileNode checks the parsed file structure against the
// session file schema: a mapping of session names (lowercase letters,
// digits, underscores) to session records carrying exactly the known
// fields with the right types. Validation happens on the node tree so
// that type violations surface as schema errors with element paths
// rather than as decoder failures.
func validateFileNode(path string, root *yaml.Node) error {
	if root == nil || root.Tag == "!!null" {
		return schemaError(path, "(top level)", "must be a mapping of session names to sessions", "null")
	}
	if root.Kind != yaml.MappingNode {
		return schemaError(path, "(top level)", "must be a mapping of session names to sessions", nodeValue(root))
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if !ValidName(key.Value) {
			return schemaError(path, key.Value, "session name must match ^[a-z0-9_]+$", key.Value)
		}
		if err := validateSessionNode(path, key.Value, value); err != nil {
			return err
		}
	}
	return nil
}

// validateSessionNode checks one session record node.
func validateSessionNode(path, name string, node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return schemaError(path, name, "session must be a mapping of field names to values", nodeValue(node))
	}

	seen := make(map[string]bool, len(sessionFields))
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		element := name + "." + key.Value
		rule, known := sessionFields[key.Value]
		if !known {
			return schemaError(path, element, "unknown session field", nodeValue(value))
		}
		seen[key.Value] = true
		if err := validateFieldNode(path, element, rule, key.Value, value); err != nil {
			return err
		}
	}
	for field := range sessionFields {
		if !seen[field] {
			return schemaError(path, name, fmt.Sprintf("missing required field %q", field), "")
		}
	}
	return nil
}

// validateFieldNode checks one field value node against its rule.
func validateFieldNode(path, element, rule, field string, node *yaml.Node) error {
	switch field {
	case "ca_verify":
		if node.Tag != "!!bool" {
			return schemaError(path, element, rule, nodeValue(node))
		}
	case "ca_cert_path":
		if node.Tag != "!!str" && node.Tag != "!!null" {
			return schemaError(path, element, rule, nodeValue(node))
		}
	default:
		if node.Tag != "!!str" {
			return schemaError(path, element, rule, nodeValue(node))
		}
	}
	return nil
}

// nodeValue renders a node for inclusion in a schema error.
func nodeValue(node *yaml.Node) string {
	if node.Kind == yaml.ScalarNode {
		return node.Value
	}
	raw, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Sprintf("(%v node)", node.Kind)
	}
	return string(raw)
}
