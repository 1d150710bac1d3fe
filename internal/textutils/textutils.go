// Package textutils provides string normalization helpers for statement fields.
package textutils

import "strings"

// trimCutset is removed from both ends of every field: ASCII whitespace
// plus the ideographic space (U+3000) that pads fixed-width statement
// columns.
const trimCutset = " \t\r\n\v\f　"

// TrimWide removes leading and trailing ASCII whitespace and full-width
// spaces. Idempotent.
func TrimWide(s string) string {
	return strings.Trim(s, trimCutset)
}

// BuildPayee joins the non-empty trimmed tokens with a single space,
// preserving their order. Tokens that trim to nothing are dropped.
func BuildPayee(tokens ...string) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if t := TrimWide(tok); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
