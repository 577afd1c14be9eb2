// Package validate implements the request body schema engine used by the
// validation middleware chain.
//
// A Schema declares the exact set of top-level fields a route accepts. The
// field set is closed: a body containing any undeclared field fails
// validation even when all declared fields are present and correct. Each
// declared field carries a JSON type (string, number or object), a
// required/optional flag, and an optional list of extra checks.
//
// Validation collects every failing field rather than stopping at the first
// one, so clients get the full picture in a single round trip. The resulting
// list becomes the innerErrors of a Validation error.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/knazaryan/go-books-backend/internal/apperr"
)

// Type is the expected JSON type of a declared field.
type Type int

const (
	// TypeString expects a JSON string.
	TypeString Type = iota
	// TypeNumber expects a JSON number.
	TypeNumber
	// TypeObject expects a JSON object.
	TypeObject
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeObject:
		return "object"
	default:
		return "unknown"
	}
}

// Check inspects an already type-checked value and returns a non-empty
// message when the value is not acceptable.
type Check func(value any) string

// Field declares one accepted top-level body field.
type Field struct {
	Name     string
	Type     Type
	Optional bool
	Checks   []Check
}

// String declares a required string field with optional extra checks.
func String(name string, checks ...Check) Field {
	return Field{Name: name, Type: TypeString, Checks: checks}
}

// OptionalString declares an optional string field with optional extra checks.
func OptionalString(name string, checks ...Check) Field {
	return Field{Name: name, Type: TypeString, Optional: true, Checks: checks}
}

// Number declares a required number field with optional extra checks.
func Number(name string, checks ...Check) Field {
	return Field{Name: name, Type: TypeNumber, Checks: checks}
}

// OptionalNumber declares an optional number field with optional extra checks.
func OptionalNumber(name string, checks ...Check) Field {
	return Field{Name: name, Type: TypeNumber, Optional: true, Checks: checks}
}

// Object declares a required object field with optional extra checks.
func Object(name string, checks ...Check) Field {
	return Field{Name: name, Type: TypeObject, Checks: checks}
}

// Schema is an ordered, closed set of accepted fields.
type Schema struct {
	fields []Field
	byName map[string]Field
}

// NewSchema builds a Schema from the declared fields. Field order is
// preserved for deterministic error reporting.
func NewSchema(fields ...Field) Schema {
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}
	return Schema{fields: fields, byName: byName}
}

// Validate checks body against the schema and returns one FieldError per
// failing field. An empty result means the body passed. Undeclared fields
// are reported in lexicographic order (the decoded map has no stable order),
// declared fields in declaration order.
func (s Schema) Validate(body map[string]any) []apperr.FieldError {
	var out []apperr.FieldError

	var extra []string
	for name := range body {
		if _, ok := s.byName[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		out = append(out, apperr.FieldError{Field: name, Message: "field is not allowed"})
	}

	for _, f := range s.fields {
		v, present := body[f.Name]
		if !present {
			if !f.Optional {
				out = append(out, apperr.FieldError{Field: f.Name, Message: "field is required"})
			}
			continue
		}
		if msg := checkType(f.Type, v); msg != "" {
			out = append(out, apperr.FieldError{Field: f.Name, Message: msg})
			continue
		}
		for _, check := range f.Checks {
			if msg := check(v); msg != "" {
				out = append(out, apperr.FieldError{Field: f.Name, Message: msg})
				break
			}
		}
	}

	return out
}

// checkType verifies the decoded JSON value against the declared type.
// encoding/json decodes numbers as float64, objects as map[string]any.
func checkType(t Type, v any) string {
	switch t {
	case TypeString:
		if _, ok := v.(string); !ok {
			return "must be a string"
		}
	case TypeNumber:
		if _, ok := v.(float64); !ok {
			return "must be a number"
		}
	case TypeObject:
		if _, ok := v.(map[string]any); !ok {
			return "must be an object"
		}
	}
	return ""
}

//
// Common checks
//

// NonEmpty rejects empty or whitespace-only strings.
func NonEmpty(v any) string {
	if s, _ := v.(string); strings.TrimSpace(s) == "" {
		return "must not be empty"
	}
	return ""
}

// NoWhitespace rejects strings containing any whitespace character.
func NoWhitespace(v any) string {
	if s, _ := v.(string); strings.ContainsAny(s, " \t\n\r") {
		return "must not contain whitespace"
	}
	return ""
}

// PositiveNumber rejects numbers that are zero or negative.
func PositiveNumber(v any) string {
	if n, _ := v.(float64); n <= 0 {
		return "must be a positive number"
	}
	return ""
}

// NonEmptyObject rejects objects without any keys.
func NonEmptyObject(v any) string {
	if m, _ := v.(map[string]any); len(m) == 0 {
		return "must not be an empty object"
	}
	return ""
}

// MaxLen caps a string's length in runes.
func MaxLen(max int) Check {
	return func(v any) string {
		if s, _ := v.(string); len([]rune(s)) > max {
			return fmt.Sprintf("must be at most %d characters long", max)
		}
		return ""
	}
}

// hexIDPattern matches the store's native identifier format: a fixed-length
// 24 character hexadecimal token.
var hexIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// HexID reports whether s is a well-formed record identifier. Format checks
// run before any store lookup; a mismatch is a Validation failure, never a
// NotFound.
func HexID(s string) bool { return hexIDPattern.MatchString(s) }
