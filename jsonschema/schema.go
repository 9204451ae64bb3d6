package jsonschema

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Schema      string `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Const       any    `json:"const,omitempty" yaml:"const,omitempty"`
	Enum        []any  `json:"enum,omitempty" yaml:"enum,omitempty"`
	Default     any    `json:"default,omitempty" yaml:"default,omitempty"`

	// String
	MaxLength *int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string           `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty" yaml:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
}

// Draft is the dialect URI stamped on exported root schemas.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// String returns a string schema.
func String() *Schema { return &Schema{Type: "string"} }

// Bool returns a boolean schema.
func Bool() *Schema { return &Schema{Type: "boolean"} }

// Integer returns an integer schema.
func Integer() *Schema { return &Schema{Type: "integer"} }

// ConstString returns a string schema pinned to v.
func ConstString(v string) *Schema { return &Schema{Type: "string", Const: v} }

// StringMax returns a string schema with a maximum length.
func StringMax(n int) *Schema { return &Schema{Type: "string", MaxLength: intPtr(n)} }

// Object returns an object schema over props. Unknown properties are
// rejected.
func Object(props map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: "object", Properties: props, Required: required, AdditionalProperties: false}
}

// Array returns an array schema bounded by min and max. A negative bound is
// left out.
func Array(items *Schema, min, max int) *Schema {
	s := &Schema{Type: "array", Items: items}
	if min >= 0 {
		s.MinItems = intPtr(min)
	}
	if max >= 0 {
		s.MaxItems = intPtr(max)
	}
	return s
}

// OneOf returns a union schema whose variants are mutually exclusive.
func OneOf(variants ...*Schema) *Schema { return &Schema{OneOf: variants} }

// AnyOf returns a union schema whose variants may overlap.
func AnyOf(variants ...*Schema) *Schema { return &Schema{AnyOf: variants} }

func intPtr(n int) *int { return &n }
