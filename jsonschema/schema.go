package jsonschema

// Schema is a minimal JSON Schema representation used to describe shapes and
// manifests. Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`
	Title  string `json:"title,omitempty"`
	Enum   []any  `json:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`
}

// Object returns an empty object schema ready for properties.
func Object() *Schema {
	return &Schema{Type: "object", Properties: map[string]*Schema{}}
}

// Put stores prop at the nested property path keys, creating intermediate
// object schemas as needed. When required is true each level of the path is
// listed as required on its parent.
func (s *Schema) Put(keys []string, prop *Schema, required bool) {
	cur := s
	for i, k := range keys {
		if cur.Properties == nil {
			cur.Properties = map[string]*Schema{}
		}
		if required && !contains(cur.Required, k) {
			cur.Required = append(cur.Required, k)
		}
		if i == len(keys)-1 {
			cur.Properties[k] = prop
			return
		}
		next, ok := cur.Properties[k]
		if !ok || next.Type != "object" {
			next = Object()
			cur.Properties[k] = next
		}
		cur = next
	}
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
