package collection

import "slices"

// Kind is the logical type of a record field.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "bool"
	KindObject Kind = "object"
	KindList   Kind = "list"
)

// Default returns the value a field of this kind takes when its stored form
// cannot be decoded.
func (k Kind) Default() any {
	switch k {
	case KindNumber:
		return float64(0)
	case KindBool:
		return false
	case KindObject:
		return map[string]any{}
	case KindList:
		return []any{}
	case KindString:
	}
	return ""
}

// Field declares a typed field of an entity.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	// OneOf restricts string fields to a fixed set of values.
	OneOf []string
	// Default is applied on create when the field is absent.
	Default any
}

// Schema describes one entity type and where its records live.
type Schema struct {
	// Name is the public entity name, as used in routes.
	Name string
	// Key is the index set key; records live under Key:<id>.
	Key string
	// Fields lists declared fields. Undeclared fields are stored as well.
	Fields []Field
	// ImageField names the field that may reference a hosted asset.
	ImageField string
}

func (s Schema) Field(name string) (Field, bool) {
	i := slices.IndexFunc(s.Fields, func(f Field) bool { return f.Name == name })
	if i < 0 {
		return Field{}, false
	}
	return s.Fields[i], true
}

func (s Schema) RecordKey(id string) string {
	return s.Key + ":" + id
}

func (s Schema) required() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}
