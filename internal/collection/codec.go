package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var errKind = errors.New("unexpected kind")

// codec converts between logical records and the flat string hashes the
// backend stores. Declared fields are typed by the schema; undeclared
// non-string fields are typed by the record's kind manifest.
type codec struct {
	schema Schema
	logger *zap.Logger
}

// normalize coerces caller input to the logical types of the schema. System
// fields and null values are dropped.
func (c codec) normalize(input map[string]any) (Record, error) {
	rec := make(Record, len(input))
	problems := []string{}

	for name, value := range input {
		if value == nil || isSystemField(name) {
			continue
		}

		field, declared := c.schema.Field(name)
		if !declared {
			rec[name], _ = canonical(value)
			continue
		}

		if s, ok := value.(string); ok && field.Kind != KindString && strings.TrimSpace(s) == "" {
			// blank form inputs for typed fields mean "not provided"
			continue
		}

		coerced, err := coerce(field.Kind, value)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s must be a %s", name, field.Kind))
			continue
		}
		rec[name] = coerced
	}

	if len(problems) > 0 {
		slices.Sort(problems)
		return nil, fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
	}

	return rec, nil
}

// validate checks required fields and enumerations of a complete record.
func (c codec) validate(rec Record) error {
	missing := []string{}
	for _, name := range c.schema.required() {
		if isEmpty(rec[name]) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}

	for _, field := range c.schema.Fields {
		if len(field.OneOf) == 0 {
			continue
		}
		value, ok := rec[field.Name].(string)
		if !ok {
			continue
		}
		if !slices.Contains(field.OneOf, value) {
			return fmt.Errorf(
				"%w: %s must be one of %s",
				ErrValidation, field.Name, strings.Join(field.OneOf, ", "),
			)
		}
	}

	return nil
}

// encode flattens a record into backend hash fields.
func (c codec) encode(rec Record) (map[string]string, error) {
	fields := make(map[string]string, len(rec)+1)
	kinds := map[string]Kind{}

	for name, value := range rec {
		if value == nil || name == fieldKinds {
			continue
		}

		kind := KindString
		if field, ok := c.schema.Field(name); ok {
			kind = field.Kind
		} else if !isSystemField(name) {
			_, kind = canonical(value)
			if kind != KindString {
				kinds[name] = kind
			}
		}

		raw, err := encodeValue(kind, value)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode %s: %w", ErrValidation, name, err)
		}
		fields[name] = raw
	}

	// always written so a stale manifest never outlives a type change
	manifest, err := json.Marshal(kinds)
	if err != nil {
		return nil, fmt.Errorf("failed to encode kind manifest: %w", err)
	}
	fields[fieldKinds] = string(manifest)

	return fields, nil
}

// decode reconstitutes a record from backend hash fields. A field that cannot
// be decoded takes its kind's default. An empty hash decodes to nil.
func (c codec) decode(key string, fields map[string]string) Record {
	if len(fields) == 0 {
		return nil
	}

	kinds := map[string]Kind{}
	if raw, ok := fields[fieldKinds]; ok {
		if err := json.Unmarshal([]byte(raw), &kinds); err != nil {
			c.logger.Warn("corrupt kind manifest", zap.String("key", key), zap.Error(err))
			kinds = map[string]Kind{}
		}
	}

	rec := make(Record, len(fields))
	for name, raw := range fields {
		if name == fieldKinds {
			continue
		}

		kind := KindString
		if field, ok := c.schema.Field(name); ok {
			kind = field.Kind
		} else if k, ok := kinds[name]; ok && !isSystemField(name) {
			kind = k
		}

		value, err := decodeValue(kind, raw)
		if err != nil {
			c.logger.Warn(
				"failed to decode field, using default",
				zap.String("key", key),
				zap.String("field", name),
				zap.String("kind", string(kind)),
				zap.Error(err),
			)
			value = kind.Default()
		}
		rec[name] = value
	}

	return rec
}

func encodeValue(kind Kind, value any) (string, error) {
	switch kind {
	case KindString:
		if s, ok := value.(string); ok {
			return s, nil
		}
		return fmt.Sprint(value), nil
	case KindNumber:
		f, ok := toNumber(value)
		if !ok {
			return "", fmt.Errorf("%w: %T is not a number", errKind, value)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	case KindBool:
		b, ok := value.(bool)
		if !ok {
			return "", fmt.Errorf("%w: %T is not a bool", errKind, value)
		}
		return strconv.FormatBool(b), nil
	case KindObject, KindList:
		data, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	return "", fmt.Errorf("%w: %s", errKind, kind)
}

func decodeValue(kind Kind, raw string) (any, error) {
	switch kind {
	case KindString:
		return raw, nil
	case KindNumber:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %q is not a number", errKind, raw)
		}
		return f, nil
	case KindBool:
		return strconv.ParseBool(raw)
	case KindObject:
		var obj map[string]any
		if err := json.Unmarshal([]byte(raw), &obj); err != nil {
			return nil, err
		}
		if obj == nil {
			return nil, fmt.Errorf("%w: null object", errKind)
		}
		return obj, nil
	case KindList:
		var list []any
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			return nil, err
		}
		if list == nil {
			return nil, fmt.Errorf("%w: null list", errKind)
		}
		return list, nil
	}

	return nil, fmt.Errorf("%w: %s", errKind, kind)
}

// coerce converts value to the logical type of kind.
func coerce(kind Kind, value any) (any, error) {
	switch kind {
	case KindString:
		switch v := value.(type) {
		case string:
			return v, nil
		case bool:
			return strconv.FormatBool(v), nil
		}
		if f, ok := toNumber(value); ok {
			return strconv.FormatFloat(f, 'f', -1, 64), nil
		}
	case KindNumber:
		if f, ok := toNumber(value); ok {
			return f, nil
		}
	case KindBool:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			return strconv.ParseBool(strings.TrimSpace(v))
		}
	case KindObject:
		var obj map[string]any
		if err := viaJSON(value, &obj); err == nil && obj != nil {
			return obj, nil
		}
	case KindList:
		var list []any
		if err := viaJSON(value, &list); err == nil && list != nil {
			return list, nil
		}
	}

	return nil, fmt.Errorf("%w: %T is not a %s", errKind, value, kind)
}

// canonical brings an undeclared value to one of the JSON logical types and
// reports its kind.
func canonical(value any) (any, Kind) {
	switch v := value.(type) {
	case string:
		return v, KindString
	case bool:
		return v, KindBool
	case map[string]any:
		return v, KindObject
	case []any:
		return v, KindList
	}

	if f, ok := toNumber(value); ok {
		return f, KindNumber
	}

	var generic any
	if err := viaJSON(value, &generic); err != nil || generic == nil {
		return fmt.Sprint(value), KindString
	}
	return canonical(generic)
}

func toNumber(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// viaJSON converts value into dst through its JSON form. Strings are taken
// to already hold JSON text.
func viaJSON(value any, dst any) error {
	data, ok := value.(string)
	if !ok {
		encoded, err := json.Marshal(value)
		if err != nil {
			return err
		}
		data = string(encoded)
	}

	return json.Unmarshal([]byte(data), dst)
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}
