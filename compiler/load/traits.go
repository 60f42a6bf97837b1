package load

import (
	"fmt"

	"github.com/syssam/shapegen/shape"
)

// annotations maps presence-only traits to the option setting them. Their
// values (usually {}) are ignored.
var annotations = map[string]shape.TraitOption{
	shape.TraitSparse:           shape.Sparse(),
	shape.TraitStreaming:        shape.Streaming(),
	shape.TraitRequired:         shape.Required(),
	shape.TraitSensitive:        shape.Sensitive(),
	shape.TraitRetryable:        shape.Retryable(),
	shape.TraitBox:              shape.Boxed(),
	shape.TraitIdempotencyToken: shape.IdempotencyToken(),
	shape.TraitDeprecated:       shape.Deprecated(),
}

// decodeTraits converts an AST traits object. Traits the generator does not
// read are skipped.
func decodeTraits(raw map[string]any) (shape.Traits, error) {
	var t shape.Traits
	for id, v := range raw {
		if opt, ok := annotations[id]; ok {
			opt(&t)
			continue
		}
		switch id {
		case shape.TraitDocumentation:
			s, err := stringTrait(id, v)
			if err != nil {
				return t, err
			}
			t.Documentation = s
		case shape.TraitJSONName:
			s, err := stringTrait(id, v)
			if err != nil {
				return t, err
			}
			t.JSONName = s
		case shape.TraitTimestampFormat:
			s, err := stringTrait(id, v)
			if err != nil {
				return t, err
			}
			if t.TimestampFormat = shape.TimestampFormat(s); !t.TimestampFormat.Valid() {
				return t, fmt.Errorf("trait %s: unknown format %q", id, s)
			}
		case shape.TraitError:
			s, err := stringTrait(id, v)
			if err != nil {
				return t, err
			}
			switch s {
			case "client":
				t.Error = shape.ErrorClient
			case "server":
				t.Error = shape.ErrorServer
			default:
				return t, fmt.Errorf("trait %s: unknown error kind %q", id, s)
			}
		case shape.TraitEnum:
			values, err := enumTrait(id, v)
			if err != nil {
				return t, err
			}
			t.Enum = values
		}
	}
	return t, nil
}

func stringTrait(id string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("trait %s: expect string value, got %T", id, v)
	}
	return s, nil
}

// enumTrait decodes the list form of the enum trait:
//
//	[{"value": "red", "name": "RED", "documentation": "...", "deprecated": true}]
func enumTrait(id string, v any) ([]shape.EnumValue, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("trait %s: expect list value, got %T", id, v)
	}
	values := make([]shape.EnumValue, 0, len(list))
	for i, e := range list {
		entry, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("trait %s: entry %d: expect object, got %T", id, i, e)
		}
		value, _ := entry["value"].(string)
		if value == "" {
			return nil, fmt.Errorf("trait %s: entry %d: missing value", id, i)
		}
		ev := shape.EnumValue{Value: value}
		ev.Name, _ = entry["name"].(string)
		ev.Documentation, _ = entry["documentation"].(string)
		ev.Deprecated, _ = entry["deprecated"].(bool)
		values = append(values, ev)
	}
	return values, nil
}
