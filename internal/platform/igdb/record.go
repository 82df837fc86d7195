package igdb

// Record is one raw game object as decoded from the upstream JSON array.
// No field is guaranteed to be present, and nested shapes vary, so every
// access goes through a defensive accessor instead of a typed struct.
type Record map[string]any

func (r Record) str(key string) (string, bool) {
	v, ok := r[key].(string)
	return v, ok
}

func (r Record) number(key string) (float64, bool) {
	v, ok := r[key].(float64)
	return v, ok
}

// object returns a nested object field, or nil if absent or not an object.
func (r Record) object(key string) Record {
	if v, ok := r[key].(map[string]any); ok {
		return Record(v)
	}
	return nil
}

// list returns the object elements of a nested list field, preserving
// order. Non-object elements are skipped.
func (r Record) list(key string) []Record {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	items := make([]Record, 0, len(raw))
	for _, el := range raw {
		if obj, ok := el.(map[string]any); ok {
			items = append(items, Record(obj))
		}
	}
	return items
}
