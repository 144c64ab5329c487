package pandoc

// KV is one key/value attribute pair. Order is preserved; pandoc allows
// duplicate keys and the first occurrence wins on lookup.
type KV struct {
	Key   string
	Value string
}

// Attr is the [id, classes, key-values] attribute triple carried by images,
// figures, spans, and other attributed elements.
type Attr struct {
	ID      string
	Classes []string
	KVs     []KV
}

// ParseAttr decodes the JSON shape [id, [class...], [[key, value]...]].
func ParseAttr(v any) (Attr, bool) {
	parts, ok := v.([]any)
	if !ok || len(parts) != 3 {
		return Attr{}, false
	}
	id, ok := parts[0].(string)
	if !ok {
		return Attr{}, false
	}
	rawClasses, ok := parts[1].([]any)
	if !ok {
		return Attr{}, false
	}
	classes := make([]string, 0, len(rawClasses))
	for _, c := range rawClasses {
		s, ok := c.(string)
		if !ok {
			return Attr{}, false
		}
		classes = append(classes, s)
	}
	rawKVs, ok := parts[2].([]any)
	if !ok {
		return Attr{}, false
	}
	kvs := make([]KV, 0, len(rawKVs))
	for _, kv := range rawKVs {
		pair, ok := kv.([]any)
		if !ok || len(pair) != 2 {
			return Attr{}, false
		}
		key, kok := pair[0].(string)
		value, vok := pair[1].(string)
		if !kok || !vok {
			return Attr{}, false
		}
		kvs = append(kvs, KV{Key: key, Value: value})
	}
	return Attr{ID: id, Classes: classes, KVs: kvs}, true
}

// Encode re-encodes the attribute triple into its JSON shape.
func (a Attr) Encode() []any {
	classes := make([]any, len(a.Classes))
	for i, c := range a.Classes {
		classes[i] = c
	}
	kvs := make([]any, len(a.KVs))
	for i, kv := range a.KVs {
		kvs[i] = []any{kv.Key, kv.Value}
	}
	return []any{a.ID, classes, kvs}
}

// Class returns the first class, which pandoc treats as the significant one.
func (a Attr) Class() (string, bool) {
	if len(a.Classes) == 0 {
		return "", false
	}
	return a.Classes[0], true
}

// Get returns the value of the first pair with the given key.
func (a Attr) Get(key string) (string, bool) {
	for _, kv := range a.KVs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Target is the [url, title] pair of links and images.
type Target struct {
	URL   string
	Title string
}

// ParseTarget decodes the JSON shape [url, title].
func ParseTarget(v any) (Target, bool) {
	parts, ok := v.([]any)
	if !ok || len(parts) != 2 {
		return Target{}, false
	}
	url, uok := parts[0].(string)
	title, tok := parts[1].(string)
	if !uok || !tok {
		return Target{}, false
	}
	return Target{URL: url, Title: title}, true
}

// Encode re-encodes the target into its JSON shape.
func (t Target) Encode() []any {
	return []any{t.URL, t.Title}
}
