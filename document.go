package blockkit

import (
	"bytes"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Document is an ordered mapping of wire keys to JSON-compatible values.
// Insertion order is preserved by every encoder.
//
// Values are strings, bools, integers, []string, Document, []Document or
// []map[string]string.
type Document struct {
	members []member
}

type member struct {
	key   string
	value any
}

// NewDocument returns a Document seeded with key/value pairs. Odd trailing
// arguments are ignored.
func NewDocument(kv ...any) Document {
	var d Document
	for i := 0; i+1 < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			continue
		}
		d.Set(k, kv[i+1])
	}
	return d
}

// Set assigns key. An existing key keeps its position.
func (d *Document) Set(key string, v any) *Document {
	for i := range d.members {
		if d.members[i].key == key {
			d.members[i].value = v
			return d
		}
	}
	d.members = append(d.members, member{key: key, value: v})
	return d
}

// Get returns the value stored under key.
func (d Document) Get(key string) (any, bool) {
	for _, m := range d.members {
		if m.key == key {
			return m.value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (d Document) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (d Document) Keys() []string {
	out := make([]string, len(d.members))
	for i, m := range d.members {
		out[i] = m.key
	}
	return out
}

// Len returns the number of keys.
func (d Document) Len() int { return len(d.members) }

// Map converts the document into plain maps and slices, recursively. Key
// order is lost.
func (d Document) Map() map[string]any {
	out := make(map[string]any, len(d.members))
	for _, m := range d.members {
		out[m.key] = plain(m.value)
	}
	return out
}

func plain(v any) any {
	switch t := v.(type) {
	case Document:
		return t.Map()
	case []Document:
		out := make([]any, len(t))
		for i := range t {
			out[i] = t[i].Map()
		}
		return out
	default:
		return v
	}
}

// MarshalJSON writes the members as a JSON object in insertion order.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range d.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.MarshalNoEscape(m.key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.MarshalNoEscape(m.value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the members as a YAML mapping in insertion order.
func (d Document) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, m := range d.members {
		k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.key}
		v := &yaml.Node{}
		if err := v.Encode(m.value); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, k, v)
	}
	return n, nil
}

// WriteJSON encodes v (a Document or []Document) to w without HTML escaping,
// so mrkdwn links like <url|text> stay readable.
func WriteJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// WriteYAML encodes v (a Document or []Document) to w as YAML.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
