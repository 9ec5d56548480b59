package transcript

import (
	"bytes"
	"encoding/json"
)

// Entry is a single metadata key/value pair.
type Entry struct {
	Key   string
	Value string
}

// Metadata is an ordered set of string key/value pairs. The transcription
// service decides the field names, so the key set is open; the order keys
// first appeared in is preserved.
type Metadata struct {
	entries []Entry
}

// Set inserts a new pair or updates an existing key in place, keeping its
// original position.
func (m *Metadata) Set(key, value string) {
	for i := range m.entries {
		if m.entries[i].Key == key {
			m.entries[i].Value = value
			return
		}
	}
	m.entries = append(m.entries, Entry{Key: key, Value: value})
}

func (m Metadata) Get(key string) (string, bool) {
	for _, e := range m.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

func (m Metadata) Len() int {
	return len(m.entries)
}

// Entries returns the pairs in insertion order. The slice is a copy.
func (m Metadata) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// MarshalJSON emits a JSON object whose keys follow insertion order, without
// escaping non-ASCII text.
func (m Metadata) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeJSONString(&buf, e.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeJSONString(&buf, e.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a trailing newline
	buf.Truncate(buf.Len() - 1)
	return nil
}
