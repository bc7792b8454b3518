package domain

import (
	"bytes"
	"encoding/json"
)

// StreetSide is one side of one street segment from the Geobase.
type StreetSide struct {
	NomVoie      string `json:"nom_voie"`
	TypeVoie     string `json:"type_voie"`
	DebutAdresse *int64 `json:"debut_adresse"`
	FinAdresse   *int64 `json:"fin_adresse"`
	Cote         string `json:"cote"`
	NomVille     string `json:"nom_ville"`
}

// StreetSideMap maps a street-side identifier (COTE_RUE_ID) to its street
// side. Keys keep the order of their first insertion; setting an existing
// key replaces the value in place.
type StreetSideMap struct {
	keys    []string
	entries map[string]StreetSide
}

func NewStreetSideMap() *StreetSideMap {
	return &StreetSideMap{entries: make(map[string]StreetSide)}
}

func (m *StreetSideMap) Set(id string, side StreetSide) {
	if _, ok := m.entries[id]; !ok {
		m.keys = append(m.keys, id)
	}
	m.entries[id] = side
}

func (m *StreetSideMap) Get(id string) (StreetSide, bool) {
	side, ok := m.entries[id]
	return side, ok
}

func (m *StreetSideMap) Len() int {
	return len(m.keys)
}

// Keys returns the identifiers in insertion order.
func (m *StreetSideMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// MarshalJSON writes the map as a JSON object in insertion order.
func (m *StreetSideMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeRaw(id)
		if err != nil {
			return nil, err
		}
		value, err := encodeRaw(m.entries[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeRaw marshals v without HTML escaping so the outer encoder decides.
func encodeRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
