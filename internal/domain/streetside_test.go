package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreetSideMap_KeepsFirstInsertionOrder(t *testing.T) {
	m := NewStreetSideMap()
	m.Set("30", StreetSide{NomVoie: "C"})
	m.Set("10", StreetSide{NomVoie: "A"})
	m.Set("30", StreetSide{NomVoie: "C2"})
	m.Set("20", StreetSide{NomVoie: "B"})

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"30", "10", "20"}, m.Keys())

	side, ok := m.Get("30")
	require.True(t, ok)
	assert.Equal(t, "C2", side.NomVoie)
}

func TestStreetSideMap_MarshalJSON(t *testing.T) {
	debut := int64(100)
	m := NewStreetSideMap()
	m.Set("2", StreetSide{NomVoie: "Côte-des-Neiges", DebutAdresse: &debut})
	m.Set("1", StreetSide{NomVoie: "A & B"})

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(m))

	assert.Equal(t,
		`{"2":{"nom_voie":"Côte-des-Neiges","type_voie":"","debut_adresse":100,"fin_adresse":null,"cote":"","nom_ville":""},`+
			`"1":{"nom_voie":"A & B","type_voie":"","debut_adresse":null,"fin_adresse":null,"cote":"","nom_ville":""}}`,
		strings.TrimSpace(buf.String()),
	)
}

func TestStreetSideMap_EmptyMarshalsAsObject(t *testing.T) {
	data, err := json.Marshal(NewStreetSideMap())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestPlanificationDocument_EmptyListIsArray(t *testing.T) {
	doc := PlanificationDocument{Planifications: []Planification{}, GeneratedAt: "2024-01-10T08:00:00-05:00"}

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"planifications":[],"generated_at":"2024-01-10T08:00:00-05:00"}`, string(data))
}

func TestFetchMetadata_OmitsUnsetFields(t *testing.T) {
	zero := 0
	success, err := json.Marshal(FetchMetadata{LastUpdate: "t", FromDate: "f", RecordCount: &zero, Status: StatusSuccess})
	require.NoError(t, err)
	assert.Equal(t, `{"last_update":"t","from_date":"f","record_count":0,"status":"success"}`, string(success))

	failure, err := json.Marshal(FetchMetadata{LastUpdate: "t", Status: StatusError, Error: "boom"})
	require.NoError(t, err)
	assert.Equal(t, `{"last_update":"t","status":"error","error":"boom"}`, string(failure))
}
