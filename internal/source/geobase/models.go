package geobase

// FeatureCollection is the GeoJSON document published by the Geobase.
// Geometry is not consumed and is left undecoded.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
}

// Property names read from each feature.
const (
	PropCoteRueID    = "COTE_RUE_ID"
	PropNomVoie      = "NOM_VOIE"
	PropTypeVoie     = "TYPE_F"
	PropDebutAdresse = "DEBUT_ADRESSE"
	PropFinAdresse   = "FIN_ADRESSE"
	PropCote         = "COTE"
	PropNomVille     = "NOM_VILLE"
)
