package domain

// Planification is one snow-clearing planning entry for a street side.
// Identifier and state fields are passed through as received upstream.
// Date fields are nil or ISO-8601 strings.
type Planification struct {
	MunID           any     `json:"mun_id"`
	CoteRueID       any     `json:"cote_rue_id"`
	EtatDeneig      any     `json:"etat_deneig"`
	DateDebPlanif   *string `json:"date_deb_planif"`
	DateFinPlanif   *string `json:"date_fin_planif"`
	DateDebReplanif *string `json:"date_deb_replanif"`
	DateFinReplanif *string `json:"date_fin_replanif"`
	DateMaj         *string `json:"date_maj"`
}

// PlanificationDocument is the Planif-Neige data file.
type PlanificationDocument struct {
	Planifications []Planification `json:"planifications"`
	GeneratedAt    string          `json:"generated_at"`
}
