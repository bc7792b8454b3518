package planif

import "github.com/ludodefgh/planif-neige-public-api/internal/domain"

// Upstream field names. The wrapper is plural, the records inside it are
// held by the singular name.
const (
	fieldWrapper = "planifications"
	fieldRecords = "planification"
)

// Normalize flattens the planifications wrapper of a successful response
// into an ordered list. It never returns nil.
func Normalize(wrapper any) []domain.Planification {
	items := records(wrapper)
	out := make([]domain.Planification, 0, len(items))
	for _, item := range items {
		out = append(out, normalizeRecord(item))
	}
	return out
}

// NormalizeResponse normalizes the wrapper held by resp.
func NormalizeResponse(resp Object) []domain.Planification {
	return Normalize(Field(resp, fieldWrapper))
}

type shape int

const (
	shapeEmpty shape = iota
	shapeSingle
	shapeMany
)

// records collapses the list-or-singleton field into a sequence. Entries
// that are not objects become empty records.
func records(wrapper any) []Object {
	obj, ok := asObject(wrapper)
	if !ok {
		return nil
	}
	value := Field(obj, fieldRecords)

	var items []any
	switch shapeOf(value) {
	case shapeEmpty:
		return nil
	case shapeSingle:
		items = []any{value}
	case shapeMany:
		items = value.([]any)
	}

	out := make([]Object, 0, len(items))
	for _, item := range items {
		rec, ok := asObject(item)
		if !ok {
			rec = Fields{}
		}
		out = append(out, rec)
	}
	return out
}

func shapeOf(v any) shape {
	switch t := v.(type) {
	case nil:
		return shapeEmpty
	case []any:
		if len(t) == 0 {
			return shapeEmpty
		}
		return shapeMany
	case string:
		if t == "" {
			return shapeEmpty
		}
		return shapeSingle
	default:
		return shapeSingle
	}
}

func normalizeRecord(rec Object) domain.Planification {
	return domain.Planification{
		MunID:           Field(rec, "munid"),
		CoteRueID:       Field(rec, "coteRueId"),
		EtatDeneig:      Field(rec, "etatDeneig"),
		DateDebPlanif:   FormatDateTime(Field(rec, "dateDebutPlanif")),
		DateFinPlanif:   FormatDateTime(Field(rec, "dateFinPlanif")),
		DateDebReplanif: FormatDateTime(Field(rec, "dateDebutReplanif")),
		DateFinReplanif: FormatDateTime(Field(rec, "dateFinReplanif")),
		DateMaj:         FormatDateTime(Field(rec, "dateMaj")),
	}
}
