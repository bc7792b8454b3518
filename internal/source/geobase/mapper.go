package geobase

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ludodefgh/planif-neige-public-api/internal/domain"
)

// MapFeatures builds the street-side mapping keyed by COTE_RUE_ID. Features
// without an identifier are skipped and counted in skipped.
func MapFeatures(features []Feature) (mapping *domain.StreetSideMap, skipped int) {
	mapping = domain.NewStreetSideMap()

	for _, f := range features {
		props := f.Properties

		id, ok := identifier(props[PropCoteRueID])
		if !ok {
			skipped++
			continue
		}

		mapping.Set(id, domain.StreetSide{
			NomVoie:      text(props[PropNomVoie]),
			TypeVoie:     text(props[PropTypeVoie]),
			DebutAdresse: number(props[PropDebutAdresse]),
			FinAdresse:   number(props[PropFinAdresse]),
			Cote:         text(props[PropCote]),
			NomVille:     text(props[PropNomVille]),
		})
	}

	return mapping, skipped
}

// identifier stringifies an id so numeric and string ids share one key.
// Empty and zero ids carry no meaning and are rejected.
func identifier(v any) (string, bool) {
	switch id := v.(type) {
	case nil:
		return "", false
	case string:
		return id, id != ""
	case json.Number:
		if f, err := id.Float64(); err == nil && f == 0 {
			return "", false
		}
		return id.String(), id != ""
	case float64:
		if id == 0 {
			return "", false
		}
		return strconv.FormatFloat(id, 'f', -1, 64), true
	case int:
		return strconv.Itoa(id), id != 0
	case int64:
		return strconv.FormatInt(id, 10), id != 0
	case bool:
		return "", false
	default:
		s := fmt.Sprint(id)
		return s, s != ""
	}
}

func text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}

// number returns nil for missing and non-integral values so that "no
// address" stays distinct from address zero.
func number(v any) *int64 {
	var n int64
	switch x := v.(type) {
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			f, ferr := x.Float64()
			if ferr != nil || f != math.Trunc(f) {
				return nil
			}
			i = int64(f)
		}
		n = i
	case float64:
		if x != math.Trunc(x) {
			return nil
		}
		n = int64(x)
	case int:
		n = int64(x)
	case int64:
		n = x
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return nil
		}
		n = i
	default:
		return nil
	}
	return &n
}
