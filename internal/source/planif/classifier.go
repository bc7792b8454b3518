package planif

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Messages are persisted verbatim in the metadata document, so they keep
// the wording operators already match on.
var (
	ErrMissingReturnCode = errors.New("Missing return code in response")
	ErrAccessDenied      = errors.New("Access denied - invalid token")
	ErrInvalidAccess     = errors.New("Invalid access - check parameters")
	ErrInvalidDate       = errors.New("Invalid date format")
	ErrRateLimited       = errors.New("Rate limit exceeded - wait 5 minutes")
)

// UnknownCodeError is returned for a responseStatus outside the known set.
type UnknownCodeError struct {
	Code any
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("Unknown error code: %v", e.Code)
}

// IsRetryable reports whether err may succeed when retried after a cooldown.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// Outcome is the classified meaning of a responseStatus value.
type Outcome int

const (
	OutcomeMissingCode Outcome = iota
	OutcomeSuccess
	OutcomeAccessDenied
	OutcomeInvalidAccess
	OutcomeInvalidDate
	OutcomeRateLimited
	OutcomeNoData
	OutcomeUnknownCode
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMissingCode:
		return "missing_code"
	case OutcomeSuccess:
		return "success"
	case OutcomeAccessDenied:
		return "access_denied"
	case OutcomeInvalidAccess:
		return "invalid_access"
	case OutcomeInvalidDate:
		return "invalid_date"
	case OutcomeRateLimited:
		return "rate_limited"
	case OutcomeNoData:
		return "no_data"
	default:
		return "unknown_code"
	}
}

// Classification is the result of inspecting a response status.
type Classification struct {
	Outcome Outcome
	// Code is the parsed status; meaningless for OutcomeMissingCode.
	Code int
	// Raw is the responseStatus value as received.
	Raw any
}

// Err returns the failure carried by the classification, or nil for the
// success and no-data outcomes.
func (c Classification) Err() error {
	switch c.Outcome {
	case OutcomeSuccess, OutcomeNoData:
		return nil
	case OutcomeMissingCode:
		return ErrMissingReturnCode
	case OutcomeAccessDenied:
		return ErrAccessDenied
	case OutcomeInvalidAccess:
		return ErrInvalidAccess
	case OutcomeInvalidDate:
		return ErrInvalidDate
	case OutcomeRateLimited:
		return ErrRateLimited
	default:
		return &UnknownCodeError{Code: c.Raw}
	}
}

func (c Classification) Retryable() bool {
	return c.Outcome == OutcomeRateLimited
}

// Codes maps service status values to their meaning.
type Codes struct {
	OK            int
	AccessDenied  int
	InvalidAccess int
	InvalidDate   int
	RateLimited   int
	NoData        int
}

// DefaultCodes are the values documented by the Planif-Neige service.
var DefaultCodes = Codes{
	OK:            0,
	AccessDenied:  1,
	InvalidAccess: 2,
	InvalidDate:   3,
	RateLimited:   5,
	NoData:        8,
}

type Classifier struct {
	codes Codes
}

func NewClassifier(codes Codes) *Classifier {
	return &Classifier{codes: codes}
}

// Classify inspects the responseStatus field of resp. It never fails:
// every response maps to exactly one Outcome.
func (c *Classifier) Classify(resp Object) Classification {
	raw := Field(resp, "responseStatus")
	if isBlank(raw) {
		return Classification{Outcome: OutcomeMissingCode}
	}

	code, ok := parseCode(raw)
	if !ok {
		return Classification{Outcome: OutcomeUnknownCode, Raw: raw}
	}

	cls := Classification{Code: code, Raw: raw}
	switch code {
	case c.codes.AccessDenied:
		cls.Outcome = OutcomeAccessDenied
	case c.codes.InvalidAccess:
		cls.Outcome = OutcomeInvalidAccess
	case c.codes.RateLimited:
		cls.Outcome = OutcomeRateLimited
	case c.codes.InvalidDate:
		cls.Outcome = OutcomeInvalidDate
	case c.codes.NoData:
		cls.Outcome = OutcomeNoData
	case c.codes.OK:
		cls.Outcome = OutcomeSuccess
	default:
		cls.Outcome = OutcomeUnknownCode
	}
	return cls
}

// Classify uses DefaultCodes.
func Classify(resp Object) Classification {
	return NewClassifier(DefaultCodes).Classify(resp)
}

// isBlank reports an absent status. An empty element decodes to "".
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	str, ok := v.(string)
	return ok && strings.TrimSpace(str) == ""
}

func parseCode(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	default:
		return 0, false
	}
}
