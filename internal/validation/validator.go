package validation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"cropsense/domain/agronomy"
)

// Result is the outcome of validating one raw record. A record is valid
// only when Missing is empty; Missing lists every absent or non-numeric
// field in canonical order so callers can report the complete error in
// one round trip.
type Result struct {
	Observation agronomy.ObservationRecord
	Missing     []string
}

// Valid reports whether the record passed validation.
func (r Result) Valid() bool {
	return len(r.Missing) == 0
}

// Validate checks a raw record for the seven required numeric fields. It
// applies identically to a decoded JSON object and to one row of a
// tabular batch; rows validate independently.
func Validate(raw map[string]interface{}) Result {
	observation := make(agronomy.ObservationRecord, len(agronomy.FeatureOrder))
	var missing []string

	for _, param := range agronomy.FeatureOrder {
		rawValue, present := raw[string(param)]
		if !present {
			missing = append(missing, string(param))
			continue
		}
		value, ok := CoerceNumeric(rawValue)
		if !ok {
			missing = append(missing, string(param))
			continue
		}
		observation[param] = value
	}

	if len(missing) > 0 {
		return Result{Missing: missing}
	}
	return Result{Observation: observation}
}

// CoerceNumeric converts a raw value to a float64. Integers, floats and
// numeric strings coerce; booleans, nil, empty strings and non-numeric
// strings do not. NaN and infinities are rejected like any other
// unusable value.
func CoerceNumeric(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case bool:
		return 0, false
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		return parseNumericString(v.String())
	case string:
		return parseNumericString(v)
	default:
		return 0, false
	}
}

func parseNumericString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return finite(parsed)
}

func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
