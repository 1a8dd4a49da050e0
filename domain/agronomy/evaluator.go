package agronomy

// Evaluate classifies an observed value against a crop's ideal conditions.
// Both range bounds are inclusive. Parameters the crop defines no range
// for come back as StatusUnknown rather than an error, so callers can
// skip them. Pure function: no side effects, identical inputs yield an
// identical verdict.
func Evaluate(param Parameter, observed float64, ideal IdealConditions) ParameterVerdict {
	verdict := ParameterVerdict{
		Parameter: param,
		Observed:  observed,
		Status:    StatusUnknown,
	}

	rng, ok := ideal[param]
	if !ok {
		return verdict
	}

	verdict.Ideal = &rng
	switch {
	case observed < rng.Min:
		verdict.Status = StatusBelow
	case observed > rng.Max:
		verdict.Status = StatusAbove
	default:
		verdict.Status = StatusWithin
	}

	return verdict
}
