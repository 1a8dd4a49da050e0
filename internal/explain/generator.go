package explain

import (
	"fmt"
	"strconv"

	"cropsense/domain/agronomy"
	"cropsense/domain/knowledge"
)

// FallbackSentence is returned when the predicted crop is not in the
// knowledge base, or defines no ideal conditions. Unknown labels degrade
// to this sentence instead of erroring.
const FallbackSentence = "Conditions are generally suitable for this crop."

// parameterSpec pairs a parameter with its presentation formatting, in
// user-facing order. One loop over this list replaces per-field branch
// logic.
type parameterSpec struct {
	Param agronomy.Parameter
	Label string
	Unit  string
	Icon  string
}

var parameterSpecs = []parameterSpec{
	{agronomy.Temperature, "Temperature", "°C", "🌡️"},
	{agronomy.Rainfall, "Rainfall", " mm", "🌧️"},
	{agronomy.PH, "Soil pH", "", "🧪"},
	{agronomy.Humidity, "Humidity", "%", "💧"},
	{agronomy.Nitrogen, "Nitrogen (N)", " kg/ha", "🌱"},
	{agronomy.Phosphorus, "Phosphorus (P)", " kg/ha", "🌱"},
	{agronomy.Potassium, "Potassium (K)", " kg/ha", "🌱"},
}

// Generator produces per-parameter "why this crop fits" sentences backed
// by the knowledge registry.
type Generator struct {
	registry *knowledge.Registry
}

// NewGenerator creates an explanation generator.
func NewGenerator(registry *knowledge.Registry) *Generator {
	return &Generator{registry: registry}
}

// Explain returns an ordered list of sentences describing how the
// observation relates to the crop's ideal conditions. The order always
// follows parameterSpecs regardless of verdicts. Out-of-range values get
// tolerant phrasing, never a hard rejection.
func (g *Generator) Explain(cropID string, obs agronomy.ObservationRecord) []string {
	crop, ok := g.registry.Lookup(cropID)
	if !ok {
		return []string{FallbackSentence}
	}

	sentences := make([]string, 0, len(parameterSpecs))
	for _, spec := range parameterSpecs {
		verdict := agronomy.Evaluate(spec.Param, obs[spec.Param], crop.Ideal)
		if verdict.Status == agronomy.StatusUnknown {
			continue
		}
		sentences = append(sentences, sentenceFor(spec, crop, verdict))
	}

	if len(sentences) == 0 {
		return []string{FallbackSentence}
	}
	return sentences
}

func sentenceFor(spec parameterSpec, crop agronomy.CropRecord, verdict agronomy.ParameterVerdict) string {
	observed := formatValue(verdict.Observed)
	rangeText := fmt.Sprintf("%s-%s%s", formatValue(verdict.Ideal.Min), formatValue(verdict.Ideal.Max), spec.Unit)

	switch verdict.Status {
	case agronomy.StatusBelow:
		return fmt.Sprintf("%s %s of %s%s is below the ideal range of %s, but %s can often tolerate lower values.",
			spec.Icon, spec.Label, observed, spec.Unit, rangeText, crop.Name)
	case agronomy.StatusAbove:
		return fmt.Sprintf("%s %s of %s%s is above the ideal range of %s, but %s can often tolerate higher values.",
			spec.Icon, spec.Label, observed, spec.Unit, rangeText, crop.Name)
	default:
		return fmt.Sprintf("%s %s of %s%s is within the ideal range of %s for %s.",
			spec.Icon, spec.Label, observed, spec.Unit, rangeText, crop.Name)
	}
}

// formatValue renders numbers without trailing zeros: 20.8 stays "20.8",
// 20.0 becomes "20".
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
