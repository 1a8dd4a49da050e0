package agronomy

// Parameter identifies one of the seven measured soil/climate quantities.
type Parameter string

const (
	Nitrogen    Parameter = "N"
	Phosphorus  Parameter = "P"
	Potassium   Parameter = "K"
	Temperature Parameter = "temperature"
	Humidity    Parameter = "humidity"
	PH          Parameter = "ph"
	Rainfall    Parameter = "rainfall"
)

// FeatureOrder is the canonical field order: validation reports missing
// fields in this order and the model collaborator receives features in it.
var FeatureOrder = []Parameter{
	Nitrogen,
	Phosphorus,
	Potassium,
	Temperature,
	Humidity,
	PH,
	Rainfall,
}

// ExplanationOrder lists parameters in user-facing priority: climate
// macro-factors before soil nutrients.
var ExplanationOrder = []Parameter{
	Temperature,
	Rainfall,
	PH,
	Humidity,
	Nitrogen,
	Phosphorus,
	Potassium,
}

// FeatureColumns returns FeatureOrder as plain strings, for header checks
// and error payloads.
func FeatureColumns() []string {
	cols := make([]string, len(FeatureOrder))
	for i, p := range FeatureOrder {
		cols[i] = string(p)
	}
	return cols
}

// Range is a crop-specific ideal interval for one parameter. Min <= Max
// for every range in the knowledge base.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// IdealConditions maps parameters to their ideal ranges. A crop may omit
// parameters; absent entries are skipped during evaluation.
type IdealConditions map[Parameter]Range

// ObservationRecord holds one validated sample with all seven parameters.
type ObservationRecord map[Parameter]float64

// FeatureVector returns the observation values in canonical model order.
func (o ObservationRecord) FeatureVector() []float64 {
	vec := make([]float64, len(FeatureOrder))
	for i, p := range FeatureOrder {
		vec[i] = o[p]
	}
	return vec
}

// VerdictStatus classifies one observed value against one ideal range.
type VerdictStatus string

const (
	StatusWithin  VerdictStatus = "within"
	StatusBelow   VerdictStatus = "below"
	StatusAbove   VerdictStatus = "above"
	StatusUnknown VerdictStatus = "unknown"
)

// ParameterVerdict is the result of evaluating one observed value against
// a crop's ideal conditions. Ideal is nil when the crop defines no range
// for the parameter.
type ParameterVerdict struct {
	Parameter Parameter     `json:"parameter"`
	Observed  float64       `json:"observed"`
	Ideal     *Range        `json:"ideal,omitempty"`
	Status    VerdictStatus `json:"status"`
}

// CropRecord is one knowledge base entry: descriptive metadata plus the
// ideal-condition ranges used for scoring and explanations.
type CropRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Emoji       string          `json:"emoji"`
	Description string          `json:"description"`
	Tips        []string        `json:"tips"`
	Ideal       IdealConditions `json:"ideal_conditions"`
}

// SuitabilityResult summarizes how many of a crop's defined parameters the
// observation satisfies. TotalCount is zero when the crop defines no
// ranges (or is unknown); Score is zero in that case, not a computed low
// score.
type SuitabilityResult struct {
	Score        float64 `json:"score"`
	MatchedCount int     `json:"matched_count"`
	TotalCount   int     `json:"total_count"`
	Label        string  `json:"label"`
}

// RecommendationResponse is the orchestrator's output for one record.
type RecommendationResponse struct {
	Input           ObservationRecord `json:"input"`
	RecommendedCrop string            `json:"recommended_crop"`
	Crop            *CropRecord       `json:"crop,omitempty"`
	Explanations    []string          `json:"explanations"`
	Suitability     SuitabilityResult `json:"suitability"`
}
