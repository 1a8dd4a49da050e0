package profiling

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"cropsense/domain/agronomy"
	"cropsense/internal/validation"
)

// ParameterSummary holds distribution statistics for one feature column
// across a batch. The dashboard charts are drawn from these.
type ParameterSummary struct {
	Parameter  string  `json:"parameter"`
	Count      int     `json:"count"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Median     float64 `json:"median"`
	Q25        float64 `json:"q25"`
	Q75        float64 `json:"q75"`
	Skewness   float64 `json:"skewness"`
	ExKurtosis float64 `json:"ex_kurtosis"`
}

// BatchSummary describes the distribution of every feature column in a
// batch, in canonical parameter order. Columns with no numeric values are
// reported with Count 0.
type BatchSummary struct {
	Rows       int                `json:"rows"`
	Parameters []ParameterSummary `json:"parameters"`
}

// Summarize profiles the feature columns of a batch of raw records.
// Non-numeric cells are skipped per column rather than failing the
// summary; the orchestrator reports them per row separately.
func Summarize(records []map[string]interface{}) BatchSummary {
	summary := BatchSummary{
		Rows:       len(records),
		Parameters: make([]ParameterSummary, 0, len(agronomy.FeatureOrder)),
	}

	for _, param := range agronomy.FeatureOrder {
		values := columnValues(records, string(param))
		summary.Parameters = append(summary.Parameters, summarizeColumn(string(param), values))
	}

	return summary
}

func columnValues(records []map[string]interface{}, column string) []float64 {
	values := make([]float64, 0, len(records))
	for _, record := range records {
		raw, ok := record[column]
		if !ok {
			continue
		}
		if v, ok := validation.CoerceNumeric(raw); ok {
			values = append(values, v)
		}
	}
	return values
}

func summarizeColumn(param string, values []float64) ParameterSummary {
	summary := ParameterSummary{Parameter: param, Count: len(values)}
	if len(values) == 0 {
		return summary
	}

	// montanaflynn/stats only errors on empty input, which is handled above.
	summary.Mean, _ = stats.Mean(values)
	summary.StdDev, _ = stats.StandardDeviation(values)
	summary.Min, _ = stats.Min(values)
	summary.Max, _ = stats.Max(values)
	summary.Median, _ = stats.Median(values)
	summary.Q25, _ = stats.Percentile(values, 25)
	summary.Q75, _ = stats.Percentile(values, 75)

	if len(values) >= 3 {
		summary.Skewness = stat.Skew(values, nil)
	}
	if len(values) >= 4 {
		summary.ExKurtosis = stat.ExKurtosis(values, nil)
	}

	return summary
}
