package app

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"cropsense/domain/agronomy"
	"cropsense/domain/knowledge"
	"cropsense/internal/errors"
	"cropsense/internal/explain"
	"cropsense/internal/suitability"
	"cropsense/internal/validation"
	"cropsense/ports"
)

// RecommendedCropColumn is the column appended to each successful batch
// row, matching the single-prediction response field.
const RecommendedCropColumn = "recommended_crop"

// ValidationError reports the complete set of missing or non-numeric
// fields for one record, in canonical field order.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// BatchRowResult is the outcome for one row of a batch. Exactly one of
// Row or Error is populated; the result list is index-aligned with the
// input rows.
type BatchRowResult struct {
	Index         int                        `json:"index"`
	Row           map[string]interface{}     `json:"row,omitempty"`
	Suitability   *agronomy.SuitabilityResult `json:"suitability,omitempty"`
	Error         string                     `json:"error,omitempty"`
	MissingFields []string                   `json:"missing_fields,omitempty"`
}

// Ok reports whether the row produced a prediction.
func (r BatchRowResult) Ok() bool {
	return r.Error == ""
}

// RecommendationService coordinates validation, model prediction and
// response enrichment. Per request it moves through validate -> predict
// -> enrich; every step is a pure function of the request plus the
// immutable knowledge base, so the service is safe for concurrent use.
type RecommendationService struct {
	model       ports.ModelPort
	registry    *knowledge.Registry
	explainer   *explain.Generator
	thresholds  suitability.Thresholds
	concurrency int
}

// NewRecommendationService creates the orchestrator. Concurrency bounds
// the number of in-flight model calls during batch prediction.
func NewRecommendationService(model ports.ModelPort, registry *knowledge.Registry, thresholds suitability.Thresholds, concurrency int) *RecommendationService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &RecommendationService{
		model:       model,
		registry:    registry,
		explainer:   explain.NewGenerator(registry),
		thresholds:  thresholds,
		concurrency: concurrency,
	}
}

// Recommend handles one raw record: validation failures return a
// *ValidationError listing every offending field; model failures return
// an opaque external-service error. A predicted label absent from the
// knowledge base is not an error.
func (s *RecommendationService) Recommend(ctx context.Context, raw map[string]interface{}) (*agronomy.RecommendationResponse, error) {
	result := validation.Validate(raw)
	if !result.Valid() {
		return nil, &ValidationError{Fields: result.Missing}
	}

	label, err := s.model.Predict(ctx, result.Observation.FeatureVector())
	if err != nil {
		return nil, errors.ExternalServiceError("model", err)
	}

	return s.enrich(result.Observation, label), nil
}

// enrich assembles the response for a validated observation and predicted
// label. Unknown labels degrade to the fallback explanation and an
// undefined suitability result.
func (s *RecommendationService) enrich(obs agronomy.ObservationRecord, label string) *agronomy.RecommendationResponse {
	response := &agronomy.RecommendationResponse{
		Input:           obs,
		RecommendedCrop: label,
		Explanations:    s.explainer.Explain(label, obs),
		Suitability:     suitability.Undefined(),
	}

	if crop, ok := s.registry.Lookup(label); ok {
		response.Crop = &crop
		response.Suitability = suitability.Aggregate(obs, crop.Ideal, s.thresholds)
	}

	return response
}

// RecommendBatch applies Recommend to each record. Rows are independent:
// one row's failure never aborts its siblings, and results come back in
// input order. Original columns are preserved in each successful row with
// the predicted crop appended.
func (s *RecommendationService) RecommendBatch(ctx context.Context, records []map[string]interface{}) []BatchRowResult {
	results := make([]BatchRowResult, len(records))

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for i, record := range records {
		i, record := i, record
		g.Go(func() error {
			// Row failures land in the result slot, never in the group:
			// sibling rows must keep going.
			results[i] = s.recommendRow(ctx, i, record)
			return nil
		})
	}
	g.Wait()

	return results
}

func (s *RecommendationService) recommendRow(ctx context.Context, index int, record map[string]interface{}) BatchRowResult {
	if err := ctx.Err(); err != nil {
		return BatchRowResult{Index: index, Error: "canceled"}
	}

	result := validation.Validate(record)
	if !result.Valid() {
		return BatchRowResult{
			Index:         index,
			Error:         "missing or invalid fields",
			MissingFields: result.Missing,
		}
	}

	label, err := s.model.Predict(ctx, result.Observation.FeatureVector())
	if err != nil {
		return BatchRowResult{Index: index, Error: "prediction failed"}
	}

	row := make(map[string]interface{}, len(record)+1)
	for k, v := range record {
		row[k] = v
	}
	row[RecommendedCropColumn] = label

	out := BatchRowResult{Index: index, Row: row}
	if crop, ok := s.registry.Lookup(label); ok {
		agg := suitability.Aggregate(result.Observation, crop.Ideal, s.thresholds)
		out.Suitability = &agg
	}
	return out
}
