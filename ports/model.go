package ports

import "context"

// ModelPort is the external crop classification collaborator. The model
// is opaque: an ordered feature vector goes in, a crop label comes out.
// Any internal model failure surfaces as a single error; callers do not
// distinguish failure subtypes.
type ModelPort interface {
	// Predict maps the feature vector [N, P, K, temperature, humidity,
	// ph, rainfall] to a crop label.
	Predict(ctx context.Context, features []float64) (string, error)
}
