package suitability

import (
	"testing"

	"cropsense/domain/agronomy"
)

func fullConditions() agronomy.IdealConditions {
	return agronomy.IdealConditions{
		agronomy.Nitrogen:    {Min: 60, Max: 99},
		agronomy.Phosphorus:  {Min: 35, Max: 60},
		agronomy.Potassium:   {Min: 35, Max: 45},
		agronomy.Temperature: {Min: 20, Max: 35},
		agronomy.Humidity:    {Min: 80, Max: 85},
		agronomy.PH:          {Min: 5.0, Max: 7.5},
		agronomy.Rainfall:    {Min: 150, Max: 300},
	}
}

func TestAggregate_AllWithin(t *testing.T) {
	obs := agronomy.ObservationRecord{
		agronomy.Nitrogen: 90, agronomy.Phosphorus: 42, agronomy.Potassium: 43,
		agronomy.Temperature: 20.8, agronomy.Humidity: 82, agronomy.PH: 6.5, agronomy.Rainfall: 202.9,
	}

	result := Aggregate(obs, fullConditions(), DefaultThresholds())
	if result.Score != 1.0 {
		t.Errorf("Expected score 1.0, got %v", result.Score)
	}
	if result.MatchedCount != 7 || result.TotalCount != 7 {
		t.Errorf("Expected 7/7, got %d/%d", result.MatchedCount, result.TotalCount)
	}
	if result.Label != LabelOptimal {
		t.Errorf("Expected optimal label, got %s", result.Label)
	}
}

func TestAggregate_NoneWithin(t *testing.T) {
	obs := agronomy.ObservationRecord{
		agronomy.Nitrogen: 0, agronomy.Phosphorus: 0, agronomy.Potassium: 0,
		agronomy.Temperature: -5, agronomy.Humidity: 0, agronomy.PH: 14, agronomy.Rainfall: 0,
	}

	result := Aggregate(obs, fullConditions(), DefaultThresholds())
	if result.Score != 0.0 {
		t.Errorf("Expected score 0.0, got %v", result.Score)
	}
	if result.Label != LabelPoor {
		t.Errorf("Expected poor label, got %s", result.Label)
	}
}

func TestAggregate_PartialRangesSkipped(t *testing.T) {
	// Crop defines only three ranges; the other four parameters must not
	// count toward the total.
	ideal := agronomy.IdealConditions{
		agronomy.Temperature: {Min: 20, Max: 35},
		agronomy.PH:          {Min: 6.0, Max: 8.0},
		agronomy.Rainfall:    {Min: 100, Max: 200},
	}
	obs := agronomy.ObservationRecord{
		agronomy.Nitrogen: 999, agronomy.Phosphorus: 999, agronomy.Potassium: 999,
		agronomy.Temperature: 25, agronomy.Humidity: 999, agronomy.PH: 7.0, agronomy.Rainfall: 50,
	}

	result := Aggregate(obs, ideal, DefaultThresholds())
	if result.TotalCount != 3 {
		t.Errorf("Expected total 3, got %d", result.TotalCount)
	}
	if result.MatchedCount != 2 {
		t.Errorf("Expected matched 2, got %d", result.MatchedCount)
	}
	if result.Score < 0 || result.Score > 1 {
		t.Errorf("Score %v outside [0,1]", result.Score)
	}
	if result.Label != LabelGood {
		t.Errorf("Expected good label for 2/3, got %s", result.Label)
	}
}

func TestAggregate_NoDefinedRanges(t *testing.T) {
	obs := agronomy.ObservationRecord{agronomy.Temperature: 25}

	result := Aggregate(obs, agronomy.IdealConditions{}, DefaultThresholds())
	if result.TotalCount != 0 {
		t.Errorf("Expected total 0, got %d", result.TotalCount)
	}
	if result.Score != 0 {
		t.Errorf("Expected zero score, got %v", result.Score)
	}
	if result.Label != LabelUndefined {
		t.Errorf("Expected undefined label, got %s", result.Label)
	}
}

func TestThresholds_LabelBoundaries(t *testing.T) {
	thresholds := DefaultThresholds()

	tests := []struct {
		score float64
		want  string
	}{
		{1.0, LabelOptimal},
		{0.8, LabelOptimal},
		{0.79, LabelGood},
		{0.6, LabelGood},
		{0.59, LabelPoor},
		{0.0, LabelPoor},
	}

	for _, tt := range tests {
		if got := thresholds.Label(tt.score); got != tt.want {
			t.Errorf("Label(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestThresholds_Validate(t *testing.T) {
	if err := DefaultThresholds().Validate(); err != nil {
		t.Errorf("Default thresholds should validate: %v", err)
	}
	if err := (Thresholds{Optimal: 0.5, Good: 0.7}).Validate(); err == nil {
		t.Error("Expected error when good exceeds optimal")
	}
	if err := (Thresholds{Optimal: 1.2, Good: 0.5}).Validate(); err == nil {
		t.Error("Expected error for threshold above 1")
	}
}
