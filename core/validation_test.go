package core

import (
	"errors"
	"testing"
)

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name      string
		tags      []string
		weights   []float64
		threshold float64
		wantErr   error
	}{
		{
			name:      "valid query",
			tags:      []string{"robotics", "machine learning"},
			weights:   []float64{1.0, 0.7},
			threshold: 0.7,
			wantErr:   nil,
		},
		{
			name:      "empty query is valid",
			tags:      nil,
			weights:   nil,
			threshold: 0.7,
			wantErr:   nil,
		},
		{
			name:      "threshold at bounds",
			tags:      []string{"robotics"},
			weights:   []float64{1.0},
			threshold: 0,
			wantErr:   nil,
		},
		{
			name:      "length mismatch",
			tags:      []string{"robotics", "vision"},
			weights:   []float64{1.0},
			threshold: 0.7,
			wantErr:   ErrTagWeightMismatch,
		},
		{
			name:      "too many tags",
			tags:      []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"},
			weights:   []float64{1, 1, 1, 1, 1, 1, 1, 1, 1},
			threshold: 0.7,
			wantErr:   ErrTooManyTags,
		},
		{
			name:      "zero weight",
			tags:      []string{"robotics"},
			weights:   []float64{0},
			threshold: 0.7,
			wantErr:   ErrNonPositiveWeight,
		},
		{
			name:      "negative weight",
			tags:      []string{"robotics"},
			weights:   []float64{-0.5},
			threshold: 0.7,
			wantErr:   ErrNonPositiveWeight,
		},
		{
			name:      "threshold above one",
			tags:      []string{"robotics"},
			weights:   []float64{1.0},
			threshold: 1.1,
			wantErr:   ErrInvalidThreshold,
		},
		{
			name:      "negative threshold",
			tags:      []string{"robotics"},
			weights:   []float64{1.0},
			threshold: -0.1,
			wantErr:   ErrInvalidThreshold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(tt.tags, tt.weights, tt.threshold)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateQuery() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateQuery() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidQuery) {
				t.Errorf("ValidateQuery() error = %v, should wrap ErrInvalidQuery", err)
			}
		})
	}
}

func TestValidateExpertRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  *ExpertRecord
		wantErr error
	}{
		{
			name: "valid record",
			record: &ExpertRecord{
				Name:    "Prof. A. Sharma",
				Entries: []ExpertEntry{{Tags: []string{"robotics"}}},
			},
			wantErr: nil,
		},
		{
			name: "entries without tags are valid at load time",
			record: &ExpertRecord{
				Name:    "Prof. B. Rao",
				Entries: []ExpertEntry{{}},
			},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidExpertRecord,
		},
		{
			name: "empty name",
			record: &ExpertRecord{
				Entries: []ExpertEntry{{Tags: []string{"robotics"}}},
			},
			wantErr: ErrEmptyExpertName,
		},
		{
			name:    "no entries",
			record:  &ExpertRecord{Name: "Prof. C. Iyer"},
			wantErr: ErrNoEntries,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExpertRecord(tt.record)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateExpertRecord() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExpertRecord() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
