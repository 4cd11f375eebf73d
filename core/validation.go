// Copyright 2026 Scholarch Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateQuery validates the shape of a match query.
//
// Validation rules:
//   - Tags and weights must have equal length
//   - At most MaxQueryTags tags
//   - All weights must be positive
//   - Threshold must be within [0, 1]
//
// An empty tag list is valid: matching an empty query yields an empty
// result set, not an error.
func ValidateQuery(tags []string, weights []float64, threshold float64) error {
	if len(tags) != len(weights) {
		return fmt.Errorf("%w: %w: %d tags, %d weights",
			ErrInvalidQuery, ErrTagWeightMismatch, len(tags), len(weights))
	}

	if len(tags) > MaxQueryTags {
		return fmt.Errorf("%w: %w: got %d, max %d",
			ErrInvalidQuery, ErrTooManyTags, len(tags), MaxQueryTags)
	}

	for i, weight := range weights {
		if weight <= 0 {
			return fmt.Errorf("%w: %w: weight %v at position %d",
				ErrInvalidQuery, ErrNonPositiveWeight, weight, i)
		}
	}

	if threshold < 0 || threshold > 1 {
		return fmt.Errorf("%w: %w: got %v", ErrInvalidQuery, ErrInvalidThreshold, threshold)
	}

	return nil
}

// ValidateExpertRecord validates a corpus record according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - At least one extraction entry must be present
//
// NOT validated:
//   - Tags (a record whose merged tag set is empty is skipped at index
//     build time, not rejected at load time)
//   - Department, BaseURL (optional descriptive fields)
func ValidateExpertRecord(record *ExpertRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidExpertRecord)
	}

	if record.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidExpertRecord, ErrEmptyExpertName)
	}

	if len(record.Entries) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidExpertRecord, ErrNoEntries)
	}

	return nil
}
