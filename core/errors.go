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

import "errors"

// Domain validation errors
var (
	// ErrInvalidQuery indicates a query failed validation.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrTagWeightMismatch indicates the tag and weight lists differ in length.
	ErrTagWeightMismatch = errors.New("tag and weight counts differ")

	// ErrNonPositiveWeight indicates a query weight is zero or negative.
	ErrNonPositiveWeight = errors.New("weights must be positive")

	// ErrTooManyTags indicates the query exceeds MaxQueryTags.
	ErrTooManyTags = errors.New("too many query tags")

	// ErrInvalidThreshold indicates a similarity threshold outside [0, 1].
	ErrInvalidThreshold = errors.New("threshold must be between 0 and 1")

	// ErrInvalidExpertRecord indicates an ExpertRecord failed validation.
	ErrInvalidExpertRecord = errors.New("invalid expert record")

	// ErrEmptyExpertName indicates the record Name field is empty.
	ErrEmptyExpertName = errors.New("expert name cannot be empty")

	// ErrNoEntries indicates a record carries no extraction entries.
	ErrNoEntries = errors.New("expert record has no entries")
)
