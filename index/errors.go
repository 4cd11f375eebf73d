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


package index

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrEmbeddingCount is returned when the embedder returns a different
	// number of vectors than tags submitted.
	ErrEmbeddingCount = errors.New("embedding count does not match tag count")

	// ErrInvalidMaxAttempts is returned when a retry attempt count is not positive.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")
)
