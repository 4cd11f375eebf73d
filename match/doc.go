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


// Package match scores experts against weighted query tags and assembles
// minimal teams covering a problem statement.
//
// The Matcher type implements a multi-stage ranking pipeline:
//   - Semantic scoring of the weighted query vector against expert centroids
//   - Per-tag similarity against every expert tag with a retention threshold
//   - Rank fusion with a department bias derived from the query
//
// On top of ranked results the package groups near-duplicate tags and runs
// greedy set cover to pick the smallest team covering the query tags.
package match
