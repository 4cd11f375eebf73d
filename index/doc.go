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


// Package index builds and publishes the tag embedding index.
//
// An Index holds, per expert, one embedding vector for each distinct skill
// tag plus a centroid vector (the mean of the tag vectors). It is built
// once from the corpus, is immutable afterwards, and is shared by all
// concurrent match requests. The Holder type publishes the current Index by
// atomic reference so a rebuild can replace it without readers ever
// observing intermediate state.
package index
