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


// Package openai implements the ai interfaces using OpenAI-compatible APIs.
//
// The implementations work with any OpenAI-compatible service, including
// hosted OpenAI as well as local servers such as Ollama, LocalAI, and vLLM.
// Tag extraction uses JSON-mode chat completions with a strict response
// schema, markdown fence stripping, and light JSON repair to tolerate
// imperfect model output.
package openai
