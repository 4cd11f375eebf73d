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


package openai

import "strings"

// repairJSON attempts to fix common JSON formatting issues in LLM responses.
// It specifically handles missing opening quotes before object keys, e.g.
// `, explanation":` becomes `, "explanation":`.
func repairJSON(s string) string {
	in := []rune(s)
	var out strings.Builder
	out.Grow(len(s) + 16)

	i := 0
	for i < len(in) {
		ch := in[i]
		out.WriteRune(ch)
		i++

		if ch != '{' && ch != ',' {
			continue
		}

		// Skip whitespace after { or ,
		for i < len(in) && (in[i] == ' ' || in[i] == '\n' || in[i] == '\t') {
			out.WriteRune(in[i])
			i++
		}

		// A key must start with a quote; if it starts with a letter instead,
		// capture the key name and re-emit it quoted when a `":` follows.
		if i >= len(in) || in[i] == '"' || !isLetter(in[i]) {
			continue
		}

		keyStart := i
		for i < len(in) && (isLetter(in[i]) || in[i] == '_' || in[i] == ' ') {
			i++
		}

		key := string(in[keyStart:i])
		if i < len(in) && in[i] == '"' {
			// Key was missing only its opening quote
			out.WriteRune('"')
			out.WriteString(key)
		} else {
			// Not the pattern we repair; emit unchanged
			out.WriteString(key)
		}
	}

	return out.String()
}

// isLetter returns true if the rune is an ASCII letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
