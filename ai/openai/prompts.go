package openai

import (
	"fmt"
	"strings"

	"github.com/scholarch/expertmatch/ai"
)

const extractionResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "required_tags": {
      "type": "array",
      "maxItems": %d,
      "items": {
        "type": "string"
      }
    },
    "key_domain": {
      "type": "object",
      "additionalProperties": {
        "type": "number",
        "minimum": 0,
        "maximum": 1
      }
    },
    "explanation": {
      "type": "string"
    }
  },
  "required": ["required_tags", "key_domain", "explanation"],
  "additionalProperties": false
}`

const extractionPromptTemplate = `Analyze the given research problem statement and extract the technical expertise required to solve it. Return the result as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- "required_tags" holds the most precise, non-overlapping technical terms (max %d), in order of importance, most important first. Avoid redundant or overly broad terms: do not include both "machine learning" and "deep learning", choose the most specific and relevant one. Tags should read like what an expert would list in their own skill profile.
- "key_domain" maps each domain required to solve the problem to the degree of importance of expertise from that domain, from 0 to 1. Choose domain names from this list and do not skip an important domain just because a similar one is already included: %s.
- "explanation" briefly describes how the problem can be approached using the required tags.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
{"required_tags": ["remote sensing", "wildfire modeling", "convolutional neural networks"], "key_domain": {"Computational and Data Sciences (CDS)": 0.9, "Centre for Ecological Sciences (CES)": 0.1}, "explanation": "Remote sensing is needed for data acquisition, wildfire modeling for simulation, and CNNs for image analysis."}`

// buildSystemPrompt assembles the extraction system prompt for the given
// tag budget.
func buildSystemPrompt(maxTags int) string {
	schema := fmt.Sprintf(extractionResponseSchema, maxTags)
	domains := strings.Join(ai.DomainCatalog, ", ")
	return fmt.Sprintf(extractionPromptTemplate, schema, maxTags, domains)
}
