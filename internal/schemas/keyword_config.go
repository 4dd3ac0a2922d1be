package schemas

// keywordConfigSchema constrains normalizer keyword-list files: two
// optional arrays of non-empty strings, nothing else.
const keywordConfigSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Facility name normalizer keyword lists",
  "type": "object",
  "properties": {
    "legal_suffixes": {
      "type": "array",
      "items": { "type": "string", "minLength": 1 }
    },
    "type_descriptors": {
      "type": "array",
      "items": { "type": "string", "minLength": 1 }
    }
  },
  "additionalProperties": false
}`

// ValidateKeywordConfig validates a keyword-list JSON document.
func ValidateKeywordConfig(data []byte) error {
	return ValidateJSONString(keywordConfigSchema, string(data))
}
