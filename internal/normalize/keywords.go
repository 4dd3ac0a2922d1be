package normalize

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/facility-resolver/internal/schemas"
)

// LoadKeywords reads a keyword-list JSON file, validates it against the
// keyword config schema, and returns the parsed lists. Empty lists in
// the file fall back to the built-in defaults so a partial override does
// not silently disable a normalization step.
func LoadKeywords(path string) (Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Keywords{}, fmt.Errorf("failed to read keywords file %s: %w", path, err)
	}

	if err := schemas.ValidateKeywordConfig(data); err != nil {
		return Keywords{}, fmt.Errorf("invalid keywords file %s: %w", path, err)
	}

	var kw Keywords
	if err := json.Unmarshal(data, &kw); err != nil {
		return Keywords{}, fmt.Errorf("failed to parse keywords file %s: %w", path, err)
	}

	defaults := DefaultKeywords()
	if len(kw.LegalSuffixes) == 0 {
		kw.LegalSuffixes = defaults.LegalSuffixes
	}
	if len(kw.TypeDescriptors) == 0 {
		kw.TypeDescriptors = defaults.TypeDescriptors
	}
	return kw, nil
}
