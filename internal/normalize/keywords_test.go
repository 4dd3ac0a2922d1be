package normalize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeKeywordsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keywords.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadKeywords(t *testing.T) {
	path := writeKeywordsFile(t, `{
		"legal_suffixes": ["gmbh", "sarl"],
		"type_descriptors": ["pflegeheim"]
	}`)

	kw, err := LoadKeywords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"gmbh", "sarl"}, kw.LegalSuffixes)
	assert.Equal(t, []string{"pflegeheim"}, kw.TypeDescriptors)
}

func TestLoadKeywordsPartialOverrideKeepsDefaults(t *testing.T) {
	path := writeKeywordsFile(t, `{"legal_suffixes": ["gmbh"]}`)

	kw, err := LoadKeywords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"gmbh"}, kw.LegalSuffixes)
	// Omitted lists fall back so normalization steps never vanish.
	assert.Equal(t, DefaultKeywords().TypeDescriptors, kw.TypeDescriptors)
}

func TestLoadKeywordsEmptyObjectIsAllDefaults(t *testing.T) {
	path := writeKeywordsFile(t, `{}`)

	kw, err := LoadKeywords(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultKeywords(), kw)
}

func TestLoadKeywordsRejectsUnknownKeys(t *testing.T) {
	path := writeKeywordsFile(t, `{"legal_sufixes": ["llc"]}`)

	_, err := LoadKeywords(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid keywords file")
}

func TestLoadKeywordsRejectsWrongTypes(t *testing.T) {
	path := writeKeywordsFile(t, `{"legal_suffixes": [1, 2]}`)

	_, err := LoadKeywords(path)
	assert.Error(t, err)
}

func TestLoadKeywordsMissingFile(t *testing.T) {
	_, err := LoadKeywords("/nonexistent/keywords.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read keywords file")
}
