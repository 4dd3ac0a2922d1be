package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/facility-resolver/internal/types"
)

func intPtr(v int) *int { return &v }

func TestBuildCriteriaQueryNoFilters(t *testing.T) {
	query, args := buildCriteriaQuery(types.SearchCriteria{Limit: 50})

	assert.Contains(t, query, "WHERE 1=1")
	assert.Contains(t, query, "ORDER BY facility_name ASC LIMIT $1")
	assert.NotContains(t, query, "AND")
	require.Len(t, args, 1)
	assert.Equal(t, 50, args[0])
}

func TestBuildCriteriaQueryNameIsSubstringMatch(t *testing.T) {
	query, args := buildCriteriaQuery(types.SearchCriteria{Name: "sunrise", Limit: 50})

	assert.Contains(t, query, "facility_name ILIKE $1 ESCAPE '\\'")
	require.Len(t, args, 2)
	assert.Equal(t, "%sunrise%", args[0])
}

func TestBuildCriteriaQueryNameEscapesWildcards(t *testing.T) {
	// %, _ and the escape character itself must match literally, not as
	// ILIKE metacharacters.
	query, args := buildCriteriaQuery(types.SearchCriteria{Name: `100% back\up_unit`, Limit: 50})

	assert.Contains(t, query, "ESCAPE '\\'")
	require.Len(t, args, 2)
	assert.Equal(t, `%100\% back\\up\_unit%`, args[0])
}

func TestBuildCriteriaQueryAllFilters(t *testing.T) {
	criteria := types.SearchCriteria{
		Name:        "sunrise",
		City:        "Casper",
		State:       "WY",
		Zip:         "82601",
		MinCapacity: intPtr(20),
		MaxCapacity: intPtr(120),
		Limit:       25,
	}
	query, args := buildCriteriaQuery(criteria)

	assert.Contains(t, query, "facility_name ILIKE $1")
	assert.Contains(t, query, "city = $2")
	assert.Contains(t, query, "UPPER(state) = $3")
	assert.Contains(t, query, "zip_code = $4")
	assert.Contains(t, query, "bed_count >= $5")
	assert.Contains(t, query, "bed_count <= $6")
	assert.Contains(t, query, "ORDER BY facility_name ASC LIMIT $7")

	require.Len(t, args, 7)
	assert.Equal(t, []any{"%sunrise%", "Casper", "WY", "82601", 20, 120, 25}, args)
}

func TestBuildCriteriaQueryZeroCapacityIsAFilter(t *testing.T) {
	// A pointer to zero is an explicit bound, unlike a nil pointer.
	query, args := buildCriteriaQuery(types.SearchCriteria{MinCapacity: intPtr(0), Limit: 50})

	assert.Contains(t, query, "bed_count >= $1")
	require.Len(t, args, 2)
	assert.Equal(t, 0, args[0])
}

func TestBuildCriteriaQueryPlaceholdersMatchArgs(t *testing.T) {
	criteria := types.SearchCriteria{City: "Casper", Zip: "82601", Limit: 10}
	query, args := buildCriteriaQuery(criteria)

	// Positional placeholders must be contiguous from $1 regardless of
	// which filters are populated.
	assert.Contains(t, query, "city = $1")
	assert.Contains(t, query, "zip_code = $2")
	assert.Contains(t, query, "LIMIT $3")
	assert.NotContains(t, query, "$4")
	assert.Len(t, args, 3)
}

func TestDistanceExprClampsAcosArgument(t *testing.T) {
	// Identical coordinates can push the acos argument past 1.0 in
	// floating point; the SQL must clamp before acos.
	assert.Contains(t, distanceExpr, "LEAST(1.0")
	assert.Contains(t, distanceExpr, "GREATEST(-1.0")
	assert.True(t, strings.HasPrefix(distanceExpr, "3959 * acos("))
}
