package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/facility-resolver/internal/store"
	"github.com/jonathan/facility-resolver/internal/types"
)

// The db layer satisfies the full reference-store contract.
var _ store.FacilityStore = (*DB)(nil)

// facilityColumns is the shared select list for facility rows.
const facilityColumns = `id, COALESCE(ccn, ''), facility_name, COALESCE(street_address, ''),
	COALESCE(city, ''), COALESCE(state, ''), COALESCE(zip_code, ''), COALESCE(bed_count, 0),
	COALESCE(ownership_type, ''), COALESCE(phone, ''), latitude, longitude, updated_at`

// distanceExpr is the store-evaluated great-circle distance in miles
// (spherical law of cosines, R = 3959). The acos argument is clamped so
// identical coordinates cannot drift past 1.0.
const distanceExpr = `3959 * acos(LEAST(1.0, GREATEST(-1.0,
	cos(radians($1)) * cos(radians(latitude)) * cos(radians(longitude) - radians($2)) +
	sin(radians($1)) * sin(radians(latitude)))))`

func scanFacility(row pgx.Rows) (types.FacilityRecord, error) {
	var f types.FacilityRecord
	err := row.Scan(&f.ID, &f.CCN, &f.FacilityName, &f.StreetAddress, &f.City, &f.State,
		&f.ZipCode, &f.BedCount, &f.OwnershipType, &f.Phone, &f.Latitude, &f.Longitude, &f.UpdatedAt)
	return f, err
}

// QueryByStateCity returns up to limit candidate records, filtered by
// state (case-insensitive exact) and city (exact) when supplied.
func (db *DB) QueryByStateCity(ctx context.Context, state, city string, limit int) ([]types.FacilityRecord, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities WHERE 1=1`
	args := []any{}
	argNum := 1

	if state != "" {
		query += fmt.Sprintf(" AND UPPER(state) = UPPER($%d)", argNum)
		args = append(args, state)
		argNum++
	}
	if city != "" {
		query += fmt.Sprintf(" AND city = $%d", argNum)
		args = append(args, city)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY facility_name ASC LIMIT $%d", argNum)
	args = append(args, limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query facilities by locality: %w", err)
	}
	defer rows.Close()

	return collectFacilities(rows)
}

// QueryByCriteria returns records matching every populated criterion,
// ordered ascending by facility name and capped at criteria.Limit.
func (db *DB) QueryByCriteria(ctx context.Context, criteria types.SearchCriteria) ([]types.FacilityRecord, error) {
	query, args := buildCriteriaQuery(criteria)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query facilities by criteria: %w", err)
	}
	defer rows.Close()

	return collectFacilities(rows)
}

// buildCriteriaQuery composes the criteria filters into a single query
// with positional arguments. Every populated criterion narrows the
// result via logical AND.
func buildCriteriaQuery(criteria types.SearchCriteria) (string, []any) {
	query := `SELECT ` + facilityColumns + ` FROM facilities WHERE 1=1`
	args := []any{}
	argNum := 1

	if criteria.Name != "" {
		query += fmt.Sprintf(" AND facility_name ILIKE $%d ESCAPE '\\'", argNum)
		args = append(args, "%"+escapeLike(criteria.Name)+"%")
		argNum++
	}
	if criteria.City != "" {
		query += fmt.Sprintf(" AND city = $%d", argNum)
		args = append(args, criteria.City)
		argNum++
	}
	if criteria.State != "" {
		query += fmt.Sprintf(" AND UPPER(state) = $%d", argNum)
		args = append(args, criteria.State)
		argNum++
	}
	if criteria.Zip != "" {
		query += fmt.Sprintf(" AND zip_code = $%d", argNum)
		args = append(args, criteria.Zip)
		argNum++
	}
	if criteria.MinCapacity != nil {
		query += fmt.Sprintf(" AND bed_count >= $%d", argNum)
		args = append(args, *criteria.MinCapacity)
		argNum++
	}
	if criteria.MaxCapacity != nil {
		query += fmt.Sprintf(" AND bed_count <= $%d", argNum)
		args = append(args, *criteria.MaxCapacity)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY facility_name ASC LIMIT $%d", argNum)
	args = append(args, criteria.Limit)

	return query, args
}

// likeEscaper neutralizes ILIKE metacharacters so a name criterion is a
// literal substring match.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// QueryNearby returns records within radiusMiles of the point, ordered
// ascending by the store-computed great-circle distance.
func (db *DB) QueryNearby(ctx context.Context, lat, lon, radiusMiles float64, limit int) ([]types.GeoResult, error) {
	query := `SELECT * FROM (
		SELECT ` + facilityColumns + `, ` + distanceExpr + ` AS distance_miles
		FROM facilities
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
	) candidates
	WHERE distance_miles <= $3
	ORDER BY distance_miles ASC
	LIMIT $4`

	rows, err := db.pool.Query(ctx, query, lat, lon, radiusMiles, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby facilities: %w", err)
	}
	defer rows.Close()

	var results []types.GeoResult
	for rows.Next() {
		var f types.FacilityRecord
		var distance float64
		if err := rows.Scan(&f.ID, &f.CCN, &f.FacilityName, &f.StreetAddress, &f.City, &f.State,
			&f.ZipCode, &f.BedCount, &f.OwnershipType, &f.Phone, &f.Latitude, &f.Longitude,
			&f.UpdatedAt, &distance); err != nil {
			return nil, fmt.Errorf("failed to scan nearby facility: %w", err)
		}
		results = append(results, types.GeoResult{Facility: f, DistanceMiles: distance})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read nearby facilities: %w", err)
	}
	return results, nil
}

// QueryWithCoordinates returns every record with non-null coordinates.
func (db *DB) QueryWithCoordinates(ctx context.Context) ([]types.FacilityRecord, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query facility coordinates: %w", err)
	}
	defer rows.Close()

	return collectFacilities(rows)
}

func collectFacilities(rows pgx.Rows) ([]types.FacilityRecord, error) {
	var facilities []types.FacilityRecord
	for rows.Next() {
		f, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan facility: %w", err)
		}
		facilities = append(facilities, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read facilities: %w", err)
	}
	return facilities, nil
}
