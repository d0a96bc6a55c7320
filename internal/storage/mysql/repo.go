package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"gymfinder/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
func valJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// buildWhere turns the coarse filters into a WHERE clause shared by
// FindCandidates and CountCandidates, so list and count can never disagree.
func buildWhere(f domain.CoarseFilters) (string, []any) {
	var conds []string
	var args []any

	if f.City != nil && *f.City != "" {
		conds = append(conds, "city LIKE CONCAT('%', ?, '%')")
		args = append(args, *f.City)
	}
	if f.Keyword != nil && *f.Keyword != "" {
		conds = append(conds, "(name LIKE CONCAT('%', ?, '%') OR local_name LIKE CONCAT('%', ?, '%') OR address LIKE CONCAT('%', ?, '%') OR description LIKE CONCAT('%', ?, '%'))")
		kw := *f.Keyword
		args = append(args, kw, kw, kw, kw)
	}
	if f.Type != nil && *f.Type != "" {
		conds = append(conds, "type = ?")
		args = append(args, *f.Type)
	}
	if len(f.Programs) > 0 {
		ors := make([]string, 0, len(f.Programs))
		for _, p := range f.Programs {
			ors = append(ors, "JSON_CONTAINS(programs, JSON_QUOTE(?))")
			args = append(args, p)
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *Repo) FindCandidates(ctx context.Context, f domain.CoarseFilters) ([]domain.Venue, error) {
	where, args := buildWhere(f)
	rows, err := r.db.QueryContext(ctx, findCandidatesSQL+where+candidatesOrderSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Venue
	for rows.Next() {
		v, err := scanGym(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) CountCandidates(ctx context.Context, f domain.CoarseFilters) (int, error) {
	where, args := buildWhere(f)
	var n int
	if err := r.db.QueryRowContext(ctx, countCandidatesSQL+where, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repo) GetVenue(ctx context.Context, id int64) (domain.Venue, error) {
	row := r.db.QueryRowContext(ctx, getGymSQL, id)
	v, err := scanGym(row)
	if err == sql.ErrNoRows {
		return domain.Venue{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Venue{}, err
	}
	return v, nil
}

func (r *Repo) ListCities(ctx context.Context) ([]domain.CityCount, error) {
	rows, err := r.db.QueryContext(ctx, listCitiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CityCount
	for rows.Next() {
		var cc domain.CityCount
		if err := rows.Scan(&cc.City, &cc.Count); err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}

func (r *Repo) ListCountries(ctx context.Context) ([]domain.CountryCities, error) {
	rows, err := r.db.QueryContext(ctx, listCountriesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Rows arrive grouped by country, cities already ordered by count.
	var out []domain.CountryCities
	for rows.Next() {
		var country string
		var cc domain.CityCount
		if err := rows.Scan(&country, &cc.City, &cc.Count); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].Country != country {
			out = append(out, domain.CountryCities{Country: country})
		}
		last := &out[len(out)-1]
		last.Cities = append(last.Cities, cc)
	}
	return out, rows.Err()
}

func (r *Repo) UpsertVenue(ctx context.Context, v domain.Venue) error {
	_, err := r.db.ExecContext(ctx, upsertGymSQL,
		v.ID,
		v.Name,
		valStr(v.LocalName),
		valStr(v.Address),
		valStr(v.Description),
		valStr(v.City),
		valStr(v.District),
		valStr(v.Country),
		valF64(v.Lat),
		valF64(v.Lng),
		v.Type,
		v.Certified,
		valJSON(v.Programs),
		valJSON(v.Tags),
		v.Rating,
		v.ReviewCount,
		valJSON(v.Schedule),
		v.Verified,
		v.Featured,
		valJSON(v.Images),
		string(v.RawJSON),
	)
	return err
}

func (r *Repo) LogMiss(ctx context.Context, id int64, status int, reason string) error {
	_, err := r.db.ExecContext(ctx, insertMissSQL, id, status, reason)
	return err
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface{ Scan(dest ...any) error }

func scanGym(row rowScanner) (domain.Venue, error) {
	var v domain.Venue
	var (
		localName, address, desc    sql.NullString
		city, district, country     sql.NullString
		lat, lng                    sql.NullFloat64
		programsJSON, tagsJSON      []byte
		scheduleJSON, imagesJSON    []byte
	)
	if err := row.Scan(
		&v.ID,
		&v.Name,
		&localName,
		&address,
		&desc,
		&city, &district, &country,
		&lat, &lng,
		&v.Type,
		&v.Certified,
		&programsJSON, &tagsJSON,
		&v.Rating,
		&v.ReviewCount,
		&scheduleJSON,
		&v.Verified,
		&v.Featured,
		&imagesJSON,
	); err != nil {
		return domain.Venue{}, err
	}

	if localName.Valid {
		s := localName.String
		v.LocalName = &s
	}
	if address.Valid {
		s := address.String
		v.Address = &s
	}
	if desc.Valid {
		s := desc.String
		v.Description = &s
	}
	if city.Valid {
		s := city.String
		v.City = &s
	}
	if district.Valid {
		s := district.String
		v.District = &s
	}
	if country.Valid {
		s := country.String
		v.Country = &s
	}
	if lat.Valid && lng.Valid {
		la, ln := lat.Float64, lng.Float64
		v.Lat, v.Lng = &la, &ln
	}

	_ = json.Unmarshal(programsJSON, &v.Programs)
	_ = json.Unmarshal(tagsJSON, &v.Tags)
	_ = json.Unmarshal(scheduleJSON, &v.Schedule)
	_ = json.Unmarshal(imagesJSON, &v.Images)
	return v, nil
}
