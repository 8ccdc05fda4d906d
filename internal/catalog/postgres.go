package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"steelcheck/internal/section"
)

// Postgres serves the section catalog from a `sections` table. Stored values
// are already in mm units; Derive fills whatever a row left blank.
type Postgres struct {
	db     *sql.DB
	source string
}

func NewPostgres(db *sql.DB, source string) *Postgres {
	return &Postgres{db: db, source: source}
}

func (r *Postgres) Source() string { return r.source }

const sectionColumns = `name, family, d, bf, tf, tw, hw, b, t,
	bf_2tf, hw_tw, b_t, d_t, d_tw,
	a, ix, iy, sx, sy, zx, zy, rx, ry, rv, j, cw, xo, yo, ro, h, weight`

func scanSection(rows *sql.Rows) (section.Properties, error) {
	var p section.Properties
	var fam string
	err := rows.Scan(&p.Name, &fam, &p.D, &p.Bf, &p.Tf, &p.Tw, &p.Hw, &p.B, &p.T,
		&p.BfTwoTf, &p.HwTw, &p.BT, &p.DT, &p.DTw,
		&p.A, &p.Ix, &p.Iy, &p.Sx, &p.Sy, &p.Zx, &p.Zy, &p.Rx, &p.Ry, &p.Rv,
		&p.J, &p.Cw, &p.Xo, &p.Yo, &p.Ro, &p.H, &p.Weight)
	if err != nil {
		return section.Properties{}, err
	}
	f, err := section.ParseFamily(fam)
	if err != nil {
		return section.Properties{}, err
	}
	p.Family = f
	Derive(&p)
	return p, nil
}

func (r *Postgres) Lookup(ctx context.Context, name string, family section.Family) (section.Properties, error) {
	query := "SELECT " + sectionColumns + " FROM sections WHERE source=$1 AND upper(name)=upper($2)"
	args := []any{r.source, name}
	if family != "" {
		query += " AND family=$3"
		args = append(args, string(family))
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return section.Properties{}, fmt.Errorf("catalog query: %w", err)
	}
	defer rows.Close()

	var matches []section.Properties
	for rows.Next() {
		p, err := scanSection(rows)
		if err != nil {
			return section.Properties{}, fmt.Errorf("catalog scan: %w", err)
		}
		matches = append(matches, p)
	}
	if err := rows.Err(); err != nil {
		return section.Properties{}, fmt.Errorf("catalog rows: %w", err)
	}
	switch len(matches) {
	case 0:
		return section.Properties{}, &section.NotFoundError{Name: name, Family: family, Database: r.source}
	case 1:
		return matches[0], nil
	}
	fams := make([]section.Family, len(matches))
	for i, p := range matches {
		fams[i] = p.Family
	}
	return section.Properties{}, &section.AmbiguousNameError{Name: name, Families: fams}
}

func (r *Postgres) List(ctx context.Context, family section.Family) ([]string, error) {
	query := "SELECT name FROM sections WHERE source=$1"
	args := []any{r.source}
	if family != "" {
		query += " AND family=$2"
		args = append(args, string(family))
	}
	query += " ORDER BY name"
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog list: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
