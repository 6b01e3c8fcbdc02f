// Package sqlsource lee el dataset de perros desde una tabla SQL
// (Postgres vía pgx o SQLite vía modernc), usando database/sql.
package sqlsource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"pet-adoption-dashboard/internal/domain/dogs"
)

var ErrInvalidTable = errors.New("invalid table name")

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

type DogsRepo struct {
	db    *sql.DB
	table string
}

// NewDogsRepo valida el nombre de tabla porque va interpolado en el SELECT.
func NewDogsRepo(db *sql.DB, table string) (*DogsRepo, error) {
	if !identRe.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	return &DogsRepo{db: db, table: table}, nil
}

// Load trae todas las filas; el filtrado (foto, país) lo hace dogs.NewDataset.
// Las filas salen ordenadas por published_at DESC, url, no en orden de inserción.
func (r *DogsRepo) Load(ctx context.Context) ([]dogs.RawDog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			photos, pet_name, published_at,
			breeds, colors, age, gender, size, coat,
			spayed_neutered, shots_current,
			contact_email, contact_phone,
			state, city, postcode, country, url
		FROM `+r.table+`
		ORDER BY published_at DESC, url
	`)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", r.table, err)
	}
	defer rows.Close()

	out := make([]dogs.RawDog, 0)
	for rows.Next() {
		var c [18]sql.NullString
		dest := make([]any, len(c))
		for i := range c {
			dest[i] = &c[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		out = append(out, dogs.RawDog{
			PhotoURL:       c[0].String,
			Name:           c[1].String,
			PublishedAt:    c[2].String,
			Breed:          c[3].String,
			Colors:         c[4].String,
			Age:            c[5].String,
			Gender:         c[6].String,
			Size:           c[7].String,
			Coat:           c[8].String,
			SpayedNeutered: c[9].String,
			ShotsCurrent:   c[10].String,
			ContactEmail:   c[11].String,
			ContactPhone:   c[12].String,
			State:          c[13].String,
			City:           c[14].String,
			Postcode:       c[15].String,
			Country:        c[16].String,
			URL:            c[17].String,
		})
	}

	return out, rows.Err()
}
