package memory

import (
	"context"

	"pet-adoption-dashboard/internal/domain/dogs"
)

// dogsSource sirve filas fijas (tests end-to-end del router).
type dogsSource struct {
	rows []dogs.RawDog
}

func NewDogsSource(rows []dogs.RawDog) dogs.Source {
	return &dogsSource{rows: append([]dogs.RawDog(nil), rows...)}
}

func (s *dogsSource) Load(ctx context.Context) ([]dogs.RawDog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]dogs.RawDog(nil), s.rows...), nil
}
