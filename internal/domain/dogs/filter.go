package dogs

// FilterQuery son los controles de la tabla. Size vacío = no se filtra por tamaño.
type FilterQuery struct {
	State   string
	Size    Size
	Ages    []Age
	Genders []Gender
	Breed   string // raza concreta, BreedAll o BreedOther
}

type FilterOptions struct {
	// TopBreeds define qué cuenta como "Other".
	TopBreeds []string
	// LegacyOther ignora edad y sexo cuando Breed == BreedOther.
	LegacyOther bool
}

// Filter devuelve el subconjunto que cumple q, en el mismo orden que records.
// No modifica records. Ages o Genders vacíos no matchean nada.
func Filter(records []Dog, q FilterQuery, opts FilterOptions) []Dog {
	ages := make(map[Age]struct{}, len(q.Ages))
	for _, a := range q.Ages {
		ages[a] = struct{}{}
	}
	genders := make(map[Gender]struct{}, len(q.Genders))
	for _, g := range q.Genders {
		genders[g] = struct{}{}
	}
	top := make(map[string]struct{}, len(opts.TopBreeds))
	for _, b := range opts.TopBreeds {
		top[b] = struct{}{}
	}

	demographics := func(d Dog) bool {
		_, okAge := ages[d.Age]
		_, okGender := genders[d.Gender]
		return okAge && okGender
	}

	out := make([]Dog, 0)
	for _, d := range records {
		if d.State != q.State {
			continue
		}
		if q.Size != "" && d.Size != q.Size {
			continue
		}

		switch q.Breed {
		case BreedAll:
			if !demographics(d) {
				continue
			}
		case BreedOther:
			if _, ok := top[d.Breed]; ok {
				continue
			}
			if !opts.LegacyOther && !demographics(d) {
				continue
			}
		default:
			if d.Breed != q.Breed || !demographics(d) {
				continue
			}
		}
		out = append(out, d)
	}
	return out
}
