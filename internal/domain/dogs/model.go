package dogs

import (
	"fmt"
	"strings"
	"time"
)

// Age define la etapa de vida publicada.
// @Enum Baby, Young, Adult, Senior
type Age string

const (
	AgeBaby   Age = "Baby"
	AgeYoung  Age = "Young"
	AgeAdult  Age = "Adult"
	AgeSenior Age = "Senior"
)

// AllAges es la selección por defecto del checklist de edad.
var AllAges = []Age{AgeBaby, AgeYoung, AgeAdult, AgeSenior}

// Gender
// @Enum Female, Male
type Gender string

const (
	GenderFemale Gender = "Female"
	GenderMale   Gender = "Male"
)

var AllGenders = []Gender{GenderFemale, GenderMale}

// Size
// @Enum Small, Medium, Large
type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

// Opciones centinela del selector de raza.
const (
	BreedAll   = "All"
	BreedOther = "Other"
)

// Valores por defecto de los controles.
const (
	DefaultState   = "NY"
	DefaultSize    = SizeMedium
	DefaultMaxRows = 50

	// ChartLimit es la cantidad de razas en el gráfico de barras.
	ChartLimit = 10
	// TopBreedsLimit es la cantidad de razas seleccionables en el filtro.
	TopBreedsLimit = 20
)

// Dog es un perro adoptable ya normalizado.
type Dog struct {
	PhotoURL       string
	Name           string
	PublishedAt    time.Time
	Breed          string
	Colors         string
	Age            Age
	Gender         Gender
	Size           Size
	Coat           string
	SpayedNeutered bool
	ShotsCurrent   bool
	ContactEmail   string
	ContactPhone   string
	State          string
	City           string
	Postcode       string
	URL            string
}

// RawDog es la fila tal cual viene de la fuente (CSV, Postgres, SQLite).
type RawDog struct {
	PhotoURL       string
	Name           string
	PublishedAt    string
	Breed          string
	Colors         string
	Age            string
	Gender         string
	Size           string
	Coat           string
	SpayedNeutered string
	ShotsCurrent   string
	ContactEmail   string
	ContactPhone   string
	State          string
	City           string
	Postcode       string
	Country        string
	URL            string
}

// CategoryCount es una barra del gráfico.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// SortKey ordena la tabla.
// @Enum published_date, city
type SortKey string

const (
	SortPublishedDate SortKey = "published_date"
	SortCity          SortKey = "city"
)

func ParseAge(s string) (Age, error) {
	for _, a := range AllAges {
		if strings.EqualFold(strings.TrimSpace(s), string(a)) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: unknown age %q", ErrInvalidQuery, s)
}

func ParseGender(s string) (Gender, error) {
	for _, g := range AllGenders {
		if strings.EqualFold(strings.TrimSpace(s), string(g)) {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: unknown gender %q", ErrInvalidQuery, s)
}

func ParseSize(s string) (Size, error) {
	for _, z := range []Size{SizeSmall, SizeMedium, SizeLarge} {
		if strings.EqualFold(strings.TrimSpace(s), string(z)) {
			return z, nil
		}
	}
	return "", fmt.Errorf("%w: unknown size %q", ErrInvalidQuery, s)
}

// ParseSortKey acepta también las etiquetas del dashboard ("Published Date", "City").
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "published_date", "published date":
		return SortPublishedDate, nil
	case "city":
		return SortCity, nil
	default:
		return "", fmt.Errorf("%w: unknown sort %q", ErrInvalidQuery, s)
	}
}
