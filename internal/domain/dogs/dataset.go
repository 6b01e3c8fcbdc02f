package dogs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrInvalidQuery       = errors.New("invalid query")
)

const (
	DefaultCountry = "US"

	publishedLayout = "2006-01-02 15:04:05"
)

type LoadOptions struct {
	Country string // default "US"
}

// Dataset es inmutable después de NewDataset; se comparte entre requests sin locks.
type Dataset struct {
	records   []Dog
	regions   []string
	topBreeds []string
}

// Load lee la fuente y normaliza.
func Load(ctx context.Context, src Source, opts LoadOptions) (*Dataset, error) {
	raws, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dogs: %w", err)
	}
	return NewDataset(raws, opts)
}

// NewDataset descarta filas sin foto, sin estado o de otro país, parsea
// published_at y precalcula estados y razas frecuentes.
func NewDataset(raws []RawDog, opts LoadOptions) (*Dataset, error) {
	country := strings.TrimSpace(opts.Country)
	if country == "" {
		country = DefaultCountry
	}

	records := make([]Dog, 0, len(raws))
	for i, r := range raws {
		if strings.TrimSpace(r.PhotoURL) == "" || strings.TrimSpace(r.State) == "" {
			continue
		}
		if r.Country != country {
			continue
		}

		published, err := ParsePublishedAt(r.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		records = append(records, Dog{
			PhotoURL:       r.PhotoURL,
			Name:           r.Name,
			PublishedAt:    published,
			Breed:          r.Breed,
			Colors:         r.Colors,
			Age:            Age(r.Age),
			Gender:         Gender(r.Gender),
			Size:           Size(r.Size),
			Coat:           r.Coat,
			SpayedNeutered: parseFlag(r.SpayedNeutered),
			ShotsCurrent:   parseFlag(r.ShotsCurrent),
			ContactEmail:   r.ContactEmail,
			ContactPhone:   r.ContactPhone,
			State:          r.State,
			City:           r.City,
			Postcode:       r.Postcode,
			URL:            r.URL,
		})
	}

	return &Dataset{
		records:   records,
		regions:   distinctStates(records),
		topBreeds: topBreeds(records, TopBreedsLimit),
	}, nil
}

// ParsePublishedAt toma "YYYY-MM-DD?HH:MM:SS..." (p.ej. "2020-03-01T12:30:00+0000"):
// chars 0-9 fecha, 11-18 hora, el resto se ignora.
func ParsePublishedAt(s string) (time.Time, error) {
	if len(s) < 19 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
	}
	t, err := time.Parse(publishedLayout, s[0:10]+" "+s[11:19])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
	}
	return t, nil
}

func parseFlag(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

func distinctStates(records []Dog) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, d := range records {
		if _, ok := seen[d.State]; ok {
			continue
		}
		seen[d.State] = struct{}{}
		out = append(out, d.State)
	}
	sort.Strings(out)
	return out
}

// topBreeds devuelve las n razas más frecuentes (empates: primera aparición),
// ordenadas alfabéticamente para el selector.
func topBreeds(records []Dog, n int) []string {
	type entry struct {
		breed string
		count int
		first int
	}

	idx := map[string]int{}
	entries := make([]entry, 0)
	for i, d := range records {
		j, ok := idx[d.Breed]
		if !ok {
			idx[d.Breed] = len(entries)
			entries = append(entries, entry{breed: d.Breed, first: i})
			j = len(entries) - 1
		}
		entries[j].count++
	}

	sort.SliceStable(entries, func(a, b int) bool {
		if entries[a].count != entries[b].count {
			return entries[a].count > entries[b].count
		}
		return entries[a].first < entries[b].first
	})
	if len(entries) > n {
		entries = entries[:n]
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.breed)
	}
	sort.Strings(out)
	return out
}

// Records devuelve una copia; el dataset no se modifica nunca.
func (d *Dataset) Records() []Dog {
	return append([]Dog(nil), d.records...)
}

func (d *Dataset) Len() int { return len(d.records) }

func (d *Dataset) Regions() []string {
	return append([]string(nil), d.regions...)
}

func (d *Dataset) TopBreeds() []string {
	return append([]string(nil), d.topBreeds...)
}

// BreedOptions: "All", "Other" y luego las razas frecuentes.
func (d *Dataset) BreedOptions() []string {
	out := make([]string, 0, len(d.topBreeds)+2)
	out = append(out, BreedAll, BreedOther)
	return append(out, d.topBreeds...)
}
