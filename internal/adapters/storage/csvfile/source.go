package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"pet-adoption-dashboard/internal/domain/dogs"
	"pet-adoption-dashboard/internal/platform/httpclient"
)

var ErrMissingColumn = errors.New("missing required column")

// Columnas obligatorias del export de petfinder.
var requiredColumns = []string{"photos", "published_at", "state", "country", "url"}

// FileSource lee el CSV desde disco.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Load(ctx context.Context) ([]dogs.RawDog, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// HTTPSource descarga el CSV ya generado (p.ej. desde un bucket público).
type HTTPSource struct {
	URL    string
	Client *httpclient.Client
}

func NewHTTPSource(url string, client *httpclient.Client) *HTTPSource {
	if client == nil {
		client = httpclient.New(0)
	}
	return &HTTPSource{URL: url, Client: client}
}

func (s *HTTPSource) Load(ctx context.Context) ([]dogs.RawDog, error) {
	body, err := s.Client.Fetch(ctx, s.URL, map[string]string{"Accept": "text/csv"})
	if err != nil {
		return nil, fmt.Errorf("fetch csv: %w", err)
	}
	return Parse(bytes.NewReader(body))
}

// Parse lee el CSV por nombre de columna; columnas extra se ignoran
// (el export trae muchas más de las que usa el dashboard).
func Parse(r io.Reader) ([]dogs.RawDog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		// la primera columna puede venir con BOM
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	out := make([]dogs.RawDog, 0)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		get := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return rec[i]
		}

		out = append(out, dogs.RawDog{
			PhotoURL:       get("photos"),
			Name:           get("pet_name"),
			PublishedAt:    get("published_at"),
			Breed:          get("breeds"),
			Colors:         get("colors"),
			Age:            get("age"),
			Gender:         get("gender"),
			Size:           get("size"),
			Coat:           get("coat"),
			SpayedNeutered: get("spayed_neutered"),
			ShotsCurrent:   get("shots_current"),
			ContactEmail:   get("contact_email"),
			ContactPhone:   get("contact_phone"),
			State:          get("state"),
			City:           get("city"),
			Postcode:       get("postcode"),
			Country:        get("country"),
			URL:            get("url"),
		})
	}
	return out, nil
}
