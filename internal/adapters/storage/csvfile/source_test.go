package csvfile

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pet-adoption-dashboard/internal/domain/dogs"
)

const sample = `id,photos,pet_name,published_at,breeds,colors,age,gender,size,coat,spayed_neutered,shots_current,contact_email,contact_phone,state,city,postcode,country,url
1,https://p/1.jpg,Milo,2020-03-01T12:00:00+0000,Labrador,Black,Adult,Male,Medium,Short,True,True,a@x.org,555,NY,Troy,12180,US,https://adopt/1
2,,Nala,2020-03-02T12:00:00+0000,Beagle,,Young,Female,Small,,False,False,,,NY,Albany,12201,US,https://adopt/2
3,https://p/3.jpg,Rex,2020-03-03T08:15:00+0000,Beagle,Brown,Senior,Male,Medium,,False,True,,,ON,Toronto,M5V,CA,https://adopt/3
`

func TestParse_MapsColumnsByName(t *testing.T) {
	rows, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	r := rows[0]
	if r.Name != "Milo" || r.Breed != "Labrador" || r.City != "Troy" || r.Country != "US" || r.URL != "https://adopt/1" {
		t.Fatalf("unexpected mapping: %+v", r)
	}
	if rows[1].PhotoURL != "" {
		t.Fatalf("empty photo must stay empty, got %q", rows[1].PhotoURL)
	}
}

func TestParse_MissingRequiredColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("photos,pet_name\nx,y\n"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}

	_, err = Parse(strings.NewReader(""))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn for empty input, got %v", err)
	}
}

func TestFileSource_FeedsDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dog.csv")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	ds, err := dogs.Load(context.Background(), NewFileSource(path), dogs.LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// Nala sin foto, Rex fuera de US
	if ds.Len() != 1 {
		t.Fatalf("expected 1 admitted dog, got %d", ds.Len())
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.csv")).Load(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestHTTPSource(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(sample))
	}))
	defer ts.Close()

	rows, err := NewHTTPSource(ts.URL, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
}
