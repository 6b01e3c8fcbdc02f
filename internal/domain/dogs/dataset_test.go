package dogs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type stubSource struct {
	rows []RawDog
	err  error
}

func (s stubSource) Load(ctx context.Context) ([]RawDog, error) { return s.rows, s.err }

func TestNewDataset_DropsRowsWithoutPhotoStateOrOutsideCountry(t *testing.T) {
	ds, err := NewDataset([]RawDog{
		raw("keep", "NY", "Beagle"),
		raw("nophoto", "NY", "Beagle", func(r *RawDog) { r.PhotoURL = "" }),
		raw("nostate", "", "Beagle"),
		raw("canada", "ON", "Beagle", func(r *RawDog) { r.Country = "CA" }),
	}, LoadOptions{})
	if err != nil {
		t.Fatalf("new dataset: %v", err)
	}

	if diff := cmp.Diff([]string{"keep"}, names(ds.Records())); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"NY"}, ds.Regions()); diff != "" {
		t.Fatalf("regions mismatch (-want +got):\n%s", diff)
	}
}

func TestNewDataset_NormalizesFields(t *testing.T) {
	ds, err := NewDataset([]RawDog{raw("milo", "NY", "Beagle")}, LoadOptions{Country: "US"})
	if err != nil {
		t.Fatalf("new dataset: %v", err)
	}

	got := ds.Records()[0]
	want := time.Date(2020, 3, 1, 12, 0, 0, 0, time.UTC)
	if !got.PublishedAt.Equal(want) {
		t.Fatalf("published_at = %v, want %v", got.PublishedAt, want)
	}
	if !got.SpayedNeutered || got.ShotsCurrent {
		t.Fatalf("flags not parsed: spayed=%v shots=%v", got.SpayedNeutered, got.ShotsCurrent)
	}
	if got.Age != AgeAdult || got.Gender != GenderFemale || got.Size != SizeMedium {
		t.Fatalf("enums not carried: %+v", got)
	}
}

func TestNewDataset_MalformedTimestampAbortsLoad(t *testing.T) {
	_, err := NewDataset([]RawDog{
		raw("ok", "NY", "Beagle"),
		raw("bad", "NY", "Beagle", func(r *RawDog) { r.PublishedAt = "2020-03-01" }),
	}, LoadOptions{})
	if !errors.Is(err, ErrMalformedTimestamp) {
		t.Fatalf("expected ErrMalformedTimestamp, got %v", err)
	}
}

func TestNewDataset_IgnoresTimestampOfDroppedRows(t *testing.T) {
	_, err := NewDataset([]RawDog{
		raw("ok", "NY", "Beagle"),
		raw("nophoto", "NY", "Beagle", func(r *RawDog) {
			r.PhotoURL = ""
			r.PublishedAt = "garbage"
		}),
	}, LoadOptions{})
	if err != nil {
		t.Fatalf("dropped rows must not be parsed: %v", err)
	}
}

func TestParsePublishedAt(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2019-12-31T23:59:58+0000", want: time.Date(2019, 12, 31, 23, 59, 58, 0, time.UTC)},
		{in: "2019-12-31 23:59:58", want: time.Date(2019, 12, 31, 23, 59, 58, 0, time.UTC)},
		{in: "2019-12-31T23:59", wantErr: true},
		{in: "2019-13-31T23:59:58", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParsePublishedAt(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrMalformedTimestamp) {
				t.Fatalf("ParsePublishedAt(%q): expected ErrMalformedTimestamp, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || !got.Equal(tc.want) {
			t.Fatalf("ParsePublishedAt(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestTopBreeds_LimitTieBreakAndOptions(t *testing.T) {
	rows := []RawDog{}
	// 22 razas: breed-00 con 22 perros ... breed-21 con 1.
	for _, d := range manyBreeds("NY", 22) {
		rows = append(rows, raw(d.Name, "NY", d.Breed))
	}
	// Con 1 perro queda fuera del top aunque ordene primero alfabéticamente.
	rows = append(rows, raw("late", "NY", "aaa-late"))

	ds, err := NewDataset(rows, LoadOptions{})
	if err != nil {
		t.Fatalf("new dataset: %v", err)
	}

	top := ds.TopBreeds()
	if len(top) != TopBreedsLimit {
		t.Fatalf("expected %d top breeds, got %d", TopBreedsLimit, len(top))
	}
	if top[0] != "breed-00" || top[len(top)-1] != "breed-19" {
		t.Fatalf("unexpected top breeds: %v", top)
	}

	opts := ds.BreedOptions()
	if opts[0] != BreedAll || opts[1] != BreedOther || len(opts) != TopBreedsLimit+2 {
		t.Fatalf("unexpected breed options: %v", opts)
	}
}

func TestTopBreeds_TiesUseFirstOccurrence(t *testing.T) {
	got := topBreeds([]Dog{
		dog("a", "NY", "Poodle"),
		dog("b", "NY", "Beagle"),
		dog("c", "NY", "Akita"),
	}, 2)
	if diff := cmp.Diff([]string{"Beagle", "Poodle"}, got); diff != "" {
		t.Fatalf("top breeds mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_WrapsSourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Load(context.Background(), stubSource{err: boom}, LoadOptions{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}

func TestDataset_AccessorsReturnCopies(t *testing.T) {
	ds, err := Load(context.Background(), stubSource{rows: []RawDog{raw("milo", "NY", "Beagle")}}, LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	ds.Records()[0].Name = "changed"
	ds.Regions()[0] = "XX"
	if ds.Records()[0].Name != "milo" || ds.Regions()[0] != "NY" {
		t.Fatalf("dataset must be immutable through accessors")
	}
}
