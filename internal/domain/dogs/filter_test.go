package dogs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func filterFixture() []Dog {
	return []Dog{
		dog("a", "NY", "Labrador", withAge(AgeBaby)),
		dog("b", "NY", "Beagle", withGender(GenderMale)),
		dog("c", "CA", "Labrador"),
		dog("d", "NY", "Mutt", withAge(AgeSenior), withGender(GenderMale)),
		dog("e", "NY", "Labrador", withAge(AgeSenior), withSize(SizeLarge)),
	}
}

var fixtureTop = []string{"Beagle", "Labrador"}

func TestFilter_All_FullSelectionReturnsWholeState(t *testing.T) {
	got := Filter(filterFixture(), FilterQuery{
		State: "NY", Ages: AllAges, Genders: AllGenders, Breed: BreedAll,
	}, FilterOptions{TopBreeds: fixtureTop})

	if diff := cmp.Diff([]string{"a", "b", "d", "e"}, names(got)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_All_AppliesAgeGenderAndOptionalSize(t *testing.T) {
	records := filterFixture()

	got := Filter(records, FilterQuery{
		State: "NY", Ages: []Age{AgeSenior}, Genders: []Gender{GenderMale}, Breed: BreedAll,
	}, FilterOptions{})
	if diff := cmp.Diff([]string{"d"}, names(got)); diff != "" {
		t.Fatalf("age/gender mismatch (-want +got):\n%s", diff)
	}

	got = Filter(records, FilterQuery{
		State: "NY", Size: SizeLarge, Ages: AllAges, Genders: AllGenders, Breed: BreedAll,
	}, FilterOptions{})
	if diff := cmp.Diff([]string{"e"}, names(got)); diff != "" {
		t.Fatalf("size mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_SpecificBreed(t *testing.T) {
	got := Filter(filterFixture(), FilterQuery{
		State: "NY", Ages: []Age{AgeBaby, AgeAdult}, Genders: AllGenders, Breed: "Labrador",
	}, FilterOptions{TopBreeds: fixtureTop})

	if diff := cmp.Diff([]string{"a"}, names(got)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_Other(t *testing.T) {
	records := append(filterFixture(), dog("f", "NY", "Husky"))

	q := FilterQuery{State: "NY", Ages: []Age{AgeAdult}, Genders: []Gender{GenderFemale}, Breed: BreedOther}

	got := Filter(records, q, FilterOptions{TopBreeds: fixtureTop})
	if diff := cmp.Diff([]string{"f"}, names(got)); diff != "" {
		t.Fatalf("other mismatch (-want +got):\n%s", diff)
	}

	// modo legacy: edad y sexo no se aplican
	got = Filter(records, q, FilterOptions{TopBreeds: fixtureTop, LegacyOther: true})
	if diff := cmp.Diff([]string{"d", "f"}, names(got)); diff != "" {
		t.Fatalf("legacy other mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_EmptySelectionMatchesNothing(t *testing.T) {
	records := filterFixture()
	for _, breed := range []string{BreedAll, BreedOther, "Labrador"} {
		for _, q := range []FilterQuery{
			{State: "NY", Ages: nil, Genders: AllGenders, Breed: breed},
			{State: "NY", Ages: AllAges, Genders: []Gender{}, Breed: breed},
		} {
			got := Filter(records, q, FilterOptions{TopBreeds: fixtureTop})
			if got == nil || len(got) != 0 {
				t.Fatalf("breed %s: expected empty non-nil result, got %v", breed, names(got))
			}
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := filterFixture()
	before := names(records)

	_ = Filter(records, FilterQuery{State: "NY", Ages: AllAges, Genders: AllGenders, Breed: "Beagle"}, FilterOptions{})

	if diff := cmp.Diff(before, names(records)); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}
