package dogs

import (
	"fmt"
	"time"
)

func raw(name, state, breed string, mods ...func(*RawDog)) RawDog {
	r := RawDog{
		PhotoURL:       "https://photos.example/" + name + ".jpg",
		Name:           name,
		PublishedAt:    "2020-03-01T12:00:00+0000",
		Breed:          breed,
		Colors:         "Black",
		Age:            "Adult",
		Gender:         "Female",
		Size:           "Medium",
		Coat:           "Short",
		SpayedNeutered: "True",
		ShotsCurrent:   "False",
		ContactEmail:   name + "@shelter.example",
		ContactPhone:   "555-0100",
		State:          state,
		City:           "Albany",
		Postcode:       "12201",
		Country:        "US",
		URL:            "https://adopt.example/" + name,
	}
	for _, m := range mods {
		m(&r)
	}
	return r
}

func dog(name, state, breed string, mods ...func(*Dog)) Dog {
	d := Dog{
		PhotoURL:    "https://photos.example/" + name + ".jpg",
		Name:        name,
		PublishedAt: time.Date(2020, 3, 1, 12, 0, 0, 0, time.UTC),
		Breed:       breed,
		Age:         AgeAdult,
		Gender:      GenderFemale,
		Size:        SizeMedium,
		State:       state,
		City:        "Albany",
		URL:         "https://adopt.example/" + name,
	}
	for _, m := range mods {
		m(&d)
	}
	return d
}

func withAge(a Age) func(*Dog) { return func(d *Dog) { d.Age = a } }
func withGender(g Gender) func(*Dog) { return func(d *Dog) { d.Gender = g } }
func withSize(s Size) func(*Dog) { return func(d *Dog) { d.Size = s } }
func withCity(c string) func(*Dog) { return func(d *Dog) { d.City = c } }
func publishedDay(day int) func(*Dog) {
	return func(d *Dog) { d.PublishedAt = time.Date(2020, 3, day, 0, 0, 0, 0, time.UTC) }
}

func names(ds []Dog) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Name)
	}
	return out
}

// manyBreeds genera n razas distintas, la i-ésima con n-i perros.
func manyBreeds(state string, n int) []Dog {
	out := []Dog{}
	for i := 0; i < n; i++ {
		for j := 0; j < n-i; j++ {
			out = append(out, dog(fmt.Sprintf("d%d-%d", i, j), state, fmt.Sprintf("breed-%02d", i)))
		}
	}
	return out
}
