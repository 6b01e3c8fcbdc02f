package dogs

import "sort"

// BreedCounts cuenta perros por raza para state+size, orden descendente por
// cantidad (empates por nombre) y corta en ChartLimit.
func BreedCounts(records []Dog, state string, size Size) []CategoryCount {
	counts := map[string]int{}
	for _, d := range records {
		if d.State == state && d.Size == size {
			counts[d.Breed]++
		}
	}

	out := make([]CategoryCount, 0, len(counts))
	for breed, n := range counts {
		out = append(out, CategoryCount{Category: breed, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})

	if len(out) > ChartLimit {
		out = out[:ChartLimit]
	}
	return out
}
