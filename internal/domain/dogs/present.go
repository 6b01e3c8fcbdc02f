package dogs

import (
	"sort"
)

// TableColumns es el encabezado de la tabla (primeras 16 columnas del dataset).
var TableColumns = []string{
	"photos", "pet_name", "published_at", "breeds", "colors", "age", "gender",
	"size", "coat", "spayed_neutered", "shots_current", "contact_email",
	"contact_phone", "state", "city", "postcode",
}

// DisplayRow es una fila de la tabla: imagen, nombre con link y el resto de
// las columnas en el orden de TableColumns[2:].
type DisplayRow struct {
	PhotoURL string   `json:"photo_url"`
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	Fields   []string `json:"fields"`
}

// Present ordena (estable) y luego corta en maxRows.
func Present(records []Dog, key SortKey, maxRows int) []DisplayRow {
	if maxRows <= 0 {
		return []DisplayRow{}
	}

	sorted := append([]Dog(nil), records...)
	switch key {
	case SortCity:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].City < sorted[j].City
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
		})
	}

	if len(sorted) > maxRows {
		sorted = sorted[:maxRows]
	}

	out := make([]DisplayRow, 0, len(sorted))
	for _, d := range sorted {
		out = append(out, toDisplayRow(d))
	}
	return out
}

func toDisplayRow(d Dog) DisplayRow {
	return DisplayRow{
		PhotoURL: d.PhotoURL,
		Name:     d.Name,
		URL:      d.URL,
		Fields: []string{
			d.PublishedAt.Format(publishedLayout),
			d.Breed,
			d.Colors,
			string(d.Age),
			string(d.Gender),
			string(d.Size),
			d.Coat,
			formatFlag(d.SpayedNeutered),
			formatFlag(d.ShotsCurrent),
			d.ContactEmail,
			d.ContactPhone,
			d.State,
			d.City,
			d.Postcode,
		},
	}
}

func formatFlag(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
