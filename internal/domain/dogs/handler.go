package dogs

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templateFS embed.FS

var tableTmpl = template.Must(template.ParseFS(templateFS, "templates/table.html"))

const intro = "The data come from latest 10,000 adoptable dogs from petfinder.com. " +
	"Choose your state and the size of dog to overview: the chart shows the number of " +
	"adoptable dogs per breed (top 10). Then choose more filters including age, gender " +
	"and breed; the table gives the detailed information of each adoptable dog. " +
	"Clicking the name of a dog opens its adoption page on petfinder.com."

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Get("/", aboutHandler(svc))
		dr.Get("/regions", listRegionsHandler(svc))
		dr.Get("/breeds", listBreedsHandler(svc))
		dr.Get("/chart", chartHandler(svc))
		dr.Get("/table", tableHandler(svc))
		dr.Get("/table.html", tableHTMLHandler(svc))
	})
}

type aboutResponse struct {
	Title        string   `json:"title"`
	Intro        string   `json:"intro"`
	Dogs         int      `json:"dogs"`
	DefaultState string   `json:"default_state"`
	DefaultSize  Size     `json:"default_size"`
	Ages         []Age    `json:"ages"`
	Genders      []Gender `json:"genders"`
	SortKeys     []string `json:"sort_keys"`
}

// aboutHandler godoc
// @Summary  Dashboard intro and control defaults
// @Tags     dogs
// @Produce  json
// @Success  200 {object} aboutResponse
// @Router   /dogs [get]
func aboutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, aboutResponse{
			Title:        "Find Your Ideal Dog!",
			Intro:        intro,
			Dogs:         svc.Count(),
			DefaultState: DefaultState,
			DefaultSize:  DefaultSize,
			Ages:         AllAges,
			Genders:      AllGenders,
			SortKeys:     []string{string(SortPublishedDate), string(SortCity)},
		})
	}
}

// listRegionsHandler godoc
// @Summary  Sorted distinct states
// @Tags     dogs
// @Produce  json
// @Success  200 {array} string
// @Router   /dogs/regions [get]
func listRegionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.Regions())
	}
}

// listBreedsHandler godoc
// @Summary  Breed filter options ("All", "Other", top 20 breeds)
// @Tags     dogs
// @Produce  json
// @Success  200 {array} string
// @Router   /dogs/breeds [get]
func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.BreedOptions())
	}
}

// chartHandler godoc
// @Summary  Top 10 breeds for a state and size
// @Tags     dogs
// @Produce  json
// @Param    state query string false "state code" default(NY)
// @Param    size  query string false "Small, Medium or Large" default(Medium)
// @Success  200 {object} Chart
// @Failure  400 {string} string
// @Router   /dogs/chart [get]
func chartHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		size := DefaultSize
		if v := q.Get("size"); v != "" {
			parsed, err := ParseSize(v)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			size = parsed
		}

		chart, err := svc.Chart(r.Context(), stateParam(q), size)
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, chart)
	}
}

// tableHandler godoc
// @Summary  Filtered and sorted dog table
// @Tags     dogs
// @Produce  json
// @Param    state    query string   false "state code" default(NY)
// @Param    age      query []string false "ages (repeatable, empty value = none)"
// @Param    gender   query []string false "genders (repeatable, empty value = none)"
// @Param    breed    query string   false "breed, All or Other" default(All)
// @Param    sort     query string   false "published_date or city" default(published_date)
// @Param    max_rows query int      false "row limit" default(50)
// @Success  200 {object} Table
// @Failure  400 {string} string
// @Router   /dogs/table [get]
func tableHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tq, err := parseTableQuery(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		table, err := svc.Table(r.Context(), tq)
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, table)
	}
}

// tableHTMLHandler godoc
// @Summary  Same as /dogs/table rendered as an HTML table fragment
// @Tags     dogs
// @Produce  html
// @Success  200 {string} string
// @Failure  400 {string} string
// @Router   /dogs/table.html [get]
func tableHTMLHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tq, err := parseTableQuery(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		table, err := svc.Table(r.Context(), tq)
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tableTmpl.ExecuteTemplate(w, "table", table); err != nil {
			svc.log.Error("render table", map[string]any{"err": err})
		}
	}
}

func parseTableQuery(q url.Values) (TableQuery, error) {
	ages := AllAges
	if vals, ok := q["age"]; ok {
		ages = make([]Age, 0, len(vals))
		for _, v := range splitValues(vals) {
			a, err := ParseAge(v)
			if err != nil {
				return TableQuery{}, err
			}
			ages = append(ages, a)
		}
	}

	genders := AllGenders
	if vals, ok := q["gender"]; ok {
		genders = make([]Gender, 0, len(vals))
		for _, v := range splitValues(vals) {
			g, err := ParseGender(v)
			if err != nil {
				return TableQuery{}, err
			}
			genders = append(genders, g)
		}
	}

	breed := strings.TrimSpace(q.Get("breed"))
	if breed == "" {
		breed = BreedAll
	}

	key, err := ParseSortKey(q.Get("sort"))
	if err != nil {
		return TableQuery{}, err
	}

	maxRows := DefaultMaxRows
	if v := strings.TrimSpace(q.Get("max_rows")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return TableQuery{}, errors.New("max_rows must be a non-negative integer")
		}
		maxRows = n
	}

	return TableQuery{
		Filter: FilterQuery{
			State:   stateParam(q),
			Ages:    ages,
			Genders: genders,
			Breed:   breed,
		},
		Sort:    key,
		MaxRows: maxRows,
	}, nil
}

// splitValues acepta "age=Baby&age=Young" y "age=Baby,Young"; los vacíos se descartan.
func splitValues(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func stateParam(q url.Values) string {
	if s := strings.TrimSpace(q.Get("state")); s != "" {
		return s
	}
	return DefaultState
}

// writeJSON: mismo helper que en dice.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
