package dogs

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"pet-adoption-dashboard/internal/platform/logger"
)

type ServiceOptions struct {
	LegacyOtherFilter bool
	CacheSize         int // 0 = sin cache
	Logger            logger.Logger
}

// Service expone el dataset a los handlers. No tiene estado mutable salvo la cache.
type Service struct {
	ds          *Dataset
	legacyOther bool
	log         logger.Logger

	charts *queryCache[Chart]
	tables *queryCache[Table]
}

func NewService(ds *Dataset, opts ServiceOptions) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		ds:          ds,
		legacyOther: opts.LegacyOtherFilter,
		log:         log.With(map[string]any{"module": "dogs"}),
		charts:      newQueryCache[Chart](opts.CacheSize),
		tables:      newQueryCache[Table](opts.CacheSize),
	}
}

// Chart es la serie del gráfico de barras con sus títulos.
type Chart struct {
	Title  string          `json:"title"`
	XTitle string          `json:"x_title"`
	YTitle string          `json:"y_title"`
	Series []CategoryCount `json:"series"`
}

type TableQuery struct {
	Filter  FilterQuery
	Sort    SortKey
	MaxRows int
}

// Table: Total es la cantidad de perros que matchean antes de cortar en MaxRows.
type Table struct {
	Columns []string     `json:"columns"`
	Rows    []DisplayRow `json:"rows"`
	Total   int          `json:"total"`
}

func (s *Service) Regions() []string      { return s.ds.Regions() }
func (s *Service) BreedOptions() []string { return s.ds.BreedOptions() }
func (s *Service) Count() int             { return s.ds.Len() }

// Chart corta antes de calcular si ctx ya terminó.
func (s *Service) Chart(ctx context.Context, state string, size Size) (Chart, error) {
	if err := ctx.Err(); err != nil {
		return Chart{}, err
	}
	key := "chart|" + state + "|" + string(size)
	c, hit := s.charts.get(key, func() Chart {
		return Chart{
			Title:  "number of dogs adoptable for breeds in " + state,
			XTitle: "Breeds",
			YTitle: "Number of dogs adoptable",
			Series: BreedCounts(s.ds.records, state, size),
		}
	})
	s.log.Debug("chart", map[string]any{"state": state, "size": size, "cache_hit": hit, "bars": len(c.Series)})

	c.Series = append([]CategoryCount(nil), c.Series...)
	return c, nil
}

// Table devuelve filas propias del caller; las de la cache no se comparten.
func (s *Service) Table(ctx context.Context, q TableQuery) (Table, error) {
	if err := ctx.Err(); err != nil {
		return Table{}, err
	}
	t, hit := s.tables.get(tableKey(q), func() Table {
		matched := Filter(s.ds.records, q.Filter, FilterOptions{
			TopBreeds:   s.ds.topBreeds,
			LegacyOther: s.legacyOther,
		})
		return Table{
			Columns: TableColumns,
			Rows:    Present(matched, q.Sort, q.MaxRows),
			Total:   len(matched),
		}
	})
	s.log.Debug("table", map[string]any{"state": q.Filter.State, "breed": q.Filter.Breed, "cache_hit": hit, "total": t.Total})

	t.Columns = append([]string(nil), t.Columns...)
	rows := make([]DisplayRow, len(t.Rows))
	for i, r := range t.Rows {
		r.Fields = append([]string(nil), r.Fields...)
		rows[i] = r
	}
	t.Rows = rows
	return t, nil
}

// tableKey normaliza el orden de ages/genders para que la misma selección
// comparta entrada.
func tableKey(q TableQuery) string {
	ages := make([]string, 0, len(q.Filter.Ages))
	for _, a := range q.Filter.Ages {
		ages = append(ages, string(a))
	}
	sort.Strings(ages)

	genders := make([]string, 0, len(q.Filter.Genders))
	for _, g := range q.Filter.Genders {
		genders = append(genders, string(g))
	}
	sort.Strings(genders)

	return fmt.Sprintf("table|%s|%s|%s|%s|%s|%s|%d",
		q.Filter.State, q.Filter.Size,
		strings.Join(ages, ","), strings.Join(genders, ","),
		q.Filter.Breed, q.Sort, q.MaxRows)
}
