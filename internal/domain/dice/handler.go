package dice

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/dice", func(dr chi.Router) {
		dr.Get("/simulate", simulateHandler(svc))
	})
}

// simulateHandler godoc
// @Summary  Running mean of dice-roll trials
// @Tags     dice
// @Produce  json
// @Param    sides  query int false "die sides"         default(6)
// @Param    rolls  query int false "rolls per trial"   default(250)
// @Param    trials query int false "number of trials"  default(5)
// @Param    seed   query int false "seed for a reproducible run"
// @Success  200 {object} Run
// @Failure  400 {string} string
// @Router   /dice/simulate [get]
func simulateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseRequest(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		run, err := svc.Simulate(r.Context(), req)
		if err != nil {
			if errors.Is(err, ErrInvalidParameter) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			svc.log.Error("simulate", map[string]any{"err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, run)
	}
}

func parseRequest(q url.Values) (Request, error) {
	sides, err := intParam(q, "sides", DefaultSides)
	if err != nil {
		return Request{}, err
	}
	rolls, err := intParam(q, "rolls", DefaultRolls)
	if err != nil {
		return Request{}, err
	}
	trials, err := intParam(q, "trials", DefaultTrials)
	if err != nil {
		return Request{}, err
	}

	req := Request{Params: Params{Sides: sides, Rolls: rolls, Trials: trials}}

	if v := strings.TrimSpace(q.Get("seed")); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Request{}, &InvalidParameterError{Param: "seed", Constraint: "an integer", Value: v}
		}
		req.Seed = &seed
	}
	return req, nil
}

// ParseCount parsea un entero de un control; "2.5" o "abc" son InvalidParameter.
func ParseCount(name, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &InvalidParameterError{Param: name, Constraint: "an integer >= 1", Value: raw}
	}
	return n, nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	v := q.Get(name)
	if strings.TrimSpace(v) == "" {
		return def, nil
	}
	return ParseCount(name, v)
}

// writeJSON: mismo helper que en dogs.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
