package dice

import (
	"context"
	"fmt"
	"math/rand"

	"pet-adoption-dashboard/internal/platform/logger"

	"github.com/google/uuid"
)

type ServiceOptions struct {
	Limits Limits
	Seed   func() (int64, error) // default NewSeed
	Logger logger.Logger
}

type Service struct {
	limits Limits
	seed   func() (int64, error)
	newID  func() string
	log    logger.Logger
}

func NewService(opts ServiceOptions) *Service {
	seed := opts.Seed
	if seed == nil {
		seed = NewSeed
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		limits: opts.Limits,
		seed:   seed,
		newID:  uuid.NewString,
		log:    log.With(map[string]any{"module": "dice"}),
	}
}

// Request: Seed nil = semilla nueva por request.
type Request struct {
	Params
	Seed *int64
}

// Run es una simulación completa más los datos del gráfico de líneas.
type Run struct {
	ID          string        `json:"run_id"`
	Seed        int64         `json:"seed"`
	Sides       int           `json:"sides"`
	Rolls       int           `json:"rolls"`
	Title       string        `json:"title"`
	XTitle      string        `json:"x_title"`
	YTitle      string        `json:"y_title"`
	LegendTitle string        `json:"legend_title"`
	YRange      [2]float64    `json:"y_range"`
	Trials      []TrialSeries `json:"trials"`
}

func (s *Service) Simulate(ctx context.Context, req Request) (Run, error) {
	if err := req.Params.Validate(s.limits); err != nil {
		return Run{}, err
	}

	var seed int64
	if req.Seed != nil {
		seed = *req.Seed
	} else {
		v, err := s.seed()
		if err != nil {
			return Run{}, err
		}
		seed = v
	}

	trials, err := SimulateWithLimits(rand.New(rand.NewSource(seed)), req.Params, s.limits)
	if err != nil {
		return Run{}, err
	}

	run := Run{
		ID:          s.newID(),
		Seed:        seed,
		Sides:       req.Sides,
		Rolls:       req.Rolls,
		Title:       fmt.Sprintf("Running Mean Roll For A %d Sided Die", req.Sides),
		XTitle:      "Roll Number",
		YTitle:      "Running Mean",
		LegendTitle: "Trial",
		YRange:      [2]float64{0.5, float64(req.Sides) + 0.5},
		Trials:      trials,
	}

	s.log.Debug("simulate", map[string]any{
		"run_id": run.ID,
		"seed":   seed,
		"sides":  req.Sides,
		"rolls":  req.Rolls,
		"trials": req.Trials,
	})
	return run, nil
}
