// Package dice simula tiradas de un dado y calcula la media acumulada por tirada.
package dice

import (
	"errors"
	"fmt"
)

// Valores por defecto del dashboard.
const (
	DefaultSides  = 6
	DefaultRolls  = 250
	DefaultTrials = 5
)

// ErrInvalidParameter indica sides/rolls/trials fuera de dominio.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError dice qué parámetro falló y qué restricción rompe.
type InvalidParameterError struct {
	Param      string
	Constraint string
	Value      string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: must be %s (got %s)", e.Param, e.Constraint, e.Value)
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// Params de una simulación.
type Params struct {
	Sides  int
	Rolls  int
	Trials int
}

// Limits acota Params; un cero desactiva el tope.
type Limits struct {
	MaxSides  int
	MaxRolls  int
	MaxTrials int
	MaxPoints int // rolls*trials
}

// RollPoint es un punto de la serie: tirada n, valor sacado y media de las n primeras.
type RollPoint struct {
	Roll        int     `json:"roll"`
	Value       int     `json:"value"`
	RunningMean float64 `json:"running_mean"`
}

type TrialSeries struct {
	Trial int         `json:"trial"`
	Label string      `json:"label"`
	Rolls []RollPoint `json:"rolls"`
}

// Roller es la fuente de aleatoriedad; *rand.Rand la satisface.
type Roller interface {
	Intn(n int) int
}

func (p Params) Validate(l Limits) error {
	if err := checkRange("sides", p.Sides, l.MaxSides); err != nil {
		return err
	}
	if err := checkRange("rolls", p.Rolls, l.MaxRolls); err != nil {
		return err
	}
	if err := checkRange("trials", p.Trials, l.MaxTrials); err != nil {
		return err
	}
	if l.MaxPoints > 0 && p.Rolls > l.MaxPoints/p.Trials {
		return &InvalidParameterError{
			Param:      "rolls*trials",
			Constraint: fmt.Sprintf("an integer <= %d", l.MaxPoints),
			Value:      fmt.Sprintf("%d*%d", p.Rolls, p.Trials),
		}
	}
	return nil
}

func checkRange(name string, v, max int) error {
	if v < 1 {
		return &InvalidParameterError{Param: name, Constraint: "an integer >= 1", Value: fmt.Sprint(v)}
	}
	if max > 0 && v > max {
		return &InvalidParameterError{Param: name, Constraint: fmt.Sprintf("an integer <= %d", max), Value: fmt.Sprint(v)}
	}
	return nil
}
