package dice

import "fmt"

// Simulate tira Trials series de Rolls dados de Sides caras y devuelve la media
// acumulada de cada serie. Las series consumen rng en orden, así que con la
// misma semilla el resultado es idéntico.
func Simulate(rng Roller, p Params) ([]TrialSeries, error) {
	return SimulateWithLimits(rng, p, Limits{})
}

func SimulateWithLimits(rng Roller, p Params, l Limits) ([]TrialSeries, error) {
	if err := p.Validate(l); err != nil {
		return nil, err
	}

	out := make([]TrialSeries, 0, p.Trials)
	for t := 1; t <= p.Trials; t++ {
		points := make([]RollPoint, 0, p.Rolls)
		sum := 0
		for i := 1; i <= p.Rolls; i++ {
			v := rollDie(rng, p.Sides)
			sum += v
			points = append(points, RollPoint{
				Roll:        i,
				Value:       v,
				RunningMean: float64(sum) / float64(i),
			})
		}
		out = append(out, TrialSeries{
			Trial: t,
			Label: fmt.Sprintf("Trial %d", t),
			Rolls: points,
		})
	}
	return out, nil
}

// rollDie devuelve un entero uniforme en [1, sides].
func rollDie(rng Roller, sides int) int {
	return rng.Intn(sides) + 1
}
