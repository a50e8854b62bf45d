package growth_curves

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// Curve is one population series indexed by time step
type Curve []float64

// CurveParams records the random draws behind a curve
type CurveParams struct {
	CurveID int
	Lag     int
	Rate    float64
}

// Simulator draws logistic growth curves from a fixed Config.
// It is not safe for concurrent use; give each goroutine its own.
type Simulator struct {
	cfg  Config
	rng  *rand.Rand
	rate distuv.Uniform
}

// NewSimulator validates cfg and binds every random draw to src
func NewSimulator(cfg Config, src rand.Source) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{
		cfg:  cfg,
		rng:  rand.New(src),
		rate: distuv.Uniform{Min: cfg.RateMin, Max: cfg.RateMax, Src: src},
	}, nil
}

// NewSeeded is NewSimulator with a PCG source; seed 0 seeds from the clock
func NewSeeded(cfg Config, seed uint64) (*Simulator, error) {
	return NewSimulator(cfg, rand.NewPCG(ResolveSeed(seed), 0))
}

// ResolveSeed maps the "no seed" value 0 to a clock based one
func ResolveSeed(seed uint64) uint64 {
	if seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return seed
}

func (s *Simulator) Config() Config { return s.cfg }

// Curve draws a lag and a growth rate and evaluates the model at every
// time step of the horizon.
func (s *Simulator) Curve() (Curve, CurveParams) {
	// LagMax <= Horizon keeps the span small
	lag := s.cfg.LagMin + s.rng.IntN(s.cfg.LagMax-s.cfg.LagMin+1)
	rate := s.rate.Rand()

	curve := make(Curve, s.cfg.Horizon)
	for t := range curve {
		v := LogisticValue(t, lag, rate, s.cfg.Capacity, s.cfg.Initial)
		if s.cfg.Noise > 0 {
			v *= 1 + (2*s.rng.Float64()-1)*s.cfg.Noise
			v = math.Min(math.Max(v, 0), s.cfg.Capacity)
		}
		curve[t] = v
	}
	return curve, CurveParams{Lag: lag, Rate: rate}
}

// LogisticValue is the population at step t. Before lag it is flat at
// initial; from lag onward it follows
//
//	capacity / (1 + exp(-rate * (t - lag - midpoint)))
//
// where midpoint = ln(capacity/initial - 1) / rate places the start of growth
// exactly at initial, so the curve is continuous and never decreases.
func LogisticValue(t, lag int, rate, capacity, initial float64) float64 {
	if t < lag {
		return initial
	}
	midpoint := math.Log(capacity/initial-1) / rate
	v := capacity / (1 + math.Exp(-rate*(float64(t-lag)-midpoint)))
	// rounding at t == lag can land a hair below initial
	return math.Max(v, initial)
}
