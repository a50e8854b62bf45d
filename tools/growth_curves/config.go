package growth_curves

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidConfig = errors.New("invalid growth config")
	ErrInvalidCount  = errors.New("curve count must be positive")
)

// Config holds every constant of the growth model. Lag is measured in whole
// time steps and may not exceed the horizon. Noise is a +/- fraction applied
// to each point (0 disables it).
type Config struct {
	Horizon  int     `validate:"gt=0"`
	Capacity float64 `validate:"gt=0"`
	Initial  float64 `validate:"gt=0,ltfield=Capacity"`
	LagMin   int     `validate:"gte=0"`
	LagMax   int     `validate:"gtefield=LagMin,ltefield=Horizon"`
	RateMin  float64 `validate:"gt=0"`
	RateMax  float64 `validate:"gtefield=RateMin"`
	Noise    float64 `validate:"gte=0,lt=1"`
	Fraction float64 `validate:"gt=0,lte=1"`
}

func DefaultConfig() Config {
	return Config{
		Horizon:  50,
		Capacity: 1000,
		Initial:  10,
		LagMin:   2,
		LagMax:   5,
		RateMin:  0.2,
		RateMax:  0.8,
		Noise:    0,
		Fraction: 0.8,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports every failing field in one error wrapping ErrInvalidConfig
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v fails %s%s", fe.Field(), fe.Value(), fe.Tag(), paramSuffix(fe.Param())))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func paramSuffix(p string) string {
	if p == "" {
		return ""
	}
	return " " + p
}
