package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Paths      []string `validate:"required,min=1,dive,required"` // option files or directories
	Format     string   `validate:"oneof=hcl json"`
	OutputPath string   // empty means the App's output writer

	LogFormat   string `validate:"oneof=text json pretty"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	WorkerCount int    `validate:"min=1"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed the '%s' check (value: %v)", fe.Namespace(), fe.ActualTag(), fe.Value()))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}
	return &cfg, nil
}
