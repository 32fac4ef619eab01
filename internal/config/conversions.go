package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/estate-calc/internal/calculator"
	"github.com/iwvelando/estate-calc/pkg/validation"
)

// ConversionConfig holds one unit conversion for the CLI to run.
type ConversionConfig struct {
	Family string `yaml:"family"` // area, length
	Value  string `yaml:"value"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
}

// Form returns the conversion as converter form input.
func (c ConversionConfig) Form() calculator.ConverterForm {
	return calculator.ConverterForm{
		Family: c.Family,
		Value:  c.Value,
		From:   c.From,
		To:     c.To,
	}
}

// Validate returns warnings for a conversion that cannot produce a result.
func (c ConversionConfig) Validate() []string {
	var warnings []string

	if _, err := c.Form().Recompute(); err != nil {
		warnings = append(warnings, err.Error())
	}
	if _, ok := validation.ParseQuantity(c.Value); !ok {
		value := strings.TrimSpace(c.Value)
		if value == "" {
			warnings = append(warnings, "value is empty - no result will be shown")
		} else {
			warnings = append(warnings, fmt.Sprintf("value %q is not a number - no result will be shown", value))
		}
	}
	return warnings
}

// ErrNoConversions is returned when conversions are requested but none are configured.
var ErrNoConversions = errors.New("no conversions configured")
