package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount reads a user-typed amount exactly and rounds it to cents
// before converting to the wire representation. A comma is accepted as the
// decimal separator.
func parseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return d.Round(2).InexactFloat64(), nil
}

// parseOptionalAmount is parseAmount for flags that may be left empty.
func parseOptionalAmount(s string) (*float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := parseAmount(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
