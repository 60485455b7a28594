package config

import (
	"log/slog"

	"github.com/pdrpinto/gridpath"
)

// Options translates the search limits into search options. Zero limits are
// left unset.
func (c SearchConfig) Options(logger *slog.Logger) []gridpath.Option {
	options := []gridpath.Option{gridpath.WithWorkers(c.Workers)}
	if c.MaxExpansions > 0 {
		options = append(options, gridpath.WithMaxExpansions(c.MaxExpansions))
	}
	if c.Timeout > 0 {
		options = append(options, gridpath.WithTimeout(c.Timeout))
	}
	if logger != nil {
		options = append(options, gridpath.WithLogger(logger))
	}
	return options
}
