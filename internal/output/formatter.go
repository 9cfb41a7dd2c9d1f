// Package output renders computation results in the supported report
// formats. Formatters are pluggable and looked up by name from the CLI's
// --format flag.
package output

import (
	"strings"

	"github.com/rgehrsitz/naegele/internal/domain"
)

// Formatter renders a computation result as bytes ready for stdout.
type Formatter interface {
	Name() string
	Format(res *domain.Result) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{Pretty: true},
	YAMLFormatter{},
	TableFormatter{},
	CSVFormatter{},
}

// GetFormatterByName returns the named formatter, or nil if no formatter is
// registered under that name.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// Names returns the registered formatter names as a comma-separated list,
// for flag help and error text.
func Names() string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return strings.Join(names, ", ")
}
