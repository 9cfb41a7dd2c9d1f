package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/naegele/internal/domain"
)

// ConsoleFormatter renders the plain two-line report used by the CLI by
// default.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(res *domain.Result) ([]byte, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "EDD: %s\n", res.EDD)
	fmt.Fprintf(&sb, "WOA: %s\n", res.WOA)
	return []byte(sb.String()), nil
}
