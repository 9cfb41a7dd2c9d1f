package output

import (
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/naegele/internal/domain"
)

// YAMLFormatter renders the result as a YAML document.
type YAMLFormatter struct{}

func (YAMLFormatter) Name() string { return "yaml" }

func (YAMLFormatter) Format(res *domain.Result) ([]byte, error) {
	return yaml.Marshal(res)
}
