package output

import (
	"encoding/json"

	"github.com/rgehrsitz/naegele/internal/domain"
)

// JSONFormatter renders the result as a JSON document.
type JSONFormatter struct {
	Pretty bool
}

func (JSONFormatter) Name() string { return "json" }

func (f JSONFormatter) Format(res *domain.Result) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if f.Pretty {
		data, err = json.MarshalIndent(res, "", "  ")
	} else {
		data, err = json.Marshal(res)
	}
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
