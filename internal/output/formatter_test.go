package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/naegele/internal/domain"
)

func sampleResult() *domain.Result {
	return &domain.Result{
		LNMP: "01/01/2024",
		EDD:  "08/10/2024",
		WOA:  "10 weeks, 3 days",
		Age:  domain.GestationalAge{Weeks: 10, Days: 3},
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "json", "yaml", "table", "csv"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, "formatter %q should be registered", name)
		assert.Equal(t, name, f.Name())
	}

	assert.Nil(t, GetFormatterByName("non-existent"))
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "console")
	assert.Contains(t, names, "json")
	assert.Contains(t, names, "yaml")
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	assert.Equal(t, "EDD: 08/10/2024\nWOA: 10 weeks, 3 days\n", string(data))
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{Pretty: true}.Format(sampleResult())
	require.NoError(t, err)

	var decoded domain.Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *sampleResult(), decoded)
}

func TestYAMLFormatter(t *testing.T) {
	data, err := YAMLFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	var decoded domain.Result
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, *sampleResult(), decoded)
}

func TestTableFormatter(t *testing.T) {
	data, err := TableFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "LNMP")
	assert.Contains(t, out, "08/10/2024")
	assert.Contains(t, out, "10 weeks, 3 days")
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"lnmp", "edd", "woa", "woa_weeks", "woa_days"}, records[0])
	assert.Equal(t, []string{"01/01/2024", "08/10/2024", "10 weeks, 3 days", "10", "3"}, records[1])
}
