package output

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rgehrsitz/naegele/internal/domain"
)

// TableFormatter renders the result as a bordered console table.
type TableFormatter struct{}

func (TableFormatter) Name() string { return "table" }

func (TableFormatter) Format(res *domain.Result) ([]byte, error) {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"LNMP", "EDD", "WOA"})
	tw.AppendRow(table.Row{res.LNMP, res.EDD, res.WOA})
	return []byte(tw.Render() + "\n"), nil
}
