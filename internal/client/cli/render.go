package cli

import (
	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
	"github.com/shopspring/decimal"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	negativeStyle = cellStyle.Foreground(lipgloss.Color("9"))
)

// renderTable draws rows under headers. Cells for which negative reports
// true are drawn in red.
func renderTable(headers []string, rows [][]string, negative func(row, col int) bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case negative != nil && row >= 0 && row < len(rows) && negative(row, col):
				return negativeStyle
			}
			return cellStyle
		})
	return t.String()
}

func formatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// formatMoney prints v in the currency of inst. Instruments whose short
// title is not an ISO 4217 code are printed as a plain amount and the title.
func formatMoney(v float64, inst *models.Instrument) string {
	if inst == nil {
		return formatAmount(v)
	}
	cur := money.GetCurrency(inst.ShortTitle)
	if cur == nil {
		return formatAmount(v) + " " + inst.ShortTitle
	}
	units := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(units, cur.Code).Display()
}
