package cli

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "12", want: 12},
		{in: " 0.1 ", want: 0.1},
		{in: "3,499", want: 3.5},
		{in: "-7.005", want: -7.01},
		{in: "ten", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAmount(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	v, err := parseOptionalAmount("  ")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestParseDay(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	d, err := parseDay("2024-02-29", now)
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2024, Month: 2, Day: 29}, d)

	d, err = parseDay("yesterday", now)
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2024, Month: 3, Day: 9}, d)

	_, err = parseDay("qwerty", now)
	require.Error(t, err)

	p, err := parseOptionalDay("", now)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestFormatMoney(t *testing.T) {
	usd := &models.Instrument{ShortTitle: "USD"}
	jpy := &models.Instrument{ShortTitle: "JPY"}
	odd := &models.Instrument{ShortTitle: "BTCX"}

	assert.Equal(t, "$1,234.50", formatMoney(1234.5, usd))
	assert.Equal(t, "-$0.10", formatMoney(-0.1, usd))
	assert.Equal(t, "¥1,235", formatMoney(1234.5, jpy))
	assert.Equal(t, "0.30 BTCX", formatMoney(0.3, odd))
	assert.Equal(t, "5.00", formatMoney(5, nil))
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"Name", "Amount"}, [][]string{{"coffee", "-3.50"}, {"salary", "+10.00"}}, func(row, col int) bool {
		return row == 0 && col == 1
	})
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "coffee")
	assert.Contains(t, out, "+10.00")

	assert.Contains(t, renderTable([]string{"Empty"}, nil, nil), "Empty")
}
