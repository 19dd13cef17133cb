package economics

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"wellecon/internal/model"
)

// RoundMoney rounds dollars to cents.
func RoundMoney(x float64) decimal.Decimal {
	return decimal.NewFromFloat(x).Round(2)
}

func WriteFlowCSV(path string, flow []model.MonthlyCashFlow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteFlowCSVTo(f, flow)
}

func WriteFlowCSVTo(out io.Writer, flow []model.MonthlyCashFlow) error {
	w := csv.NewWriter(out)

	header := []string{
		"month",
		"oil_production_bbl",
		"revenue",
		"capex",
		"opex",
		"net_cash_flow",
		"cumulative_cash_flow",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range flow {
		row := []string{
			strconv.Itoa(r.Month),
			fmtVolume(r.OilProduction),
			fmtMoney(r.Revenue),
			fmtMoney(r.Capex),
			fmtMoney(r.Opex),
			fmtMoney(r.NetCashFlow),
			fmtMoney(r.CumulativeCashFlow),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtMoney(x float64) string {
	return RoundMoney(x).StringFixed(2)
}

func fmtVolume(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
