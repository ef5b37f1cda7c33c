package output

import (
	"strconv"

	"github.com/sfat-model/sfat/pkg/sfat"
)

// TableOutput is the structured form of a derived table.
type TableOutput struct {
	Name    string      `json:"name" yaml:"name"`
	Columns []string    `json:"columns" yaml:"columns"`
	Rows    [][]float64 `json:"rows" yaml:"rows"`
}

// NewTableOutput converts a derived table.
func NewTableOutput(t *sfat.Table) TableOutput {
	rows := make([][]float64, t.Len())
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return TableOutput{Name: t.Name, Columns: t.Headers(), Rows: rows}
}

// BetaRow is one evaluated point of the beta function. Beta is nil where
// the function is undefined.
type BetaRow struct {
	G       float64  `json:"g" yaml:"g"`
	Beta    *float64 `json:"beta" yaml:"beta"`
	Defined bool     `json:"defined" yaml:"defined"`
}

// BetaOutput is the structured form of the beta table.
type BetaOutput struct {
	Amplitude float64   `json:"amplitude" yaml:"amplitude"`
	Rows      []BetaRow `json:"rows" yaml:"rows"`
}

// NewBetaOutput converts evaluated beta results.
func NewBetaOutput(amplitude float64, results []sfat.BetaResult) BetaOutput {
	rows := make([]BetaRow, len(results))
	for i, b := range results {
		rows[i] = BetaRow{G: b.G, Defined: b.Defined}
		if b.Defined {
			v := b.Value
			rows[i].Beta = &v
		}
	}
	return BetaOutput{Amplitude: amplitude, Rows: rows}
}

// PredictionOutput is one cosmological prediction.
type PredictionOutput struct {
	Redshift         float64 `json:"z" yaml:"z"`
	SFAT             float64 `json:"sfat" yaml:"sfat"`
	LambdaCDM        float64 `json:"lambda_cdm" yaml:"lambda_cdm"`
	DeviationPercent float64 `json:"deviation_percent" yaml:"deviation_percent"`
}

// NewPredictionOutputs converts predictions.
func NewPredictionOutputs(ps []sfat.Prediction) []PredictionOutput {
	out := make([]PredictionOutput, len(ps))
	for i, p := range ps {
		out[i] = PredictionOutput{
			Redshift:         p.Redshift,
			SFAT:             p.Predicted,
			LambdaCDM:        p.Baseline,
			DeviationPercent: p.DeviationPercent,
		}
	}
	return out
}

// PillarsOutput lists the foundational pillars.
type PillarsOutput struct {
	Title   string   `json:"title" yaml:"title"`
	Pillars []string `json:"pillars" yaml:"pillars"`
}

// ConstantInfo is one named model parameter.
type ConstantInfo struct {
	Name        string  `json:"name" yaml:"name"`
	Symbol      string  `json:"symbol" yaml:"symbol"`
	Value       float64 `json:"value" yaml:"value"`
	Description string  `json:"description" yaml:"description"`
}

// ReportOutput bundles everything the run command computes.
type ReportOutput struct {
	Pillars     PillarsOutput      `json:"pillars" yaml:"pillars"`
	Space       TableOutput        `json:"space" yaml:"space"`
	Time        TableOutput        `json:"time" yaml:"time"`
	Predictions []PredictionOutput `json:"predictions" yaml:"predictions"`
}

// FormatFloat formats v with a fixed number of decimals.
// A negative precision uses the shortest exact representation.
func FormatFloat(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// TableCells formats every row of t for Grid.
func TableCells(t *sfat.Table, precision int) [][]string {
	rows := make([][]string, t.Len())
	for i := range rows {
		vals := t.Row(i)
		cells := make([]string, len(vals))
		for j, v := range vals {
			cells[j] = FormatFloat(v, precision)
		}
		rows[i] = cells
	}
	return rows
}
