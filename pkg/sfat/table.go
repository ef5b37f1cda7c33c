package sfat

import "fmt"

// Spatial table columns.
const (
	ColumnX        = "x"
	ColumnSigmaX   = "σ(x)"
	ColumnVLog     = "V_log"
	ColumnRhoBio   = "ρ_bio"
	ColumnLifeTerm = "life_term"
	ColumnLTotal   = "L_total"
)

// Temporal table columns.
const (
	ColumnT      = "t"
	ColumnSigmaT = "σ(t)"
)

// Display names of the derived tables.
const (
	SpatialTableName  = "SFAT - Spatial Model with Life Coupling"
	TemporalTableName = "SFAT - Temporal Evolution of σ(t)"
)

// Column is a named, ordered sequence of values.
type Column struct {
	Name   string
	Values []float64
}

// Table is a set of equally long columns, one row per domain point.
// Tables are built once and only read afterwards.
type Table struct {
	Name    string
	Columns []Column
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Headers returns the column names in order.
func (t *Table) Headers() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns a copy of the values of the named column.
func (t *Table) Column(name string) ([]float64, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return append([]float64(nil), c.Values...), true
		}
	}
	return nil, false
}

// Row returns the i-th row across all columns.
func (t *Table) Row(i int) []float64 {
	row := make([]float64, len(t.Columns))
	for j, c := range t.Columns {
		row[j] = c.Values[i]
	}
	return row
}

// SpatialTable evaluates the spatial formulas over xs.
// Every x must be positive.
func (m *Model) SpatialTable(xs Domain) (*Table, error) {
	n := len(xs)
	sigma := make([]float64, n)
	vlog := make([]float64, n)
	rho := make([]float64, n)
	life := make([]float64, n)
	total := make([]float64, n)

	for i, x := range xs {
		s, err := m.Constants.Sigma(x)
		if err != nil {
			return nil, fmt.Errorf("spatial table row %d: %w", i, err)
		}
		sigma[i] = s
		vlog[i] = m.Constants.LogPeriodicPotential(s)
		rho[i] = m.Density.Normalized(x)
		life[i] = rho[i] * m.Constants.LambdaLife
		total[i] = vlog[i] + life[i]
	}

	return &Table{
		Name: SpatialTableName,
		Columns: []Column{
			{Name: ColumnX, Values: append([]float64(nil), xs...)},
			{Name: ColumnSigmaX, Values: sigma},
			{Name: ColumnVLog, Values: vlog},
			{Name: ColumnRhoBio, Values: rho},
			{Name: ColumnLifeTerm, Values: life},
			{Name: ColumnLTotal, Values: total},
		},
	}, nil
}

// TemporalTable evaluates σ(t) over ts. Every t must be positive.
func (c Constants) TemporalTable(ts Domain) (*Table, error) {
	sigma := make([]float64, len(ts))
	for i, t := range ts {
		s, err := c.SigmaTime(t)
		if err != nil {
			return nil, fmt.Errorf("temporal table row %d: %w", i, err)
		}
		sigma[i] = s
	}

	return &Table{
		Name: TemporalTableName,
		Columns: []Column{
			{Name: ColumnT, Values: append([]float64(nil), ts...)},
			{Name: ColumnSigmaT, Values: sigma},
		},
	}, nil
}
