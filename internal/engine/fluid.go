package engine

import (
	"fmt"
	"sort"

	"pump_sizing"
)

// PropertyRow is one temperature row of a fluid property table.
type PropertyRow struct {
	TempC         float64
	Density       float64 // kg/m³
	KinematicVisc float64 // m²/s
	VaporPressure float64 // Pa
}

// waterTable holds water properties at atmospheric pressure (ISO tables,
// 0–100 °C). Density and viscosity match the reference tables used for
// acceptance testing; vapor pressure is the saturation pressure.
var waterTable = []PropertyRow{
	{0, 999.8, 1.787e-6, 611},
	{5, 1000.0, 1.519e-6, 872},
	{10, 999.7, 1.307e-6, 1228},
	{15, 999.1, 1.139e-6, 1706},
	{20, 998.2, 1.004e-6, 2339},
	{25, 997.0, 0.893e-6, 3169},
	{30, 995.7, 0.801e-6, 4246},
	{40, 992.2, 0.658e-6, 7384},
	{50, 988.0, 0.553e-6, 12349},
	{60, 983.2, 0.475e-6, 19940},
	{70, 977.8, 0.413e-6, 31190},
	{80, 971.8, 0.364e-6, 47390},
	{90, 965.3, 0.326e-6, 70140},
	{100, 958.4, 0.294e-6, 101325},
}

// FluidResolver maps a temperature to fluid properties by linear
// interpolation over an immutable property table.
type FluidResolver struct {
	table []PropertyRow
}

// NewFluidResolver builds a resolver over the given table, defaulting to the
// water table when rows is empty. The table is copied and sorted by
// temperature, so the resolver is safe for unsynchronized concurrent reads.
func NewFluidResolver(rows []PropertyRow) (*FluidResolver, error) {
	if rows == nil {
		rows = waterTable
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: property table needs at least 2 rows, got %d", ErrInvalidInput, len(rows))
	}
	t := make([]PropertyRow, len(rows))
	copy(t, rows)
	sort.Slice(t, func(i, j int) bool { return t[i].TempC < t[j].TempC })
	for _, r := range t {
		if r.Density <= 0 || r.KinematicVisc <= 0 {
			return nil, fmt.Errorf("%w: property row at %.1f°C has non-positive density or viscosity", ErrInvalidInput, r.TempC)
		}
	}
	return &FluidResolver{table: t}, nil
}

// Resolve returns the fluid properties at tempC. Temperatures outside the
// table are answered with the nearest endpoint row and an OutOfRange flag
// rather than rejected.
func (r *FluidResolver) Resolve(tempC float64) pump_sizing.FluidProperties {
	first, last := r.table[0], r.table[len(r.table)-1]
	switch {
	case tempC <= first.TempC:
		return props(tempC, first, tempC < first.TempC)
	case tempC >= last.TempC:
		return props(tempC, last, tempC > last.TempC)
	}
	// tempC is strictly inside the table: find the bracketing rows.
	hi := sort.Search(len(r.table), func(i int) bool { return r.table[i].TempC >= tempC })
	a, b := r.table[hi-1], r.table[hi]
	frac := (tempC - a.TempC) / (b.TempC - a.TempC)
	return pump_sizing.FluidProperties{
		TemperatureC:  tempC,
		Density:       lerp(a.Density, b.Density, frac),
		KinematicVisc: lerp(a.KinematicVisc, b.KinematicVisc, frac),
		VaporPressure: lerp(a.VaporPressure, b.VaporPressure, frac),
	}
}

func props(tempC float64, row PropertyRow, outOfRange bool) pump_sizing.FluidProperties {
	return pump_sizing.FluidProperties{
		TemperatureC:  tempC,
		Density:       row.Density,
		KinematicVisc: row.KinematicVisc,
		VaporPressure: row.VaporPressure,
		OutOfRange:    outOfRange,
	}
}

func lerp(a, b, frac float64) float64 { return a + (b-a)*frac }

// ValidateFluid checks the preconditions on caller-supplied properties.
func ValidateFluid(f pump_sizing.FluidProperties) error {
	if f.Density <= 0 {
		return fmt.Errorf("%w: density must be positive, got %g", ErrInvalidInput, f.Density)
	}
	if f.KinematicVisc <= 0 {
		return fmt.Errorf("%w: kinematic viscosity must be positive, got %g", ErrInvalidInput, f.KinematicVisc)
	}
	return nil
}
