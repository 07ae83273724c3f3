package engine

import (
	"fmt"
	"math"
	"sort"

	"pump_sizing"
)

// minCurvePoints is the minimum sample count for a quadratic fit.
const minCurvePoints = 3

// CurveSamples is the caller-supplied sampled pump data. Head is required;
// the rest are optional, but when present each needs at least three points.
type CurveSamples struct {
	Head       []pump_sizing.CurvePoint // (Q, H) pairs, m
	Power      []pump_sizing.CurvePoint // (Q, P) pairs, W
	Efficiency []pump_sizing.CurvePoint // (Q, η) pairs, 0..1
	NPSHR      []pump_sizing.CurvePoint // (Q, NPSHr) pairs, m
}

// quadFit is a fitted degree-2 polynomial c0 + c1·q + c2·q².
type quadFit struct {
	c0, c1, c2 float64
	ok         bool
}

func (f quadFit) eval(q float64) float64 { return f.c0 + q*(f.c1+q*f.c2) }

// PumpCurveModel holds the sampled pump data and its fitted coefficients.
// It is immutable after construction; affinity scaling always produces a new
// instance.
type PumpCurveModel struct {
	qMin, qMax float64
	samples    CurveSamples
	head       quadFit
	power      quadFit
	eff        quadFit
	npshr      quadFit
}

// NewPumpCurveModel fits each supplied relation independently with a
// least-squares quadratic. Fewer than three head points is an error; so is an
// optional series with one or two points, since it cannot be fitted.
func NewPumpCurveModel(s CurveSamples) (*PumpCurveModel, error) {
	if len(s.Head) < minCurvePoints {
		return nil, fmt.Errorf("%w: head curve needs at least %d points, got %d", ErrInvalidInput, minCurvePoints, len(s.Head))
	}
	m := &PumpCurveModel{samples: copySamples(s)}
	sort.Slice(m.samples.Head, func(i, j int) bool { return m.samples.Head[i].Q < m.samples.Head[j].Q })
	m.qMin = m.samples.Head[0].Q
	m.qMax = m.samples.Head[len(m.samples.Head)-1].Q
	if m.qMin < 0 {
		return nil, fmt.Errorf("%w: head curve contains negative flow %g", ErrInvalidInput, m.qMin)
	}

	var err error
	if m.head, err = fitQuadratic("head", m.samples.Head); err != nil {
		return nil, err
	}
	for _, series := range []struct {
		name string
		pts  []pump_sizing.CurvePoint
		dst  *quadFit
	}{
		{"power", m.samples.Power, &m.power},
		{"efficiency", m.samples.Efficiency, &m.eff},
		{"npshr", m.samples.NPSHR, &m.npshr},
	} {
		if len(series.pts) == 0 {
			continue
		}
		if *series.dst, err = fitQuadratic(series.name, series.pts); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Domain returns the sampled flow range [qMin, qMax] of the head curve.
func (m *PumpCurveModel) Domain() (qMin, qMax float64) { return m.qMin, m.qMax }

// ShutoffHead is the fitted head at zero flow.
func (m *PumpCurveModel) ShutoffHead() float64 { return m.head.eval(0) }

// Head evaluates H(Q). extrapolated=true flags evaluation outside the sampled
// range: the value is returned, but it is explicit extrapolation, not equally
// trustworthy.
func (m *PumpCurveModel) Head(q float64) (h float64, extrapolated bool) {
	return m.head.eval(q), q < m.qMin || q > m.qMax
}

// Power evaluates P(Q). Second result is false when no power samples were
// supplied.
func (m *PumpCurveModel) Power(q float64) (p float64, ok bool) {
	if !m.power.ok {
		return 0, false
	}
	return m.power.eval(q), true
}

// Efficiency evaluates η(Q). Second result is false when no efficiency
// samples were supplied.
func (m *PumpCurveModel) Efficiency(q float64) (eta float64, ok bool) {
	if !m.eff.ok {
		return 0, false
	}
	return m.eff.eval(q), true
}

// NPSHR evaluates the required NPSH at q. Absence of NPSHr samples is
// ErrMissingData: the caller must then supply the value itself.
func (m *PumpCurveModel) NPSHR(q float64) (float64, error) {
	if !m.npshr.ok {
		return 0, fmt.Errorf("%w: pump curve carries no NPSH-required samples", ErrMissingData)
	}
	return m.npshr.eval(q), nil
}

// Samples returns a copy of the sampled data the model was built from.
func (m *PumpCurveModel) Samples() CurveSamples { return copySamples(m.samples) }

// fitQuadratic solves the 3x3 normal equations of the degree-2 least-squares
// problem with Gaussian elimination (partial pivoting). Collinear or
// duplicated abscissae make the system singular, which is an input defect.
func fitQuadratic(name string, pts []pump_sizing.CurvePoint) (quadFit, error) {
	if len(pts) < minCurvePoints {
		return quadFit{}, fmt.Errorf("%w: %s curve needs at least %d points, got %d", ErrInvalidInput, name, minCurvePoints, len(pts))
	}
	// Accumulate Σq^k and Σq^k·v for k = 0..4.
	var s [5]float64
	var b [3]float64
	for _, p := range pts {
		qk := 1.0
		for k := 0; k <= 4; k++ {
			s[k] += qk
			if k <= 2 {
				b[k] += qk * p.V
			}
			qk *= p.Q
		}
	}
	a := [3][4]float64{
		{s[0], s[1], s[2], b[0]},
		{s[1], s[2], s[3], b[1]},
		{s[2], s[3], s[4], b[2]},
	}
	// Forward elimination with partial pivoting.
	for col := 0; col < 3; col++ {
		pivot := col
		for row := col + 1; row < 3; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		a[col], a[pivot] = a[pivot], a[col]
		if math.Abs(a[col][col]) < 1e-12 {
			return quadFit{}, fmt.Errorf("%w: %s curve samples are degenerate (duplicate or collinear flow values)", ErrInvalidInput, name)
		}
		for row := col + 1; row < 3; row++ {
			factor := a[row][col] / a[col][col]
			for k := col; k < 4; k++ {
				a[row][k] -= factor * a[col][k]
			}
		}
	}
	// Back substitution.
	var c [3]float64
	for row := 2; row >= 0; row-- {
		c[row] = a[row][3]
		for k := row + 1; k < 3; k++ {
			c[row] -= a[row][k] * c[k]
		}
		c[row] /= a[row][row]
	}
	return quadFit{c0: c[0], c1: c[1], c2: c[2], ok: true}, nil
}

func copySamples(s CurveSamples) CurveSamples {
	return CurveSamples{
		Head:       copyPoints(s.Head),
		Power:      copyPoints(s.Power),
		Efficiency: copyPoints(s.Efficiency),
		NPSHR:      copyPoints(s.NPSHR),
	}
}

func copyPoints(pts []pump_sizing.CurvePoint) []pump_sizing.CurvePoint {
	if pts == nil {
		return nil
	}
	out := make([]pump_sizing.CurvePoint, len(pts))
	copy(out, pts)
	return out
}
