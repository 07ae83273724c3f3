package engine

// Gravity is the gravitational acceleration used across all head/pressure
// conversions (m/s²).
const Gravity = 9.81

// Reynolds-number regime boundaries for pipe flow.
const (
	ReLaminarMax   = 2300.0
	ReTurbulentMin = 4000.0
)

// Config bundles the tuning knobs of the iterative solvers. Zero values are
// replaced with defaults by the constructors, so an empty Config is usable.
type Config struct {
	FrictionTol     float64 // convergence tolerance on f between iterations
	FrictionMaxIter int     // Colebrook–White iteration cap
	RootTolRel      float64 // relative tolerance on Q for the operating point
	RootMaxIter     int     // bisection/secant iteration cap
	ScanSamples     int     // grid density for the sign-change scan
	NPSHMinMarginM  float64 // minimum acceptable NPSH margin (m)
}

// DefaultConfig returns the standard solver settings.
func DefaultConfig() Config {
	return Config{
		FrictionTol:     1e-6,
		FrictionMaxIter: 50,
		RootTolRel:      1e-6,
		RootMaxIter:     100,
		ScanSamples:     200,
		NPSHMinMarginM:  0.5,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.FrictionTol <= 0 {
		c.FrictionTol = d.FrictionTol
	}
	if c.FrictionMaxIter <= 0 {
		c.FrictionMaxIter = d.FrictionMaxIter
	}
	if c.RootTolRel <= 0 {
		c.RootTolRel = d.RootTolRel
	}
	if c.RootMaxIter <= 0 {
		c.RootMaxIter = d.RootMaxIter
	}
	if c.ScanSamples < 2 {
		c.ScanSamples = d.ScanSamples
	}
	if c.NPSHMinMarginM <= 0 {
		c.NPSHMinMarginM = d.NPSHMinMarginM
	}
	return c
}
