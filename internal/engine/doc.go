// Package engine is the hydraulic calculation core: friction-factor
// root-finding, head-loss aggregation, pump-curve fitting, affinity scaling,
// operating-point intersection, NPSH margin evaluation and standards
// compliance checks.
//
// Everything in this package is a pure function or an immutable value
// constructed from validated inputs. Nothing here performs I/O, holds mutable
// shared state, or depends on the HTTP/service layers; reference tables are
// read-only defaults that callers may substitute at construction time.
// Iterative methods (Colebrook–White, operating-point bisection) carry hard
// iteration caps, so worst-case latency is bounded and the package is safe to
// call concurrently from independent requests.
//
// Units are SI throughout: m, m³/s, Pa, kg/m³, m²/s, °C. No implicit unit
// conversion is performed.
package engine
