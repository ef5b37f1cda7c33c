// Package sfat evaluates the closed-form formulas of the SFAT golden-ratio
// fractal field model.
//
// This package contains:
//   - Model constants (Constants) and the golden ratio Phi
//   - Evenly spaced sampling domains (Domain, Linspace)
//   - The fractal scale field, log-periodic potential, biological density,
//     beta function and cosmological prediction
//   - Derived tables assembled from a domain (Table)
//
// Every operation is a pure function of its inputs. Logarithmic
// singularities are rejected with ErrDomain instead of producing
// infinities or NaNs.
package sfat
