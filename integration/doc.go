// Package integration provides composite Newton–Cotes quadrature over plain
// functions: trapezium, Simpson 1/3 and Simpson 3/8.
//
// Every rule splits [start, end] into n equal panels (WithSubdivisions) and
// evaluates its stencil on each panel. Reversed bounds yield the negated
// integral; equal bounds yield 0.
//
// Grid exposes the panel boundaries as a *matrix.Vector so callers can
// tabulate f on exactly the points a rule visits.
package integration
