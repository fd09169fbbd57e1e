// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/minila/matrix"
)

var errUnknownFunction = errors.New("minila: unknown function")

// functions are the named scalar functions accepted by --fn.
var functions = map[string]func(float64) float64{
	"sin":    math.Sin,
	"cos":    math.Cos,
	"exp":    math.Exp,
	"square": func(x float64) float64 { return x * x },
	"cubic":  func(x float64) float64 { return x*x*x - 2*x - 5 },
}

// functionNames lists the keys of functions in sorted order.
func functionNames() []string {
	names := lo.Keys(functions)
	sort.Strings(names)

	return names
}

func lookupFunction(name string) (func(float64) float64, error) {
	f, ok := functions[name]
	if !ok {
		return nil, fmt.Errorf("%q (want one of %s): %w", name, strings.Join(functionNames(), ", "), errUnknownFunction)
	}

	return f, nil
}

// parseRow parses "1, 2, 3" into floats.
func parseRow(s string) ([]float64, error) {
	fields := lo.Map(strings.Split(s, ","), func(f string, _ int) string { return strings.TrimSpace(f) })
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

// parseMatrix parses "a,b;c,d" into a row-major matrix.
func parseMatrix(s string) (*matrix.Matrix[float64], error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return matrix.NewMatrix[float64](0, 0)
	}
	rows := lo.Filter(strings.Split(s, ";"), func(r string, _ int) bool { return strings.TrimSpace(r) != "" })
	vals := make([][]float64, len(rows))
	for i, r := range rows {
		row, err := parseRow(r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		vals[i] = row
	}

	return matrix.NewFromRows(vals)
}
