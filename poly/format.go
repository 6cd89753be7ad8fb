// SPDX-License-Identifier: MIT

package poly

import (
	"math/big"
	"strconv"
	"strings"
)

// String renders p in conventional notation, e.g. "x^2 - 2" or "-x^5 + x + 1".
func (p Poly) String() string {
	c := p.raw()
	if p.IsZero() {
		return "0"
	}
	d := len(c) - 1
	var (
		sb  strings.Builder
		abs = new(big.Int)
		one = big.NewInt(1)
	)
	first := true
	for i, v := range c {
		if v.Sign() == 0 {
			continue
		}
		deg := d - i
		switch {
		case first && v.Sign() < 0:
			sb.WriteString("-")
		case !first && v.Sign() < 0:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false

		abs.Abs(v)
		if deg == 0 || abs.Cmp(one) != 0 {
			sb.WriteString(abs.String())
		}
		switch deg {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(deg))
		}
	}

	return sb.String()
}
