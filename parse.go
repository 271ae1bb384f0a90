// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rt

import (
	"strconv"
	"strings"
)

// ParseInt parses s as a signed integer in the given base (2..36), with
// base==0 autodetecting a 0x/0b/0 prefix. Overflow is reported as
// a distinguished outcome rather than silently clamping.
func ParseInt(s string, base int) (int64, ParseOutcome) {
	v, err := strconv.ParseInt(s, base, 64)
	if err == nil {
		return v, ParseOK
	}
	if ne, ok := err.(*strconv.NumError); ok {
		if ne.Err == strconv.ErrRange {
			return 0, ParseOverflow
		}
	}
	return 0, ParseInvalid
}

// ParseFloat uses a fast path for up-to-19-digit significands scaled by a
// power of ten from a 0..22 table, falling back to strconv.ParseFloat when
// the exponent or mantissa falls outside that envelope. Reports ParseRange
// on overflow and ParseUnderflow on an ERANGE-style underflow to zero.
func ParseFloat(s string) (float64, ParseOutcome) {
	if v, ok := parseFloatFastPath(s); ok {
		return v, ParseOK
	}
	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return v, ParseOK
	}
	ne, ok := err.(*strconv.NumError)
	if !ok {
		return 0, ParseInvalid
	}
	if ne.Err == strconv.ErrRange {
		if v == 0 {
			return 0, ParseUnderflow
		}
		return v, ParseRange
	}
	return 0, ParseInvalid
}

// pow10Table covers the 0..22 exponent envelope exactly representable as a
// float64 power of ten.
var pow10Table = [23]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// parseFloatFastPath handles the common case of a plain decimal literal
// with an up-to-19-digit significand and an exponent within [0,22],
// avoiding strconv's general (slower, correctly-rounded-for-anything)
// path. Returns ok=false for anything it isn't confident about, falling
// through to the platform strtod.
func parseFloatFastPath(s string) (float64, bool) {
	neg := false
	rest := s
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		neg = rest[0] == '-'
		rest = rest[1:]
	}
	if rest == "" {
		return 0, false
	}

	intPart, fracPart, hasExp := rest, "", false
	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		intPart, fracPart = rest[:dot], rest[dot+1:]
	}
	if strings.ContainsAny(fracPart, "eE") || strings.ContainsAny(intPart, "eE") {
		hasExp = true
	}
	if hasExp {
		return 0, false // let strconv handle scientific notation precisely
	}

	digits := intPart + fracPart
	if len(digits) == 0 || len(digits) > 19 {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}

	mantissa, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	scale := len(fracPart)
	if scale > 22 {
		return 0, false
	}

	v := float64(mantissa) / pow10Table[scale]
	if neg {
		v = -v
	}
	return v, true
}
