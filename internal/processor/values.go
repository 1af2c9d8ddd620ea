package processor

import (
	"math"
	"strconv"

	"github.com/mesh-intelligence/simplelist/pkg/types"
)

// parseInt converts a push argument for an integer container.
// Strict parsing rejects anything strconv.ParseInt rejects. Compat parsing
// follows stream extraction into a 32-bit int: the longest sign-and-digits
// prefix is used, no digits yields 0, and out-of-range values clamp.
func parseInt(tok string, strict bool) (int64, error) {
	if strict {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, types.ErrInvalidValue
		}
		return v, nil
	}

	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		i++
	}
	start := i
	for i < len(tok) && isDigit(tok[i]) {
		i++
	}
	if i == start {
		return 0, nil
	}
	v, err := strconv.ParseInt(tok[:i], 10, 64)
	if err != nil || v > math.MaxInt32 || v < math.MinInt32 {
		if tok[0] == '-' {
			return math.MinInt32, nil
		}
		return math.MaxInt32, nil
	}
	return v, nil
}

// parseFloat converts a push argument for a floating-point container.
// Strict parsing accepts only a whole token in decimal notation: optional
// sign, digits with at most one decimal point, optional exponent. Hex
// floats, inf and nan are rejected, as is a value out of range. Compat parsing accumulates the characters stream extraction would accept
// (sign, digits, one decimal point, an exponent after mantissa digits) and
// converts the whole run; a run that does not convert, such as "2.5e",
// yields 0. Overflow clamps to the largest finite double.
func parseFloat(tok string, strict bool) (float64, error) {
	if strict {
		if floatPrefix(tok) != tok {
			return 0, types.ErrInvalidValue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, types.ErrInvalidValue
		}
		return v, nil
	}

	v, err := strconv.ParseFloat(floatPrefix(tok), 64)
	if math.IsInf(v, 0) {
		return math.Copysign(math.MaxFloat64, v), nil
	}
	if err != nil {
		return 0, nil
	}
	return v, nil
}

func floatPrefix(tok string) string {
	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		i++
	}
	mantissa := false
	for i < len(tok) && isDigit(tok[i]) {
		i++
		mantissa = true
	}
	if i < len(tok) && tok[i] == '.' {
		i++
		for i < len(tok) && isDigit(tok[i]) {
			i++
			mantissa = true
		}
	}
	if mantissa && i < len(tok) && (tok[i] == 'e' || tok[i] == 'E') {
		i++
		if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
			i++
		}
		for i < len(tok) && isDigit(tok[i]) {
			i++
		}
	}
	return tok[:i]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func parseText(tok string, _ bool) (string, error) { return tok, nil }

func formatInt(v int64) string { return strconv.FormatInt(v, 10) }

// formatFloat renders v the way a default-configured output stream does:
// six significant digits, shortest of fixed and exponent notation.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func formatText(v string) string { return v }
