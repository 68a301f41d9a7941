package intent

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"alowish/internal/calc"
)

var (
	numberRe    = regexp.MustCompile(`\d+(\.\d+)?`)
	kmToMilesRe = regexp.MustCompile(`(\d+)\s*km\s*to\s*miles?`)
	kgToLbsRe   = regexp.MustCompile(`(\d+)\s*kg\s*to\s*lbs?`)
	cToFRe      = regexp.MustCompile(`(\d+)\s*c\s*to\s*f`)
	embeddedRe  = regexp.MustCompile(`\d+\s*[\+\-\*\/]\s*\d+`)
	percentOfRe = regexp.MustCompile(`(\d+)%\s*of\s*(\d+)`)
	kaPercentRe = regexp.MustCompile(`(\d+)\s*ka\s*(\d+)%`)
)

// monthlyEMI is the standard amortization formula: monthly rate from the
// annual percentage, tenure in months.
func monthlyEMI(principal, annualRate, years float64) float64 {
	r := annualRate / 1200
	n := years * 12
	return principal * r * math.Pow(1+r, n) / (math.Pow(1+r, n) - 1)
}

// tryEMI reads the first three numbers positionally as principal, annual
// rate and years. Fragile to inputs with numbers in other roles, kept for
// compatibility with the original parsing.
func tryEMI(lower string) (Response, bool) {
	if !strings.Contains(lower, "emi") {
		return Response{}, false
	}
	nums := numberRe.FindAllString(lower, -1)
	if len(nums) < 3 {
		return Response{
			Text: "EMI calculate karne ke liye mujhe Amount, Rate aur Time batao. Example: 'Calculate EMI for 500000 at 8.5% for 5 years'",
		}, true
	}
	principal, _ := strconv.ParseFloat(nums[0], 64)
	rate, _ := strconv.ParseFloat(nums[1], 64)
	years, _ := strconv.ParseFloat(nums[2], 64)

	emi := monthlyEMI(principal, rate, years)
	return Response{
		Text: fmt.Sprintf("Loan: %s\nRate: %s%%, Time: %s yrs.\nMonthly EMI: %s",
			formatINR(principal), formatNum(rate), formatNum(years), formatINR(emi)),
	}, true
}

func tryConvert(lower string) (Response, bool) {
	if !strings.Contains(lower, "convert") && !strings.Contains(lower, " to ") {
		return Response{}, false
	}
	if m := kmToMilesRe.FindStringSubmatch(lower); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return Response{Text: fmt.Sprintf("%s km = %.2f miles", m[1], v*0.621371)}, true
	}
	if m := kgToLbsRe.FindStringSubmatch(lower); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return Response{Text: fmt.Sprintf("%s kg = %.2f lbs", m[1], v*2.20462)}, true
	}
	if m := cToFRe.FindStringSubmatch(lower); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return Response{Text: fmt.Sprintf("%s°C = %.1f°F", m[1], v*9/5+32)}, true
	}
	return Response{}, false
}

// tryArithmetic evaluates through the restricted parser in internal/calc;
// anything outside the digit/operator whitelist falls through instead of
// being evaluated.
func tryArithmetic(lower string) (Response, bool) {
	if !strings.Contains(lower, "calculate") && !embeddedRe.MatchString(lower) {
		return Response{}, false
	}
	// only the first occurrence is a trigger word; later ones stay in
	// the expression and fail the whitelist
	expr := strings.Replace(lower, "calculate", "", 1)
	expr = strings.TrimSpace(strings.Replace(expr, "math", "", 1))
	v, err := calc.Eval(expr)
	if err != nil {
		return Response{}, false
	}
	return Response{Text: "Result: " + formatNum(v)}, true
}

func tryPercentage(lower string) (Response, bool) {
	if !strings.Contains(lower, "%") {
		return Response{}, false
	}
	if m := percentOfRe.FindStringSubmatch(lower); m != nil {
		p, _ := strconv.ParseFloat(m[1], 64)
		v, _ := strconv.ParseFloat(m[2], 64)
		return Response{Text: fmt.Sprintf("%s%% of %s is %s", m[1], m[2], formatNum(p/100*v))}, true
	}
	if m := kaPercentRe.FindStringSubmatch(lower); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		p, _ := strconv.ParseFloat(m[2], 64)
		return Response{Text: fmt.Sprintf("%s ka %s%% = %s", m[1], m[2], formatNum(p/100*v))}, true
	}
	return Response{}, false
}

// formatNum prints a float the way the original UI did: no trailing zeros.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatINR renders an amount with Indian digit grouping: last three
// digits, then groups of two. Display only, never fed back into math.
func formatINR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if n := len(intPart); n > 3 {
		head := intPart[:n-3]
		for len(head) > 2 {
			// leading group may be shorter
			cut := len(head) % 2
			if cut == 0 {
				cut = 2
			}
			b.WriteString(head[:cut])
			b.WriteByte(',')
			head = head[cut:]
		}
		b.WriteString(head)
		b.WriteByte(',')
		b.WriteString(intPart[n-3:])
	} else {
		b.WriteString(intPart)
	}

	out := "₹" + b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
