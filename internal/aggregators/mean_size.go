package aggregators

import "regexp"

// Pattern2xx selects the success codes used for the mean response size.
var Pattern2xx = MustCompileCodePattern("2..")

// MustCompileCodePattern compiles pattern so that it must match at the start
// of a code; the rest of the code is not constrained.
func MustCompileCodePattern(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + pattern + `)`)
}

// CalcMeanSize walks codes in order and, for every code matching
// codePattern, adds its count and size sum to running totals and records the
// running average. The result is the mean of those running averages, or 0
// when no code matched.
//
// For codes 200 (2 requests, 400 bytes) then 201 (1 request, 50 bytes) the
// running averages are 200 and 150, so the result is 175 rather than the
// overall 150.
func CalcMeanSize(codes []string, codeCounts map[string]int64, sizeSums map[string]float64, codePattern *regexp.Regexp) float64 {
	var countSum int64
	var sizeSum float64
	var runningAvgs []float64

	for _, code := range codes {
		if !codePattern.MatchString(code) {
			continue
		}
		countSum += codeCounts[code]
		sizeSum += sizeSums[code]
		runningAvgs = append(runningAvgs, sizeSum/float64(countSum))
	}

	if len(runningAvgs) == 0 {
		return 0
	}

	var total float64
	for _, avg := range runningAvgs {
		total += avg
	}
	return total / float64(len(runningAvgs))
}
