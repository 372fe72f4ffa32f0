package vrptw

import (
	"fmt"
	"math"
	"regexp"
)

// CalcEdgeDist precomputes the integer edge weight matrix for all node
// pairs. EUC_2D rounds each distance to the nearest integer, CEIL_2D
// rounds it up.
func CalcEdgeDist(coordinates [][]float64, distType string) [][]int {
	n := len(coordinates)
	result := make([][]int, n)
	for node := 0; node < n; node++ {
		result[node] = make([]int, n)
	}
	for node := 0; node < n; node++ {
		for node2 := 0; node2 < node; node2++ {
			xDist := coordinates[node][0] - coordinates[node2][0]
			yDist := coordinates[node][1] - coordinates[node2][1]
			var distance int
			if distType == "EUC_2D" {
				distance = int(math.Sqrt(math.Pow(xDist, 2)+math.Pow(yDist, 2)) + 0.5)
			} else if distType == "CEIL_2D" {
				distance = int(math.Ceil(math.Sqrt(math.Pow(xDist, 2) + math.Pow(yDist, 2))))
			}
			result[node][node2] = distance
			result[node2][node] = distance
		}
	}
	return result
}

// SanitizeJsonArrayLineBreaks collapses the number arrays in an indented
// JSON document back onto single lines, so coordinate and route arrays
// stay readable in written result files.
func SanitizeJsonArrayLineBreaks(json string) string {
	res := fmt.Sprintf("%s", json)
	var numbers = regexp.MustCompile(`\s*([-]?[0-9]+(\.[0-9]+)?),\s+([-]?[0-9]+(\.[0-9]+)?)(,)?`)
	var brackets = regexp.MustCompile(`\[(([-]?[0-9]+(\.[0-9]+)?,)+[-]?[0-9]+(\.[0-9]+)?)\s+\](,?)(\s+)`)
	for numbers.MatchString(res) {
		res = numbers.ReplaceAllString(res, "$1,$3$5")
	}
	for brackets.MatchString(res) {
		res = brackets.ReplaceAllString(res, "[$1]$5$6")
	}
	return res
}
