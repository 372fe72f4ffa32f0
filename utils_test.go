package vrptw

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcEdgeDist(t *testing.T) {
	coords := [][]float64{{0, 0}, {3, 4}, {1.4, 0}}

	euc := CalcEdgeDist(coords, "EUC_2D")
	assert.Equal(t, 5, euc[0][1])
	assert.Equal(t, 1, euc[0][2]) // 1.4 rounds down
	for i := range coords {
		assert.Zero(t, euc[i][i])
		for j := range coords {
			assert.Equal(t, euc[i][j], euc[j][i])
		}
	}

	ceil := CalcEdgeDist(coords, "CEIL_2D")
	assert.Equal(t, 5, ceil[0][1])
	assert.Equal(t, 2, ceil[0][2])
}

func TestSanitizeJsonArrayLineBreaks(t *testing.T) {
	doc, err := json.MarshalIndent(struct {
		Route []int `json:"route"`
	}{Route: []int{1, 2, 3}}, "", "\t")
	require.NoError(t, err)
	assert.NotContains(t, string(doc), "[1,2,3]")

	sanitized := SanitizeJsonArrayLineBreaks(string(doc) + "\n")
	assert.Contains(t, sanitized, "[1,2,3]")
}
