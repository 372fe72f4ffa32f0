package vrptw

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toyInstanceFile = `toy

VEHICLE
NUMBER     CAPACITY
  25         200

CUSTOMER
CUST NO.  XCOORD.   YCOORD.    DEMAND   READY TIME   DUE DATE   SERVICE TIME

    0        0         0          0          0        1000          0
    1       10         0         50          0        1000          0
    2       20         0         50          0        1000          0
`

func writeTempInstance(t *testing.T, content string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "instance.txt")
	require.NoError(t, ioutil.WriteFile(fileName, []byte(content), 0644))
	return fileName
}

func TestReadInstance(t *testing.T) {
	inst, err := ReadInstance(writeTempInstance(t, toyInstanceFile))
	require.NoError(t, err)

	assert.Equal(t, "toy", inst.Name)
	assert.Equal(t, 3, inst.Dimension)
	assert.Equal(t, 25, inst.MaxVehicles)
	assert.Equal(t, 200, inst.Capacity)
	assert.Equal(t, [][]float64{{0, 0}, {10, 0}, {20, 0}}, inst.NodeCoordinates)
	assert.Equal(t, []int{0, 50, 50}, inst.Demands)
	assert.Equal(t, []int{0, 0, 0}, inst.ReadyTimes)
	assert.Equal(t, []int{1000, 1000, 1000}, inst.DueDates)
	assert.Equal(t, []int{0, 0, 0}, inst.ServiceTimes)
}

func TestReadInstanceMissingFile(t *testing.T) {
	_, err := ReadInstance(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestReadInstanceMalformed(t *testing.T) {
	cases := map[string]string{
		"short node line": `toy
a
b
25 200
c
d
0 0 0 0 0 1000
`,
		"node id out of order": `toy
a
b
25 200
c
d
0 0 0 0 0 1000 0
2 10 0 50 0 1000 0
`,
		"inverted time window": `toy
a
b
25 200
c
d
0 0 0 0 1000 0 0
`,
		"bad vehicle line": `toy
a
b
25 200 7
c
d
0 0 0 0 0 1000 0
`,
		"no nodes": `toy
a
b
25 200
c
d
`,
	}
	for name, content := range cases {
		_, err := ReadInstance(writeTempInstance(t, content))
		assert.Error(t, err, name)
	}
}

func TestDistance(t *testing.T) {
	inst, err := ReadInstance(writeTempInstance(t, toyInstanceFile))
	require.NoError(t, err)

	for i := 0; i < inst.Dimension; i++ {
		assert.Zero(t, inst.Distance(i, i))
		for j := 0; j < inst.Dimension; j++ {
			assert.Equal(t, inst.Distance(i, j), inst.Distance(j, i))
		}
	}
	assert.InDelta(t, 10.0, inst.Distance(0, 1), 1e-9)
	assert.InDelta(t, 20.0, inst.Distance(0, 2), 1e-9)
}

func TestDistanceOutOfRange(t *testing.T) {
	inst, err := ReadInstance(writeTempInstance(t, toyInstanceFile))
	require.NoError(t, err)

	assert.Panics(t, func() { inst.Distance(0, 3) })
	assert.Panics(t, func() { inst.Distance(-1, 0) })
}
