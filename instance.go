package vrptw

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// ReadInstance parses an instance file in the DIMACS competition format:
// the instance name, two header lines, one line "maxVehicles capacity",
// two more header lines and then one node line
// "id x y demand readyTime dueDate serviceTime" per node until EOF.
// Blank lines are skipped. Node ids must be consecutive starting at 0
// (the depot), so the node slices can be indexed by id directly.
func ReadInstance(fileName string) (*Instance, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	inst := &Instance{Type: "VRPTW", EdgeWeightType: "EUC_2D"}
	scanner := bufio.NewScanner(file)
	line := -1
	for scanner.Scan() {
		t := strings.TrimSpace(scanner.Text())
		if t == "" {
			continue
		}
		line++
		switch {
		case line == 0:
			inst.Name = t
			continue
		case line == 1 || line == 2 || line == 4 || line == 5:
			continue
		case line == 3:
			fields := strings.Fields(t)
			if len(fields) != 2 {
				return nil, fmt.Errorf("expected \"maxVehicles capacity\", got %q", t)
			}
			if inst.MaxVehicles, err = strconv.Atoi(fields[0]); err != nil {
				return nil, fmt.Errorf("parsing max vehicles: %s", err.Error())
			}
			if inst.Capacity, err = strconv.Atoi(fields[1]); err != nil {
				return nil, fmt.Errorf("parsing capacity: %s", err.Error())
			}
			continue
		}

		fields := strings.Fields(t)
		if len(fields) != 7 {
			return nil, fmt.Errorf("expected 7 values on node line %q", t)
		}
		vals := make([]int, 7)
		for i, f := range fields {
			if vals[i], err = strconv.Atoi(f); err != nil {
				return nil, fmt.Errorf("parsing node line %q: %s", t, err.Error())
			}
		}
		id, x, y, demand, ready, due, service := vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], vals[6]
		if id != inst.Dimension {
			return nil, fmt.Errorf("node id %d out of order, expected %d", id, inst.Dimension)
		}
		if demand < 0 || service < 0 || due < ready {
			return nil, fmt.Errorf("node %d has an invalid demand, service time or time window", id)
		}
		inst.NodeCoordinates = append(inst.NodeCoordinates, []float64{float64(x), float64(y)})
		inst.Demands = append(inst.Demands, demand)
		inst.ReadyTimes = append(inst.ReadyTimes, ready)
		inst.DueDates = append(inst.DueDates, due)
		inst.ServiceTimes = append(inst.ServiceTimes, service)
		inst.Dimension++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if inst.Dimension == 0 {
		return nil, fmt.Errorf("no node lines in %s", fileName)
	}
	return inst, nil
}

// Distance returns the euclidean distance between the coordinates of two
// nodes. Both indices must lie in [0, Dimension-1]; anything else is a
// programming error, route files are range checked in ReadSolution.
func (inst *Instance) Distance(from, to int) float64 {
	if from < 0 || from >= inst.Dimension || to < 0 || to >= inst.Dimension {
		panic(fmt.Sprintf("vrptw: node pair (%d,%d) out of range for dimension %d", from, to, inst.Dimension))
	}
	xDist := inst.NodeCoordinates[from][0] - inst.NodeCoordinates[to][0]
	yDist := inst.NodeCoordinates[from][1] - inst.NodeCoordinates[to][1]
	return math.Sqrt(xDist*xDist + yDist*yDist)
}
