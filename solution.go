package vrptw

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// TimeWindowEps absorbs the floating point rounding when arrival times
// are checked against due dates.
const TimeWindowEps = 1e-6

// CPUBaseRef is the PassMark single-thread rating of the competition
// reference machine. Reported times are normalized by passMark/CPUBaseRef.
const CPUBaseRef = 2000

// visitState tracks how often the checker has seen a customer. The
// original controller toggled a single bool, which made a duplicate visit
// indistinguishable from no visit at all.
type visitState int

const (
	unvisited visitState = iota
	visitedOnce
	duplicate
)

// ReadSolution parses a solution report for the given instance. Route
// lines look like "Route #3: 24 17 5" (spaces around "#3:" are
// tolerated), a "Cost <value>" line carries the self-reported cost.
// Customer indices outside [0, Dimension-1] fail the parse, so the
// checker never has to range check.
func ReadSolution(fileName string, inst *Instance) (*Solution, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sol := &Solution{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if strings.Contains(fields[0], "Route") {
			route, err := parseRoute(fields, inst.Dimension)
			if err != nil {
				return nil, err
			}
			sol.Routes = append(sol.Routes, route)
		} else if strings.Contains(fields[0], "Cost") {
			if len(fields) < 2 {
				return nil, fmt.Errorf("cost line %q has no value", strings.Join(fields, " "))
			}
			if sol.DeclaredCost, err = strconv.ParseFloat(fields[1], 64); err != nil {
				return nil, fmt.Errorf("parsing declared cost: %s", err.Error())
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sol, nil
}

// parseRoute extracts the customer sequence from a tokenized route line.
// Customers start after the "#i:" marker, which may be split over
// several tokens.
func parseRoute(fields []string, dimension int) ([]int, error) {
	start := 2
	for i, f := range fields {
		if strings.HasSuffix(f, ":") {
			start = i + 1
			break
		}
	}
	if start > len(fields) {
		start = len(fields)
	}
	route := make([]int, 0, len(fields)-start)
	for _, token := range fields[start:] {
		c, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("bad customer index %q on route line", token)
		}
		if c < 0 || c >= dimension {
			return nil, fmt.Errorf("customer index %d out of range [0,%d]", c, dimension-1)
		}
		route = append(route, c)
	}
	return route, nil
}

// Check walks every route of the solution in order, accumulating rounded
// euclidean edge costs into the total cost and arrival times against the
// time windows. Distances are rounded per edge before they enter either
// the cost or the travel time. It returns true and sets Cost and Feasible
// only if the solution uses at most MaxVehicles routes, visits every
// customer exactly once and violates no capacity or time window
// constraint. Diagnostics for violated bounds are logged and accumulated
// on Comment; capacity violations reject silently like the original
// DIMACS controller.
func (sol *Solution) Check(inst *Instance) bool {
	solCost := 0.0
	visited := make([]visitState, inst.Dimension)
	visited[0] = visitedOnce

	if len(sol.Routes) > inst.MaxVehicles {
		sol.reject("Max nb. of vehicles was violated: %d > V=%d", len(sol.Routes), inst.MaxVehicles)
		return false
	}

	for _, route := range sol.Routes {
		if n := len(route); n > 0 && route[n-1] == 0 {
			route = route[:n-1] // some reports close every route at the depot
		}
		if len(route) == 0 {
			continue
		}

		travelTime := 0.0
		demand := 0
		for i, c := range route {
			prev, service := 0, 0
			if i > 0 {
				prev = route[i-1]
				service = inst.ServiceTimes[prev]
			}
			edgeCost := math.Round(inst.Distance(prev, c))
			solCost += edgeCost
			// a vehicle arriving before the window opens waits until ReadyTime
			travelTime = math.Max(travelTime+edgeCost+float64(service), float64(inst.ReadyTimes[c]))
			Log(4, "(%d,%d) c%g t%g\n", prev, c, edgeCost, travelTime)
			if travelTime > float64(inst.DueDates[c])+TimeWindowEps {
				sol.reject("TW of %d ([%d,%d]) was violated (arrival time = %g)",
					c, inst.ReadyTimes[c], inst.DueDates[c], travelTime)
				return false
			}
			demand += inst.Demands[c]
			if demand > inst.Capacity {
				return false
			}
			if visited[c] != unvisited {
				visited[c] = duplicate
				sol.reject("Customer %d was visited more than once!", c)
				return false
			}
			visited[c] = visitedOnce
		}

		last := route[len(route)-1]
		edgeCost := math.Round(inst.Distance(last, 0))
		solCost += edgeCost
		travelTime = math.Max(travelTime+edgeCost+float64(inst.ServiceTimes[last]), float64(inst.ReadyTimes[0]))
		Log(4, "(%d,0) c%g t%g\n", last, edgeCost, travelTime)
		if travelTime > float64(inst.DueDates[0])+TimeWindowEps {
			sol.reject("TW of 0 ([%d,%d]) was violated (arrival time = %g)",
				inst.ReadyTimes[0], inst.DueDates[0], travelTime)
			return false
		}
	}

	covered := true
	for i := 1; i < inst.Dimension; i++ {
		if visited[i] == unvisited {
			sol.reject("Customer %d was not visited!", i)
			covered = false
		}
	}
	if !covered {
		return false
	}

	sol.Cost = solCost
	sol.Feasible = true
	return true
}

// reject logs a feasibility diagnostic and keeps it on the solution, so
// a written result file still names the violated bound.
func (sol *Solution) reject(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	Log(2, "%s\n", msg)
	sol.Comment += msg + " "
}

// Stats renders the competition result line: cost, elapsed wall time in
// seconds and the elapsed time normalized to the reference machine by the
// PassMark ratio, fixed-point formatted.
func (sol *Solution) Stats(elapsed time.Duration, passMark int) string {
	secs := float64(elapsed.Milliseconds()) / 1000.0
	return fmt.Sprintf("%.1f %.3f %.3f\n", sol.Cost, secs, secs*float64(passMark)/CPUBaseRef)
}
