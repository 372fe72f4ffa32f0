package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"
	"strings"
	"time"

	"git.solver4all.com/azaryc2s/vrptw"
)

var nodes vrptw.ArrayIntFlags

func main() {
	flag.Var(&nodes, "n", "List of number of nodes (depot included)")
	name := flag.String("name", "zarychta", "Name for the instance")
	count := flag.Int("count", 10, "Number of instances per node count")
	xTo := flag.Int("x", 100, "Max value on the x-axis")
	yTo := flag.Int("y", 100, "Max value on the y-axis")
	capacity := flag.Int("capacity", 200, "Vehicle capacity")
	vehicles := flag.Int("vehicles", 25, "Max number of vehicles")
	demandTo := flag.Int("demand", 50, "Max demand of a customer")
	service := flag.Int("service", 10, "Service time at every customer")
	window := flag.Int("window", 60, "Width of the customer time windows")
	horizon := flag.Int("horizon", 1000, "Closing time of the depot")

	flag.Parse()

	for l := 0; l < *count; l++ {
		rand.Seed(time.Now().UnixNano())
		for i := 0; i < len(nodes); i++ {
			n := nodes[i]
			coordinates := make([][]float64, n)
			for node := 0; node < n; node++ {
				coordinates[node] = []float64{float64(rand.Intn(*xTo)), float64(rand.Intn(*yTo))}
			}
			edgeDist := vrptw.CalcEdgeDist(coordinates, "EUC_2D")

			instName := fmt.Sprintf("%s_%d_%d", *name, n, l)
			var sb strings.Builder
			fmt.Fprintf(&sb, "%s\n\n", instName)
			fmt.Fprintf(&sb, "VEHICLE\nNUMBER     CAPACITY\n")
			fmt.Fprintf(&sb, "%4d %13d\n\n", *vehicles, *capacity)
			fmt.Fprintf(&sb, "CUSTOMER\n")
			fmt.Fprintf(&sb, "CUST NO.  XCOORD.   YCOORD.    DEMAND   READY TIME   DUE DATE   SERVICE TIME\n\n")
			fmt.Fprintf(&sb, "%5d %9d %9d %9d %11d %11d %13d\n",
				0, int(coordinates[0][0]), int(coordinates[0][1]), 0, 0, *horizon, 0)
			for node := 1; node < n; node++ {
				// the window has to leave room for the trip out and back
				latest := *horizon - edgeDist[node][0] - *service
				if latest < edgeDist[0][node] {
					latest = edgeDist[0][node]
				}
				ready := edgeDist[0][node] + rand.Intn(latest-edgeDist[0][node]+1)
				due := ready + *window
				if due > latest {
					due = latest
				}
				if due < ready {
					due = ready
				}
				fmt.Fprintf(&sb, "%5d %9d %9d %9d %11d %11d %13d\n",
					node, int(coordinates[node][0]), int(coordinates[node][1]),
					1+rand.Intn(*demandTo), ready, due, *service)
			}

			err := ioutil.WriteFile(fmt.Sprintf("%s.txt", instName), []byte(sb.String()), 0644)
			if err != nil {
				log.Fatal(err)
			}
		}
	}
}
