package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"math"
	"os"
	"strings"

	"git.solver4all.com/azaryc2s/vrptw"
)

func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	dirName := os.Args[1]
	dir, err := ioutil.ReadDir(dirName)
	if err != nil {
		log.Printf("Couldn't open directory %s: %s\n", os.Args[1], err.Error())
		return
	}
	fmt.Printf("Name,Feasible,Cost,DeclaredCost,Time,Vehicles,Dimension,Comment\n")
	for _, f := range dir {
		fileName := dirName + "/" + f.Name()
		if !strings.Contains(fileName, ".json") {
			continue
		}
		inst := vrptw.Instance{}
		instStr, err := ioutil.ReadFile(fileName)
		if err != nil {
			log.Printf("Couldn't read %s: %s\n", f.Name(), err.Error())
			return
		}
		err = json.Unmarshal(instStr, &inst)
		if err != nil {
			log.Printf("Couldn't parse %s: %s\n", f.Name(), err.Error())
			return
		}
		var sol vrptw.Solution
		if inst.Solution != nil {
			sol = *inst.Solution
		}
		err = revalidate(&inst, sol)
		if err != nil {
			sol.Comment += fmt.Sprintf("ANALYZER: Error = %s", err.Error())
		}
		fmt.Printf("%s,%t,%.1f,%.1f,%s,%d,%d,%s\n", inst.Name, sol.Feasible, sol.Cost,
			sol.DeclaredCost, sol.Time, len(sol.Routes), inst.Dimension, sol.Comment)
	}
}

// revalidate reruns the feasibility check on the stored routes and
// compares the outcome against what the result file claims.
func revalidate(inst *vrptw.Instance, sol vrptw.Solution) error {
	recheck := vrptw.Solution{Routes: sol.Routes}
	feasible := recheck.Check(inst)
	if feasible != sol.Feasible {
		return errors.New(fmt.Sprintf("Stored result says feasible=%t but the check says %t!", sol.Feasible, feasible))
	}
	if feasible && math.Abs(recheck.Cost-sol.Cost) > vrptw.TimeWindowEps {
		return errors.New(fmt.Sprintf("Stored cost %.1f differs from the recomputed cost %.1f!", sol.Cost, recheck.Cost))
	}
	return nil
}
