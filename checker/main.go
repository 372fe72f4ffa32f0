package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"strings"
	"time"

	"git.solver4all.com/azaryc2s/vrptw"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

var (
	sols vrptw.ArrayStringFlags
	inst *vrptw.Instance

	instF    *string
	outputF  *string
	passMark *int
	logLvl   *int
)

func main() {
	var err error

	flag.Var(&sols, "sol", "Path to a solution report. May be passed multiple times")
	instF = flag.String("instance", "instance.txt", "Path to the instance file")
	outputF = flag.String("output", "", "Path to the JSON result file. By default derived from the solution path")
	passMark = flag.Int("passmark", vrptw.CPUBaseRef, "PassMark single-thread rating of this machine, used to normalize the reported time")
	logLvl = flag.Int("v", 2, "Log level. 1 = errors only, 4 = per-edge spam")

	flag.Parse()

	if len(sols) == 0 {
		log.Printf("No solution reports passed!")
		return
	}

	vrptw.InitLoggers(*logLvl)

	inst, err = vrptw.ReadInstance(*instF)
	if err != nil {
		log.Fatalf("At %s: %s\n", *instF, err.Error())
	}

	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()

	for _, solF := range sols {
		sol, err := vrptw.ReadSolution(solF, inst)
		if err != nil {
			log.Fatalf("At %s: %s\n", solF, err.Error())
		}
		sol.System = vrptw.SysInfo{Platform: hostStat.Platform, CPU: cpuStat[0].ModelName, RAM: fmt.Sprintf("%d GB", (vmStat.Total / 1024 / 1024 / 1024))}

		startTime := time.Now()
		feasible := sol.Check(inst)
		elapsed := time.Since(startTime)
		sol.Time = elapsed.String()

		if feasible {
			fmt.Print(sol.Stats(elapsed, *passMark))
		} else {
			fmt.Printf("Solution %s is infeasible\n", solF)
		}

		inst.Solution = sol
		writeResult(solF)
	}
}

func writeResult(solF string) {
	jsonInst, err := json.MarshalIndent(inst, "", "\t")
	if err != nil {
		log.Printf("At %s: %s\n", solF, err.Error())
		return
	}
	jsonInst = []byte(vrptw.SanitizeJsonArrayLineBreaks(string(jsonInst)))
	fileName := *outputF
	if fileName == "" {
		fileName = strings.TrimSuffix(solF, ".txt") + ".json"
	}
	err = ioutil.WriteFile(fileName, jsonInst, 0644)
	if err != nil {
		log.Printf("At %s: %s\n", fileName, err.Error())
		return
	}
}
