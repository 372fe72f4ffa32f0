package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"git.solver4all.com/azaryc2s/vrptw"
)

// Converts a directory of Solomon/DIMACS .txt instances into the JSON
// instance format used by the result tooling.
func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	targetDir := os.Args[1]
	comment := ""
	if len(os.Args) > 2 {
		comment = os.Args[2]
	}
	files, err := ioutil.ReadDir(targetDir)
	if err != nil {
		log.Fatal(err)
	}
	for _, f := range files {
		if !strings.Contains(f.Name(), ".txt") {
			continue
		}
		fileName := targetDir + "/" + f.Name()
		fmt.Println(fileName)

		inst, err := vrptw.ReadInstance(fileName)
		if err != nil {
			log.Fatal(err)
		}
		inst.Comment = comment

		jsonInst, err := json.MarshalIndent(inst, "", "\t")
		if err != nil {
			log.Fatal(err)
		}
		jsonInst = []byte(vrptw.SanitizeJsonArrayLineBreaks(string(jsonInst)))
		err = ioutil.WriteFile(strings.ReplaceAll(fileName, ".txt", ".json"), jsonInst, 0644)
		if err != nil {
			log.Fatal(err)
		}
	}
}
