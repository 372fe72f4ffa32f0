package main

import (
	"io/ioutil"
	"log"
	"os"

	"git.solver4all.com/azaryc2s/vrptw"
)

// Rewrites a JSON result file in place, collapsing the number arrays
// back onto single lines.
func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}

	fileContent, err := ioutil.ReadFile(os.Args[1])

	if err != nil {
		log.Printf("At %s: %s\n", os.Args[1], err.Error())
		return
	}

	writeBackFile(string(fileContent), os.Args[1])
}

func writeBackFile(fileContent, fileName string) {
	fileContent = vrptw.SanitizeJsonArrayLineBreaks(fileContent)
	err := ioutil.WriteFile(fileName, []byte(fileContent), 0644)
	if err != nil {
		log.Printf("At %s: %s\n", fileName, err.Error())
		return
	}
}
