// Code generator: turns the YAML data files under data/ into Go literals.
//
// Usage:
//
//	go run ./cmd/gendata all       # generate everything
//	go run ./cmd/gendata roster    # generate only specified categories
//	go run ./cmd/gendata --list    # list available generators
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

const (
	dataDir   = "data"
	outputDir = "internal/data"
)

type generator struct {
	name     string
	desc     string
	generate func(dataDir, outDir string) error
}

var generators []generator

func registerGenerator(name, desc string, fn func(dataDir, outDir string) error) {
	generators = append(generators, generator{name: name, desc: desc, generate: fn})
}

func init() {
	registerGenerator("roster", "Unit definitions (data/roster.yaml)", generateRoster)
}

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	if args[0] == "--list" {
		printList()
		return
	}

	var toRun []generator
	if args[0] == "all" {
		toRun = generators
	} else {
		genMap := make(map[string]generator, len(generators))
		for _, g := range generators {
			genMap[g.name] = g
		}
		for _, name := range args {
			g, ok := genMap[name]
			if !ok {
				fmt.Fprintf(os.Stderr, "unknown generator: %s\n", name)
				printList()
				os.Exit(1)
			}
			toRun = append(toRun, g)
		}
	}

	totalStart := time.Now()
	for _, g := range toRun {
		start := time.Now()
		fmt.Printf("[gendata] running %s...\n", g.name)
		if err := g.generate(dataDir, outputDir); err != nil {
			fmt.Fprintf(os.Stderr, "[gendata] FAILED %s: %v\n", g.name, err)
			os.Exit(1)
		}
		fmt.Printf("[gendata] %s done (%s)\n", g.name, time.Since(start).Round(time.Millisecond))
	}
	fmt.Printf("[gendata] all done (%s)\n", time.Since(totalStart).Round(time.Millisecond))
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: go run ./cmd/gendata <all | name1 name2 ...>")
	fmt.Fprintln(os.Stderr, "       go run ./cmd/gendata --list")
}

func printList() {
	names := make([]string, 0, len(generators))
	maxLen := 0
	for _, g := range generators {
		names = append(names, g.name)
		maxLen = max(maxLen, len(g.name))
	}
	sort.Strings(names)

	genMap := make(map[string]generator, len(generators))
	for _, g := range generators {
		genMap[g.name] = g
	}

	fmt.Println("Available generators:")
	for _, name := range names {
		padding := strings.Repeat(" ", maxLen-len(name)+2)
		fmt.Printf("  %s%s%s\n", name, padding, genMap[name].desc)
	}
}
