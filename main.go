package main

import (
	"fmt"
	"os"
	"strings"

	"bio_toolkit_go/benchmark"
	version_control "bio_toolkit_go/config"
	"bio_toolkit_go/tools/bio_example"
	"bio_toolkit_go/tools/dna_translate"
	"bio_toolkit_go/tools/growth_curves"
	"bio_toolkit_go/tools/hamming"
	"bio_toolkit_go/tools/sanity_check"
	"bio_toolkit_go/tools/seq_generator"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Bio Toolkit - Custom Help Menu
Usage:
  bio_toolkit <tool> [options]

Tools:
  translate		Translate DNA into a simplified protein string
  growth		Simulate logistic growth curves and threshold times
  hamming		Hamming distance between two strings
  seq_generator		Generate random DNA/RNA sequences
  example		Run every tool on generated data (key=value options)
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Logs computational resource usage and
			pertinent operating system information

Logging:
  LOG_LEVEL		trace, debug, info (default), warn, error, off
  LOG_FORMAT		console (default) or json; logs go to stderr
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Bio Toolkit - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tBio Toolkit:\t\t%s\n", version_control.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tDNA Translate:\t\t%s\n", version_control.DNA_Translate)
	fmt.Printf("\tGrowth Curves:\t\t%s\n", version_control.Growth_Curves)
	fmt.Printf("\tHamming:\t\t%s\n", version_control.Hamming)
	fmt.Printf("\tSequence Generator:\t%s\n", version_control.Seq_Generator)
	fmt.Printf("\tExample:\t\t%s\n", version_control.Bio_Example)
	fmt.Printf("\tSanity Check:\t\t%s\n", version_control.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", version_control.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Executable-level help only when no tool arguments follow
	if len(os.Args) == 2 && (os.Args[1] == "-h" || os.Args[1] == "-help") {
		printCustomHelp()
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "translate":
			dna_translate.Run(cleanedArgs)
		case "growth":
			growth_curves.Run(cleanedArgs)
		case "hamming":
			hamming.Run(cleanedArgs)
		case "seq_generator":
			seq_generator.Run(cleanedArgs)
		case "example":
			bio_example.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("bio_toolkit %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
