/*
Lstar learns a Mealy machine from a black-box target over TCP and
writes the result as Graphviz DOT.

It reads a TOML scenario file naming the target's address, the input
alphabet, and the learning bound, runs Angluin's L* against the remote
target, and prints the learned machine to stdout or a file.

Usage:

	lstar [flags]

The flags are:

	-v, --version
		Give the current version of lstar and then exit.

	-c, --scenario FILE
		Use the provided TOML scenario file. Defaults to the file
		"scenario.toml" in the current working directory.

	-o, --output FILE
		Write the learned machine's DOT rendering to FILE instead of
		stdout.

The scenario file looks like:

	address = "127.0.0.1:9000"
	alphabet = ["REFILL_WATER", "REFILL_COFFEE", "PRESS_A"]
	max-states = 8
	oracle = "wmethod"          # or "random-walk"

	[random-walk]
	restart-probability = 0.3
	max-steps = 10000
	seed = 1

The remote target speaks the line protocol of the teacher package's
NetTarget: one letter per line, one answer line per letter, and the
literal line "RESET" to return to the initial state.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/lstar/cmd/lstar/scenario"
	"github.com/katalvlaran/lstar/lstar"
	"github.com/katalvlaran/lstar/teacher"
)

// currentVersion is the version string reported by --version.
const currentVersion = "0.1.0"

const (

	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitLearnError indicates an unsuccessful program execution due to
	// a problem during the learning session.
	ExitLearnError

	// ExitInitError indicates an unsuccessful program execution due to
	// an issue reading the scenario or reaching the target.
	ExitInitError
)

var (
	returnCode   int     = ExitSuccess
	flagVersion  *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	scenarioFile *string = pflag.StringP("scenario", "c", "scenario.toml", "The TOML scenario file that describes the target and the alphabet")
	outputFile   *string = pflag.StringP("output", "o", "", "Write the learned machine's DOT rendering to this file instead of stdout")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just because
			// we checked
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", currentVersion)
		return
	}

	sc, loadErr := scenario.Load(*scenarioFile)
	if loadErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", loadErr.Error())
		returnCode = ExitInitError
		return
	}

	tgt, tgtErr := teacher.NewNetTarget(sc.Address)
	if tgtErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", tgtErr.Error())
		returnCode = ExitInitError
		return
	}
	kb, kbErr := teacher.NewKnowledgeBase(tgt)
	if kbErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", kbErr.Error())
		returnCode = ExitInitError
		return
	}
	if startErr := kb.Start(); startErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", startErr.Error())
		returnCode = ExitInitError
		return
	}
	defer func() {
		if stopErr := kb.Stop(); stopErr != nil {
			fmt.Fprintf(os.Stderr, "WARN: stop target: %s\n", stopErr.Error())
		}
	}()

	orc, orcErr := sc.Oracle()
	if orcErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", orcErr.Error())
		returnCode = ExitInitError
		return
	}

	learner, newErr := lstar.New(sc.Letters(), kb, sc.MaxStates, lstar.WithOracle(orc))
	if newErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", newErr.Error())
		returnCode = ExitInitError
		return
	}

	m, learnErr := learner.Learn()
	if learnErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", learnErr.Error())
		returnCode = ExitLearnError
		return
	}

	stats := kb.Stats()
	fmt.Fprintf(os.Stderr, "learned %d states (%d queries, %d cache hits, %d letters)\n",
		m.NumStates(), stats.Queries, stats.CacheHits, stats.Steps)

	out := os.Stdout
	if *outputFile != "" {
		f, createErr := os.Create(*outputFile)
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", createErr.Error())
			returnCode = ExitLearnError
			return
		}
		defer f.Close()
		out = f
	}
	if dotErr := m.WriteDOT(out); dotErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", dotErr.Error())
		returnCode = ExitLearnError
		return
	}
}
