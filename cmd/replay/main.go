package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/mrta-suitability/internal/replay"
	"github.com/danielpatrickdp/mrta-suitability/internal/suitability"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to scenario fixture JSON")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/scenarios.json")
		os.Exit(2)
	}

	os.Exit(runFixture(*fixturePath))
}

func runFixture(path string) int {
	fixture, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	model, err := suitability.BuildModel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build model: %v\n", err)
		return 2
	}

	if fixture.Description != "" {
		fmt.Printf("fixture: %s\n", fixture.Description)
	}

	results, summary := replay.Replay(model, fixture)
	for _, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		if r.Err != nil {
			fmt.Printf("  %s  %-30s error: %v\n", status, r.Name, r.Err)
			continue
		}
		fmt.Printf("  %s  %-30s got %.4f want %.4f\n", status, r.Name, r.Got, r.Want)
		if !r.Passed && r.Reason != "" {
			fmt.Printf("        %s\n", r.Reason)
		}
	}

	fmt.Printf("%d scenarios: %d passed, %d failed\n", summary.Total, summary.Passed, summary.Failed)
	if summary.Failed > 0 {
		return 1
	}
	return 0
}

// #endregion main
