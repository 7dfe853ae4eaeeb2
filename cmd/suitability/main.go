package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/danielpatrickdp/mrta-suitability/internal/fuzzy"
	"github.com/danielpatrickdp/mrta-suitability/internal/suitability"
)

// #region main

func main() {
	load := flag.Float64("load", 0, "load history (0-10)")
	distance := flag.Float64("distance", 0, "distance to task (0-25)")
	travelled := flag.Float64("travelled", 0, "total distance travelled (0-50)")
	capability := flag.Float64("capability", 1, "capability match: 0 (no match) or 1 (matched)")
	verbose := flag.Bool("verbose", false, "print memberships and rule firing strengths")
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "usage: suitability --load L --distance D --travelled T [--capability 0|1] [--verbose]")
		os.Exit(2)
	}

	model, err := suitability.BuildModel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build model: %v\n", err)
		os.Exit(1)
	}

	res, err := model.Evaluate(map[string]float64{
		suitability.VarLoadHistory:    *load,
		suitability.VarDistanceToTask: *distance,
		suitability.VarTotalDistance:  *travelled,
		suitability.VarCapability:     *capability,
	})
	if errors.Is(err, fuzzy.ErrNoRuleFired) {
		fmt.Fprintf(os.Stderr, "no suitability defined for this tuple: %v\n", err)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "evaluate: %v\n", err)
		os.Exit(1)
	}

	for _, cl := range res.Clamped {
		fmt.Fprintf(os.Stderr, "warning: %s=%g outside universe, clamped to %g (result is an extrapolation)\n",
			cl.Variable, cl.Given, cl.Bound)
	}

	fmt.Printf("suitability: %.4f\n", res.Output)

	if *verbose {
		printDetail(res)
	}
}

// #endregion main

// #region detail

func printDetail(res fuzzy.Result) {
	vars := make([]string, 0, len(res.Memberships))
	for v := range res.Memberships {
		vars = append(vars, v)
	}
	sort.Strings(vars)

	fmt.Println("\nmemberships:")
	for _, v := range vars {
		terms := make([]string, 0, len(res.Memberships[v]))
		for t := range res.Memberships[v] {
			terms = append(terms, t)
		}
		sort.Strings(terms)
		for _, t := range terms {
			if d := res.Memberships[v][t]; d > 0 {
				fmt.Printf("  %-26s %-12s %.4f\n", v, t, d)
			}
		}
	}

	fmt.Println("\nfired rules:")
	for i, s := range res.Strengths {
		if s > 0 {
			fmt.Printf("  rule %02d  strength %.4f\n", i+1, s)
		}
	}
}

// #endregion detail
