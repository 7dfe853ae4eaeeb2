package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/mrta-suitability/internal/allocator"
	"github.com/danielpatrickdp/mrta-suitability/internal/suitability"
)

// #region main

func main() {
	robotsPath := flag.String("robots", "", "path to robots JSON array")
	tasksPath := flag.String("tasks", "", "path to tasks JSON array")
	jsonOut := flag.Bool("json", false, "output assignments as JSON")
	flag.Parse()

	if *robotsPath == "" || *tasksPath == "" {
		fmt.Fprintln(os.Stderr, "usage: allocate --robots robots.json --tasks tasks.json [--json]")
		os.Exit(2)
	}

	if err := run(*robotsPath, *tasksPath, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(robotsPath, tasksPath string, jsonOut bool) error {
	var robots []allocator.Robot
	if err := loadJSON(robotsPath, &robots); err != nil {
		return err
	}
	var tasks []allocator.Task
	if err := loadJSON(tasksPath, &tasks); err != nil {
		return err
	}

	model, err := suitability.BuildModel()
	if err != nil {
		return fmt.Errorf("build model: %w", err)
	}

	assignments, err := allocator.New(model).Assign(tasks, robots)
	if err != nil {
		return fmt.Errorf("assign: %w", err)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(assignments)
	}

	if len(assignments) == 0 {
		fmt.Println("no assignments (no capable robots?)")
		return nil
	}
	for _, a := range assignments {
		fmt.Printf("task %-12s -> robot %-12s suitability %.4f\n", a.TaskID, a.RobotID, a.Suitability)
	}
	if len(assignments) < len(tasks) {
		fmt.Printf("%d of %d tasks unassigned\n", len(tasks)-len(assignments), len(tasks))
	}
	return nil
}

func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// #endregion main
