// Package allocator ranks robots for tasks by their fuzzy suitability
// score and assigns greedily. It only reads from the built model; all
// scoring goes through the same inference pipeline, including the
// capability catch-all.
package allocator

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/mrta-suitability/internal/fuzzy"
	"github.com/danielpatrickdp/mrta-suitability/internal/suitability"
)

// #region allocator

// Allocator scores robot/task pairs against a shared immutable model.
type Allocator struct {
	model *fuzzy.Model
}

// New creates an allocator over the given model.
func New(m *fuzzy.Model) *Allocator {
	return &Allocator{model: m}
}

// #endregion allocator

// #region capability

// CapabilityMatch returns 1 when the robot carries the task's required
// capability (case-insensitive) and 0 otherwise. The value feeds the
// model's two-valued capability input, so an unmatched robot scores the
// Unacceptable centroid rather than being branched around.
func CapabilityMatch(r Robot, task Task) float64 {
	if task.RequiredCapability == "" {
		return 1
	}
	for _, c := range r.Capabilities {
		if strings.EqualFold(c, task.RequiredCapability) {
			return 1
		}
	}
	return 0
}

// #endregion capability

// #region rank

// Rank scores every robot for the task and returns candidates sorted by
// suitability, best first. Ties break on robot ID so the ordering is
// deterministic. A per-robot evaluation error fails the whole call:
// with capability pinned to 0 or 1 the pipeline cannot degenerate, so
// an error here means malformed inputs, not a low score.
func (a *Allocator) Rank(task Task, robots []Robot) ([]Candidate, error) {
	candidates := make([]Candidate, 0, len(robots))
	for _, r := range robots {
		dist := math.Hypot(r.X-task.X, r.Y-task.Y)
		score, err := suitability.Evaluate(a.model, r.Load, dist, r.TotalDistance, CapabilityMatch(r, task))
		if err != nil {
			return nil, fmt.Errorf("score robot %s for task %s: %w", r.ID, task.ID, err)
		}
		candidates = append(candidates, Candidate{
			RobotID:     r.ID,
			TaskID:      task.ID,
			Distance:    dist,
			Suitability: score.Value,
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Suitability != candidates[j].Suitability {
			return candidates[i].Suitability > candidates[j].Suitability
		}
		return candidates[i].RobotID < candidates[j].RobotID
	})
	return candidates, nil
}

// #endregion rank

// #region assign

// Assign walks the tasks in order and gives each the best still-free
// robot. Robots scoring zero (capability unmatched) are never assigned;
// a task with no eligible robot is simply left out of the result.
func (a *Allocator) Assign(tasks []Task, robots []Robot) ([]Assignment, error) {
	taken := make(map[string]bool, len(robots))
	assignments := make([]Assignment, 0, len(tasks))

	for _, task := range tasks {
		ranked, err := a.Rank(task, robots)
		if err != nil {
			return nil, err
		}
		for _, c := range ranked {
			if taken[c.RobotID] || c.Suitability == 0 {
				continue
			}
			taken[c.RobotID] = true
			assignments = append(assignments, Assignment{
				ID:          uuid.New().String(),
				TaskID:      task.ID,
				RobotID:     c.RobotID,
				Suitability: c.Suitability,
			})
			break
		}
	}
	return assignments, nil
}

// #endregion assign
