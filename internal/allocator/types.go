package allocator

// #region types

// Robot is one allocation candidate. Load is the recent load history on
// the model's 0-10 scale; TotalDistance is the accumulated travel.
type Robot struct {
	ID            string   `json:"id"`
	Load          float64  `json:"load"`
	TotalDistance float64  `json:"total_distance"`
	X             float64  `json:"x"`
	Y             float64  `json:"y"`
	Capabilities  []string `json:"capabilities"`
}

// Task is a unit of work at a location, optionally requiring one
// capability. An empty RequiredCapability matches every robot.
type Task struct {
	ID                 string  `json:"id"`
	X                  float64 `json:"x"`
	Y                  float64 `json:"y"`
	RequiredCapability string  `json:"required_capability,omitempty"`
}

// Candidate is one scored robot/task pair.
type Candidate struct {
	RobotID     string  `json:"robot_id"`
	TaskID      string  `json:"task_id"`
	Distance    float64 `json:"distance"`
	Suitability float64 `json:"suitability"`
}

// Assignment binds a task to the robot chosen for it.
type Assignment struct {
	ID          string  `json:"id"`
	TaskID      string  `json:"task_id"`
	RobotID     string  `json:"robot_id"`
	Suitability float64 `json:"suitability"`
}

// #endregion types
