package types

// RunStatus describes how a flow ended
type RunStatus string

const (
	// StatusCompleted means the flow ran its mutation step
	StatusCompleted RunStatus = "completed"

	// StatusCancelled means the operator declined the confirmation; nothing was changed
	StatusCancelled RunStatus = "cancelled"

	// StatusNothingToDo means there was nothing to install or remove
	StatusNothingToDo RunStatus = "nothing-to-do"
)

// EntryFailure records a single entry whose operation failed
type EntryFailure struct {
	Entry string `json:"entry" yaml:"entry"`
	Err   error  `json:"-" yaml:"-"`
}

// OperationResult is produced by the orchestrator and printed; it is never persisted.
type OperationResult struct {
	Mode      Mode           `json:"mode" yaml:"mode"`
	Status    RunStatus      `json:"status" yaml:"status"`
	Groups    []string       `json:"groups,omitempty" yaml:"groups,omitempty"`
	Attempted []string       `json:"attempted,omitempty" yaml:"attempted,omitempty"`
	Succeeded int            `json:"succeeded" yaml:"succeeded"`
	Failures  []EntryFailure `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// GroupStatus summarizes one asset group for the list command
type GroupStatus struct {
	Name        string   `json:"name" yaml:"name"`
	SourceFiles int      `json:"sourceFiles" yaml:"sourceFiles"`
	HasSource   bool     `json:"hasSource" yaml:"hasSource"`
	Installed   bool     `json:"installed" yaml:"installed"`
	Owned       []string `json:"owned" yaml:"owned"`
	Present     []string `json:"present" yaml:"present"`
}
