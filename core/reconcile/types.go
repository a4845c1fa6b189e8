package reconcile

// Result is the comparison of one logical path across the source and target disks.
type Result struct {
	// Path is the logical path of the object.
	Path string `json:"path"`

	// SourcePresent indicates whether the object exists on the source disk.
	SourcePresent bool `json:"source_present"`

	// TargetPresent indicates whether the object exists on the target disk.
	TargetPresent bool `json:"target_present"`

	// Mismatch describes the differences between both copies, e.g. "size: src=3 dst=4".
	Mismatch []string `json:"mismatch"`
}

// InSync reports whether both disks hold the same object.
func (r Result) InSync() bool {
	return r.SourcePresent && r.TargetPresent && len(r.Mismatch) == 0
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionCopy copies an object missing on the target.
	ActionCopy ActionType = "copy"
	// ActionUpdate overwrites a target object that differs from the source.
	ActionUpdate ActionType = "update"
	// ActionDelete removes a target object absent from the source.
	ActionDelete ActionType = "delete"
)

// Action represents a planned mutation operation on the target disk.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Path is the logical path of the object.
	Path string `json:"path"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// Summary counts the results of a reconciliation.
type Summary struct {
	Total         int `json:"total"`
	InSync        int `json:"in_sync"`
	MissingTarget int `json:"missing_target"`
	ExtraTarget   int `json:"extra_target"`
	Mismatched    int `json:"mismatched"`
}

// Plan holds the reconciliation results and the actions that would bring the target in
// line with the source.
type Plan struct {
	Results []Result `json:"results"`
	Actions []Action `json:"actions"`
	Summary Summary  `json:"summary"`
}

// Options controls planning and execution.
type Options struct {
	// Dir restricts the reconciliation to a directory. Empty means the whole disk.
	Dir string

	// Prune plans deletion of target objects the source does not have.
	Prune bool

	// DryRun computes the plan without executing it.
	DryRun bool
}
