package models

// Settings captures one parsed invocation. Built once from the command
// line and passed around read-only after that.
type Settings struct {
	InstanceID string // empty in list mode
	Test       bool
	Verbose    bool
	Quiet      bool
}
