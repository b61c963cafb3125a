package compiler

import (
	"fmt"

	"github.com/osakit/osakit/pkg/capability"
	"github.com/osakit/osakit/pkg/command"
)

// UnsupportedFeatureError reports that a command references a property or
// constant the capability table marks broken or does not list at all. The
// command is rejected whole before any rendering, so the caller can pick
// an alternative instead of shipping a script the host will ignore.
type UnsupportedFeatureError struct {
	Application command.Application
	Feature     capability.Feature
	// Note carries the table's empirical context when the feature is
	// listed as broken; empty for unknown features.
	Note string
}

func (e *UnsupportedFeatureError) Error() string {
	if e.Note != "" {
		return fmt.Sprintf("%s does not support %s: %s", e.Application, e.Feature, e.Note)
	}
	return fmt.Sprintf("%s does not support %s", e.Application, e.Feature)
}
