package libol

import (
	"os/exec"
	"strings"
)

// Runner executes an external program and returns its combined output.
type Runner interface {
	CombinedOutput(name string, args ...string) ([]byte, error)
}

type ExecRunner struct {
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) CombinedOutput(name string, args ...string) ([]byte, error) {
	Cmd("ExecRunner: %s %s", name, strings.Join(args, " "))
	return exec.Command(name, args...).CombinedOutput()
}
