// Package command holds the executable definitions that document lines
// bind to. During parsing commands live in a Directory arena addressed by
// cheap handles; after parsing the arena is frozen so every line pointing
// at the same handle shares one immutable command value.
package command

import (
	"fmt"
	"os/exec"
	"strings"
)

// Environment variables communicated to spawned processes.
const (
	EnvLineNr     = "LINE_VIEW_LINE_NR"
	EnvLineSource = "LINE_VIEW_LINE_SRC"
)

// Cmd is an executable plus its configured arguments. An empty Cmd
// (no executable) is a no-op on execution.
type Cmd struct {
	exe  string
	args []string
}

// SetExe sets the executable path. The last exe directive wins.
func (c *Cmd) SetExe(exe string) {
	c.exe = exe
}

// AddArg appends one configured argument.
func (c *Cmd) AddArg(arg string) {
	c.args = append(c.args, arg)
}

// Exe returns the configured executable, empty if none.
func (c *Cmd) Exe() string { return c.exe }

// Args returns the configured arguments.
func (c *Cmd) Args() []string { return c.args }

// IsEmpty reports whether executing this command is a no-op.
func (c *Cmd) IsEmpty() bool { return c == nil || c.exe == "" }

// Execute spawns the command fire-and-forget. The params are appended after
// the configured arguments, and the spawned process receives the line
// number and source identifier in its environment. Spawn failure is fatal
// only to this one request.
func (c *Cmd) Execute(lineNr int, lineSrc string, params ...string) error {
	if c.IsEmpty() {
		return nil
	}

	args := make([]string, 0, len(c.args)+len(params))
	args = append(args, c.args...)
	args = append(args, params...)

	proc := exec.Command(c.exe, args...)
	proc.Env = append(proc.Environ(),
		fmt.Sprintf("%s=%d", EnvLineNr, lineNr),
		fmt.Sprintf("%s=%s", EnvLineSource, lineSrc),
	)

	if err := proc.Start(); err != nil {
		return &SpawnError{Program: c.exe, Args: args, Err: err}
	}

	// The process is deliberately not waited on; release it so it is not
	// tied to our lifetime.
	return proc.Process.Release()
}

// SpawnError reports a failed process spawn.
type SpawnError struct {
	Program string
	Args    []string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn %s with args |%s|, %s",
		e.Program, strings.Join(e.Args, ", "), e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
