package execx

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Result captures the outcome of one external invocation.
type Result struct {
	Code int
	Err  error
}

// Runner is the seam esk spawns external programs through. Services take a
// Runner so tests can substitute a Recorder instead of touching real keys,
// repositories or the network.
type Runner interface {
	// Interactive runs the command attached to the caller's terminal.
	// Stdin/stdout/stderr are inherited, so the child may prompt the user
	// and esk blocks until it exits.
	Interactive(name string, args ...string) Result

	// Output runs the command and captures its stdout. Stderr still goes
	// to the terminal.
	Output(name string, args ...string) (string, Result)
}

// Host executes commands on the host for real.
type Host struct{}

func (Host) Interactive(name string, args ...string) Result {
	trace(name, args)

	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return resultFor(cmd.Run())
}

func (Host) Output(name string, args ...string) (string, Result) {
	trace(name, args)

	cmd := exec.Command(name, args...)
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()

	return string(out), resultFor(err)
}

// IsAvailable checks if a command can be found in PATH.
func IsAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func resultFor(err error) Result {
	if err == nil {
		return Result{}
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return Result{Code: ee.ExitCode(), Err: err}
	}
	return Result{Code: 1, Err: err}
}

// Set ESK_DEBUG=1 to echo every spawned command to stderr.
func trace(name string, args []string) {
	if os.Getenv("ESK_DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, "+ %s\n", strings.Join(append([]string{name}, args...), " "))
	}
}
