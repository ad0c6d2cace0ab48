package execx

import (
	"context"
	"os/exec"
	"strings"
	"sync"

	"github.com/thoreinstein/rigup/internal/errors"
)

// Call records a single Run or Output invocation on a Fake runner.
type Call struct {
	Name string
	Args []string
}

// String renders the call as a shell-ish line for assertions.
func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Fake is a recording Runner for tests. It resolves LookPath from a set of
// present executables, records every invocation, and lets tests script
// failures and side effects.
type Fake struct {
	mu sync.Mutex

	// present maps executable names to their presence on the fake PATH.
	present map[string]bool

	// failOn maps a command prefix (matched against Call.String()) to the
	// error Run/Output should return.
	failOn map[string]error

	// outputs maps a command prefix to the stdout Output should return.
	outputs map[string]string

	// OnRun, if set, is invoked for every Run call before the scripted
	// failure check. Tests use it to simulate install side effects, e.g.
	// marking a tool present after its installer ran.
	OnRun func(c Call)

	calls       []Call
	pathAppends []string
}

var _ Runner = (*Fake)(nil)

// NewFake creates a Fake runner with the given executables present.
func NewFake(present ...string) *Fake {
	f := &Fake{
		present: make(map[string]bool, len(present)),
		failOn:  make(map[string]error),
		outputs: make(map[string]string),
	}
	for _, name := range present {
		f.present[name] = true
	}
	return f
}

// SetPresent marks name as present (or absent) on the fake PATH.
func (f *Fake) SetPresent(name string, present bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.present[name] = present
}

// FailOn scripts Run and Output to fail for any command whose rendered
// form starts with prefix.
func (f *Fake) FailOn(prefix string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failOn[prefix] = err
}

// RespondWith scripts Output to return out for any command whose rendered
// form starts with prefix.
func (f *Fake) RespondWith(prefix, out string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs[prefix] = out
}

// Calls returns all recorded Run and Output invocations in order.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// PathAppends returns the directories passed to AppendPath in order.
func (f *Fake) PathAppends() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.pathAppends))
	copy(out, f.pathAppends)
	return out
}

// LookPath resolves name against the fake presence set.
func (f *Fake) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.present[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.Wrapf(exec.ErrNotFound, "%s", name)
}

// Run records the call, applies the OnRun hook, then returns any scripted
// failure.
func (f *Fake) Run(_ context.Context, name string, args ...string) error {
	call := Call{Name: name, Args: args}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	hook := f.OnRun
	f.mu.Unlock()

	if hook != nil {
		hook(call)
	}
	return f.scriptedErr(call)
}

// Output records the call and returns the scripted stdout, if any.
func (f *Fake) Output(_ context.Context, name string, args ...string) (string, error) {
	call := Call{Name: name, Args: args}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	if err := f.scriptedErr(call); err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	rendered := call.String()
	for prefix, out := range f.outputs {
		if strings.HasPrefix(rendered, prefix) {
			return out, nil
		}
	}
	return "", nil
}

// AppendPath records the directory without touching the real environment.
func (f *Fake) AppendPath(dir string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pathAppends = append(f.pathAppends, dir)
	return nil
}

func (f *Fake) scriptedErr(call Call) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rendered := call.String()
	for prefix, err := range f.failOn {
		if strings.HasPrefix(rendered, prefix) {
			return err
		}
	}
	return nil
}
