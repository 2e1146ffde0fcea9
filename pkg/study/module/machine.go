package module

import "fmt"

// State is where a session view sits in its load cycle.
type State int

const (
	Uninitialized State = iota
	Loading
	Ready
	NotFound
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "UNINITIALIZED"
	case Loading:
		return "LOADING"
	case Ready:
		return "READY"
	case NotFound:
		return "NOT_FOUND"
	case Failed:
		return "FAILED"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Machine enforces the view lifecycle: a load begins exactly once, then
// resolves to Ready, NotFound or Failed. Resolving twice or resolving
// without a load in flight is a programming error surfaced as one.
type Machine struct {
	state State
}

func NewMachine() *Machine {
	return &Machine{state: Uninitialized}
}

func (m *Machine) State() State {
	return m.state
}

// Begin moves Uninitialized into Loading.
func (m *Machine) Begin() error {
	if m.state != Uninitialized {
		return fmt.Errorf("cannot begin load from %s", m.state)
	}
	m.state = Loading
	return nil
}

// Resolve completes the load. found=false lands on NotFound.
func (m *Machine) Resolve(found bool) error {
	if m.state != Loading {
		return fmt.Errorf("cannot resolve from %s", m.state)
	}
	if found {
		m.state = Ready
	} else {
		m.state = NotFound
	}
	return nil
}

// Reject fails the load.
func (m *Machine) Reject() error {
	if m.state != Loading {
		return fmt.Errorf("cannot reject from %s", m.state)
	}
	m.state = Failed
	return nil
}
