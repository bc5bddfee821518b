// Package state tracks the running service's lifecycle state, reported at
// the /ping endpoint.
package state

import "sync"

// ServiceStateType is one of the three states a running service can be in.
type ServiceStateType int

const (
	Up ServiceStateType = iota
	LoadingData
	Down
)

func (s ServiceStateType) String() string {
	switch s {
	case Up:
		return "Up"
	case LoadingData:
		return "LoadingData"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// ServiceState tracks and reports the state of a running service. It starts
// Down and is expected to move through LoadingData to Up exactly once.
type ServiceState struct {
	mu    sync.Mutex
	state ServiceStateType
}

// New returns a ServiceState starting in the Down state.
func New() *ServiceState {
	return &ServiceState{state: Down}
}

// State returns the current state.
func (s *ServiceState) State() ServiceStateType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetUp transitions to Up.
func (s *ServiceState) SetUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Up
}

// SetLoadingData transitions to LoadingData.
func (s *ServiceState) SetLoadingData() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = LoadingData
}

// SetDown transitions to Down.
func (s *ServiceState) SetDown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Down
}
