package chroot

import "sync"

// State tracks whether the rescue mount root is currently occupied. At most
// one mount session is active under the mount root at a time; the flag is set
// only after a mount sequence fully validates and reset by every teardown.
type State struct {
	mountRoot string

	mu      sync.Mutex
	mounted bool
}

// NewState creates the state for one rescue mount root.
func NewState(mountRoot string) *State {
	return &State{mountRoot: mountRoot}
}

// MountRoot returns the fixed directory the rescue session assembles under.
func (s *State) MountRoot() string {
	return s.mountRoot
}

// Mounted reports whether a validated mount session currently occupies the
// mount root.
func (s *State) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

func (s *State) setMounted(mounted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mounted = mounted
}
