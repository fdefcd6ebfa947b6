package daemon

// State tracks the last observed size in bytes per tracking key. Keys are
// either a device path or "<device>_parent" for the device's parent disk.
// A State lives for one daemon run, is owned by the polling loop, and is
// never persisted; a fresh process always starts from an empty baseline.
type State struct {
	sizes map[string]uint64
}

func NewState() *State {
	return &State{sizes: map[string]uint64{}}
}

// LastSize returns the recorded size for a key and whether one exists.
func (s *State) LastSize(key string) (uint64, bool) {
	size, found := s.sizes[key]
	return size, found
}

// Record stores the current size for a key, overwriting any prior value.
func (s *State) Record(key string, size uint64) {
	s.sizes[key] = size
}

// ParentKey derives the tracking key for a device's parent disk.
func ParentKey(devicePath string) string {
	return devicePath + "_parent"
}
