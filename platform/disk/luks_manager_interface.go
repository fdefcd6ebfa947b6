package disk

type LuksManager interface {
	// IsLuksContainer reports whether the device holds a LUKS encrypted
	// volume. Probe failures count as "not encrypted".
	IsLuksContainer(devicePath string) bool

	// ResizeContainer grows an unlocked LUKS container to fill its
	// backing device.
	ResizeContainer(devicePath string) error

	// FindMapperPath returns the active device-mapper path exposed for
	// the given encrypted device.
	FindMapperPath(devicePath string) (string, error)
}
