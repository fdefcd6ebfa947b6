package resizer

import (
	"github.com/hot-resize/hot-resize/settings"
)

// Options controls a resize run.
type Options struct {
	// DryRun reports what would be done without invoking mutating tools.
	DryRun bool

	// SkipVerify disables the post-resize capacity report.
	SkipVerify bool
}

type Manager interface {
	// ResizeDevice runs the full pipeline for one device: analyze, grow
	// partition, handle LUKS, resize filesystem, verify.
	ResizeDevice(spec settings.DeviceSpec, opts Options) error

	// ResizeAll processes every device in order. A per-device failure is
	// logged and does not stop the batch. It returns the number of
	// devices that succeeded.
	ResizeAll(specs []settings.DeviceSpec, opts Options) int
}
