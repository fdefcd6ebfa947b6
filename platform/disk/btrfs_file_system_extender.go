package disk

import (
	"strings"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type btrfsFileSystemExtender struct {
	logger boshlog.Logger
	runner boshsys.CmdRunner
	logTag string
}

func NewBtrfsFileSystemExtender(
	logger boshlog.Logger,
	runner boshsys.CmdRunner,
) FileSystemExtender {
	return btrfsFileSystemExtender{
		logger: logger,
		runner: runner,
		logTag: "BtrfsFileSystemExtender",
	}
}

func (e btrfsFileSystemExtender) Extend(devicePath, mountPoint string) error {
	_, stderr, exitStatus, err := e.runner.RunCommand(
		"btrfs", "filesystem", "resize", "max", mountPoint,
	)
	if err == nil && exitStatus == 0 {
		return nil
	}

	e.logger.Warn(e.logTag, "btrfs filesystem resize failed: %s", strings.TrimSpace(stderr))

	// Legacy subcommand form used by older btrfs-progs.
	_, stderr, exitStatus, err = e.runner.RunCommand("btrfs", "resize", "max", mountPoint)
	if err == nil && exitStatus == 0 {
		return nil
	}

	return FileSystemResizeError{Message: "btrfs resize failed: " + strings.TrimSpace(stderr)}
}
