package disk

import (
	"strings"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type xfsFileSystemExtender struct {
	logger boshlog.Logger
	runner boshsys.CmdRunner
	logTag string
}

func NewXfsFileSystemExtender(
	logger boshlog.Logger,
	runner boshsys.CmdRunner,
) FileSystemExtender {
	return xfsFileSystemExtender{
		logger: logger,
		runner: runner,
		logTag: "XfsFileSystemExtender",
	}
}

func (e xfsFileSystemExtender) Extend(devicePath, mountPoint string) error {
	_, stderr, exitStatus, err := e.runner.RunCommand("xfs_growfs", mountPoint)
	if err == nil && exitStatus == 0 {
		return nil
	}

	e.logger.Warn(e.logTag, "xfs_growfs failed: %s", strings.TrimSpace(stderr))

	// Some xfsprogs versions need the data section named explicitly.
	_, stderr, exitStatus, err = e.runner.RunCommand("xfs_growfs", "-d", mountPoint)
	if err == nil && exitStatus == 0 {
		return nil
	}

	return FileSystemResizeError{Message: "xfs_growfs failed: " + strings.TrimSpace(stderr)}
}
