package disk

import (
	"strings"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type extFileSystemExtender struct {
	runner boshsys.CmdRunner
}

func NewExtFileSystemExtender(
	runner boshsys.CmdRunner,
) FileSystemExtender {
	return extFileSystemExtender{
		runner: runner,
	}
}

func (e extFileSystemExtender) Extend(devicePath, mountPoint string) error {
	_, stderr, exitStatus, err := e.runner.RunCommand(
		"resize2fs",
		"-f",
		devicePath,
	)
	if err != nil || exitStatus != 0 {
		return FileSystemResizeError{Message: "resize2fs failed: " + strings.TrimSpace(stderr)}
	}

	return nil
}
