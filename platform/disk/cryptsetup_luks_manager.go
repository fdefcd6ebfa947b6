package disk

import (
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type cryptsetupLuksManager struct {
	logger    boshlog.Logger
	cmdRunner boshsys.CmdRunner
	logTag    string
}

func NewCryptsetupLuksManager(
	logger boshlog.Logger,
	cmdRunner boshsys.CmdRunner,
) LuksManager {
	return cryptsetupLuksManager{
		logger:    logger,
		cmdRunner: cmdRunner,
		logTag:    "CryptsetupLuksManager",
	}
}

func (m cryptsetupLuksManager) IsLuksContainer(devicePath string) bool {
	_, _, exitStatus, err := m.cmdRunner.RunCommand("cryptsetup", "isLuks", devicePath)
	return err == nil && exitStatus == 0
}

func (m cryptsetupLuksManager) ResizeContainer(devicePath string) error {
	m.logger.Info(m.logTag, "Resizing LUKS container on %s", devicePath)

	_, stderr, exitStatus, err := m.cmdRunner.RunCommand("cryptsetup", "resize", devicePath)
	if err != nil || exitStatus != 0 {
		return LuksResizeError{Message: strings.TrimSpace(stderr)}
	}

	m.logger.Info(m.logTag, "Successfully resized LUKS container")
	return nil
}

func (m cryptsetupLuksManager) FindMapperPath(devicePath string) (string, error) {
	stdout, _, _, err := m.cmdRunner.RunCommand("lsblk", "-lpno", "NAME", devicePath)
	if err != nil {
		return "", bosherr.WrapErrorf(err, "Listing devices under '%s'", devicePath)
	}

	for _, line := range strings.Split(stdout, "\n") {
		if strings.Contains(line, "mapper") {
			return strings.TrimSpace(line), nil
		}
	}

	return "", bosherr.Errorf("Could not find LUKS mapper device for %s", devicePath)
}
