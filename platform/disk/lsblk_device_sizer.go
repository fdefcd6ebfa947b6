package disk

import (
	"strconv"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type lsblkDeviceSizer struct {
	cmdRunner boshsys.CmdRunner
}

func NewLsblkDeviceSizer(cmdRunner boshsys.CmdRunner) DeviceSizer {
	return lsblkDeviceSizer{cmdRunner: cmdRunner}
}

func (s lsblkDeviceSizer) GetDeviceSizeInBytes(devicePath string) (uint64, error) {
	stdout, _, _, err := s.cmdRunner.RunCommand("lsblk", "--nodeps", "-nb", "-o", "SIZE", devicePath)
	if err != nil {
		return 0, bosherr.WrapErrorf(err, "Getting block device size of '%s'", devicePath)
	}

	deviceSize, err := strconv.ParseUint(strings.TrimSpace(stdout), 10, 64)
	if err != nil {
		return 0, bosherr.WrapErrorf(err, "Converting block device size of '%s'", devicePath)
	}

	return deviceSize, nil
}
