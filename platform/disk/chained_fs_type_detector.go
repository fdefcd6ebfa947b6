package disk

import (
	"strings"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

// chainedFsTypeDetector determines the real on-disk filesystem type by
// trying blkid, then lsblk, then file. Individual strategy failures are
// swallowed; only exhaustion of the chain is an error.
type chainedFsTypeDetector struct {
	logger    boshlog.Logger
	cmdRunner boshsys.CmdRunner
	logTag    string
}

func NewChainedFsTypeDetector(
	logger boshlog.Logger,
	cmdRunner boshsys.CmdRunner,
) FileSystemTypeDetector {
	return chainedFsTypeDetector{
		logger:    logger,
		cmdRunner: cmdRunner,
		logTag:    "ChainedFsTypeDetector",
	}
}

func (d chainedFsTypeDetector) DetectFileSystemType(devicePath string) (FileSystemType, error) {
	stdout, _, exitStatus, err := d.cmdRunner.RunCommand(
		"blkid", "-s", "TYPE", "-o", "value", devicePath,
	)
	if err == nil && exitStatus == 0 {
		if fsType := strings.ToLower(strings.TrimSpace(stdout)); fsType != "" {
			return FileSystemType(fsType), nil
		}
	} else {
		d.logger.Debug(d.logTag, "blkid failed: %v", err)
	}

	stdout, _, exitStatus, err = d.cmdRunner.RunCommand("lsblk", "-ndo", "FSTYPE", devicePath)
	if err == nil && exitStatus == 0 {
		if fsType := strings.ToLower(strings.TrimSpace(stdout)); fsType != "" {
			return FileSystemType(fsType), nil
		}
	} else {
		d.logger.Debug(d.logTag, "lsblk failed: %v", err)
	}

	stdout, _, exitStatus, err = d.cmdRunner.RunCommand("file", "-Ls", devicePath)
	if err == nil && exitStatus == 0 {
		output := strings.ToLower(stdout)
		switch {
		case strings.Contains(output, "ext4"):
			return FileSystemExt4, nil
		case strings.Contains(output, "xfs"):
			return FileSystemXFS, nil
		case strings.Contains(output, "btrfs"):
			return FileSystemBtrfs, nil
		}
	} else {
		d.logger.Debug(d.logTag, "file command failed: %v", err)
	}

	return "", FileSystemDetectionError{DevicePath: devicePath}
}
