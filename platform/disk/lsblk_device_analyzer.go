package disk

import (
	"strconv"
	"strings"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type lsblkDeviceAnalyzer struct {
	logger    boshlog.Logger
	cmdRunner boshsys.CmdRunner
	fs        boshsys.FileSystem
	logTag    string
}

func NewLsblkDeviceAnalyzer(
	logger boshlog.Logger,
	cmdRunner boshsys.CmdRunner,
	fs boshsys.FileSystem,
) DeviceAnalyzer {
	return lsblkDeviceAnalyzer{
		logger:    logger,
		cmdRunner: cmdRunner,
		fs:        fs,
		logTag:    "LsblkDeviceAnalyzer",
	}
}

func (a lsblkDeviceAnalyzer) AnalyzeDevice(devicePath string) (BlockDevice, error) {
	realPath, err := a.fs.ReadAndFollowLink(devicePath)
	if err != nil {
		return BlockDevice{}, DeviceNotFoundError{Path: devicePath}
	}

	a.logger.Debug(a.logTag, "Running lsblk on device '%s'", realPath)

	stdout, stderr, exitStatus, err := a.cmdRunner.RunCommand(
		"lsblk", "-Pno", "pkname,name,partn", realPath,
	)
	if err != nil || exitStatus != 0 {
		return BlockDevice{}, DeviceInfoError{Message: strings.TrimSpace(stderr)}
	}

	if strings.TrimSpace(stdout) == "" {
		return BlockDevice{}, DeviceInfoError{Message: "lsblk returned no output for device " + realPath}
	}

	// lsblk prints one line per device; the first line is the queried
	// device itself, any following lines are holders (e.g. dm mappers).
	firstLine := strings.SplitN(strings.TrimSpace(stdout), "\n", 2)[0]

	parentDisk, name, partitionNumber, err := parseTopologyLine(firstLine)
	if err != nil {
		return BlockDevice{}, err
	}

	// Whole-disk devices have no distinct parent; lsblk reports an empty
	// PKNAME, so the device's own short name stands in for the disk.
	if parentDisk == "" {
		parentDisk = name
	}

	if parentDisk == "" {
		return BlockDevice{}, DeviceInfoError{Message: "could not determine device name"}
	}

	return BlockDevice{
		RealDevicePath:  realPath,
		ParentDiskName:  parentDisk,
		PartitionNumber: partitionNumber,
	}, nil
}

// parseTopologyLine parses lsblk pair output, e.g.
//
//	PKNAME="sda" NAME="sda1" PARTN="1"
//
// Empty quoted values are treated as absent.
func parseTopologyLine(line string) (parentDisk, name string, partitionNumber int, err error) {
	for _, pair := range strings.Fields(line) {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}

		value = strings.Trim(value, `"`)
		if value == "" {
			continue
		}

		switch key {
		case "PKNAME":
			parentDisk = value
		case "NAME":
			name = value
		case "PARTN":
			partitionNumber, err = strconv.Atoi(value)
			if err != nil {
				return "", "", 0, DeviceInfoError{Message: "invalid partition number '" + value + "'"}
			}
		}
	}

	return parentDisk, name, partitionNumber, nil
}
