package disk

import (
	"fmt"
	"strings"

	sigar "github.com/cloudfoundry/gosigar"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

// FileSystemStats exposes native filesystem statistics for a path.
// Satisfied by sigar.ConcreteSigar.
type FileSystemStats interface {
	GetFileSystemUsage(path string) (sigar.FileSystemUsage, error)
}

type statfsResizeVerifier struct {
	logger         boshlog.Logger
	cmdRunner      boshsys.CmdRunner
	stats          FileSystemStats
	mountsSearcher MountsSearcher
	logTag         string
}

func NewStatfsResizeVerifier(
	logger boshlog.Logger,
	cmdRunner boshsys.CmdRunner,
	stats FileSystemStats,
	mountsSearcher MountsSearcher,
) ResizeVerifier {
	return statfsResizeVerifier{
		logger:         logger,
		cmdRunner:      cmdRunner,
		stats:          stats,
		mountsSearcher: mountsSearcher,
		logTag:         "StatfsResizeVerifier",
	}
}

func (v statfsResizeVerifier) VerifyResize(mountPoint string) (string, error) {
	v.logger.Debug(v.logTag, "Verifying resize at %s", mountPoint)

	report, err := v.nativeReport(mountPoint)
	if err == nil {
		return report, nil
	}
	v.logger.Warn(v.logTag, "Native filesystem statistics failed: %s", err.Error())

	stdout, _, exitStatus, err := v.cmdRunner.RunCommand("df", "-h", mountPoint)
	if err == nil && exitStatus == 0 {
		return stdout, nil
	}
	v.logger.Warn(v.logTag, "df command failed")

	stdout, _, exitStatus, err = v.cmdRunner.RunCommand("lsblk", "-o", "NAME,SIZE,MOUNTPOINT", "--path")
	if err == nil && exitStatus == 0 {
		var matching []string
		for _, line := range strings.Split(stdout, "\n") {
			if strings.Contains(line, mountPoint) {
				matching = append(matching, line)
			}
		}
		return strings.Join(matching, "\n"), nil
	}
	v.logger.Warn(v.logTag, "lsblk command failed")

	return "", bosherr.Error("Failed to get filesystem size information")
}

func (v statfsResizeVerifier) nativeReport(mountPoint string) (string, error) {
	usage, err := v.stats.GetFileSystemUsage(mountPoint)
	if err != nil {
		return "", bosherr.WrapErrorf(err, "Getting filesystem usage of '%s'", mountPoint)
	}

	deviceName := v.resolveDeviceName(mountPoint)

	// Usage values are reported in kilobytes.
	return fmt.Sprintf(
		"%s %s size, %s used, %s available, %.0f%% full, mounted on %s",
		deviceName,
		humanReadableKilobytes(usage.Total),
		humanReadableKilobytes(usage.Used),
		humanReadableKilobytes(usage.Avail),
		usage.UsePercent(),
		mountPoint,
	), nil
}

func (v statfsResizeVerifier) resolveDeviceName(mountPoint string) string {
	mounts, err := v.mountsSearcher.SearchMounts()
	if err != nil {
		v.logger.Debug(v.logTag, "Searching mounts: %s", err.Error())
		return "unknown"
	}

	for _, mount := range mounts {
		if mount.MountPoint == mountPoint {
			return mount.PartitionPath
		}
	}

	return "unknown"
}

func humanReadableKilobytes(sizeInKilobytes uint64) string {
	size := float64(sizeInKilobytes)
	for _, unit := range []string{"K", "M", "G", "T"} {
		if size < 1024 {
			return fmt.Sprintf("%.1f%s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1fP", size)
}
