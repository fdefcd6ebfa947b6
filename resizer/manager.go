package resizer

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/hot-resize/hot-resize/platform/disk"
	"github.com/hot-resize/hot-resize/settings"
)

type manager struct {
	logger      boshlog.Logger
	analyzer    disk.DeviceAnalyzer
	grower      disk.PartitionGrower
	luksManager disk.LuksManager
	fsResizer   disk.FileSystemResizer
	verifier    disk.ResizeVerifier
	logTag      string
}

func NewManager(
	logger boshlog.Logger,
	analyzer disk.DeviceAnalyzer,
	grower disk.PartitionGrower,
	luksManager disk.LuksManager,
	fsResizer disk.FileSystemResizer,
	verifier disk.ResizeVerifier,
) Manager {
	return manager{
		logger:      logger,
		analyzer:    analyzer,
		grower:      grower,
		luksManager: luksManager,
		fsResizer:   fsResizer,
		verifier:    verifier,
		logTag:      "ResizeManager",
	}
}

func (m manager) ResizeDevice(spec settings.DeviceSpec, opts Options) error {
	m.logger.Info(m.logTag, "Analyzing device: %s", spec.DevicePath)

	blockDevice, err := m.analyzer.AnalyzeDevice(spec.DevicePath)
	if err != nil {
		return bosherr.WrapErrorf(err, "Analyzing device '%s'", spec.DevicePath)
	}

	m.logger.Info(m.logTag, "Real device: %s, disk: %s", blockDevice.RealDevicePath, blockDevice.ParentDiskName)
	if blockDevice.IsPartition() {
		m.logger.Info(m.logTag, "Partition: %d", blockDevice.PartitionNumber)
	} else {
		m.logger.Info(m.logTag, "Whole disk (no partition)")
	}

	if opts.DryRun {
		m.reportDryRun(spec, blockDevice)
		return nil
	}

	err = m.grower.GrowPartition(blockDevice.ParentDiskName, blockDevice.PartitionNumber)
	if err != nil {
		return err
	}

	resizeTarget := blockDevice.RealDevicePath

	if m.luksManager.IsLuksContainer(blockDevice.RealDevicePath) {
		m.logger.Info(m.logTag, "Detected LUKS encrypted device")

		mapperPath, err := m.luksManager.FindMapperPath(blockDevice.RealDevicePath)
		if err != nil {
			return bosherr.WrapErrorf(err, "Resolving LUKS mapper for '%s'", blockDevice.RealDevicePath)
		}

		err = m.luksManager.ResizeContainer(mapperPath)
		if err != nil {
			return err
		}

		// The filesystem lives inside the container, so it must be
		// grown through the mapper, not the raw partition.
		resizeTarget = mapperPath
	}

	err = m.fsResizer.ResizeFileSystem(resizeTarget, spec.FileSystemType, spec.MountPoint)
	if err != nil {
		return err
	}

	if !opts.SkipVerify {
		report, err := m.verifier.VerifyResize(spec.MountPoint)
		if err != nil {
			return bosherr.WrapErrorf(err, "Verifying resize of '%s'", spec.MountPoint)
		}
		m.logger.Info(m.logTag, "Current size: %s", report)
	}

	return nil
}

func (m manager) ResizeAll(specs []settings.DeviceSpec, opts Options) int {
	successCount := 0

	for i, spec := range specs {
		m.logger.Info(m.logTag, "Processing device %d/%d: %s", i+1, len(specs), spec.DevicePath)

		err := m.ResizeDevice(spec, opts)
		if err != nil {
			m.logger.Error(m.logTag, "Failed to process device %s: %s", spec.DevicePath, err.Error())
			continue
		}

		m.logger.Info(m.logTag, "Successfully processed device %s", spec.DevicePath)
		successCount++
	}

	if successCount == len(specs) {
		m.logger.Info(m.logTag, "Operation completed successfully for all devices")
	} else {
		m.logger.Info(m.logTag, "Operation completed with %d/%d devices processed successfully", successCount, len(specs))
	}

	return successCount
}

func (m manager) reportDryRun(spec settings.DeviceSpec, blockDevice disk.BlockDevice) {
	if blockDevice.IsPartition() {
		m.logger.Info(m.logTag, "[DRY RUN] Would resize partition %d on disk %s", blockDevice.PartitionNumber, blockDevice.ParentDiskPath())
	} else {
		m.logger.Info(m.logTag, "[DRY RUN] Would skip partition resize for whole disk %s", blockDevice.ParentDiskPath())
	}

	m.logger.Info(m.logTag, "[DRY RUN] Would resize %s filesystem at %s", spec.FileSystemType, spec.MountPoint)
}
