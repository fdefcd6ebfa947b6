package disk

import (
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type fileSystemResizer struct {
	logger        boshlog.Logger
	detector      FileSystemTypeDetector
	extExtender   FileSystemExtender
	xfsExtender   FileSystemExtender
	btrfsExtender FileSystemExtender
	logTag        string
}

func NewFileSystemResizer(
	logger boshlog.Logger,
	cmdRunner boshsys.CmdRunner,
	detector FileSystemTypeDetector,
) FileSystemResizer {
	return fileSystemResizer{
		logger:        logger,
		detector:      detector,
		extExtender:   NewExtFileSystemExtender(cmdRunner),
		xfsExtender:   NewXfsFileSystemExtender(logger, cmdRunner),
		btrfsExtender: NewBtrfsFileSystemExtender(logger, cmdRunner),
		logTag:        "FileSystemResizer",
	}
}

func (r fileSystemResizer) ResizeFileSystem(devicePath string, declaredType FileSystemType, mountPoint string) error {
	fsType, err := r.detector.DetectFileSystemType(devicePath)
	if err != nil {
		r.logger.Info(r.logTag, "Could not detect filesystem type, using specified type: %s", declaredType)
		fsType = declaredType
	}

	if fsType != declaredType {
		r.logger.Info(r.logTag, "Detected filesystem type %s differs from specified %s", fsType, declaredType)
	}

	r.logger.Info(r.logTag, "Resizing %s filesystem on %s", fsType, devicePath)

	switch {
	case fsType.IsExtFamily():
		return r.extExtender.Extend(devicePath, mountPoint)
	case fsType == FileSystemXFS:
		return r.xfsExtender.Extend(devicePath, mountPoint)
	case fsType == FileSystemBtrfs:
		return r.btrfsExtender.Extend(devicePath, mountPoint)
	default:
		return FileSystemResizeError{Message: "unsupported filesystem: " + string(fsType)}
	}
}
