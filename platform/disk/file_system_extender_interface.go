package disk

type FileSystemExtender interface {
	// Extend grows a mounted filesystem to fill its backing device.
	// Depending on the filesystem, the tool operates on the raw device
	// or on the mount point.
	Extend(devicePath, mountPoint string) error
}
