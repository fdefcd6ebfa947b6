package disk

type FileSystemResizer interface {
	// ResizeFileSystem grows the filesystem on devicePath, mounted at
	// mountPoint, to its maximum size. declaredType is the caller's
	// expectation; the detected on-disk type takes precedence when the
	// two differ.
	ResizeFileSystem(devicePath string, declaredType FileSystemType, mountPoint string) error
}
