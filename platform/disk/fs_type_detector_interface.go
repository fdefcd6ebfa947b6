package disk

type FileSystemTypeDetector interface {
	DetectFileSystemType(devicePath string) (FileSystemType, error)
}
