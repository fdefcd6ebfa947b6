package disk

// FileSystemType identifies a filesystem the resizer knows how to grow.
type FileSystemType string

const (
	FileSystemExt2  FileSystemType = "ext2"
	FileSystemExt3  FileSystemType = "ext3"
	FileSystemExt4  FileSystemType = "ext4"
	FileSystemXFS   FileSystemType = "xfs"
	FileSystemBtrfs FileSystemType = "btrfs"
)

func (t FileSystemType) IsExtFamily() bool {
	return t == FileSystemExt2 || t == FileSystemExt3 || t == FileSystemExt4
}

// BlockDevice describes the topology of an analyzed device. PartitionNumber
// is 0 when the device is a whole disk rather than a partition; partition
// indexes reported by the kernel start at 1.
type BlockDevice struct {
	RealDevicePath  string
	ParentDiskName  string
	PartitionNumber int
}

func (d BlockDevice) IsPartition() bool {
	return d.PartitionNumber > 0
}

// ParentDiskPath returns the parent disk as an absolute device path.
func (d BlockDevice) ParentDiskPath() string {
	return "/dev/" + d.ParentDiskName
}
