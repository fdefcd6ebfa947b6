package disk

type PartitionGrower interface {
	// GrowPartition grows the given partition of the disk to use all
	// trailing free space. A partitionNumber of 0 means the target is a
	// whole disk and growing is skipped.
	GrowPartition(diskName string, partitionNumber int) error
}
