package disk

type DeviceSizer interface {
	GetDeviceSizeInBytes(devicePath string) (uint64, error)
}
