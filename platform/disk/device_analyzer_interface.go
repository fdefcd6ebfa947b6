package disk

type DeviceAnalyzer interface {
	AnalyzeDevice(devicePath string) (BlockDevice, error)
}
