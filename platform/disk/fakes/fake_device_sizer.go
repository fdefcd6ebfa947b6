package fakes

type FakeDeviceSizer struct {
	GetDeviceSizeInBytesCallCount int
	GetDeviceSizeInBytesPaths     []string
	GetDeviceSizeInBytesSizes     map[string]uint64
	GetDeviceSizeInBytesErrs      map[string]error
}

func NewFakeDeviceSizer() *FakeDeviceSizer {
	return &FakeDeviceSizer{
		GetDeviceSizeInBytesSizes: make(map[string]uint64),
		GetDeviceSizeInBytesErrs:  make(map[string]error),
	}
}

func (s *FakeDeviceSizer) GetDeviceSizeInBytes(devicePath string) (uint64, error) {
	s.GetDeviceSizeInBytesCallCount++
	s.GetDeviceSizeInBytesPaths = append(s.GetDeviceSizeInBytesPaths, devicePath)
	return s.GetDeviceSizeInBytesSizes[devicePath], s.GetDeviceSizeInBytesErrs[devicePath]
}
