package fakes

import (
	boshdisk "github.com/hot-resize/hot-resize/platform/disk"
)

type FakeDeviceAnalyzer struct {
	AnalyzeDeviceCallCount int
	AnalyzeDevicePaths     []string
	AnalyzeDeviceDevices   map[string]boshdisk.BlockDevice
	AnalyzeDeviceErrs      map[string]error
}

func NewFakeDeviceAnalyzer() *FakeDeviceAnalyzer {
	return &FakeDeviceAnalyzer{
		AnalyzeDeviceDevices: make(map[string]boshdisk.BlockDevice),
		AnalyzeDeviceErrs:    make(map[string]error),
	}
}

func (a *FakeDeviceAnalyzer) AnalyzeDevice(devicePath string) (boshdisk.BlockDevice, error) {
	a.AnalyzeDeviceCallCount++
	a.AnalyzeDevicePaths = append(a.AnalyzeDevicePaths, devicePath)
	return a.AnalyzeDeviceDevices[devicePath], a.AnalyzeDeviceErrs[devicePath]
}
