package fakes

import (
	"github.com/hot-resize/hot-resize/resizer"
	"github.com/hot-resize/hot-resize/settings"
)

type FakeManager struct {
	ResizeDeviceCallCount int
	ResizeDeviceSpecs     []settings.DeviceSpec
	ResizeDeviceOpts      []resizer.Options
	ResizeDeviceErrs      map[string]error

	ResizeAllCallCount int
	ResizeAllSpecs     []settings.DeviceSpec
	ResizeAllReturns   int
}

func NewFakeManager() *FakeManager {
	return &FakeManager{
		ResizeDeviceErrs: make(map[string]error),
	}
}

func (m *FakeManager) ResizeDevice(spec settings.DeviceSpec, opts resizer.Options) error {
	m.ResizeDeviceCallCount++
	m.ResizeDeviceSpecs = append(m.ResizeDeviceSpecs, spec)
	m.ResizeDeviceOpts = append(m.ResizeDeviceOpts, opts)
	return m.ResizeDeviceErrs[spec.DevicePath]
}

func (m *FakeManager) ResizeAll(specs []settings.DeviceSpec, opts resizer.Options) int {
	m.ResizeAllCallCount++
	m.ResizeAllSpecs = append(m.ResizeAllSpecs, specs...)
	return m.ResizeAllReturns
}
