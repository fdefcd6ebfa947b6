package settings

import (
	"encoding/json"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"

	"github.com/hot-resize/hot-resize/platform/disk"
)

// DeviceSpec names one device to resize. Specs are supplied once per
// request and never mutated.
type DeviceSpec struct {
	DevicePath     string              `json:"device"`
	FileSystemType disk.FileSystemType `json:"fs_type"`
	MountPoint     string              `json:"mount_point"`
}

// ParseDeviceSpecs decodes a JSON device list, e.g.
//
//	[{"device":"/dev/vda1","fs_type":"ext4","mount_point":"/"}]
//
// The filesystem type tag is restricted to ext4, xfs and btrfs. An empty
// list is valid.
func ParseDeviceSpecs(devicesJSON string) ([]DeviceSpec, error) {
	var specs []DeviceSpec

	err := json.Unmarshal([]byte(devicesJSON), &specs)
	if err != nil {
		return nil, bosherr.WrapError(err, "Parsing devices JSON")
	}

	for _, spec := range specs {
		switch spec.FileSystemType {
		case disk.FileSystemExt4, disk.FileSystemXFS, disk.FileSystemBtrfs:
		default:
			return nil, bosherr.Errorf("Unsupported filesystem type '%s' for device '%s'", spec.FileSystemType, spec.DevicePath)
		}

		if spec.DevicePath == "" {
			return nil, bosherr.Error("Device path must not be empty")
		}
		if spec.MountPoint == "" {
			return nil, bosherr.Errorf("Mount point must not be empty for device '%s'", spec.DevicePath)
		}
	}

	return specs, nil
}

// FileSystemTypes returns the distinct filesystem types named by the specs.
func FileSystemTypes(specs []DeviceSpec) []disk.FileSystemType {
	var types []disk.FileSystemType
	seen := map[disk.FileSystemType]bool{}

	for _, spec := range specs {
		if !seen[spec.FileSystemType] {
			seen[spec.FileSystemType] = true
			types = append(types, spec.FileSystemType)
		}
	}

	return types
}
