package settings_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hot-resize/hot-resize/platform/disk"
	. "github.com/hot-resize/hot-resize/settings"
)

var _ = Describe("ParseDeviceSpecs", func() {
	It("parses a device list", func() {
		specs, err := ParseDeviceSpecs(`[
			{"device":"/dev/vda1","fs_type":"ext4","mount_point":"/"},
			{"device":"/dev/vdb","fs_type":"xfs","mount_point":"/data"}
		]`)
		Expect(err).ToNot(HaveOccurred())
		Expect(specs).To(Equal([]DeviceSpec{
			{DevicePath: "/dev/vda1", FileSystemType: disk.FileSystemExt4, MountPoint: "/"},
			{DevicePath: "/dev/vdb", FileSystemType: disk.FileSystemXFS, MountPoint: "/data"},
		}))
	})

	It("accepts an empty list", func() {
		specs, err := ParseDeviceSpecs(`[]`)
		Expect(err).ToNot(HaveOccurred())
		Expect(specs).To(BeEmpty())
	})

	It("rejects malformed JSON", func() {
		_, err := ParseDeviceSpecs(`[{`)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Parsing devices JSON"))
	})

	It("rejects an unsupported filesystem type", func() {
		_, err := ParseDeviceSpecs(`[{"device":"/dev/vda1","fs_type":"vfat","mount_point":"/"}]`)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Unsupported filesystem type 'vfat'"))
	})

	It("rejects an empty device path", func() {
		_, err := ParseDeviceSpecs(`[{"device":"","fs_type":"ext4","mount_point":"/"}]`)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Device path must not be empty"))
	})

	It("rejects an empty mount point", func() {
		_, err := ParseDeviceSpecs(`[{"device":"/dev/vda1","fs_type":"ext4","mount_point":""}]`)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Mount point must not be empty for device '/dev/vda1'"))
	})
})

var _ = Describe("FileSystemTypes", func() {
	It("returns the distinct filesystem types in spec order", func() {
		types := FileSystemTypes([]DeviceSpec{
			{DevicePath: "/dev/vda1", FileSystemType: disk.FileSystemExt4, MountPoint: "/"},
			{DevicePath: "/dev/vdb", FileSystemType: disk.FileSystemXFS, MountPoint: "/data"},
			{DevicePath: "/dev/vdc", FileSystemType: disk.FileSystemExt4, MountPoint: "/var"},
		})
		Expect(types).To(Equal([]disk.FileSystemType{disk.FileSystemExt4, disk.FileSystemXFS}))
	})
})
