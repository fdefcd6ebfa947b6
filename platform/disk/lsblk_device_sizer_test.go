package disk_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"

	. "github.com/hot-resize/hot-resize/platform/disk"
)

var _ = Describe("LsblkDeviceSizer", func() {
	var (
		fakeCmdRunner *fakesys.FakeCmdRunner
		sizer         DeviceSizer
	)

	BeforeEach(func() {
		fakeCmdRunner = fakesys.NewFakeCmdRunner()
		sizer = NewLsblkDeviceSizer(fakeCmdRunner)
	})

	It("returns the size reported by lsblk", func() {
		fakeCmdRunner.AddCmdResult(
			"lsblk --nodeps -nb -o SIZE /dev/vda",
			fakesys.FakeCmdResult{Stdout: "42949672960\n"})

		size, err := sizer.GetDeviceSizeInBytes("/dev/vda")
		Expect(err).ToNot(HaveOccurred())
		Expect(size).To(Equal(uint64(42949672960)))
	})

	It("returns an error when lsblk fails", func() {
		fakeCmdRunner.AddCmdResult(
			"lsblk --nodeps -nb -o SIZE /dev/vda",
			fakesys.FakeCmdResult{ExitStatus: 32, Error: errors.New("exit status 32")})

		_, err := sizer.GetDeviceSizeInBytes("/dev/vda")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Getting block device size of '/dev/vda'"))
	})

	It("returns an error when the output is not a number", func() {
		fakeCmdRunner.AddCmdResult(
			"lsblk --nodeps -nb -o SIZE /dev/vda",
			fakesys.FakeCmdResult{Stdout: "not-a-size\n"})

		_, err := sizer.GetDeviceSizeInBytes("/dev/vda")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Converting block device size of '/dev/vda'"))
	})
})
