package daemon_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/clock"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/hot-resize/hot-resize/daemon"
	"github.com/hot-resize/hot-resize/platform/disk"
	fakedisk "github.com/hot-resize/hot-resize/platform/disk/fakes"
	"github.com/hot-resize/hot-resize/resizer"
	fakeresizer "github.com/hot-resize/hot-resize/resizer/fakes"
	"github.com/hot-resize/hot-resize/settings"
)

// fakeClock records sleeps and optionally cancels a context after a given
// number of them, letting Run be driven deterministically.
type fakeClock struct {
	clock.Clock

	Sleeps      []time.Duration
	cancel      context.CancelFunc
	cancelAfter int
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.Sleeps = append(c.Sleeps, d)
	if c.cancel != nil && len(c.Sleeps) >= c.cancelAfter {
		c.cancel()
	}
}

var _ = Describe("Scheduler", func() {
	var (
		fakeManager  *fakeresizer.FakeManager
		fakeAnalyzer *fakedisk.FakeDeviceAnalyzer
		fakeSizer    *fakedisk.FakeDeviceSizer
		timeService  *fakeClock
		specs        []settings.DeviceSpec
	)

	rootSpec := settings.DeviceSpec{
		DevicePath:     "/dev/vda1",
		FileSystemType: disk.FileSystemExt4,
		MountPoint:     "/",
	}

	BeforeEach(func() {
		fakeManager = fakeresizer.NewFakeManager()
		fakeAnalyzer = fakedisk.NewFakeDeviceAnalyzer()
		fakeSizer = fakedisk.NewFakeDeviceSizer()
		timeService = &fakeClock{}
		specs = []settings.DeviceSpec{rootSpec}

		fakeAnalyzer.AnalyzeDeviceDevices["/dev/vda1"] = disk.BlockDevice{
			RealDevicePath:  "/dev/vda1",
			ParentDiskName:  "vda",
			PartitionNumber: 1,
		}
		fakeSizer.GetDeviceSizeInBytesSizes["/dev/vda"] = 100
		fakeSizer.GetDeviceSizeInBytesSizes["/dev/vda1"] = 90
	})

	newScheduler := func() daemon.Scheduler {
		logger := boshlog.NewLogger(boshlog.LevelNone)
		return daemon.NewScheduler(
			logger, fakeManager, fakeAnalyzer, fakeSizer,
			specs, resizer.Options{SkipVerify: true},
			3*time.Second, timeService,
		)
	}

	Describe("Tick", func() {
		It("runs an initial resize for a device it has never seen", func() {
			state := daemon.NewState()

			newScheduler().Tick(state, true)

			Expect(fakeManager.ResizeDeviceCallCount).To(Equal(1))
			Expect(fakeManager.ResizeDeviceSpecs[0]).To(Equal(rootSpec))
			Expect(fakeManager.ResizeDeviceOpts[0]).To(Equal(resizer.Options{SkipVerify: true}))

			size, found := state.LastSize("/dev/vda1")
			Expect(found).To(BeTrue())
			Expect(size).To(Equal(uint64(90)))

			parentSize, found := state.LastSize(daemon.ParentKey("/dev/vda1"))
			Expect(found).To(BeTrue())
			Expect(parentSize).To(Equal(uint64(100)))
		})

		It("only rebaselines on the first tick when sizes differ from known state", func() {
			state := daemon.NewState()
			state.Record("/dev/vda1", 50)
			state.Record(daemon.ParentKey("/dev/vda1"), 60)

			newScheduler().Tick(state, true)

			Expect(fakeManager.ResizeDeviceCallCount).To(Equal(0))

			size, _ := state.LastSize("/dev/vda1")
			Expect(size).To(Equal(uint64(90)))
		})

		It("triggers a resize when a tracked size changes after the first tick", func() {
			state := daemon.NewState()
			state.Record("/dev/vda1", 50)
			state.Record(daemon.ParentKey("/dev/vda1"), 100)

			newScheduler().Tick(state, false)

			Expect(fakeManager.ResizeDeviceCallCount).To(Equal(1))
		})

		It("triggers a resize when only the parent disk grew", func() {
			state := daemon.NewState()
			state.Record("/dev/vda1", 90)
			state.Record(daemon.ParentKey("/dev/vda1"), 60)

			newScheduler().Tick(state, false)

			Expect(fakeManager.ResizeDeviceCallCount).To(Equal(1))
		})

		It("does not trigger when nothing changed", func() {
			state := daemon.NewState()
			state.Record("/dev/vda1", 90)
			state.Record(daemon.ParentKey("/dev/vda1"), 100)

			newScheduler().Tick(state, false)

			Expect(fakeManager.ResizeDeviceCallCount).To(Equal(0))
		})

		It("records the new size even when the resize fails", func() {
			fakeManager.ResizeDeviceErrs["/dev/vda1"] = errors.New("resize2fs exploded")

			state := daemon.NewState()
			state.Record("/dev/vda1", 50)
			state.Record(daemon.ParentKey("/dev/vda1"), 100)

			newScheduler().Tick(state, false)

			Expect(fakeManager.ResizeDeviceCallCount).To(Equal(1))
			size, _ := state.LastSize("/dev/vda1")
			Expect(size).To(Equal(uint64(90)))
		})

		It("tolerates already-at-maximum failures", func() {
			fakeManager.ResizeDeviceErrs["/dev/vda1"] = errors.New("NOCHANGE: partition 1 is size 188741599")

			state := daemon.NewState()
			newScheduler().Tick(state, true)

			Expect(fakeManager.ResizeDeviceCallCount).To(Equal(1))
		})

		It("skips devices the analyzer cannot resolve", func() {
			fakeAnalyzer.AnalyzeDeviceErrs["/dev/vda1"] = errors.New("device not found")

			state := daemon.NewState()
			newScheduler().Tick(state, true)

			Expect(fakeManager.ResizeDeviceCallCount).To(Equal(0))
			Expect(fakeSizer.GetDeviceSizeInBytesCallCount).To(Equal(0))
		})

		It("tracks only the device size for a whole disk", func() {
			fakeAnalyzer.AnalyzeDeviceDevices["/dev/vda1"] = disk.BlockDevice{
				RealDevicePath: "/dev/vda1",
				ParentDiskName: "vda1",
			}

			state := daemon.NewState()
			newScheduler().Tick(state, true)

			Expect(fakeSizer.GetDeviceSizeInBytesPaths).To(Equal([]string{"/dev/vda1"}))
			_, found := state.LastSize(daemon.ParentKey("/dev/vda1"))
			Expect(found).To(BeFalse())
		})
	})

	Describe("Run", func() {
		It("does not tick when the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			newScheduler().Run(ctx)

			Expect(fakeAnalyzer.AnalyzeDeviceCallCount).To(Equal(0))
			Expect(timeService.Sleeps).To(BeEmpty())
		})

		It("stops within one sleep increment of cancellation", func() {
			ctx, cancel := context.WithCancel(context.Background())
			timeService.cancel = cancel
			timeService.cancelAfter = 1

			newScheduler().Run(ctx)

			Expect(fakeAnalyzer.AnalyzeDeviceCallCount).To(Equal(1))
			Expect(fakeManager.ResizeDeviceCallCount).To(Equal(1))
			Expect(timeService.Sleeps).To(Equal([]time.Duration{time.Second}))
		})
	})
})
