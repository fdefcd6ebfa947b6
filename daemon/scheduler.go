// Package daemon polls configured devices for capacity growth and
// re-triggers the resize pipeline when a device or its parent disk grew.
//
// Devices are processed strictly sequentially within a tick and external
// tools run synchronously with no timeout, so a hung tool stalls the loop;
// that is an accepted limitation of the design. Cancellation is observed
// between one-second sleep increments and at the top of each tick, never
// mid-tool-invocation.
package daemon

import (
	"context"
	"time"

	"code.cloudfoundry.org/clock"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/hot-resize/hot-resize/platform/disk"
	"github.com/hot-resize/hot-resize/resizer"
	"github.com/hot-resize/hot-resize/settings"
)

type Scheduler interface {
	// Run polls until the context is cancelled. Cancellation is honored
	// within roughly one second regardless of the configured interval.
	Run(ctx context.Context)

	// Tick performs one polling pass over all configured devices,
	// reading and updating the given state.
	Tick(state *State, firstTick bool)
}

type scheduler struct {
	logger        boshlog.Logger
	resizeManager resizer.Manager
	analyzer      disk.DeviceAnalyzer
	sizer         disk.DeviceSizer
	specs         []settings.DeviceSpec
	opts          resizer.Options
	interval      time.Duration
	timeService   clock.Clock
	logTag        string
}

func NewScheduler(
	logger boshlog.Logger,
	resizeManager resizer.Manager,
	analyzer disk.DeviceAnalyzer,
	sizer disk.DeviceSizer,
	specs []settings.DeviceSpec,
	opts resizer.Options,
	interval time.Duration,
	timeService clock.Clock,
) Scheduler {
	return scheduler{
		logger:        logger,
		resizeManager: resizeManager,
		analyzer:      analyzer,
		sizer:         sizer,
		specs:         specs,
		opts:          opts,
		interval:      interval,
		timeService:   timeService,
		logTag:        "DaemonScheduler",
	}
}

func (s scheduler) Run(ctx context.Context) {
	s.logger.Info(s.logTag, "Starting daemon mode with check interval of %s", s.interval)

	state := NewState()
	firstTick := true

	for ctx.Err() == nil {
		s.Tick(state, firstTick)
		firstTick = false

		if !s.sleepInterval(ctx) {
			break
		}
	}

	s.logger.Info(s.logTag, "Daemon mode stopped")
}

func (s scheduler) Tick(state *State, firstTick bool) {
	for _, spec := range s.specs {
		s.checkDevice(spec, state, firstTick)
	}
}

func (s scheduler) checkDevice(spec settings.DeviceSpec, state *State, firstTick bool) {
	firstSight := false
	sizeChanged := false

	blockDevice, err := s.analyzer.AnalyzeDevice(spec.DevicePath)
	if err != nil {
		s.logger.Debug(s.logTag, "Skipping %s: %s", spec.DevicePath, err.Error())
		return
	}

	if blockDevice.IsPartition() {
		parentSize, err := s.sizer.GetDeviceSizeInBytes(blockDevice.ParentDiskPath())
		if err == nil {
			parentKey := ParentKey(spec.DevicePath)
			if lastSize, found := state.LastSize(parentKey); found {
				if parentSize != lastSize {
					sizeChanged = true
					s.logger.Warn(s.logTag, "Parent disk size changed for %s: %d -> %d", spec.DevicePath, lastSize, parentSize)
				}
			} else {
				firstSight = true
			}
			state.Record(parentKey, parentSize)
		}
	}

	currentSize, err := s.sizer.GetDeviceSizeInBytes(spec.DevicePath)
	if err == nil {
		if lastSize, found := state.LastSize(spec.DevicePath); found {
			if currentSize != lastSize {
				sizeChanged = true
				s.logger.Warn(s.logTag, "Size changed for %s: %d -> %d", spec.DevicePath, lastSize, currentSize)
			}
		} else {
			firstSight = true
		}
		state.Record(spec.DevicePath, currentSize)
	}

	// The very first tick only establishes baselines: a size difference
	// against an empty state map must not trigger a resize burst at
	// startup. First-sight devices still get one initial run.
	if !firstSight && !(sizeChanged && !firstTick) {
		return
	}

	err = s.resizeManager.ResizeDevice(spec, s.opts)
	if err != nil {
		if disk.ContainsGrowMarker(err.Error()) {
			s.logger.Debug(s.logTag, "Device %s already at maximum size", spec.DevicePath)
			return
		}

		s.logger.Error(s.logTag, "Failed to process device %s: %s", spec.DevicePath, err.Error())
		return
	}

	if sizeChanged && !firstTick {
		s.logger.Warn(s.logTag, "Successfully resized %s after size change", spec.DevicePath)
	} else {
		s.logger.Debug(s.logTag, "Initial resize check completed for %s", spec.DevicePath)
	}
}

// sleepInterval sleeps for the configured interval in increments of at
// most one second, re-checking the context between increments. Returns
// false when the context was cancelled.
func (s scheduler) sleepInterval(ctx context.Context) bool {
	remaining := s.interval

	for remaining > 0 {
		if ctx.Err() != nil {
			return false
		}

		increment := time.Second
		if remaining < increment {
			increment = remaining
		}

		s.timeService.Sleep(increment)
		remaining -= increment
	}

	return ctx.Err() == nil
}
