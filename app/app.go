package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"code.cloudfoundry.org/clock"
	sigar "github.com/cloudfoundry/gosigar"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"github.com/hot-resize/hot-resize/daemon"
	"github.com/hot-resize/hot-resize/platform/disk"
	"github.com/hot-resize/hot-resize/resizer"
	"github.com/hot-resize/hot-resize/settings"
)

type App interface {
	Setup(args []string) error
	Run() error
}

type app struct {
	logger    boshlog.Logger
	fs        boshsys.FileSystem
	cmdRunner boshsys.CmdRunner
	logTag    string

	opts          Options
	specs         []settings.DeviceSpec
	resizeManager resizer.Manager
	scheduler     daemon.Scheduler
}

func New(logger boshlog.Logger, fs boshsys.FileSystem, cmdRunner boshsys.CmdRunner) App {
	return &app{
		logger:    logger,
		fs:        fs,
		cmdRunner: cmdRunner,
		logTag:    "App",
	}
}

func (app *app) Setup(args []string) error {
	opts, err := ParseOptions(args)
	if err != nil {
		return bosherr.WrapError(err, "Parsing options")
	}
	app.opts = opts

	if !opts.NoRootCheck && os.Geteuid() != 0 {
		return bosherr.Error("This program must be run as root. Use sudo or -no-root-check to skip this check (not recommended)")
	}

	app.logger.Debug(app.logTag, "Parsing device configuration")
	app.specs, err = settings.ParseDeviceSpecs(opts.DevicesJSON)
	if err != nil {
		return bosherr.WrapError(err, "Parsing device specs")
	}

	app.logger.Debug(app.logTag, "Checking for required tools")
	toolChecker := disk.NewToolChecker(app.cmdRunner)
	err = toolChecker.CheckTools(settings.FileSystemTypes(app.specs))
	if err != nil {
		if !opts.DryRun {
			return bosherr.WrapError(err, "Checking required tools")
		}
		app.logger.Warn(app.logTag, "Missing tools detected (will continue in dry run mode): %s", err.Error())
	}

	analyzer := disk.NewLsblkDeviceAnalyzer(app.logger, app.cmdRunner, app.fs)
	grower := disk.NewGrowpartPartitionGrower(app.logger, app.cmdRunner)
	luksManager := disk.NewCryptsetupLuksManager(app.logger, app.cmdRunner)
	detector := disk.NewChainedFsTypeDetector(app.logger, app.cmdRunner)
	fsResizer := disk.NewFileSystemResizer(app.logger, app.cmdRunner, detector)
	mountsSearcher := disk.NewProcMountsSearcher(app.fs)
	verifier := disk.NewStatfsResizeVerifier(app.logger, app.cmdRunner, &sigar.ConcreteSigar{}, mountsSearcher)

	app.resizeManager = resizer.NewManager(app.logger, analyzer, grower, luksManager, fsResizer, verifier)

	if opts.Auto {
		sizer := disk.NewLsblkDeviceSizer(app.cmdRunner)
		app.scheduler = daemon.NewScheduler(
			app.logger,
			app.resizeManager,
			analyzer,
			sizer,
			app.specs,
			resizer.Options{SkipVerify: opts.SkipVerify},
			opts.Interval,
			clock.NewClock(),
		)
	}

	return nil
}

func (app *app) Run() error {
	if len(app.specs) == 0 {
		app.logger.Warn(app.logTag, "No devices specified, nothing to do")
		return nil
	}

	if app.opts.Auto {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app.scheduler.Run(ctx)
		return nil
	}

	app.resizeManager.ResizeAll(app.specs, resizer.Options{
		DryRun:     app.opts.DryRun,
		SkipVerify: app.opts.SkipVerify,
	})

	return nil
}
