package main

import (
	"os"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"github.com/hot-resize/hot-resize/app"
)

const mainLogTag = "main"

func main() {
	// Daemon mode stays quiet at steady state; one-shot runs report
	// progress at info level.
	level := boshlog.LevelInfo
	for _, arg := range os.Args[1:] {
		if arg == "-auto" || arg == "--auto" {
			level = boshlog.LevelWarn
		}
	}

	logger := boshlog.NewLogger(level)
	defer logger.HandlePanic("Main")

	logger.Debug(mainLogTag, "Starting hot-resize")

	fs := boshsys.NewOsFileSystem(logger)
	cmdRunner := boshsys.NewExecCmdRunner(logger)

	resizeApp := app.New(logger, fs, cmdRunner)

	err := resizeApp.Setup(os.Args)
	if err != nil {
		logger.Error(mainLogTag, "App setup %s", err.Error())
		os.Exit(1)
	}

	err = resizeApp.Run()
	if err != nil {
		logger.Error(mainLogTag, "App run %s", err.Error())
		os.Exit(1)
	}
}
