package main

import (
	"os"

	"toolvision/internal/config"
	"toolvision/internal/logger"
	ui "toolvision/internal/ui"
	"toolvision/processing/capture"
	processing "toolvision/processing/detector"
)

func main() {
	cfg := config.LoadConfigFile(config.DefaultConfigPath)
	logger.SetLevel(os.Getenv("LOG_LEVEL"))

	det := processing.NewRemoteDetector(cfg.GetDetectorURL())
	proc := processing.NewProcessor(det, cfg.GetParams())

	logger.WithField("detector_url", det.BaseURL()).Info("Configuration loaded")

	// A path on the command line is preselected as if picked in the UI.
	if len(os.Args) > 1 {
		f, err := capture.LoadFile(os.Args[1])
		if err != nil {
			logger.WithError(err).Warn("Ignoring command line file")
		} else if _, err := proc.SelectFile(f); err != nil {
			logger.WithError(err).Warn("Ignoring command line file")
		}
	}

	app := ui.CreateApp(proc, det, cfg)

	app.Run()
}
