package ui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"toolvision/internal/config"
	"toolvision/internal/logger"
	"toolvision/internal/models"
	"toolvision/internal/ui/cwidget"
	"toolvision/processing/capture"
	processing "toolvision/processing/detector"
)

type DetectApp struct {
	fyneApp fyne.App
	mainWin fyne.Window

	config    *config.Config
	processor *processing.Processor
	detector  *processing.RemoteDetector

	ctx    context.Context
	cancel context.CancelFunc

	intake     *cwidget.FileIntake
	params     *cwidget.ParamPanel
	analyzeBtn *widget.Button
	progress   *widget.ProgressBarInfinite
	errorLabel *widget.Label
	results    *ResultsView
}

func CreateApp(p *processing.Processor, det *processing.RemoteDetector, cfg *config.Config) *DetectApp {
	a := app.New()
	w := a.NewWindow("Анализ комплектности инструментов")

	w.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	ctx, cancel := context.WithCancel(context.Background())

	return &DetectApp{
		fyneApp:   a,
		mainWin:   w,
		processor: p,
		detector:  det,
		config:    cfg,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (a *DetectApp) Run() {
	a.intake = cwidget.NewFileIntake(a.mainWin, a.loadFile)
	a.params = cwidget.NewParamPanel(a.processor.State().Params, a.changeParams)

	a.analyzeBtn = widget.NewButtonWithIcon("Анализировать", theme.SearchIcon(), a.analyze)
	a.analyzeBtn.Importance = widget.HighImportance

	a.progress = widget.NewProgressBarInfinite()
	a.progress.Hide()

	a.errorLabel = widget.NewLabel("")
	a.errorLabel.Importance = widget.DangerImportance
	a.errorLabel.Wrapping = fyne.TextWrapWord
	a.errorLabel.Hide()

	a.results = NewResultsView(a.ctx, a.detector, a.config.GetExpectedTools(), a.selectIndex)

	sidebar := container.NewVBox(
		a.intake,
		widget.NewSeparator(),
		a.params,
		widget.NewSeparator(),
		a.analyzeBtn,
		a.progress,
		a.errorLabel,
	)

	split := container.NewHSplit(
		container.NewPadded(container.NewVScroll(sidebar)),
		container.NewPadded(a.results.Container()),
	)
	split.SetOffset(0.3)

	a.mainWin.SetContent(split)

	a.mainWin.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if len(uris) > 0 {
			a.intake.Pick(uris[0])
		}
	})

	a.mainWin.SetCloseIntercept(func() {
		if err := a.config.SaveByDefault(); err != nil {
			logger.WithError(err).Warn("Failed to save config")
		}
		a.cancel()
		a.mainWin.Close()
	})

	a.render(a.processor.State())

	logger.WithField("detector_url", a.detector.BaseURL()).Info("Starting UI")

	a.mainWin.CenterOnScreen()
	a.mainWin.ShowAndRun()
}

func (a *DetectApp) loadFile(uri fyne.URI) {
	if a.processor.State().Loading {
		return
	}

	go func() {
		reader, err := storage.Reader(uri)
		if err != nil {
			a.showLoadError(uri, err)
			return
		}
		defer reader.Close()

		f, err := capture.FromReader(uri.Name(), reader)
		if err != nil {
			a.showLoadError(uri, err)
			return
		}
		f.Path = uri.Path()

		logger.WithFields(logrus.Fields{
			"file":      f.Name,
			"mime":      f.MIME,
			"size":      f.Size,
			"supported": f.Supported(),
		}).Info("File selected")

		fyne.Do(func() {
			state, err := a.processor.SelectFile(f)
			if errors.Is(err, processing.ErrBusy) {
				return
			}
			a.render(state)
		})
	}()
}

func (a *DetectApp) showLoadError(uri fyne.URI, err error) {
	logger.WithError(err).WithField("uri", uri.String()).Error("Failed to read selected file")
	fyne.Do(func() {
		dialog.ShowError(err, a.mainWin)
	})
}

func (a *DetectApp) changeParams(p models.Params) {
	a.processor.SetParams(p)
	a.config.SetParams(p)
}

func (a *DetectApp) selectIndex(i int) {
	a.render(a.processor.SelectIndex(i))
}

func (a *DetectApp) analyze() {
	state, err := a.processor.Begin()
	if errors.Is(err, processing.ErrBusy) {
		return
	}
	a.render(state)
	if err != nil {
		return
	}

	go func() {
		state, _ := a.processor.Run(context.Background())
		fyne.Do(func() {
			a.render(state)
		})
	}()
}

func (a *DetectApp) setBusy(busy bool) {
	a.intake.SetEnabled(!busy)
	a.params.SetEnabled(!busy)
	a.results.SetEnabled(!busy)
	if busy {
		a.analyzeBtn.Disable()
		a.progress.Show()
		a.progress.Start()
	} else {
		a.analyzeBtn.Enable()
		a.progress.Stop()
		a.progress.Hide()
	}
}

func (a *DetectApp) render(s processing.State) {
	a.setBusy(s.Loading)
	a.intake.SetFile(s.File)

	if s.Err != "" {
		a.errorLabel.SetText(s.Err)
		a.errorLabel.Show()
	} else {
		a.errorLabel.Hide()
	}

	a.results.Update(s)
}
