package processing

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	apperrors "toolvision/internal/errors"
	"toolvision/internal/logger"
	"toolvision/internal/models"
	"toolvision/internal/view"
	"toolvision/processing/capture"
)

const MsgNoFile = "Пожалуйста, выберите файл"

var (
	ErrBusy       = errors.New("analysis already in progress")
	ErrNotStarted = errors.New("analysis not started")
)

type Analyzer interface {
	AnalyzeOne(ctx context.Context, file *capture.File, p models.Params) (*models.AnalysisResult, error)
	AnalyzeBatch(ctx context.Context, file *capture.File, p models.Params) (*models.BatchResult, error)
}

// State is a snapshot of the session as the UI renders it.
type State struct {
	File      *capture.File
	Params    models.Params
	Loading   bool
	Outcome   view.Outcome
	Index     int
	Count     int
	BatchMode bool
	Err       string
}

func (s State) Current() *models.AnalysisResult {
	return s.Outcome.Current(s.Index)
}

func (s State) CanPrev() bool { return view.NewNavigator(s.Count, s.Index).CanPrev() }
func (s State) CanNext() bool { return view.NewNavigator(s.Count, s.Index).CanNext() }

// Processor owns the session state and sequences analyze calls. Loading,
// a stored outcome and an error message are mutually exclusive.
type Processor struct {
	det Analyzer

	file    *capture.File
	params  models.Params
	outcome view.Outcome
	nav     view.Navigator
	errMsg  string

	IsActive bool

	mu sync.RWMutex
}

func NewProcessor(det Analyzer, params models.Params) *Processor {
	return &Processor{det: det, params: params}
}

func (p *Processor) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.stateLocked()
}

func (p *Processor) stateLocked() State {
	s := State{
		File:    p.file,
		Params:  p.params,
		Loading: p.IsActive,
		Outcome: p.outcome,
		Index:   p.nav.Index(),
		Count:   p.nav.Count(),
		Err:     p.errMsg,
	}
	if p.file != nil && !p.outcome.Empty() {
		s.BatchMode = view.IsBatchMode(p.file.MIME, len(p.outcome.Results())) || p.outcome.Batch != nil
	}
	return s
}

// SelectFile replaces the selection and resets result, error and index.
func (p *Processor) SelectFile(f *capture.File) (State, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.IsActive {
		return p.stateLocked(), ErrBusy
	}
	p.file = f
	p.resetLocked()
	return p.stateLocked(), nil
}

func (p *Processor) SetParams(params models.Params) State {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.params = params
	return p.stateLocked()
}

func (p *Processor) SelectIndex(i int) State {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.IsActive {
		p.nav = p.nav.Jump(i)
	}
	return p.stateLocked()
}

func (p *Processor) Prev() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.IsActive {
		p.nav = p.nav.Prev()
	}
	return p.stateLocked()
}

func (p *Processor) Next() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.IsActive {
		p.nav = p.nav.Next()
	}
	return p.stateLocked()
}

func (p *Processor) resetLocked() {
	p.outcome = view.Outcome{}
	p.nav = view.Navigator{}
	p.errMsg = ""
}

// Begin moves the session into loading: the previous result and error
// are cleared and the returned State is what the UI shows until Run
// returns. With no file selected the session stays idle and carries
// MsgNoFile.
func (p *Processor) Begin() (State, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.IsActive {
		return p.stateLocked(), ErrBusy
	}
	p.resetLocked()
	if p.file == nil {
		p.errMsg = MsgNoFile
		return p.stateLocked(), apperrors.NewValidationError(MsgNoFile)
	}
	p.IsActive = true
	return p.stateLocked(), nil
}

// Run performs the call started by Begin. ZIP uploads go to the batch
// endpoint. The returned error is also stored as the session's error
// message.
func (p *Processor) Run(ctx context.Context) (State, error) {
	p.mu.RLock()
	if !p.IsActive {
		s := p.stateLocked()
		p.mu.RUnlock()
		return s, ErrNotStarted
	}
	file, params := p.file, p.params
	p.mu.RUnlock()

	log := logger.WithFields(logrus.Fields{
		"file":  file.Name,
		"mime":  file.MIME,
		"batch": file.IsArchive(),
	})

	var (
		outcome view.Outcome
		err     error
	)
	if file.IsArchive() {
		outcome.Batch, err = p.det.AnalyzeBatch(ctx, file, params)
	} else {
		outcome.Single, err = p.det.AnalyzeOne(ctx, file, params)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.IsActive = false
	if err != nil {
		p.errMsg = apperrors.UserMessage(err)
		log.WithError(err).Warn("Analysis failed")
		return p.stateLocked(), err
	}

	p.outcome = outcome
	p.nav = view.NewNavigator(len(outcome.Results()), 0)
	log.WithField("results", p.nav.Count()).Info("Analysis stored")
	return p.stateLocked(), nil
}

// Analyze is Begin followed by Run.
func (p *Processor) Analyze(ctx context.Context) (State, error) {
	if s, err := p.Begin(); err != nil {
		return s, err
	}
	return p.Run(ctx)
}
