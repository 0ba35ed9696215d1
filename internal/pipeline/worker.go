package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/dgallion1/htmltex/internal/latex"
	"github.com/dgallion1/htmltex/internal/parser"
)

// Worker converts the documents of a single batch job.
type Worker struct {
	converter   *latex.Converter
	log         *slog.Logger
	pdfFallback bool
}

func NewWorker(converter *latex.Converter, log *slog.Logger, pdfFallback bool) *Worker {
	return &Worker{
		converter:   converter,
		log:         log,
		pdfFallback: pdfFallback,
	}
}

// Process converts every input of a job in order. A file that fails to parse
// or convert is recorded and skipped; the job ends partial or failed rather
// than aborting the batch.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID)

	inputs := job.Inputs()
	if len(inputs) == 0 {
		job.AddError("no input documents")
		job.SetStatus(StatusFailed, "converting")
		return
	}

	job.SetStatus(StatusConverting, "converting")
	failed := 0
	for _, in := range inputs {
		if ctx.Err() != nil {
			job.AddError("canceled: " + ctx.Err().Error())
			job.SetStatus(StatusFailed, "canceled")
			return
		}

		out, err := w.convertOne(in)
		if err != nil {
			log.Error("conversion failed", "filename", in.Filename, "error", err)
			job.AddError(fmt.Sprintf("%s: %s", in.Filename, err))
			job.AddResult(FileResult{Filename: in.Filename, Error: err.Error()})
			failed++
			continue
		}
		job.AddResult(FileResult{Filename: in.Filename, LaTeX: out})
	}

	switch {
	case failed == len(inputs):
		job.SetStatus(StatusFailed, "done")
	case failed > 0:
		job.SetStatus(StatusPartial, "done")
	default:
		job.SetStatus(StatusCompleted, "done")
	}
	log.Info("batch converted", "files", len(inputs), "failed", failed)
}

func (w *Worker) convertOne(in Input) (string, error) {
	p, err := parser.ForFile(in.Filename)
	if err != nil {
		return "", err
	}
	if pp, ok := p.(*parser.PDFParser); ok {
		pp.FallbackPdftotext = w.pdfFallback
	}

	doc, err := p.Parse(bytes.NewReader(in.Data), in.Filename)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}

	out, err := w.converter.Convert(doc)
	if err != nil {
		return "", fmt.Errorf("convert: %w", err)
	}
	return out, nil
}
