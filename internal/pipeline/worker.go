package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jdalgard/docxtree/internal/docmodel"
	"github.com/jdalgard/docxtree/internal/parser"
	"github.com/jdalgard/docxtree/internal/render"
)

// Worker processes a single conversion job: parse, assemble, render.
type Worker struct {
	log       *slog.Logger
	stats     *ConversionStats
	xmlIndent string
}

func NewWorker(log *slog.Logger, stats *ConversionStats, xmlIndent string) *Worker {
	if xmlIndent == "" {
		xmlIndent = render.DefaultIndent
	}
	return &Worker{
		log:       log,
		stats:     stats,
		xmlIndent: xmlIndent,
	}
}

// Process runs the full conversion pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)
	start := time.Now()

	fail := func(phase string, err error) {
		log.Error("conversion failed", "phase", phase, "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, phase)
		w.record(start, false)
	}

	if err := ctx.Err(); err != nil {
		fail("queued", err)
		return
	}

	// Phase 1: Parse and reconstruct the document tree.
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename, log)
	if err != nil {
		fail("parsing", err)
		return
	}

	data := job.FileData()
	job.SetContentHash(ContentHashHex(data))

	tree, err := p.Parse(bytes.NewReader(data), job.Filename)
	if err != nil {
		fail("parsing", fmt.Errorf("parse: %w", err))
		return
	}
	if job.Title != "" {
		tree.Title = job.Title
	}

	// Phase 2: Record reconstruction counts.
	job.SetStatus(StatusAssembling, "assembling")
	paragraphs := 0
	for _, sec := range tree.Sections {
		paragraphs += len(sec.Paragraphs)
	}
	job.SetCounts(len(tree.Sections), tree.ItemCount(), paragraphs, len(tree.Tables))
	log.Info("reconstructed document",
		"sections", len(tree.Sections),
		"items", tree.ItemCount(),
		"tables", len(tree.Tables),
	)

	// Phase 3: Render all output formats.
	job.SetStatus(StatusRendering, "rendering")
	if err := w.renderAll(job, tree); err != nil {
		fail("rendering", err)
		return
	}

	job.SetStatus(StatusCompleted, "done")
	w.record(start, true)
	log.Info("conversion complete", "duration_ms", time.Since(start).Milliseconds())
}

// renderAll produces every output format. XML is the authoritative output
// and its failure fails the job; the preview formats degrade with a warning.
func (w *Worker) renderAll(job *Job, tree *docmodel.DocumentTree) error {
	xmlOut, err := render.XML(tree, w.xmlIndent)
	if err != nil {
		return fmt.Errorf("render xml: %w", err)
	}
	job.SetResult(FormatXML, xmlOut)

	job.SetResult(FormatMarkdown, render.Markdown(tree))

	htmlOut, err := render.HTML(tree)
	if err != nil {
		w.log.Warn("html rendering failed", "job_id", job.ID, "error", err)
		job.AddError(fmt.Sprintf("render html: %s", err))
	} else {
		job.SetResult(FormatHTML, htmlOut)
	}
	return nil
}

func (w *Worker) record(start time.Time, ok bool) {
	if w.stats != nil {
		w.stats.Record(time.Since(start).Milliseconds(), ok)
	}
}
