package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jdalgard/docxtree/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		WorkerCount:  2,
		MaxQueueSize: 10,
		JobTTL:       time.Hour,
		StatsWindow:  time.Hour,
	}
}

func newTestJob(filename string, data []byte) *Job {
	job := &Job{
		ID:        NewID(),
		Status:    StatusQueued,
		Phase:     "queued",
		Filename:  filename,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	job.SetFileData(data)
	return job
}

func TestWorker_ProcessMarkdown(t *testing.T) {
	input := "# Intro\n\n1. first\n2. second\n\nSome text.\n"
	job := newTestJob("doc.md", []byte(input))

	stats := NewConversionStats(time.Hour)
	w := NewWorker(slog.Default(), stats, "")
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s (errors: %v)", snap.Status, snap.Progress.Errors)
	}
	if snap.Progress.Sections != 1 {
		t.Errorf("expected 1 section, got %d", snap.Progress.Sections)
	}
	if snap.Progress.Items != 2 {
		t.Errorf("expected 2 items, got %d", snap.Progress.Items)
	}
	if snap.ContentHash == "" {
		t.Error("expected content hash to be recorded")
	}

	xmlOut, ok := job.Result(FormatXML)
	if !ok {
		t.Fatal("expected xml result")
	}
	if !strings.Contains(string(xmlOut), `<Header level="1">Intro`) {
		t.Errorf("unexpected xml output:\n%s", xmlOut)
	}
	if _, ok := job.Result(FormatMarkdown); !ok {
		t.Error("expected markdown result")
	}
	if _, ok := job.Result(FormatHTML); !ok {
		t.Error("expected html result")
	}

	s := stats.Snapshot()
	if s.Count != 1 || s.Succeeded != 1 {
		t.Errorf("expected one successful sample, got %+v", s)
	}
}

func TestWorker_ProcessUnsupportedFormat(t *testing.T) {
	job := newTestJob("image.png", []byte("not a document"))

	stats := NewConversionStats(time.Hour)
	w := NewWorker(slog.Default(), stats, "")
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("expected failed, got %s", snap.Status)
	}
	if len(snap.Progress.Errors) == 0 {
		t.Error("expected recorded error")
	}

	s := stats.Snapshot()
	if s.Failed != 1 {
		t.Errorf("expected one failed sample, got %+v", s)
	}
}

func TestWorker_ProcessCorruptDocx(t *testing.T) {
	job := newTestJob("broken.docx", []byte("this is not a zip archive"))

	w := NewWorker(slog.Default(), nil, "")
	w.Process(context.Background(), job)

	if job.Snapshot().Status != StatusFailed {
		t.Fatalf("expected failed, got %s", job.Snapshot().Status)
	}
}

func TestWorker_TitleOverride(t *testing.T) {
	job := newTestJob("doc.md", []byte("# Heading\n\ntext\n"))
	job.Title = "Custom Title"

	w := NewWorker(slog.Default(), nil, "")
	w.Process(context.Background(), job)

	if _, ok := job.Result(FormatMarkdown); !ok {
		t.Fatal("expected markdown result")
	}
	if job.Snapshot().Title != "Custom Title" {
		t.Errorf("expected title preserved, got %q", job.Snapshot().Title)
	}
}

func TestOrchestrator_SubmitAndProcess(t *testing.T) {
	cfg := testConfig()
	orch := NewOrchestrator(cfg, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	orch.Start(ctx)
	defer orch.Stop()

	job := newTestJob("doc.md", []byte("# Title\n\n- item\n"))
	if err := orch.Submit(job); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		snap := orch.GetJob(job.ID).Snapshot()
		if snap.Status == StatusCompleted || snap.Status == StatusFailed {
			if snap.Status != StatusCompleted {
				t.Fatalf("expected completed, got %s (errors: %v)", snap.Status, snap.Progress.Errors)
			}
			return
		}
		select {
		case <-deadline:
			t.Fatalf("job did not finish, status %s", snap.Status)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestOrchestrator_QueueFull(t *testing.T) {
	cfg := testConfig()
	cfg.MaxQueueSize = 1
	orch := NewOrchestrator(cfg, slog.Default())
	// Not started: jobs stay queued.

	if err := orch.Submit(newTestJob("a.md", []byte("x"))); err != nil {
		t.Fatalf("unexpected error on first submit: %v", err)
	}
	job := newTestJob("b.md", []byte("y"))
	if err := orch.Submit(job); err == nil {
		t.Fatal("expected queue full error")
	}
	if job.Snapshot().Status != StatusFailed {
		t.Errorf("expected rejected job marked failed, got %s", job.Snapshot().Status)
	}
}
