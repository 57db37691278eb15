package index

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/bookindex/internal/logfields"
	"git.home.luguber.info/inful/bookindex/internal/metrics"
	"git.home.luguber.info/inful/bookindex/internal/util/sets"
)

// StageName identifies a step of the index pipeline.
type StageName string

const (
	StageDiscover  StageName = "discover"
	StageFilter    StageName = "filter"
	StageOrder     StageName = "order"
	StageTransform StageName = "transform"
	StageAssemble  StageName = "assemble"
	StagePublish   StageName = "publish"
)

// Stage is a discrete step operating on the shared run state.
type Stage func(ctx context.Context, rs *runState) error

type stageDef struct {
	name StageName
	fn   Stage
}

// Document is one transformed chapter.
type Document struct {
	Name    string
	Path    string
	Content string
}

// runState carries values between stages of a single run.
type runState struct {
	opts     Options
	logger   *slog.Logger
	orderer  *Orderer
	excluded sets.Set[string]
	// indexAbs is the absolute index path; it is never read even when it
	// lives inside the docs directory.
	indexAbs string

	names  []string
	docs   []Document
	output string

	timings map[StageName]time.Duration
}

func pipeline() []stageDef {
	return []stageDef{
		{StageDiscover, stageDiscover},
		{StageFilter, stageFilter},
		{StageOrder, stageOrder},
		{StageTransform, stageTransform},
		{StageAssemble, stageAssemble},
		{StagePublish, stagePublish},
	}
}

// runStages executes stages in order, recording timings and stopping on the first error.
func runStages(ctx context.Context, rs *runState, rec metrics.Recorder, stages []stageDef) error {
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			rec.IncStageResult(string(st.name), metrics.ResultCanceled)
			return err
		}
		t0 := time.Now()
		err := st.fn(ctx, rs)
		dur := time.Since(t0)
		rs.timings[st.name] = dur
		rec.ObserveStageDuration(string(st.name), dur)
		if err != nil {
			result := metrics.ResultFailed
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				result = metrics.ResultCanceled
			}
			rec.IncStageResult(string(st.name), result)
			return err
		}
		rec.IncStageResult(string(st.name), metrics.ResultSuccess)
		rs.logger.Debug("Stage complete",
			logfields.Stage(string(st.name)),
			logfields.DurationMS(float64(dur.Microseconds())/1000))
	}
	return nil
}

func stageDiscover(_ context.Context, rs *runState) error {
	entries, err := os.ReadDir(rs.opts.DocsDir)
	if err != nil {
		return filesystemError(OpListDir, rs.opts.DocsDir, err)
	}
	rs.names = make([]string, 0, len(entries))
	for _, e := range entries {
		rs.names = append(rs.names, e.Name())
	}
	rs.logger.Debug("Listed docs directory", logfields.Path(rs.opts.DocsDir), logfields.Count(len(rs.names)))
	return nil
}

func stageFilter(_ context.Context, rs *runState) error {
	kept := rs.names[:0]
	for _, name := range rs.names {
		if !eligible(name, rs.excluded) {
			continue
		}
		if rs.isIndex(name) {
			rs.logger.Debug("Skipping previous index output", logfields.File(name))
			continue
		}
		kept = append(kept, name)
	}
	rs.names = kept
	return nil
}

// eligible reports whether name is a markdown file outside the exclusion set.
func eligible(name string, excluded sets.Set[string]) bool {
	return strings.HasSuffix(name, ".md") && !excluded.Has(name)
}

func (rs *runState) isIndex(name string) bool {
	if rs.indexAbs == "" {
		return false
	}
	abs, err := filepath.Abs(filepath.Join(rs.opts.DocsDir, name))
	return err == nil && abs == rs.indexAbs
}

func stageOrder(_ context.Context, rs *runState) error {
	if !rs.orderer.Sort(rs.names) {
		rs.logger.Warn("Filename ordering is not transitive for this set, using chapter/appendix/other grouping",
			logfields.Count(len(rs.names)))
	}
	return nil
}

func stageTransform(ctx context.Context, rs *runState) error {
	results := runOrdered(ctx, rs.names, rs.opts.concurrency(), func(_ context.Context, name string) (Document, error) {
		path := filepath.Join(rs.opts.DocsDir, name)
		content, err := readText(path)
		if err != nil {
			return Document{}, filesystemError(OpReadFile, path, err)
		}
		return Document{Name: name, Path: path, Content: Transform(content)}, nil
	})
	if err := firstError(results); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	rs.docs = make([]Document, len(results))
	for i, r := range results {
		rs.docs[i] = r.Value
	}
	return nil
}

func stageAssemble(_ context.Context, rs *runState) error {
	readme, err := readText(rs.opts.ReadmePath)
	if err != nil {
		return filesystemError(OpReadReadme, rs.opts.ReadmePath, err)
	}
	rs.output = Assemble(readme, rs.docs)
	return nil
}

// Assemble joins the README and the transformed documents: the README, one
// newline, then the documents separated by newlines.
func Assemble(readme string, docs []Document) string {
	blocks := make([]string, len(docs))
	for i, d := range docs {
		blocks[i] = d.Content
	}
	return readme + "\n" + strings.Join(blocks, "\n")
}

func stagePublish(_ context.Context, rs *runState) error {
	if err := os.WriteFile(rs.opts.IndexPath, []byte(rs.output), 0o644); err != nil {
		return filesystemError(OpWriteIndex, rs.opts.IndexPath, err)
	}
	return nil
}

// readText reads a file as UTF-8; invalid sequences become U+FFFD.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}
