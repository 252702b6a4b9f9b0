// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gardener/richcontent/pkg/jobs"
	"github.com/gardener/richcontent/pkg/metrics"
	"github.com/gardener/richcontent/pkg/osfakes/osshim"
	"github.com/gardener/richcontent/pkg/writers"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/klog/v2"
)

// batchTask is a file to rewrite
type batchTask struct {
	// Path of the source file
	Path string
	// Dir of the file relative to the source directory
	Dir string
	// Name of the file
	Name string
}

// batchWorker rewrites files and writes the results
type batchWorker struct {
	os            osshim.Os
	direction     string
	rewrite       rewriteFunc
	writer        writers.Writer
	maxInputBytes int64
}

func (w *batchWorker) Work(ctx context.Context, task *batchTask) *jobs.WorkerError {
	data, err := readInput(w.os, nil, task.Path, w.maxInputBytes)
	if err != nil {
		return jobs.NewWorkerError(err, 0)
	}
	out, err := w.rewrite(string(data))
	if err != nil {
		return jobs.NewWorkerError(fmt.Errorf("failed to rewrite %s: %w", task.Path, err), 0)
	}
	stats := []*writers.Stat{{
		Title:   w.direction,
		Figures: fmt.Sprintf("%d bytes in, %d bytes out", len(data), len(out)),
	}}
	if err = w.writer.Write(task.Name, task.Dir, []byte(out), stats); err != nil {
		return jobs.NewWorkerError(err, 0)
	}
	klog.V(6).Infof("%s %s", w.direction, task.Path)
	return nil
}

func collectTasks(sh osshim.Os, source string) ([]*batchTask, error) {
	isDir, err := sh.IsDir(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read source %s: %w", source, err)
	}
	if !isDir {
		return nil, fmt.Errorf("source %s is not a directory", source)
	}
	var tasks []*batchTask
	err = sh.WalkFiles(source, func(path string) error {
		rel, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}
		dir, name := filepath.Split(rel)
		tasks = append(tasks, &batchTask{
			Path: path,
			Dir:  filepath.Clean(dir),
			Name: name,
		})
		return nil
	})
	return tasks, err
}

func runBatch(ctx context.Context, o *batchOptions, sh osshim.Os, out io.Writer) error {
	if o.Source == "" {
		return fmt.Errorf("source is required")
	}
	if o.Destination == "" && !o.DryRun {
		return fmt.Errorf("destination is required")
	}
	rewrite, err := newRewriter(o.Direction, &o.options)
	if err != nil {
		return err
	}
	tasks, err := collectTasks(sh, o.Source)
	if err != nil {
		return err
	}

	var (
		writer writers.Writer
		dryRun writers.DryRunWriter
	)
	if o.DryRun {
		dryRun = writers.NewDryRunWritersFactory(out)
		writer = dryRun.GetWriter(o.Destination)
	} else {
		writer = &writers.FSWriter{Root: o.Destination}
	}

	registry := prometheus.NewRegistry()
	metrics.RegisterContentMetrics(registry)
	runID := uuid.New().String()
	klog.Infof("batch %s: %s %d files from %s", runID, o.Direction, len(tasks), o.Source)

	workers := o.Workers
	if workers < 1 {
		workers = 1
	}
	job := &jobs.Job[*batchTask]{
		MinWorkers: 1,
		MaxWorkers: workers,
		FailFast:   o.FailFast,
		Worker: &batchWorker{
			os:            sh,
			direction:     o.Direction,
			rewrite:       rewrite,
			writer:        writer,
			maxInputBytes: o.MaxInputBytes,
		},
	}
	if werr := job.Dispatch(ctx, tasks); werr != nil {
		return werr
	}
	if dryRun != nil {
		if err := dryRun.Flush(); err != nil {
			return err
		}
	}
	logSummary(runID, registry)
	return nil
}

// logSummary logs the counters gathered by g
func logSummary(runID string, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		klog.Warningf("batch %s: failed to gather metrics: %v", runID, err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			var labels []string
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			klog.Infof("batch %s: %s{%s} %v", runID, mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
		}
	}
}
