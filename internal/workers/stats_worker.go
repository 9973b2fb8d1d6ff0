// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-face-keeper/internal/logger"
	"github.com/MKhiriev/go-face-keeper/internal/store"
	"github.com/go-co-op/gocron"
)

// StatsSink receives store sizes. metrics.Metrics implements it.
type StatsSink interface {
	SetStoreStats(enrolled, terminated int)
}

// StatsWorker periodically exports the number of enrolled faces and
// terminated accounts.
type StatsWorker struct {
	faces     store.FaceStore
	sink      StatsSink
	interval  time.Duration
	scheduler *gocron.Scheduler

	logger *logger.Logger
}

func NewStatsWorker(faces store.FaceStore, sink StatsSink, interval time.Duration, logger *logger.Logger) *StatsWorker {
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	return &StatsWorker{
		faces:     faces,
		sink:      sink,
		interval:  interval,
		scheduler: scheduler,
		logger:    logger,
	}
}

// Run schedules the refresh job and returns. The first refresh runs
// immediately.
func (w *StatsWorker) Run() {
	if w.interval <= 0 {
		w.logger.Warn().Msg("stats worker disabled: non-positive interval")
		return
	}

	if _, err := w.scheduler.Every(w.interval).Do(w.refresh); err != nil {
		w.logger.Err(err).Msg("stats job was not scheduled")
		return
	}

	w.scheduler.StartAsync()
	w.logger.Info().Dur("interval", w.interval).Msg("stats worker started")
}

func (w *StatsWorker) Stop() {
	if w.scheduler.IsRunning() {
		w.scheduler.Stop()
		w.logger.Info().Msg("stats worker stopped")
	}
}

func (w *StatsWorker) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), w.interval)
	defer cancel()

	enrolled, err := w.faces.CountFaceRecords(ctx)
	if err != nil {
		w.logger.Err(err).Msg("counting face records failed")
		return
	}

	terminated, err := w.faces.CountTerminations(ctx)
	if err != nil {
		w.logger.Err(err).Msg("counting terminations failed")
		return
	}

	w.sink.SetStoreStats(enrolled, terminated)
	w.logger.Debug().Int("enrolled", enrolled).Int("terminated", terminated).Msg("store stats refreshed")
}
