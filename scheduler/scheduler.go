// Package scheduler runs the periodic model retraining sweep.
package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the cron runner for the retrain job.
type Scheduler struct {
	cron *cron.Cron
	job  func()
}

// New builds a scheduler around the retrain job. Specs use six fields,
// seconds first.
func New(job func()) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		job:  job,
	}
}

// Register schedules the job on the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.job); err != nil {
		return fmt.Errorf("register retrain job: %w", err)
	}
	return nil
}

// Start begins cron dispatch in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("[scheduler] started")
}

// Stop halts dispatch.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] stopped")
}

// RunNow fires the retrain job immediately in the caller's goroutine.
func (s *Scheduler) RunNow() {
	s.job()
}
