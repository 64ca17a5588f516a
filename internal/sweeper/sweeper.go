// Package sweeper runs the hourly pass that closes stale decisions.
package sweeper

import (
	"context"
	"log"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
)

const sweepInterval = 1 * time.Hour

type Sweeper struct {
	service  contract.DecisionService
	interval time.Duration
	stopChan chan struct{}
	running  bool
}

func New(service contract.DecisionService) *Sweeper {
	return &Sweeper{
		service:  service,
		interval: sweepInterval,
		stopChan: make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	if s.running {
		return
	}
	s.running = true
	log.Println("Sweeper starting...")
	go s.mainLoop()
}

func (s *Sweeper) Stop() {
	if !s.running {
		return
	}
	log.Println("Sweeper stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *Sweeper) mainLoop() {
	// One pass right away so a restart does not postpone overdue closures
	// by up to an hour.
	s.runOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce()
		case <-s.stopChan:
			return
		}
	}
}

func (s *Sweeper) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	closed, err := s.service.SweepStale(ctx)
	if err != nil {
		log.Printf("Sweep failed: %v", err)
		return
	}
	if closed > 0 {
		log.Printf("Sweep closed %d decision(s)", closed)
	}
}
