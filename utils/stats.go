package utils

import (
	"fmt"
	"sync"
	"time"
)

// Stats tracks throughput and population over a run.
type Stats struct {
	mu sync.Mutex

	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     uint64
	StartTime            time.Time

	lastUpdate time.Time
}

func NewStats() *Stats {
	now := time.Now()
	return &Stats{StartTime: now, lastUpdate: now}
}

// Observe records a generation using the time elapsed since the previous call.
func (s *Stats) Observe(generation uint64, population int) {
	s.mu.Lock()
	now := time.Now()
	elapsed := now.Sub(s.lastUpdate)
	s.lastUpdate = now
	s.mu.Unlock()

	s.Update(generation, population, elapsed)
}

func (s *Stats) Update(generation uint64, population int, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary formats the final run statistics.
func (s *Stats) Summary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("%d generations in %.1fs | %.1f gen/sec | %.1f avg population",
		s.TotalGenerations, time.Since(s.StartTime).Seconds(),
		s.GenerationsPerSecond, s.AveragePopulation)
}
