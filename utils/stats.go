package utils

import "time"

// Stats tracks per-run population and performance figures
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
	AverageAge           float64
	MaxAge               int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation's figures
func (s *Stats) Update(generation, population int, averageAge float64, maxAge int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	s.AverageAge = averageAge
	s.MaxAge = maxAge
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

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
