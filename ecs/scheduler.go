package ecs

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	TotalErrors     int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	ErrorCount     int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	errorCount     int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler manages and executes systems in order.
type Scheduler struct {
	storage     *Storage
	schedule    *SequentialSchedule
	proxy       *Proxy
	systemStats []*systemStatsInternal
	logger      *zap.Logger
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage:  storage,
		schedule: NewSequentialSchedule(),
		proxy:    NewProxy(storage),
		logger:   storage.logger.Named("scheduler"),
	}
}

// Register appends a system to the schedule.
func (s *Scheduler) Register(system System) {
	s.schedule.Add(system)

	name := systemName(system)
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
	s.logger.Debug("system registered", zap.String("system", name), zap.Int("position", s.schedule.Len()-1))
}

// Schedule returns the schedule the scheduler walks.
func (s *Scheduler) Schedule() Schedule {
	return s.schedule
}

// Once executes all registered systems once with the given delta time, then flushes
// the commands they queued. A failing system does not stop the others; all errors
// are joined and returned.
func (s *Scheduler) Once(dt float64) error {
	ctx := NewContext(s.storage, dt)

	var errs []error
	i := 0
	s.schedule.ForEach(func(system System) bool {
		stats := s.systemStats[i]
		i++

		start := time.Now()
		err := system.Update(s.proxy, ctx)
		duration := time.Since(start)
		ctx.Release()

		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		if err != nil {
			stats.errorCount++
			s.logger.Warn("system failed", zap.String("system", stats.name), zap.Error(err))
			errs = append(errs, fmt.Errorf("system %s: %w", stats.name, err))
		}
		return true
	})

	if err := s.proxy.Flush(); err != nil {
		s.logger.Warn("flush failed", zap.Error(err))
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
// Errors from individual frames are logged and do not stop the loop.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := s.Once(dt); err != nil {
				s.logger.Debug("frame finished with errors", zap.Error(err))
			}
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: s.schedule.Len(),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs, totalErrors int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			ErrorCount:     internal.errorCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
		totalErrors += internal.errorCount
	}

	stats.TotalExecutions = totalExecs
	stats.TotalErrors = totalErrors
	return stats
}

func systemName(system System) string {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	if name := systemType.Name(); name != "" {
		return name
	}
	return systemType.String()
}
