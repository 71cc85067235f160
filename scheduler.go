package airwar

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Scheduler manages the execution of loops.
// Stages run in order on the calling goroutine; within a stage, loops run
// in registration order.
type Scheduler struct {
	world *World

	// Loop management
	loops [stageCount][]*loopState
}

// loopState tracks the state of a single loop system.
type loopState struct {
	meta       *SystemMeta
	bundle     *Bundle
	system     Runnable
	conditions []Condition

	// interval is measured in simulated time during which the loop was
	// eligible to run, so time spent paused does not count.
	interval time.Duration
	pending  time.Duration
}

// eligible reports whether every run condition holds.
func (l *loopState) eligible(w *World) bool {
	for _, cond := range l.conditions {
		if !cond(w) {
			return false
		}
	}
	return true
}

// ShouldRun accumulates dt and checks if the loop is due.
func (l *loopState) ShouldRun(dt time.Duration) bool {
	if l.interval == 0 {
		return true
	}
	l.pending += dt
	return l.pending >= l.interval
}

// MarkRun consumes one interval.
func (l *loopState) MarkRun() {
	if l.interval == 0 {
		return
	}
	l.pending -= l.interval
	if l.pending >= l.interval {
		// Catch up if we're behind
		l.pending %= l.interval
	}
}

// newScheduler creates a new scheduler.
func newScheduler(w *World) *Scheduler {
	return &Scheduler{world: w}
}

// tick executes one scheduler tick.
func (s *Scheduler) tick(dt time.Duration) error {
	w := s.world
	w.time.Delta = dt
	w.time.Elapsed += dt
	w.time.Tick++

	for _, stage := range Stages() {
		if err := s.runStage(stage, dt); err != nil {
			return err
		}
	}
	return nil
}

// runStage runs the due loops of a stage, then applies deferred commands.
func (s *Scheduler) runStage(stage Stage, dt time.Duration) error {
	for _, loop := range s.loops[stage] {
		if !loop.eligible(s.world) || !loop.ShouldRun(dt) {
			continue
		}
		if err := s.executeLoop(loop); err != nil {
			return err
		}
		loop.MarkRun()
	}
	s.world.commands.flush()
	return nil
}

// executeLoop runs a loop system once, or once per matching entity.
func (s *Scheduler) executeLoop(loop *loopState) (err error) {
	w := s.world
	system := loop.system
	defer func() {
		if r := recover(); r != nil {
			err = s.handleSystemPanic("loop", loop.meta.Name, r)
		}
		zeroSystem(system, loop.meta)
	}()

	if !loop.meta.PerEntity {
		if injectSystem(system, nil, loop.meta, w) {
			system.Run()
		}
		return nil
	}

	// Entities spawned by the loop itself are not visited this run
	for _, e := range w.Query(loop.meta.RequireMask, loop.meta.ExcludeMask) {
		// An earlier iteration may have despawned or changed it
		if e.despawned || !e.canRun(loop.meta) {
			continue
		}

		// Inject dependencies
		if !injectSystem(system, e, loop.meta, w) {
			zeroSystem(system, loop.meta)
			continue
		}

		system.Run()
		zeroSystem(system, loop.meta)
	}
	return nil
}

// addLoop registers a loop with the scheduler.
func (s *Scheduler) addLoop(meta *SystemMeta, system Runnable, interval time.Duration, stage Stage, conditions []Condition) {
	state := &loopState{
		meta:       meta,
		bundle:     meta.Bundle,
		system:     system,
		conditions: conditions,
		interval:   interval,
	}

	for _, existing := range s.loops[stage] {
		if meta.Access.Conflicts(&existing.meta.Access) {
			s.world.log.Debug("airwar: loops share state, running in registration order",
				"stage", stage, "first", existing.meta.Name, "second", meta.Name)
		}
	}

	s.loops[stage] = append(s.loops[stage], state)
}

// runOnce runs a startup system immediately and applies its commands.
func (s *Scheduler) runOnce(meta *SystemMeta, system Runnable) error {
	if err := s.executeLoop(&loopState{meta: meta, bundle: meta.Bundle, system: system}); err != nil {
		return err
	}
	s.world.commands.flush()
	return nil
}

// LoopCount returns the number of loops registered for a stage.
func (s *Scheduler) LoopCount(stage Stage) int {
	if stage < 0 || stage >= stageCount {
		return 0
	}
	return len(s.loops[stage])
}

// Loops returns the names of the loops registered for a stage, in run order.
func (s *Scheduler) Loops(stage Stage) []string {
	if stage < 0 || stage >= stageCount {
		return nil
	}
	names := make([]string, 0, len(s.loops[stage]))
	for _, l := range s.loops[stage] {
		names = append(names, l.meta.Name)
	}
	return names
}

func (s *Scheduler) handleSystemPanic(kind, name string, recovered any) error {
	err := fmt.Errorf("airwar: panic in %s %s: %v\n%s", kind, name, recovered, debug.Stack())
	s.world.log.Error("airwar: system panicked", "kind", kind, "system", name, "panic", recovered)
	return err
}
