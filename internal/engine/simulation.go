package engine

import (
	"context"
	"time"

	behaviour "GopherRunner/internal/behaviour"
	"GopherRunner/internal/logger"

	"go.uber.org/zap"
)

// fixedUpdateEvery is the number of frames between fixed updates
const fixedUpdateEvery = 2

// Simulation is the headless game loop. Each Step runs the frame update,
// a fixed update every second frame and trigger dispatch, in that order.
type Simulation struct {
	Manager *behaviour.ComponentManager

	// Realtime paces Run to the frame delta instead of running flat out.
	Realtime bool

	frameTrackId int
	fixedAccum   float32
	frames       int
	runTime      float32
	runs         int
}

func NewSimulation(cm *behaviour.ComponentManager) *Simulation {
	if cm == nil {
		cm = behaviour.NewComponentManager()
	}
	logger.Log.Info("Simulation initializing...")
	return &Simulation{Manager: cm}
}

// Step advances the simulation by one frame
func (s *Simulation) Step(deltaTime float32) {
	if s.frameTrackId >= fixedUpdateEvery {
		s.Manager.FixedUpdateAll(s.fixedAccum)
		s.fixedAccum = 0
		s.frameTrackId = 0
	}
	s.fixedAccum += deltaTime
	s.Manager.UpdateAll(deltaTime)
	s.Manager.DispatchTriggers()

	s.frameTrackId++
	s.frames++
	s.runTime += deltaTime
}

// Run steps the simulation until done returns true, maxFrames frames have
// run (when positive) or ctx is cancelled. It returns the frames stepped.
func (s *Simulation) Run(ctx context.Context, deltaTime float32, maxFrames int, done func() bool) (int, error) {
	var tick <-chan time.Time
	if s.Realtime {
		ticker := time.NewTicker(time.Duration(float64(deltaTime) * float64(time.Second)))
		defer ticker.Stop()
		tick = ticker.C
	}

	stepped := 0
	for maxFrames <= 0 || stepped < maxFrames {
		select {
		case <-ctx.Done():
			return stepped, ctx.Err()
		default:
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return stepped, ctx.Err()
			case <-tick:
			}
		}

		s.Step(deltaTime)
		stepped++
		if done != nil && done() {
			break
		}
	}
	return stepped, nil
}

// RestartRun resets every spawnable for a fresh run
func (s *Simulation) RestartRun() {
	resets := s.Manager.ResetSpawnables()
	logger.Log.Info("Run restarted",
		zap.Int("run", s.runs+1),
		zap.Float32("previousRunTime", s.runTime),
		zap.Int("spawnables", resets))
	s.runs++
	s.runTime = 0
	s.frameTrackId = 0
	s.fixedAccum = 0
}

// Frames is the total number of frames stepped
func (s *Simulation) Frames() int {
	return s.frames
}

// RunTime is the simulated time since the current run started
func (s *Simulation) RunTime() float32 {
	return s.runTime
}

// Runs counts restarts since the simulation was created
func (s *Simulation) Runs() int {
	return s.runs
}
