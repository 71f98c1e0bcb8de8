package manager

import (
	"snake-arcade/game/types"
)

// StateManager tracks score, speed and the in-process high score.
// Nothing is written to disk; a new process starts from zero.
type StateManager struct {
	cfg          types.Config
	score        int
	tickMs       int
	highScore    int
	scoreHistory []int
}

func NewStateManager(cfg types.Config) *StateManager {
	return &StateManager{
		cfg:          cfg,
		tickMs:       cfg.StartTickMs,
		scoreHistory: make([]int, 0),
	}
}

// Reset starts a session: score zero, interval back to the start value
func (sm *StateManager) Reset() {
	sm.score = 0
	sm.tickMs = sm.cfg.StartTickMs
}

// AddFood awards one food and speeds up if above the floor.
// It reports whether the interval changed.
func (sm *StateManager) AddFood() bool {
	sm.score += sm.cfg.FoodScore
	if sm.tickMs <= sm.cfg.MinTickMs {
		return false
	}
	sm.tickMs -= sm.cfg.TickStepMs
	if sm.tickMs < sm.cfg.MinTickMs {
		sm.tickMs = sm.cfg.MinTickMs
	}
	return true
}

// EndSession folds the current score into the high score and history
func (sm *StateManager) EndSession() {
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
	sm.scoreHistory = append(sm.scoreHistory, sm.score)
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetTickMs() int {
	return sm.tickMs
}

// GetScoreHistory returns finished session scores, oldest first
func (sm *StateManager) GetScoreHistory() []int {
	history := make([]int, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return history
}

// TicksPerSecond is the displayed speed for an interval
func TicksPerSecond(tickMs int) int {
	if tickMs < 1 {
		tickMs = 1
	}
	return 1000 / tickMs
}
