package game

import (
	"snake-arcade/game/clock"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// State is the interactive state of a session
type State int

const (
	Playing State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "playing"
	}
}

// Engine owns one window's game. It is not safe for concurrent use; every
// call must come from the thread running the event loop.
type Engine struct {
	cfg          types.Config
	clock        clock.Clock
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	logger       *log.Entry

	snake      *entity.Snake
	pendingDir types.Direction
	running    bool
	paused     bool
	gameOver   bool
	lastCause  manager.CollisionType
	sessionID  string
	onChange   func()
}

// Option customises an Engine
type Option func(*Engine)

// WithRand sets the random source used for food placement
func WithRand(rng manager.Intner) Option {
	return func(e *Engine) {
		e.foodMgr = manager.NewFoodManager(e.cfg.Grid, rng)
	}
}

// WithLogger sets the base log entry
func WithLogger(logger *log.Entry) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine builds an engine driven by clk. No session is running until
// StartNewGame is called.
func NewEngine(cfg types.Config, clk clock.Clock, opts ...Option) *Engine {
	e := &Engine{
		cfg:          cfg,
		clock:        clk,
		collisionMgr: manager.NewCollisionManager(cfg.Grid),
		stateMgr:     manager.NewStateManager(cfg),
		logger:       log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.foodMgr == nil {
		e.foodMgr = manager.NewFoodManager(cfg.Grid, nil)
	}
	return e
}

// OnChange registers the callback fired after every state mutation
func (e *Engine) OnChange(fn func()) {
	e.onChange = fn
}

// StartNewGame discards the current session and begins a fresh one.
// The high score survives.
func (e *Engine) StartNewGame() {
	e.stateMgr.Reset()
	e.paused = false
	e.gameOver = false
	e.lastCause = manager.NoCollision
	e.pendingDir = types.Right

	cx := e.cfg.Grid.Width/2 - 2
	cy := e.cfg.Grid.Height / 2
	e.snake = entity.NewSnake(types.Point{X: cx + 2, Y: cy}, types.Right, types.InitialSnakeLen)

	e.sessionID = uuid.New().String()
	if err := e.foodMgr.Respawn(e.snake); err != nil {
		// only possible on a grid too small for the starting snake
		e.log().WithError(err).Error("unable to place food")
		e.endSession(manager.NoCollision)
		return
	}
	e.running = true
	e.clock.Rearm(e.stateMgr.GetTickMs())

	e.log().WithField("high_score", e.stateMgr.GetHighScore()).Info("session started")
	e.notify()
}

// SetPendingDirection latches d for the next tick. Ignored unless playing.
func (e *Engine) SetPendingDirection(d types.Direction) {
	if !e.running || e.paused || e.gameOver {
		return
	}
	e.pendingDir = d
}

// TogglePause flips between playing and paused. Ignored after game over.
func (e *Engine) TogglePause() {
	if e.gameOver || !e.running {
		return
	}
	e.paused = !e.paused
	if e.paused {
		e.clock.Stop()
		e.log().Debug("paused")
	} else {
		e.clock.Rearm(e.stateMgr.GetTickMs())
		e.log().Debug("resumed")
	}
	e.notify()
}

// Tick advances the session by one step. It is a no-op unless playing.
func (e *Engine) Tick() {
	if !e.running || e.paused || e.gameOver {
		return
	}

	if !e.snake.Direction.Opposite(e.pendingDir) {
		e.snake.Direction = e.pendingDir
	}

	newHead := e.snake.GetHead().Add(e.snake.Direction.Delta())

	if collision := e.collisionMgr.CheckCollision(newHead, e.snake); collision != manager.NoCollision {
		e.endSession(collision)
		return
	}

	e.snake.Move(newHead)

	if e.collisionMgr.IsFoodCollision(newHead, e.foodMgr.GetFood()) {
		if e.stateMgr.AddFood() {
			e.clock.Rearm(e.stateMgr.GetTickMs())
			e.log().WithField("tick_ms", e.stateMgr.GetTickMs()).Debug("speed up")
		}
		if err := e.foodMgr.Respawn(e.snake); err != nil {
			e.log().WithError(err).Warn("board is full")
			e.endSession(manager.NoCollision)
			return
		}
	} else {
		e.snake.RemoveTail()
	}

	e.notify()
}

func (e *Engine) endSession(cause manager.CollisionType) {
	e.gameOver = true
	e.running = false
	e.lastCause = cause
	e.clock.Stop()
	e.stateMgr.EndSession()

	e.log().WithFields(log.Fields{
		"score":      e.stateMgr.GetScore(),
		"high_score": e.stateMgr.GetHighScore(),
		"length":     e.snake.Len(),
		"cause":      cause.String(),
	}).Info("game over")
	e.notify()
}

func (e *Engine) notify() {
	if e.onChange != nil {
		e.onChange()
	}
}

func (e *Engine) log() *log.Entry {
	return e.logger.WithField("session", e.sessionID)
}

// State reports the current interactive state
func (e *Engine) State() State {
	switch {
	case e.gameOver:
		return GameOver
	case e.paused:
		return Paused
	default:
		return Playing
	}
}

// LastCollision is the collision that ended the last session
func (e *Engine) LastCollision() manager.CollisionType {
	return e.lastCause
}

// GamesPlayed returns the scores of finished sessions in this process
func (e *Engine) GamesPlayed() []int {
	return e.stateMgr.GetScoreHistory()
}
