package stg

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stg/internal/core"
)

// State is the session phase.
type State int

const (
	StatePlaying State = iota
	StateBoss
	StateGameOver
	StateClear
)

// String returns the state name used in logs and snapshots.
func (st State) String() string {
	switch st {
	case StatePlaying:
		return "PLAYING"
	case StateBoss:
		return "BOSS"
	case StateGameOver:
		return "GAMEOVER"
	case StateClear:
		return "CLEAR"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the run is over.
func (st State) Terminal() bool {
	return st == StateGameOver || st == StateClear
}

// Options are the tunable session knobs. Entity stats are not configurable.
type Options struct {
	Lives           int     // starting lives
	DropRate        float64 // initial bell drop probability
	DropStep        float64 // drop rate change per adjust request
	BossAfterFrames int     // PLAYING frames before the boss arrives
}

// DefaultOptions returns the stock session settings.
func DefaultOptions() Options {
	return Options{
		Lives:           PlayerStartLives,
		DropRate:        0.5,
		DropStep:        0.05,
		BossAfterFrames: FPS * 60,
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.Lives < 1 {
		o.Lives = d.Lives
	}
	o.DropRate = core.ClampF(o.DropRate, 0, 1)
	if o.DropStep <= 0 {
		o.DropStep = d.DropStep
	}
	if o.BossAfterFrames < 1 {
		o.BossAfterFrames = d.BossAfterFrames
	}
	return o
}

// Session owns one run of the game: every entity collection, the score,
// the phase director state and the random source.
type Session struct {
	opts   Options
	rng    Rand
	logger *log.Logger

	player        *Player
	playerBullets []*PlayerBullet
	enemyBullets  []*EnemyBullet
	enemies       []*Enemy
	bells         []*Bell
	boss          *Boss

	state      State
	score      int
	phaseTime  int
	spawnTimer int
	dropRate   float64
	debug      bool

	// frame counts every Step call for the lifetime of the session;
	// Reset does not rewind it.
	frame int
}

// NewSession creates a session ready to play. A nil logger discards output.
func NewSession(opts Options, rng Rand, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		opts:   opts.normalized(),
		rng:    rng,
		logger: logger,
	}
	s.Reset()
	return s
}

// Reset reinitializes the run and returns to PLAYING.
func (s *Session) Reset() {
	s.state = StatePlaying
	s.player = NewPlayer(ArenaW/2, ArenaH-40, s.opts.Lives)
	s.playerBullets = nil
	s.enemyBullets = nil
	s.enemies = nil
	s.bells = nil
	s.boss = nil
	s.score = 0
	s.spawnTimer = 0
	s.phaseTime = 0
	s.debug = false
	s.dropRate = s.opts.DropRate
	s.logger.Debug("run started", "lives", s.opts.Lives, "drop_rate", s.dropRate)
}

// Step advances the session by one frame and reports whether the run
// ended during it. In a terminal state only a restart request is honored.
func (s *Session) Step(in core.InputFrame) bool {
	s.frame++

	if s.state.Terminal() {
		if in.Has(core.ActionRestart) {
			s.logger.Info("retry", "previous_score", s.score, "outcome", s.state)
			s.Reset()
		}
		return false
	}

	s.applyControls(in)
	before := s.settle()

	s.player.input = in
	s.player.advance(s)

	s.direct()

	if s.state == StateBoss && s.boss != nil {
		s.boss.advance(s)
	}

	advanceAll(s, &s.enemies)
	advanceAll(s, &s.playerBullets)
	advanceAll(s, &s.enemyBullets)
	advanceAll(s, &s.bells)

	s.resolveSettled(before)
	s.prune()

	return s.state.Terminal()
}

// advanceAll advances every entity in the collection, including those
// appended while the pass is running.
func advanceAll[T entity](s *Session, items *[]T) {
	for i := 0; i < len(*items); i++ {
		(*items)[i].advance(s)
	}
}

func (s *Session) prune() {
	s.enemies = prune(s.enemies)
	s.playerBullets = prune(s.playerBullets)
	s.enemyBullets = prune(s.enemyBullets)
	s.bells = prune(s.bells)
	if s.boss != nil && !s.boss.Alive {
		s.boss = nil
	}
}

// applyControls handles the one-shot control requests of a frame.
func (s *Session) applyControls(in core.InputFrame) {
	if in.Has(core.ActionToggleDebug) {
		s.debug = !s.debug
	}
	if in.Has(core.ActionDropRateDown) {
		s.AdjustDropRate(-s.opts.DropStep)
	}
	if in.Has(core.ActionDropRateUp) {
		s.AdjustDropRate(s.opts.DropStep)
	}
	if in.Has(core.ActionForceBoss) {
		s.StartBoss()
	}
	if in.Has(core.ActionUseInvincible) {
		if s.player.ActivateInvincibility() {
			s.logger.Debug("invincibility on", "charges_left", s.player.Loadout.Charges)
		}
	}
}

// AdjustDropRate changes the bell drop probability, clamped to [0, 1].
func (s *Session) AdjustDropRate(delta float64) {
	s.dropRate = core.ClampF(s.dropRate+delta, 0, 1)
}

// AddScore awards base points scaled by the player's multiplier.
func (s *Session) AddScore(base int) {
	s.score += base * s.player.Loadout.ScoreMult
}

// StartBoss switches to the boss encounter. Allowed from PLAYING or BOSS;
// from BOSS it restarts the encounter with a fresh boss.
func (s *Session) StartBoss() {
	if s.state != StatePlaying && s.state != StateBoss {
		return
	}
	s.state = StateBoss
	s.enemies = nil
	s.enemyBullets = nil
	s.spawnTimer = 0
	s.boss = NewBoss()
	s.logger.Info("boss incoming", "score", s.score, "frame", s.frame)
}

// gameOver ends the run. A boss still on the field leaves with it.
func (s *Session) gameOver() {
	s.state = StateGameOver
	s.boss = nil
	s.logger.Info("game over", "score", s.score)
}

func (s *Session) clear() {
	s.state = StateClear
	s.logger.Info("stage clear", "score", s.score)
}

// elapsedMs is the session clock used by time-driven motion.
func (s *Session) elapsedMs() float64 {
	return float64(s.frame) * msPerFrame
}

// State returns the current session state.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Player returns the player ship.
func (s *Session) Player() *Player { return s.player }

// Boss returns the boss, or nil when none is present.
func (s *Session) Boss() *Boss { return s.boss }

// Enemies returns the live enemies.
func (s *Session) Enemies() []*Enemy { return s.enemies }

// PlayerBullets returns the player's bullets in flight.
func (s *Session) PlayerBullets() []*PlayerBullet { return s.playerBullets }

// EnemyBullets returns the hostile bullets in flight.
func (s *Session) EnemyBullets() []*EnemyBullet { return s.enemyBullets }

// Bells returns the falling bells.
func (s *Session) Bells() []*Bell { return s.bells }

// DropRate returns the current bell drop probability.
func (s *Session) DropRate() float64 { return s.dropRate }

// Debug reports whether the collision overlay is on.
func (s *Session) Debug() bool { return s.debug }

// Frame returns the number of frames stepped so far.
func (s *Session) Frame() int { return s.frame }

