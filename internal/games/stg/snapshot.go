package stg

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot contains the complete simulation state for replay checks and dumps.
// Uses plain fields only for stable serialization.
type Snapshot struct {
	Frame      int     `msgpack:"frame"`
	State      string  `msgpack:"state"`
	Score      int     `msgpack:"score"`
	PhaseTime  int     `msgpack:"phase_time"`
	SpawnTimer int     `msgpack:"spawn_timer"`
	DropRate   float64 `msgpack:"drop_rate"`
	Debug      bool    `msgpack:"debug"`

	Player        PlayerSnap   `msgpack:"player"`
	Enemies       []EnemySnap  `msgpack:"enemies"`
	PlayerBullets []BulletSnap `msgpack:"player_bullets"`
	EnemyBullets  []BulletSnap `msgpack:"enemy_bullets"`
	Bells         []BellSnap   `msgpack:"bells"`
	Boss          *BossSnap    `msgpack:"boss,omitempty"`
}

// PlayerSnap is the serialized player.
type PlayerSnap struct {
	X, Y            float64
	Lives           int
	Invuln          int
	InvincibleTimer int
	ShotCooldown    int
	Loadout         Loadout
}

// EnemySnap is the serialized enemy.
type EnemySnap struct {
	Kind      int
	X, Y      float64
	VX, VY    float64
	HP        int
	ShotTimer int
	Phase     float64
	Charged   bool
}

// BulletSnap is a serialized bullet of either side. Extra holds the
// bounce count for player bullets and the fuse for enemy bullets.
type BulletSnap struct {
	X, Y   float64
	VX, VY float64
	Extra  int
}

// BellSnap is the serialized bell.
type BellSnap struct {
	X, Y   float64
	Effect int
}

// BossSnap is the serialized boss.
type BossSnap struct {
	X, Y         float64
	HP           int
	Phase        int
	ShotTimer    int
	SpecialTimer int
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	p := s.player
	snap := Snapshot{
		Frame:      s.frame,
		State:      s.state.String(),
		Score:      s.score,
		PhaseTime:  s.phaseTime,
		SpawnTimer: s.spawnTimer,
		DropRate:   s.dropRate,
		Debug:      s.debug,
		Player: PlayerSnap{
			X:               p.X,
			Y:               p.Y,
			Lives:           p.Lives,
			Invuln:          p.Invuln,
			InvincibleTimer: p.InvincibleTimer,
			ShotCooldown:    p.ShotCooldown,
			Loadout:         p.Loadout,
		},
		Enemies:       make([]EnemySnap, 0, len(s.enemies)),
		PlayerBullets: make([]BulletSnap, 0, len(s.playerBullets)),
		EnemyBullets:  make([]BulletSnap, 0, len(s.enemyBullets)),
		Bells:         make([]BellSnap, 0, len(s.bells)),
	}

	for _, e := range s.enemies {
		snap.Enemies = append(snap.Enemies, EnemySnap{
			Kind: int(e.Kind), X: e.X, Y: e.Y, VX: e.VX, VY: e.VY,
			HP: e.HP, ShotTimer: e.ShotTimer, Phase: e.Phase, Charged: e.Charged,
		})
	}
	for _, b := range s.playerBullets {
		snap.PlayerBullets = append(snap.PlayerBullets, BulletSnap{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY, Extra: b.Bounces})
	}
	for _, b := range s.enemyBullets {
		snap.EnemyBullets = append(snap.EnemyBullets, BulletSnap{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY, Extra: b.Fuse})
	}
	for _, b := range s.bells {
		snap.Bells = append(snap.Bells, BellSnap{X: b.X, Y: b.Y, Effect: int(b.Effect)})
	}
	if s.boss != nil {
		snap.Boss = &BossSnap{
			X: s.boss.X, Y: s.boss.Y, HP: s.boss.HP, Phase: int(s.boss.Phase),
			ShotTimer: s.boss.ShotTimer, SpecialTimer: s.boss.SpecialTimer,
		}
	}
	return snap
}

// Encode serializes the snapshot with msgpack.
func (snap Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: decode: %w", err)
	}
	return snap, nil
}

// Digest returns a hash of the encoded snapshot for determinism checks.
func (snap Snapshot) Digest() (uint64, error) {
	data, err := snap.Encode()
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}
