package system

import (
	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/parameter"
	"github.com/lixenwraith/stellar-assault/vmath"
)

// MotionSystem integrates every moving entity once per tick and culls what leaves the field
type MotionSystem struct {
	world *engine.World
}

func NewMotionSystem(world *engine.World) engine.System {
	s := &MotionSystem{world: world}
	s.Init()
	return s
}

func (s *MotionSystem) Init() {}

func (s *MotionSystem) Name() string {
	return "motion"
}

func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

func (s *MotionSystem) Update() {
	s.moveBullets()
	s.moveEnemies()
	s.movePowerups()
	s.moveParticles()
}

// Bullets leave past the margin on either axis; surround side shots never change y
func (s *MotionSystem) moveBullets() {
	w := s.world
	m := parameter.BulletBoundMargin
	kept := w.Bullets[:0]
	for _, b := range w.Bullets {
		b.X += b.VX
		b.Y += b.VY
		if b.Y > -m && b.Y < w.Height+m && b.X > -m && b.X < w.Width+m {
			kept = append(kept, b)
		}
	}
	w.Bullets = kept
}

// Enemies drift sideways by the wobble of their pre-move height, then descend
// Those reaching the exit line vanish without reward
func (s *MotionSystem) moveEnemies() {
	w := s.world
	exitY := w.Height - parameter.TopPanelHeight - parameter.EnemyExitMargin
	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		e.X += vmath.Wobble(e.Y, parameter.WobbleFrequency, e.Wobble)
		e.Y += e.Speed
		if e.Y < exitY {
			kept = append(kept, e)
		}
	}
	w.Enemies = kept
}

func (s *MotionSystem) movePowerups() {
	w := s.world
	exitY := w.Height + parameter.PowerupExitMargin
	kept := w.Powerups[:0]
	for _, p := range w.Powerups {
		p.Y += parameter.PowerupFallSpeed
		if p.Y < exitY {
			kept = append(kept, p)
		}
	}
	w.Powerups = kept
}

func (s *MotionSystem) moveParticles() {
	w := s.world
	kept := w.Particles[:0]
	for _, p := range w.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	w.Particles = kept
}
