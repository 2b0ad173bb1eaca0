// Package entity holds the game's actors: the player (Raiu), the enemy pool
// (Hoshu), projectiles, the health pad and the scrolling scenery.
//
// Entities only know how to move, take damage and recycle themselves. Which
// entity touches which, and what the game does about it, is decided by the
// world package.
package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/omegathunder/internal/collision"
	"chosenoffset.com/omegathunder/internal/position"
)

// Game wide limits.
const (
	NormalSpeed           = 100 // world units per second
	RaiuMaxHP             = 1000
	MaxScore              = 999_999_999
	MaxLevel              = 10
	MaxEnemyCount         = 100
	MaxStructureCount     = 10
	MaxStructureLights    = 5
	MaxGroundLength       = 5000
	MaxProjectileDistance = 4000
	RaiuMaxLaserCount     = 20
	HoshuMaxLaserCount    = 1
	FXNormalDuration      = 1000 // ms
	MaxGameTime           = 359_999_000
	WinningScore          = 100_000
	BoundaryX             = position.BoundaryX

	// RecycleZ is where actors that scrolled behind the player are removed.
	RecycleZ = -200
	// SpawnZ is where enemies and the health pad appear.
	SpawnZ = 3000
)

// Bounding volumes of the models, relative to each model's origin.
const (
	RaiuRadius      = 3
	RaiuCenterY     = 4
	HoshuRadius     = 6
	HoshuCenterY    = 5
	LaserRadius     = 0.5
	HealPadRadius   = 5
	HealPadCenterY  = 3
	EnemyLaserScale = 3
)

// LevelThresholds returns the experience needed at each player level and the
// defeats needed at each enemy level. Both double per level.
func LevelThresholds() (player, enemy [MaxLevel]int) {
	player[0], enemy[0] = 1000, 20
	for i := 1; i < MaxLevel; i++ {
		player[i] = player[i-1] * 2
		enemy[i] = enemy[i-1] * 2
	}
	return player, enemy
}

// AddScore adds n to score, saturating at MaxScore.
func AddScore(score, n int) int {
	if score >= MaxScore || n >= MaxScore-score {
		return MaxScore
	}
	return score + n
}

func sphereAt(pos mgl32.Vec3, centerY, radius float32) collision.Sphere {
	return collision.Sphere{Center: mgl32.Vec3{pos.X(), centerY, pos.Z()}, Radius: radius}
}
