package logic

import (
	"math"
)

// ResolveMovement handles Circle vs TileMap collision with sliding
func (gs *GameState) ResolveMovement(pos Vector2, delta Vector2, radius float64) Vector2 {
	// Try full move
	target := pos.Add(delta)
	if !gs.checkCollision(target, radius) {
		return target
	}

	// Slide: X axis only, then Y axis only
	targetX := Vector2{X: pos.X + delta.X, Y: pos.Y}
	if !gs.checkCollision(targetX, radius) {
		return targetX
	}
	targetY := Vector2{X: pos.X, Y: pos.Y + delta.Y}
	if !gs.checkCollision(targetY, radius) {
		return targetY
	}

	return pos
}

func (gs *GameState) checkCollision(pos Vector2, radius float64) bool {
	m := gs.Map
	if pos.X < radius || pos.X > float64(m.Width)*TileSize-radius ||
		pos.Y < radius || pos.Y > float64(m.Height)*TileSize-radius {
		return true
	}

	minX := int((pos.X - radius) / TileSize)
	maxX := int((pos.X + radius) / TileSize)
	minY := int((pos.Y - radius) / TileSize)
	maxY := int((pos.Y + radius) / TileSize)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if m.IsSolid(TileCenter(x, y)) && CircleAABB(pos, radius, x, y) {
				return true
			}
		}
	}
	return false
}

// CircleAABB checks overlap between circle at c/r and tile (tx, ty).
func CircleAABB(c Vector2, r float64, tx, ty int) bool {
	left, top := float64(tx)*TileSize, float64(ty)*TileSize
	closestX := math.Max(left, math.Min(c.X, left+TileSize))
	closestY := math.Max(top, math.Min(c.Y, top+TileSize))

	dx := c.X - closestX
	dy := c.Y - closestY
	return dx*dx+dy*dy < r*r
}
