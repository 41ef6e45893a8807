package logic

import "math"

const (
	// occupiedScore is what a character standing exactly on a candidate contributes.
	occupiedScore = 1e9
	// friendlyThreat scales how much a teammate counts against a spawn point.
	friendlyThreat = 0.5
)

// Distance helper
func Distance(p1, p2 Vector2) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// ThreatScore sums weight/d over all characters. Lower is safer.
// Characters on friendly count half; friendly may be NoTeam.
func ThreatScore(chars []*Character, pos Vector2, friendly Team) float64 {
	score := 0.0
	for _, ch := range chars {
		weight := 1.0
		if friendly != NoTeam && ch.Team == friendly {
			weight = friendlyThreat
		}
		d := Distance(pos, ch.Pos)
		if d == 0 {
			score += weight * occupiedScore
			continue
		}
		score += weight / d
	}
	return score
}

// OccupancyScore sums how far each character intrudes into the crowding radius around pos.
func OccupancyScore(chars []*Character, pos Vector2) float64 {
	score := 0.0
	for _, ch := range chars {
		score += SpawnCrowdRadius - Distance(ch.Pos, pos)
	}
	return score
}
