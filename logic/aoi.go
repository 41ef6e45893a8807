package logic

// DefaultViewRadius is how far a character sees, in world units.
const DefaultViewRadius = 900.0

// AOIManager handles visibility calculations
type AOIManager struct {
	ViewRadius float64
}

func NewAOIManager(viewRadius float64) *AOIManager {
	return &AOIManager{ViewRadius: viewRadius}
}

// VisibleCharacters returns the characters the observer can see. Vision is
// blocked by wall tiles (LOS). A nil observer (spectator) sees everything.
func (aoi *AOIManager) VisibleCharacters(observer *Character, gameMap *GameMap, all []*Character) []*Character {
	if observer == nil {
		return all
	}
	visible := make([]*Character, 0, len(all))
	for _, ch := range all {
		if ch == observer {
			visible = append(visible, ch)
			continue
		}
		if Distance(observer.Pos, ch.Pos) > aoi.ViewRadius {
			continue
		}
		if gameMap != nil && !gameMap.HasLineOfSight(observer.Pos, ch.Pos) {
			continue
		}
		visible = append(visible, ch)
	}
	return visible
}
