package entity

// RenderOrder is the draw layer of an actor. Lower values are drawn first,
// so the highest layer on a cell is what the player sees.
type RenderOrder int

const (
	RenderCorpse RenderOrder = iota + 1
	RenderItem
	RenderActor
)

// String returns the layer name.
func (r RenderOrder) String() string {
	switch r {
	case RenderCorpse:
		return "corpse"
	case RenderItem:
		return "item"
	case RenderActor:
		return "actor"
	default:
		return "unknown"
	}
}
