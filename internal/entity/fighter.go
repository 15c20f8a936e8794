package entity

import "github.com/samdwyer/dungeonturn/internal/combat"

// Fighter is the combat component of an actor.
// Health always stays within [0, MaxHP].
type Fighter struct {
	MaxHP   int
	hp      int
	Defense int
	Power   int

	owner *Actor
}

// NewFighter creates a fighter at full health.
func NewFighter(hp, defense, power int) *Fighter {
	return &Fighter{MaxHP: hp, hp: hp, Defense: defense, Power: power}
}

// HP returns current health.
func (f *Fighter) HP() int { return f.hp }

// SetHP writes health clamped into [0, MaxHP]. Reaching zero while the owner
// still has a strategy kills the owner; dead owners never come back.
func (f *Fighter) SetHP(value int) {
	f.hp = max(0, min(value, f.MaxHP))
	if f.hp == 0 && f.owner != nil && f.owner.AI != nil {
		f.owner.die()
	}
}

// TakeDamage reduces health and returns the damage actually taken.
func (f *Fighter) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := f.hp
	f.SetHP(f.hp - amount)
	return before - f.hp
}

// Heal restores health and returns the amount actually healed.
func (f *Fighter) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := f.hp
	f.SetHP(f.hp + amount)
	return f.hp - before
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the owning actor's name.
func (f *Fighter) GetName() string {
	if f.owner == nil {
		return "<unnamed>"
	}
	return f.owner.Name
}

// GetHP returns current health.
func (f *Fighter) GetHP() int { return f.hp }

// GetPower returns melee attack power.
func (f *Fighter) GetPower() int { return f.Power }

// GetDefense returns the defense value.
func (f *Fighter) GetDefense() int { return f.Defense }

// Ensure Fighter implements combat.Combatant
var _ combat.Combatant = (*Fighter)(nil)
