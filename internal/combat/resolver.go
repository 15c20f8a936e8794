// Package combat resolves melee exchanges between combatants.
package combat

import "fmt"

// Combatant is anything that can attack or be attacked in melee.
type Combatant interface {
	GetName() string
	GetHP() int
	GetPower() int
	GetDefense() int

	// TakeDamage lowers health and returns the amount actually removed.
	TakeDamage(amount int) int
}

// Outcome distinguishes a landed hit from an attack that was absorbed.
type Outcome int

const (
	// OutcomeHit means health was reduced by Damage.
	OutcomeHit Outcome = iota
	// OutcomeNoDamage means the attack happened but defense absorbed it.
	OutcomeNoDamage
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeNoDamage:
		return "no_damage"
	default:
		return "unknown"
	}
}

// Result contains the outcome of one melee attack.
type Result struct {
	Outcome Outcome
	Damage  int    // Computed damage, power minus defense
	Dealt   int    // Health actually removed after clamping
	Killed  bool   // Defender's health is zero after the attack
	Message string // Human-readable description
}

// CalculateDamage returns attacker power minus defender defense. The value
// may be zero or negative, in which case the attack does nothing.
func CalculateDamage(attacker, defender Combatant) int {
	return attacker.GetPower() - defender.GetDefense()
}

// ResolveMelee applies one melee attack from attacker to defender.
func ResolveMelee(attacker, defender Combatant) Result {
	damage := CalculateDamage(attacker, defender)
	desc := fmt.Sprintf("%s attacks %s", attacker.GetName(), defender.GetName())

	if damage <= 0 {
		return Result{
			Outcome: OutcomeNoDamage,
			Damage:  damage,
			Killed:  defender.GetHP() == 0,
			Message: desc + " but does no damage.",
		}
	}

	dealt := defender.TakeDamage(damage)
	return Result{
		Outcome: OutcomeHit,
		Damage:  damage,
		Dealt:   dealt,
		Killed:  defender.GetHP() == 0,
		Message: fmt.Sprintf("%s for %d hit points.", desc, damage),
	}
}
