package hack

import (
	"math"

	"github.com/osse101/HackArena_Go/internal/domain"
)

// Emulation constants
const (
	// Spread is the logistic scale applied to the power delta
	Spread = 25.0

	MinWinProb = 0.02
	MaxWinProb = 0.98

	BaseStaminaCost = 10
)

// WinProbability maps a power delta to a win chance, clamped so no outcome
// is ever certain.
func WinProbability(attackerPower, defenderPower float64) float64 {
	p := 1 / (1 + math.Exp(-(attackerPower-defenderPower)/Spread))
	return math.Max(MinWinProb, math.Min(MaxWinProb, p))
}

// StaminaCost is 10 + round(hacking_skill / 10).
func StaminaCost(hackingSkill int) int {
	return BaseStaminaCost + int(math.Round(float64(hackingSkill)/10))
}

// Emulate previews a hack of defender by attacker. It is pure: the same
// snapshots always give the same result and nothing is written.
func Emulate(attacker, defender *domain.Player) domain.HackEmulationResult {
	a := Power(attacker.HackingSkill, attacker.XP)
	d := Power(defender.SecurityLevel, defender.XP)
	return domain.HackEmulationResult{
		AttackerPower: a,
		DefenderPower: d,
		WinProb:       WinProbability(a, d),
		StaminaCost:   StaminaCost(attacker.HackingSkill),
	}
}

// Rounded returns a copy with power and probability rounded to two decimals
// for display.
func Rounded(r domain.HackEmulationResult) domain.HackEmulationResult {
	r.AttackerPower = round2(r.AttackerPower)
	r.DefenderPower = round2(r.DefenderPower)
	r.WinProb = round2(r.WinProb)
	return r
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
