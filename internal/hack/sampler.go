package hack

import (
	"math"

	"github.com/osse101/HackArena_Go/internal/domain"
)

// Loot and XP constants
const (
	LootBalanceFraction = 0.05
	LootCapBase         = 200
	LootCapPerSkill     = 5
	LootJitter          = 0.2 // total width of the multiplier band, centred on 1

	AttackerXPBase  = 10
	AttackerXPRatio = 5

	// DefenderXPOnLoss is awarded to a defender who repels an attack
	DefenderXPOnLoss = 5 + 2

	// MinDefenderPower floors the denominator of the attacker XP ratio
	MinDefenderPower = 1.0
)

// Sample draws one outcome for em. The first draw decides the winner; a
// winning attacker takes a second draw for loot jitter. Loot never exceeds
// the defender's balance.
func Sample(em domain.HackEmulationResult, attacker, defender *domain.Player, rnd Rand) domain.HackResult {
	res := domain.HackResult{StaminaCost: em.StaminaCost}

	u := rnd.Float64()
	res.Win = u <= em.WinProb
	if !res.Win {
		res.DefenderXPGain = DefenderXPOnLoss
		return res
	}

	res.Loot.Creds = LootFor(attacker.HackingSkill, defender.Creds, rnd.Float64())
	res.AttackerXPGain = AttackerXP(em.AttackerPower, em.DefenderPower)
	res.Loot.XP = res.AttackerXPGain
	return res
}

// LootFor computes loot from the defender balance and a jitter draw r in [0,1).
func LootFor(hackingSkill, defenderCreds int, r float64) int {
	capped := math.Min(float64(defenderCreds)*LootBalanceFraction, float64(LootCapBase+LootCapPerSkill*hackingSkill))
	base := math.Floor(capped)
	loot := int(math.Floor(base * (1 + (r-0.5)*LootJitter)))
	return max(0, min(loot, defenderCreds))
}

// AttackerXP is floor(10 + A/D*5) with D floored at MinDefenderPower.
func AttackerXP(attackerPower, defenderPower float64) int {
	d := math.Max(defenderPower, MinDefenderPower)
	return int(math.Floor(AttackerXPBase + attackerPower/d*AttackerXPRatio))
}

// Apply mutates both snapshots with res. Stamina is debited once, floored at zero.
func Apply(res domain.HackResult, attacker, defender *domain.Player) {
	attacker.SpendStamina(res.StaminaCost)
	if res.Win {
		taken := -defender.AddCreds(-res.Loot.Creds)
		attacker.AddCreds(taken)
		attacker.AddXP(res.AttackerXPGain)
		return
	}
	defender.AddXP(res.DefenderXPGain)
}
