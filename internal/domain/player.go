package domain

import (
	"math"
	"time"
)

// Player is a registered hacker profile and the unit every action mutates.
type Player struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	DisplayName   string    `json:"display_name"`
	Bio           string    `json:"bio,omitempty"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	PasswordHash  string    `json:"-"`
	Creds         int       `json:"creds"`
	XP            int       `json:"xp"`
	Level         int       `json:"level"`
	Stamina       int       `json:"stamina"`
	StaminaMax    int       `json:"stamina_max"`
	HackingSkill  int       `json:"hacking_skill"`
	SecurityLevel int       `json:"security_level"`
	Badges        []string  `json:"badges"`
	LastOnlineAt  time.Time `json:"last_online_at"`
	CreatedAt     time.Time `json:"created_at"`
	// Version increments on every committed write and backs optimistic checks.
	Version int64 `json:"-"`
}

// LevelXPDivisor controls the level curve: level = 1 + floor(sqrt(xp / LevelXPDivisor)).
const LevelXPDivisor = 25

// LevelForXP derives the stored level from total XP.
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 1
	}
	return 1 + int(math.Floor(math.Sqrt(float64(xp)/LevelXPDivisor)))
}

// AddXP applies an XP delta, floors at zero and recomputes Level.
func (p *Player) AddXP(delta int) {
	p.XP = max(0, p.XP+delta)
	p.Level = LevelForXP(p.XP)
}

// AddCreds applies a credit delta and returns the delta actually applied.
// Debits larger than the balance are clamped so Creds never goes negative.
func (p *Player) AddCreds(delta int) int {
	if p.Creds+delta < 0 {
		delta = -p.Creds
	}
	p.Creds += delta
	return delta
}

// SpendStamina debits stamina, floored at zero.
func (p *Player) SpendStamina(cost int) {
	p.Stamina = max(0, p.Stamina-cost)
}

// RefillStamina adds up to amount without exceeding StaminaMax and returns
// the amount actually restored.
func (p *Player) RefillStamina(amount int) int {
	room := p.StaminaMax - p.Stamina
	restored := max(0, min(amount, room))
	p.Stamina += restored
	return restored
}

// Validate checks the numeric invariants every committed player row must hold.
func (p *Player) Validate() error {
	switch {
	case p.Creds < 0:
		return IntegrityError("player", "creds", p.Creds)
	case p.XP < 0:
		return IntegrityError("player", "xp", p.XP)
	case p.Level < 1:
		return IntegrityError("player", "level", p.Level)
	case p.Stamina < 0 || p.Stamina > p.StaminaMax:
		return IntegrityError("player", "stamina", p.Stamina)
	case p.HackingSkill < 0:
		return IntegrityError("player", "hacking_skill", p.HackingSkill)
	case p.SecurityLevel < 0:
		return IntegrityError("player", "security_level", p.SecurityLevel)
	}
	return nil
}

// Clone returns a deep copy so callers can mutate without aliasing storage.
func (p *Player) Clone() *Player {
	c := *p
	c.Badges = append([]string(nil), p.Badges...)
	return &c
}
