package hack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/HackArena_Go/internal/domain"
)

func TestPower_NonDecreasing(t *testing.T) {
	for skill := 0; skill <= 100; skill += 5 {
		for xp := 0; xp <= 10000; xp += 250 {
			p := Power(skill, xp)
			assert.GreaterOrEqual(t, Power(skill+1, xp), p, "skill=%d xp=%d", skill, xp)
			assert.GreaterOrEqual(t, Power(skill, xp+1), p, "skill=%d xp=%d", skill, xp)
		}
	}
}

func TestPower_ZeroSkillIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Power(0, 5000))
}

func TestWinProbability_Clamped(t *testing.T) {
	for a := 0.0; a <= 500; a += 12.5 {
		for d := 0.0; d <= 500; d += 12.5 {
			p := WinProbability(a, d)
			assert.GreaterOrEqual(t, p, MinWinProb)
			assert.LessOrEqual(t, p, MaxWinProb)
		}
	}
	assert.Equal(t, MaxWinProb, WinProbability(1000, 0))
	assert.Equal(t, MinWinProb, WinProbability(0, 1000))
	assert.InDelta(t, 0.5, WinProbability(40, 40), 1e-9)
}

func TestStaminaCost(t *testing.T) {
	tests := []struct {
		skill int
		want  int
	}{
		{0, 10},
		{4, 10},
		{5, 11},
		{30, 13},
		{45, 15},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StaminaCost(tt.skill), "skill=%d", tt.skill)
	}
}

func TestEmulate_Scenario(t *testing.T) {
	attacker := &domain.Player{HackingSkill: 30, XP: 1250}
	defender := &domain.Player{SecurityLevel: 25, XP: 900}

	res := Rounded(Emulate(attacker, defender))

	assert.Equal(t, 54.33, res.AttackerPower)
	assert.Equal(t, 41.05, res.DefenderPower)
	assert.Equal(t, 0.63, res.WinProb)
	assert.Equal(t, 13, res.StaminaCost)
}

func TestEmulate_UsesSecurityLevelForDefender(t *testing.T) {
	attacker := &domain.Player{HackingSkill: 10, SecurityLevel: 99}
	defender := &domain.Player{HackingSkill: 99, SecurityLevel: 10}

	res := Emulate(attacker, defender)

	assert.Equal(t, 10.0, res.AttackerPower)
	assert.Equal(t, 10.0, res.DefenderPower)
}

func TestEmulate_Pure(t *testing.T) {
	attacker := &domain.Player{HackingSkill: 22, XP: 900, Creds: 10}
	defender := &domain.Player{SecurityLevel: 40, XP: 3500, Creds: 20}
	before := *attacker

	first := Emulate(attacker, defender)
	second := Emulate(attacker, defender)

	assert.Equal(t, first, second)
	assert.Equal(t, before, *attacker)
}
