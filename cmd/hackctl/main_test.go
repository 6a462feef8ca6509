package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HackArena_Go/internal/domain"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.ElementsMatch(t, []string{"wait-db", "migrate", "seed", "players", "regen", "feed"}, names)
}

func TestPlayersDelete_RequiresID(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"players", "delete"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestRegen_RejectsNonPositiveAmount(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"regen", "--amount", "0"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--amount must be at least 1")
}

func TestPrintPlayers(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	printPlayers(&buf, []domain.Player{{
		ID: "user-001", Username: "n3o_pwnr", Creds: 5000, Stamina: 95, StaminaMax: 100, HackingSkill: 30, SecurityLevel: 25,
	}})

	out := buf.String()
	assert.Contains(t, out, "USERNAME")
	assert.Contains(t, out, "n3o_pwnr")
	assert.Contains(t, out, "95/100")
}

func TestPrintPlayers_Empty(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	printPlayers(&buf, nil)

	assert.Contains(t, buf.String(), "No players")
}

func TestFormatReactions_SkipsZeroCounts(t *testing.T) {
	got := formatReactions(map[string]int{
		domain.ReactionFire:  3,
		domain.ReactionSkull: 0,
		domain.ReactionEyes:  1,
	})

	assert.Equal(t, domain.ReactionFire+" 3 "+domain.ReactionEyes+" 1", got)
}

func TestPrintFeed(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	printFeed(&buf, []domain.FeedItem{{
		Seq: 7, Type: domain.FeedTypeHack, Text: "d4rk_c0de breached n3o_pwnr",
		Reactions: map[string]int{domain.ReactionFire: 2},
	}})

	out := buf.String()
	assert.Contains(t, out, "#7")
	assert.Contains(t, out, "[hack] d4rk_c0de breached n3o_pwnr")
	assert.Contains(t, out, domain.ReactionFire+" 2")
}
