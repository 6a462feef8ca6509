package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/osse101/HackArena_Go/internal/domain"
)

var (
	stdinReader = bufio.NewReader(os.Stdin)
	accent      = color.New(color.FgCyan, color.Bold)
	success     = color.New(color.FgGreen, color.Bold)
	warn        = color.New(color.FgYellow, color.Bold)
	danger      = color.New(color.FgRed, color.Bold)
	neutral     = color.New(color.FgHiWhite)
)

func printHeader(format string, a ...any) {
	accent.Printf("\n=== "+format+" ===\n", a...)
}

func printSuccess(format string, a ...any) {
	success.Printf("✓ "+format+"\n", a...)
}

func printWarn(format string, a ...any) {
	warn.Printf("⚠ "+format+"\n", a...)
}

func printError(format string, a ...any) {
	danger.Fprintf(os.Stderr, "✗ "+format+"\n", a...)
}

func confirm(question string) (bool, error) {
	neutral.Printf("%s [y/N]: ", question)
	line, err := stdinReader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func printPlayers(w io.Writer, players []domain.Player) {
	if len(players) == 0 {
		warn.Fprintln(w, "No players")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tCREDS\tXP\tSTAMINA\tSKILL\tSECURITY")
	for _, p := range players {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d/%d\t%d\t%d\n",
			p.ID, p.Username, p.Creds, p.XP, p.Stamina, p.StaminaMax, p.HackingSkill, p.SecurityLevel)
	}
	tw.Flush()
}

func printFeed(w io.Writer, items []domain.FeedItem) {
	if len(items) == 0 {
		warn.Fprintln(w, "Feed is empty")
		return
	}
	for _, item := range items {
		accent.Fprintf(w, "#%d ", item.Seq)
		neutral.Fprintf(w, "[%s] %s", item.Type, item.Text)
		fmt.Fprintf(w, "  %s\n", formatReactions(item.Reactions))
	}
}

func formatReactions(r map[string]int) string {
	parts := make([]string, 0, len(domain.ReactionEmojis))
	for _, emoji := range domain.ReactionEmojis {
		if n := r[emoji]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", emoji, n))
		}
	}
	return strings.Join(parts, " ")
}
