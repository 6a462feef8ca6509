package feed

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/HackArena_Go/internal/domain"
)

// Narrator renders feed text for committed actions.
type Narrator struct {
	p *message.Printer
}

// NewNarrator returns a narrator formatting numbers for tag.
func NewNarrator(tag language.Tag) *Narrator {
	return &Narrator{p: message.NewPrinter(tag)}
}

func name(p *domain.Player) string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Username
}

// Hack names both parties and the outcome.
func (n *Narrator) Hack(attacker, defender *domain.Player, res domain.HackResult) string {
	if res.Win {
		return n.p.Sprintf(TmplHackWin, name(attacker), name(defender), res.Loot.Creds)
	}
	return n.p.Sprintf(TmplHackLoss, name(attacker), name(defender))
}

func (n *Narrator) Purchase(buyer *domain.Player, item *domain.ShopItem) string {
	return n.p.Sprintf(TmplPurchase, name(buyer), item.Title)
}

func (n *Narrator) Activation(player *domain.Player, item *domain.ShopItem) string {
	if item.ItemType == domain.ItemTypePermanentBoost {
		return n.p.Sprintf(TmplBoostActivated, name(player), item.Title, item.Payload.Effect, item.Payload.Value)
	}
	return n.p.Sprintf(TmplItemActivated, name(player), item.Title)
}

func (n *Narrator) TaskClaimed(player *domain.Player, tmpl *domain.TaskTemplate) string {
	return n.p.Sprintf(TmplTaskClaimed, name(player), tmpl.Title, tmpl.RewardCreds)
}
