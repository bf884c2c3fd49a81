package ui

import (
	"fmt"
	"strings"

	"bagisadmin/internal/domain"
	"bagisadmin/internal/donations"
	"bagisadmin/internal/view"
)

// overlayModel renders the donations modal on top of whatever view is
// active. Each open re-queries the store; nothing is cached between opens.
type overlayModel struct {
	target  view.OverlayTarget
	loading bool
	result  donations.Result
	styles  Styles
	msgs    *Messages
}

func newOverlayModel(styles Styles, msgs *Messages, target view.OverlayTarget) overlayModel {
	return overlayModel{target: target, loading: true, styles: styles, msgs: msgs}
}

func (m *overlayModel) setResult(res donations.Result) {
	m.loading = false
	m.result = res
}

func (m *overlayModel) view() string {
	var sb strings.Builder
	title := m.msgs.Get("donations.title")
	if m.target.AnimalName != "" {
		title += " — " + m.target.AnimalName
	}
	sb.WriteString(m.styles.Title.Render(title))
	sb.WriteString("\n\n")

	switch {
	case m.loading:
		sb.WriteString(m.msgs.Get("common.loading"))
	case m.result.IndexRequired:
		sb.WriteString(m.styles.Error.Render(m.msgs.Get("donations.index")))
	case m.result.Failed:
		sb.WriteString(m.styles.Error.Render(m.msgs.Get("donations.failed")))
	case len(m.result.Donations) == 0:
		sb.WriteString(m.msgs.Get("donations.empty"))
	default:
		for _, d := range m.result.Donations {
			sb.WriteString(renderDonation(m.styles, d))
		}
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render(m.msgs.Get("keys.overlay")))
	return m.styles.Overlay.Render(sb.String())
}

func renderDonation(styles Styles, d domain.Donation) string {
	var sb strings.Builder
	name := d.UserName
	if name == "" {
		name = "Anonim"
	}
	sb.WriteString(styles.Selected.Render(d.DonationType))
	sb.WriteString(" · " + name)
	if d.IsCash() && d.Amount > 0 {
		currency := d.Currency
		if currency == "" {
			currency = domain.DefaultCurrency
		}
		sb.WriteString(fmt.Sprintf(" · %.2f %s", d.Amount, currency))
	}
	if !d.DonationDate.IsZero() {
		sb.WriteString(" · " + d.DonationDate.Format("02.01.2006 15:04"))
	}
	if d.Description != "" {
		sb.WriteString("\n  " + styles.Muted.Render(d.Description))
	}
	sb.WriteString("\n")
	return sb.String()
}
