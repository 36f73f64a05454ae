package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// recorder implements every screen delegate and logs the calls it gets.
type recorder struct {
	calls   []string
	menu    []int
	amounts []string
	answers []ConfirmResult
}

func (r *recorder) MenuSelected(index int) {
	r.calls = append(r.calls, "menu.selected")
	r.menu = append(r.menu, index)
}

func (r *recorder) MenuDismissed() { r.calls = append(r.calls, "menu.dismissed") }

func (r *recorder) AmountSubmitted(raw string) {
	r.calls = append(r.calls, "amount.submitted")
	r.amounts = append(r.amounts, raw)
}

func (r *recorder) AmountCancelled() { r.calls = append(r.calls, "amount.cancelled") }

func (r *recorder) ConfirmAnswered(result ConfirmResult) {
	r.calls = append(r.calls, "confirm.answered")
	r.answers = append(r.answers, result)
}

func (r *recorder) CardPrimary() { r.calls = append(r.calls, "card.primary") }

func (r *recorder) CardClosed() { r.calls = append(r.calls, "card.closed") }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func sameCalls(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
