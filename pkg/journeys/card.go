package journeys

import (
	"github.com/andri/pocketpay/pkg/flow"
	"github.com/andri/pocketpay/pkg/payments"
	"github.com/andri/pocketpay/pkg/tui/components"
)

// busyCard creates the progress screen a journey shows while a service
// call is in flight. The same card later shows the outcome.
func busyCard(title string, delegate components.CardDelegate) (*components.Card, *flow.DelegateRef[components.CardDelegate]) {
	ref := flow.NewDelegateRef[components.CardDelegate](delegate)
	card := components.NewCard(title, nil, "", ref)
	card.SetBusy(true)
	return card, ref
}

func showFailure(card *components.Card, title string, err error) {
	card.SetBusy(false)
	card.WithTone(components.CardToneError)
	card.SetTitle(title)
	card.SetFields(nil)
	card.SetPrimary("")
	card.SetMessage(payments.UserMessage(err))
}

func showSuccess(card *components.Card, title string, fields []components.CardField, primary string) {
	card.SetBusy(false)
	card.WithTone(components.CardToneSuccess)
	card.SetTitle(title)
	card.SetFields(fields)
	card.SetPrimary(primary)
	card.SetMessage("")
}
