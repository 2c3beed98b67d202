package chatbot

import "context"

// Exchange pairs one user utterance with its outcome.
// Exactly one of Reply or Err is meaningful.
type Exchange struct {
	Input string
	Reply string
	Err   error
}

// OK reports whether the exchange produced a reply.
func (e Exchange) OK() bool {
	return e.Err == nil
}

// Exchange runs Ask and captures its outcome instead of returning an error.
func (b *Bot) Exchange(ctx context.Context, input string) Exchange {
	reply, err := b.Ask(ctx, input)
	return Exchange{Input: input, Reply: reply, Err: err}
}
