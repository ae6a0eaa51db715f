package socket

import (
	"sync"

	"ember_server/models"
)

// subscriberBuffer bounds how far a subscriber may lag before it starts
// missing messages.
const subscriberBuffer = 64

// MessageBroker fans newly stored messages out to in-process subscribers,
// per match, in publish order.
type MessageBroker struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan models.Message
}

func NewMessageBroker() *MessageBroker {
	return &MessageBroker{subs: make(map[string]map[int]chan models.Message)}
}

// Subscribe returns an ordered stream of messages for the given match and a
// cancel function. Cancelling stops delivery and closes the channel; it
// never unwinds already-applied server state.
func (b *MessageBroker) Subscribe(matchID string) (<-chan models.Message, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan models.Message, subscriberBuffer)
	if b.subs[matchID] == nil {
		b.subs[matchID] = make(map[int]chan models.Message)
	}
	b.subs[matchID][id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		sub, ok := b.subs[matchID][id]
		if !ok {
			return
		}
		delete(b.subs[matchID], id)
		if len(b.subs[matchID]) == 0 {
			delete(b.subs, matchID)
		}
		close(sub)
	}
	return ch, cancel
}

// Publish delivers the message to every subscriber of its match. A
// subscriber that has fallen subscriberBuffer messages behind misses it
// rather than blocking the sender.
func (b *MessageBroker) Publish(message models.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs[message.MatchID] {
		select {
		case ch <- message:
		default:
		}
	}
}
