package services

import "sync"

// Notifier is the change-signal hub behind the observable feeds. The auth
// service broadcasts when the current user changes and the ledger service
// broadcasts when a transfer or account mutation commits; the presentation
// layer subscribes and re-reads the account/transaction feeds on each signal.
type Notifier struct {
	mu   sync.Mutex
	subs []chan struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe returns a channel that receives a signal after every broadcast.
// The channel has a one-element buffer; back-to-back broadcasts coalesce
// into a single pending signal, which is fine because subscribers re-read
// the full feed state anyway.
func (n *Notifier) Subscribe() <-chan struct{} {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan struct{}, 1)
	n.subs = append(n.subs, ch)
	return ch
}

// Broadcast signals every subscriber without blocking on slow ones.
func (n *Notifier) Broadcast() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
