package services

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// NoticeTTL - сколько показывается уведомление о присоединении.
const NoticeTTL = 3000 * time.Millisecond

// Notifier holds at most one transient message. Showing a new message stops
// the pending expiry timer and schedules a fresh one, so only the latest
// message is visible and only its timer fires onExpire.
type Notifier struct {
	clock    clockwork.Clock
	ttl      time.Duration
	onExpire func()

	mu       sync.Mutex
	message  string
	deadline time.Time
	timer    clockwork.Timer
}

// NewNotifier creates a notifier. onExpire may be nil; it runs on the
// clock's timer goroutine and must not block.
func NewNotifier(clock clockwork.Clock, ttl time.Duration, onExpire func()) *Notifier {
	return &Notifier{
		clock:    clock,
		ttl:      ttl,
		onExpire: onExpire,
	}
}

func (n *Notifier) Show(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.message = message
	n.deadline = n.clock.Now().Add(n.ttl)

	var timer clockwork.Timer
	timer = n.clock.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		current := n.timer == timer
		if current {
			n.timer = nil
		}
		n.mu.Unlock()

		if current && n.onExpire != nil {
			n.onExpire()
		}
	})
	n.timer = timer
}

// Current returns the live message, or "" once it has expired.
func (n *Notifier) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.message == "" || !n.clock.Now().Before(n.deadline) {
		return ""
	}
	return n.message
}

// Stop cancels the pending timer and clears the message.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.message = ""
}
