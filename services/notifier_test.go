package services

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestNotifierExpires(t *testing.T) {
	clock := clockwork.NewFakeClock()
	n := NewNotifier(clock, NoticeTTL, nil)

	if got := n.Current(); got != "" {
		t.Fatalf("initial notice = %q", got)
	}

	n.Show(`You joined "Spring Blitz"!`)
	if got := n.Current(); got != `You joined "Spring Blitz"!` {
		t.Fatalf("Current = %q", got)
	}

	clock.Advance(NoticeTTL - time.Millisecond)
	if n.Current() == "" {
		t.Fatal("notice expired early")
	}

	clock.Advance(time.Millisecond)
	if got := n.Current(); got != "" {
		t.Errorf("notice still visible after TTL: %q", got)
	}
}

func TestNotifierLatestWins(t *testing.T) {
	clock := clockwork.NewFakeClock()
	n := NewNotifier(clock, NoticeTTL, nil)

	n.Show("first")
	clock.Advance(2 * time.Second)
	n.Show("second")

	// срок первого сообщения прошел, но второе должно остаться
	clock.Advance(1500 * time.Millisecond)
	if got := n.Current(); got != "second" {
		t.Fatalf("Current = %q, want second", got)
	}

	clock.Advance(1500 * time.Millisecond)
	if got := n.Current(); got != "" {
		t.Errorf("Current = %q after second TTL", got)
	}
}

func TestNotifierOnExpireFiresForLatestOnly(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fired := make(chan struct{}, 4)
	n := NewNotifier(clock, NoticeTTL, func() { fired <- struct{}{} })

	n.Show("first")
	n.Show("second")
	clock.Advance(NoticeTTL)

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("onExpire was not called")
	}

	// отмененный таймер первого сообщения срабатывать не должен
	select {
	case <-fired:
		t.Error("onExpire called more than once")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNotifierStop(t *testing.T) {
	clock := clockwork.NewFakeClock()
	n := NewNotifier(clock, NoticeTTL, func() { t.Error("onExpire called after Stop") })

	n.Show("message")
	n.Stop()
	if got := n.Current(); got != "" {
		t.Errorf("Current after Stop = %q", got)
	}
	clock.Advance(2 * NoticeTTL)
	time.Sleep(20 * time.Millisecond)
}
