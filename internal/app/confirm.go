package app

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// ConfirmationOutcome is the terminal state of one confirmation flow.
type ConfirmationOutcome int

const (
	ConfirmationConfirmed ConfirmationOutcome = iota
	ConfirmationCancelled
	ConfirmationTimedOut
)

func (o ConfirmationOutcome) String() string {
	switch o {
	case ConfirmationConfirmed:
		return "confirmed"
	case ConfirmationCancelled:
		return "cancelled"
	case ConfirmationTimedOut:
		return "timed out"
	}
	return "unknown"
}

// Confirmer correlates confirmation prompts with their responses. Each
// manual trigger registers a token unique to that invocation; responses
// carrying a stale or foreign token are no-ops. Entries are removed on
// every terminal transition, so the map never leaks.
type Confirmer struct {
	timeout time.Duration

	mu      sync.Mutex
	pending map[string]chan string
}

func NewConfirmer(timeout time.Duration) *Confirmer {
	return &Confirmer{
		timeout: timeout,
		pending: map[string]chan string{},
	}
}

// NewToken derives an invocation-unique token from the trigger timestamp.
func (c *Confirmer) NewToken(now time.Time) string {
	return fmt.Sprintf("%d:reset", now.UnixNano())
}

// Begin registers a token and returns the channel its response will arrive
// on. The caller hands the channel to Wait, so a response landing before the
// waiter starts listening is still delivered.
func (c *Confirmer) Begin(token string) <-chan string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan string, 1)
	c.pending[token] = ch
	return ch
}

// Resolve routes a response to the invocation waiting on token. The second
// return is false when the token is unknown, already resolved or timed out.
// An exact, case-insensitive "yes" confirms; anything else cancels.
func (c *Confirmer) Resolve(token, input string) (ConfirmationOutcome, bool) {
	c.mu.Lock()
	ch, ok := c.pending[token]
	if ok {
		delete(c.pending, token)
	}
	c.mu.Unlock()
	if !ok {
		return ConfirmationCancelled, false
	}

	ch <- input
	return decide(input), true
}

// Wait blocks until the token is resolved or the window expires. replies is
// the channel Begin returned for the same token.
func (c *Confirmer) Wait(token string, replies <-chan string) ConfirmationOutcome {
	select {
	case input := <-replies:
		return decide(input)
	case <-time.After(c.timeout):
	}

	// Presence in the map decides the race between a timeout and a
	// response arriving at the same instant: whoever removes the entry
	// owns the terminal transition.
	c.mu.Lock()
	_, still := c.pending[token]
	delete(c.pending, token)
	c.mu.Unlock()
	if !still {
		// Resolve won the race; the input is already buffered.
		return decide(<-replies)
	}
	return ConfirmationTimedOut
}

func decide(input string) ConfirmationOutcome {
	if strings.EqualFold(strings.TrimSpace(input), "yes") {
		return ConfirmationConfirmed
	}
	return ConfirmationCancelled
}
