package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ventkeeper/ventkeeper/internal/app"
)

func TestConfirmerConfirm(t *testing.T) {
	c := app.NewConfirmer(time.Second)
	token := c.NewToken(testNow)
	c.Begin(token)

	outcome, ok := c.Resolve(token, "yes")
	assert.True(t, ok)
	assert.Equal(t, app.ConfirmationConfirmed, outcome)
}

func TestConfirmerAcceptsOnlyExactYes(t *testing.T) {
	cases := []struct {
		input string
		want  app.ConfirmationOutcome
	}{
		{"yes", app.ConfirmationConfirmed},
		{"YES", app.ConfirmationConfirmed},
		{"Yes", app.ConfirmationConfirmed},
		{"  yes  ", app.ConfirmationConfirmed},
		{"yes!", app.ConfirmationCancelled},
		{"y", app.ConfirmationCancelled},
		{"no", app.ConfirmationCancelled},
		{"", app.ConfirmationCancelled},
		{"yes please", app.ConfirmationCancelled},
	}

	for _, tc := range cases {
		c := app.NewConfirmer(time.Second)
		token := c.NewToken(testNow)
		c.Begin(token)

		outcome, ok := c.Resolve(token, tc.input)
		assert.True(t, ok)
		assert.Equal(t, tc.want, outcome, "input %q", tc.input)
	}
}

func TestConfirmerTimesOut(t *testing.T) {
	c := app.NewConfirmer(20 * time.Millisecond)
	token := c.NewToken(testNow)
	replies := c.Begin(token)

	assert.Equal(t, app.ConfirmationTimedOut, c.Wait(token, replies))

	// the entry is gone: a late response is a no-op
	_, ok := c.Resolve(token, "yes")
	assert.False(t, ok)
}

func TestConfirmerIgnoresForeignTokens(t *testing.T) {
	c := app.NewConfirmer(time.Second)

	tokenA := c.NewToken(testNow)
	tokenB := c.NewToken(testNow.Add(time.Millisecond))
	assert.NotEqual(t, tokenA, tokenB)

	c.Begin(tokenA)
	c.Begin(tokenB)

	// an unknown token resolves nothing
	_, ok := c.Resolve("stale:reset", "yes")
	assert.False(t, ok)

	// resolving B never completes A
	outcome, ok := c.Resolve(tokenB, "no")
	assert.True(t, ok)
	assert.Equal(t, app.ConfirmationCancelled, outcome)

	outcome, ok = c.Resolve(tokenA, "yes")
	assert.True(t, ok)
	assert.Equal(t, app.ConfirmationConfirmed, outcome)
}

func TestConfirmerResolveIsTerminal(t *testing.T) {
	c := app.NewConfirmer(time.Second)
	token := c.NewToken(testNow)
	c.Begin(token)

	_, ok := c.Resolve(token, "no")
	assert.True(t, ok)

	// a second answer to the same prompt is a no-op
	_, ok = c.Resolve(token, "yes")
	assert.False(t, ok)
}

func TestConfirmerWaitSeesResponseRace(t *testing.T) {
	c := app.NewConfirmer(50 * time.Millisecond)
	token := c.NewToken(testNow)
	replies := c.Begin(token)

	go func() {
		time.Sleep(10 * time.Millisecond)
		c.Resolve(token, "yes")
	}()

	assert.Equal(t, app.ConfirmationConfirmed, c.Wait(token, replies))
}

func TestConfirmerWaitAfterEarlyResolve(t *testing.T) {
	c := app.NewConfirmer(20 * time.Millisecond)
	token := c.NewToken(testNow)
	replies := c.Begin(token)

	// the response can land before the waiter starts listening
	outcome, ok := c.Resolve(token, "yes")
	assert.True(t, ok)
	assert.Equal(t, app.ConfirmationConfirmed, outcome)

	assert.Equal(t, app.ConfirmationConfirmed, c.Wait(token, replies))
}
