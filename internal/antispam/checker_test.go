package antispam

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func allChecks() Policy {
	return Policy{
		HoneypotEnabled:       true,
		HoneypotName:          "yourssince1615",
		TimeCheckEnabled:      true,
		MinimumSeconds:        3,
		DuplicateCheckEnabled: true,
		OriginCheckEnabled:    true,
	}
}

func staticPolicy(p Policy) PolicyFunc {
	return func(ctx context.Context) (Policy, error) { return p, nil }
}

func testRequest() Request {
	return Request{
		SessionID:  "sess-1",
		FormHandle: "contact",
		Host:       "example.test",
		UserAgent:  "Mozilla/5.0",
	}
}

func newTestChecker(p Policy) (*Checker, *fakeClock, *MemoryStore) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	store := NewMemoryStore()
	store.now = clock.Now
	return NewChecker(store, staticPolicy(p), WithClock(clock.Now)), clock, store
}

// renderAndWait renders the form and returns the params a real browser would post back.
func renderAndWait(t *testing.T, c *Checker, clock *fakeClock, wait time.Duration) Attempt {
	t.Helper()
	fields, err := c.Render(context.Background(), testRequest())
	require.NoError(t, err)
	clock.Advance(wait)
	return Attempt{Request: testRequest(), Params: fields}
}

func TestRender_AllChecks(t *testing.T) {
	c, clock, store := newTestChecker(allChecks())
	fields, err := c.Render(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "", fields["yourssince1615"])
	assert.Equal(t, strconv.FormatInt(clock.t.Unix(), 10), fields[FieldTime])
	assert.Equal(t, Hash("example.test"), fields[FieldHome])
	assert.Equal(t, Hash("Mozilla/5.0"), fields[FieldHash])

	_, ok, err := store.Get(context.Background(), Key("sess-1", "contact", checkDuplicate))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRender_DisabledChecksEmitNothing(t *testing.T) {
	c, _, _ := newTestChecker(Policy{})
	fields, err := c.Render(context.Background(), Request{})
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestRender_DuplicateNeedsSession(t *testing.T) {
	c, _, _ := newTestChecker(Policy{DuplicateCheckEnabled: true})
	_, err := c.Render(context.Background(), Request{FormHandle: "contact"})
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestVerify_HumanPasses(t *testing.T) {
	c, clock, _ := newTestChecker(allChecks())
	a := renderAndWait(t, c, clock, 10*time.Second)

	ok, err := c.Verify(context.Background(), a)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_Honeypot(t *testing.T) {
	c, clock, _ := newTestChecker(allChecks())
	a := renderAndWait(t, c, clock, 10*time.Second)
	a.Params["yourssince1615"] = "http://spam.example"

	ok, err := c.Verify(context.Background(), a)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_HoneypotWhitespaceCounts(t *testing.T) {
	c, clock, _ := newTestChecker(allChecks())
	a := renderAndWait(t, c, clock, 10*time.Second)
	a.Params["yourssince1615"] = " "

	ok, err := c.Verify(context.Background(), a)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_HoneypotWithoutNameIsSkipped(t *testing.T) {
	c, _, _ := newTestChecker(Policy{HoneypotEnabled: true})
	ok, err := c.Verify(context.Background(), Attempt{Params: map[string]string{"anything": "x"}})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_TooFast(t *testing.T) {
	tests := []struct {
		name string
		wait time.Duration
		want bool
	}{
		{"immediately", 0, false},
		{"exactly the minimum", 3 * time.Second, false},
		{"after the minimum", 4 * time.Second, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clock, _ := newTestChecker(Policy{TimeCheckEnabled: true, MinimumSeconds: 3})
			a := renderAndWait(t, c, clock, tt.wait)
			ok, err := c.Verify(context.Background(), a)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestVerify_TimeMissingOrGarbage(t *testing.T) {
	c, _, _ := newTestChecker(Policy{TimeCheckEnabled: true, MinimumSeconds: 3})
	for _, raw := range []string{"", "abc"} {
		ok, err := c.Verify(context.Background(), Attempt{Params: map[string]string{FieldTime: raw}})
		require.NoError(t, err)
		assert.False(t, ok, raw)
	}
}

func TestVerify_ZeroMinimumSkipsTime(t *testing.T) {
	c, _, _ := newTestChecker(Policy{TimeCheckEnabled: true, MinimumSeconds: 0})
	ok, err := c.Verify(context.Background(), Attempt{Params: map[string]string{}})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_NoSpamMarkSkipsTimeOnce(t *testing.T) {
	c, _, _ := newTestChecker(Policy{TimeCheckEnabled: true, MinimumSeconds: 3})
	ctx := context.Background()
	require.NoError(t, c.MarkNoSpam(ctx, testRequest()))

	marked, err := c.IsMarkedNoSpam(ctx, testRequest())
	require.NoError(t, err)
	assert.True(t, marked)

	a := Attempt{Request: testRequest(), Params: map[string]string{}}
	ok, err := c.Verify(ctx, a)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Verify(ctx, a)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClearNoSpam(t *testing.T) {
	c, _, _ := newTestChecker(allChecks())
	ctx := context.Background()
	require.NoError(t, c.MarkNoSpam(ctx, testRequest()))
	require.NoError(t, c.ClearNoSpam(ctx, testRequest()))

	marked, err := c.IsMarkedNoSpam(ctx, testRequest())
	require.NoError(t, err)
	assert.False(t, marked)
	assert.NoError(t, c.ClearNoSpam(ctx, Request{}))
}

func TestMarkNoSpam_NeedsSession(t *testing.T) {
	c, _, _ := newTestChecker(allChecks())
	assert.ErrorIs(t, c.MarkNoSpam(context.Background(), Request{}), ErrNoSession)
	marked, err := c.IsMarkedNoSpam(context.Background(), Request{})
	require.NoError(t, err)
	assert.False(t, marked)
}

func TestVerify_DuplicateTokenIsSingleUse(t *testing.T) {
	c, clock, _ := newTestChecker(Policy{DuplicateCheckEnabled: true})
	a := renderAndWait(t, c, clock, time.Second)

	ok, err := c.Verify(context.Background(), a)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Verify(context.Background(), a)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_DuplicateWithoutRender(t *testing.T) {
	c, _, _ := newTestChecker(Policy{DuplicateCheckEnabled: true})
	ok, err := c.Verify(context.Background(), Attempt{Request: testRequest()})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.Verify(context.Background(), Attempt{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_DuplicateTokenExpires(t *testing.T) {
	c, clock, _ := newTestChecker(Policy{DuplicateCheckEnabled: true})
	a := renderAndWait(t, c, clock, DefaultTokenTTL+time.Second)

	ok, err := c.Verify(context.Background(), a)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_Origin(t *testing.T) {
	c, clock, _ := newTestChecker(Policy{OriginCheckEnabled: true})
	a := renderAndWait(t, c, clock, 0)

	other := a
	other.UserAgent = "curl/8.0"
	ok, err := c.Verify(context.Background(), other)
	require.NoError(t, err)
	assert.False(t, ok)

	other = a
	other.Host = "elsewhere.test"
	ok, err = c.Verify(context.Background(), other)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.Verify(context.Background(), a)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_HooksVetoInOrder(t *testing.T) {
	c, _, _ := newTestChecker(Policy{})
	var calls []string
	c.OnVerify(func(ctx context.Context, a Attempt) bool {
		calls = append(calls, "first")
		return a.Params["message"] != "buy now"
	})
	c.OnVerify(func(ctx context.Context, a Attempt) bool {
		calls = append(calls, "second")
		return true
	})

	ok, err := c.Verify(context.Background(), Attempt{Params: map[string]string{"message": "hello"}})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"first", "second"}, calls)

	calls = nil
	ok, err = c.Verify(context.Background(), Attempt{Params: map[string]string{"message": "buy now"}})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"first"}, calls)
}

func TestVerify_HooksSkippedWhenBuiltinFails(t *testing.T) {
	c, _, _ := newTestChecker(Policy{HoneypotEnabled: true, HoneypotName: "hp"})
	called := false
	c.OnVerify(func(ctx context.Context, a Attempt) bool {
		called = true
		return true
	})
	ok, err := c.Verify(context.Background(), Attempt{Params: map[string]string{"hp": "bot"}})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, called)
}

type failingStore struct {
	*MemoryStore
}

func (f *failingStore) Consume(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("store down")
}

func TestVerify_StoreError(t *testing.T) {
	store := &failingStore{MemoryStore: NewMemoryStore()}
	c := NewChecker(store, staticPolicy(Policy{DuplicateCheckEnabled: true}))
	_, err := c.Verify(context.Background(), Attempt{Request: testRequest()})
	assert.Error(t, err)
}

func TestVerify_PolicyError(t *testing.T) {
	c := NewChecker(NewMemoryStore(), func(ctx context.Context) (Policy, error) {
		return Policy{}, errors.New("settings unavailable")
	})
	_, err := c.Verify(context.Background(), Attempt{})
	assert.Error(t, err)
	_, err = c.Render(context.Background(), Request{})
	assert.Error(t, err)
}
