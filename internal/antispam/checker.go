// Package antispam implements the heuristics applied to public form submits:
// a honeypot field, a minimum fill-in time, a single-use duplicate token and
// an origin fingerprint, followed by caller supplied veto hooks.
package antispam

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Hidden field names issued by Render.
const (
	FieldTime = "__UATIME"
	FieldHome = "__UAHOME"
	FieldHash = "__UAHASH"
)

const (
	checkHoneypot  = "honeypot"
	checkTime      = "time"
	checkDuplicate = "duplicate"
	checkOrigin    = "origin"
	checkHook      = "hook"
	markNoSpam     = "nospam"

	DefaultTokenTTL = 2 * time.Hour
)

var ErrNoSession = errors.New("anti-spam session is required")

// Policy selects which checks run. A disabled check always passes.
type Policy struct {
	HoneypotEnabled       bool
	HoneypotName          string
	TimeCheckEnabled      bool
	MinimumSeconds        int
	DuplicateCheckEnabled bool
	OriginCheckEnabled    bool
}

type PolicyFunc func(ctx context.Context) (Policy, error)

// Request identifies the visitor and the form being rendered or submitted.
type Request struct {
	SessionID  string
	FormHandle string
	Host       string
	UserAgent  string
}

// Attempt is a submit to verify. Params holds the posted body values.
type Attempt struct {
	Request
	Params map[string]string
}

// Hook may veto an attempt that passed the built-in checks by returning false.
type Hook func(ctx context.Context, a Attempt) bool

type Checker struct {
	store  TokenStore
	policy PolicyFunc
	now    func() time.Time
	ttl    time.Duration
	log    *zap.Logger

	mu    sync.RWMutex
	hooks []Hook
}

type Option func(*Checker)

func WithClock(now func() time.Time) Option {
	return func(c *Checker) { c.now = now }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Checker) { c.log = log }
}

func WithTokenTTL(ttl time.Duration) Option {
	return func(c *Checker) { c.ttl = ttl }
}

func NewChecker(store TokenStore, policy PolicyFunc, opts ...Option) *Checker {
	c := &Checker{
		store:  store,
		policy: policy,
		now:    time.Now,
		ttl:    DefaultTokenTTL,
		log:    zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// OnVerify registers a veto hook. Hooks run in registration order.
func (c *Checker) OnVerify(h Hook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, h)
}

// Render issues the hidden fields for a form and stores the duplicate token.
func (c *Checker) Render(ctx context.Context, r Request) (map[string]string, error) {
	p, err := c.policy(ctx)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]string)
	if p.HoneypotEnabled && p.HoneypotName != "" {
		fields[p.HoneypotName] = ""
	}
	if p.TimeCheckEnabled && p.MinimumSeconds > 0 {
		fields[FieldTime] = strconv.FormatInt(c.now().Unix(), 10)
	}
	if p.OriginCheckEnabled {
		fields[FieldHome] = Hash(r.Host)
		fields[FieldHash] = Hash(r.UserAgent)
	}
	if p.DuplicateCheckEnabled {
		if r.SessionID == "" {
			return nil, ErrNoSession
		}
		key := Key(r.SessionID, r.FormHandle, checkDuplicate)
		if err := c.store.Set(ctx, key, uuid.NewString(), c.ttl); err != nil {
			return nil, fmt.Errorf("store duplicate token: %w", err)
		}
	}
	return fields, nil
}

// Verify runs the enabled checks in order and stops at the first failure.
// The returned error is reserved for store failures; a spam verdict is false.
func (c *Checker) Verify(ctx context.Context, a Attempt) (bool, error) {
	p, err := c.policy(ctx)
	if err != nil {
		return false, err
	}
	failed, err := c.firstFailure(ctx, p, a)
	if err != nil {
		return false, err
	}
	if failed != "" {
		c.log.Info("submission rejected as spam",
			zap.String("form", a.FormHandle),
			zap.String("check", failed),
		)
		return false, nil
	}
	return true, nil
}

func (c *Checker) firstFailure(ctx context.Context, p Policy, a Attempt) (string, error) {
	if p.HoneypotEnabled && p.HoneypotName != "" {
		if a.Params[p.HoneypotName] != "" {
			return checkHoneypot, nil
		}
	}

	if p.TimeCheckEnabled && p.MinimumSeconds > 0 {
		marked, err := c.consumeNoSpam(ctx, a.Request)
		if err != nil {
			return "", err
		}
		if !marked && !c.verifyTime(a.Params[FieldTime], p.MinimumSeconds) {
			return checkTime, nil
		}
	}

	if p.DuplicateCheckEnabled {
		if a.SessionID == "" {
			return checkDuplicate, nil
		}
		_, ok, err := c.store.Consume(ctx, Key(a.SessionID, a.FormHandle, checkDuplicate))
		if err != nil {
			return "", fmt.Errorf("consume duplicate token: %w", err)
		}
		if !ok {
			return checkDuplicate, nil
		}
	}

	if p.OriginCheckEnabled {
		if a.Params[FieldHome] != Hash(a.Host) || a.Params[FieldHash] != Hash(a.UserAgent) {
			return checkOrigin, nil
		}
	}

	c.mu.RLock()
	hooks := append([]Hook(nil), c.hooks...)
	c.mu.RUnlock()
	for _, h := range hooks {
		if !h(ctx, a) {
			return checkHook, nil
		}
	}
	return "", nil
}

func (c *Checker) verifyTime(raw string, minimum int) bool {
	rendered, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return false
	}
	return c.now().Unix()-rendered > int64(minimum)
}

// MarkNoSpam records that the visitor already passed verification for the
// form, so the next attempt skips the elapsed-time check once.
func (c *Checker) MarkNoSpam(ctx context.Context, r Request) error {
	if r.SessionID == "" {
		return ErrNoSession
	}
	return c.store.Set(ctx, Key(r.SessionID, r.FormHandle, markNoSpam), "1", c.ttl)
}

// IsMarkedNoSpam reports the marker without consuming it.
func (c *Checker) IsMarkedNoSpam(ctx context.Context, r Request) (bool, error) {
	if r.SessionID == "" {
		return false, nil
	}
	_, ok, err := c.store.Get(ctx, Key(r.SessionID, r.FormHandle, markNoSpam))
	return ok, err
}

// ClearNoSpam drops the marker once the submission is saved.
func (c *Checker) ClearNoSpam(ctx context.Context, r Request) error {
	_, err := c.consumeNoSpam(ctx, r)
	return err
}

func (c *Checker) consumeNoSpam(ctx context.Context, r Request) (bool, error) {
	if r.SessionID == "" {
		return false, nil
	}
	_, ok, err := c.store.Consume(ctx, Key(r.SessionID, r.FormHandle, markNoSpam))
	return ok, err
}
