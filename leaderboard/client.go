package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/stellar-assault/core"
)

// Client is a websocket Service that reconnects in the background
// While disconnected, subscribers see the last received list (or the cached one)
type Client struct {
	config *Config
	logger *log.Logger
	dialer *websocket.Dialer
	cache  *FileStore

	mu      sync.Mutex
	link    *link
	pending map[uint64]chan *message
	subs    map[int]func([]Entry)
	nextSub int
	last    []Entry
	lastID  string

	seq       atomic.Uint64
	connected atomic.Bool
	closed    atomic.Bool

	cancel context.CancelFunc
	done   chan struct{}
}

// NewClient creates a client; a nil config uses DefaultConfig
func NewClient(cfg *Config, logger *log.Logger) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = log.Default()
	}
	def := DefaultConfig()
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = def.ConnectTimeout
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = def.RetryInterval
	}
	return &Client{
		config: cfg,
		logger: logger,
		dialer: &websocket.Dialer{
			HandshakeTimeout: cfg.ConnectTimeout,
		},
		pending: make(map[uint64]chan *message),
		subs:    make(map[int]func([]Entry)),
	}
}

func (c *Client) Name() string {
	return "leaderboard"
}

func (c *Client) Dependencies() []string {
	return nil
}

// Init validates the endpoint and loads the cached list
func (c *Client) Init() error {
	u, err := url.Parse(c.config.URL)
	if err != nil {
		return fmt.Errorf("leaderboard url: %w", err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("leaderboard url %q: scheme must be ws or wss", c.config.URL)
	}

	if c.config.CachePath != "" {
		c.cache = NewFileStore(c.config.CachePath)
		entries, err := c.cache.Load()
		if err != nil {
			c.logger.Printf("leaderboard: cache: %v", err)
		} else if entries != nil {
			c.mu.Lock()
			c.last = entries
			c.mu.Unlock()
		}
	}
	return nil
}

// Start launches the connect/read loop bound to ctx
func (c *Client) Start(ctx context.Context) error {
	if c.closed.Load() {
		return ErrClosed
	}
	if c.done != nil {
		return nil
	}

	ctx, c.cancel = context.WithCancel(ctx)
	c.done = make(chan struct{})
	done := c.done
	core.Go(func() {
		defer close(done)
		c.run(ctx)
	})
	return nil
}

// Stop closes the connection, fails pending submissions and writes the cache
func (c *Client) Stop() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if c.cancel != nil {
		c.cancel()
	}

	c.mu.Lock()
	if c.link != nil {
		c.link.close()
	}
	c.mu.Unlock()

	if c.done != nil {
		<-c.done
	}

	if c.cache != nil {
		c.mu.Lock()
		last := cloneEntries(c.last)
		c.mu.Unlock()
		if err := c.cache.Save(last); err != nil {
			return err
		}
	}
	return nil
}

// Connected reports whether a link is currently up
func (c *Client) Connected() bool {
	return c.connected.Load()
}

// LastSubmission returns the id the server assigned to the most recent accepted score
func (c *Client) LastSubmission() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastID
}

func (c *Client) SubmitScore(ctx context.Context, name string, score int) bool {
	if c.closed.Load() {
		c.logger.Printf("leaderboard: submit %s: %v", name, ErrClosed)
		return false
	}

	seq := c.seq.Add(1)
	data, err := encodeMessage(&message{
		Type:  msgSubmit,
		Seq:   seq,
		Name:  SanitizeName(name),
		Score: ClampScore(score),
	})
	if err != nil {
		c.logger.Printf("leaderboard: encode submit: %v", err)
		return false
	}

	ch := make(chan *message, 1)
	c.mu.Lock()
	l := c.link
	if l == nil {
		c.mu.Unlock()
		c.logger.Printf("leaderboard: submit %s: %v", name, ErrNotConnected)
		return false
	}
	c.pending[seq] = ch
	c.mu.Unlock()

	if !l.send(data) {
		c.forget(seq)
		c.logger.Printf("leaderboard: submit %s: send queue unavailable", name)
		return false
	}

	select {
	case ack := <-ch:
		if ack.OK {
			c.mu.Lock()
			c.lastID = ack.ID
			c.mu.Unlock()
		}
		return ack.OK
	case <-ctx.Done():
		c.forget(seq)
		c.logger.Printf("leaderboard: submit %s: %v", name, ctx.Err())
		return false
	}
}

// SubscribeToScores delivers the last known list immediately (empty if none)
func (c *Client) SubscribeToScores(fn func([]Entry)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	last := cloneEntries(c.last)
	c.mu.Unlock()

	fn(last)

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

func (c *Client) run(ctx context.Context) {
	degraded := false
	for {
		err := c.connect(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			c.logger.Printf("leaderboard: %v", err)
			if !degraded {
				degraded = true
				c.mu.Lock()
				last, subs := cloneEntries(c.last), c.subscribersLocked()
				c.mu.Unlock()
				notify(subs, last)
			}
		} else {
			degraded = false
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.config.RetryInterval):
		}
	}
}

// connect runs one link until it drops; nil only when ctx ended it
func (c *Client) connect(ctx context.Context) error {
	dctx, cancel := context.WithTimeout(ctx, c.config.ConnectTimeout)
	conn, resp, err := c.dialer.DialContext(dctx, c.config.URL, nil)
	cancel()
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.config.URL, err)
	}

	l := newLink(conn, c.config.SendQueueSize, c.config.WriteTimeout)
	c.mu.Lock()
	c.link = l
	c.mu.Unlock()
	c.connected.Store(true)
	core.Go(l.writeLoop)

	stop := context.AfterFunc(ctx, l.close)
	defer stop()

	err = c.readLoop(l)

	c.connected.Store(false)
	c.mu.Lock()
	if c.link == l {
		c.link = nil
	}
	c.failPendingLocked()
	c.mu.Unlock()
	l.close()

	if ctx.Err() != nil {
		return nil
	}
	return fmt.Errorf("connection lost: %w", err)
}

func (c *Client) readLoop(l *link) error {
	for {
		_, data, err := l.conn.ReadMessage()
		if err != nil {
			if l.closed() {
				return errors.Join(err, ErrClosed)
			}
			return err
		}

		m, err := decodeMessage(data)
		if err != nil {
			c.logger.Printf("leaderboard: discarding malformed message: %v", err)
			continue
		}

		switch m.Type {
		case msgAck:
			c.resolve(m)
		case msgScores:
			c.receive(m.Entries)
		}
	}
}

func (c *Client) receive(entries []Entry) {
	sortEntries(entries)
	c.mu.Lock()
	c.last = entries
	subs := c.subscribersLocked()
	c.mu.Unlock()
	notify(subs, entries)
}

func (c *Client) resolve(m *message) {
	c.mu.Lock()
	ch := c.pending[m.Seq]
	delete(c.pending, m.Seq)
	c.mu.Unlock()
	if ch != nil {
		ch <- m
	}
}

func (c *Client) forget(seq uint64) {
	c.mu.Lock()
	delete(c.pending, seq)
	c.mu.Unlock()
}

func (c *Client) failPendingLocked() {
	for seq, ch := range c.pending {
		ch <- &message{Type: msgAck, Seq: seq}
		delete(c.pending, seq)
	}
}

func (c *Client) subscribersLocked() []func([]Entry) {
	subs := make([]func([]Entry), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	return subs
}
