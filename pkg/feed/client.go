package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/twam/circular-buffer/pkg/circular"
	"github.com/twam/circular-buffer/pkg/common"
	"github.com/twam/circular-buffer/pkg/utility"
)

const clientComponentName = "feed.client"

// Client consumes a JSON tick stream over a websocket and keeps a bounded
// replay window of the newest ticks per symbol. Late subscribers can read
// the replay window to warm up before live ticks arrive.
type Client struct {
	url         string
	replayDepth int

	conn *websocket.Conn

	ctx       context.Context
	ctxCancel context.CancelFunc

	replayMu sync.RWMutex
	replay   map[string]*circular.Buffer[common.Tick]

	subscribersMu sync.RWMutex
	subscribers   map[string][]chan common.Tick
}

func NewClient(url string, replayDepth int) *Client {
	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		url:         url,
		replayDepth: replayDepth,
		ctx:         ctx,
		ctxCancel:   cancel,
		replay:      make(map[string]*circular.Buffer[common.Tick]),
		subscribers: make(map[string][]chan common.Tick),
	}
}

func (c *Client) Connect() error {
	conn, _, err := websocket.DefaultDialer.DialContext(c.ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("unable to dial %q: %w", c.url, err)
	}
	c.conn = conn

	go c.read()
	return nil
}

func (c *Client) Close() {
	c.ctxCancel()
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Subscribe registers a live tick channel for one symbol. Ticks are
// dropped for subscribers that fall behind.
func (c *Client) Subscribe(symbol string) <-chan common.Tick {
	ch := make(chan common.Tick, 64)

	c.subscribersMu.Lock()
	c.subscribers[symbol] = append(c.subscribers[symbol], ch)
	c.subscribersMu.Unlock()

	return ch
}

// Replay returns a copy of the retained window for a symbol, oldest
// first. The copy is safe to use after further ticks arrive.
func (c *Client) Replay(symbol string) []common.Tick {
	c.replayMu.RLock()
	defer c.replayMu.RUnlock()

	buf, ok := c.replay[symbol]
	if !ok {
		return nil
	}
	return buf.Slice()
}

func (c *Client) read() {
	for {
		select {
		case <-c.ctx.Done():
			return
		default:
			var tick common.Tick
			if err := c.conn.ReadJSON(&tick); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					slog.Warn("cannot read tick", "error", err)
					time.Sleep(1 * time.Second) // prevent tight loop
				} else {
					slog.Debug("websocket closed", "error", err)
				}
				return
			}

			tick.Source = clientComponentName
			tick.SessionID = utility.GetSessionID()
			tick.TraceID = utility.CreateTraceID()

			slog.Debug("tick received", "symbol", tick.Symbol, "ask", tick.Ask, "bid", tick.Bid)

			c.retain(tick)
			c.dispatch(tick)
		}
	}
}

func (c *Client) retain(tick common.Tick) {
	c.replayMu.Lock()
	defer c.replayMu.Unlock()

	buf, ok := c.replay[tick.Symbol]
	if !ok {
		buf = circular.NewBuffer[common.Tick](c.replayDepth)
		c.replay[tick.Symbol] = buf
	}
	buf.PushBack(tick)
}

func (c *Client) dispatch(tick common.Tick) {
	c.subscribersMu.RLock()
	defer c.subscribersMu.RUnlock()

	for _, ch := range c.subscribers[tick.Symbol] {
		select {
		case ch <- tick:
		default: // drop if blocked
		}
	}
}
