package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
)

const (
	LanguageChinese = "chinese"
	LanguageEnglish = "english"

	DefaultTemperature = 0.7
)

// GenerateRequest describes one prompt generation.
type GenerateRequest struct {
	Description string
	TemplateID  *uint
	// Temperature is sent as given and must lie in [0,1].
	Temperature float64
	// Language is chinese or english. Empty leaves the choice to the
	// backend, which uses chinese.
	Language string
	// SavePrompt nil keeps the endpoint default: streamed generations are
	// saved, single-call generations are not.
	SavePrompt *bool
	PromptName string
}

// Validate rejects requests the backend would refuse, so they are never sent.
func (r GenerateRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return ErrDescriptionRequired
	}
	switch r.Language {
	case "", LanguageChinese, LanguageEnglish:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, r.Language)
	}
	if r.Temperature < 0 || r.Temperature > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidTemperature, r.Temperature)
	}
	return nil
}

func (r GenerateRequest) query() url.Values {
	q := url.Values{}
	q.Set("user_description", r.Description)
	q.Set("temperature", strconv.FormatFloat(r.Temperature, 'f', -1, 64))
	if r.Language != "" {
		q.Set("language", r.Language)
	}
	if r.TemplateID != nil {
		q.Set("template_id", strconv.FormatUint(uint64(*r.TemplateID), 10))
	}
	if r.SavePrompt != nil {
		q.Set("save_prompt", strconv.FormatBool(*r.SavePrompt))
	}
	if r.PromptName != "" {
		q.Set("prompt_name", r.PromptName)
	}
	return q
}

// Handlers receive the events of a Generation. They run on the
// generation's own goroutine, one at a time and in arrival order. Any of
// them may be nil. A handler that wants to end the generation calls Stop,
// never Cancel.
type Handlers struct {
	// OnChunk gets each fragment and the text accumulated so far.
	OnChunk func(fragment, accumulated string)
	// OnDone gets the full text and the id of the saved prompt, which is
	// empty when nothing was saved.
	OnDone func(full, savedID string)
	// OnError gets a *StreamError.
	OnError func(err error)
}

// Generation is one streaming request. Exactly one of OnDone and OnError
// fires unless the generation is cancelled first, in which case neither
// does.
type Generation struct {
	handlers Handlers
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}

	// deliverMu is held from the state check through the handler call.
	deliverMu sync.Mutex

	mu      sync.Mutex
	state   State
	text    string
	savedID string
	err     error
}

func newGeneration(ctx context.Context, h Handlers) *Generation {
	ctx, cancel := context.WithCancel(ctx)
	return &Generation{
		handlers: h,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
		state:    StateIdle,
	}
}

func (g *Generation) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Stop closes the connection and suppresses every later callback without
// waiting for a running handler. It is the form to use inside a handler.
// It is safe to call more than once and after the generation has finished.
func (g *Generation) Stop() {
	g.mu.Lock()
	if !g.state.Terminal() {
		g.state = StateCancelled
	}
	g.mu.Unlock()
	g.cancel()
}

// Cancel is Stop followed by a wait for a handler that is already running.
// Once it returns no handler runs again. It must not be called from a
// handler.
func (g *Generation) Cancel() {
	g.Stop()
	g.deliverMu.Lock()
	defer g.deliverMu.Unlock()
}

// Wait blocks until the generation has stopped and returns its final state.
func (g *Generation) Wait() State {
	<-g.done
	return g.State()
}

// Done is closed once the generation has stopped.
func (g *Generation) Done() <-chan struct{} {
	return g.done
}

// Result returns the accumulated text, the saved id and the failure, if
// any. It is complete only after Wait returns.
func (g *Generation) Result() (text, savedID string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.text, g.savedID, g.err
}

func (g *Generation) begin() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateIdle {
		return false
	}
	g.state = StateStreaming
	return true
}

// deliver applies update and moves to next, then runs call, all while the
// generation is still streaming. It reports whether call ran.
func (g *Generation) deliver(next State, update func(), call func()) bool {
	g.deliverMu.Lock()
	defer g.deliverMu.Unlock()

	g.mu.Lock()
	if g.state != StateStreaming {
		g.mu.Unlock()
		return false
	}
	update()
	g.state = next
	g.mu.Unlock()

	call()
	return true
}

// chunk delivers one fragment. It returns false once the generation is no
// longer streaming.
func (g *Generation) chunk(fragment, accumulated string) bool {
	ran := g.deliver(StateStreaming,
		func() { g.text = accumulated },
		func() {
			if g.handlers.OnChunk != nil {
				g.handlers.OnChunk(fragment, accumulated)
			}
		})
	return ran && g.State() == StateStreaming
}

func (g *Generation) complete(full, savedID string) {
	g.deliver(StateCompleted,
		func() {
			g.text = full
			g.savedID = savedID
		},
		func() {
			if g.handlers.OnDone != nil {
				g.handlers.OnDone(full, savedID)
			}
		})
}

func (g *Generation) fail(partial string, err error) {
	streamErr := &StreamError{Partial: partial, Err: err}
	g.deliver(StateFailed,
		func() {
			g.text = partial
			g.err = streamErr
		},
		func() {
			if g.handlers.OnError != nil {
				g.handlers.OnError(streamErr)
			}
		})
}

// GenerateStream opens the streaming generation endpoint and reports its
// events through h. It returns as soon as the request is under way. An
// invalid request is rejected with an error and nothing is sent.
func (c *Client) GenerateStream(ctx context.Context, req GenerateRequest, h Handlers) (*Generation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	g := newGeneration(ctx, h)
	go c.runGeneration(g, req.query())
	return g, nil
}

func (c *Client) runGeneration(g *Generation, query url.Values) {
	defer close(g.done)
	defer g.cancel()

	if !g.begin() {
		return
	}

	req, err := http.NewRequestWithContext(g.ctx, http.MethodGet,
		c.url("/generate-prompt/stream/direct")+"?"+query.Encode(), nil)
	if err != nil {
		g.fail("", fmt.Errorf("failed to create request: %w", err))
		return
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.streamClient.Do(req)
	if err != nil {
		g.fail("", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.fail("", decodeAPIError(resp))
		return
	}

	var (
		acc     strings.Builder
		savedID string
	)
	dec := newEventDecoder(resp.Body)
	for {
		ev, err := dec.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = ErrStreamClosed
			}
			g.fail(acc.String(), err)
			return
		}

		switch ev.Name {
		case "", "message":
			if ev.Data == "" {
				continue
			}
			acc.WriteString(ev.Data)
			if !g.chunk(ev.Data, acc.String()) {
				return
			}
		case "saved":
			savedID = ev.Data
		case "done":
			g.complete(acc.String(), savedID)
			return
		case "error":
			g.fail(acc.String(), &ServerError{Message: ev.Data})
			return
		}
	}
}

// StreamEvent is one item of the channel returned by Stream. The last item
// has Done or Err set.
type StreamEvent struct {
	Chunk       string
	Accumulated string
	Done        bool
	SavedID     string
	Err         error
}

// Stream is GenerateStream with the events delivered on a channel. The
// channel is closed after the terminal event, or without one once the
// generation is cancelled. Cancel may be called from the goroutine that
// reads the channel.
func (c *Client) Stream(ctx context.Context, req GenerateRequest) (<-chan StreamEvent, *Generation, error) {
	ch := make(chan StreamEvent, 16)

	var g *Generation
	send := func(ev StreamEvent) {
		if g.ctx.Err() != nil {
			return
		}
		select {
		case ch <- ev:
		case <-g.ctx.Done():
		}
	}

	if err := req.Validate(); err != nil {
		return nil, nil, err
	}
	g = newGeneration(ctx, Handlers{
		OnChunk: func(fragment, accumulated string) {
			send(StreamEvent{Chunk: fragment, Accumulated: accumulated})
		},
		OnDone: func(full, savedID string) {
			send(StreamEvent{Accumulated: full, Done: true, SavedID: savedID})
		},
		OnError: func(err error) {
			send(StreamEvent{Err: err})
		},
	})

	go c.runGeneration(g, req.query())
	go func() {
		<-g.done
		close(ch)
	}()
	return ch, g, nil
}
