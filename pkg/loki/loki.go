// Package loki is a minimal batching push client for the Grafana Loki HTTP
// API, used as a logrus hook target.
package loki

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Logger receives the pusher's own failures; they must not be routed back
// through the pusher.
type Logger interface {
	Error(msg string, args ...any)
}

type Config struct {
	// URL of the push endpoint, e.g. https://example.grafana.net/loki/api/v1/push
	URL string `validate:"required,url"`

	// Username and Password enable basic auth when both are set.
	Username string
	Password string

	// Labels are attached to every pushed stream.
	Labels map[string]string

	// BatchMaxSize is the number of buffered lines that forces a push.
	BatchMaxSize int `validate:"gte=1"`

	// BatchMaxWait is the longest a buffered line waits before a push.
	BatchMaxWait time.Duration `validate:"gte=1"`
}

func (cfg *Config) setDefaults() {
	if cfg.BatchMaxSize == 0 {
		cfg.BatchMaxSize = 1000
	}
	if cfg.BatchMaxWait == 0 {
		cfg.BatchMaxWait = 5 * time.Second
	}
	if cfg.Labels == nil {
		cfg.Labels = map[string]string{}
	}
}

type LogEntry struct {
	Level   string `json:"level"`
	Message string `json:"msg"`
	Caller  string `json:"caller"`
}

type pushRequest struct {
	Streams []stream `json:"streams"`
}

type stream struct {
	Stream map[string]string `json:"stream"`
	Values [][2]string       `json:"values"`
}

type Pusher struct {
	config    Config
	client    *http.Client
	entries   chan LogEntry
	batch     [][2]string
	cancel    context.CancelFunc
	ctx       context.Context
	waitGroup sync.WaitGroup
	logger    Logger
}

func New(cfg Config, logger Logger) (*Pusher, error) {

	cfg.setDefaults()
	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pusher{
		config:  cfg,
		client:  &http.Client{},
		entries: make(chan LogEntry, cfg.BatchMaxSize),
		batch:   make([][2]string, 0, cfg.BatchMaxSize),
		ctx:     ctx,
		cancel:  cancel,
		logger:  logger,
	}

	p.waitGroup.Add(1)
	go p.run()
	return p, nil
}

func (p *Pusher) Push(entry LogEntry) error {
	select {
	case p.entries <- entry:
		return nil
	case <-p.ctx.Done():
		return p.ctx.Err()
	}
}

// Stop flushes any buffered lines and shuts the pusher down.
func (p *Pusher) Stop() {
	p.cancel()
	p.waitGroup.Wait()
}

func (p *Pusher) run() {
	defer p.waitGroup.Done()

	ticker := time.NewTicker(p.config.BatchMaxWait)
	defer ticker.Stop()

	flush := func() {
		if len(p.batch) == 0 {
			return
		}
		if err := p.send(); err != nil {
			p.logger.Error("failed to send logs to loki", "error", err)
		}
		p.batch = p.batch[:0]
	}
	defer flush()

	for {
		select {
		case <-p.ctx.Done():
			p.drain()
			return
		case entry := <-p.entries:
			p.batch = append(p.batch, encode(entry))
			if len(p.batch) >= p.config.BatchMaxSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

// drain empties the entry channel so lines pushed just before Stop are not
// lost. The deferred flush sends them.
func (p *Pusher) drain() {
	for {
		select {
		case entry := <-p.entries:
			p.batch = append(p.batch, encode(entry))
		default:
			return
		}
	}
}

func encode(entry LogEntry) [2]string {
	line, err := json.Marshal(entry)
	if err != nil {
		return [2]string{}
	}
	return [2]string{strconv.FormatInt(time.Now().UnixNano(), 10), string(line)}
}

func (p *Pusher) send() error {

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)

	request := pushRequest{Streams: []stream{{
		Stream: p.config.Labels,
		Values: p.batch,
	}}}
	if err := json.NewEncoder(gz).Encode(request); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, p.config.URL, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	if p.config.Username != "" && p.config.Password != "" {
		req.SetBasicAuth(p.config.Username, p.config.Password)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("received unexpected response code from Loki: %s, body: %s", resp.Status, string(body))
	}

	return nil
}
