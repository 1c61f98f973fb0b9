// Package preview serves a parsed diagram IR file's computed Layout over HTTP, live-reloading
// connected browsers when the file changes. Adapted from watch/watch.go: that package shelled
// out to Graphviz's `dot` binary to render a DOT file as SVG; this package has no renderer to
// shell out to (spec.md §1 makes the Renderer an external collaborator), so it calls this
// module's own layout.Compute directly and serves the resulting ir.Layout as formatted JSON.
package preview

import (
	"context"
	"encoding/json"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"os"
	"sync"
	"time"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/layout"
)

// Config configures a Previewer.
type Config struct {
	File   string    // IR JSON file to serve
	Port   string    // HTTP server port (use "0" for a random available port)
	Debug  bool      // enable debug logging
	Stdout io.Writer // output for status messages
	Stderr io.Writer // output for error logging
}

// Previewer watches an IR JSON file for changes and serves its computed Layout via HTTP. It
// provides an SSE endpoint that notifies connected browsers when the file changes.
type Previewer struct {
	file     string
	stdout   io.Writer
	logger   *slog.Logger
	server   *http.Server
	shutdown chan struct{}
	clients  sync.WaitGroup
}

//go:embed index.html
var indexHTML []byte

// New creates a Previewer that serves the given IR file's computed Layout on the specified port.
func New(cfg Config) (*Previewer, error) {
	_, err := os.Stat(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("file error: %v", err)
	}
	addr, err := netip.ParseAddrPort("127.0.0.1:" + cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q, must be in range 1-65535", cfg.Port)
	}

	handler := http.NewServeMux()
	server := http.Server{
		Addr:        addr.String(),
		Handler:     handler,
		ReadTimeout: 3 * time.Second,
		IdleTimeout: 120 * time.Second,
	}
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cfg.Stderr, &slog.HandlerOptions{Level: level}))
	pv := &Previewer{
		file:     cfg.File,
		stdout:   cfg.Stdout,
		logger:   logger,
		server:   &server,
		shutdown: make(chan struct{}),
	}
	handler.HandleFunc("GET /", pv.handleIndex)
	handler.HandleFunc("GET /events", pv.handleEvents)
	layoutHandler := http.TimeoutHandler(http.HandlerFunc(pv.handleLayout), 5*time.Second, "failed to compute layout in time")
	handler.Handle("GET /layout", layoutHandler)
	handler.Handle("GET /layout.json", layoutHandler)
	return pv, nil
}

// Watch starts the HTTP server and blocks until the context is cancelled.
func (pv *Previewer) Watch(ctx context.Context) error {
	ln, err := net.Listen("tcp", pv.server.Addr)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(pv.stdout, "previewing on http://%s\n", ln.Addr())

	go func() {
		<-ctx.Done()
		close(pv.shutdown)
		pv.logger.Debug("shutting down, notifying clients")
		pv.clients.Wait() // no timeout: localhost flushes complete nearly instantly
		ctxTimeout, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()
		if err := pv.server.Shutdown(ctxTimeout); err != nil && !errors.Is(err, context.Canceled) {
			pv.logger.Error("failed to shutdown", "error", err)
		}
	}()

	if err := pv.server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (pv *Previewer) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	_, err := w.Write(indexHTML)
	if err != nil {
		pv.logger.Error("failed to write index.html", "error", err)
	}
}

func (pv *Previewer) handleEvents(w http.ResponseWriter, r *http.Request) {
	pv.clients.Add(1)
	defer pv.clients.Done()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	pv.logger.Debug("client connected")

	keepAliveTicker := time.NewTicker(15 * time.Second)
	defer keepAliveTicker.Stop()
	pollTicker := time.NewTicker(500 * time.Millisecond)
	defer pollTicker.Stop()

	var lastMod time.Time
	var lastSize int64

	for {
		select {
		case <-r.Context().Done():
			pv.logger.Debug("client disconnected")
			return
		case <-pv.shutdown:
			_, _ = fmt.Fprint(w, "event: close\ndata: shutdown\n\n")
			flusher.Flush()
			pv.logger.Debug("closing connection to client")
			return
		case <-keepAliveTicker.C:
			_, _ = w.Write([]byte(": keep-alive\n"))
			pv.logger.Debug("sent keep-alive")
			flusher.Flush()
		case <-pollTicker.C:
			stat, err := os.Stat(pv.file)
			if err != nil {
				pv.logger.Error("stat failed", "error", err)
				return
			}
			if !stat.ModTime().Equal(lastMod) || stat.Size() != lastSize {
				pv.logger.Debug("change detected", "modtime", stat.ModTime(), "size", stat.Size())
				_, _ = fmt.Fprintf(w, "data: %s\nretry: 5000\n\n", stat.ModTime())
				flusher.Flush()
			}
			lastMod = stat.ModTime()
			lastSize = stat.Size()
		}
	}
}

func (pv *Previewer) handleLayout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := pv.generate(r.Context(), w)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprint(w, err.Error())
		return
	}
}

// generate reads the IR file, computes its Layout with the default theme and config, and writes
// it as formatted JSON. Unlike watch.go's generate (which shelled out to a `dot` subprocess),
// layout.Compute is a pure in-process call: no context cancellation is needed mid-computation,
// only around the read.
func (pv *Previewer) generate(ctx context.Context, w io.Writer) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	data, err := os.ReadFile(pv.file)
	if err != nil {
		return err
	}

	var g ir.Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return fmt.Errorf("invalid IR: %v", err)
	}

	l := layout.Compute(g, config.DefaultTheme(), config.Default())

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}
