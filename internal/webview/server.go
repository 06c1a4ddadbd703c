// Package webview shows the render cycle in a browser: frames are pushed to
// every connected websocket client as PNG, input comes back as JSON.
package webview

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	mandel "github.com/marben/mandelview"
)

//go:embed static
var staticFiles embed.FS

// Server is both the EventSource and the Presenter of a render cycle.
type Server struct {
	queue          *mandel.EventQueue
	writeTimeout   time.Duration
	originPatterns []string

	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte // latest PNG frame, replayed to new clients
}

type Option func(*Server)

// WithWriteTimeout bounds a single frame write to one client.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Server) { s.writeTimeout = d }
}

// WithOriginPatterns sets the cross-origin hosts allowed to connect.
func WithOriginPatterns(patterns ...string) Option {
	return func(s *Server) { s.originPatterns = patterns }
}

// WithQueueSize sets how many input events may wait for the next tick.
func WithQueueSize(n int) Option {
	return func(s *Server) { s.queue = mandel.NewEventQueue(n) }
}

func NewServer(opts ...Option) *Server {
	s := &Server{
		queue:        mandel.NewEventQueue(256),
		writeTimeout: 5 * time.Second,
		clients:      make(map[*client]struct{}),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// client is one websocket connection. frames holds at most the newest
// unsent frame so a slow client skips frames instead of stalling Present.
type client struct {
	conn   *websocket.Conn
	frames chan []byte
}

func (c *client) offer(frame []byte) {
	select {
	case <-c.frames:
	default:
	}
	select {
	case c.frames <- frame:
	default:
	}
}

// PollEvent implements mandel.EventSource.
func (s *Server) PollEvent() (mandel.Event, bool) {
	return s.queue.PollEvent()
}

// Present implements mandel.Presenter. It never waits on the network.
func (s *Server) Present(r *mandel.Raster) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.Image()); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	frame := buf.Bytes()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = frame
	for c := range s.clients {
		c.offer(frame)
	}
	return nil
}

// Handler serves the viewer page at / and the websocket endpoint at /ws.
func (s *Server) Handler() http.Handler {
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.Handle("/", http.FileServer(http.FS(static)))
	return mux
}

// ListenAndServe serves Handler on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	log.Printf("listening on http://%s", addr)

	select {
	case err := <-errc:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.originPatterns,
	})
	if err != nil {
		log.Printf("webview: accept %s: %v", r.RemoteAddr, err)
		return
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	c := s.addClient(conn)
	defer s.removeClient(c)
	log.Printf("webview: client connected: %s", r.RemoteAddr)

	go s.writeLoop(ctx, c)
	s.readLoop(ctx, c, r.RemoteAddr)
	log.Printf("webview: client gone: %s", r.RemoteAddr)
}

func (s *Server) addClient(conn *websocket.Conn) *client {
	c := &client{conn: conn, frames: make(chan []byte, 1)}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c] = struct{}{}
	if s.last != nil {
		c.offer(s.last)
	}
	return c
}

func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()
}

func (s *Server) clientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) readLoop(ctx context.Context, c *client, remote string) {
	for {
		var m message
		if err := wsjson.Read(ctx, c.conn, &m); err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			default:
				if ctx.Err() == nil {
					log.Printf("webview: read %s: %v", remote, err)
				}
			}
			return
		}

		ev, err := m.event()
		if err != nil {
			log.Printf("webview: %s: %v", remote, err)
			continue
		}
		if !s.queue.Push(ev) {
			log.Printf("webview: event queue full, dropped %T from %s", ev, remote)
		}
	}
}

func (s *Server) writeLoop(ctx context.Context, c *client) {
	for {
		select {
		case <-ctx.Done():
			return
		case frame := <-c.frames:
			wctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
			err := c.conn.Write(wctx, websocket.MessageBinary, frame)
			cancel()
			if err != nil {
				if ctx.Err() == nil {
					log.Printf("webview: write frame: %v", err)
				}
				// Unblocks readLoop, which removes the client.
				c.conn.CloseNow()
				return
			}
		}
	}
}

var (
	_ mandel.EventSource = (*Server)(nil)
	_ mandel.Presenter   = (*Server)(nil)
)
