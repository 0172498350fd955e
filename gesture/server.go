package gesture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"slices"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/balance/constants"
	"github.com/lixenwraith/balance/core"
	"github.com/lixenwraith/balance/events"
	"github.com/lixenwraith/balance/status"
)

// Config holds bridge settings
type Config struct {
	Addr           string
	MinConfidence  float64
	AllowedOrigins []string

	// Metrics receives accepted, dropped and rejected counts; may be nil
	Metrics *status.Registry
}

// Server accepts classifier labels over HTTP and websocket and queues them for the game loop
type Server struct {
	cfg      Config
	queue    *events.EventQueue
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]*Client
	phase   string

	httpSrv  *http.Server
	listener net.Listener
}

// NewServer creates a bridge pushing accepted labels into queue
func NewServer(cfg Config, queue *events.EventQueue) *Server {
	if cfg.Addr == "" {
		cfg.Addr = constants.DefaultGestureAddr
	}
	s := &Server{
		cfg:     cfg,
		queue:   queue,
		clients: make(map[string]*Client),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(s.cfg.AllowedOrigins) == 0 {
		return true
	}
	return slices.Contains(s.cfg.AllowedOrigins, "*") || slices.Contains(s.cfg.AllowedOrigins, origin)
}

// Router builds the HTTP handler
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log.Default(), NoColor: true}))
	r.Use(middleware.Recoverer)

	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Route("/v1", func(sub chi.Router) {
		sub.Post("/gesture", s.handleGesture)
	})
	r.Get("/ws", s.handleWS)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleGesture(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, constants.GestureMaxMessage))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	err = s.submit(body)
	switch {
	case err == nil:
		writeJSON(w, http.StatusAccepted, map[string]bool{"accepted": true})
	case errors.Is(err, ErrLowConfidence):
		writeJSON(w, http.StatusAccepted, map[string]bool{"accepted": false})
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
}

// submit validates a message and queues it when confident enough
func (s *Server) submit(data []byte) error {
	m, side, err := DecodeMessage(data)
	if err != nil {
		s.cfg.Metrics.Inc(status.GestureRejected)
		return err
	}
	if m.Confidence < s.cfg.MinConfidence {
		s.cfg.Metrics.Inc(status.GestureDropped)
		return fmt.Errorf("%w: %.2f", ErrLowConfidence, m.Confidence)
	}
	s.queue.Push(Event(side, m.Label))
	s.cfg.Metrics.Inc(status.GestureAccepted)
	return nil
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("gesture: upgrade failed: %v", err)
		return
	}
	c := newClient(conn, uuid.NewString())
	s.register(c)

	// Hijacked connections bypass Recoverer
	core.Go(c.writePump)
	core.Go(func() { c.readPump(s) })
}

func (s *Server) register(c *Client) {
	s.mu.Lock()
	s.clients[c.id] = c
	phase := s.phase
	n := len(s.clients)
	s.mu.Unlock()

	log.Printf("gesture: client %s connected (%d total)", c.id, n)
	if phase != "" {
		s.sendTo(c, phase)
	}
}

func (s *Server) unregister(c *Client) {
	s.mu.Lock()
	if _, ok := s.clients[c.id]; ok {
		delete(s.clients, c.id)
		close(c.send)
	}
	n := len(s.clients)
	s.mu.Unlock()

	log.Printf("gesture: client %s disconnected (%d total)", c.id, n)
}

// ClientCount returns the number of connected websocket clients
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func phaseFrame(phase string) []byte {
	data, _ := json.Marshal(PhaseMessage{Type: "phase", Phase: phase})
	return data
}

func (s *Server) sendTo(c *Client, phase string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.clients[c.id]; !ok {
		return
	}
	select {
	case c.send <- phaseFrame(phase):
	default:
	}
}

// BroadcastPhase tells every client the current phase. Slow clients miss frames rather than block the loop
func (s *Server) BroadcastPhase(phase string) {
	frame := phaseFrame(phase)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = phase
	for _, c := range s.clients {
		select {
		case c.send <- frame:
		default:
		}
	}
}

// Start listens on the configured address and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("gesture listen %s: %w", s.cfg.Addr, err)
	}
	s.listener = ln
	s.httpSrv = &http.Server{Handler: s.Router()}

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("gesture: serve: %v", err)
		}
	}()
	log.Printf("gesture: listening on %s", ln.Addr())
	return nil
}

// Addr returns the bound address, useful with port 0
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.cfg.Addr
	}
	return s.listener.Addr().String()
}

// Shutdown stops the HTTP server and drops websocket clients
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	err := s.httpSrv.Shutdown(ctx)

	s.mu.RLock()
	for _, c := range s.clients {
		c.conn.Close()
	}
	s.mu.RUnlock()
	return err
}
