package leaderboard

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/stellar-assault/core"
)

// ServerConfig configures a leaderboard server
type ServerConfig struct {
	Logger *log.Logger
	// Store persists the list across restarts (nil = memory only)
	Store *FileStore
	// Now stamps new entries (nil = time.Now)
	Now func() time.Time

	WriteTimeout  time.Duration
	SendQueueSize int
}

// Server accepts score submissions over websocket and broadcasts the list to every client
type Server struct {
	board    *Board
	store    *FileStore
	logger   *log.Logger
	upgrader websocket.Upgrader

	writeTimeout time.Duration
	queueSize    int

	mu     sync.Mutex
	links  map[*link]struct{}
	saveMu sync.Mutex

	unsubscribe func()
}

// NewServer loads the store and returns a ready server
func NewServer(cfg ServerConfig) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		board:  NewBoard(cfg.Now),
		store:  cfg.Store,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		writeTimeout: cfg.WriteTimeout,
		queueSize:    cfg.SendQueueSize,
		links:        make(map[*link]struct{}),
	}
	if s.queueSize <= 0 {
		s.queueSize = 64
	}

	if s.store != nil {
		entries, err := s.store.Load()
		if err != nil {
			return nil, err
		}
		s.board.Load(entries)
	}

	s.unsubscribe = s.board.Subscribe(func([]Entry) { s.broadcast() })
	return s, nil
}

// Entries returns the current list in rank order
func (s *Server) Entries() []Entry {
	return s.board.Entries()
}

// Clients returns the number of open connections
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.links)
}

// Handle upgrades the request and serves one client until it disconnects
func (s *Server) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}

	l := newLink(conn, s.queueSize, s.writeTimeout)
	core.Go(l.writeLoop)

	s.mu.Lock()
	s.links[l] = struct{}{}
	s.sendScoresLocked(l)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.links, l)
		s.mu.Unlock()
		l.close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		m, err := decodeMessage(data)
		if err != nil {
			s.logger.Printf("discarding malformed message from %s: %v", r.RemoteAddr, err)
			continue
		}
		if m.Type != msgSubmit {
			continue
		}

		ack := s.submit(m)
		out, err := encodeMessage(ack)
		if err != nil {
			s.logger.Printf("failed to marshal ack for %s: %v", r.RemoteAddr, err)
			continue
		}
		if !l.send(out) {
			return
		}
	}
}

// Close drops every client
func (s *Server) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.mu.Lock()
	for l := range s.links {
		l.close()
	}
	s.mu.Unlock()
}

func (s *Server) submit(m *message) *message {
	ack := &message{Type: msgAck, Seq: m.Seq}

	name := SanitizeName(m.Name)
	if name == "" || m.Score <= 0 {
		return ack
	}

	e := s.board.Add(name, m.Score)
	ack.ID = e.ID
	ack.OK = s.persist()
	return ack
}

func (s *Server) persist() bool {
	if s.store == nil {
		return true
	}
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if err := s.store.Save(s.board.Entries()); err != nil {
		s.logger.Printf("leaderboard: %v", err)
		return false
	}
	return true
}

// broadcast sends the freshest list; serialized by mu so clients never see an older list last
func (s *Server) broadcast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for l := range s.links {
		s.sendScoresLocked(l)
	}
}

func (s *Server) sendScoresLocked(l *link) {
	data, err := encodeMessage(&message{Type: msgScores, Entries: s.board.Entries()})
	if err != nil {
		s.logger.Printf("failed to marshal scores: %v", err)
		return
	}
	if !l.send(data) {
		s.logger.Printf("dropping scores frame for slow client")
	}
}
