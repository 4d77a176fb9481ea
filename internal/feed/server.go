package feed

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"sync"
	"time"
)

// acceptBackoff is the pause after a failed Accept that is not a close.
const acceptBackoff = 50 * time.Millisecond

// Server accepts newline-delimited JSON subscribers over TCP.
type Server struct {
	Addr string
	Hub  *Hub

	mu     sync.Mutex
	ln     net.Listener
	closed bool
}

func NewServer(addr string, hub *Hub) *Server {
	return &Server{Addr: addr, Hub: hub}
}

// Run blocks accepting connections until Close is called.
func (s *Server) Run() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts on ln until Close. If Close already ran, ln is closed and
// Serve returns at once.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ln.Close()
	}
	s.ln = ln
	s.mu.Unlock()
	slog.Info("feed listening", "addr", ln.Addr().String())

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			slog.Warn("feed accept", "err", err)
			time.Sleep(acceptBackoff)
			continue
		}

		s.Hub.Add(conn)
		s.Hub.welcome(conn)
		slog.Debug("feed client connected", "remote", conn.RemoteAddr().String())

		go func(c net.Conn) {
			defer func() {
				s.Hub.Remove(c)
				slog.Debug("feed client disconnected", "remote", c.RemoteAddr().String())
			}()

			// subscribers never send anything meaningful
			sc := bufio.NewScanner(c)
			for sc.Scan() {
			}
		}(conn)
	}
}

func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}
