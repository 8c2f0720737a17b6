// Package session is the thin connection layer over the codec: it frames
// lines, runs the version handshake, pumps inbound lines through the
// registry and keeps an outbound queue. It never interprets game
// messages; decoded traffic goes straight to the installed handler.
package session

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/nm-morais/go-gamewire/configs"
	"github.com/nm-morais/go-gamewire/internal/wireio"
	"github.com/nm-morais/go-gamewire/pkg/errors"
	"github.com/nm-morais/go-gamewire/pkg/logs"
	"github.com/nm-morais/go-gamewire/pkg/message"
	"github.com/nm-morais/go-gamewire/pkg/registry"
	"github.com/panjf2000/ants"
	"github.com/sirupsen/logrus"
)

const sessionCaller = "Session"

// Handler receives every successfully decoded inbound message. Handlers
// run on the shared pool; they must not block indefinitely.
type Handler func(s *Session, msg message.Message)

type Session struct {
	conf    configs.SessionConfig
	conn    *wireio.LineConn
	reg     *registry.Registry
	pool    *ants.Pool
	handler Handler
	logger  *logrus.Logger

	out *lineQueue

	// set once by Handshake before the pumps start, read-only after
	negotiatedVersion int

	closeOnce *sync.Once
	finished  chan interface{}
}

func New(conn net.Conn, conf configs.SessionConfig, pool *ants.Pool, handler Handler) *Session {
	capacity := conf.OutQueueCapacity
	if capacity == 0 {
		capacity = configs.Default().OutQueueCapacity
	}
	return &Session{
		conf:      conf,
		conn:      wireio.NewLineConn(conn),
		reg:       registry.New(),
		pool:      pool,
		handler:   handler,
		logger:    logs.NewLogger(sessionCaller),
		out:       newLineQueue(capacity),
		closeOnce: &sync.Once{},
		finished:  make(chan interface{}),
	}
}

// Handshake sends the local Version and blocks for the peer's, then
// settles on the lower of the two revisions. Must complete before Start.
func (s *Session) Handshake() errors.Error {
	local := message.NewVersion(s.conf.LocalVersion, s.conf.LocalVersionString, s.conf.Build, s.conf.Locale)
	if err := s.conn.WriteLine(local.Encode()); err != nil {
		return errors.NonFatalError(errors.ErrTransport, err.Error(), sessionCaller)
	}

	if s.conf.HandshakeTimeout > 0 {
		if err := s.conn.Conn().SetReadDeadline(time.Now().Add(s.conf.HandshakeTimeout)); err != nil {
			s.logger.Error(err)
		}
	}
	line, err := s.conn.ReadLine()
	if err != nil {
		return errors.NonFatalError(errors.ErrTransport, err.Error(), sessionCaller)
	}
	if err := s.conn.Conn().SetReadDeadline(time.Time{}); err != nil {
		s.logger.Error(err)
	}

	msg, decErr := s.reg.Decode(line)
	if decErr != nil {
		return decErr
	}
	peer, ok := msg.(*message.Version)
	if !ok {
		return errors.MalformedPayloadError(
			fmt.Sprintf("expected version handshake, got type %d", msg.Type()), sessionCaller)
	}

	s.negotiatedVersion = s.conf.LocalVersion
	if peer.VersionNumber < s.negotiatedVersion {
		s.negotiatedVersion = peer.VersionNumber
	}
	s.logger.Infof("Peer %s runs %s; negotiated version %d",
		s.conn.Conn().RemoteAddr(), peer.VersionString, s.negotiatedVersion)
	return nil
}

func (s *Session) NegotiatedVersion() int {
	return s.negotiatedVersion
}

// CanSend consults the per-type version gate against the negotiated
// revision. The codec itself never enforces this; the session does.
func (s *Session) CanSend(id message.ID) bool {
	return message.VersionInRange(id, s.negotiatedVersion)
}

// Send encodes and queues a message for the writer goroutine. Types the
// peer cannot parse are refused; callers substitute an older-equivalent
// shape or plain text instead.
func (s *Session) Send(msg message.Message) errors.Error {
	if !s.CanSend(msg.Type()) {
		return errors.VersionUnsupportedError(
			fmt.Sprintf("type %d outside peer version %d", msg.Type(), s.negotiatedVersion), sessionCaller)
	}
	if !s.out.Put(msg.Encode()) {
		return errors.NonFatalError(errors.ErrTransport, "session closed", sessionCaller)
	}
	return nil
}

// Start spawns the read and write pumps. Call after a successful
// Handshake.
func (s *Session) Start() {
	go s.readPump()
	go s.writePump()
}

func (s *Session) readPump() {
	for {
		line, err := s.conn.ReadLine()
		if err != nil {
			s.logger.Infof("Read loop finished: %s", err)
			s.Close()
			return
		}
		msg, decErr := s.reg.Decode(line)
		if decErr != nil {
			// already logged by the registry; a bad line never
			// costs the session
			continue
		}
		s.deliver(msg)
	}
}

func (s *Session) deliver(msg message.Message) {
	if s.handler == nil {
		return
	}
	if s.pool == nil {
		s.handler(s, msg)
		return
	}
	if err := s.pool.Submit(func() { s.handler(s, msg) }); err != nil {
		s.logger.Errorf("Could not submit handler task: %s", err)
		s.handler(s, msg)
	}
}

func (s *Session) writePump() {
	for {
		line, ok := s.out.Get()
		if !ok {
			return
		}
		if err := s.conn.WriteLine(line); err != nil {
			s.logger.Infof("Write loop finished: %s", err)
			s.Close()
			return
		}
	}
}

// Finished closes when the session is torn down.
func (s *Session) Finished() <-chan interface{} {
	return s.finished
}

func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.out.Close()
		if err := s.conn.Close(); err != nil {
			s.logger.Errorf("Error closing connection: %s", err)
		}
		close(s.finished)
	})
}
