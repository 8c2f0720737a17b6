package session

import (
	"testing"
	"time"

	"github.com/nm-morais/go-gamewire/configs"
	"github.com/nm-morais/go-gamewire/pkg/errors"
	"github.com/nm-morais/go-gamewire/pkg/message"
	"github.com/panjf2000/ants"
)

func testConf(version int, verString string) configs.SessionConfig {
	conf := configs.Default()
	conf.LocalVersion = version
	conf.LocalVersionString = verString
	conf.HandshakeTimeout = 5 * time.Second
	conf.OutQueueCapacity = 16
	return conf
}

// starts a connected server/client session pair over loopback TCP
func sessionPair(t *testing.T, serverConf, clientConf configs.SessionConfig,
	serverHandler, clientHandler Handler) (*Session, *Session) {

	listener, lErr := Listen("localhost:0")
	if lErr != nil {
		t.Errorf("listen failed: %s", lErr.Reason())
		t.FailNow()
	}

	serverChan := make(chan *Session, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			t.Errorf("accept failed: %s", err)
			return
		}
		s := New(conn, serverConf, nil, serverHandler)
		if hErr := s.Handshake(); hErr != nil {
			t.Errorf("server handshake failed: %s", hErr.Reason())
			return
		}
		s.Start()
		serverChan <- s
	}()

	conn, dErr := Dial(listener.Addr().String(), 3*time.Second)
	if dErr != nil {
		t.Errorf("dial failed: %s", dErr.Reason())
		t.FailNow()
	}
	pool, err := ants.NewPool(4)
	if err != nil {
		t.Errorf("pool creation failed: %s", err)
		t.FailNow()
	}
	client := New(conn, clientConf, pool, clientHandler)
	if hErr := client.Handshake(); hErr != nil {
		t.Errorf("client handshake failed: %s", hErr.Reason())
		t.FailNow()
	}
	client.Start()

	var server *Session
	select {
	case server = <-serverChan:
	case <-time.After(5 * time.Second):
		t.Error("server session never came up")
		t.FailNow()
	}
	listener.Close()
	return server, client
}

func Test_handshakeNegotiatesDown(t *testing.T) {
	server, client := sessionPair(t,
		testConf(2000, "2.0.00"), testConf(1200, "1.2.00"), nil, nil)
	defer server.Close()
	defer client.Close()

	if server.NegotiatedVersion() != 1200 {
		t.Errorf("server negotiated %d, expected 1200", server.NegotiatedVersion())
	}
	if client.NegotiatedVersion() != 1200 {
		t.Errorf("client negotiated %d, expected 1200", client.NegotiatedVersion())
	}
}

func Test_versionGateBlocksNewerShapes(t *testing.T) {
	server, client := sessionPair(t,
		testConf(2000, "2.0.00"), testConf(1200, "1.2.00"), nil, nil)
	defer server.Close()
	defer client.Close()

	if server.CanSend(message.GameServerTextID) {
		t.Error("GameServerText needs 2.0.00, peer negotiated down to 1200")
	}
	announce, aerr := message.NewGameServerText("g", "hello")
	if aerr != nil {
		t.Errorf("unexpected error: %s", aerr.Reason())
		t.FailNow()
	}
	sErr := server.Send(announce)
	if sErr == nil {
		t.Error("expected VersionUnsupported")
		t.FailNow()
	}
	if sErr.Code() != errors.ErrVersionUnsupported {
		t.Errorf("expected code %d, got %d", errors.ErrVersionUnsupported, sErr.Code())
	}

	if !server.CanSend(message.GameTextMsgID) {
		t.Error("plain chat is understood by every version")
	}
}

func Test_messagesFlowBothWays(t *testing.T) {
	serverGot := make(chan message.Message, 1)
	clientGot := make(chan message.Message, 1)

	server, client := sessionPair(t,
		testConf(2000, "2.0.00"), testConf(2000, "2.0.00"),
		func(s *Session, msg message.Message) { serverGot <- msg },
		func(s *Session, msg message.Message) { clientGot <- msg })
	defer server.Close()
	defer client.Close()

	chat, cerr := message.NewGameTextMsg("Barbarians", "nick", "hello, got wood | clay?")
	if cerr != nil {
		t.Errorf("unexpected error: %s", cerr.Reason())
		t.FailNow()
	}
	if sErr := client.Send(chat); sErr != nil {
		t.Errorf("send failed: %s", sErr.Reason())
		t.FailNow()
	}

	select {
	case msg := <-serverGot:
		got, ok := msg.(*message.GameTextMsg)
		if !ok {
			t.Errorf("expected *GameTextMsg, got %T", msg)
			t.FailNow()
		}
		if *got != *chat {
			t.Errorf("round trip mismatch: %+v vs %+v", got, chat)
		}
	case <-time.After(5 * time.Second):
		t.Error("server never received the chat message")
		t.FailNow()
	}

	if sErr := server.Send(message.NewGameState("Barbarians", 20)); sErr != nil {
		t.Errorf("send failed: %s", sErr.Reason())
		t.FailNow()
	}
	select {
	case msg := <-clientGot:
		got, ok := msg.(*message.GameState)
		if !ok {
			t.Errorf("expected *GameState, got %T", msg)
			t.FailNow()
		}
		if got.State != 20 {
			t.Error("State does not match")
		}
	case <-time.After(5 * time.Second):
		t.Error("client never received the game state")
		t.FailNow()
	}
}

func Test_badLineDoesNotKillSession(t *testing.T) {
	serverGot := make(chan message.Message, 2)
	server, client := sessionPair(t,
		testConf(2000, "2.0.00"), testConf(2000, "2.0.00"),
		func(s *Session, msg message.Message) { serverGot <- msg }, nil)
	defer server.Close()
	defer client.Close()

	// an unknown type id and a malformed known type, straight onto the
	// wire behind the session's back
	if err := client.conn.WriteLine("99999|x"); err != nil {
		t.Errorf("write failed: %s", err)
		t.FailNow()
	}
	if err := client.conn.WriteLine("1025|OnlyOneToken"); err != nil {
		t.Errorf("write failed: %s", err)
		t.FailNow()
	}
	if sErr := client.Send(message.NewServerPing(1)); sErr != nil {
		t.Errorf("send failed: %s", sErr.Reason())
		t.FailNow()
	}

	select {
	case msg := <-serverGot:
		if _, ok := msg.(*message.ServerPing); !ok {
			t.Errorf("expected *ServerPing after the bad lines, got %T", msg)
		}
	case <-time.After(5 * time.Second):
		t.Error("session died on bad input")
		t.FailNow()
	}
}
