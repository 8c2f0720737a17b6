package message

import (
	"testing"
)

func Test_gameTextMsgRoundTrip(t *testing.T) {
	msg, err := NewGameTextMsg("g", "nick", "trade anyone?")
	if err != nil {
		t.Errorf("unexpected error: %s", err.Reason())
		t.FailNow()
	}
	decoded, derr := DecodeGameTextMsg(payloadOf(t, msg.Encode()))
	if derr != nil {
		t.Errorf("unexpected error: %s", derr.Reason())
		t.FailNow()
	}
	got := decoded.(*GameTextMsg)
	if *got != *msg {
		t.Errorf("round trip mismatch: %+v vs %+v", got, msg)
	}
}

func Test_gameTextMsgTextMayContainCommas(t *testing.T) {
	msg, err := NewGameTextMsg("g", "nick", "wood, clay, or sheep?")
	if err != nil {
		t.Errorf("unexpected error: %s", err.Reason())
		t.FailNow()
	}
	decoded, derr := DecodeGameTextMsg(payloadOf(t, msg.Encode()))
	if derr != nil {
		t.Errorf("unexpected error: %s", derr.Reason())
		t.FailNow()
	}
	if decoded.(*GameTextMsg).Text != "wood, clay, or sheep?" {
		t.Errorf("text was split: %q", decoded.(*GameTextMsg).Text)
	}
}

func Test_gameTextMsgRejectsMultiline(t *testing.T) {
	if _, err := NewGameTextMsg("g", "nick", "two\nlines"); err == nil {
		t.Error("multiline text must be rejected at construction")
	}
	if _, err := NewGameTextMsg("g", "nick|x", "hello"); err == nil {
		t.Error("nickname with separator must be rejected")
	}
	if _, err := NewGameTextMsg("g", "nick", ""); err == nil {
		t.Error("empty text must be rejected")
	}
}

func Test_gameServerTextPipeSurvives(t *testing.T) {
	msg, err := NewGameServerText("g", "robber moved | resources lost, sorry")
	if err != nil {
		t.Errorf("unexpected error: %s", err.Reason())
		t.FailNow()
	}
	decoded, derr := DecodeGameServerText(payloadOf(t, msg.Encode()))
	if derr != nil {
		t.Errorf("unexpected error: %s", derr.Reason())
		t.FailNow()
	}
	got := decoded.(*GameServerText)
	if got.Text != msg.Text {
		t.Errorf("text with separators must survive, got %q", got.Text)
	}
	if got.Game != "g" {
		t.Error("Game does not match")
	}
}

func Test_gameServerTextMalformed(t *testing.T) {
	if _, err := DecodeGameServerText("no delimiter here"); err == nil {
		t.Error("payload without the alternate delimiter must be malformed")
	}
}
