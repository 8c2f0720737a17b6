package message

import (
	"testing"
)

func Test_versionNullFieldsRoundTrip(t *testing.T) {
	msg := NewVersion(1200, "2.0.00", "", "")
	line := msg.Encode()
	if line != "9998|1200,2.0.00,," {
		t.Errorf("unexpected line %q", line)
		t.FailNow()
	}

	decoded, err := DecodeVersion(payloadOf(t, line))
	if err != nil {
		t.Errorf("unexpected error: %s", err.Reason())
		t.FailNow()
	}
	got := decoded.(*Version)
	if got.VersionNumber != 1200 {
		t.Error("VersionNumber does not match")
	}
	if got.VersionString != "2.0.00" {
		t.Error("VersionString does not match")
	}
	if got.Build != "" || got.Locale != "" {
		t.Error("absent build and locale must decode to empty")
	}
}

func Test_versionFullRoundTrip(t *testing.T) {
	msg := NewVersion(2000, "2.0.00", "JM20200229", "en_US")
	decoded, err := DecodeVersion(payloadOf(t, msg.Encode()))
	if err != nil {
		t.Errorf("unexpected error: %s", err.Reason())
		t.FailNow()
	}
	if *decoded.(*Version) != *msg {
		t.Errorf("round trip mismatch: %+v vs %+v", decoded, msg)
	}
}

func Test_versionShortPayloadFromOldPeer(t *testing.T) {
	decoded, err := DecodeVersion("1106,1.1.06")
	if err != nil {
		t.Errorf("unexpected error: %s", err.Reason())
		t.FailNow()
	}
	got := decoded.(*Version)
	if got.VersionNumber != 1106 || got.Build != "" || got.Locale != "" {
		t.Errorf("unexpected decode %+v", got)
	}
}

func Test_versionMalformed(t *testing.T) {
	if _, err := DecodeVersion("NaN,2.0.00"); err == nil {
		t.Error("non-numeric version number must be malformed")
	}
	if _, err := DecodeVersion("1200"); err == nil {
		t.Error("missing version string must be malformed")
	}
	if _, err := DecodeVersion("1200,"); err == nil {
		t.Error("empty version string must be malformed")
	}
}

func Test_serverPingRoundTrip(t *testing.T) {
	msg := NewServerPing(15)
	line := msg.Encode()
	if line != "9999|15" {
		t.Errorf("unexpected line %q", line)
	}
	decoded, err := DecodeServerPing(payloadOf(t, line))
	if err != nil {
		t.Errorf("unexpected error: %s", err.Reason())
		t.FailNow()
	}
	if decoded.(*ServerPing).SleepTime != 15 {
		t.Error("SleepTime does not match")
	}
}
