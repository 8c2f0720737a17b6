package message

// Session-band messages (9998-9999): version negotiation and keepalive.

import (
	"strconv"

	"github.com/nm-morais/go-gamewire/pkg/errors"
	"github.com/nm-morais/go-gamewire/pkg/tokenizer"
)

const (
	versionCaller    = "VERSION"
	serverPingCaller = "SERVERPING"
)

// Version announces the sender's protocol revision. Both sides send it
// first thing after connecting; the session layer negotiates down to the
// lower of the two. Build and Locale are optional: an absent value is
// encoded as a truly empty trailing field and decodes back to "".
type Version struct {
	VersionNumber int // packed M.mm.rr, e.g. 1200 for 1.2.00
	VersionString string
	Build         string
	Locale        string
}

func NewVersion(number int, verString, build, locale string) *Version {
	return &Version{
		VersionNumber: number,
		VersionString: verString,
		Build:         build,
		Locale:        locale,
	}
}

func (m *Version) Type() ID { return VersionID }

func (m *Version) Encode() string {
	payload := tokenizer.Join(Sep2,
		strconv.Itoa(m.VersionNumber), m.VersionString, m.Build, m.Locale)
	return encodeLine(VersionID, payload)
}

// DecodeVersion tolerates short payloads from very old peers that never
// sent build or locale.
func DecodeVersion(payload string) (Message, errors.Error) {
	toks := tokenizer.Tokens(payload, Sep2)
	if len(toks) < 2 || len(toks) > 4 {
		return nil, errors.MalformedPayloadError("expected 2 to 4 fields", versionCaller)
	}
	number, err := strconv.Atoi(toks[0])
	if err != nil {
		return nil, errors.MalformedPayloadError("non-numeric version number", versionCaller)
	}
	if toks[1] == "" {
		return nil, errors.MalformedPayloadError("empty version string", versionCaller)
	}
	msg := &Version{VersionNumber: number, VersionString: toks[1]}
	if len(toks) > 2 {
		msg.Build = toks[2]
	}
	if len(toks) > 3 {
		msg.Locale = toks[3]
	}
	return msg, nil
}

// ServerPing is the server's keepalive; SleepTime is the interval in
// seconds until the next ping is due.
type ServerPing struct {
	SleepTime int
}

func NewServerPing(sleepTime int) *ServerPing {
	return &ServerPing{SleepTime: sleepTime}
}

func (m *ServerPing) Type() ID { return ServerPingID }

func (m *ServerPing) Encode() string {
	return encodeLine(ServerPingID, strconv.Itoa(m.SleepTime))
}

func DecodeServerPing(payload string) (Message, errors.Error) {
	sleep, err := strconv.Atoi(payload)
	if err != nil {
		return nil, errors.MalformedPayloadError("non-numeric sleep time", serverPingCaller)
	}
	return &ServerPing{SleepTime: sleep}, nil
}
