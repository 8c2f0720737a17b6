// Package wireio carries wire lines over a byte stream. Each line
// travels in a frame with a 2-byte big-endian length prefix, the framing
// the protocol has always used on TCP.
package wireio

import (
	"encoding/binary"
	"fmt"
	"net"

	"github.com/smallnest/goframe"
)

// MaxLineBytes is the largest encodable line; bounded by the 2-byte
// length field.
const MaxLineBytes = 65535

var encoderConfig = goframe.EncoderConfig{
	ByteOrder:                       binary.BigEndian,
	LengthFieldLength:               2,
	LengthAdjustment:                0,
	LengthIncludesLengthFieldLength: false,
}

var decoderConfig = goframe.DecoderConfig{
	ByteOrder:           binary.BigEndian,
	LengthFieldOffset:   0,
	LengthFieldLength:   2,
	LengthAdjustment:    0,
	InitialBytesToStrip: 2,
}

type LineConn struct {
	fc goframe.FrameConn
}

func NewLineConn(conn net.Conn) *LineConn {
	return &LineConn{
		fc: goframe.NewLengthFieldBasedFrameConn(encoderConfig, decoderConfig, conn),
	}
}

// ReadLine blocks for the next framed line.
func (c *LineConn) ReadLine() (string, error) {
	frame, err := c.fc.ReadFrame()
	if err != nil {
		return "", err
	}
	return string(frame), nil
}

// WriteLine frames and writes one line.
func (c *LineConn) WriteLine(line string) error {
	if len(line) > MaxLineBytes {
		return fmt.Errorf("line of %d bytes exceeds frame limit %d", len(line), MaxLineBytes)
	}
	return c.fc.WriteFrame([]byte(line))
}

func (c *LineConn) Conn() net.Conn {
	return c.fc.Conn()
}

func (c *LineConn) Close() error {
	return c.fc.Close()
}
