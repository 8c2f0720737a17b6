package session

import (
	"net"
	"time"

	"github.com/nm-morais/go-gamewire/pkg/errors"
)

const transportCaller = "SessionTransport"

func Listen(addr string) (net.Listener, errors.Error) {
	l, err := net.Listen("tcp4", addr)
	if err != nil {
		return nil, errors.NonFatalError(errors.ErrTransport, err.Error(), transportCaller)
	}
	return l, nil
}

func Dial(addr string, timeout time.Duration) (net.Conn, errors.Error) {
	conn, err := net.DialTimeout("tcp4", addr, timeout)
	if err != nil {
		return nil, errors.NonFatalError(errors.ErrTransport, err.Error(), transportCaller)
	}
	return conn, nil
}
