// wiretap listens for one peer, completes the version handshake and logs
// a summary of every decoded message. With -raw it skips the network and
// decodes newline-separated lines from stdin instead, which is handy for
// replaying captured traffic.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/nm-morais/go-gamewire/configs"
	"github.com/nm-morais/go-gamewire/internal/session"
	"github.com/nm-morais/go-gamewire/pkg/logs"
	"github.com/nm-morais/go-gamewire/pkg/message"
	"github.com/nm-morais/go-gamewire/pkg/registry"
	"github.com/panjf2000/ants"
)

func main() {
	var port int
	var raw bool
	var configFile string
	flag.IntVar(&port, "p", 8880, "listen port")
	flag.BoolVar(&raw, "raw", false, "decode newline-separated lines from stdin")
	flag.StringVar(&configFile, "conf", "", "session config file (JSON)")
	flag.Parse()

	logger := logs.NewLogger("wiretap")

	if raw {
		reg := registry.NewWithLogger(logger)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			msg, err := reg.Decode(scanner.Text())
			if err != nil {
				continue
			}
			logger.Infof("type %d: %+v", msg.Type(), msg)
		}
		return
	}

	conf := configs.Default()
	if configFile != "" {
		conf = configs.ReadConfigFromFile(configFile)
	}
	conf.ListenAddr = fmt.Sprintf("localhost:%d", port)
	logs.SetupLogFolder(logger, conf.LogFolder, "wiretap")

	pool, err := ants.NewPool(conf.HandlerPoolSize)
	if err != nil {
		panic(err)
	}
	defer pool.Release()

	listener, lErr := session.Listen(conf.ListenAddr)
	if lErr != nil {
		lErr.Log()
		os.Exit(1)
	}
	logger.Infof("Listening on %s", conf.ListenAddr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			logger.Errorf("Accept failed: %s", err)
			continue
		}
		s := session.New(conn, conf, pool, func(s *session.Session, msg message.Message) {
			logger.Infof("type %d: %+v", msg.Type(), msg)
		})
		if hErr := s.Handshake(); hErr != nil {
			hErr.Log()
			s.Close()
			continue
		}
		s.Start()
	}
}
