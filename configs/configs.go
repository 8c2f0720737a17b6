package configs

import (
	"encoding/json"
	"io/ioutil"
	"time"
)

type SessionConfig struct {
	ListenAddr         string
	LogFolder          string
	DialTimeout        time.Duration
	HandshakeTimeout   time.Duration
	LocalVersion       int
	LocalVersionString string
	Build              string
	Locale             string
	OutQueueCapacity   int
	HandlerPoolSize    int
}

// Default fills in everything a config file may omit.
func Default() SessionConfig {
	return SessionConfig{
		ListenAddr:         "localhost:8880",
		DialTimeout:        3 * time.Second,
		HandshakeTimeout:   5 * time.Second,
		LocalVersion:       2000,
		LocalVersionString: "2.0.00",
		OutQueueCapacity:   1024,
		HandlerPoolSize:    32,
	}
}

func ReadConfigFromFile(filePath string) SessionConfig {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		panic(err)
	}

	config := Default()
	if err := json.Unmarshal(data, &config); err != nil {
		panic(err)
	}
	return config
}
