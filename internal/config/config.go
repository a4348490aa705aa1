package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

// Config is the server configuration, loaded from etc/tictactoe.yaml.
type Config struct {
	ListenOn         string `json:",default=:8080"`
	Profiling        bool   `json:",optional"`
	EventHeartbeatMs int64  `json:",default=15000"`
	Log              logx.LogConf
	Game             GameConf
}

// GameConf controls how matches are played.
type GameConf struct {
	DefaultMode       string `json:",default=ai,options=ai|multiplayer"`
	ComputerSymbol    string `json:",default=O,options=X|O"`
	ComputerDelayMs   int64  `json:",default=500"`
	RoundResetDelayMs int64  `json:",default=1000"`
}

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	var c Config
	if err := conf.Load(path, &c); err != nil {
		return c, fmt.Errorf("load %s: %w", path, err)
	}
	return c, c.Validate()
}

// LoadYAML parses and validates YAML content.
func LoadYAML(content []byte) (Config, error) {
	var c Config
	if err := conf.LoadFromYamlBytes(content, &c); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.ListenOn == "" {
		return errors.New("ListenOn is empty")
	}
	if c.EventHeartbeatMs <= 0 {
		return errors.New("EventHeartbeatMs must be positive")
	}
	if c.Game.ComputerDelayMs < 0 || c.Game.RoundResetDelayMs < 0 {
		return errors.New("game delays must not be negative")
	}
	return nil
}

func (c Config) EventHeartbeat() time.Duration {
	return time.Duration(c.EventHeartbeatMs) * time.Millisecond
}

func (g GameConf) ComputerDelay() time.Duration {
	return time.Duration(g.ComputerDelayMs) * time.Millisecond
}

func (g GameConf) RoundResetDelay() time.Duration {
	return time.Duration(g.RoundResetDelayMs) * time.Millisecond
}
