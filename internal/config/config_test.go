package config

import (
	"testing"
	"time"
)

func TestLoadYAMLAppliesDefaults(t *testing.T) {
	c, err := LoadYAML([]byte("ListenOn: \":9090\"\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.ListenOn != ":9090" {
		t.Fatalf("expected :9090, got %q", c.ListenOn)
	}
	if c.Game.DefaultMode != "ai" || c.Game.ComputerSymbol != "O" {
		t.Fatalf("unexpected game defaults %+v", c.Game)
	}
	if c.Game.ComputerDelay() != 500*time.Millisecond {
		t.Fatalf("expected 500ms computer delay, got %v", c.Game.ComputerDelay())
	}
	if c.Game.RoundResetDelay() != time.Second {
		t.Fatalf("expected 1s reset delay, got %v", c.Game.RoundResetDelay())
	}
	if c.EventHeartbeat() != 15*time.Second {
		t.Fatalf("expected 15s heartbeat, got %v", c.EventHeartbeat())
	}
}

func TestLoadYAMLOverrides(t *testing.T) {
	c, err := LoadYAML([]byte(`
ListenOn: "127.0.0.1:8081"
Game:
  DefaultMode: multiplayer
  ComputerSymbol: X
  ComputerDelayMs: 0
  RoundResetDelayMs: 250
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Game.DefaultMode != "multiplayer" || c.Game.ComputerSymbol != "X" {
		t.Fatalf("overrides not applied: %+v", c.Game)
	}
	if c.Game.ComputerDelay() != 0 || c.Game.RoundResetDelay() != 250*time.Millisecond {
		t.Fatalf("unexpected delays %+v", c.Game)
	}
}

func TestLoadYAMLRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"unknown mode":   "Game:\n  DefaultMode: solo\n",
		"unknown symbol": "Game:\n  ComputerSymbol: Z\n",
		"negative delay": "Game:\n  ComputerDelayMs: -5\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadYAML([]byte(body)); err == nil {
				t.Fatalf("expected error for %q", body)
			}
		})
	}
}
