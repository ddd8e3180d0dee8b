/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		bind:           "127.0.0.1",
		port:           8080,
		rateBurst:      20,
		rateLimit:      10,
		sessionTimeout: time.Hour,
		suggestions:    5,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"defaults", func(*Config) {}, ""},
		{"cert without key", func(c *Config) { c.tlsCert = "cert.pem" }, "--tls-key"},
		{"key without cert", func(c *Config) { c.tlsKey = "key.pem" }, "--tls-cert"},
		{"port too low", func(c *Config) { c.port = 0 }, "invalid port"},
		{"port too high", func(c *Config) { c.port = 65536 }, "invalid port"},
		{"no suggestions", func(c *Config) { c.suggestions = 0 }, "suggestion count"},
		{"zero rate", func(c *Config) { c.rateLimit = 0 }, "rate limit"},
		{"zero burst", func(c *Config) { c.rateBurst = 0 }, "rate limit"},
		{"watch without dataset", func(c *Config) { c.watch = true }, "--watch"},
		{"watch with dataset", func(c *Config) { c.watch = true; c.dataset = "characters.json" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfigScheme(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "http", cfg.scheme())

	cfg.tlsCert, cfg.tlsKey = "cert.pem", "key.pem"
	assert.Equal(t, "https", cfg.scheme())
}

func TestNewCmdDefaults(t *testing.T) {
	cfg := &Config{}
	_ = newCmd(cfg)

	assert.Equal(t, "0.0.0.0", cfg.bind)
	assert.Equal(t, 8080, cfg.port)
	assert.Equal(t, 5, cfg.suggestions)
	assert.Equal(t, 60*time.Minute, cfg.sessionTimeout)
	assert.NoError(t, cfg.validate())
}

func TestNewCmdEnvironment(t *testing.T) {
	t.Setenv("CHARACTERDLE_PORT", "9090")
	t.Setenv("CHARACTERDLE_SUGGESTIONS", "8")
	t.Setenv("CHARACTERDLE_PLAYER_TIMEOUT", "30s")

	cfg := &Config{}
	_ = newCmd(cfg)

	assert.Equal(t, 9090, cfg.port)
	assert.Equal(t, 8, cfg.suggestions)
	assert.Equal(t, 30*time.Second, cfg.playerTimeout)
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	logf(&Config{verbose: false}, "GAMES: %s", "quiet")
	assert.Empty(t, buf.String())

	logf(&Config{verbose: true}, "GAMES: %s", "loud")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(buf.String()), "| GAMES: loud"))

	buf.Reset()
	errorf("DATA: %d bad", 2)
	assert.Contains(t, buf.String(), "| ERROR: DATA: 2 bad")
}

func TestNewPageEscapes(t *testing.T) {
	page := newPage(&Config{prefix: "/play"}, "<Oops>", "a & b")

	assert.Contains(t, page, "<title>&lt;Oops&gt;</title>")
	assert.Contains(t, page, `href="/play/"`)
	assert.Contains(t, page, "a &amp; b")
}
