// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/technigo/boardgames-api/pkg/defaults"
)

const (
	// EnvVarPort selects the listen port.
	EnvVarPort = "PORT"
	// EnvVarShutdownTimeout bounds graceful shutdown, in seconds.
	EnvVarShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Application handlers keyed by route path. Paths may contain gorilla/mux
	// variables such as /boardgames/{id}. Every route answers GET and HEAD.
	Handlers map[string]http.HandlerFunc

	// Server configuration
	Address string
	Port    int

	// Request limits
	MaxBodyBytes int64

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config with defaults and environment overrides.
func NewConfig() *Config {
	return parseConfig()
}

// parseConfig returns defaults overridden by PORT and SHUTDOWN_TIMEOUT_SECONDS.
func parseConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Address:           "",
		Port:              defaults.ServerPort,
		MaxBodyBytes:      defaults.MaxRequestBodyBytes,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if portStr := os.Getenv(EnvVarPort); portStr != "" {
		var port int
		if _, err := fmt.Sscanf(portStr, "%d", &port); err == nil && port >= 0 && port <= 65535 {
			cfg.Port = port
		} else {
			slog.Warn("ignoring invalid port", "env", EnvVarPort, "value", portStr, "default", cfg.Port)
		}
	}

	if shutdownStr := os.Getenv(EnvVarShutdownTimeout); shutdownStr != "" {
		var seconds int
		if _, err := fmt.Sscanf(shutdownStr, "%d", &seconds); err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		} else {
			slog.Warn("ignoring invalid shutdown timeout", "env", EnvVarShutdownTimeout, "value", shutdownStr)
		}
	}

	return cfg
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}
