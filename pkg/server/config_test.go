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
	"testing"
	"time"
)

func TestParseConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		t.Setenv(EnvVarPort, "")
		t.Setenv(EnvVarShutdownTimeout, "")
		cfg := parseConfig()

		if cfg.Address != "" {
			t.Errorf("expected empty address, got %s", cfg.Address)
		}
		if cfg.Port != 8080 {
			t.Errorf("expected port 8080, got %d", cfg.Port)
		}
		if cfg.MaxBodyBytes != 100<<10 {
			t.Errorf("expected max body 100KiB, got %d", cfg.MaxBodyBytes)
		}
		if cfg.ReadTimeout != 10*time.Second {
			t.Errorf("expected read timeout 10s, got %v", cfg.ReadTimeout)
		}
		if cfg.WriteTimeout != 30*time.Second {
			t.Errorf("expected write timeout 30s, got %v", cfg.WriteTimeout)
		}
		if cfg.IdleTimeout != 120*time.Second {
			t.Errorf("expected idle timeout 120s, got %v", cfg.IdleTimeout)
		}
		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
		}
		if cfg.Addr() != ":8080" {
			t.Errorf("expected addr :8080, got %s", cfg.Addr())
		}
	})

	t.Run("port from env", func(t *testing.T) {
		t.Setenv(EnvVarPort, "9090")
		if cfg := parseConfig(); cfg.Port != 9090 {
			t.Errorf("expected port 9090, got %d", cfg.Port)
		}
	})

	t.Run("invalid port keeps default", func(t *testing.T) {
		for _, v := range []string{"not-a-port", "70000", "-1"} {
			t.Setenv(EnvVarPort, v)
			if cfg := parseConfig(); cfg.Port != 8080 {
				t.Errorf("PORT=%q: expected default port 8080, got %d", v, cfg.Port)
			}
		}
	})

	t.Run("shutdown timeout from env", func(t *testing.T) {
		t.Setenv(EnvVarShutdownTimeout, "5")
		if cfg := parseConfig(); cfg.ShutdownTimeout != 5*time.Second {
			t.Errorf("expected shutdown timeout 5s, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("non-positive shutdown timeout keeps default", func(t *testing.T) {
		t.Setenv(EnvVarShutdownTimeout, "0")
		if cfg := parseConfig(); cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected default shutdown timeout, got %v", cfg.ShutdownTimeout)
		}
	})
}

func TestNewConfig(t *testing.T) {
	t.Setenv(EnvVarPort, "8181")
	if cfg := NewConfig(); cfg.Port != 8181 {
		t.Errorf("expected port 8181, got %d", cfg.Port)
	}
}
