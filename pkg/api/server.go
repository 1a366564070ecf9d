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

package api

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/technigo/boardgames-api/pkg/boardgame"
	bgerrors "github.com/technigo/boardgames-api/pkg/errors"
	"github.com/technigo/boardgames-api/pkg/logging"
	"github.com/technigo/boardgames-api/pkg/serializer"
	"github.com/technigo/boardgames-api/pkg/server"
)

const (
	name           = "boardgamesd"
	versionDefault = "dev"

	rootGreeting = "Hello Technigo!"
	testGreeting = "Hello from test"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/technigo/boardgames-api/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It loads an optional .env file, configures logging, loads the dataset,
// sets up routes, and handles graceful shutdown.
// Returns an error if the dataset cannot be loaded or the server fails.
func Serve() error {
	ctx := context.Background()

	envErr := godotenv.Load()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	if envErr != nil {
		if !errors.Is(envErr, fs.ErrNotExist) {
			slog.Warn("failed to load .env file", "error", envErr)
		} else {
			slog.Debug("no .env file found")
		}
	}

	c, err := boardgame.LoadFrom(os.Getenv(boardgame.EnvVarDataFile))
	if err != nil {
		slog.Error("failed to load dataset", "code", bgerrors.CodeOf(err), "error", err)
		return err
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(c)),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// Routes returns the application route table served over c.
func Routes(c *boardgame.Collection) map[string]http.HandlerFunc {
	h := boardgame.NewHandler(c)

	return map[string]http.HandlerFunc{
		"/":                textHandler(rootGreeting),
		"/test":            textHandler(testGreeting),
		"/boardgames":      h.HandleList,
		"/boardgames/{id}": h.HandleGet,
	}
}

func textHandler(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		serializer.RespondText(w, http.StatusOK, text)
	}
}
