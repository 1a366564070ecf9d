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
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	bgerrors "github.com/technigo/boardgames-api/pkg/errors"
)

// readMethods are the methods every route answers.
var readMethods = []string{http.MethodGet, http.MethodHead}

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	r := mux.NewRouter()

	// System endpoints
	r.HandleFunc("/health", s.handleHealth).Methods(readMethods...)
	r.HandleFunc("/ready", s.handleReady).Methods(readMethods...)
	r.Handle("/metrics", promhttp.Handler()).Methods(readMethods...)

	// Application endpoints, registered in path order for stable matching
	paths := make([]string, 0, len(s.config.Handlers))
	for path := range s.config.Handlers {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		h := s.withMiddleware(s.config.Handlers[path])
		r.HandleFunc(path, h).Methods(readMethods...)
		// Trailing slashes are optional, so /boardgames/ serves /boardgames.
		if !strings.HasSuffix(path, "/") {
			r.HandleFunc(path+"/", h).Methods(readMethods...)
		}
	}

	r.NotFoundHandler = s.withMiddleware(s.handleNotFound)
	r.MethodNotAllowedHandler = s.withMiddleware(s.handleMethodNotAllowed)

	// Any origin is accepted; preflight requests are answered before routing.
	return cors.AllowAll().Handler(r)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	err := bgerrors.NewWithContext(bgerrors.ErrCodeNotFound, "Route not found", map[string]any{
		"method": r.Method,
		"path":   r.URL.Path,
	})
	WriteErrorFromErr(w, r, err, "Route not found", nil)
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, HEAD")
	err := bgerrors.NewWithContext(bgerrors.ErrCodeMethodNotAllowed, "Method not allowed", map[string]any{
		"method":  r.Method,
		"allowed": readMethods,
	})
	WriteErrorFromErr(w, r, err, "Method not allowed", nil)
}
