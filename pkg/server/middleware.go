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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	bgerrors "github.com/technigo/boardgames-api/pkg/errors"
)

// withMiddleware wraps an application handler with the standard chain.
func (s *Server) withMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	return s.metricsMiddleware(
		s.requestIDMiddleware(
			s.panicRecoveryMiddleware(
				s.loggingMiddleware(
					s.jsonBodyMiddleware(handler),
				),
			),
		),
	)
}

// requestIDMiddleware extracts or generates request IDs
func (s *Server) requestIDMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		w.Header().Set("X-Request-Id", requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// panicRecoveryMiddleware recovers from panics
func (s *Server) panicRecoveryMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				panicRecoveries.Inc()
				var errMsg string
				switch v := err.(type) {
				case error:
					errMsg = v.Error()
				default:
					errMsg = fmt.Sprintf("%v", v)
				}
				slog.Error("panic recovered",
					"error", errMsg,
					"requestID", RequestIDFromContext(r.Context()),
					"path", r.URL.Path,
					"method", r.Method,
				)
				WriteErrorFromErr(w, r, bgerrors.New(bgerrors.ErrCodeInternal, "Internal server error"),
					"Internal server error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	}
}

// loggingMiddleware logs requests
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := RequestIDFromContext(r.Context())

		rw := newResponseWriter(w)

		slog.Debug("request started",
			"requestID", requestID,
			"method", r.Method,
			"path", r.URL.Path,
		)

		next.ServeHTTP(rw, r)

		slog.Debug("request completed",
			"requestID", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// jsonBodyMiddleware decodes JSON request bodies before the handler runs.
// The top-level value must be an object or array. The decoded value is
// available through BodyFromContext and the raw bytes remain readable from
// r.Body.
func (s *Server) jsonBodyMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody || !isJSONContentType(r.Header.Get("Content-Type")) {
			next.ServeHTTP(w, r)
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				WriteErrorFromErr(w, r, bgerrors.NewWithContext(bgerrors.ErrCodeRequestTooLarge,
					"Request body too large", map[string]any{"limit": tooLarge.Limit}),
					"Request body too large", nil)
				return
			}
			WriteErrorFromErr(w, r, bgerrors.Wrap(bgerrors.ErrCodeInvalidRequest,
				"Failed to read request body", err), "Failed to read request body", nil)
			return
		}

		if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 {
			// Only objects and arrays are accepted as top-level values.
			if trimmed[0] != '{' && trimmed[0] != '[' {
				WriteErrorFromErr(w, r, bgerrors.New(bgerrors.ErrCodeInvalidJSON,
					"JSON request body must be an object or array"), "Malformed JSON request body", nil)
				return
			}
			var body any
			if err := json.Unmarshal(trimmed, &body); err != nil {
				WriteErrorFromErr(w, r, bgerrors.Wrap(bgerrors.ErrCodeInvalidJSON,
					"Malformed JSON request body", err), "Malformed JSON request body", nil)
				return
			}
			r = r.WithContext(context.WithValue(r.Context(), contextKeyBody, body))
		}

		r.Body = io.NopCloser(bytes.NewReader(raw))
		next.ServeHTTP(w, r)
	}
}

// isJSONContentType matches application/json and +json media types.
func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
