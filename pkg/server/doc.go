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

// Package server provides the reusable HTTP server behind the board games API.
//
// It owns the server lifecycle and every cross-cutting concern, so that
// application packages only contribute handlers:
//
//   - Routing with gorilla/mux; every route answers GET and HEAD
//   - CORS for any origin, including preflight requests (rs/cors)
//   - JSON request body decoding with a size limit
//   - Request ID tracking (X-Request-Id)
//   - Panic recovery
//   - Request logging and Prometheus metrics
//   - Health, readiness and metrics endpoints
//   - Graceful shutdown on SIGINT/SIGTERM
//
// # Usage
//
//	s := server.New(
//	    server.WithName("boardgamesd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/boardgames":      h.HandleList,
//	        "/boardgames/{id}": h.HandleGet,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # System Endpoints
//
//	GET /health  - liveness, always 200
//	GET /ready   - readiness, 200 while serving and 503 otherwise
//	GET /metrics - Prometheus metrics
//
// # Configuration
//
// Environment variables:
//   - PORT: listen port (default: 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown bound (default: 30)
//
// # Error Handling
//
// Transport-level errors (unknown route, wrong method, malformed or oversized
// JSON body, recovered panic) share one JSON structure:
//
//	{
//	  "code": "METHOD_NOT_ALLOWED",
//	  "message": "Method not allowed",
//	  "details": {"method": "POST", "allowed": ["GET", "HEAD"]},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// Application handlers write their own bodies for domain outcomes.
package server
