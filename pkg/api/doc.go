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

// Package api wires the board-games dataset into the HTTP server.
//
// Serve is the entry point used by the boardgamesd binary:
//
//	import (
//	    "log"
//	    "github.com/technigo/boardgames-api/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Loading an optional .env file into the environment
//   - Configuring structured logging with application name and version
//   - Loading the dataset (embedded, or BOARDGAMES_DATA when set)
//   - Setting up the route table
//   - Delegating server lifecycle management to pkg/server
//
// # Endpoints
//
// Application Endpoints:
//   - GET /                 - Plain-text greeting
//   - GET /test             - Plain-text test greeting
//   - GET /boardgames       - All games, optionally filtered by ?category=
//   - GET /boardgames/{id}  - One game, or 404 {"error":"No game found with that id"}
//
// System Endpoints:
//   - GET /health  - Liveness check
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// Example curl commands:
//
//	curl "http://localhost:8080/boardgames?category=strategy"
//	curl "http://localhost:8080/boardgames/3"
package api
