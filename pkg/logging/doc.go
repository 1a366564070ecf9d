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

// Package logging provides structured logging utilities for the board games
// service and CLI.
//
// It wraps the standard library slog package with a JSON handler on stderr,
// module and version attributes on every record, and environment-based level
// selection through LOG_LEVEL.
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("boardgamesd", version)
//	    slog.Info("server starting", "port", 8080)
//	}
//
// Setting an explicit level (for example from a CLI flag):
//
//	logging.SetDefaultStructuredLoggerWithLevel("boardgames", version, "debug")
//
// # Log Levels
//
// Supported levels (case-insensitive): debug, info (default), warn/warning,
// error. Debug records include the source location.
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "dataset loaded",
//	    "module": "boardgamesd",
//	    "version": "v1.0.0",
//	    "records": 20
//	}
package logging
