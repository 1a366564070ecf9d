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

// Package cli implements the boardgames command-line interface.
//
// # Commands
//
// list - List board games:
//
//	boardgames list [--category strategy] [--format json|yaml] [--data games.yaml]
//
// Prints every game in dataset order, or only those whose category matches
// --category ignoring case.
//
// get - Show one board game:
//
//	boardgames get 3
//
// Prints the game with the given id, or fails with "No game found with that id".
//
// categories - List categories:
//
//	boardgames categories
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL        Set logging verbosity (debug, info, warn, error)
//	BOARDGAMES_DATA  Dataset file used instead of the embedded one
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, unknown id, unreadable dataset)
package cli
