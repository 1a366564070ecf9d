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

// Package serializer encodes and decodes board game data.
//
// Supported formats:
//   - JSON: HTTP responses, embedded and file-based datasets, CLI output
//   - YAML: file-based datasets and CLI output
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, games)
//	serializer.RespondText(w, http.StatusOK, "Hello Technigo!")
//
// For reading a dataset file (format detected from the extension):
//
//	games, err := serializer.FromFile[[]boardgame.GameRecord]("games.yaml")
//
// For writing CLI output:
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	if err := w.Serialize(ctx, games); err != nil {
//	    return err
//	}
package serializer
