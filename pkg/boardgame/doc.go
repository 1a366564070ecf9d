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

// Package boardgame holds the board game dataset and the queries served over it.
//
// The dataset is decoded once at startup into an immutable Collection, either
// from the embedded data/boardgames.json or from a JSON/YAML file supplied by
// the operator. Requests never mutate it, so handlers share one Collection
// across goroutines without locking.
//
// Only the id and category of a record are interpreted. Every other field,
// known or not, is kept as loaded and written back out unchanged in both
// JSON and YAML. A source must hold exactly one document: trailing data, a
// record without an integral id, or a blank category fails the load.
//
// # Queries
//
// Two linear scans are supported:
//
//   - FilterByCategory: case-folded equality on the category field. An empty
//     category means no filter.
//   - FindByID: exact match on the numeric id, returning the first record when
//     the source carries duplicates.
//
// No index is built. The dataset is small and a scan keeps the Collection a
// plain ordered slice.
//
// # HTTP
//
// Handler exposes the collection:
//
//	GET /boardgames              full collection
//	GET /boardgames?category=C   records whose category folds to C
//	GET /boardgames/{id}         single record, or 404 {"error":"No game found with that id"}
package boardgame
