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

package boardgame

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/technigo/boardgames-api/pkg/serializer"
)

// PathVarID is the route variable holding the id in /boardgames/{id}.
const PathVarID = "id"

// Handler serves the board game collection over HTTP.
type Handler struct {
	collection *Collection
}

// NewHandler returns a Handler backed by c.
func NewHandler(c *Collection) *Handler {
	if c == nil {
		c = &Collection{}
	}
	return &Handler{collection: c}
}

// HandleList handles GET /boardgames. It always responds 200 with a JSON
// array, filtered by the optional category parameter.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := ParseQuery(r)
	games := h.collection.Filter(q)

	filtered := q.Category != nil
	listResultSize.WithLabelValues(strconv.FormatBool(filtered)).Observe(float64(len(games)))

	slog.Debug("listing board games",
		"filtered", filtered,
		"results", len(games),
	)

	serializer.RespondJSON(w, http.StatusOK, games)
}

// HandleGet handles GET /boardgames/{id}. Ids that do not parse as a number
// are reported as not found.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)[PathVarID]

	id, ok := ParseID(raw)
	var game GameRecord
	if ok {
		game, ok = h.collection.FindByID(id)
	}

	if !ok {
		lookupsTotal.WithLabelValues(resultNotFound).Inc()
		slog.Debug("board game not found", "id", raw)
		serializer.RespondJSON(w, http.StatusNotFound, NotFoundResponse{Error: NotFoundMessage})
		return
	}

	lookupsTotal.WithLabelValues(resultFound).Inc()
	serializer.RespondJSON(w, http.StatusOK, game)
}
