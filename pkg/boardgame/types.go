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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/technigo/boardgames-api/pkg/serializer"
)

// ID identifies a board game within the dataset.
type ID int

const (
	fieldID       = "id"
	fieldCategory = "category"
	fieldName     = "name"
)

// GameRecord is one board game. ID and Category are decoded for queries;
// every field of the source record, including ones this package does not
// know about, is kept as loaded and written back out unchanged.
type GameRecord struct {
	ID       ID
	Category string

	// raw is the compact JSON object the record was decoded from.
	raw json.RawMessage
}

// Field returns the raw JSON value of the named field.
func (g GameRecord) Field(name string) (json.RawMessage, bool) {
	fields, err := g.fields()
	if err != nil {
		return nil, false
	}
	v, ok := fields[name]
	return v, ok
}

// Name returns the name field, or "" when it is missing or not a string.
func (g GameRecord) Name() string {
	v, ok := g.Field(fieldName)
	if !ok {
		return ""
	}
	var name string
	if err := json.Unmarshal(v, &name); err != nil {
		return ""
	}
	return name
}

func (g GameRecord) fields() (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(g.document(), &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// document returns the record as a JSON object. Records built in code
// without a source document carry only their id and category.
func (g GameRecord) document() json.RawMessage {
	if g.raw != nil {
		return g.raw
	}
	b, err := json.Marshal(struct {
		ID       ID     `json:"id"`
		Category string `json:"category"`
	}{g.ID, g.Category})
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return b
}

// MarshalJSON writes the source record unchanged.
func (g GameRecord) MarshalJSON() ([]byte, error) {
	return g.document(), nil
}

// UnmarshalJSON keeps data as the record document and decodes id and
// category from it. The id must be an integral JSON number; the category,
// when present, must be a string.
func (g *GameRecord) UnmarshalJSON(data []byte) error {
	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return err
	}
	if compact.Len() == 0 || compact.Bytes()[0] != '{' {
		return errors.New("game record must be a JSON object")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(compact.Bytes(), &fields); err != nil {
		return err
	}

	rawID, ok := fields[fieldID]
	if !ok {
		return fmt.Errorf("game record has no %q field", fieldID)
	}
	id, err := decodeID(rawID)
	if err != nil {
		return err
	}

	var category string
	if rawCategory, ok := fields[fieldCategory]; ok && string(rawCategory) != "null" {
		if err := json.Unmarshal(rawCategory, &category); err != nil {
			return fmt.Errorf("game record %d: category must be a string", id)
		}
	}

	*g = GameRecord{
		ID:       id,
		Category: category,
		raw:      compact.Bytes(),
	}
	return nil
}

func decodeID(raw json.RawMessage) (ID, error) {
	if len(raw) == 0 || !(raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')) {
		return 0, fmt.Errorf("game record id must be a number, got %s", raw)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, err
	}
	id, ok := ParseID(n.String())
	if !ok {
		return 0, fmt.Errorf("game record id must be an integer, got %s", raw)
	}
	return id, nil
}

// MarshalYAML writes the source record with its field order preserved.
func (g GameRecord) MarshalYAML() (any, error) {
	return serializer.JSONToYAML(g.document())
}

// UnmarshalYAML converts a YAML mapping into the record document.
func (g *GameRecord) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: game record must be a mapping", value.Line)
	}
	raw, err := serializer.YAMLToJSON(value)
	if err != nil {
		return err
	}
	return g.UnmarshalJSON(raw)
}

// NotFoundMessage is returned when an id lookup has no match.
const NotFoundMessage = "No game found with that id"

// NotFoundResponse is the body of a 404 from GET /boardgames/{id}.
type NotFoundResponse struct {
	Error string `json:"error"`
}
