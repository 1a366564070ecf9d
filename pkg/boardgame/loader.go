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
	_ "embed"
	"io"
	"log/slog"
	"strings"

	bgerrors "github.com/technigo/boardgames-api/pkg/errors"
	"github.com/technigo/boardgames-api/pkg/serializer"
)

// EnvVarDataFile names the environment variable pointing at a dataset file
// that replaces the embedded one.
const EnvVarDataFile = "BOARDGAMES_DATA"

const embeddedSource = "embedded:data/boardgames.json"

//go:embed data/boardgames.json
var embeddedData []byte

// Load decodes the embedded dataset.
func Load() (*Collection, error) {
	return LoadReader(serializer.FormatJSON, bytes.NewReader(embeddedData), embeddedSource)
}

// LoadFile decodes a JSON or YAML dataset file; the format follows the
// file extension.
func LoadFile(path string) (*Collection, error) {
	records, err := serializer.FromFile[[]GameRecord](path)
	if err != nil {
		return nil, bgerrors.WrapWithContext(bgerrors.ErrCodeInvalidRequest,
			"failed to decode dataset", err, map[string]any{"source": path})
	}
	return build(*records, path)
}

// LoadFrom decodes the file at path when set, or the embedded dataset otherwise.
func LoadFrom(path string) (*Collection, error) {
	if strings.TrimSpace(path) == "" {
		return Load()
	}
	return LoadFile(path)
}

// LoadReader decodes a dataset in the given format from in.
// source names the input in errors and logs.
func LoadReader(format serializer.Format, in io.Reader, source string) (*Collection, error) {
	r, err := serializer.NewReader(format, in)
	if err != nil {
		return nil, bgerrors.WrapWithContext(bgerrors.ErrCodeInvalidRequest,
			"unsupported dataset format", err, map[string]any{"source": source})
	}
	return load(r, source)
}

func load(r *serializer.Reader, source string) (*Collection, error) {
	var records []GameRecord
	if err := r.Deserialize(&records); err != nil {
		return nil, bgerrors.WrapWithContext(bgerrors.ErrCodeInvalidRequest,
			"failed to decode dataset", err, map[string]any{"source": source})
	}
	return build(records, source)
}

// build validates decoded records and wraps them in a Collection.
func build(records []GameRecord, source string) (*Collection, error) {
	if len(records) == 0 {
		return nil, bgerrors.NewWithContext(bgerrors.ErrCodeInvalidRequest,
			"dataset is empty", map[string]any{"source": source})
	}

	for i, rec := range records {
		if strings.TrimSpace(rec.Category) == "" {
			return nil, bgerrors.NewWithContext(bgerrors.ErrCodeInvalidRequest,
				"record has no category", map[string]any{
					"source": source,
					"index":  i,
					"id":     rec.ID,
				})
		}
	}

	c := NewCollection(records)
	if dups := c.duplicateIDs(); len(dups) > 0 {
		slog.Warn("dataset contains duplicate ids, lookups return the first match",
			"source", source,
			"ids", dups,
		)
	}

	slog.Debug("dataset loaded", "source", source, "records", c.Len())
	return c, nil
}
