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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/technigo/boardgames-api/pkg/boardgame"
	"github.com/technigo/boardgames-api/pkg/serializer"
)

// run executes the root command with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(boardgame.EnvVarDataFile, "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.Writer = &out
	cmd.ErrWriter = &out

	err := cmd.Run(context.Background(), append([]string{name}, args...))
	return out.String(), err
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{name: "json", format: "json", wantFormat: serializer.FormatJSON},
		{name: "yaml", format: "yaml", wantFormat: serializer.FormatYAML},
		{name: "upper case", format: "YAML", wantFormat: serializer.FormatYAML},
		{name: "invalid xml", format: "xml", wantErr: true},
		{name: "empty", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if tt.wantErr {
						assert.Error(t, err)
						return nil
					}
					assert.NoError(t, err)
					assert.Equal(t, tt.wantFormat, got)
					return nil
				},
			}

			require.NoError(t, cmd.Run(context.Background(), []string{"test"}))
		})
	}
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)

	var games []boardgame.GameRecord
	require.NoError(t, json.Unmarshal([]byte(out), &games))
	assert.Len(t, games, 20)
}

func TestListCommandByCategory(t *testing.T) {
	out, err := run(t, "list", "--category", "PARTY")
	require.NoError(t, err)

	var games []boardgame.GameRecord
	require.NoError(t, json.Unmarshal([]byte(out), &games))

	ids := make([]boardgame.ID, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []boardgame.ID{5, 8, 14}, ids)
}

func TestListCommandUnknownCategory(t *testing.T) {
	out, err := run(t, "list", "--category", "Wargame")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestListCommandYAML(t *testing.T) {
	out, err := run(t, "list", "--category", "abstract", "--format", "yaml")
	require.NoError(t, err)

	var games []boardgame.GameRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &games))
	require.Len(t, games, 3)
	assert.Equal(t, "Abstract", games[0].Category)
}

func TestListCommandDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.yaml")
	data := "- id: 7\n  name: Go\n  category: Abstract\n- id: 8\n  name: Codenames\n  category: Party\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	out, err := run(t, "list", "--data", path)
	require.NoError(t, err)

	var games []boardgame.GameRecord
	require.NoError(t, json.Unmarshal([]byte(out), &games))
	require.Len(t, games, 2)
	assert.Equal(t, "Go", games[0].Name())
}

func TestListCommandMissingDataFile(t *testing.T) {
	_, err := run(t, "list", "--data", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load dataset")
}

func TestListCommandInvalidFormat(t *testing.T) {
	_, err := run(t, "list", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestGetCommand(t *testing.T) {
	for _, raw := range []string{"3", "3.0", "0x3"} {
		t.Run(raw, func(t *testing.T) {
			out, err := run(t, "get", raw)
			require.NoError(t, err)

			var game boardgame.GameRecord
			require.NoError(t, json.Unmarshal([]byte(out), &game))
			assert.Equal(t, boardgame.ID(3), game.ID)
		})
	}
}

func TestGetCommandNotFound(t *testing.T) {
	for _, raw := range []string{"999", "abc"} {
		t.Run(raw, func(t *testing.T) {
			_, err := run(t, "get", raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, errGameNotFound)
			assert.Equal(t, "No game found with that id", err.Error())
		})
	}
}

func TestGetCommandArgs(t *testing.T) {
	_, err := run(t, "get")
	require.Error(t, err)

	_, err = run(t, "get", "1", "2")
	require.Error(t, err)
}

func TestCategoriesCommand(t *testing.T) {
	out, err := run(t, "categories")
	require.NoError(t, err)

	var categories []string
	require.NoError(t, json.Unmarshal([]byte(out), &categories))
	assert.ElementsMatch(t,
		[]string{"Strategy", "Family", "Cooperative", "Party", "Abstract", "Deck-building"},
		categories)
}
