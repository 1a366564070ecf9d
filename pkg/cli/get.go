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
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/technigo/boardgames-api/pkg/boardgame"
)

// errGameNotFound is returned by get when no game matches the id.
var errGameNotFound = errors.New(boardgame.NotFoundMessage)

func getCmd() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Show one board game by id",
		ArgsUsage: "ID",
		Description: `Show the board game with the given id.

The id is coerced the same way the API coerces path values, so "3", "3.0"
and "0x3" all select game 3. Exits non-zero when no game matches.`,
		Flags: []cli.Flag{
			formatFlag(),
			dataFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one ID argument, got %d", cmd.Args().Len())
			}

			c, err := loadCollection(cmd)
			if err != nil {
				return err
			}

			game, ok := lookup(c, cmd.Args().First())
			if !ok {
				return errGameNotFound
			}
			return writeOutput(ctx, cmd, game)
		},
	}
}

func lookup(c *boardgame.Collection, raw string) (boardgame.GameRecord, bool) {
	id, ok := boardgame.ParseID(raw)
	if !ok {
		return boardgame.GameRecord{}, false
	}
	return c.FindByID(id)
}
