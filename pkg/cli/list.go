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
	"log/slog"

	"github.com/urfave/cli/v3"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:                  "list",
		EnableShellCompletion: true,
		Usage:                 "List board games, optionally filtered by category",
		Description: `List every board game in the dataset in its original order.

Use --category to keep only games whose category matches, ignoring case.
A category with no games prints an empty list.

# Examples

  boardgames list --category strategy
  boardgames list --format yaml --data ./games.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Usage:   "Only list games in this category (case-insensitive)",
			},
			formatFlag(),
			dataFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := loadCollection(cmd)
			if err != nil {
				return err
			}

			games := c.FilterByCategory(cmd.String("category"))
			slog.Debug("listing board games",
				"category", cmd.String("category"),
				"results", len(games))

			return writeOutput(ctx, cmd, games)
		},
	}
}

func categoriesCmd() *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "List the distinct categories in the dataset",
		Flags: []cli.Flag{
			formatFlag(),
			dataFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := loadCollection(cmd)
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, c.Categories())
		},
	}
}

