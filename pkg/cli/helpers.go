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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/technigo/boardgames-api/pkg/boardgame"
	"github.com/technigo/boardgames-api/pkg/serializer"
)

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
		Value: string(serializer.FormatJSON),
	}
}

func dataFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:      "data",
		Aliases:   []string{"d"},
		Usage:     "Path to a JSON or YAML dataset (default: embedded dataset)",
		Sources:   cli.EnvVars(boardgame.EnvVarDataFile),
		TakesFile: true,
	}
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			cmd.String("format"), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// loadCollection loads the dataset named by --data, or the embedded one.
func loadCollection(cmd *cli.Command) (*boardgame.Collection, error) {
	c, err := boardgame.LoadFrom(cmd.String("data"))
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return c, nil
}

// commandWriter returns the command's writer, defaulting to stdout.
func commandWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// newOutputSerializer returns a serializer for the --format flag writing to
// the command's output.
func newOutputSerializer(cmd *cli.Command) (serializer.Serializer, error) {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}
	return serializer.NewWriter(format, commandWriter(cmd)), nil
}

func writeOutput(ctx context.Context, cmd *cli.Command, v any) error {
	ser, err := newOutputSerializer(cmd)
	if err != nil {
		return err
	}
	if err := ser.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
