// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/consensys/sparse-array/pkg/field"
	"github.com/consensys/sparse-array/pkg/sparse"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] table_file",
	Short: "generate a Noir constant for a given lookup table.",
	Long: `Generate a sparse, binary-searchable Noir constant from a JSON table
description, for embedding into Noir circuit source.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		filename := GetString(cmd, "output")
		// Parse table description
		table := readTableFile(args[0])
		// Generate the Noir literal
		source := generateNoirTable(table)
		// Write out (or print) the result
		if filename == "" {
			fmt.Println(source)
		} else if err := os.WriteFile(filename, []byte(source), 0644); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
	},
}

// TableFile is the JSON description of a lookup table accepted by the
// generate command.  Keys and the domain size are decimal or 0x-prefixed
// hexadecimal strings; values must fit in 32 bits.  When packed is set,
// values is interpreted as a fully dense byte-indexed table (keys must be
// omitted) and is reduced to a sparse key set before construction.
type TableFile struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Size    string   `json:"size"`
	Keys    []string `json:"keys"`
	Values  []uint32 `json:"values"`
	Packed  bool     `json:"packed"`
	MaxSize uint32   `json:"max_size"`
}

// Read and parse a table description file, exiting on any failure.
func readTableFile(filename string) *TableFile {
	bytes, err := os.ReadFile(filename)
	if err == nil {
		var table *TableFile
		//
		if table, err = parseTableFile(bytes); err == nil {
			return table
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

// Parse (and sanity check) the JSON description of a lookup table.
func parseTableFile(bytes []byte) (*TableFile, error) {
	var table TableFile
	//
	if err := json.Unmarshal(bytes, &table); err != nil {
		return nil, err
	}
	//
	if table.Packed {
		if len(table.Keys) != 0 {
			return nil, fmt.Errorf("packed table cannot declare explicit keys")
		} else if table.MaxSize == 0 {
			return nil, fmt.Errorf("packed table requires a non-zero max_size")
		}
	} else {
		if len(table.Keys) != len(table.Values) {
			return nil, fmt.Errorf("table has %d keys but %d values", len(table.Keys), len(table.Values))
		} else if table.Size == "" {
			return nil, fmt.Errorf("table requires a size")
		}
	}
	//
	return &table, nil
}

// Construct the table and render it as a Noir literal.  Construction-time
// assertion failures (bound violations, etc) surface here as panics and are
// reported as fatal errors.
func generateNoirTable(table *TableFile) string {
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("table construction failed: %v", r)
		}
	}()
	//
	if table.Packed {
		log.Debugf("packing dense table of %d entries", len(table.Values))
		//
		return sparse.CreatePacked(table.Values, table.MaxSize).ToNoirString(table.Name, table.Type)
	}
	//
	var (
		keys = make([]field.Element, len(table.Keys))
		err  error
	)
	//
	for i, k := range table.Keys {
		if keys[i], err = field.FromString(k); err != nil {
			log.Fatal(err)
		}
	}
	//
	size, err := field.FromString(table.Size)
	if err != nil {
		log.Fatal(err)
	}
	//
	log.Debugf("building sparse table of %d entries", len(keys))
	//
	return sparse.Create(keys, table.Values, size).ToNoirString(table.Name, table.Type)
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("output", "o", "", "write generated Noir source to a given file")
}
