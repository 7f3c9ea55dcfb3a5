// Copyright © 2017 NAME HERE <EMAIL ADDRESS>
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

package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/arl/nest/jsonrenderer"
	"github.com/arl/nest/jsonsource"
	"github.com/arl/nest/nest"
	"github.com/arl/nest/nestcfg"
	"github.com/arl/nest/nestctx"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run SHAPES OUTFILE",
	Short: "nest parts into a bin",
	Long: `Read bin and part geometry from a JSON shape document (SHAPES),
run the nesting algorithm, and write the best placement found to OUTFILE
in JSON format. Runs until interrupted (Ctrl-C).`,
	Args: cobra.ExactArgs(2),
	Run:  doRun,
}

var (
	cfgVal  string
	seedVal int64
)

func init() {
	RootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&cfgVal, "config", "nest.yml", "nesting settings")
	runCmd.Flags().Int64Var(&seedVal, "seed", 1, "GA random seed")
}

func doRun(cmd *cobra.Command, args []string) {
	shapesPath, outPath := args[0], args[1]

	cfg := nestcfg.Default()
	if _, err := os.Stat(cfgVal); err == nil {
		loaded, err := nestcfg.Load(cfgVal)
		check(err)
		cfg = loaded
	}
	check(cfg.Validate())

	logCtx := nestctx.New(true)
	source := jsonsource.Open(shapesPath)
	renderer := jsonrenderer.ToFile(outPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		fmt.Println("interrupted, stopping after the current individual...")
		cancel()
	}()

	shapes, err := source.Shapes(ctx)
	check(err)

	co := nest.NewCoordinator(cfg, logCtx, rand.New(rand.NewSource(seedVal)))
	check(co.Prepare(shapes))

	sol, err := co.Run(ctx, renderer)
	check(err)

	fmt.Printf("best fitness: %v, %d bin(s), %d unplaced part(s)\n", sol.Fitness, len(sol.Bins), len(sol.Unplaced))
	for _, msg := range logCtx.Messages() {
		fmt.Printf("[%s] %s\n", msg.Category, msg.Text)
	}
}
