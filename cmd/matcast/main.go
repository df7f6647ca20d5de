// Package main provides the matcast CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matcast-go/matcast/cast"
	"github.com/matcast-go/matcast/mat"
)

const version = "v0.1.0-dev"

func main() {
	root := &cobra.Command{
		Use:   "matcast",
		Short: "Bridge strongly-typed matrices to host N-d arrays",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.AddCommand(versionCmd(), describeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Printf("matcast %s\n", version)
		},
	}
}

func describeCmd() *cobra.Command {
	var rows, cols int
	var move bool
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Convert a demo matrix outbound and print the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := mat.NewDense[uint32](rows, cols, mat.RowMajor)
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					m.Set(i, j, uint32(i*cols+j))
				}
			}

			d := cast.DescribeDense(m)
			fmt.Printf("native:     %d×%d uint32, row-major, strides (%d, %d)\n",
				rows, cols, d.Strides[0], d.Strides[1])

			policy := cast.Automatic
			if move {
				policy = cast.Move
			}
			eff := cast.Resolve(policy, m.Fixed(), m.Len(), 4)
			fmt.Printf("policy:     %s -> %s\n", policy, eff)

			a, err := cast.DenseToHost(m, policy)
			if err != nil {
				return err
			}
			defer a.Release()
			fmt.Printf("host:       %s\n", a)
			fmt.Printf("owner held: %v\n", a.Owner() != nil)
			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 4, "row count of the demo matrix")
	cmd.Flags().IntVar(&cols, "cols", 4, "column count of the demo matrix")
	cmd.Flags().BoolVar(&move, "move", false, "request ownership transfer instead of the automatic policy")
	return cmd
}
