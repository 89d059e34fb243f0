package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rawvec-go/rawvec/pkg/vec"
)

var (
	growCount int
)

var growCmd = &cobra.Command{
	Use:   "grow",
	Short: "Time raw append growth and print the capacity schedule",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v := vec.New[int]()

		var schedule []int
		start := time.Now()
		for i := 0; i < growCount; i++ {
			before := v.Cap()
			if err := v.Push(i); err != nil {
				fatal("push failed", err)
			}
			if v.Cap() != before {
				schedule = append(schedule, v.Cap())
			}
		}
		elapsed := time.Since(start)

		fmt.Printf("appended %d elements in %v (%.0f ops/s)\n",
			growCount, elapsed, float64(growCount)/elapsed.Seconds())
		fmt.Printf("final: len=%d cap=%d\n", v.Len(), v.Cap())
		fmt.Printf("capacity schedule: %v\n", schedule)
	},
}

func init() {
	rootCmd.AddCommand(growCmd)
	growCmd.Flags().IntVar(&growCount, "count", 100000, "Number of elements to append")
}
