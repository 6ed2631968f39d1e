// Copyright (c) 2023 Cisco Systems, Inc. and its affiliates
// All rights reserved.

package cmd

import (
	"fmt"

	"github.com/cisco-open/hashtool/internal"
	"github.com/spf13/cobra"
)

func addAlgos(cmd *cobra.Command) {
	algosCmd := &cobra.Command{
		Use:   "algos",
		Short: "List supported digest algorithms",
		Run:   runAlgos,
	}
	cmd.AddCommand(algosCmd)
}

func runAlgos(cmd *cobra.Command, args []string) {
	for _, algo := range internal.SupportedAlgos() {
		if algo == internal.RecommendedAlgo {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (default)\n", algo)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), algo)
		}
	}
}
