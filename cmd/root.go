// Copyright (c) 2023 Cisco Systems, Inc. and its affiliates
// All rights reserved.

package cmd

import (
	"os"
	"strings"

	"github.com/cisco-open/hashtool/internal"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hashtool",
		Short:         "Hashtool computes a digest of a text payload and reports it as JSON",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}
	cmd.PersistentFlags().StringP("log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal)")
	cmd.Flags().String("data", "", "Text payload to hash (default: $"+internal.DataEnv+")")
	cmd.Flags().String("algo", "", "Digest algorithm (default: $"+internal.AlgoEnv+", then "+internal.RecommendedAlgo+")")
	cmd.Flags().String("config", internal.DefaultConfigFile, "Config file holding default settings")
	addAlgos(cmd)
	addVersion(cmd)
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	dataFlag, err := cmd.Flags().GetString("data")
	if err != nil {
		return err
	}
	algoFlag, err := cmd.Flags().GetString("algo")
	if err != nil {
		return err
	}
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	opts, err := internal.ResolveOptions(dataFlag, algoFlag, configFile)
	if err != nil {
		return err
	}
	hash, err := internal.NewHash(opts.Algo)
	if err != nil {
		return err
	}
	log.Debug().Msgf("hashing %s payload with %s", humanize.Bytes(uint64(len(opts.Data))), hash.Algo())
	result := internal.Result{Algo: hash.Algo(), Hash: hash.HexDigest(opts.Data)}
	return result.Write(cmd.OutOrStdout())
}

func initLog(ll string) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	switch strings.ToLower(ll) {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "err", "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Execute runs the root command. It is the single error boundary: any failure
// is reported as one 'Error:' line on stdout and an exit status of 1. Errors
// go to stdout rather than stderr because the calling harness captures stdout
// only and feeds it back to the assistant.
func Execute(rootCmd *cobra.Command) {
	ll, err := rootCmd.PersistentFlags().GetString("log-level")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	initLog(ll)
	internal.LoadEnvFile()
	if err := rootCmd.Execute(); err != nil {
		internal.WriteError(os.Stdout, err)
		os.Exit(1)
	}
}
