// Copyright (c) 2023 Cisco Systems, Inc. and its affiliates
// All rights reserved.

package internal

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Environment variables making up the tool's input surface.
const (
	DataEnv = "DATA"
	AlgoEnv = "ALGO"
)

var DefaultConfigFile = "hashtool.toml"

// Options holds the fully resolved inputs of a single invocation.
type Options struct {
	Data string
	Algo string
}

type fileConfig struct {
	Defaults struct {
		Algo string
	}
}

// LoadEnvFile loads a .env file from the working directory when present.
// Values already set in the environment win over file entries.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// readConfigDefault reads the default algorithm from an optional TOML config
// file. A missing file yields an empty default; a malformed one is an error.
func readConfigDefault(path string) (string, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	var conf fileConfig
	d := toml.NewDecoder(file)
	if err := d.Decode(&conf); err != nil {
		return "", fmt.Errorf("invalid config file '%s': %s", path, err)
	}
	return conf.Defaults.Algo, nil
}

// ResolveOptions resolves the invocation inputs. Flags win over environment
// variables; for the algorithm the config file default applies next, then the
// built-in default. Algorithm validity is checked by NewHash.
func ResolveOptions(dataFlag, algoFlag, configFile string) (*Options, error) {
	data := dataFlag
	if data == "" {
		data = os.Getenv(DataEnv)
	}
	if data == "" {
		return nil, fmt.Errorf("a data argument must be provided (set the %s environment variable)", DataEnv)
	}
	algo := algoFlag
	if algo == "" {
		algo = os.Getenv(AlgoEnv)
	}
	if algo == "" {
		def, err := readConfigDefault(configFile)
		if err != nil {
			return nil, err
		}
		algo = def
	}
	if algo == "" {
		algo = RecommendedAlgo
	}
	return &Options{Data: data, Algo: algo}, nil
}
