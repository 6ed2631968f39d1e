// Copyright (c) 2023 Cisco Systems, Inc. and its affiliates
// All rights reserved.

package internal

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"
)

// Supported digest algorithms in canonical order. The order is fixed so that
// error messages enumerate the set deterministically.
var algos = []struct {
	name   string
	hasher Hasher
}{
	{"sha256", sha256.New},
	{"md5", md5.New},
}

var RecommendedAlgo = "sha256"

type Hasher func() hash.Hash

type Hash struct {
	algo   string
	hasher Hasher
}

var allAlgos = ""

func init() {
	initAlgoList()
}

func initAlgoList() {
	algoList := make([]string, 0, len(algos))
	foundRecommendedAlgo := false
	for _, a := range algos {
		algoList = append(algoList, a.name)
		if RecommendedAlgo == a.name {
			foundRecommendedAlgo = true
		}
	}
	allAlgos = strings.Join(algoList, ", ")
	if !foundRecommendedAlgo {
		panic(fmt.Sprintf("cannot find recommended algorithm '%s'", RecommendedAlgo))
	}
}

func NewHash(algo string) (*Hash, error) {
	for _, a := range algos {
		if a.name == algo {
			return &Hash{algo: a.name, hasher: a.hasher}, nil
		}
	}
	return nil, fmt.Errorf("unsupported hash algorithm '%s' (supported algorithms: %s)", algo, allAlgos)
}

func (h *Hash) Algo() string {
	return h.algo
}

// HexDigest feeds the UTF-8 bytes of data to the digest function in a single
// update and returns the lowercase hexadecimal digest.
func (h *Hash) HexDigest(data string) string {
	hasher := h.hasher()
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}

// SupportedAlgos returns the supported algorithm names in canonical order.
func SupportedAlgos() []string {
	names := make([]string, 0, len(algos))
	for _, a := range algos {
		names = append(names, a.name)
	}
	return names
}
