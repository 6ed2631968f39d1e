// Copyright (c) 2023 Cisco Systems, Inc. and its affiliates
// All rights reserved.

package internal

import (
	"encoding/json"
	"fmt"
	"io"
)

// Result is the success payload of an invocation: the algorithm actually used
// and the lowercase hex digest. Reporting the algorithm back makes it easier
// for the calling assistant to keep track of its context.
type Result struct {
	Algo string `json:"algo"`
	Hash string `json:"hash"`
}

// Write emits the result as a single JSON line.
func (r *Result) Write(w io.Writer) error {
	out, err := json.Marshal(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// WriteError emits the uniform failure line. Errors go to the same stream as
// results so the calling harness sees a single output channel.
func WriteError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", err)
}
