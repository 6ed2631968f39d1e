// Copyright (c) 2023 Cisco Systems, Inc. and its affiliates
// All rights reserved.

// Build-time versioning information, overridden via -ldflags at release time.

package internal

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
