// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the blockcal command line application.
//
// It wires configuration, local identity storage, the blocks API adapter,
// the month calendar and the block controller into one process, and exposes
// them either through the full-screen terminal UI or through one-shot
// subcommands that print to the console.
package client
