// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the HTTP adapters, the secret services and the terminal UI into a
// single process lifecycle. With a copy field configured the client runs
// headless: it unlocks the secret with a terminal password prompt, copies
// the field and exits.
package client
