// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It loads the local note tree, wires the sync and share services to the
// terminal UI and keeps the background loops running for the lifetime of
// the UI.
package client
