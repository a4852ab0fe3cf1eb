// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive terminal application runtime.
//
// It seeds the sample note on first start and hands the shared services to
// the terminal UI for the lifetime of the process.
package client
