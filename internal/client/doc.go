// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the faceid command line client.
//
// It reads a captured frame from disk, calls the face service HTTP API with
// the account's bearer token and prints the tagged result as JSON.
package client
