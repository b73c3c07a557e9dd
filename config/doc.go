// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config holds the sketch configuration and resolves it against the
// runtime environment.
//
// # Layers
//
// A configuration is built in three steps:
//
//  1. [Default] returns the base values.
//  2. [Merge] applies an [Override]. Scalars are replaced wholesale; the two
//     stamp density groups merge field by field, so an override that sets
//     only Edge keeps the default Fill.
//  3. [Resolve] adapts the merged values to an [Environment]: embedded
//     pages get half the density and particle budget, and the line width
//     follows the container scale factor.
//
// Resolve is pure. Call it again whenever the environment changes.
package config
