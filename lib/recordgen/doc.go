// Copyright 2026 The Mediachain Authors
// SPDX-License-Identifier: Apache-2.0

// Package recordgen generates random, valid record.Record values for
// property-based testing. It is the one place that knows how to build
// a structurally valid instance of all fourteen variants, so the
// record package's own tests and any downstream package's tests (a
// transactor, a datastore, a peer implementation) can generate fixture
// records without duplicating that knowledge.
//
// Generation is built on math/rand plus testing/quick's Generator
// protocol (see Value), the only property-testing mechanism used
// anywhere in this codebase — no third-party property-testing library
// is needed for it.
package recordgen
