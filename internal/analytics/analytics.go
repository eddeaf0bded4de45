// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

/*
Package analytics counts search activity and serves back the most frequent
queries, which feed the search-suggestion blend.

Reporting is best-effort by contract: implementations swallow their own
failures, log them, and never propagate an error into a search call. Two
implementations exist, a per-process in-memory reporter and a Redis-backed
one for deployments where popularity should survive restarts.
*/
package analytics
