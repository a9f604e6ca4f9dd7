// Package tasks orchestrates the playlist-population pipeline with
// real-time progress reporting.
//
// # Core Operation
//
// [Engine.Run] drives the per-track pipeline across the whole input list:
//
//  1. For each query, retrieve candidates (two-pass search) and select the
//     best match. Queries are processed sequentially in input order, and
//     found/not-found ordering mirrors input order.
//  2. Accepted matches are optionally persisted through [TrackCacher];
//     cache failures are logged and never disrupt the run.
//  3. Unless running in dry-run mode, accepted track IDs are assembled into
//     a playlist: create the resource, then add tracks in consecutive
//     batches of at most 100.
//
// A playlist-creation failure aborts assembly and is returned as an error
// alongside the (still complete) run result. A failed batch stops
// population but the outcome keeps the playlist URL and the count of
// tracks added before the failure.
//
// # Progress Reporting
//
// Operations send [ProgressUpdate] values over a caller-supplied channel.
// Sends use select with default so reporting never blocks the pipeline.
package tasks
