// Package match implements the track matching engine: two-pass candidate
// retrieval against the catalog search API, fuzzy scoring of candidates
// against the expected title and artist, and best-candidate selection with
// a positive-score acceptance threshold.
//
// # Scoring
//
// [Score] rates a candidate out of a theoretical 80 points: artist
// similarity contributes up to 40, title similarity up to 30, and catalog
// popularity up to 10. Similarity is the Ratcliff/Obershelp ratio over
// lower-cased strings. Candidates whose name, artist, or album text
// contains a non-original-recording marker (karaoke, cover, tribute, and
// the like) lose a flat 50 points. Since [Select] only accepts strictly
// positive scores, a penalized near-exact match with low popularity is
// rejected outright rather than merely outranked.
//
// # Retrieval
//
// [Retriever.Retrieve] issues a field-scoped query (track:<title>
// artist:<artist>) followed by a free-text fallback (<title> <artist>).
// Each query is independently fault-isolated: a failing query is logged
// and contributes no candidates. Results are deduplicated by track ID,
// keeping the first occurrence.
package match
