// Package tagger classifies episode description text into mood labels using a
// strict two-stage pipeline with a guaranteed fallback.
//
// Stage one scans the lowercased text for each mood's keyword substrings and
// selects every mood with at least one hit. Stage two runs only when stage one
// selects nothing: the batch of input texts and the mood profiles are
// vectorized together into a shared TF-IDF space and the single best-scoring
// mood above the similarity threshold is selected. If both stages come up
// empty the default label is assigned, so every text receives at least one
// mood.
//
// Semantic scores are batch-relative: IDF weights are fit over the union of
// input texts and mood profiles, so rankings are stable for a fixed batch but
// may shift if the batch changes. Classify a full catalog in one TagBatch
// call to keep scores comparable across episodes.
package tagger
