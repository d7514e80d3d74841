// Package textutil provides the vector-space text machinery behind mood
// classification: tokenization with stopword filtering and bigram expansion,
// term-frequency fingerprints, corpus-level IDF weighting, and cosine
// similarity scoring.
//
// Tokenization lowercases text, splits on non-alphanumeric characters, drops
// tokens shorter than 2 characters and English stopwords, then emits every
// surviving unigram plus each adjacent bigram. Fingerprints are raw term
// counts with a precomputed Euclidean norm; Corpus collects document
// frequencies so fingerprints can be reweighted with IDF before comparison.
package textutil
