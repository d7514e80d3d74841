// Package mood defines the fixed mood vocabulary used to tag episode
// descriptions, along with the provenance markers that record how each label
// was assigned.
//
// Each mood pairs a keyword list with a semantic profile. Keywords are
// high-precision lexical triggers checked by substring containment; the
// profile is a descriptive text blob used only when keyword matching comes up
// empty and the tagger falls back to vector-space similarity. The two halves
// are configuration that travels together: adding or removing a label means
// redefining both.
package mood
