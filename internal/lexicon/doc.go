// Package lexicon provides durable storage for dictionary entries.
//
// A lexicon maps spelled headwords to lists of entries (homographs). Each
// entry records the spelling shared with its headword, the underlying
// sound, the sound after rule application, a definition, and an optional
// part of speech. Entries under a headword are addressed by a zero-based
// index, so a single word lookup takes a (headword, index) pair.
//
// Storage is SQLite with WAL mode for concurrent read access.
package lexicon
