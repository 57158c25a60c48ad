// Package bookmark implements the in-memory tag-set model: a database
// mapping URLs to sets of tags, with pure add/remove/delete operations.
//
// Tag sets are stored as sorted, deduplicated string slices. Sorted storage
// gives deterministic serialization (the on-disk form round-trips exactly)
// and keeps display output stable without callers re-sorting.
//
// The package performs no I/O; persistence lives in internal/store.
package bookmark

import (
	"slices"
	"sort"
)

// Database maps a URL to its tag set. A URL key is an opaque string; it may
// be a well-formed URI or a filesystem path. Invariant: every present key
// has a non-empty tag set. Remove enforces this by deleting exhausted keys.
type Database map[string][]string

// New returns an empty database.
func New() Database {
	return Database{}
}

// Add unions tags into the URL's tag set, creating the entry if absent.
// Adding a tag that is already present has no effect. Empty tags are
// ignored so that no entry can violate the non-empty-set invariant.
func Add(db Database, url string, tags []string) {
	set := db[url]
	changed := false
	for _, t := range tags {
		if t == "" {
			continue
		}
		if !slices.Contains(set, t) {
			set = append(set, t)
			changed = true
		}
	}
	if len(set) == 0 {
		return
	}
	if changed {
		sort.Strings(set)
	}
	db[url] = set
}

// Remove subtracts tags from the URL's tag set. When the set becomes empty
// the key is deleted entirely: no key may map to an empty set. Removing
// from an absent URL is a no-op.
func Remove(db Database, url string, tags []string) {
	set, ok := db[url]
	if !ok {
		return
	}
	kept := set[:0]
	for _, t := range set {
		if !slices.Contains(tags, t) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(db, url)
		return
	}
	db[url] = kept
}

// Delete removes a URL and its tags from the database.
// Deleting an absent URL is a no-op.
func Delete(db Database, url string) {
	delete(db, url)
}

// Tags returns a copy of the URL's tag set and whether the URL is present.
func Tags(db Database, url string) ([]string, bool) {
	set, ok := db[url]
	if !ok {
		return nil, false
	}
	return slices.Clone(set), true
}

// URLs returns every URL in the database, sorted.
func URLs(db Database) []string {
	urls := make([]string, 0, len(db))
	for u := range db {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}

// AllTags returns every distinct tag in the database, sorted.
func AllTags(db Database) []string {
	seen := map[string]struct{}{}
	for _, set := range db {
		for _, t := range set {
			seen[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Clean re-establishes the sorted, deduplicated form of every tag set in
// place. It exists to normalize a database whose on-disk representation
// carried duplicates or unsorted lists. Entries are never deleted here,
// even ones whose stored list was empty; only Remove enforces the
// non-empty invariant.
func Clean(db Database) {
	for url, set := range db {
		sort.Strings(set)
		db[url] = slices.Compact(set)
	}
}
