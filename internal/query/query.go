// Package query implements listing, tag-frequency aggregation, and
// regex-based tag search over a bookmark database.
//
// Results are materialized slices in no particular order; callers apply
// SortEntries / SortCounts before display so that output is deterministic.
// The engine itself makes no ordering promise.
package query

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"sort"

	"github.com/mariotti/bookmark/internal/bookmark"
)

// ErrPattern marks a malformed search pattern. The underlying regexp error
// is wrapped alongside it.
var ErrPattern = errors.New("invalid search pattern")

// Entry is one listing result: a URL and its full tag set.
type Entry struct {
	URL  string   `json:"url"`
	Tags []string `json:"tags,omitempty"`
}

// TagCount is one aggregation result: how many URLs carry the tag.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// ListAny returns the entries whose tag set intersects tags.
// An empty tags argument matches every URL.
func ListAny(db bookmark.Database, tags []string) []Entry {
	var entries []Entry
	for url, set := range db {
		if len(tags) == 0 || intersects(set, tags) {
			entries = append(entries, Entry{URL: url, Tags: slices.Clone(set)})
		}
	}
	return entries
}

// ListEvery returns the entries whose tag set contains every requested tag.
// An empty tags argument matches every URL as well, but through the subset
// law (the empty set is a subset of any set) rather than an explicit
// all-URLs branch; the two list operations keep their distinct shapes.
func ListEvery(db bookmark.Database, tags []string) []Entry {
	var entries []Entry
	for url, set := range db {
		if containsAll(set, tags) {
			entries = append(entries, Entry{URL: url, Tags: slices.Clone(set)})
		}
	}
	return entries
}

// Frequency counts, across all URLs, how many URLs each distinct tag
// appears on. Membership is per tag set, so a tag counts once per URL.
func Frequency(db bookmark.Database) []TagCount {
	counts := map[string]int{}
	for _, set := range db {
		for _, t := range set {
			counts[t]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, TagCount{Tag: t, Count: n})
	}
	return out
}

// Search returns frequency counts restricted to tags matching pattern.
// Matching is unanchored: the pattern may match anywhere in the tag.
// A malformed pattern returns an error wrapping ErrPattern; it is never
// recovered here.
func Search(db bookmark.Database, pattern string) ([]TagCount, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrPattern, pattern, err)
	}

	var out []TagCount
	for _, tc := range Frequency(db) {
		if re.MatchString(tc.Tag) {
			out = append(out, tc)
		}
	}
	return out, nil
}

// SortEntries orders entries by URL for stable display.
func SortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].URL < entries[j].URL
	})
}

// SortCounts orders counts ascending, least-used tag first, breaking ties
// by tag name. This is the display order every surface reproduces.
func SortCounts(counts []TagCount) {
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count < counts[j].Count
		}
		return counts[i].Tag < counts[j].Tag
	})
}

func intersects(set, tags []string) bool {
	for _, t := range tags {
		if slices.Contains(set, t) {
			return true
		}
	}
	return false
}

func containsAll(set, tags []string) bool {
	for _, t := range tags {
		if !slices.Contains(set, t) {
			return false
		}
	}
	return true
}
