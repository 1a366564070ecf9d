// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package boardgame

import (
	"slices"

	"golang.org/x/text/cases"
)

// Collection is an ordered, read-only set of game records.
// The zero value is an empty collection.
type Collection struct {
	records []GameRecord
}

// NewCollection returns a Collection holding a copy of records.
func NewCollection(records []GameRecord) *Collection {
	return &Collection{records: slices.Clone(records)}
}

// Len returns the number of records.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// All returns a copy of every record in dataset order.
func (c *Collection) All() []GameRecord {
	if c == nil {
		return []GameRecord{}
	}
	out := make([]GameRecord, len(c.records))
	copy(out, c.records)
	return out
}

// FilterByCategory returns the records whose category equals category after
// case folding, in dataset order. An empty category returns all records.
// No match yields an empty, non-nil slice.
func (c *Collection) FilterByCategory(category string) []GameRecord {
	if category == "" {
		return c.All()
	}

	out := []GameRecord{}
	if c == nil {
		return out
	}

	want := fold(category)
	for _, rec := range c.records {
		if fold(rec.Category) == want {
			out = append(out, rec)
		}
	}
	return out
}

// Filter applies q to the collection. A nil Query returns all records.
func (c *Collection) Filter(q *Query) []GameRecord {
	if q == nil || q.Category == nil {
		return c.All()
	}
	return c.FilterByCategory(*q.Category)
}

// FindByID returns the first record with the given id.
func (c *Collection) FindByID(id ID) (GameRecord, bool) {
	if c == nil {
		return GameRecord{}, false
	}
	for _, rec := range c.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return GameRecord{}, false
}

// Categories returns the distinct categories in order of first appearance.
func (c *Collection) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range c.All() {
		key := fold(rec.Category)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, rec.Category)
	}
	return out
}

// duplicateIDs returns every id that appears more than once, in order of
// first repetition.
func (c *Collection) duplicateIDs() []ID {
	seen := make(map[ID]int, c.Len())
	var dups []ID
	for _, rec := range c.All() {
		seen[rec.ID]++
		if seen[rec.ID] == 2 {
			dups = append(dups, rec.ID)
		}
	}
	return dups
}

// fold returns the case-folded form of s. Casers hold state, so a fresh one
// is built per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
