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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record builds a GameRecord the way the loader does, from a JSON document.
func record(id ID, name, category string) GameRecord {
	doc, err := json.Marshal(struct {
		ID       ID     `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
	}{id, name, category})
	if err != nil {
		panic(err)
	}
	var g GameRecord
	if err := json.Unmarshal(doc, &g); err != nil {
		panic(err)
	}
	return g
}

func testCollection() *Collection {
	return NewCollection([]GameRecord{
		record(1, "Catan", "Strategy"),
		record(2, "Codenames", "Party"),
		record(3, "Wingspan", "strategy"),
		record(4, "Pandemic", "Cooperative"),
		record(4, "Pandemic Legacy", "Cooperative"),
		record(5, "Straße", "STRASSE"),
	})
}

func ids(games []GameRecord) []ID {
	out := make([]ID, 0, len(games))
	for _, g := range games {
		out = append(out, g.ID)
	}
	return out
}

func TestNewCollectionCopiesInput(t *testing.T) {
	records := []GameRecord{{ID: 1, Category: "Strategy"}}
	c := NewCollection(records)

	records[0].Category = "Mutated"

	got, ok := c.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "Strategy", got.Category)
}

func TestAllReturnsCopy(t *testing.T) {
	c := testCollection()

	all := c.All()
	all[0].Category = "Mutated"

	assert.Equal(t, "Strategy", c.All()[0].Category)
	assert.Equal(t, "Catan", c.All()[0].Name())
	assert.Equal(t, 6, c.Len())
}

func TestFilterByCategory(t *testing.T) {
	c := testCollection()

	tests := []struct {
		name     string
		category string
		want     []ID
	}{
		{"exact case", "Strategy", []ID{1, 3}},
		{"lower case", "strategy", []ID{1, 3}},
		{"upper case", "STRATEGY", []ID{1, 3}},
		{"single match", "party", []ID{2}},
		{"unicode folding", "straße", []ID{5}},
		{"no partial match", "Strat", []ID{}},
		{"no match", "doesnotexist", []ID{}},
		{"empty returns all", "", []ID{1, 2, 3, 4, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.FilterByCategory(tt.category)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter(t *testing.T) {
	c := testCollection()
	party := "PARTY"

	assert.Len(t, c.Filter(nil), 6)
	assert.Len(t, c.Filter(&Query{}), 6)
	assert.Equal(t, []ID{2}, ids(c.Filter(&Query{Category: &party})))
}

func TestFindByID(t *testing.T) {
	c := testCollection()

	got, ok := c.FindByID(2)
	require.True(t, ok)
	assert.Equal(t, "Codenames", got.Name())

	_, ok = c.FindByID(99)
	assert.False(t, ok)

	_, ok = c.FindByID(-1)
	assert.False(t, ok)
}

func TestFindByIDReturnsFirstDuplicate(t *testing.T) {
	got, ok := testCollection().FindByID(4)
	require.True(t, ok)
	assert.Equal(t, "Pandemic", got.Name())
}

func TestDuplicateIDs(t *testing.T) {
	assert.Equal(t, []ID{4}, testCollection().duplicateIDs())
	assert.Empty(t, NewCollection([]GameRecord{{ID: 1}, {ID: 2}}).duplicateIDs())
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"Strategy", "Party", "Cooperative", "STRASSE"}, testCollection().Categories())
}

func TestNilCollection(t *testing.T) {
	var c *Collection

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.All())
	assert.NotNil(t, c.FilterByCategory("Strategy"))
	_, ok := c.FindByID(1)
	assert.False(t, ok)
}
