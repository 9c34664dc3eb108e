// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dataset

import (
	"cmp"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/samber/lo"
)

// Key identifies an observation by dense user index and dense movie index.
type Key struct {
	User  int32
	Movie int32
}

func compareKeys(a, b Key) int {
	if c := cmp.Compare(a.User, b.User); c != 0 {
		return c
	}
	return cmp.Compare(a.Movie, b.Movie)
}

// RatingSet is a sparse set of observed ratings. Keys are unique and iteration
// is ordered by user, then by movie. A RatingSet is not safe for concurrent use.
type RatingSet struct {
	ratings map[Key]float32
	keys    []Key // sorted keys, nil after an insertion
}

// NewRatingSet creates an empty rating set.
func NewRatingSet() *RatingSet {
	return &RatingSet{ratings: make(map[Key]float32)}
}

// Add a rating. The rating of an existing key is overwritten. Unlike the read
// methods, Add requires a non-nil set; the zero value is ready to use.
func (s *RatingSet) Add(user, movie int32, rating float32) {
	if s.ratings == nil {
		s.ratings = make(map[Key]float32)
	}
	key := Key{User: user, Movie: movie}
	if _, exist := s.ratings[key]; !exist {
		s.keys = nil
	}
	s.ratings[key] = rating
}

// Get the rating given by a user to a movie.
func (s *RatingSet) Get(user, movie int32) (float32, bool) {
	if s == nil {
		return 0, false
	}
	rating, exist := s.ratings[Key{User: user, Movie: movie}]
	return rating, exist
}

// Count returns the number of observations.
func (s *RatingSet) Count() int {
	if s == nil {
		return 0
	}
	return len(s.ratings)
}

// Keys returns all keys in iteration order.
func (s *RatingSet) Keys() []Key {
	if s == nil {
		return nil
	}
	return slices.Clone(s.sortedKeys())
}

func (s *RatingSet) sortedKeys() []Key {
	if s.keys == nil {
		s.keys = lo.Keys(s.ratings)
		slices.SortFunc(s.keys, compareKeys)
	}
	return s.keys
}

// Range calls f for each observation in iteration order until f returns false.
func (s *RatingSet) Range(f func(key Key, rating float32) bool) {
	if s == nil {
		return
	}
	for _, key := range s.sortedKeys() {
		if !f(key, s.ratings[key]) {
			return
		}
	}
}

// Coverage returns users and movies having at least one observation. Keys
// outside [0, userCount) x [0, movieCount) are ignored.
func (s *RatingSet) Coverage(userCount, movieCount int) (users, movies *bitset.BitSet) {
	users = bitset.New(uint(max(userCount, 0)))
	movies = bitset.New(uint(max(movieCount, 0)))
	s.Range(func(key Key, _ float32) bool {
		if key.User >= 0 && int(key.User) < userCount &&
			key.Movie >= 0 && int(key.Movie) < movieCount {
			users.Set(uint(key.User))
			movies.Set(uint(key.Movie))
		}
		return true
	})
	return
}
