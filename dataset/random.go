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

import "math/rand"

// NewRandomRatingSet generates a synthetic rating set. Every (user, movie) cell
// is observed with probability density, and observed ratings are integers in [1, 5].
func NewRandomRatingSet(rng *rand.Rand, density float64, userCount, movieCount int) *RatingSet {
	s := NewRatingSet()
	for movie := 0; movie < movieCount; movie++ {
		for user := 0; user < userCount; user++ {
			if rng.Float64() < density {
				s.Add(int32(user), int32(movie), float32(rng.Intn(5)+1))
			}
		}
	}
	return s
}
