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

package sgd

import (
	"github.com/chewxy/math32"
	"github.com/gorse-io/sgd/common/floats"
	"github.com/gorse-io/sgd/dataset"
	"github.com/juju/errors"
)

// Predict the rating given by a user to a movie: w_u^T h_m.
func Predict(w, h []float32, featureCount, user, movie int) (float32, error) {
	if featureCount <= 0 {
		return 0, errors.Annotatef(ErrInvalidDimension, "feature count = %d", featureCount)
	}
	if len(w)%featureCount != 0 || len(h)%featureCount != 0 {
		return 0, errors.Annotatef(ErrDimensionMismatch, "len(W) = %d, len(H) = %d, feature count = %d",
			len(w), len(h), featureCount)
	}
	if userCount := len(w) / featureCount; user < 0 || user >= userCount {
		return 0, errors.Annotatef(ErrIndexOutOfRange, "user %d not in [0, %d)", user, userCount)
	}
	if movieCount := len(h) / featureCount; movie < 0 || movie >= movieCount {
		return 0, errors.Annotatef(ErrIndexOutOfRange, "movie %d not in [0, %d)", movie, movieCount)
	}
	return dot(floats.Row(h, featureCount, movie), floats.Row(w, featureCount, user))
}

// Loss returns the sum of squared errors over observed ratings.
func Loss(ratings *dataset.RatingSet, w, h []float32, userCount, movieCount, featureCount int) (float32, error) {
	if err := validate(ratings, w, h, userCount, movieCount, featureCount); err != nil {
		return 0, errors.Trace(err)
	}
	var (
		sum float32
		err error
	)
	ratings.Range(func(key dataset.Key, rating float32) bool {
		var predicted float32
		predicted, err = dot(floats.Row(h, featureCount, int(key.Movie)), floats.Row(w, featureCount, int(key.User)))
		if err != nil {
			return false
		}
		e := rating - predicted
		sum += float32(e * e)
		return true
	})
	if err != nil {
		return 0, errors.Trace(err)
	}
	return sum, nil
}

// RMSE returns the root mean squared error over observed ratings. It is zero
// if there is no observation.
func RMSE(ratings *dataset.RatingSet, w, h []float32, userCount, movieCount, featureCount int) (float32, error) {
	loss, err := Loss(ratings, w, h, userCount, movieCount, featureCount)
	if err != nil {
		return 0, errors.Trace(err)
	}
	if ratings.Count() == 0 {
		return 0, nil
	}
	return math32.Sqrt(loss / float32(ratings.Count())), nil
}
