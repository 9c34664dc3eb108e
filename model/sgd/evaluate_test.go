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
	"testing"

	"github.com/gorse-io/sgd/dataset"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestPredict(t *testing.T) {
	w := []float32{1, 2, 3, 4}
	h := []float32{1, 1, 0, 2}
	score, err := Predict(w, h, 2, 1, 0)
	assert.NoError(t, err)
	assert.Equal(t, float32(7), score)
	score, err = Predict(w, h, 2, 0, 1)
	assert.NoError(t, err)
	assert.Equal(t, float32(4), score)
	// invalid input
	_, err = Predict(w, h, 0, 0, 0)
	assert.Equal(t, ErrInvalidDimension, errors.Cause(err))
	_, err = Predict(w, h, 3, 0, 0)
	assert.Equal(t, ErrDimensionMismatch, errors.Cause(err))
	_, err = Predict(w, h, 2, 2, 0)
	assert.Equal(t, ErrIndexOutOfRange, errors.Cause(err))
	_, err = Predict(w, h, 2, 0, -1)
	assert.Equal(t, ErrIndexOutOfRange, errors.Cause(err))
}

func TestLoss(t *testing.T) {
	w := []float32{1, 2, 3, 4}
	h := []float32{1, 1}
	ratings := dataset.NewRatingSet()
	ratings.Add(0, 0, 4)
	ratings.Add(1, 0, 7)
	loss, err := Loss(ratings, w, h, 2, 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, float32(1), loss)
	rmse, err := RMSE(ratings, w, h, 2, 1, 2)
	assert.NoError(t, err)
	assert.InDelta(t, 0.70710677, rmse, delta)
	// empty set
	rmse, err = RMSE(dataset.NewRatingSet(), w, h, 2, 1, 2)
	assert.NoError(t, err)
	assert.Zero(t, rmse)
	// invalid input
	ratings.Add(2, 0, 1)
	_, err = Loss(ratings, w, h, 2, 1, 2)
	assert.Equal(t, ErrIndexOutOfRange, errors.Cause(err))
	_, err = RMSE(ratings, w, h[:1], 2, 1, 2)
	assert.Equal(t, ErrDimensionMismatch, errors.Cause(err))
}
