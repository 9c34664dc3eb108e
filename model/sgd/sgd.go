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
	"github.com/gorse-io/sgd/base/log"
	"github.com/gorse-io/sgd/common/floats"
	"github.com/gorse-io/sgd/dataset"
	"github.com/gorse-io/sgd/model"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

const (
	DefaultLearningRate float32 = 0.002
	DefaultBeta         float32 = 0.02
)

const (
	// ErrInvalidDimension means a user, movie or feature count is not positive.
	ErrInvalidDimension = errors.ConstError("invalid dimension")
	// ErrDimensionMismatch means a factor matrix or a feature row has a length
	// inconsistent with the dimensions.
	ErrDimensionMismatch = errors.ConstError("dimension mismatch")
	// ErrIndexOutOfRange means an observation refers to a user or a movie
	// outside the factor matrices.
	ErrIndexOutOfRange = errors.ConstError("index out of range")
)

// SGD updates latent factors of matrix factorization by stochastic gradient
// descent. The rating matrix R is approximated by W H^T, where W holds a row of
// features for each user and H holds a row of features for each movie. For an
// observed rating r_um, the error is e = r_um - w_u^T h_m and each feature f is
// updated by:
//
//	w_uf <- w_uf + lr (2 e h_mf - beta w_uf)
//	h_mf <- h_mf + lr (2 e w_uf - beta h_mf)
//
// By default the update of h_mf reads the value of w_uf written just before it.
// If Symmetric is set, both updates read the values before the step.
//
// Hyper-parameters:
//
//	Lr        - The learning rate. Default is 0.002.
//	Reg       - The regularization strength (beta). Default is 0.02.
//	Symmetric - Update both rows from the same snapshot. Default is false.
type SGD struct {
	Params    model.Params
	lr        float32
	beta      float32
	symmetric bool
}

// NewSGD creates an update engine.
func NewSGD(params model.Params) *SGD {
	s := new(SGD)
	s.SetParams(params)
	return s
}

// SetParams sets hyper-parameters of the update engine. params is copied.
func (s *SGD) SetParams(params model.Params) {
	s.Params = params.Copy()
	s.lr = s.Params.GetFloat32(model.Lr, DefaultLearningRate)
	s.beta = s.Params.GetFloat32(model.Reg, DefaultBeta)
	s.symmetric = s.Params.GetBool(model.Symmetric, false)
}

// GetParams returns all hyper-parameters.
func (s *SGD) GetParams() model.Params {
	return s.Params
}

// ApplyUpdates runs one epoch of SGD with default hyper-parameters.
func ApplyUpdates(ratings *dataset.RatingSet, w, h []float32, userCount, movieCount, featureCount int) error {
	return NewSGD(nil).ApplyUpdates(ratings, w, h, userCount, movieCount, featureCount)
}

// ApplyUpdates applies one SGD step for every observation in ratings, in the
// iteration order of ratings. w (userCount x featureCount) and h (movieCount x
// featureCount) are row-major and updated in place. Updates made for an
// observation are visible to the following ones. Inputs are validated before
// the first write, so w and h are untouched if an error is returned.
func (s *SGD) ApplyUpdates(ratings *dataset.RatingSet, w, h []float32, userCount, movieCount, featureCount int) error {
	if err := validate(ratings, w, h, userCount, movieCount, featureCount); err != nil {
		log.Logger().Warn("reject sgd updates", zap.Error(err))
		return errors.Trace(err)
	}
	if ce := log.Logger().Check(zap.DebugLevel, "apply sgd updates"); ce != nil {
		users, movies := ratings.Coverage(userCount, movieCount)
		ce.Write(
			zap.Int("n_ratings", ratings.Count()),
			zap.Uint("n_users", users.Count()),
			zap.Uint("n_movies", movies.Count()),
			zap.Int("n_features", featureCount),
			zap.Float32("lr", s.lr),
			zap.Float32("beta", s.beta),
			zap.Bool("symmetric", s.symmetric))
	}
	var err error
	ratings.Range(func(key dataset.Key, rating float32) bool {
		userFactor := floats.Row(w, featureCount, int(key.User))
		movieFactor := floats.Row(h, featureCount, int(key.Movie))
		var predicted float32
		predicted, err = dot(movieFactor, userFactor)
		if err != nil {
			return false
		}
		e := rating - predicted
		for f := 0; f < featureCount; f++ {
			wf, hf := userFactor[f], movieFactor[f]
			userFactor[f] = s.step(wf, hf, e)
			if s.symmetric {
				movieFactor[f] = s.step(hf, wf, e)
			} else {
				movieFactor[f] = s.step(hf, userFactor[f], e)
			}
		}
		return true
	})
	return errors.Trace(err)
}

// step returns x + lr (2 e y - beta x). Products are rounded to float32 one by
// one to keep the result independent of fused multiply-add.
func (s *SGD) step(x, y, e float32) float32 {
	grad := float32(float32(2*e)*y) - float32(s.beta*x)
	return x + float32(s.lr*grad)
}

func dot(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, errors.Annotatef(ErrDimensionMismatch, "dot product of vectors with length %d and %d", len(a), len(b))
	}
	return floats.Dot(a, b), nil
}

func validate(ratings *dataset.RatingSet, w, h []float32, userCount, movieCount, featureCount int) error {
	if userCount <= 0 || movieCount <= 0 || featureCount <= 0 {
		return errors.Annotatef(ErrInvalidDimension, "user count = %d, movie count = %d, feature count = %d",
			userCount, movieCount, featureCount)
	}
	if len(w) != userCount*featureCount {
		return errors.Annotatef(ErrDimensionMismatch, "len(W) = %d, expect %d x %d", len(w), userCount, featureCount)
	}
	if len(h) != movieCount*featureCount {
		return errors.Annotatef(ErrDimensionMismatch, "len(H) = %d, expect %d x %d", len(h), movieCount, featureCount)
	}
	var err error
	ratings.Range(func(key dataset.Key, _ float32) bool {
		if key.User < 0 || int(key.User) >= userCount {
			err = errors.Annotatef(ErrIndexOutOfRange, "user %d not in [0, %d)", key.User, userCount)
		} else if key.Movie < 0 || int(key.Movie) >= movieCount {
			err = errors.Annotatef(ErrIndexOutOfRange, "movie %d not in [0, %d)", key.Movie, movieCount)
		}
		return err == nil
	})
	return err
}
