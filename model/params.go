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

package model

import (
	"github.com/gorse-io/sgd/base/log"
	"go.uber.org/zap"
)

// ParamName is the type of hyper-parameter names.
type ParamName string

// Predefined hyper-parameter names
const (
	Lr        ParamName = "Lr"        // learning rate
	Reg       ParamName = "Reg"       // regularization strength
	Symmetric ParamName = "Symmetric" // update both rows from the same snapshot
)

// Params stores hyper-parameters for an model. It is a map between strings
// (names) and interface{}s (values). For example, hyper-parameters for SGD
// is given by:
//
//	model.Params{
//		model.Lr:  0.002,
//		model.Reg: 0.02,
//	}
type Params map[ParamName]interface{}

// Copy hyper-parameters.
func (parameters Params) Copy() Params {
	newParams := make(Params)
	for k, v := range parameters {
		newParams[k] = v
	}
	return newParams
}

// GetBool gets a bool parameter by name. Returns _default if not exists or type doesn't match.
func (parameters Params) GetBool(name ParamName, _default bool) bool {
	if val, exist := parameters[name]; exist {
		switch val := val.(type) {
		case bool:
			return val
		default:
			log.Logger().Error("type mismatch",
				zap.String("param", string(name)),
				zap.String("expect", "bool"),
				zap.Any("value", val))
		}
	}
	return _default
}

// GetFloat32 gets a float32 parameter by name. Returns _default if not exists or type doesn't
// match. The type will be converted if given float64 or int.
func (parameters Params) GetFloat32(name ParamName, _default float32) float32 {
	if val, exist := parameters[name]; exist {
		switch val := val.(type) {
		case float32:
			return val
		case float64:
			return float32(val)
		case int:
			return float32(val)
		default:
			log.Logger().Error("type mismatch",
				zap.String("param", string(name)),
				zap.String("expect", "float32"),
				zap.Any("value", val))
		}
	}
	return _default
}

// Overwrite returns a merged copy where params take precedence.
func (parameters Params) Overwrite(params Params) Params {
	merged := make(Params)
	for k, v := range parameters {
		merged[k] = v
	}
	for k, v := range params {
		merged[k] = v
	}
	return merged
}
