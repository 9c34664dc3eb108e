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

package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gorse-io/sgd/base/log"
	"github.com/gorse-io/sgd/model"
	"github.com/gorse-io/sgd/model/sgd"
	"github.com/juju/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config is the configuration for the update engine.
type Config struct {
	SGD SGDConfig `mapstructure:"sgd"`
}

// SGDConfig holds hyper-parameters of the update rule.
type SGDConfig struct {
	LearningRate float32 `mapstructure:"learning_rate" validate:"gt=0"`
	Beta         float32 `mapstructure:"beta" validate:"gte=0"`
	Symmetric    bool    `mapstructure:"symmetric"`
}

func GetDefaultConfig() *Config {
	return &Config{
		SGD: SGDConfig{
			LearningRate: sgd.DefaultLearningRate,
			Beta:         sgd.DefaultBeta,
			Symmetric:    false,
		},
	}
}

// Params converts the configuration to hyper-parameters of the update engine.
// Hyper-parameters in overrides take precedence over the configuration.
func (config *SGDConfig) Params(overrides ...model.Params) model.Params {
	params := model.Params{
		model.Lr:        config.LearningRate,
		model.Reg:       config.Beta,
		model.Symmetric: config.Symmetric,
	}
	for _, override := range overrides {
		params = params.Overwrite(override)
	}
	return params
}

func (config *Config) Validate() error {
	validate := validator.New()
	return errors.Trace(validate.Struct(config))
}

func setDefault(v *viper.Viper) {
	defaultConfig := GetDefaultConfig()
	// [sgd]
	v.SetDefault("sgd.learning_rate", defaultConfig.SGD.LearningRate)
	v.SetDefault("sgd.beta", defaultConfig.SGD.Beta)
	v.SetDefault("sgd.symmetric", defaultConfig.SGD.Symmetric)
}

type configBinding struct {
	key string
	env string
}

// LoadConfig from a TOML file. Environment variables take precedence over the
// file, and defaults fill the rest. An empty path loads defaults and
// environment variables only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefault(v)

	// bind environment bindings
	bindings := []configBinding{
		{"sgd.learning_rate", "SGD_LEARNING_RATE"},
		{"sgd.beta", "SGD_BETA"},
		{"sgd.symmetric", "SGD_SYMMETRIC"},
	}
	for _, binding := range bindings {
		if err := v.BindEnv(binding.key, binding.env); err != nil {
			log.Logger().Fatal("failed to bind a Viper key to a ENV variable", zap.Error(err))
		}
	}

	// load config file
	if path != "" {
		v.SetConfigType("toml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Trace(err)
		}
	}

	// unmarshal config file
	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &conf, nil
}
