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

package log

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *zap.Logger

func init() {
	// setup default logger, debug logs are enabled by SetDevelopmentLogger
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	var err error
	logger, err = cfg.Build()
	if err != nil {
		panic(err)
	}
}

// Logger get current logger
func Logger() *zap.Logger {
	return logger
}

// CloseLogger drops everything below fatal.
func CloseLogger() {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.FatalLevel)
	var err error
	logger, err = cfg.Build()
	if err != nil {
		panic(err)
	}
}

// SetDevelopmentLogger set current logger in development mode. Logs are written
// to stdout and to every file in outputPaths.
func SetDevelopmentLogger(outputPaths ...string) {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.999999")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), writeSyncer(outputPaths), zap.DebugLevel)
	logger = zap.New(core, zap.AddCaller(), zap.Development())
}

// SetProductionLogger set current logger in production mode. Logs are encoded
// as JSON and written to stdout and to every file in outputPaths.
func SetProductionLogger(outputPaths ...string) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.999999")
	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), writeSyncer(outputPaths), zap.InfoLevel)
	logger = zap.New(core, zap.AddCaller())
}

func writeSyncer(outputPaths []string) zapcore.WriteSyncer {
	writers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	for _, path := range outputPaths {
		// create parent directories and touch the file so failures surface here
		if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
			panic(err)
		}
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			panic(err)
		}
		_ = file.Close()
		writers = append(writers, zapcore.AddSync(&lumberjack.Logger{
			Filename: path,
			MaxSize:  100,
		}))
	}
	return zap.CombineWriteSyncers(writers...)
}
