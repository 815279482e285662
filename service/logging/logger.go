/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/hyperledger-labs/fabric-cartrade/model"
	c "github.com/hyperledger-labs/fabric-cartrade/model/constants"
	"github.com/hyperledger/fabric-lib-go/common/flogging"
	"go.uber.org/zap/zapcore"
)

const loggerNameSeparator = "."

// Logger provides logging API
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Debugw(msg string, kvPairs ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Errorw(msg string, kvPairs ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Infow(msg string, kvPairs ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Warnw(msg string, kvPairs ...interface{})
	IsEnabledFor(level zapcore.Level) bool
}

// MustGetLogger Get a logger. The name parts are joined with dots, empty parts are skipped.
func MustGetLogger(parts ...string) Logger {
	return flogging.MustGetLogger(loggerName(parts...))
}

// InitializeLogger Initialize the Fabric Logger according to the params defined in config.yaml.
func InitializeLogger(config model.AppConfig) {
	initializeLogger(config, os.Stderr)
}

func initializeLogger(config model.AppConfig, w io.Writer) {
	flogging.Init(flogging.Config{
		Format:  string(logFormat(config.LogFormat)),
		Writer:  w,
		LogSpec: string(logLevel(config.Logging)),
	})
}

func getSupportedLevels() []model.LogLevel {
	return []model.LogLevel{
		c.SILENT,
		c.DEBUG,
		c.INFO,
		c.WARN,
		c.ERROR,
		c.FATAL,
	}
}

func logLevel(level model.LogLevel) model.LogLevel {
	l := model.LogLevel(strings.ToUpper(string(level)))
	if !slices.Contains(getSupportedLevels(), l) {
		fmt.Fprintf(os.Stderr, "Incorrect logging level '%s', fallback to default value '%s'\n", level, c.DefaultLogLevel)
		return c.DefaultLogLevel
	}
	if l == c.SILENT {
		// flogging has no silent level, fatal is the closest
		return c.FATAL
	}
	return l
}

func logFormat(format model.LogFormat) model.LogFormat {
	if len(format) == 0 {
		return c.DefaultLogFormat
	}
	return format
}

func isEmptyString(s string) bool { return len(s) == 0 }

func loggerName(parts ...string) string {
	return strings.Join(slices.DeleteFunc(slices.Clone(parts), isEmptyString), loggerNameSeparator)
}
