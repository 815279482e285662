/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"bytes"
	"embed"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/hyperledger-labs/fabric-cartrade/model"
	c "github.com/hyperledger-labs/fabric-cartrade/model/constants"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

//go:embed resources/config.yaml
var embeddedFiles embed.FS

// Load Read the configuration and return it.
// The embedded defaults are merged with configFile, or the file named by
// CARTRADE_CONFIG_FILE if configFile is empty, and with CARTRADE_* env variables.
func Load(configFile string) (*model.Configuration, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(c.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if os.Getenv(c.UseDefaultConfigEnv) != "false" {
		if err := loadDefaultConfig(v); err != nil {
			return nil, err
		}
	}

	if len(configFile) == 0 {
		configFile = os.Getenv(c.ConfigFileEnv)
	}
	if len(configFile) != 0 {
		if err := loadConfig(v, configFile); err != nil {
			return nil, err
		}
	}

	var config model.Configuration
	err := v.Unmarshal(&config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		normalizeCaseHookFunc(),
	)))
	if err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal the configuration")
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &config, nil
}

// loadConfig Read the configuration file passed by flag or environment variable.
func loadConfig(v *viper.Viper, configFile string) error {
	v.SetConfigFile(configFile)

	if err := v.MergeInConfig(); err != nil {
		return errors.Wrapf(err, "couldn't read the config file '%s'", configFile)
	}

	return nil
}

// loadDefaultConfig Read the default configuration file.
func loadDefaultConfig(v *viper.Viper) error {
	configuration, err := embeddedFiles.ReadFile("resources/config.yaml")
	if err != nil {
		return errors.Wrap(err, "couldn't find the default config file 'config.yaml'")
	}

	if err := v.ReadConfig(bytes.NewReader(configuration)); err != nil {
		return errors.Wrap(err, "couldn't read the default config file 'config.yaml'")
	}

	return nil
}

// normalizeCaseHookFunc accepts log levels and metrics providers in any case.
func normalizeCaseHookFunc() mapstructure.DecodeHookFuncType {
	logLevel := reflect.TypeOf(model.LogLevel(""))
	metricsProvider := reflect.TypeOf(model.MetricsProvider(""))

	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		switch t {
		case logLevel:
			return strings.ToUpper(reflect.ValueOf(data).String()), nil
		case metricsProvider:
			return strings.ToLower(reflect.ValueOf(data).String()), nil
		default:
			return data, nil
		}
	}
}
