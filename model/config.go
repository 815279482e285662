/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package model

import (
	"time"
)

type Configuration struct {
	App     AppConfig     `mapstructure:"app"`
	Network NetworkConfig `mapstructure:"network"`
	Server  ServerConfig  `mapstructure:"server"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Batch   BatchConfig   `mapstructure:"batch"`
}

type AppConfig struct {
	Logging   LogLevel  `mapstructure:"logging"`
	LogFormat LogFormat `mapstructure:"logFormat"`
}

// NetworkConfig locates the Fabric network, the wallet holding the client
// identities and the contract the operations are dispatched to.
type NetworkConfig struct {
	ConnectionProfile string          `mapstructure:"connectionProfile" validate:"required"`
	WalletPath        string          `mapstructure:"walletPath" validate:"required"`
	Channel           string          `mapstructure:"channel" validate:"required"`
	Contract          string          `mapstructure:"contract" validate:"required"`
	Discovery         DiscoveryConfig `mapstructure:"discovery"`
	Timeout           time.Duration   `mapstructure:"timeout" validate:"min=0"`
	// Functions maps an operation or query name to the chaincode function it calls.
	// Missing entries fall back to the defaults in the constants package.
	Functions map[string]string `mapstructure:"functions"`
}

type DiscoveryConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	AsLocalhost bool `mapstructure:"asLocalhost"`
}

type ServerConfig struct {
	Endpoint        string        `mapstructure:"endpoint" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

type MetricsConfig struct {
	Provider MetricsProvider `mapstructure:"provider" validate:"oneof=prometheus memory disabled"`
}

type BatchConfig struct {
	PoolSize int `mapstructure:"poolSize" validate:"min=1"`
}

// LogLevel String defining a log level.
type LogLevel string

// LogFormat String defining a log format.
type LogFormat string

// MetricsProvider names the backend metrics are recorded to.
type MetricsProvider string
