/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package constants

import (
	"time"

	"github.com/hyperledger-labs/fabric-cartrade/model"
)

// Logging levels.
const (
	SILENT model.LogLevel = "SILENT"
	DEBUG  model.LogLevel = "DEBUG"
	INFO   model.LogLevel = "INFO"
	WARN   model.LogLevel = "WARN"
	ERROR  model.LogLevel = "ERROR"
	FATAL  model.LogLevel = "FATAL"
)

// DefaultLogLevel Used by the app in case no log level is specified.
const DefaultLogLevel = INFO

// Log formats.
const (
	LogFormatJson model.LogFormat = "json"
	LogFormatCons model.LogFormat = "%{color}%{time:2006-01-02 15:04:05 MST} [%{module}] %{shortfunc} -> %{level:.4s} %{color:reset} %{message}"
)

// DefaultLogFormat Used by the app in case no format is specified.
const DefaultLogFormat = LogFormatCons

// Metrics providers.
const (
	PrometheusMetrics model.MetricsProvider = "prometheus"
	MemoryMetrics     model.MetricsProvider = "memory"
	DisabledMetrics   model.MetricsProvider = "disabled"
)

// ENV variables
const (
	EnvPrefix           = "CARTRADE"
	UseDefaultConfigEnv = "CARTRADE_USE_DEFAULT_CONFIG"
	ConfigFileEnv       = "CARTRADE_CONFIG_FILE"
	// DiscoveryAsLocalhostEnv is read by the Fabric SDK when it maps discovered peer endpoints.
	DiscoveryAsLocalhostEnv = "DISCOVERY_AS_LOCALHOST"
)

const DefaultNetworkTimeout = 30 * time.Second
const DefaultShutdownTimeout = 10 * time.Second
const DefaultPoolSize = 4

// Backoff bounds of the opt-in retries.
const (
	DefaultRetryInterval    = 500 * time.Millisecond
	DefaultMaxRetryInterval = 5 * time.Second
)

// Chaincode functions called when the configuration does not override them.
const (
	RegisterCarFunction         = "registerCar"
	ChangeOwnerNameFunction     = "changeOwnerName"
	SellMyCarFunction           = "sellMyCar"
	BuyUserCarFunction          = "buyUserCar"
	GetMyCarFunction            = "getMyCar"
	GetAllRegisteredCarFunction = "getAllRegisteredCar"
	GetAllOrderedCarFunction    = "getAllOrderedCar"
)
