// Copyright (c) lightx-go Authors.
// Licensed under the MIT License.

// Package config provides the configuration of the LightX SDK.
//
// Configuration is assembled in three layers with fixed precedence:
// built-in defaults, then an optional YAML file, then LIGHTX_* environment
// variables.
//
//	cfg, err := config.NewLoader().
//	    WithConfigPath("lightx.yaml").
//	    WithEnvPrefix("LIGHTX").
//	    Load()
package config
