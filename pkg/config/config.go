/*
Copyright 2023 The Yatai Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config carries the environment driven settings of the webhook
// manager. Command line flags override these values.
package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds the manager settings taken from the environment
type Config struct {
	// SystemNamespace is the namespace the webhook server runs in
	SystemNamespace string `envconfig:"YATAI_SYSTEM_NAMESPACE" default:"yatai-system"`
	// MetricsAddr is the address the metrics endpoint binds to
	MetricsAddr string `envconfig:"METRICS_ADDR" default:":8443"`
	// ProbeAddr is the address the health probe endpoint binds to
	ProbeAddr string `envconfig:"HEALTH_PROBE_ADDR" default:":8081"`
	// WebhookPort is the port the admission webhook server binds to
	WebhookPort int `envconfig:"WEBHOOK_PORT" default:"9443"`
	// LeaderElection enables leader election for the manager
	LeaderElection bool `envconfig:"LEADER_ELECTION" default:"false"`
}

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, errors.Wrap(err, "processing environment configuration")
	}
	return cfg, nil
}
