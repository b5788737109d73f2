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

package main

import (
	"testing"

	"github.com/onsi/gomega"
)

func TestManagerOptions(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	options := Options{
		metricsAddr:     ":8443",
		webhookPort:     9443,
		probeAddr:       ":8081",
		systemNamespace: "yatai-system",
		leaderElection:  true,
	}
	mgrOptions := managerOptions(options, nil)

	g.Expect(mgrOptions.Scheme).To(gomega.BeIdenticalTo(scheme))
	g.Expect(mgrOptions.Metrics.BindAddress).To(gomega.Equal(":8443"))
	g.Expect(mgrOptions.HealthProbeBindAddress).To(gomega.Equal(":8081"))
	g.Expect(mgrOptions.LeaderElection).To(gomega.BeTrue())
	g.Expect(mgrOptions.LeaderElectionID).To(gomega.Equal("yatai-webhook-manager"))
	g.Expect(mgrOptions.LeaderElectionNamespace).To(gomega.Equal("yatai-system"))
}
