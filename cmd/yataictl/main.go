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
	"os"

	"github.com/spf13/cobra"
)

const ErrExitCode = 1

func main() {
	if err := NewYataictlCmd().Execute(); err != nil {
		os.Exit(ErrExitCode)
	}
}

// NewYataictlCmd builds the yataictl command tree
func NewYataictlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yataictl",
		Short: "Inspect and validate Bento and BentoDeployment manifests",
		Long: `yataictl works on static manifests, before they reach a cluster.

It loads Bento and BentoDeployment YAML files, checks every schema invariant
the admission webhooks would enforce, and resolves runner references between
the resources of the loaded set.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(
		NewValidateCmd(),
		NewDescribeCmd(),
	)
	return cmd
}
