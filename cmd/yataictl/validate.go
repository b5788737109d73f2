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
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/bentoml/yatai-apis/pkg/manifest"
)

// NewValidateCmd builds the validate subcommand
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file|dir>...",
		Short: "Validate Bento and BentoDeployment manifests",
		Example: `
  yataictl validate config/samples
  yataictl validate bento.yaml deployment.yaml
		`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("at least one manifest path is required")
			}
			set, err := manifest.Load(args...)
			if err != nil {
				return err
			}
			if err := set.Validate(); err != nil {
				for _, finding := range flatten(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), "invalid:", finding)
				}
				return errors.Errorf("%d object(s) loaded, validation failed", set.Len())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d object(s) loaded, all valid\n", set.Len())
			return nil
		},
	}
	return cmd
}

// flatten unpacks an aggregate into its individual findings
func flatten(err error) []error {
	if agg, ok := err.(utilerrors.Aggregate); ok {
		return agg.Errors()
	}
	return []error{err}
}
