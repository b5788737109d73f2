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

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/yaml"

	resourcesv1alpha1 "github.com/bentoml/yatai-apis/pkg/apis/resources/v1alpha1"
	"github.com/bentoml/yatai-apis/pkg/apis/serving/v2alpha1"
	"github.com/bentoml/yatai-apis/pkg/constants"
	"github.com/bentoml/yatai-apis/pkg/manifest"
)

// NewDescribeCmd builds the describe subcommand
func NewDescribeCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "describe <file|dir>...",
		Short: "Render the deployment topology declared by the manifests",
		Example: `
  yataictl describe config/samples
  yataictl describe -o yaml config/samples
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
			switch output {
			case "table":
			case "yaml":
				return renderYAML(cmd, set)
			default:
				return errors.Errorf("unsupported output format %q", output)
			}
			for _, deployment := range set.Deployments() {
				bento := set.Bento(types.NamespacedName{
					Namespace: deployment.Namespace,
					Name:      deployment.Spec.Bento,
				})
				fmt.Fprintf(cmd.OutOrStdout(), "BentoDeployment %s/%s (bento: %s)\n",
					deployment.Namespace, deployment.Name, deployment.Spec.Bento)
				renderDeployment(cmd, deployment, bento)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format, one of: table, yaml")
	return cmd
}

// renderYAML prints each deployment with defaults applied, as the
// admission webhook would persist it
func renderYAML(cmd *cobra.Command, set *manifest.Set) error {
	for _, deployment := range set.Deployments() {
		defaulted := deployment.DeepCopy()
		defaulted.Default()
		out, err := yaml.Marshal(defaulted)
		if err != nil {
			return errors.Wrapf(err, "marshaling BentoDeployment %s/%s", deployment.Namespace, deployment.Name)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "---")
		fmt.Fprint(cmd.OutOrStdout(), string(out))
	}
	return nil
}

func renderDeployment(cmd *cobra.Command, deployment *v2alpha1.BentoDeployment, bento *resourcesv1alpha1.Bento) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Component", "Runnable Type", "CPU (req/lim)", "Memory (req/lim)", "Replicas", "Scaling Metric"})
	t.AppendRow(table.Row{
		constants.BentoDeploymentComponentApiServer,
		"-",
		resourceCell(deployment.Spec.Resources, func(item *v2alpha1.ResourceItem) string { return item.CPU }),
		resourceCell(deployment.Spec.Resources, func(item *v2alpha1.ResourceItem) string { return item.Memory }),
		replicasCell(deployment.Spec.Autoscaling),
		metricCell(deployment.Spec.Autoscaling),
	})
	for i := range deployment.Spec.Runners {
		runner := &deployment.Spec.Runners[i]
		runnableType := "-"
		if bento != nil {
			if declared := bento.Spec.GetRunner(runner.Name); declared != nil && declared.RunnableType != "" {
				runnableType = declared.RunnableType
			}
		}
		t.AppendRow(table.Row{
			constants.BentoDeploymentComponentRunner + "/" + runner.Name,
			runnableType,
			resourceCell(runner.Resources, func(item *v2alpha1.ResourceItem) string { return item.CPU }),
			resourceCell(runner.Resources, func(item *v2alpha1.ResourceItem) string { return item.Memory }),
			replicasCell(runner.Autoscaling),
			metricCell(runner.Autoscaling),
		})
	}
	t.Render()
}

// resourceCell renders a request/limit pair out of a resources block
func resourceCell(resources *v2alpha1.Resources, pick func(*v2alpha1.ResourceItem) string) string {
	request, limit := "-", "-"
	if resources != nil {
		if resources.Requests != nil && pick(resources.Requests) != "" {
			request = pick(resources.Requests)
		}
		if resources.Limits != nil && pick(resources.Limits) != "" {
			limit = pick(resources.Limits)
		}
	}
	return request + " / " + limit
}

// replicasCell renders the scaling bounds of an autoscaling block
func replicasCell(autoscaling *v2alpha1.Autoscaling) string {
	if autoscaling == nil {
		return "-"
	}
	minReplicas := constants.DefaultAutoscalingMinReplicas
	if autoscaling.MinReplicas != nil {
		minReplicas = *autoscaling.MinReplicas
	}
	return fmt.Sprintf("%d-%d", minReplicas, autoscaling.MaxReplicas)
}

// metricCell renders the first utilization metric of an autoscaling block
func metricCell(autoscaling *v2alpha1.Autoscaling) string {
	if autoscaling == nil {
		return "-"
	}
	for _, metric := range autoscaling.Metrics {
		if metric.Resource == nil || metric.Resource.Target.AverageUtilization == nil {
			continue
		}
		return fmt.Sprintf("%s %d%%", metric.Resource.Name, *metric.Resource.Target.AverageUtilization)
	}
	return "-"
}
