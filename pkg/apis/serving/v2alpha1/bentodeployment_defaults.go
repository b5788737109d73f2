/*
Copyright 2022 The Yatai Authors.

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

package v2alpha1

import (
	autoscalingv2 "k8s.io/api/autoscaling/v2"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/utils/ptr"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/bentoml/yatai-apis/pkg/constants"
)

// logger for defaulting.
var defaulterLogger = logf.Log.WithName("bentodeployment-v2alpha1-defaulter")

// Default fills in the autoscaling policy for the api-server and every runner
// override. An absent block means a fixed single replica. A block that scales
// but declares no metric falls back to CPU utilization.
func (d *BentoDeployment) Default() {
	defaulterLogger.Info("apply defaults", "name", d.Name)
	d.Spec.Default()
}

// Default applies the spec level defaults, see BentoDeployment.Default
func (s *BentoDeploymentSpec) Default() {
	s.Autoscaling = defaultAutoscaling(s.Autoscaling)
	for i := range s.Runners {
		s.Runners[i].Autoscaling = defaultAutoscaling(s.Runners[i].Autoscaling)
	}
}

func defaultAutoscaling(autoscaling *Autoscaling) *Autoscaling {
	if autoscaling == nil {
		autoscaling = &Autoscaling{}
	}
	if autoscaling.MinReplicas == nil {
		autoscaling.MinReplicas = ptr.To(constants.DefaultAutoscalingMinReplicas)
	}
	if autoscaling.MaxReplicas == 0 {
		autoscaling.MaxReplicas = max(constants.DefaultAutoscalingMaxReplicas, *autoscaling.MinReplicas)
	}
	if len(autoscaling.Metrics) == 0 && autoscaling.MaxReplicas > *autoscaling.MinReplicas {
		autoscaling.Metrics = []autoscalingv2.MetricSpec{
			{
				Type: autoscalingv2.ResourceMetricSourceType,
				Resource: &autoscalingv2.ResourceMetricSource{
					Name: corev1.ResourceCPU,
					Target: autoscalingv2.MetricTarget{
						Type:               autoscalingv2.UtilizationMetricType,
						AverageUtilization: ptr.To(constants.DefaultCPUUtilizationTarget),
					},
				},
			},
		}
	}
	return autoscaling
}
