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
	"fmt"
	"testing"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
	autoscalingv2 "k8s.io/api/autoscaling/v2"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	resourcesv1alpha1 "github.com/bentoml/yatai-apis/pkg/apis/resources/v1alpha1"
)

func makeTestBentoDeployment() BentoDeployment {
	return BentoDeployment{
		TypeMeta: metav1.TypeMeta{
			Kind:       "BentoDeployment",
			APIVersion: "serving.yatai.ai/v2alpha1",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      "fraud-detection",
			Namespace: "default",
		},
		Spec: BentoDeploymentSpec{
			Bento:   "fraud-detection",
			Ingress: IngressSpec{Enabled: true},
			Resources: &Resources{
				Requests: &ResourceItem{CPU: "500m", Memory: "512Mi"},
				Limits:   &ResourceItem{CPU: "1000m", Memory: "1Gi"},
			},
			Autoscaling: &Autoscaling{
				MinReplicas: ptr.To(int32(1)),
				MaxReplicas: 3,
				Metrics: []autoscalingv2.MetricSpec{
					{
						Type: autoscalingv2.ResourceMetricSourceType,
						Resource: &autoscalingv2.ResourceMetricSource{
							Name: corev1.ResourceCPU,
							Target: autoscalingv2.MetricTarget{
								Type:               autoscalingv2.UtilizationMetricType,
								AverageUtilization: ptr.To(int32(80)),
							},
						},
					},
				},
			},
			Runners: []BentoDeploymentRunnerSpec{
				{
					Name: "ieee-fraud-detection-sm",
					Resources: &Resources{
						Requests: &ResourceItem{CPU: "1000m", Memory: "1Gi"},
						Limits:   &ResourceItem{CPU: "2000m", Memory: "2Gi"},
					},
					Autoscaling: &Autoscaling{
						MinReplicas: ptr.To(int32(1)),
						MaxReplicas: 2,
					},
				},
			},
		},
	}
}

func TestValidateBentoDeployment(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	scenarios := map[string]struct {
		mutate     func(d *BentoDeployment)
		errMatcher types.GomegaMatcher
	}{
		"valid deployment": {
			mutate:     func(d *BentoDeployment) {},
			errMatcher: gomega.Succeed(),
		},
		"invalid name": {
			mutate: func(d *BentoDeployment) {
				d.Name = "1fraud"
			},
			errMatcher: gomega.MatchError(fmt.Errorf(InvalidDeploymentNameFormatError, "1fraud", DeploymentNameFmt)),
		},
		"missing bento ref": {
			mutate: func(d *BentoDeployment) {
				d.Spec.Bento = ""
			},
			errMatcher: gomega.MatchError(fmt.Errorf(MissingBentoRefError, "fraud-detection")),
		},
		"duplicate runner override": {
			mutate: func(d *BentoDeployment) {
				d.Spec.Runners = append(d.Spec.Runners, BentoDeploymentRunnerSpec{Name: "ieee-fraud-detection-sm"})
			},
			errMatcher: gomega.MatchError(fmt.Errorf(DuplicateRunnerOverrideError, "fraud-detection", "ieee-fraud-detection-sm")),
		},
		"min replicas zero": {
			mutate: func(d *BentoDeployment) {
				d.Spec.Autoscaling.MinReplicas = ptr.To(int32(0))
			},
			errMatcher: gomega.MatchError(fmt.Errorf(InvalidMinReplicasError, "fraud-detection", "spec.autoscaling", 0)),
		},
		"max replicas zero": {
			mutate: func(d *BentoDeployment) {
				d.Spec.Autoscaling.MaxReplicas = 0
			},
			errMatcher: gomega.MatchError(fmt.Errorf(InvalidMaxReplicasError, "fraud-detection", "spec.autoscaling", 0)),
		},
		"min exceeds max": {
			mutate: func(d *BentoDeployment) {
				d.Spec.Autoscaling.MinReplicas = ptr.To(int32(5))
			},
			errMatcher: gomega.MatchError(fmt.Errorf(MinExceedsMaxReplicasError, "fraud-detection", "spec.autoscaling", 5, 3)),
		},
		"runner min exceeds max": {
			mutate: func(d *BentoDeployment) {
				d.Spec.Runners[0].Autoscaling.MinReplicas = ptr.To(int32(4))
			},
			errMatcher: gomega.MatchError(fmt.Errorf(MinExceedsMaxReplicasError, "fraud-detection", "spec.runners[ieee-fraud-detection-sm].autoscaling", 4, 2)),
		},
		"utilization target above 100": {
			mutate: func(d *BentoDeployment) {
				d.Spec.Autoscaling.Metrics[0].Resource.Target.AverageUtilization = ptr.To(int32(120))
			},
			errMatcher: gomega.MatchError(fmt.Errorf(InvalidUtilizationTargetError, "fraud-detection", "spec.autoscaling.metrics[0]", 100, 120)),
		},
		"utilization target zero": {
			mutate: func(d *BentoDeployment) {
				d.Spec.Autoscaling.Metrics[0].Resource.Target.AverageUtilization = ptr.To(int32(0))
			},
			errMatcher: gomega.MatchError(fmt.Errorf(InvalidUtilizationTargetError, "fraud-detection", "spec.autoscaling.metrics[0]", 100, 0)),
		},
		"malformed cpu quantity": {
			mutate: func(d *BentoDeployment) {
				d.Spec.Resources.Requests.CPU = "half-a-core"
			},
			errMatcher: gomega.HaveOccurred(),
		},
		"cpu request exceeds limit": {
			mutate: func(d *BentoDeployment) {
				d.Spec.Resources.Requests.CPU = "2000m"
			},
			errMatcher: gomega.MatchError(fmt.Errorf(RequestExceedsLimitError, "fraud-detection", "spec.resources", "cpu", "2", "1")),
		},
		"memory request exceeds limit": {
			mutate: func(d *BentoDeployment) {
				d.Spec.Resources.Requests.Memory = "2Gi"
			},
			errMatcher: gomega.MatchError(fmt.Errorf(RequestExceedsLimitError, "fraud-detection", "spec.resources", "memory", "2Gi", "1Gi")),
		},
		"runner memory request exceeds limit": {
			mutate: func(d *BentoDeployment) {
				d.Spec.Runners[0].Resources.Requests.Memory = "4Gi"
			},
			errMatcher: gomega.MatchError(fmt.Errorf(RequestExceedsLimitError, "fraud-detection", "spec.runners[ieee-fraud-detection-sm].resources", "memory", "4Gi", "2Gi")),
		},
		"request without limit is allowed": {
			mutate: func(d *BentoDeployment) {
				d.Spec.Resources.Limits = nil
			},
			errMatcher: gomega.Succeed(),
		},
		"gpu quantity parses": {
			mutate: func(d *BentoDeployment) {
				d.Spec.Runners[0].Resources.Requests.GPU = "1"
			},
			errMatcher: gomega.Succeed(),
		},
		"custom quantity malformed": {
			mutate: func(d *BentoDeployment) {
				d.Spec.Runners[0].Resources.Requests.Custom = map[string]string{"hugepages-2Mi": "lots"}
			},
			errMatcher: gomega.HaveOccurred(),
		},
		"custom entry must not redeclare cpu": {
			mutate: func(d *BentoDeployment) {
				// would otherwise mask the 2000m > 1000m crossing on the typed field
				d.Spec.Resources.Requests.CPU = "2000m"
				d.Spec.Resources.Requests.Custom = map[string]string{"cpu": "500m"}
			},
			errMatcher: gomega.MatchError(fmt.Errorf(ReservedCustomResourceError, "fraud-detection", "spec.resources.requests", "cpu")),
		},
		"custom entry must not redeclare memory in limits": {
			mutate: func(d *BentoDeployment) {
				d.Spec.Runners[0].Resources.Limits.Custom = map[string]string{"memory": "8Gi"}
			},
			errMatcher: gomega.MatchError(fmt.Errorf(ReservedCustomResourceError, "fraud-detection", "spec.runners[ieee-fraud-detection-sm].resources.limits", "memory")),
		},
	}

	for name, scenario := range scenarios {
		t.Run(name, func(t *testing.T) {
			deployment := makeTestBentoDeployment()
			scenario.mutate(&deployment)
			g.Expect(ValidateBentoDeployment(&deployment)).To(scenario.errMatcher)
		})
	}
}

func TestValidateAgainstBento(t *testing.T) {
	g := gomega.NewGomegaWithT(t)

	bento := resourcesv1alpha1.Bento{
		ObjectMeta: metav1.ObjectMeta{Name: "fraud-detection", Namespace: "default"},
		Spec: resourcesv1alpha1.BentoSpec{
			Tag: "fraud_detection:dc2e7a8d6ab1c1a2",
			Runners: []resourcesv1alpha1.BentoRunner{
				{Name: "ieee-fraud-detection-sm", RunnableType: "XGBoost"},
			},
		},
	}

	deployment := makeTestBentoDeployment()
	g.Expect(deployment.ValidateAgainstBento(&bento)).To(gomega.Succeed())

	deployment.Spec.Runners[0].Name = "ieee-fraud-detection-lg"
	g.Expect(deployment.ValidateAgainstBento(&bento)).To(
		gomega.MatchError(fmt.Errorf(UnknownRunnerError, "fraud-detection", "ieee-fraud-detection-lg",
			"fraud-detection", "ieee-fraud-detection-sm")))
}
