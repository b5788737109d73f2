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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ResourceItem holds resource quantities as strings, the way they appear in
// the manifest. Quantities are parsed and checked at validation time.
type ResourceItem struct {
	CPU    string            `json:"cpu,omitempty"`
	Memory string            `json:"memory,omitempty"`
	GPU    string            `json:"gpu,omitempty"`
	Custom map[string]string `json:"custom,omitempty"`
}

// Resources declares the requested and limit quantities for a component
type Resources struct {
	Requests *ResourceItem `json:"requests,omitempty"`
	Limits   *ResourceItem `json:"limits,omitempty"`
}

// Autoscaling declares the scaling bounds and the metrics driving them.
// The bounds are enforced by an external orchestrator, this resource only
// carries the desired policy.
type Autoscaling struct {
	// +optional
	MinReplicas *int32 `json:"minReplicas,omitempty"`
	MaxReplicas int32  `json:"maxReplicas"`
	// +optional
	Metrics []autoscalingv2.MetricSpec `json:"metrics,omitempty"`
}

// IngressSpec declares whether the api-server is exposed outside the cluster
type IngressSpec struct {
	Enabled bool `json:"enabled,omitempty"`
	// +optional
	Annotations map[string]string `json:"annotations,omitempty"`
}

// BentoDeploymentRunnerSpec overrides resources and autoscaling for a single
// runner declared in the referenced Bento
type BentoDeploymentRunnerSpec struct {
	// +kubebuilder:validation:Required
	Name string `json:"name"`
	// +optional
	Resources *Resources `json:"resources,omitempty"`
	// +optional
	Autoscaling *Autoscaling `json:"autoscaling,omitempty"`
	// +optional
	Envs []corev1.EnvVar `json:"envs,omitempty"`
}

// BentoDeploymentSpec defines the desired state of BentoDeployment
type BentoDeploymentSpec struct {
	// Bento is the name of the Bento resource being deployed, in the same
	// namespace as the BentoDeployment
	// +kubebuilder:validation:Required
	Bento string `json:"bento"`
	// +optional
	Ingress IngressSpec `json:"ingress,omitempty"`
	// +optional
	Resources *Resources `json:"resources,omitempty"`
	// +optional
	Autoscaling *Autoscaling `json:"autoscaling,omitempty"`
	// +optional
	Envs []corev1.EnvVar `json:"envs,omitempty"`
	// +optional
	// +listType=map
	// +listMapKey=name
	Runners []BentoDeploymentRunnerSpec `json:"runners,omitempty"`
}

// BentoDeploymentStatus defines the observed state of BentoDeployment
type BentoDeploymentStatus struct {
	// +optional
	PodSelector map[string]string `json:"podSelector,omitempty"`
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// BentoDeployment is the Schema for the bentodeployments API
// +k8s:openapi-gen=true
// +genclient
// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Bento",type="string",JSONPath=".spec.bento"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"
// +kubebuilder:resource:path=bentodeployments,shortName=bd,singular=bentodeployment
type BentoDeployment struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              BentoDeploymentSpec   `json:"spec,omitempty"`
	Status            BentoDeploymentStatus `json:"status,omitempty"`
}

// BentoDeploymentList contains a list of BentoDeployment
// +k8s:openapi-gen=true
// +kubebuilder:object:root=true
type BentoDeploymentList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []BentoDeployment `json:"items"`
}

// GetRunner returns the runner override with the given name, or nil if the
// deployment does not declare one
func (s *BentoDeploymentSpec) GetRunner(name string) *BentoDeploymentRunnerSpec {
	for i := range s.Runners {
		if s.Runners[i].Name == name {
			return &s.Runners[i]
		}
	}
	return nil
}
