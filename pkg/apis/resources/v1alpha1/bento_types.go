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

package v1alpha1

import (
	"fmt"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// BentoContext records the toolchain a Bento was built with
type BentoContext struct {
	BentomlVersion string `json:"bentomlVersion,omitempty"`
}

// BentoModel references a model artifact bundled into a Bento
type BentoModel struct {
	// +kubebuilder:validation:Required
	Tag         string `json:"tag"`
	DownloadURL string `json:"downloadURL,omitempty"`
}

// BentoRunner declares an independently scaled inference execution unit
// within a Bento, backed by a specific runtime
type BentoRunner struct {
	// +kubebuilder:validation:Required
	Name string `json:"name"`
	// RunnableType names the inference runtime backend, e.g. "XGBoost"
	RunnableType string `json:"runnableType,omitempty"`
	// ModelTags lists the bundled models this runner serves
	ModelTags []string `json:"modelTags,omitempty"`
}

// BentoSpec defines the desired state of Bento
type BentoSpec struct {
	// Tag identifies the packaged artifact as name:version, the version
	// encodes the content hash. A Bento is immutable once tagged.
	// +kubebuilder:validation:Required
	Tag string `json:"tag"`
	// Image is the OCI image carrying the packaged artifact
	Image       string       `json:"image,omitempty"`
	DownloadURL string       `json:"downloadURL,omitempty"`
	Context     BentoContext `json:"context,omitempty"`
	// +listType=map
	// +listMapKey=name
	Runners []BentoRunner `json:"runners,omitempty"`
	Models  []BentoModel  `json:"models,omitempty"`
}

// BentoStatus defines the observed state of Bento
type BentoStatus struct {
	// +optional
	Ready bool `json:"ready"`
}

// Bento is the Schema for the bentoes API
// +k8s:openapi-gen=true
// +genclient
// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Tag",type="string",JSONPath=".spec.tag"
// +kubebuilder:printcolumn:name="Image",type="string",JSONPath=".spec.image"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"
// +kubebuilder:resource:path=bentoes,singular=bento
type Bento struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              BentoSpec   `json:"spec,omitempty"`
	Status            BentoStatus `json:"status,omitempty"`
}

// BentoList contains a list of Bento
// +k8s:openapi-gen=true
// +kubebuilder:object:root=true
type BentoList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Bento `json:"items"`
}

// GetRunner returns the runner with the given name, or nil if the Bento does
// not declare it
func (s *BentoSpec) GetRunner(name string) *BentoRunner {
	for i := range s.Runners {
		if s.Runners[i].Name == name {
			return &s.Runners[i]
		}
	}
	return nil
}

// RunnerNames returns the declared runner names in declaration order
func (s *BentoSpec) RunnerNames() []string {
	names := make([]string, 0, len(s.Runners))
	for _, runner := range s.Runners {
		names = append(names, runner.Name)
	}
	return names
}

// ParseBentoTag splits a bento tag into its name and version parts
func ParseBentoTag(tag string) (name string, version string, err error) {
	name, version, found := strings.Cut(tag, ":")
	if !found || name == "" || version == "" {
		return "", "", fmt.Errorf("invalid bento tag %q, expected format name:version", tag)
	}
	return name, version, nil
}
