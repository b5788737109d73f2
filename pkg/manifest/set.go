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

package manifest

import (
	"fmt"
	"sort"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	resourcesv1alpha1 "github.com/bentoml/yatai-apis/pkg/apis/resources/v1alpha1"
	servingv2alpha1 "github.com/bentoml/yatai-apis/pkg/apis/serving/v2alpha1"
)

// Set is an indexed collection of loaded yatai objects
type Set struct {
	bentos      map[types.NamespacedName]*resourcesv1alpha1.Bento
	deployments map[types.NamespacedName]*servingv2alpha1.BentoDeployment
}

// NewSet returns an empty Set
func NewSet() *Set {
	return &Set{
		bentos:      map[types.NamespacedName]*resourcesv1alpha1.Bento{},
		deployments: map[types.NamespacedName]*servingv2alpha1.BentoDeployment{},
	}
}

// Add indexes a decoded object. Two objects with the same kind, namespace and
// name are rejected.
func (s *Set) Add(obj runtime.Object) error {
	switch typed := obj.(type) {
	case *resourcesv1alpha1.Bento:
		key := types.NamespacedName{Namespace: typed.Namespace, Name: typed.Name}
		if _, ok := s.bentos[key]; ok {
			return fmt.Errorf("duplicate Bento %s", key)
		}
		s.bentos[key] = typed
	case *servingv2alpha1.BentoDeployment:
		key := types.NamespacedName{Namespace: typed.Namespace, Name: typed.Name}
		if _, ok := s.deployments[key]; ok {
			return fmt.Errorf("duplicate BentoDeployment %s", key)
		}
		s.deployments[key] = typed
	default:
		return fmt.Errorf("unsupported object type %T", obj)
	}
	return nil
}

// Bento returns the indexed Bento with the given key, or nil
func (s *Set) Bento(key types.NamespacedName) *resourcesv1alpha1.Bento {
	return s.bentos[key]
}

// Bentos returns the indexed bentos in a stable order
func (s *Set) Bentos() []*resourcesv1alpha1.Bento {
	bentos := make([]*resourcesv1alpha1.Bento, 0, len(s.bentos))
	for _, bento := range s.bentos {
		bentos = append(bentos, bento)
	}
	sort.Slice(bentos, func(i, j int) bool {
		return bentos[i].Namespace+"/"+bentos[i].Name < bentos[j].Namespace+"/"+bentos[j].Name
	})
	return bentos
}

// Deployments returns the indexed deployments in a stable order
func (s *Set) Deployments() []*servingv2alpha1.BentoDeployment {
	deployments := make([]*servingv2alpha1.BentoDeployment, 0, len(s.deployments))
	for _, deployment := range s.deployments {
		deployments = append(deployments, deployment)
	}
	sort.Slice(deployments, func(i, j int) bool {
		return deployments[i].Namespace+"/"+deployments[i].Name < deployments[j].Namespace+"/"+deployments[j].Name
	})
	return deployments
}

// Len returns the number of indexed objects
func (s *Set) Len() int {
	return len(s.bentos) + len(s.deployments)
}

// Validate runs every per-object check plus the cross resource checks and
// collects all findings instead of stopping at the first one
func (s *Set) Validate() error {
	var findings []error
	for _, bento := range s.Bentos() {
		if err := resourcesv1alpha1.ValidateBento(bento); err != nil {
			findings = append(findings, err)
		}
	}
	for _, deployment := range s.Deployments() {
		if err := servingv2alpha1.ValidateBentoDeployment(deployment); err != nil {
			findings = append(findings, err)
			continue
		}
		if deployment.Spec.Bento == "" {
			continue
		}
		key := types.NamespacedName{Namespace: deployment.Namespace, Name: deployment.Spec.Bento}
		bento := s.Bento(key)
		if bento == nil {
			findings = append(findings, fmt.Errorf(
				"the BentoDeployment \"%s\" references Bento \"%s\" which is not part of the manifest set",
				deployment.Name, deployment.Spec.Bento))
			continue
		}
		if err := deployment.ValidateAgainstBento(bento); err != nil {
			findings = append(findings, err)
		}
	}
	return utilerrors.NewAggregate(findings)
}
