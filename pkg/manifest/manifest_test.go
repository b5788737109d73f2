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

package manifest_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/apimachinery/pkg/types"

	resourcesv1alpha1 "github.com/bentoml/yatai-apis/pkg/apis/resources/v1alpha1"
	servingv2alpha1 "github.com/bentoml/yatai-apis/pkg/apis/serving/v2alpha1"
	"github.com/bentoml/yatai-apis/pkg/manifest"
)

const multiDocManifest = `
apiVersion: resources.yatai.ai/v1alpha1
kind: Bento
metadata:
  name: fraud-detection
  namespace: default
spec:
  tag: fraud_detection:dc2e7a8d6ab1c1a2
  runners:
    - name: ieee-fraud-detection-sm
      runnableType: XGBoost
---
apiVersion: serving.yatai.ai/v2alpha1
kind: BentoDeployment
metadata:
  name: fraud-detection
  namespace: default
spec:
  bento: fraud-detection
  runners:
    - name: ieee-fraud-detection-sm
`

var _ = Describe("Decode", func() {
	It("decodes a multi document stream into typed objects", func() {
		objects, err := manifest.Decode([]byte(multiDocManifest))
		Expect(err).NotTo(HaveOccurred())
		Expect(objects).To(HaveLen(2))

		bento, ok := objects[0].(*resourcesv1alpha1.Bento)
		Expect(ok).To(BeTrue())
		Expect(bento.Spec.Tag).To(Equal("fraud_detection:dc2e7a8d6ab1c1a2"))
		Expect(bento.Spec.Runners).To(HaveLen(1))
		Expect(bento.Spec.Runners[0].RunnableType).To(Equal("XGBoost"))

		deployment, ok := objects[1].(*servingv2alpha1.BentoDeployment)
		Expect(ok).To(BeTrue())
		Expect(deployment.Spec.Bento).To(Equal("fraud-detection"))
	})

	It("skips comment-only and empty documents", func() {
		objects, err := manifest.Decode([]byte(multiDocManifest + `
---
# replicas bumped for the fraud campaign, revert after 2026-09
---
`))
		Expect(err).NotTo(HaveOccurred())
		Expect(objects).To(HaveLen(2))
	})

	It("rejects documents with an unregistered kind", func() {
		_, err := manifest.Decode([]byte(`
apiVersion: v1
kind: ConfigMap
metadata:
  name: not-ours
`))
		Expect(err).To(HaveOccurred())
	})

	It("rejects streams that are not YAML at all", func() {
		_, err := manifest.Decode([]byte(`{]`))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Load", func() {
	It("loads every manifest file under a directory", func() {
		set, err := manifest.Load("testdata/valid")
		Expect(err).NotTo(HaveOccurred())
		Expect(set.Len()).To(Equal(2))
		Expect(set.Bentos()).To(HaveLen(1))
		Expect(set.Deployments()).To(HaveLen(1))
	})

	It("fails on paths that do not exist", func() {
		_, err := manifest.Load("testdata/no-such-dir")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Set", func() {
	It("rejects duplicate objects", func() {
		objects, err := manifest.Decode([]byte(multiDocManifest))
		Expect(err).NotTo(HaveOccurred())

		set := manifest.NewSet()
		for _, obj := range objects {
			Expect(set.Add(obj)).To(Succeed())
		}
		Expect(set.Add(objects[0])).To(MatchError(ContainSubstring("duplicate Bento")))
	})

	It("resolves bentos by namespaced name", func() {
		set, err := manifest.Load("testdata/valid")
		Expect(err).NotTo(HaveOccurred())
		key := types.NamespacedName{Namespace: "fraud-detection", Name: "fraud-detection"}
		Expect(set.Bento(key)).NotTo(BeNil())
		Expect(set.Bento(types.NamespacedName{Namespace: "other", Name: "fraud-detection"})).To(BeNil())
	})

	Describe("Validate", func() {
		It("accepts a consistent manifest set", func() {
			set, err := manifest.Load("testdata/valid")
			Expect(err).NotTo(HaveOccurred())
			Expect(set.Validate()).To(Succeed())
		})

		It("reports runner references the bento does not declare", func() {
			set, err := manifest.Load("testdata/invalid/unknown-runner.yaml")
			Expect(err).NotTo(HaveOccurred())
			Expect(set.Validate()).To(MatchError(ContainSubstring("ieee-fraud-detection-lg")))
		})

		It("reports every finding at once", func() {
			set, err := manifest.Load("testdata/invalid")
			Expect(err).NotTo(HaveOccurred())
			validationErr := set.Validate()
			Expect(validationErr).To(HaveOccurred())
			Expect(validationErr.Error()).To(ContainSubstring("ieee-fraud-detection-lg"))
			Expect(validationErr.Error()).To(ContainSubstring("minReplicas 5 must not exceed maxReplicas 2"))
		})

		It("reports deployments whose bento is missing from the set", func() {
			set, err := manifest.Load("testdata/invalid/crossed-bounds.yaml")
			Expect(err).NotTo(HaveOccurred())
			// the crossed bounds are reported first, fix them to reach the reference check
			deployment := set.Deployments()[0]
			deployment.Spec.Autoscaling.MinReplicas = nil
			Expect(set.Validate()).To(MatchError(ContainSubstring("not part of the manifest set")))
		})
	})
})
