/*
Copyright 2024 The Yatai Authors.

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

package bento

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/webhook"
	"sigs.k8s.io/controller-runtime/pkg/webhook/admission"

	"github.com/bentoml/yatai-apis/pkg/apis/resources/v1alpha1"
	servingv2alpha1 "github.com/bentoml/yatai-apis/pkg/apis/serving/v2alpha1"
	"github.com/bentoml/yatai-apis/pkg/utils"
)

// logger for the validation webhook.
var bentoValidatorLogger = logf.Log.WithName("bento-v1alpha1-validation-webhook")

// +kubebuilder:object:generate=false
// +k8s:openapi-gen=false
// BentoValidator is responsible for validating the Bento resource
// when it is created, updated, or deleted.
//
// NOTE: The +kubebuilder:object:generate=false marker prevents controller-gen from generating DeepCopy methods,
// as this struct is used only for temporary operations and does not need to be deeply copied.
type BentoValidator struct {
	client.Client
}

// +kubebuilder:webhook:verbs=create;update;delete,path=/validate-bentoes,mutating=false,failurePolicy=fail,groups=resources.yatai.ai,resources=bentoes,versions=v1alpha1,name=bento.yatai-webhook-server.validator
var _ webhook.CustomValidator = &BentoValidator{}

// ValidateCreate implements webhook.CustomValidator so a webhook will be registered for the type
func (v *BentoValidator) ValidateCreate(ctx context.Context, obj runtime.Object) (admission.Warnings, error) {
	bento, err := utils.Convert[*v1alpha1.Bento](obj)
	if err != nil {
		bentoValidatorLogger.Error(err, "Unable to convert object to Bento")
		return nil, err
	}
	bentoValidatorLogger.Info("validate create", "name", bento.Name)
	return nil, v1alpha1.ValidateBento(bento)
}

// ValidateUpdate implements webhook.CustomValidator so a webhook will be registered for the type
func (v *BentoValidator) ValidateUpdate(ctx context.Context, oldObj, newObj runtime.Object) (admission.Warnings, error) {
	bento, err := utils.Convert[*v1alpha1.Bento](newObj)
	if err != nil {
		bentoValidatorLogger.Error(err, "Unable to convert object to Bento")
		return nil, err
	}
	oldBento, err := utils.Convert[*v1alpha1.Bento](oldObj)
	if err != nil {
		bentoValidatorLogger.Error(err, "Unable to convert object to Bento")
		return nil, err
	}
	bentoValidatorLogger.Info("validate update", "name", bento.Name)
	return nil, v1alpha1.ValidateBentoUpdate(bento, oldBento)
}

// ValidateDelete warns when BentoDeployments in the namespace still reference
// the Bento being deleted. Deletion is not blocked, decommissioning may remove
// the resources in any order.
func (v *BentoValidator) ValidateDelete(ctx context.Context, obj runtime.Object) (admission.Warnings, error) {
	bento, err := utils.Convert[*v1alpha1.Bento](obj)
	if err != nil {
		bentoValidatorLogger.Error(err, "Unable to convert object to Bento")
		return nil, err
	}
	bentoValidatorLogger.Info("validate delete", "name", bento.Name)

	deploymentList := &servingv2alpha1.BentoDeploymentList{}
	if err := v.Client.List(ctx, deploymentList, client.InNamespace(bento.Namespace)); err != nil {
		bentoValidatorLogger.Error(err, "Unable to list BentoDeployments", "namespace", bento.Namespace)
		return nil, err
	}

	var warnings admission.Warnings
	for _, deployment := range deploymentList.Items {
		if deployment.Spec.Bento == bento.Name {
			warnings = append(warnings,
				fmt.Sprintf("Bento %s is still referenced by BentoDeployment %s", bento.Name, deployment.Name))
		}
	}
	return warnings, nil
}
