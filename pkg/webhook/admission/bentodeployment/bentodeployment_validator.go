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

package bentodeployment

import (
	"context"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/webhook"
	"sigs.k8s.io/controller-runtime/pkg/webhook/admission"

	resourcesv1alpha1 "github.com/bentoml/yatai-apis/pkg/apis/resources/v1alpha1"
	"github.com/bentoml/yatai-apis/pkg/apis/serving/v2alpha1"
	"github.com/bentoml/yatai-apis/pkg/utils"
)

// logger for the validation webhook.
var validatorLogger = logf.Log.WithName("bentodeployment-v2alpha1-validation-webhook")

// +kubebuilder:object:generate=false
// +k8s:openapi-gen=false
// BentoDeploymentValidator is responsible for validating the BentoDeployment
// resource when it is created, updated, or deleted.
//
// NOTE: The +kubebuilder:object:generate=false marker prevents controller-gen from generating DeepCopy methods,
// as this struct is used only for temporary operations and does not need to be deeply copied.
type BentoDeploymentValidator struct {
	client.Client
}

// +kubebuilder:webhook:verbs=create;update,path=/validate-bentodeployments,mutating=false,failurePolicy=fail,groups=serving.yatai.ai,resources=bentodeployments,versions=v2alpha1,name=bentodeployment.yatai-webhook-server.validator
var _ webhook.CustomValidator = &BentoDeploymentValidator{}

// ValidateCreate implements webhook.CustomValidator so a webhook will be registered for the type
func (v *BentoDeploymentValidator) ValidateCreate(ctx context.Context, obj runtime.Object) (admission.Warnings, error) {
	deployment, err := utils.Convert[*v2alpha1.BentoDeployment](obj)
	if err != nil {
		validatorLogger.Error(err, "Unable to convert object to BentoDeployment")
		return nil, err
	}
	validatorLogger.Info("validate create", "name", deployment.Name)
	return v.validateBentoDeployment(ctx, deployment)
}

// ValidateUpdate implements webhook.CustomValidator so a webhook will be registered for the type
func (v *BentoDeploymentValidator) ValidateUpdate(ctx context.Context, oldObj, newObj runtime.Object) (admission.Warnings, error) {
	deployment, err := utils.Convert[*v2alpha1.BentoDeployment](newObj)
	if err != nil {
		validatorLogger.Error(err, "Unable to convert object to BentoDeployment")
		return nil, err
	}
	validatorLogger.Info("validate update", "name", deployment.Name)
	return v.validateBentoDeployment(ctx, deployment)
}

// ValidateDelete implements webhook.CustomValidator so a webhook will be registered for the type
func (v *BentoDeploymentValidator) ValidateDelete(ctx context.Context, obj runtime.Object) (admission.Warnings, error) {
	deployment, err := utils.Convert[*v2alpha1.BentoDeployment](obj)
	if err != nil {
		validatorLogger.Error(err, "Unable to convert object to BentoDeployment")
		return nil, err
	}
	validatorLogger.Info("validate delete", "name", deployment.Name)
	return nil, nil
}

// validateBentoDeployment runs the field level checks, then resolves the
// referenced Bento and checks the runner references against it. A Bento that
// does not exist yet yields a warning rather than an error, deployment
// pipelines commonly apply the manifests out of order.
func (v *BentoDeploymentValidator) validateBentoDeployment(ctx context.Context, deployment *v2alpha1.BentoDeployment) (admission.Warnings, error) {
	if err := v2alpha1.ValidateBentoDeployment(deployment); err != nil {
		return nil, err
	}

	bento := &resourcesv1alpha1.Bento{}
	key := types.NamespacedName{Namespace: deployment.Namespace, Name: deployment.Spec.Bento}
	if err := v.Client.Get(ctx, key, bento); err != nil {
		if apierrors.IsNotFound(err) {
			return admission.Warnings{
				fmt.Sprintf("Bento %s not found in namespace %s, runner references cannot be checked yet",
					deployment.Spec.Bento, deployment.Namespace),
			}, nil
		}
		validatorLogger.Error(err, "Unable to get Bento", "name", deployment.Spec.Bento)
		return nil, err
	}

	return nil, deployment.ValidateAgainstBento(bento)
}
