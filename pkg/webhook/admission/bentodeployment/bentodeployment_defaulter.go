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

	"k8s.io/apimachinery/pkg/runtime"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/webhook"

	"github.com/bentoml/yatai-apis/pkg/apis/serving/v2alpha1"
	"github.com/bentoml/yatai-apis/pkg/utils"
)

// logger for the mutating webhook.
var defaulterLogger = logf.Log.WithName("bentodeployment-v2alpha1-defaulter-webhook")

// +kubebuilder:object:generate=false
// +k8s:openapi-gen=false
// BentoDeploymentDefaulter is responsible for setting default values on the
// BentoDeployment resource when it is created or updated.
//
// NOTE: The +kubebuilder:object:generate=false marker prevents controller-gen from generating DeepCopy methods,
// as this struct is used only for temporary operations and does not need to be deeply copied.
type BentoDeploymentDefaulter struct{}

// +kubebuilder:webhook:path=/mutate-bentodeployments,mutating=true,failurePolicy=fail,groups=serving.yatai.ai,resources=bentodeployments,verbs=create;update,versions=v2alpha1,name=bentodeployment.yatai-webhook-server.defaulter
var _ webhook.CustomDefaulter = &BentoDeploymentDefaulter{}

// Default implements webhook.CustomDefaulter so a webhook will be registered for the type
func (d *BentoDeploymentDefaulter) Default(ctx context.Context, obj runtime.Object) error {
	deployment, err := utils.Convert[*v2alpha1.BentoDeployment](obj)
	if err != nil {
		defaulterLogger.Error(err, "Unable to convert object to BentoDeployment")
		return err
	}
	deployment.Default()
	return nil
}
