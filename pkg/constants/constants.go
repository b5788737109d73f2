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

package constants

// YataiAPIGroupName is the domain all yatai API groups live under
const YataiAPIGroupName = "yatai.ai"

// API group names
const (
	// ResourcesAPIGroupName is the API group for packaged model artifacts
	ResourcesAPIGroupName = "resources." + YataiAPIGroupName
	// ServingAPIGroupName is the API group for deployment resources
	ServingAPIGroupName = "serving." + YataiAPIGroupName
)

// Kind and resource names
const (
	BentoKind               = "Bento"
	BentoListKind           = "BentoList"
	BentoAPIName            = "bentoes"
	BentoDeploymentKind     = "BentoDeployment"
	BentoDeploymentListKind = "BentoDeploymentList"
	BentoDeploymentAPIName  = "bentodeployments"
)

// Labels attached to workloads derived from a BentoDeployment
const (
	BentoLabelKey                     = "yatai.ai/bento"
	BentoDeploymentLabelKey           = "yatai.ai/bento-deployment"
	BentoDeploymentComponentLabelKey  = "yatai.ai/bento-deployment-component"
	BentoDeploymentRunnerNameLabelKey = "yatai.ai/bento-deployment-runner-name"
)

// BentoDeployment component names used in the component label
const (
	BentoDeploymentComponentApiServer = "api-server"
	BentoDeploymentComponentRunner    = "runner"
)

// RunnableTypeXGBoost is the runnable type declared for XGBoost backed runners.
// The set of runnable types is open ended, the API server does not restrict it.
const RunnableTypeXGBoost = "XGBoost"

// Autoscaling defaults applied by the defaulting webhook
const (
	DefaultAutoscalingMinReplicas int32 = 1
	DefaultAutoscalingMaxReplicas int32 = 1
	// DefaultCPUUtilizationTarget is the average utilization target applied
	// when an autoscaling block scales but declares no metric
	DefaultCPUUtilizationTarget int32 = 80
	// MaxUtilizationTarget is the upper bound for utilization metric targets
	MaxUtilizationTarget int32 = 100
)

// WebhookServerName is the name of the admission webhook server
const WebhookServerName = "yatai-webhook-server"
