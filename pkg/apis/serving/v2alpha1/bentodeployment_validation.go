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
	"regexp"
	"strings"

	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/apimachinery/pkg/util/sets"

	resourcesv1alpha1 "github.com/bentoml/yatai-apis/pkg/apis/resources/v1alpha1"
	"github.com/bentoml/yatai-apis/pkg/constants"
	"github.com/bentoml/yatai-apis/pkg/utils"
)

const (
	// InvalidDeploymentNameFormatError defines the error message for invalid deployment name
	InvalidDeploymentNameFormatError = "the BentoDeployment \"%s\" is invalid: a BentoDeployment name must consist of lower case alphanumeric characters or '-', and must start with alphabetical character. (e.g. \"my-name\" or \"abc-123\", regex used for validation is '%s')"
	// MissingBentoRefError defines the error message for a deployment without a bento reference
	MissingBentoRefError = "the BentoDeployment \"%s\" is invalid: spec.bento is required"
	// DuplicateRunnerOverrideError defines the error message for more than one override of the same runner
	DuplicateRunnerOverrideError = "the BentoDeployment \"%s\" is invalid: runner \"%s\" is declared more than once in spec.runners"
	// InvalidQuantityError defines the error message for a resource quantity that does not parse
	InvalidQuantityError = "the BentoDeployment \"%s\" is invalid: %s \"%s\" is not a valid quantity: %v"
	// RequestExceedsLimitError defines the error message for requests above limits
	RequestExceedsLimitError = "the BentoDeployment \"%s\" is invalid: %s requests %s \"%s\", which exceeds the limit \"%s\""
	// InvalidMinReplicasError defines the error message for a min replicas below one
	InvalidMinReplicasError = "the BentoDeployment \"%s\" is invalid: %s.minReplicas must be at least 1, got %d"
	// InvalidMaxReplicasError defines the error message for a max replicas below one
	InvalidMaxReplicasError = "the BentoDeployment \"%s\" is invalid: %s.maxReplicas must be at least 1, got %d"
	// MinExceedsMaxReplicasError defines the error message for scaling bounds that cross
	MinExceedsMaxReplicasError = "the BentoDeployment \"%s\" is invalid: %s.minReplicas %d must not exceed maxReplicas %d"
	// InvalidUtilizationTargetError defines the error message for a utilization target outside (0, 100]
	InvalidUtilizationTargetError = "the BentoDeployment \"%s\" is invalid: %s utilization target must be between 1 and %d, got %d"
	// UnknownRunnerError defines the error message for a runner override naming a runner the Bento does not declare
	UnknownRunnerError = "the BentoDeployment \"%s\" is invalid: runner \"%s\" is not declared in Bento \"%s\" (declared runners: %s)"
	// ReservedCustomResourceError defines the error message for a custom resource entry redeclaring a typed field
	ReservedCustomResourceError = "the BentoDeployment \"%s\" is invalid: %s.custom must not redeclare the reserved resource \"%s\""
)

const (
	// DeploymentNameFmt regular expression for validation of deployment name
	DeploymentNameFmt string = "[a-z]([-a-z0-9]*[a-z0-9])?"
)

// DeploymentRegexp is the compiled regular expression for validation of deployment name
var DeploymentRegexp = regexp.MustCompile("^" + DeploymentNameFmt + "$")

// ValidateBentoDeployment checks every invariant of a BentoDeployment that
// can be decided without the referenced Bento
func ValidateBentoDeployment(deployment *BentoDeployment) error {
	if err := utils.FirstNonNilError([]error{
		validateDeploymentName(deployment),
		validateBentoRef(deployment),
		validateRunnerOverrideUniqueness(deployment),
		validateAutoscaling(deployment, "spec.autoscaling", deployment.Spec.Autoscaling),
		validateResources(deployment, "spec.resources", deployment.Spec.Resources),
	}); err != nil {
		return err
	}
	for i := range deployment.Spec.Runners {
		runner := &deployment.Spec.Runners[i]
		path := fmt.Sprintf("spec.runners[%s]", runner.Name)
		if err := utils.FirstNonNilError([]error{
			validateAutoscaling(deployment, path+".autoscaling", runner.Autoscaling),
			validateResources(deployment, path+".resources", runner.Resources),
		}); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAgainstBento checks that every runner override names a runner the
// referenced Bento declares
func (d *BentoDeployment) ValidateAgainstBento(bento *resourcesv1alpha1.Bento) error {
	declared := bento.Spec.RunnerNames()
	for _, runner := range d.Spec.Runners {
		if !utils.Contains(declared, runner.Name) {
			return fmt.Errorf(UnknownRunnerError, d.Name, runner.Name, bento.Name,
				strings.Join(declared, ", "))
		}
	}
	return nil
}

// Validation of deployment name
func validateDeploymentName(deployment *BentoDeployment) error {
	if !DeploymentRegexp.MatchString(deployment.Name) {
		return fmt.Errorf(InvalidDeploymentNameFormatError, deployment.Name, DeploymentNameFmt)
	}
	return nil
}

// Validation of the bento reference presence
func validateBentoRef(deployment *BentoDeployment) error {
	if deployment.Spec.Bento == "" {
		return fmt.Errorf(MissingBentoRefError, deployment.Name)
	}
	return nil
}

// Validation of unique runner override names
func validateRunnerOverrideUniqueness(deployment *BentoDeployment) error {
	nameSet := sets.NewString()
	for _, runner := range deployment.Spec.Runners {
		if nameSet.Has(runner.Name) {
			return fmt.Errorf(DuplicateRunnerOverrideError, deployment.Name, runner.Name)
		}
		nameSet.Insert(runner.Name)
	}
	return nil
}

// Validation of an autoscaling block's bounds and metric targets
func validateAutoscaling(deployment *BentoDeployment, path string, autoscaling *Autoscaling) error {
	if autoscaling == nil {
		return nil
	}
	minReplicas := constants.DefaultAutoscalingMinReplicas
	if autoscaling.MinReplicas != nil {
		minReplicas = *autoscaling.MinReplicas
	}
	if minReplicas < 1 {
		return fmt.Errorf(InvalidMinReplicasError, deployment.Name, path, minReplicas)
	}
	if autoscaling.MaxReplicas < 1 {
		return fmt.Errorf(InvalidMaxReplicasError, deployment.Name, path, autoscaling.MaxReplicas)
	}
	if minReplicas > autoscaling.MaxReplicas {
		return fmt.Errorf(MinExceedsMaxReplicasError, deployment.Name, path, minReplicas, autoscaling.MaxReplicas)
	}
	for i, metric := range autoscaling.Metrics {
		if metric.Resource == nil || metric.Resource.Target.AverageUtilization == nil {
			continue
		}
		target := *metric.Resource.Target.AverageUtilization
		if target < 1 || target > constants.MaxUtilizationTarget {
			return fmt.Errorf(InvalidUtilizationTargetError, deployment.Name,
				fmt.Sprintf("%s.metrics[%d]", path, i), constants.MaxUtilizationTarget, target)
		}
	}
	return nil
}

// Validation of a resources block: quantities parse and requests stay within limits
func validateResources(deployment *BentoDeployment, path string, resources *Resources) error {
	if resources == nil {
		return nil
	}
	requests, err := parseResourceItem(deployment, path+".requests", resources.Requests)
	if err != nil {
		return err
	}
	limits, err := parseResourceItem(deployment, path+".limits", resources.Limits)
	if err != nil {
		return err
	}
	for name, request := range requests {
		limit, ok := limits[name]
		if !ok {
			continue
		}
		if request.Cmp(limit) > 0 {
			return fmt.Errorf(RequestExceedsLimitError, deployment.Name, path, name,
				request.String(), limit.String())
		}
	}
	return nil
}

// parseResourceItem parses every quantity in a request or limit block
func parseResourceItem(deployment *BentoDeployment, path string, item *ResourceItem) (map[string]resource.Quantity, error) {
	parsed := map[string]resource.Quantity{}
	if item == nil {
		return parsed, nil
	}
	quantities := map[string]string{
		"cpu":    item.CPU,
		"memory": item.Memory,
		"gpu":    item.GPU,
	}
	for name, value := range item.Custom {
		// a custom entry must not shadow a typed field in the comparison map
		if _, reserved := quantities[name]; reserved {
			return nil, fmt.Errorf(ReservedCustomResourceError, deployment.Name, path, name)
		}
		quantities[name] = value
	}
	for name, value := range quantities {
		if value == "" {
			continue
		}
		quantity, err := resource.ParseQuantity(value)
		if err != nil {
			return nil, fmt.Errorf(InvalidQuantityError, deployment.Name,
				fmt.Sprintf("%s.%s", path, name), value, err)
		}
		parsed[name] = quantity
	}
	return parsed, nil
}
