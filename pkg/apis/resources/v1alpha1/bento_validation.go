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
	"regexp"

	"k8s.io/apimachinery/pkg/api/equality"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/bentoml/yatai-apis/pkg/utils"
)

const (
	// InvalidBentoNameFormatError defines the error message for invalid bento name
	InvalidBentoNameFormatError = "the Bento \"%s\" is invalid: a Bento name must consist of lower case alphanumeric characters or '-', and must start with alphabetical character. (e.g. \"my-name\" or \"abc-123\", regex used for validation is '%s')"
	// MissingBentoTagError defines the error message for a bento without a tag
	MissingBentoTagError = "the Bento \"%s\" is invalid: spec.tag is required"
	// DuplicateRunnerNameError defines the error message for more than one runner sharing a name
	DuplicateRunnerNameError = "the Bento \"%s\" is invalid: runner name \"%s\" is declared more than once, runner names must be unique within a Bento"
	// DuplicateModelTagError defines the error message for more than one model sharing a tag
	DuplicateModelTagError = "the Bento \"%s\" is invalid: model tag \"%s\" is declared more than once"
	// UnknownRunnerModelTagError defines the error message for a runner referencing an undeclared model
	UnknownRunnerModelTagError = "the Bento \"%s\" is invalid: runner \"%s\" references model tag \"%s\" which is not declared in spec.models"
	// ImmutableBentoSpecError defines the error message for an update that changes a tagged bento
	ImmutableBentoSpecError = "the Bento \"%s\" update is invalid: a Bento is immutable once tagged, the tag \"%s\" encodes the content hash of the artifact"
)

const (
	// BentoNameFmt regular expression for validation of bento name
	BentoNameFmt string = "[a-z]([-a-z0-9]*[a-z0-9])?"
)

// BentoRegexp is the compiled regular expression for validation of bento name
var BentoRegexp = regexp.MustCompile("^" + BentoNameFmt + "$")

// ValidateBento checks the structural invariants of a single Bento
func ValidateBento(bento *Bento) error {
	return utils.FirstNonNilError([]error{
		validateBentoName(bento),
		validateBentoTag(bento),
		validateRunnerNameUniqueness(bento),
		validateModelTagUniqueness(bento),
		validateRunnerModelTags(bento),
	})
}

// ValidateBentoUpdate checks that an update does not alter a tagged bento
func ValidateBentoUpdate(bento *Bento, oldBento *Bento) error {
	if err := ValidateBento(bento); err != nil {
		return err
	}
	if !equality.Semantic.DeepEqual(bento.Spec, oldBento.Spec) {
		return fmt.Errorf(ImmutableBentoSpecError, bento.Name, oldBento.Spec.Tag)
	}
	return nil
}

// Validation of bento name
func validateBentoName(bento *Bento) error {
	if !BentoRegexp.MatchString(bento.Name) {
		return fmt.Errorf(InvalidBentoNameFormatError, bento.Name, BentoNameFmt)
	}
	return nil
}

// Validation of bento tag presence and format
func validateBentoTag(bento *Bento) error {
	if bento.Spec.Tag == "" {
		return fmt.Errorf(MissingBentoTagError, bento.Name)
	}
	if _, _, err := ParseBentoTag(bento.Spec.Tag); err != nil {
		return fmt.Errorf("the Bento \"%s\" is invalid: %w", bento.Name, err)
	}
	return nil
}

// Validation of unique runner names
func validateRunnerNameUniqueness(bento *Bento) error {
	nameSet := sets.NewString()
	for _, runner := range bento.Spec.Runners {
		if nameSet.Has(runner.Name) {
			return fmt.Errorf(DuplicateRunnerNameError, bento.Name, runner.Name)
		}
		nameSet.Insert(runner.Name)
	}
	return nil
}

// Validation of unique model tags
func validateModelTagUniqueness(bento *Bento) error {
	tagSet := sets.NewString()
	for _, model := range bento.Spec.Models {
		if tagSet.Has(model.Tag) {
			return fmt.Errorf(DuplicateModelTagError, bento.Name, model.Tag)
		}
		tagSet.Insert(model.Tag)
	}
	return nil
}

// Validation of runner model references against declared models
func validateRunnerModelTags(bento *Bento) error {
	declared := sets.NewString()
	for _, model := range bento.Spec.Models {
		declared.Insert(model.Tag)
	}
	for _, runner := range bento.Spec.Runners {
		for _, tag := range runner.ModelTags {
			if !declared.Has(tag) {
				return fmt.Errorf(UnknownRunnerModelTagError, bento.Name, runner.Name, tag)
			}
		}
	}
	return nil
}
