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

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewYataictlCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestValidateCmd(t *testing.T) {
	stdout, _, err := runCmd(t, "validate", "../../config/samples")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 object(s) loaded, all valid")
}

func TestValidateCmdFindings(t *testing.T) {
	stdout, stderr, err := runCmd(t, "validate", "../../pkg/manifest/testdata/invalid/crossed-bounds.yaml")
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid:")
	assert.Contains(t, stderr, "minReplicas")
}

func TestValidateCmdMissingPath(t *testing.T) {
	_, _, err := runCmd(t, "validate", "does-not-exist.yaml")
	require.Error(t, err)
}

func TestValidateCmdNoArgs(t *testing.T) {
	_, _, err := runCmd(t, "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one manifest path")
}

func TestDescribeCmd(t *testing.T) {
	stdout, _, err := runCmd(t, "describe", "../../config/samples")
	require.NoError(t, err)
	assert.Contains(t, stdout, "BentoDeployment fraud-detection/fraud-detection (bento: fraud-detection)")
	assert.Contains(t, stdout, "runner/ieee-fraud-detection-sm")
	assert.Contains(t, stdout, "XGBoost")
	assert.Contains(t, stdout, "1-4")
	assert.Contains(t, stdout, "cpu 60%")
}

func TestDescribeCmdYAMLOutput(t *testing.T) {
	stdout, _, err := runCmd(t, "describe", "-o", "yaml", "../../config/samples")
	require.NoError(t, err)
	assert.Contains(t, stdout, "kind: BentoDeployment")
	assert.Contains(t, stdout, "bento: fraud-detection")
	assert.Contains(t, stdout, "maxReplicas: 2")
}

func TestDescribeCmdBadOutputFormat(t *testing.T) {
	_, _, err := runCmd(t, "describe", "-o", "wide", "../../config/samples")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported output format "wide"`)
}
