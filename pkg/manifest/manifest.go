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

// Package manifest loads Bento and BentoDeployment manifests from YAML files
// and validates them offline, without an API server. The loaded set is treated
// as the whole world: cross resource references are resolved within the set
// and unresolved references are reported.
package manifest

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/serializer"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"

	resourcesv1alpha1 "github.com/bentoml/yatai-apis/pkg/apis/resources/v1alpha1"
	servingv2alpha1 "github.com/bentoml/yatai-apis/pkg/apis/serving/v2alpha1"
)

var (
	scheme = runtime.NewScheme()
	codecs serializer.CodecFactory
)

func init() {
	if err := resourcesv1alpha1.AddToScheme(scheme); err != nil {
		panic(err)
	}
	if err := servingv2alpha1.AddToScheme(scheme); err != nil {
		panic(err)
	}
	codecs = serializer.NewCodecFactory(scheme)
}

// Scheme returns the scheme holding the yatai API groups
func Scheme() *runtime.Scheme {
	return scheme
}

// Decode parses a possibly multi-document YAML (or JSON) byte stream into
// typed yatai objects. Documents with an unregistered GroupVersionKind are
// rejected.
func Decode(data []byte) ([]runtime.Object, error) {
	var objects []runtime.Object
	reader := utilyaml.NewYAMLOrJSONDecoder(bytes.NewReader(data), 4096)
	for {
		var raw json.RawMessage
		if err := reader.Decode(&raw); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrap(err, "decoding manifest document")
		}
		// a comment-only YAML document reaches us as the JSON literal null
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || string(trimmed) == "null" {
			continue
		}
		obj, gvk, err := codecs.UniversalDeserializer().Decode(raw, nil, nil)
		if err != nil {
			return nil, errors.Wrap(err, "decoding manifest object")
		}
		if obj == nil {
			return nil, errors.Errorf("manifest document %s decoded to nothing", gvk)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// Load reads every given path (files, or directories walked for .yaml/.yml
// files) and accumulates the decoded objects into a Set
func Load(paths ...string) (*Set, error) {
	set := NewSet()
	for _, path := range paths {
		files, err := expandPath(path)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			data, err := os.ReadFile(file)
			if err != nil {
				return nil, errors.Wrapf(err, "reading manifest %q", file)
			}
			objects, err := Decode(data)
			if err != nil {
				return nil, errors.Wrapf(err, "parsing manifest %q", file)
			}
			for _, obj := range objects {
				if err := set.Add(obj); err != nil {
					return nil, errors.Wrapf(err, "adding object from %q", file)
				}
			}
		}
	}
	return set, nil
}

// expandPath resolves a path into the list of manifest files it denotes
func expandPath(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "inspecting %q", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(p) {
		case ".yaml", ".yml":
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %q", path)
	}
	return files, nil
}
