package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/Alia5/webkeys/internal/configpaths"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	yaml "gopkg.in/yaml.v3"
)

// Configuration files scope command flags under the command name and keep
// the global log flags flat:
//
//	dump:
//	  format: yaml
//	log.level: debug
//
// The same layout is read from json, yaml and toml.

// Options returns the kong options loading every candidate configuration
// file, with userPath taking priority.
func Options(userPath string) []kong.Option {
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userPath)
	// kong keeps the last value resolved, so the lowest priority goes first.
	slices.Reverse(jsonPaths)
	slices.Reverse(yamlPaths)
	slices.Reverse(tomlPaths)
	return []kong.Option{
		kong.Configuration(JSONLoader, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(TOMLLoader, tomlPaths...),
	}
}

// JSONLoader reads a JSON configuration file. kong.JSON only looks up bare
// flag names, so the document is handed to the YAML resolver, which also
// walks command sections.
func JSONLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := json.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("JSON config decode error: %w", err)
	}
	data, err := yaml.Marshal(values)
	if err != nil {
		return nil, err
	}
	return kongyaml.Loader(bytes.NewReader(data))
}

// TOMLLoader reads a TOML configuration file. Resolution is kong-toml's;
// its key validation only knows bare flag names and would reject command
// tables such as [dump], so it is skipped.
func TOMLLoader(r io.Reader) (kong.Resolver, error) {
	res, err := kongtoml.Loader(r)
	if err != nil {
		return nil, err
	}
	return kong.ResolverFunc(res.Resolve), nil
}
