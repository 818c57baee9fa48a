package main

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// File formats understood by the checker. formatAuto picks one by extension.
const (
	formatAuto   = "auto"
	formatJSON   = "json"
	formatYAML   = "yaml"
	formatTOML   = "toml"
	formatINI    = "ini"
	formatGoI18n = "goi18n"
)

var fileFormats = []string{formatAuto, formatJSON, formatYAML, formatTOML, formatINI, formatGoI18n}

// keyParser extracts the top-level keys of one file. name is the base file
// name; some formats derive information from it.
type keyParser func(name string, data []byte) (KeySet, error)

var keyParsers = map[string]keyParser{
	formatJSON:   parseJSONKeys,
	formatYAML:   parseYAMLKeys,
	formatTOML:   parseTOMLKeys,
	formatINI:    parseINIKeys,
	formatGoI18n: parseGoI18nKeys,
}

var extensionFormats = map[string]string{
	".json": formatJSON,
	".yaml": formatYAML,
	".yml":  formatYAML,
	".toml": formatTOML,
	".ini":  formatINI,
}

func validFileFormat(format string) bool {
	for _, f := range fileFormats {
		if f == format {
			return true
		}
	}
	return false
}

// resolveFormat returns the concrete format used to read name.
func resolveFormat(format, name string) (string, error) {
	if format != formatAuto {
		if _, ok := keyParsers[format]; !ok {
			return "", configErrorf("unknown file format %q (want one of %s)", format, strings.Join(fileFormats, ", "))
		}
		return format, nil
	}
	ext := strings.ToLower(filepath.Ext(name))
	f, ok := extensionFormats[ext]
	if !ok {
		return "", configErrorf("cannot detect the format of %s from its extension; set --file-format", name)
	}
	return f, nil
}

// parseKeys parses data in the given concrete format.
func parseKeys(format, name string, data []byte) (KeySet, error) {
	parse, ok := keyParsers[format]
	if !ok {
		return nil, configErrorf("unknown file format %q", format)
	}
	keys, err := parse(name, data)
	if err != nil {
		return nil, &ParseError{File: name, Err: err}
	}
	return keys, nil
}

func parseJSONKeys(_ string, data []byte) (KeySet, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty document")
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top level is %s, want an object", jsonKind(raw))
	}
	keys := make(KeySet, len(obj))
	for k := range obj {
		keys[k] = struct{}{}
	}
	return keys, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "an array"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	default:
		return "a number"
	}
}

// parseYAMLKeys walks the document node rather than decoding into a map so
// that duplicate keys are caught; yaml.v3 does not check them for Node targets.
func parseYAMLKeys(_ string, data []byte) (KeySet, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	keys := make(KeySet)
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return keys, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: top level is not a mapping", root.Line)
	}
	for i := 0; i < len(root.Content)-1; i += 2 {
		keyNode := root.Content[i]
		if keys.Has(keyNode.Value) {
			return nil, fmt.Errorf("line %d: duplicate key %q", keyNode.Line, keyNode.Value)
		}
		keys[keyNode.Value] = struct{}{}
	}
	return keys, nil
}

func parseTOMLKeys(_ string, data []byte) (KeySet, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	keys := make(KeySet, len(raw))
	for k := range raw {
		keys[k] = struct{}{}
	}
	return keys, nil
}

// parseINIKeys treats keys of the default section and the names of the
// other sections as the top-level entries.
func parseINIKeys(_ string, data []byte) (KeySet, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, err
	}
	keys := newKeySet(cfg.Section(ini.DefaultSection).KeyStrings()...)
	for _, name := range cfg.SectionStrings() {
		if name == ini.DefaultSection {
			continue
		}
		keys[name] = struct{}{}
	}
	return keys, nil
}

// parseGoI18nKeys reads a go-i18n message file; its keys are the message IDs.
// go-i18n flattens nested groups into dotted IDs, so unlike the other formats
// these are not only top-level keys. The file name must end in .json, .yaml,
// .yml or .toml.
func parseGoI18nKeys(name string, data []byte) (KeySet, error) {
	mf, err := i18n.ParseMessageFileBytes(data, name, map[string]i18n.UnmarshalFunc{
		"json": json.Unmarshal,
		"yaml": yaml.Unmarshal,
		"yml":  yaml.Unmarshal,
		"toml": toml.Unmarshal,
	})
	if err != nil {
		return nil, err
	}
	keys := make(KeySet, len(mf.Messages))
	for _, m := range mf.Messages {
		keys[m.ID] = struct{}{}
	}
	return keys, nil
}
