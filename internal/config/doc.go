// Package config loads the optional publishkit settings and release
// matrix files.
//
// Settings live in publish.jsonc next to the project. JSONC (JSON with
// Comments) is supported via github.com/tidwall/jsonc, matching the
// common practice of commenting build configuration files. A missing
// settings file is not an error — built-in defaults apply.
//
// The release matrix is a YAML file (gopkg.in/yaml.v3) describing a
// list of publish targets; it lets a single invocation drive the
// per-RID publish loop that CI pipelines otherwise script by hand.
package config
