package lazy

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/reoring/tinydot/environ"
	"github.com/reoring/tinydot/source"
)

// FromEnv wraps a snapshot of the process environment. Values are not
// converted; resolution happens on access.
func FromEnv() *Tree { return FromEnvReader(environ.OSReader{}) }

// FromEnvReader wraps the environment listed by r.
func FromEnvReader(r environ.Reader) *Tree {
	snap := environ.Snapshot(r)
	m := make(map[string]any, len(snap))
	for k, v := range snap {
		m[k] = v
	}
	return New(m)
}

// FromYAMLFile reads and parses a YAML file from the OS filesystem.
func FromYAMLFile(path string) (*Tree, error) { return Loader{}.FromYAMLFile(path) }

// FromJSONFile reads and parses a JSON file from the OS filesystem.
func FromJSONFile(path string) (*Tree, error) { return Loader{}.FromJSONFile(path) }

// FromFile picks the parser by extension. See Loader.FromFile.
func FromFile(path string) (*Tree, error) { return Loader{}.FromFile(path) }

// Loader reads files into Trees. The zero value reads from the OS
// filesystem, keeps JSON numbers as json.Number and does not log.
type Loader struct {
	Fs         afero.Fs
	Logger     logrus.FieldLogger
	NumberMode source.NumberMode
}

// FromYAMLFile reads path and parses it as YAML. Read and parse errors are
// returned unmodified.
func (l Loader) FromYAMLFile(path string) (*Tree, error) {
	data, err := l.read(path, "yaml")
	if err != nil {
		return nil, err
	}
	v, err := source.DecodeYAML(data)
	if err != nil {
		return nil, err
	}
	return New(v), nil
}

// FromJSONFile reads path and parses it as JSON. Read and parse errors are
// returned unmodified.
func (l Loader) FromJSONFile(path string) (*Tree, error) {
	data, err := l.read(path, "json")
	if err != nil {
		return nil, err
	}
	v, err := source.DecodeJSON(data, l.NumberMode)
	if err != nil {
		return nil, err
	}
	return New(v), nil
}

// FromFile dispatches on the file extension: .json, or .yaml/.yml.
func (l Loader) FromFile(path string) (*Tree, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return l.FromJSONFile(path)
	case ".yaml", ".yml":
		return l.FromYAMLFile(path)
	default:
		return nil, fmt.Errorf("lazy: unsupported file extension %q", ext)
	}
}

func (l Loader) read(path, format string) ([]byte, error) {
	fs := l.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	data, err := afero.ReadFile(fs, path)
	if l.Logger != nil {
		entry := l.Logger.WithFields(logrus.Fields{"path": path, "format": format})
		if err != nil {
			entry.WithError(err).Debug("read failed")
		} else {
			entry.WithField("bytes", len(data)).Debug("loaded file")
		}
	}
	return data, err
}
