package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	"github.com/tidwall/gjson"
)

var (
	// ErrNotFound is returned when the input path does not exist.
	ErrNotFound = errors.New("input file not found")
	// ErrEmpty is returned when the input yields zero usable address lines.
	ErrEmpty = errors.New("no usable addresses in input")
)

// Load reads address candidates from path. Plain text input is consumed line
// by line with blank lines and '#' comments dropped; a file with a .json
// extension is treated as a JSON array of address strings instead. The
// returned slice preserves input order and is never empty on success.
func Load(path string) ([]string, error) {
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	var candidates []string
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		candidates, err = loadJSON(path)
	} else {
		candidates, err = loadText(path)
	}
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	return candidates, nil
}

func loadText(path string) ([]string, error) {
	lines, err := fileutil.ReadFile(path)
	if err != nil {
		return nil, errorutil.NewWithErr(err).Msgf("could not read %s", path)
	}
	var candidates []string
	for line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		candidates = append(candidates, line)
	}
	return candidates, nil
}

func loadJSON(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errorutil.NewWithErr(err).Msgf("could not read %s", path)
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, errorutil.New("expected a JSON array of addresses in %s", path)
	}
	var candidates []string
	parsed.ForEach(func(_, value gjson.Result) bool {
		if candidate := strings.TrimSpace(value.String()); candidate != "" {
			candidates = append(candidates, candidate)
		}
		return true
	})
	return candidates, nil
}
