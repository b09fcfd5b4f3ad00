package describe

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/usp-protocol/usp-go/pkg/usp"
)

// Result is the value a description produces. Exactly one of Record and
// Msg is the primary value; for records carrying a message Msg is also set.
type Result struct {
	Record *usp.Record
	Msg    *usp.Msg
}

// Parse reads a description from YAML or JSONC bytes.
func Parse(data []byte) (*Result, error) {
	if isJSON(data) {
		data = jsonc.ToJSON(data)
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Message: "description is empty"}
		}
		return nil, &LoadError{Message: "failed to parse description", Cause: err}
	}

	if doc.Record == nil && doc.Msg == nil {
		return nil, &LoadError{Message: "description needs a record or msg section"}
	}

	return build(&doc)
}

// Load reads and parses the description at path. Files ending in .json or
// .jsonc are treated as JSONC regardless of content.
func Load(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	res, err := Parse(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	return res, nil
}

// isJSON reports whether data starts like a JSON object or a JSONC comment.
func isJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return bytes.HasPrefix(trimmed, []byte("{")) ||
		bytes.HasPrefix(trimmed, []byte("//")) ||
		bytes.HasPrefix(trimmed, []byte("/*"))
}
