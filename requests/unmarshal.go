package requests

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brettbedarf/dirsh"
	"github.com/brettbedarf/dirsh/internal/util"
)

// Format of a nodes file
type Format string

const (
	JSONFormat Format = "json"
	YAMLFormat Format = "yaml"
)

// FormatFromPath determines the format by file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLFormat, nil
	case ".json":
		return JSONFormat, nil
	default:
		return "", fmt.Errorf("unknown nodes file extension: %s", path)
	}
}

// LoadNodesFile reads a list of node requests from a JSON or YAML file
func LoadNodesFile(path string) ([]dirsh.NodeRequest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return UnmarshalNodes(data, format)
}

// UnmarshalNodes decodes a list of node requests and applies defaults.
// Every request is validated; the first invalid one fails the whole list.
func UnmarshalNodes(data []byte, format Format) ([]dirsh.NodeRequest, error) {
	var dtos []NodeRequestDTO
	switch format {
	case JSONFormat:
		if err := json.Unmarshal(data, &dtos); err != nil {
			return nil, fmt.Errorf("failed to unmarshal nodes: %w", err)
		}
	case YAMLFormat:
		if err := yaml.Unmarshal(data, &dtos); err != nil {
			return nil, fmt.Errorf("failed to unmarshal nodes: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported nodes format: %q", format)
	}

	reqs := make([]dirsh.NodeRequest, 0, len(dtos))
	for i, dto := range dtos {
		req := convertNodeDTO(dto)
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// Conversion logic with defaults in the unmarshaling layer
func convertNodeDTO(dto NodeRequestDTO) dirsh.NodeRequest {
	defaultType := dirsh.FileNodeType
	if strings.HasSuffix(dto.Path, "/") {
		defaultType = dirsh.DirNodeType
	}
	return dirsh.NodeRequest{
		Path: dto.Path,
		Type: util.ValueOrDefault(dto.Type, defaultType),
	}
}
