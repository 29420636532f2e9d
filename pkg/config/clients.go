package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ClientFolders maps a client identifier to its human-readable folder name
type ClientFolders map[string]string

// DefaultClientFolders is used when no mapping file is configured
func DefaultClientFolders() ClientFolders {
	return ClientFolders{
		"1": "rebecca-flemming",
		"2": "james-harrington",
	}
}

type clientFoldersFile struct {
	Clients map[string]string `yaml:"clients"`
}

// LoadClientFolders returns the default mapping overlaid with the entries
// from the YAML file at path. An empty path yields the defaults.
//
//	clients:
//	  "1": rebecca-flemming
//	  "3": arthur-pendleton
func LoadClientFolders(path string) (ClientFolders, error) {
	folders := DefaultClientFolders()
	if path == "" {
		return folders, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read client folders file: %w", err)
	}

	var file clientFoldersFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse client folders file: %w", err)
	}

	for id, folder := range file.Clients {
		if folder == "" {
			return nil, fmt.Errorf("client %q has an empty folder name", id)
		}
		folders[id] = folder
	}
	return folders, nil
}
