package guidance

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EmbeddedFS carries the configs compiled into the binary. main sets it from
// the tools package; tests may point it elsewhere.
var EmbeddedFS embed.FS

// WalkConfigDirectory loads every YAML tool definition, preferring the
// embedded filesystem and falling back to the OS filesystem for development.
func WalkConfigDirectory(configDir string) ([]*ToolConfig, error) {
	configs, err := walkEmbeddedConfigs()
	if err == nil && len(configs) > 0 {
		slog.Info("loaded guidance tools from embedded filesystem", "count", len(configs))
		return configs, nil
	}

	return walkOSFilesystem(configDir)
}

func walkEmbeddedConfigs() ([]*ToolConfig, error) {
	var configs []*ToolConfig

	if _, err := fs.Stat(EmbeddedFS, "."); err != nil {
		return nil, fmt.Errorf("embedded FS not available")
	}

	err := fs.WalkDir(EmbeddedFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(d.Name()) {
			return nil
		}

		data, err := EmbeddedFS.ReadFile(path)
		if err != nil {
			slog.Error("failed to read embedded config", "path", path, "error", err)
			return err
		}

		config, err := parseToolConfig(data, path)
		if err != nil {
			slog.Error("failed to parse embedded tool config", "path", path, "error", err)
			return err
		}

		configs = append(configs, config)
		slog.Debug("loaded tool config from embedded FS", "tool", config.Name, "category", config.Category)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk embedded configs: %w", err)
	}

	return configs, nil
}

func walkOSFilesystem(configDir string) ([]*ToolConfig, error) {
	var configs []*ToolConfig

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		slog.Warn("config directory does not exist", "dir", configDir)
		return configs, nil
	}

	err := filepath.Walk(configDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !isYAML(info.Name()) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("failed to read config file", "path", path, "error", err)
			return err
		}

		relPath, _ := filepath.Rel(configDir, path)
		config, err := parseToolConfig(data, relPath)
		if err != nil {
			slog.Error("failed to parse tool config", "path", path, "error", err)
			return err
		}

		configs = append(configs, config)
		slog.Debug("loaded tool config from filesystem", "tool", config.Name, "category", config.Category)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk config directory: %w", err)
	}

	return configs, nil
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

// parseToolConfig parses and validates one YAML tool configuration.
func parseToolConfig(data []byte, path string) (*ToolConfig, error) {
	var config ToolConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.Category = deriveCategoryFromPath(path)

	if config.Name == "" {
		return nil, fmt.Errorf("tool name is required in config file: %s", path)
	}
	if config.Description == "" {
		return nil, fmt.Errorf("tool description is required in config file: %s", path)
	}
	if err := validateParameters(config.Parameters); err != nil {
		return nil, fmt.Errorf("invalid parameters in %s: %w", path, err)
	}

	return &config, nil
}

func validateParameters(params []ParameterConfig) error {
	validTypes := map[string]bool{
		"string": true, "integer": true, "number": true,
		"boolean": true, "array": true, "object": true,
	}
	names := make(map[string]bool)

	for i, param := range params {
		if param.Name == "" {
			return fmt.Errorf("parameter[%d] name is required", i)
		}
		if names[param.Name] {
			return fmt.Errorf("duplicate parameter name '%s'", param.Name)
		}
		names[param.Name] = true

		if param.Type != "" && !validTypes[param.Type] {
			return fmt.Errorf("parameter '%s' has invalid type '%s'", param.Name, param.Type)
		}
	}
	return nil
}

// deriveCategoryFromPath extracts the category from the file path.
// Example: "config/finance/analyze-spending.yaml" -> "finance".
func deriveCategoryFromPath(path string) string {
	path = filepath.ToSlash(path)
	parts := strings.Split(path, "/")

	// The category is the directory directly containing the file; directories
	// named "config" or "tools" are plumbing, not categories.
	for i := len(parts) - 2; i >= 0; i-- {
		if parts[i] != "config" && parts[i] != "tools" && parts[i] != "." && parts[i] != "" {
			return parts[i]
		}
	}
	return "general"
}
