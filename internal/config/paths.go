package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathsConfig contains the file system locations the run reads and writes.
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data" validate:"required"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"reports" validate:"required"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs" validate:"required"`
}

// GetReportPath returns the path of an output file inside the reports
// directory.
func (p *PathsConfig) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// EnsureDirectories creates the output directories if they do not exist.
// The data directory is the caller's input and is not created here.
func (p *PathsConfig) EnsureDirectories() error {
	for _, dir := range []string{p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
