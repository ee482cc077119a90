package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// PIDFile records the running process id on disk so init scripts and
// deploy tooling can locate the apiserver.
type PIDFile struct {
	path string
}

func NewPIDFile(path string) *PIDFile {
	return &PIDFile{path: path}
}

// Write stores the current process id, creating parent directories as
// needed.
func (p *PIDFile) Write() error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return fmt.Errorf("create pid directory: %w", err)
	}
	return os.WriteFile(p.path, []byte(fmt.Sprintf("%d\n", os.Getpid())), 0644)
}

// Remove deletes the pid file.
func (p *PIDFile) Remove() error {
	return os.Remove(p.path)
}

// Path returns the pid file location.
func (p *PIDFile) Path() string {
	return p.path
}
