package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/vecmath/pkg/vecmath"
)

// loadMatrix reads a YAML sequence of exactly 16 numbers.
func loadMatrix(path string) (vecmath.Mat4, error) {
	var m vecmath.Mat4
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parsing matrix %s: %w", path, err)
	}
	return m, nil
}
