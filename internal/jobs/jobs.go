// Package jobs evaluates batches of vector operations described in YAML.
//
// A job file names matrices once and references them from transform jobs:
//
//	matrices:
//	  camera: [1,0,0,0, 0,1,0,0, 0,0,1,0, 0,0,0,1]
//	jobs:
//	  - {name: d, op: dot, a: [1,2,3], b: [4,5,6]}
//	  - {name: p, op: transform, matrix: camera, a: [1,2,3]}
package jobs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/vecmath/internal/logger"
	"github.com/Faultbox/vecmath/pkg/vecmath"
)

// Op names an operation.
type Op string

const (
	OpDot       Op = "dot"
	OpLength    Op = "length"
	OpDistance  Op = "distance"
	OpTransform Op = "transform"
)

var (
	ErrUnknownOp     = errors.New("unknown op")
	ErrUnknownMatrix = errors.New("unknown matrix")
)

// File is a parsed job file.
type File struct {
	Matrices map[string]vecmath.Mat4 `yaml:"matrices"`
	Jobs     []Job                   `yaml:"jobs"`
}

// Job is one operation. B is only read by dot and distance, Matrix only by transform.
type Job struct {
	Name   string       `yaml:"name"`
	Op     Op           `yaml:"op"`
	A      vecmath.Vec3 `yaml:"a"`
	B      vecmath.Vec3 `yaml:"b"`
	Matrix string       `yaml:"matrix"`
}

// Result is the outcome of a single job. Vector is set for transforms only.
type Result struct {
	Name   string
	Op     Op
	Scalar float64
	Vector *vecmath.Vec3
	Err    error
}

// Options control evaluation.
type Options struct {
	Checked bool    // Use TransformChecked
	Epsilon float64 // Threshold for Checked
}

// Load reads and parses a job file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a job file. Unknown keys and vectors or matrices of the
// wrong length are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &f, nil
}

// Run evaluates every job in order. A failing job records its error in the
// result and does not stop the batch.
func Run(f *File, opts Options) []Result {
	results := make([]Result, 0, len(f.Jobs))
	for i, job := range f.Jobs {
		name := job.Name
		if name == "" {
			name = fmt.Sprintf("job%d", i+1)
		}

		res := Eval(f, job, opts)
		res.Name = name
		if res.Err != nil {
			logger.Warn("job failed", zap.String("job", name), zap.Error(res.Err))
		} else {
			logger.Debug("job done", zap.String("job", name), zap.String("op", string(job.Op)), zap.Float64("value", res.Scalar))
		}
		results = append(results, res)
	}
	return results
}

// Eval evaluates a single job against the matrices of f.
func Eval(f *File, job Job, opts Options) Result {
	res := Result{Name: job.Name, Op: job.Op}

	switch job.Op {
	case OpDot:
		res.Scalar = vecmath.Dot(job.A, job.B)
	case OpLength:
		res.Scalar = vecmath.Length(job.A)
	case OpDistance:
		res.Scalar = vecmath.Distance(job.A, job.B)
	case OpTransform:
		m, ok := f.Matrices[job.Matrix]
		if !ok {
			res.Err = fmt.Errorf("%w: %q", ErrUnknownMatrix, job.Matrix)
			return res
		}
		out := vecmath.NewVec3()
		if opts.Checked {
			res.Scalar, res.Err = vecmath.TransformChecked(&m, &job.A, out, opts.Epsilon)
			if res.Err != nil {
				return res
			}
		} else {
			res.Scalar = vecmath.Transform(&m, &job.A, out)
		}
		res.Vector = out
	default:
		res.Err = fmt.Errorf("%w: %q", ErrUnknownOp, job.Op)
	}
	return res
}
