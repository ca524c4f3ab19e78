package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/vecmath/internal/config"
	"github.com/Faultbox/vecmath/internal/jobs"
	"github.com/Faultbox/vecmath/pkg/vecmath"
)

// printer writes results as plain text or YAML.
type printer struct {
	w   io.Writer
	cfg config.OutputConfig
}

func newPrinter(w io.Writer, cfg config.OutputConfig) *printer {
	return &printer{w: w, cfg: cfg}
}

// record is the YAML shape of one result.
type record struct {
	Name   string        `yaml:"name,omitempty"`
	Op     string        `yaml:"op"`
	Value  *float64      `yaml:"value,omitempty"`
	Vector *vecmath.Vec3 `yaml:"vector,omitempty,flow"`
	Error  string        `yaml:"error,omitempty"`
}

func (p *printer) format(f float64) string {
	return strconv.FormatFloat(f, 'f', p.cfg.Precision, 64)
}

func (p *printer) formatVec(v vecmath.Vec3) string {
	return p.format(v[0]) + "," + p.format(v[1]) + "," + p.format(v[2])
}

func (p *printer) scalar(op string, f float64) error {
	if p.cfg.Format == "yaml" {
		return p.yaml(record{Op: op, Value: &f})
	}
	_, err := fmt.Fprintln(p.w, p.format(f))
	return err
}

func (p *printer) vector(op string, v vecmath.Vec3) error {
	if p.cfg.Format == "yaml" {
		return p.yaml(record{Op: op, Vector: &v})
	}
	_, err := fmt.Fprintln(p.w, p.formatVec(v))
	return err
}

func (p *printer) results(results []jobs.Result) error {
	if p.cfg.Format == "yaml" {
		recs := make([]record, 0, len(results))
		for _, r := range results {
			rec := record{Name: r.Name, Op: string(r.Op)}
			switch {
			case r.Err != nil:
				rec.Error = r.Err.Error()
			case r.Vector != nil:
				rec.Vector = r.Vector
			default:
				v := r.Scalar
				rec.Value = &v
			}
			recs = append(recs, rec)
		}
		return p.yaml(recs)
	}

	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(r.Name)
		sb.WriteString("\t")
		switch {
		case r.Err != nil:
			sb.WriteString("error: " + r.Err.Error())
		case r.Vector != nil:
			sb.WriteString(p.formatVec(*r.Vector))
		default:
			sb.WriteString(p.format(r.Scalar))
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(p.w, sb.String())
	return err
}

func (p *printer) yaml(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
