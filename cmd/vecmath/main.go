// vecmath is a CLI for evaluating vector and matrix operations.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/vecmath/internal/config"
	"github.com/Faultbox/vecmath/internal/jobs"
	"github.com/Faultbox/vecmath/internal/logger"
	"github.com/Faultbox/vecmath/pkg/vecmath"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fatal(err)
	}
	defer logger.Sync()

	command := args[0]
	args = args[1:]
	p := newPrinter(os.Stdout, cfg.Output)

	switch command {
	case "dot":
		err = cmdDot(p, args)
	case "length", "len":
		err = cmdLength(p, args)
	case "distance", "dist":
		err = cmdDistance(p, args)
	case "transform", "tf":
		err = cmdTransform(p, cfg, args)
	case "run":
		err = cmdRun(p, cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		logger.Sync()
		fatal(err)
	}
}

func printUsage() {
	fmt.Println(`vecmath - 3D vector and 4x4 matrix calculator

Usage:
  vecmath [flags] <command> [options]

Commands:
  dot <a> <b>                     Dot product
  length <v>                      Euclidean length
  distance <p1> <p2>              Distance between two points
  transform [options] <p>         Transform a point with perspective divide
      --matrix <file.yaml>        16 values, element (r,c) at r*4+c
      --translate <x,y,z>
      --perspective <fov,aspect,near,far>  fov in degrees
  run <jobs.yaml>                 Evaluate a job file

Flags:
  --config <file>  --debug  --log-file <file>
  --precision <n>  --format text|yaml
  --checked  --epsilon <e>

Vectors are written as x,y,z.

Examples:
  vecmath dot 1,2,3 4,5,6
  vecmath distance 0,0,0 1,2,2
  vecmath transform --translate 10,20,30 1,2,3
  vecmath --checked transform --perspective 90,1.5,0.1,100 1,1,-5`)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func cmdDot(p *printer, args []string) error {
	vs, err := parseVecArgs("dot <a> <b>", args, 2)
	if err != nil {
		return err
	}
	logger.Debug("dot", zap.Any("a", vs[0]), zap.Any("b", vs[1]))
	return p.scalar("dot", vecmath.Dot(vs[0], vs[1]))
}

func cmdLength(p *printer, args []string) error {
	vs, err := parseVecArgs("length <v>", args, 1)
	if err != nil {
		return err
	}
	logger.Debug("length", zap.Any("v", vs[0]))
	return p.scalar("length", vecmath.Length(vs[0]))
}

func cmdDistance(p *printer, args []string) error {
	vs, err := parseVecArgs("distance <p1> <p2>", args, 2)
	if err != nil {
		return err
	}
	logger.Debug("distance", zap.Any("p1", vs[0]), zap.Any("p2", vs[1]))
	return p.scalar("distance", vecmath.Distance(vs[0], vs[1]))
}

func cmdTransform(p *printer, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("transform", flag.ContinueOnError)
	matrixFile := fs.String("matrix", "", "YAML file holding 16 matrix values")
	translate := fs.String("translate", "", "Translation x,y,z")
	perspective := fs.String("perspective", "", "fov,aspect,near,far (fov in degrees)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	vs, err := parseVecArgs("transform [options] <p>", fs.Args(), 1)
	if err != nil {
		return err
	}

	m, err := buildMatrix(*matrixFile, *translate, *perspective)
	if err != nil {
		return err
	}

	out := vecmath.NewVec3()
	if cfg.Transform.Checked {
		if _, err := vecmath.TransformChecked(&m, &vs[0], out, cfg.Transform.Epsilon); err != nil {
			logger.Warn("degenerate transform", zap.Any("point", vs[0]), zap.Error(err))
			return err
		}
	} else {
		vecmath.Transform(&m, &vs[0], out)
	}
	logger.Debug("transform", zap.Any("point", vs[0]), zap.Any("result", *out))
	return p.vector("transform", *out)
}

// buildMatrix returns the matrix selected by at most one of the options,
// or identity when none is given.
func buildMatrix(matrixFile, translate, perspective string) (vecmath.Mat4, error) {
	set := 0
	for _, s := range []string{matrixFile, translate, perspective} {
		if s != "" {
			set++
		}
	}
	if set > 1 {
		return vecmath.Mat4{}, errors.New("use only one of --matrix, --translate, --perspective")
	}

	switch {
	case matrixFile != "":
		return loadMatrix(matrixFile)
	case translate != "":
		v, err := parseVec(translate)
		if err != nil {
			return vecmath.Mat4{}, fmt.Errorf("--translate: %w", err)
		}
		return vecmath.Translate(v[0], v[1], v[2]), nil
	case perspective != "":
		f, err := parseFloats(perspective, 4)
		if err != nil {
			return vecmath.Mat4{}, fmt.Errorf("--perspective: %w", err)
		}
		return vecmath.Perspective(f[0]*math.Pi/180, f[1], f[2], f[3]), nil
	default:
		return vecmath.Identity(), nil
	}
}

func cmdRun(p *printer, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: vecmath run <jobs.yaml>")
	}

	f, err := jobs.Load(args[0])
	if err != nil {
		return err
	}
	logger.Info("running jobs", zap.String("file", args[0]), zap.Int("count", len(f.Jobs)))

	results := jobs.Run(f, jobs.Options{
		Checked: cfg.Transform.Checked,
		Epsilon: cfg.Transform.Epsilon,
	})
	if err := p.results(results); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(results))
	}
	return nil
}

func parseVecArgs(usage string, args []string, n int) ([]vecmath.Vec3, error) {
	if len(args) != n {
		return nil, fmt.Errorf("usage: vecmath %s", usage)
	}
	vs := make([]vecmath.Vec3, n)
	for i, a := range args {
		v, err := parseVec(a)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

// parseVec parses "x,y,z".
func parseVec(s string) (vecmath.Vec3, error) {
	f, err := parseFloats(s, 3)
	if err != nil {
		return vecmath.Vec3{}, err
	}
	return vecmath.Vec3{f[0], f[1], f[2]}, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%q: want %d comma-separated values, got %d", s, n, len(parts))
	}
	out := make([]float64, n)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = f
	}
	return out, nil
}
