// SPDX-License-Identifier: MIT
// Command kinematrix builds a rotation from ZYZ Euler angles and reports its
// properties: the matrix, its determinant, validity, the angles recovered by
// decomposition and the equivalent unit quaternion.
//
//	kinematrix -phi 90 -theta 30 -psi 30
//	KINEMATRIX_LOG_DEV=true kinematrix -theta 0 -psi 45
//
// Environment (see internal/config): KINEMATRIX_LOG_LEVEL, KINEMATRIX_LOG_DEV,
// KINEMATRIX_EPSILON. Flags override the environment.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/kinematrix/internal/config"
	"github.com/katalvlaran/kinematrix/internal/logging"
	"github.com/katalvlaran/kinematrix/matrix"
	"github.com/katalvlaran/kinematrix/transform"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "kinematrix:", err)
		os.Exit(1)
	}
}

// run parses args, builds the rotation and writes the report to out.
func run(args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		// the configured level is unknown here
		logging.NewDefault().Error("configuration rejected", zap.Error(err))
		return err
	}

	fs := flag.NewFlagSet("kinematrix", flag.ContinueOnError)
	fs.SetOutput(out)
	phi := fs.Float64("phi", 0, "first z rotation (degrees)")
	theta := fs.Float64("theta", 0, "y rotation (degrees)")
	psi := fs.Float64("psi", 0, "second z rotation (degrees)")
	eps := fs.Float64("eps", cfg.Epsilon, "tolerance for gimbal-lock and validity checks")
	level := fs.String("log-level", cfg.Level, "log level (debug, info, warn, error)")
	if err = fs.Parse(args); err != nil {
		return err
	}
	if err = config.ValidateEpsilon(*eps); err != nil {
		return err
	}

	logger, err := logging.New(*level, cfg.Development)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opt := transform.WithEpsilon(*eps)
	r := transform.EulerZYZ(*phi, *theta, *psi)
	logger.Debug("rotation built",
		zap.Float64("phi", *phi),
		zap.Float64("theta", *theta),
		zap.Float64("psi", *psi),
	)

	det := r.Det()
	valid := transform.IsOrthonormal(r, opt)
	if !valid {
		logger.Warn("rotation failed orthonormality check", zap.Float64("det", det), zap.Float64("eps", *eps))
	}

	gotPhi, gotTheta, gotPsi := transform.EulerFromRotation(r, opt)
	gimbal := gotPhi == 0 && (gotTheta == 0 || gotTheta == 180)
	if gimbal {
		logger.Info("gimbal lock: phi fixed to 0", zap.Float64("psi", gotPsi))
	}

	q := transform.Quaternion(r)
	cond, err := matrix.ConditionNumber(r)
	if err != nil {
		return err
	}

	printMat3(out, r)
	fmt.Fprintf(out, "det        %.9f\n", det)
	fmt.Fprintf(out, "rotation   %t\n", valid)
	fmt.Fprintf(out, "condition  %.9f\n", cond)
	fmt.Fprintf(out, "euler      phi=%.6f theta=%.6f psi=%.6f\n", gotPhi, gotTheta, gotPsi)
	fmt.Fprintf(out, "quaternion w=%.6f x=%.6f y=%.6f z=%.6f\n", q.Real, q.Imag, q.Jmag, q.Kmag)

	logger.Info("report written", zap.Bool("rotation", valid), zap.Bool("gimbal_lock", gimbal))

	return nil
}

func printMat3(w io.Writer, m matrix.Mat3) {
	for i := range m {
		fmt.Fprintf(w, "[% .6f % .6f % .6f]\n", m[i][0], m[i][1], m[i][2])
	}
}
