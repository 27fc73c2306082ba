// File: step.go
// Title: Transform Pipelines
// Description: Steps wrap the transforms so callers can select them by
//              name and chain them. Step specs have the form "lower",
//              "left=3" or "right=4".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package fixstr

import (
	"strconv"
	"strings"

	mdwerror "github.com/msto63/fixstr/foundation/core/error"
	mdwerrors "github.com/msto63/fixstr/foundation/core/errors"
)

// Step is one stage of a pipeline.
type Step func(Seq) Seq

// Step names accepted by ParseStep
const (
	StepLower = "lower"
	StepLeft  = "left"
	StepRight = "right"
)

// StepNames returns the names accepted by ParseStep.
func StepNames() []string {
	return []string{StepLower, StepLeft, StepRight}
}

// Chain runs steps left to right. Nil steps are skipped; an empty chain
// is the identity.
func Chain(steps ...Step) Step {
	return func(s Seq) Seq {
		for _, step := range steps {
			if step != nil {
				s = step(s)
			}
		}
		return s
	}
}

// ParseStep returns the step for name. arg is n for "left" and start for
// "right" and ignored for "lower". Names are case-insensitive. An unknown
// name yields an INVALID_INPUT error.
func ParseStep(name string, arg uint) (Step, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StepLower:
		return ToLower, nil
	case StepLeft:
		return func(s Seq) Seq { return Left(s, arg) }, nil
	case StepRight:
		return func(s Seq) Seq { return Right(s, arg) }, nil
	default:
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleFixstr, "parse_step", name,
			strings.Join(StepNames(), ", "))
	}
}

// ParseSpec parses "lower", "left=n" or "right=start". left and right
// require their argument and lower takes none; a missing, superfluous or
// malformed argument yields an INVALID_FORMAT error.
func ParseSpec(spec string) (Step, error) {
	name, rawArg, hasArg := strings.Cut(spec, "=")
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case StepLower:
		if hasArg {
			return nil, specError(spec, "lower takes no argument", nil)
		}
		return ParseStep(name, 0)
	case StepLeft, StepRight:
		if !hasArg {
			return nil, specError(spec, name+" needs an argument, as in "+name+"=3", nil)
		}
		arg, err := strconv.ParseUint(strings.TrimSpace(rawArg), 10, 0)
		if err != nil {
			return nil, specError(spec, "want a non-negative integer argument", err)
		}
		return ParseStep(name, uint(arg))
	default:
		return ParseStep(name, 0)
	}
}

func specError(spec, reason string, cause error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleFixstr).
		Operation("parse_spec").
		Messagef("invalid step %q: %s", spec, reason).
		Cause(cause).
		Code(mdwerror.CodeInvalidFormat).
		Detail("spec", spec).
		Severity(mdwerror.SeverityLow).
		Build()
}

// ParsePipeline parses every spec and chains the resulting steps.
func ParsePipeline(specs []string) (Step, error) {
	steps := make([]Step, 0, len(specs))
	for _, spec := range specs {
		step, err := ParseSpec(spec)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return Chain(steps...), nil
}
