// ============================================================================
// fixstr - Fixed-length string toolkit
// ============================================================================
//
// Package:     config
// Description: Validation rules for the application configuration
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package config

import (
	"errors"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	mdwerror "github.com/msto63/fixstr/foundation/core/error"
	mdwerrors "github.com/msto63/fixstr/foundation/core/errors"
	mdwlog "github.com/msto63/fixstr/foundation/core/log"
	"github.com/msto63/fixstr/foundation/utils/fixstr"
)

// Validate checks every section and reports all problems at once
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.General),
		validation.Field(&c.Finder),
		validation.Field(&c.Transform),
	)
	if err != nil {
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("validate").
			Messagef("invalid configuration: %v", err).
			Cause(err).
			Code(mdwerror.CodeInvalidConfig).
			Build()
	}
	return nil
}

// Validate implements validation.Validatable
func (g GeneralConfig) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.LogLevel, validation.Required, validation.In(toAny(mdwlog.LevelNames())...)),
		validation.Field(&g.LogFormat, validation.Required, validation.In("json", "text")),
	)
}

// Validate implements validation.Validatable
func (f FinderConfig) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Roots, validation.Each(validation.Required)),
		validation.Field(&f.Extensions, validation.Required, validation.Each(validation.Required)),
		validation.Field(&f.IgnoreDirs, validation.Each(validation.Required)),
		validation.Field(&f.MaxDepth, validation.Min(0)),
		validation.Field(&f.Debounce, validation.By(nonNegativeDuration)),
	)
}

// Validate implements validation.Validatable
func (t TransformConfig) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.DefaultSteps, validation.Each(validation.By(parsableStep))),
	)
}

func nonNegativeDuration(value interface{}) error {
	d, _ := value.(Duration)
	if d.Duration < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func parsableStep(value interface{}) error {
	spec, _ := value.(string)
	if _, err := fixstr.ParseSpec(spec); err != nil {
		return errors.New("invalid step " + strconv.Quote(spec))
	}
	return nil
}

func toAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
