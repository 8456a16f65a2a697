// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhyeonp/daylist/internal/platform/apperr"
	"github.com/suhyeonp/daylist/internal/platform/validate"
)

/*
TestValidator_PassingChain verifies that a chain with no failures returns nil.
*/
func TestValidator_PassingChain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("nickname", "suhyeon").
		MaxLen("nickname", "suhyeon", 30).
		Email("email", "suhyeon@example.com").
		Date("dueDate", "2026-08-30").
		OneOf("priority", "HIGH", "LOW", "MEDIUM", "HIGH").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_AccumulatesFailures verifies all failed rules are reported together.
*/
func TestValidator_AccumulatesFailures(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("text", "   ").
		Email("email", "not-an-email").
		Date("date", "30-08-2026").
		OneOf("type", "PARTY", "RELEASE", "MEETING", "DEADLINE", "OTHER").
		Err()

	require.Error(t, err)

	var appError *apperr.AppError
	require.True(t, errors.As(err, &appError))
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Len(t, appError.Details, 4)
}

/*
TestValidator_Custom verifies conditional custom rules.
*/
func TestValidator_Custom(t *testing.T) {
	v := &validate.Validator{}

	err := v.Custom("progress", 120 > 100, "Must not exceed 100").Err()

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "progress", appError.Details[0].Field)
}
