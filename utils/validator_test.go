package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"surveyapi/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name  string `json:"name" validate:"required,min=1,max=5"`
	Count int    `json:"count" validate:"gte=0"`
	Note  string `validate:"max=3"`
}

// TestValidateStruct_Valid tests that a valid struct passes.
func TestValidateStruct_Valid(t *testing.T) {
	assert.NoError(t, ValidateStruct(&sampleInput{Name: "abc", Count: 1}, http.StatusBadRequest))
}

// TestValidateStruct_ReportsJSONFieldNames tests field errors and the carried status.
func TestValidateStruct_ReportsJSONFieldNames(t *testing.T) {
	err := ValidateStruct(&sampleInput{Name: strings.Repeat("x", 6), Count: -1, Note: "long"}, http.StatusUnprocessableEntity)
	require.Error(t, err)

	var verr *apperror.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, http.StatusUnprocessableEntity, verr.Status)
	require.Len(t, verr.Fields, 3)

	byField := map[string]apperror.FieldError{}
	for _, f := range verr.Fields {
		byField[f.Field] = f
	}
	assert.Equal(t, "max", byField["name"].Rule)
	assert.Equal(t, "name must be at most 5 characters long", byField["name"].Message)
	assert.Equal(t, "gte", byField["count"].Rule)
	assert.Equal(t, "count must be greater than or equal to 0", byField["count"].Message)
	assert.Equal(t, "max", byField["Note"].Rule)
}

// TestValidateStruct_Required tests the required message.
func TestValidateStruct_Required(t *testing.T) {
	err := ValidateStruct(&sampleInput{}, http.StatusBadRequest)

	var verr *apperror.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "name is required", verr.Fields[0].Message)
	assert.Equal(t, http.StatusBadRequest, apperror.HTTPStatus(err))
}

type bindTarget struct {
	CategoryID *uint `json:"category_id"`
}

func decodeInto(raw string) error {
	var v bindTarget
	return json.NewDecoder(strings.NewReader(raw)).Decode(&v)
}

// TestBindError_Kinds tests the field error built for each decoding failure.
func TestBindError_Kinds(t *testing.T) {
	verr := BindError(decodeInto(`{"category_id":"one"}`), http.StatusBadRequest)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "category_id", verr.Fields[0].Field)
	assert.Equal(t, "type", verr.Fields[0].Rule)
	assert.Equal(t, http.StatusBadRequest, verr.Status)

	verr = BindError(decodeInto(``), http.StatusUnprocessableEntity)
	assert.Equal(t, "No input data provided", verr.Fields[0].Message)
	assert.Equal(t, http.StatusUnprocessableEntity, verr.Status)

	verr = BindError(decodeInto(`{oops`), http.StatusBadRequest)
	assert.Equal(t, "json", verr.Fields[0].Rule)
}

// TestOutOfRangeNumber tests detection of numbers that do not fit an unsigned id.
func TestOutOfRangeNumber(t *testing.T) {
	raw, ok := OutOfRangeNumber(decodeInto(`{"category_id":-1}`), "category_id")
	assert.True(t, ok)
	assert.Equal(t, "-1", raw)

	_, ok = OutOfRangeNumber(decodeInto(`{"category_id":"one"}`), "category_id")
	assert.False(t, ok)

	_, ok = OutOfRangeNumber(decodeInto(`{"category_id":-1}`), "question_id")
	assert.False(t, ok)

	_, ok = OutOfRangeNumber(nil, "category_id")
	assert.False(t, ok)
}
