package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateValidity_NilIsNotApplicable(t *testing.T) {
	assert.Equal(t, ValidityNotApplicable, EvaluateValidity(nil, testNow))
}

func TestEvaluateValidity_EmptyAndLiteralNulls(t *testing.T) {
	for _, raw := range []string{"", "  ", "null", "NULL", "undefined", "Undefined"} {
		assert.Equal(t, ValidityNotApplicable, EvaluateValidity(&raw, testNow), "input %q", raw)
	}
}

func TestEvaluateValidity_UnparsableIsMissing(t *testing.T) {
	for _, raw := range []string{"not-a-date", "2026-13-45", "soon"} {
		assert.Equal(t, ValidityMissing, EvaluateValidity(&raw, testNow), "input %q", raw)
	}
}

func TestEvaluateValidity_FutureDateIsValid(t *testing.T) {
	future := "2027-01-01"
	assert.Equal(t, ValidityValid, EvaluateValidity(&future, testNow))
}

func TestEvaluateValidity_PastDateIsExpired(t *testing.T) {
	past := "2020-06-30"
	assert.Equal(t, ValidityExpired, EvaluateValidity(&past, testNow))
}

func TestEvaluateValidity_AcceptsRFC3339(t *testing.T) {
	future := "2027-01-01T00:00:00Z"
	assert.Equal(t, ValidityValid, EvaluateValidity(&future, testNow))
}

func TestEvaluateValidity_AcceptsBrazilianDateFormat(t *testing.T) {
	past := "30/06/2020"
	assert.Equal(t, ValidityExpired, EvaluateValidity(&past, testNow))
}
