// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package intake

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humaidq/glucorisk/risk"
)

func validForm() url.Values {
	return Query(Defaults())
}

func TestDefaultsAreValid(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Validate(Defaults()))
	assert.NoError(t, Validate(Defaults()).Err())
}

func TestParseValidForm(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.Set(KeyBMI, "27.5")
	form.Set(KeyPregnancies, "3")

	m, errs := Parse(form)
	require.Empty(t, errs)

	assert.InDelta(t, 27.5, m.BMI, 0.0001)
	assert.Equal(t, 3, m.Pregnancies)
	assert.InDelta(t, 100, m.Glucose, 0.0001)
	assert.InDelta(t, 0.3, m.DiabetesPedigree, 0.0001)
}

func TestParseEnforcedRanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key   string
		value string
		ok    bool
	}{
		{key: KeyGlucose, value: "49", ok: false},
		{key: KeyGlucose, value: "50", ok: true},
		{key: KeyGlucose, value: "300", ok: true},
		{key: KeyGlucose, value: "301", ok: false},
		{key: KeyBloodPressure, value: "39", ok: false},
		{key: KeyBloodPressure, value: "40", ok: true},
		{key: KeyBloodPressure, value: "200", ok: true},
		{key: KeyBloodPressure, value: "201", ok: false},
		{key: KeyBMI, value: "9.9", ok: false},
		{key: KeyBMI, value: "10", ok: true},
		{key: KeyBMI, value: "50", ok: true},
		{key: KeyBMI, value: "50.1", ok: false},
		{key: KeyAge, value: "0", ok: false},
		{key: KeyAge, value: "1", ok: true},
		{key: KeyAge, value: "120", ok: true},
		{key: KeyAge, value: "121", ok: false},
		{key: KeyInsulin, value: "900", ok: true},
		{key: KeySkinThickness, value: "99", ok: true},
		{key: KeyDiabetesPedigree, value: "4.5", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Parallel()

			form := validForm()
			form.Set(tt.key, tt.value)

			_, errs := Parse(form)
			if tt.ok {
				assert.Empty(t, errs)
				return
			}

			require.Contains(t, errs, tt.key)
			assert.Len(t, errs, 1)

			f, found := Lookup(tt.key)
			require.True(t, found)
			assert.Equal(t, RangeMessage(f), errs[tt.key])
		})
	}
}

func TestParsePregnanciesMustBeWholeAndNonNegative(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"-1", "2.5", "many"} {
		form := validForm()
		form.Set(KeyPregnancies, value)

		_, errs := Parse(form)
		assert.Contains(t, errs, KeyPregnancies, "value %q", value)
	}
}

func TestParseMissingAndNonNumeric(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.Del(KeyAge)
	form.Set(KeyGlucose, "abc")
	form.Set(KeyInsulin, "NaN")

	_, errs := Parse(form)

	assert.Equal(t, errMissingValue.Error(), errs[KeyAge])
	assert.Equal(t, errNotANumber.Error(), errs[KeyGlucose])
	assert.Equal(t, errNotANumber.Error(), errs[KeyInsulin])
	assert.Len(t, errs, 3)
}

func TestRangeMessageUsesFieldBounds(t *testing.T) {
	t.Parallel()

	f, ok := Lookup(KeyGlucose)
	require.True(t, ok)
	assert.Equal(t, "Please enter a valid value between 50 and 300", RangeMessage(f))
}

func TestFieldErrorsMessageFollowsFieldOrder(t *testing.T) {
	t.Parallel()

	errs := FieldErrors{KeyAge: "bad age", KeyGlucose: "bad glucose"}

	assert.Equal(t, "invalid health metrics: glucose: bad glucose; age: bad age", errs.Error())
	assert.Error(t, errs.Err())
}

func TestBuildAppliesDefaults(t *testing.T) {
	t.Parallel()

	m, errs := Build(map[string]float64{KeyGlucose: 150, KeyAge: 50})
	require.Empty(t, errs)

	want := Defaults()
	want.Glucose = 150
	want.Age = 50
	assert.Equal(t, want, m)
}

func TestBuildRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	_, errs := Build(map[string]float64{
		KeyPregnancies: 1.5,
		KeyBMI:         math.Inf(1),
		KeyAge:         200,
	})

	assert.Contains(t, errs, KeyPregnancies)
	assert.Contains(t, errs, KeyBMI)
	assert.Contains(t, errs, KeyAge)
}

func TestQueryRoundTrip(t *testing.T) {
	t.Parallel()

	m := risk.HealthMetrics{
		Pregnancies: 4, Glucose: 145, BloodPressure: 85, SkinThickness: 30,
		Insulin: 160, BMI: 31.2, DiabetesPedigree: 0.62, Age: 52,
	}

	parsed, errs := Parse(Query(m))
	require.Empty(t, errs)
	assert.Equal(t, m, parsed)
}

func TestFieldsCatalogue(t *testing.T) {
	t.Parallel()

	got := Fields()
	require.Len(t, got, 8)
	assert.Equal(t, KeyPregnancies, got[0].Key)
	assert.Equal(t, KeyAge, got[7].Key)

	enforced := 0
	for _, f := range got {
		if f.Enforced {
			enforced++
		}
	}

	assert.Equal(t, 4, enforced)
}
