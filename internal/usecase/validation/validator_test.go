package validation

import (
	"strconv"
	"testing"

	"medreminder/internal/domain/entity"
	domainerrors "medreminder/internal/domain/errors"
	"medreminder/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomers []entity.Customer

func (f fakeCustomers) ListCustomers() []entity.Customer { return f }

type fakePrescriptions map[uuid.UUID][]entity.Prescription

func (f fakePrescriptions) FindPrescriptionsByOwner(ownerID uuid.UUID) []entity.Prescription {
	return f[ownerID]
}

var ada = entity.Customer{ID: uuid.New(), Username: "ada", Password: "engine1843"}

func newTestValidator() *Validator {
	factory := NewFactory(
		fakeCustomers{ada},
		fakePrescriptions{ada.ID: {{ID: uuid.New(), OwnerID: ada.ID, DrugName: "Aspirin"}}},
	)

	return factory.New()
}

func TestValidator_FreshInstancePasses(t *testing.T) {
	v := newTestValidator()

	assert.True(t, v.NoFailures())
	assert.Empty(t, v.Failures())
	assert.NoError(t, v.Err())
}

func TestValidator_UsernameUnique(t *testing.T) {
	v := newTestValidator()
	v.CheckUsernameUnique("grace")
	assert.True(t, v.NoFailures())

	v.CheckUsernameUnique("ada")
	assert.Equal(t, []string{msgUsernameTaken}, v.Failures())
}

func TestValidator_EmailFormat(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"ada@example.com", true},
		{"first.last+tag@mail-host.co.uk", true},
		{"o'brien@host.org", true},
		{"", false},
		{"no-at-sign.com", false},
		{"ada@host", false},
		{"ada@ho st.com", false},
		{"ada@host.c0m", false},
		{" ada@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			v := newTestValidator()
			v.CheckEmailFormat(tt.email)
			assert.Equal(t, tt.valid, v.NoFailures())
		})
	}
}

func TestValidator_PasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{"long and mixed", "hollow&purple1989", nil},
		{"digits first", "1989purple", nil},
		{"exactly eight", "abcdefg1", nil},
		{"short but mixed", "abc1", []string{msgPasswordLength}},
		{"long letters only", "abcdefghij", []string{msgPasswordMix}},
		{"long digits only", "1234567890", []string{msgPasswordMix}},
		{"short letters only", "allbad", []string{msgPasswordLength, msgPasswordMix}},
		{"empty", "", []string{msgPasswordLength, msgPasswordMix}},
		{"non ascii letters", "пароль123", []string{msgPasswordMix}},
		{"non ascii digits", "password١٢٣", []string{msgPasswordMix}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestValidator()
			v.CheckPasswordStrength(tt.password)
			if tt.want == nil {
				assert.True(t, v.NoFailures())

				return
			}
			assert.Equal(t, tt.want, v.Failures())
		})
	}
}

func TestValidator_AllBadPasswordRaisesTwoMessages(t *testing.T) {
	v := newTestValidator()
	v.CheckPasswordStrength("allbad")

	failures := v.Failures()
	require.Len(t, failures, 2)
	assert.NotEqual(t, failures[0], failures[1])
}

func TestValidator_LoginChecks(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     []string
	}{
		{"match", "ada", "engine1843", nil},
		{"wrong password", "ada", "nope", []string{`Password for user "ada" incorrect. Please try again.`}},
		{"unknown user", "grace", "whatever", []string{"No account found with username grace."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestValidator()
			v.CheckUsernameExists(tt.username)
			v.CheckCredentials(tt.username, tt.password)
			if tt.want == nil {
				assert.True(t, v.NoFailures())

				return
			}
			assert.Equal(t, tt.want, v.Failures())
		})
	}
}

func TestValidator_DateChecks(t *testing.T) {
	jan1 := entity.DateFields{Year: "2024", Month: "1", Day: "1"}
	dec31 := entity.DateFields{Year: "2024", Month: "12", Day: "31"}
	apr31 := entity.DateFields{Year: "2024", Month: "4", Day: "31"}
	feb29 := entity.DateFields{Year: "2023", Month: "2", Day: "29"}

	tests := []struct {
		name       string
		issued     entity.DateFields
		expiration entity.DateFields
		want       []string
	}{
		{"ordered", jan1, dec31, nil},
		{"same day", jan1, jan1, nil},
		{"reversed", dec31, jan1, []string{msgDatesOrder}},
		{"day 31 in a 30 day month", jan1, apr31, []string{msgDatesInvalid}},
		{"not a leap year", feb29, dec31, []string{msgDatesInvalid}},
		{"non numeric", entity.DateFields{Year: "twenty", Month: "1", Day: "1"}, dec31, []string{msgDatesInvalid}},
		{"five digit year", jan1, entity.DateFields{Year: "10000", Month: "1", Day: "1"}, []string{msgDatesInvalid}},
		{"year zero", entity.DateFields{Year: "0", Month: "1", Day: "1"}, dec31, []string{msgDatesInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestValidator()
			v.CheckDateValidity(tt.issued, tt.expiration)
			v.CheckDateOrder(tt.issued, tt.expiration)
			if tt.want == nil {
				assert.True(t, v.NoFailures())

				return
			}
			assert.Equal(t, tt.want, v.Failures())
		})
	}
}

func TestValidator_NotBlankAndNumeric(t *testing.T) {
	v := newTestValidator()
	v.CheckNotBlank("Drug name", "Aspirin")
	v.CheckNumeric("Dose interval", "12")
	v.CheckNumeric("Dose interval", "0")
	require.True(t, v.NoFailures())

	v.CheckNotBlank("Drug name", "")
	v.CheckNotBlank("Dosage", " \t ")
	v.CheckNumeric("Dose interval", "12h")
	v.CheckNumeric("Dose interval", "-3")
	v.CheckNumeric("Dose interval", "99999999999999999999")

	assert.Equal(t, []string{
		"Drug name cannot be blank.",
		"Dosage cannot be blank.",
		`Dose interval must be a number. Please remove any non-numeric characters from "12h".`,
		`Dose interval must be a number. Please remove any non-numeric characters from "-3".`,
		`Dose interval must be a number. Please remove any non-numeric characters from "99999999999999999999".`,
	}, v.Failures())
}

func TestValidator_DurationUnit(t *testing.T) {
	v := newTestValidator()
	v.CheckDurationUnit("Unit", entity.UnitHours)
	require.True(t, v.NoFailures())

	v.CheckDurationUnit("Unit", entity.DurationUnit("fortnights"))
	failures := v.Failures()
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], "seconds, minutes, hours, days, weeks")
}

func TestValidator_OwnerHasPrescriptions(t *testing.T) {
	v := newTestValidator()
	v.CheckOwnerHasPrescriptions(ada.ID)
	require.True(t, v.NoFailures())

	v.CheckOwnerHasPrescriptions(uuid.New())
	assert.Equal(t, []string{msgNoPrescriptions}, v.Failures())
}

// Every check runs; failures from unrelated concerns pile up in order.
func TestValidator_AccumulatesWithoutShortCircuit(t *testing.T) {
	v := newTestValidator()
	v.CheckUsernameUnique("ada")
	v.CheckEmailFormat("bad")
	v.CheckPasswordStrength("allbad")
	v.CheckNotBlank("First name", "")

	assert.Equal(t, []string{
		msgUsernameTaken,
		msgEmailFormat,
		msgPasswordLength,
		msgPasswordMix,
		"First name cannot be blank.",
	}, v.Failures())

	validationErr, ok := errors.AsType[*domainerrors.ValidationError](v.Err())
	require.True(t, ok)
	assert.Equal(t, v.Failures(), validationErr.Messages())
}

func TestFactory_NewValidatorsAreIndependent(t *testing.T) {
	factory := NewFactory(fakeCustomers{ada}, fakePrescriptions{})

	first := factory.New()
	first.CheckEmailFormat("bad")

	second := factory.New()
	assert.False(t, first.NoFailures())
	assert.True(t, second.NoFailures())
}

func TestValidator_Positive(t *testing.T) {
	v := newTestValidator()
	v.CheckPositive("Dose interval", "3")
	v.CheckPositive("Dose interval", "abc")
	require.True(t, v.NoFailures())

	v.CheckPositive("Dose interval", "0")
	v.CheckPositive("Dose interval", "000")
	assert.Equal(t, []string{
		"Dose interval must be greater than zero.",
		"Dose interval must be greater than zero.",
	}, v.Failures())
}

func TestValidator_IntervalInRange(t *testing.T) {
	maxWeeks := strconv.FormatInt(entity.MaxIntervalAmount(entity.UnitWeeks), 10)
	maxSeconds := strconv.FormatInt(entity.MaxIntervalSeconds, 10)

	v := newTestValidator()
	v.CheckIntervalInRange("Dose interval", maxWeeks, entity.UnitWeeks)
	v.CheckIntervalInRange("Dose interval", maxSeconds, entity.UnitSeconds)
	v.CheckIntervalInRange("Dose interval", "abc", entity.UnitWeeks)
	v.CheckIntervalInRange("Dose interval", "20000000000000", entity.DurationUnit("fortnights"))
	require.True(t, v.NoFailures())

	v.CheckIntervalInRange("Dose interval", "15251", entity.UnitWeeks)
	v.CheckIntervalInRange("Dose interval", "20000000000000", entity.UnitWeeks)
	v.CheckIntervalInRange("Dose interval", "9223372037", entity.UnitSeconds)
	assert.Equal(t, []string{
		"Dose interval cannot be more than 15250 weeks.",
		"Dose interval cannot be more than 15250 weeks.",
		"Dose interval cannot be more than 9223372036 seconds.",
	}, v.Failures())
}
