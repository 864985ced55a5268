// Package validation gates every record store mutation behind a set of independent checks.
// A Validator accumulates failure messages; it never stops early and is never reset.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"medreminder/internal/domain/entity"
	domainerrors "medreminder/internal/domain/errors"
	"medreminder/internal/domain/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	msgUsernameTaken    = "Username already exists in the database. Please choose another username."
	msgEmailFormat      = "Email was not in the correct format. Please enter a valid email address."
	msgPasswordLength   = "Password does not satisfy the requirements; it must have eight or more characters."
	msgPasswordMix      = "Password does not satisfy the requirements; it must have both letters and numbers."
	msgUsernameMissing  = "No account found with username %s."
	msgPasswordMismatch = "Password for user \"%s\" incorrect. Please try again."
	msgDatesInvalid     = "The date(s) are invalid in some regard. Please input valid dates."
	msgDatesOrder       = "The expiration date cannot be before the date issued."
	msgBlank            = "%s cannot be blank."
	msgNotNumeric       = "%s must be a number. Please remove any non-numeric characters from \"%s\"."
	msgNotPositive      = "%s must be greater than zero."
	msgIntervalTooLong  = "%s cannot be more than %d %s."
	msgUnknownUnit      = "%s is not a known unit of time. Please choose one of: %s."
	msgNoPrescriptions  = "Current user has no prescriptions to edit!"
)

// Factory hands out fresh validators sharing one engine and one read-only view of the store.
type Factory struct {
	engine        *validator.Validate
	customers     repository.CustomerReader
	prescriptions repository.PrescriptionReader
}

// NewFactory creates a validator factory over the given readers.
func NewFactory(customers repository.CustomerReader, prescriptions repository.PrescriptionReader) *Factory {
	return &Factory{
		engine:        NewEngine(),
		customers:     customers,
		prescriptions: prescriptions,
	}
}

// NewFactoryFromStore is the fx constructor.
func NewFactoryFromStore(store repository.RecordStore) *Factory {
	return NewFactory(store, store)
}

// New returns an empty validator for one validation attempt.
func (f *Factory) New() *Validator {
	return &Validator{factory: f}
}

// Validator accumulates the failures of one validation attempt.
type Validator struct {
	factory  *Factory
	failures []string
}

// NoFailures reports whether every check run so far passed.
func (v *Validator) NoFailures() bool {
	return len(v.failures) == 0
}

// Failures returns the accumulated messages in the order the checks ran.
func (v *Validator) Failures() []string {
	return append([]string(nil), v.failures...)
}

// Err returns a ValidationError carrying the failures, or nil when there are none.
func (v *Validator) Err() error {
	if v.NoFailures() {
		return nil
	}

	return domainerrors.NewValidationError(v.failures)
}

func (v *Validator) fail(format string, args ...any) {
	if len(args) == 0 {
		v.failures = append(v.failures, format)

		return
	}
	v.failures = append(v.failures, fmt.Sprintf(format, args...))
}

func (v *Validator) passes(value any, tag string) bool {
	return v.factory.engine.Var(value, tag) == nil
}

// CheckUsernameUnique fails when any customer already has the username.
func (v *Validator) CheckUsernameUnique(username string) {
	if v.usernameTaken(username) {
		v.fail(msgUsernameTaken)
	}
}

// CheckEmailFormat fails unless the whole address matches the accepted pattern.
func (v *Validator) CheckEmailFormat(email string) {
	if !v.passes(email, tagEmail) {
		v.fail(msgEmailFormat)
	}
}

// CheckPasswordStrength raises one message for a short password and another for one
// lacking either a letter or a digit.
func (v *Validator) CheckPasswordStrength(password string) {
	if !v.passes(password, tagMinLength) {
		v.fail(msgPasswordLength)
	}
	if !v.passes(password, tagLetterMix) {
		v.fail(msgPasswordMix)
	}
}

// CheckUsernameExists fails when no customer has the username.
func (v *Validator) CheckUsernameExists(username string) {
	if !v.usernameTaken(username) {
		v.fail(msgUsernameMissing, username)
	}
}

// CheckCredentials fails when the username exists but none of its accounts has the password.
// An unknown username is left to CheckUsernameExists.
func (v *Validator) CheckCredentials(username, password string) {
	found := false
	for _, customer := range v.factory.customers.ListCustomers() {
		if customer.Username != username {
			continue
		}
		if customer.Password == password {
			return
		}
		found = true
	}
	if found {
		v.fail(msgPasswordMismatch, username)
	}
}

// CheckDateValidity fails when either date is not a real calendar date.
func (v *Validator) CheckDateValidity(issued, expiration entity.DateFields) {
	_, issuedErr := entity.ParseDateFields(issued)
	_, expirationErr := entity.ParseDateFields(expiration)
	if issuedErr != nil || expirationErr != nil {
		v.fail(msgDatesInvalid)
	}
}

// CheckDateOrder fails when the expiration date is before the issue date.
// Invalid dates are left to CheckDateValidity.
func (v *Validator) CheckDateOrder(issued, expiration entity.DateFields) {
	issuedDate, err := entity.ParseDateFields(issued)
	if err != nil {
		return
	}
	expirationDate, err := entity.ParseDateFields(expiration)
	if err != nil {
		return
	}
	if expirationDate.Before(issuedDate) {
		v.fail(msgDatesOrder)
	}
}

// CheckNotBlank fails when value is empty or only whitespace.
func (v *Validator) CheckNotBlank(field, value string) {
	if !v.passes(strings.TrimSpace(value), tagNotBlank) {
		v.fail(msgBlank, field)
	}
}

// CheckNumeric fails when value is not a non-negative integer.
func (v *Validator) CheckNumeric(field, value string) {
	if !v.passes(value, tagUnsigned) {
		v.fail(msgNotNumeric, field, value)
	}
}

// CheckPositive fails when value is a number but zero. Non-numbers are left to CheckNumeric.
func (v *Validator) CheckPositive(field, value string) {
	if !v.passes(value, tagUnsigned) {
		return
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return
	}
	if !v.passes(n, tagPositive) {
		v.fail(msgNotPositive, field)
	}
}

// CheckIntervalInRange fails when amount units is longer than entity.MaxIntervalSeconds.
// Non-numbers and unknown units are left to CheckNumeric and CheckDurationUnit.
func (v *Validator) CheckIntervalInRange(field, amount string, unit entity.DurationUnit) {
	if !v.passes(amount, tagUnsigned) || !unit.IsValid() {
		return
	}
	n, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		return
	}
	limit := entity.MaxIntervalAmount(unit)
	if !v.passes(n, fmt.Sprintf("lte=%d", limit)) {
		v.fail(msgIntervalTooLong, field, limit, unit)
	}
}

// CheckDurationUnit fails when unit is not one of the known interval units.
func (v *Validator) CheckDurationUnit(field string, unit entity.DurationUnit) {
	if unit.IsValid() {
		return
	}

	names := make([]string, 0, len(entity.DurationUnits()))
	for _, u := range entity.DurationUnits() {
		names = append(names, string(u))
	}
	v.fail(msgUnknownUnit, field, strings.Join(names, ", "))
}

// CheckOwnerHasPrescriptions fails when the owner has nothing to edit.
func (v *Validator) CheckOwnerHasPrescriptions(ownerID uuid.UUID) {
	if len(v.factory.prescriptions.FindPrescriptionsByOwner(ownerID)) == 0 {
		v.fail(msgNoPrescriptions)
	}
}

func (v *Validator) usernameTaken(username string) bool {
	for _, customer := range v.factory.customers.ListCustomers() {
		if customer.Username == username {
			return true
		}
	}

	return false
}
