package impl

import (
	"strconv"

	"medreminder/internal/domain/entity"
	"medreminder/internal/usecase"
)

var prescriptionFormFields = []usecase.FormField{
	{Name: usecase.FieldDrugName, Label: "Drug Name"},
	{Name: usecase.FieldDoctorName, Label: "Doctor Name"},
	{Name: usecase.FieldDosage, Label: "Dosage"},
	{Name: usecase.FieldSideEffects, Label: "Side Effects"},
	{Name: usecase.FieldDoseAmount, Label: "Time Between Doses"},
	{Name: usecase.FieldDoseUnit, Label: "Unit"},
	{Name: usecase.FieldIssuedYear, Label: "Date Issued (Year)"},
	{Name: usecase.FieldIssuedMonth, Label: "Date Issued (Month)"},
	{Name: usecase.FieldIssuedDay, Label: "Date Issued (Day)"},
	{Name: usecase.FieldExpirationYear, Label: "Expiration Date (Year)"},
	{Name: usecase.FieldExpirationMonth, Label: "Expiration Date (Month)"},
	{Name: usecase.FieldExpirationDay, Label: "Expiration Date (Day)"},
}

// buildForm is the one routine behind every prescription form.
func buildForm(kind usecase.FormKind, submit string, immutable map[string]bool, choices map[string][]string, prefill map[string]string) *usecase.FormConfig {
	form := &usecase.FormConfig{
		Kind:    kind,
		Fields:  make([]usecase.FormField, 0, len(prescriptionFormFields)),
		Mutable: make([]string, 0, len(prescriptionFormFields)),
		Prefill: prefill,
		Submit:  submit,
	}

	for _, field := range prescriptionFormFields {
		field.Mutable = !immutable[field.Name]
		field.Choices = choices[field.Name]
		form.Fields = append(form.Fields, field)
		if field.Mutable {
			form.Mutable = append(form.Mutable, field.Name)
		}
	}

	return form
}

func unitChoices() []string {
	units := entity.DurationUnits()
	names := make([]string, len(units))
	for i, unit := range units {
		names[i] = string(unit)
	}

	return names
}

func addForm() *usecase.FormConfig {
	return buildForm(usecase.FormAdd, "Add Medication", nil,
		map[string][]string{usecase.FieldDoseUnit: unitChoices()},
		map[string]string{usecase.FieldDoseUnit: string(entity.DefaultDurationUnit)},
	)
}

// editForm keeps the drug name fixed; selected may be nil when no prescription is chosen yet.
func editForm(owned []entity.Prescription, selected *entity.Prescription) *usecase.FormConfig {
	names := make([]string, len(owned))
	for i, p := range owned {
		names[i] = p.DrugName
	}

	prefill := map[string]string{}
	if selected != nil {
		amount, unit := entity.SplitSeconds(selected.TimeBetweenDose)
		issued := selected.DateIssued.Fields()
		expiration := selected.ExpirationDate.Fields()
		prefill = map[string]string{
			usecase.FieldDrugName:        selected.DrugName,
			usecase.FieldDoctorName:      selected.DoctorName,
			usecase.FieldDosage:          selected.Dosage,
			usecase.FieldSideEffects:     selected.SideEffects,
			usecase.FieldDoseAmount:      strconv.FormatInt(amount, 10),
			usecase.FieldDoseUnit:        string(unit),
			usecase.FieldIssuedYear:      issued.Year,
			usecase.FieldIssuedMonth:     issued.Month,
			usecase.FieldIssuedDay:       issued.Day,
			usecase.FieldExpirationYear:  expiration.Year,
			usecase.FieldExpirationMonth: expiration.Month,
			usecase.FieldExpirationDay:   expiration.Day,
		}
	}

	return buildForm(usecase.FormEdit, "Save Changes",
		map[string]bool{usecase.FieldDrugName: true},
		map[string][]string{
			usecase.FieldDrugName: names,
			usecase.FieldDoseUnit: unitChoices(),
		},
		prefill,
	)
}
