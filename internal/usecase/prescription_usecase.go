package usecase

import (
	"context"

	"medreminder/internal/domain/entity"

	"github.com/google/uuid"
)

// PrescriptionInput is the raw text of an add or edit form.
type PrescriptionInput struct {
	DrugName       string
	DoctorName     string
	Dosage         string
	SideEffects    string
	DoseAmount     string // Time between doses, counted in DoseUnit.
	DoseUnit       entity.DurationUnit
	DateIssued     entity.DateFields
	ExpirationDate entity.DateFields
}

// FormKind selects a prescription form.
type FormKind string

const (
	FormAdd  FormKind = "add"
	FormEdit FormKind = "edit"
)

// Form field names shared by every prescription form.
const (
	FieldDrugName        = "drug_name"
	FieldDoctorName      = "doctor_name"
	FieldDosage          = "dosage"
	FieldSideEffects     = "side_effects"
	FieldDoseAmount      = "dose_amount"
	FieldDoseUnit        = "dose_unit"
	FieldIssuedYear      = "issued_year"
	FieldIssuedMonth     = "issued_month"
	FieldIssuedDay       = "issued_day"
	FieldExpirationYear  = "expiration_year"
	FieldExpirationMonth = "expiration_month"
	FieldExpirationDay   = "expiration_day"
)

// FormField is one input of a prescription form.
type FormField struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Mutable bool     `json:"mutable"`
	Choices []string `json:"choices,omitempty"`
}

// FormConfig describes a prescription form: which fields it has, which of them
// can be changed, and what they start out holding. The add and edit forms differ
// only in this value.
type FormConfig struct {
	Kind    FormKind          `json:"kind"`
	Fields  []FormField       `json:"fields"`
	Mutable []string          `json:"mutable"`
	Prefill map[string]string `json:"prefill"`
	Submit  string            `json:"submit"`
}

// PrescriptionUsecase defines the interface for prescription management.
// Every operation acts for the session's customer only.
type PrescriptionUsecase interface {
	Add(ctx context.Context, session entity.Session, input PrescriptionInput) (*entity.Prescription, error)
	Edit(ctx context.Context, session entity.Session, drugName string, input PrescriptionInput) (*entity.Prescription, error)
	Delete(ctx context.Context, session entity.Session, drugName string) error
	List(ctx context.Context, session entity.Session) ([]entity.Prescription, error)
	Get(ctx context.Context, session entity.Session, id uuid.UUID) (*entity.Prescription, error)
	Form(ctx context.Context, session entity.Session, kind FormKind, drugName string) (*FormConfig, error)
}
