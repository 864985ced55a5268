package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prescription is a medication a customer has been prescribed, along with its reminder state.
type Prescription struct {
	ID              uuid.UUID  `json:"id"`              // Assigned on creation.
	OwnerID         uuid.UUID  `json:"owner_id"`        // The customer this prescription belongs to.
	DrugName        string     `json:"drug_name"`       // Name of the medication.
	DoctorName      string     `json:"doctor_name"`     // Prescribing doctor.
	Dosage          string     `json:"dosage"`          // Free text, e.g. "20mg".
	SideEffects     string     `json:"side_effects"`    // Free text.
	TimeBetweenDose int64      `json:"time_btwn_dose"`  // Reminder interval in seconds.
	DateIssued      Date       `json:"date_issued"`     // Day the prescription was issued.
	ExpirationDate  Date       `json:"expiration_date"` // Day the prescription expires, never before DateIssued.
	WasTaken        time.Time  `json:"was_taken"`       // Last confirmed dose; creation time until the first one.
	Snooze          *time.Time `json:"snooze"`          // Start of a suppressed-reminder window, nil when absent.
}

// PrescriptionFields holds everything needed to construct a Prescription
// except its identity, owner and reminder state.
type PrescriptionFields struct {
	DrugName        string
	DoctorName      string
	Dosage          string
	SideEffects     string
	TimeBetweenDose int64
	DateIssued      Date
	ExpirationDate  Date
}

// NewPrescription builds a Prescription owned by ownerID, taken "now" and not snoozed.
func NewPrescription(ownerID uuid.UUID, fields PrescriptionFields, now time.Time) Prescription {
	return Prescription{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		DrugName:        fields.DrugName,
		DoctorName:      fields.DoctorName,
		Dosage:          fields.Dosage,
		SideEffects:     fields.SideEffects,
		TimeBetweenDose: fields.TimeBetweenDose,
		DateIssued:      fields.DateIssued,
		ExpirationDate:  fields.ExpirationDate,
		WasTaken:        now,
	}
}

// Fields returns the user-editable part of the prescription.
func (p Prescription) Fields() PrescriptionFields {
	return PrescriptionFields{
		DrugName:        p.DrugName,
		DoctorName:      p.DoctorName,
		Dosage:          p.Dosage,
		SideEffects:     p.SideEffects,
		TimeBetweenDose: p.TimeBetweenDose,
		DateIssued:      p.DateIssued,
		ExpirationDate:  p.ExpirationDate,
	}
}

// Interval is the reminder interval as a duration.
func (p Prescription) Interval() time.Duration {
	return time.Duration(p.TimeBetweenDose) * time.Second
}

// IsOwnedBy reports whether the prescription belongs to customerID.
func (p Prescription) IsOwnedBy(customerID uuid.UUID) bool {
	return p.OwnerID == customerID
}

// Clone returns a deep copy; the snooze pointer is not shared.
func (p Prescription) Clone() Prescription {
	if p.Snooze != nil {
		snooze := *p.Snooze
		p.Snooze = &snooze
	}

	return p
}
