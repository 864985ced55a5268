package blobstore

import (
	"time"

	"medreminder/internal/domain/entity"
)

const (
	seedOwnerUsername = "thestr0ngest"
	seedOwnerPassword = "hollow&purple1989"
)

func seedCustomers() []entity.Customer {
	return []entity.Customer{
		entity.NewCustomer(entity.CustomerFields{
			FirstName:   "Satoru",
			LastName:    "Gojo",
			Username:    seedOwnerUsername,
			Password:    seedOwnerPassword,
			Email:       "satorugojo@jjhs.edu",
			PhoneNumber: "5551234567",
		}),
		entity.NewCustomer(entity.CustomerFields{
			FirstName:   "Sukuna",
			LastName:    "Ryoumen",
			Username:    "kingofcurses",
			Password:    "20fingers",
			Email:       "imhim@malevolentshrine.lol",
			PhoneNumber: "5556666666",
		}),
	}
}

// seedPrescriptions returns the fixture prescriptions for the seed owner, or none
// when the loaded customers do not include that owner.
func (s *Store) seedPrescriptions() []entity.Prescription {
	owner, ok := s.FindCustomerByCredentials(seedOwnerUsername, seedOwnerPassword)
	if !ok {
		return []entity.Prescription{}
	}

	now := s.now()

	return []entity.Prescription{
		entity.NewPrescription(owner.ID, entity.PrescriptionFields{
			DrugName:        "Copium",
			DoctorName:      "Gege Akutami",
			Dosage:          "20mg",
			SideEffects:     "Sudden torso separation.",
			TimeBetweenDose: entity.ToSeconds(1, entity.UnitWeeks),
			DateIssued:      entity.MustDate(2023, time.September, 25),
			ExpirationDate:  entity.MustDate(2024, time.September, 29),
		}, now),
		entity.NewPrescription(owner.ID, entity.PrescriptionFields{
			DrugName:        "Reverse Cursed Technique",
			DoctorName:      "Ieiri Shoko",
			Dosage:          "5mg",
			SideEffects:     "Temporary loss of mental faculties.",
			TimeBetweenDose: entity.ToSeconds(2, entity.UnitMinutes),
			DateIssued:      entity.MustDate(2019, time.September, 9),
			ExpirationDate:  entity.MustDate(2024, time.September, 29),
		}, now),
	}
}
