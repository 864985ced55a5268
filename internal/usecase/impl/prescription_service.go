package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "medreminder/internal/delivery/context"
	"medreminder/internal/domain/entity"
	domainerrors "medreminder/internal/domain/errors"
	"medreminder/internal/domain/repository"
	"medreminder/internal/errors"
	"medreminder/internal/usecase"
	"medreminder/internal/usecase/validation"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const dosageUnitSuffix = "mg"

// prescriptionService implements the PrescriptionUsecase interface.
type prescriptionService struct {
	store      repository.PrescriptionRepository
	validators *validation.Factory
	logger     *slog.Logger
}

// PrescriptionServiceParams holds dependencies for PrescriptionService, injected by Fx.
type PrescriptionServiceParams struct {
	fx.In

	Store      repository.RecordStore
	Validators *validation.Factory
	Logger     *slog.Logger
}

// NewPrescriptionService is the constructor for prescriptionService.
func NewPrescriptionService(params PrescriptionServiceParams) usecase.PrescriptionUsecase {
	return &prescriptionService{
		store:      params.Store,
		validators: params.Validators,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *prescriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add validates the form, appends the prescription and persists prescriptions.
func (srv *prescriptionService) Add(ctx context.Context, session entity.Session, input usecase.PrescriptionInput) (*entity.Prescription, error) {
	fields, err := srv.validateInput(input)
	if err != nil {
		return nil, err
	}

	id := srv.store.AddPrescription(session.CustomerID, fields)
	if err := srv.store.PersistPrescriptions(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to persist new prescription")
	}

	srv.log(ctx).Info("Prescription added",
		slog.String("customerID", session.CustomerID.String()),
		slog.String("prescriptionID", id.String()),
	)

	return srv.find(id)
}

// Edit replaces the owner's prescription named drugName. The drug name itself cannot change.
func (srv *prescriptionService) Edit(ctx context.Context, session entity.Session, drugName string, input usecase.PrescriptionInput) (*entity.Prescription, error) {
	if err := srv.checkEditable(session); err != nil {
		return nil, err
	}

	input.DrugName = drugName
	fields, err := srv.validateInput(input)
	if err != nil {
		return nil, err
	}

	id, ok := srv.store.ReplacePrescription(session.CustomerID, drugName, fields)
	if !ok {
		return nil, domainerrors.ErrPrescriptionNotFound.WrapMessage("no prescription named " + drugName)
	}
	if err := srv.store.PersistPrescriptions(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to persist edited prescription")
	}

	srv.log(ctx).Info("Prescription edited",
		slog.String("customerID", session.CustomerID.String()),
		slog.String("prescriptionID", id.String()),
	)

	return srv.find(id)
}

// Delete removes the earliest-added of the owner's prescriptions named drugName.
func (srv *prescriptionService) Delete(ctx context.Context, session entity.Session, drugName string) error {
	if !srv.store.DeletePrescription(session.CustomerID, drugName) {
		return domainerrors.ErrPrescriptionNotFound.WrapMessage("no prescription named " + drugName)
	}
	if err := srv.store.PersistPrescriptions(ctx); err != nil {
		return errors.Wrap(err, "failed to persist prescription removal")
	}

	srv.log(ctx).Info("Prescription deleted",
		slog.String("customerID", session.CustomerID.String()),
		slog.String("drugName", drugName),
	)

	return nil
}

// List returns the session customer's prescriptions.
func (srv *prescriptionService) List(_ context.Context, session entity.Session) ([]entity.Prescription, error) {
	return srv.store.FindPrescriptionsByOwner(session.CustomerID), nil
}

// Get returns one prescription if the session customer owns it.
func (srv *prescriptionService) Get(_ context.Context, session entity.Session, id uuid.UUID) (*entity.Prescription, error) {
	prescription, err := srv.find(id)
	if err != nil {
		return nil, err
	}
	if !prescription.IsOwnedBy(session.CustomerID) {
		return nil, errors.WithStack(domainerrors.ErrPrescriptionOwnership)
	}

	return prescription, nil
}

// Form describes the add or edit form. The edit form is prefilled from the owner's
// prescription named drugName; without a name it only lists the names to pick from.
func (srv *prescriptionService) Form(_ context.Context, session entity.Session, kind usecase.FormKind, drugName string) (*usecase.FormConfig, error) {
	switch kind {
	case usecase.FormAdd:
		return addForm(), nil
	case usecase.FormEdit:
		if err := srv.checkEditable(session); err != nil {
			return nil, err
		}

		owned := srv.store.FindPrescriptionsByOwner(session.CustomerID)
		if drugName == "" {
			return editForm(owned, nil), nil
		}
		for i := range owned {
			if owned[i].DrugName == drugName {
				return editForm(owned, &owned[i]), nil
			}
		}

		return nil, domainerrors.ErrPrescriptionNotFound.WrapMessage("no prescription named " + drugName)
	default:
		return nil, domainerrors.ErrUnknownForm.WrapMessage(string(kind))
	}
}

func (srv *prescriptionService) checkEditable(session entity.Session) error {
	v := srv.validators.New()
	v.CheckOwnerHasPrescriptions(session.CustomerID)

	return v.Err()
}

// validateInput runs every form check and, when they all pass, converts the form.
func (srv *prescriptionService) validateInput(input usecase.PrescriptionInput) (entity.PrescriptionFields, error) {
	if input.DoseUnit == "" {
		input.DoseUnit = entity.DefaultDurationUnit
	}

	v := srv.validators.New()
	v.CheckNotBlank("Drug name", input.DrugName)
	v.CheckNotBlank("Dosage", input.Dosage)
	v.CheckNumeric("Time between doses", input.DoseAmount)
	v.CheckPositive("Time between doses", input.DoseAmount)
	v.CheckIntervalInRange("Time between doses", input.DoseAmount, input.DoseUnit)
	v.CheckDurationUnit("Time between doses unit", input.DoseUnit)
	v.CheckDateValidity(input.DateIssued, input.ExpirationDate)
	v.CheckDateOrder(input.DateIssued, input.ExpirationDate)
	if !v.NoFailures() {
		return entity.PrescriptionFields{}, v.Err()
	}

	amount, err := strconv.ParseInt(input.DoseAmount, 10, 64)
	if err != nil {
		return entity.PrescriptionFields{}, errors.Wrap(err, "dose amount")
	}
	issued, err := entity.ParseDateFields(input.DateIssued)
	if err != nil {
		return entity.PrescriptionFields{}, err
	}
	expiration, err := entity.ParseDateFields(input.ExpirationDate)
	if err != nil {
		return entity.PrescriptionFields{}, err
	}

	return entity.PrescriptionFields{
		DrugName:        strings.TrimSpace(input.DrugName),
		DoctorName:      strings.TrimSpace(input.DoctorName),
		Dosage:          withDosageUnit(input.Dosage),
		SideEffects:     strings.TrimSpace(input.SideEffects),
		TimeBetweenDose: entity.ToSeconds(amount, input.DoseUnit),
		DateIssued:      issued,
		ExpirationDate:  expiration,
	}, nil
}

func (srv *prescriptionService) find(id uuid.UUID) (*entity.Prescription, error) {
	prescription, ok := srv.store.FindPrescriptionByID(id)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrPrescriptionNotFound)
	}

	return &prescription, nil
}

// withDosageUnit appends "mg" unless the dosage already ends with it.
func withDosageUnit(dosage string) string {
	dosage = strings.TrimSpace(dosage)
	if strings.HasSuffix(strings.ToLower(dosage), dosageUnitSuffix) {
		return dosage
	}

	return dosage + dosageUnitSuffix
}
