package handler

import (
	"log/slog"
	"net/http"

	"medreminder/internal/delivery/http/response"
	"medreminder/internal/domain/entity"
	"medreminder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PrescriptionHandlerParams holds dependencies for PrescriptionHandler, injected by Fx.
type PrescriptionHandlerParams struct {
	fx.In

	PrescriptionUC usecase.PrescriptionUsecase
	Logger         *slog.Logger
}

// PrescriptionHandler holds dependencies for prescription-related handlers
type PrescriptionHandler struct {
	prescriptionUC usecase.PrescriptionUsecase
	logger         *slog.Logger
}

// NewPrescriptionHandler is the constructor for PrescriptionHandler
func NewPrescriptionHandler(params PrescriptionHandlerParams) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUC: params.PrescriptionUC,
		logger:         params.Logger,
	}
}

// PrescriptionRequest is the add/edit form as typed. Numbers and dates stay text;
// the usecase validation reports what is wrong with them.
type PrescriptionRequest struct {
	DrugName       string            `json:"drug_name" validate:"max=128"`
	DoctorName     string            `json:"doctor_name" validate:"max=128"`
	Dosage         string            `json:"dosage" validate:"max=64"`
	SideEffects    string            `json:"side_effects" validate:"max=1024"`
	DoseAmount     string            `json:"dose_amount" validate:"max=19"`
	DoseUnit       string            `json:"dose_unit" validate:"max=16"`
	DateIssued     entity.DateFields `json:"date_issued"`
	ExpirationDate entity.DateFields `json:"expiration_date"`
}

func (r PrescriptionRequest) toInput() usecase.PrescriptionInput {
	return usecase.PrescriptionInput{
		DrugName:       r.DrugName,
		DoctorName:     r.DoctorName,
		Dosage:         r.Dosage,
		SideEffects:    r.SideEffects,
		DoseAmount:     r.DoseAmount,
		DoseUnit:       entity.DurationUnit(r.DoseUnit),
		DateIssued:     r.DateIssued,
		ExpirationDate: r.ExpirationDate,
	}
}

// ListPrescriptions returns the caller's prescriptions
func (h *PrescriptionHandler) ListPrescriptions(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	prescriptions, err := h.prescriptionUC.List(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}
	if prescriptions == nil {
		prescriptions = []entity.Prescription{}
	}

	return response.Success(c, http.StatusOK, prescriptions)
}

// AddPrescription handles the add form
func (h *PrescriptionHandler) AddPrescription(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req PrescriptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	prescription, err := h.prescriptionUC.Add(c.Request().Context(), session, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, prescription)
}

// GetPrescription returns one of the caller's prescriptions by ID
func (h *PrescriptionHandler) GetPrescription(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid prescription ID format")
	}

	prescription, err := h.prescriptionUC.Get(c.Request().Context(), session, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prescription)
}

// EditPrescription handles the edit form for the caller's prescription named in the path
func (h *PrescriptionHandler) EditPrescription(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req PrescriptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	prescription, err := h.prescriptionUC.Edit(c.Request().Context(), session, c.Param("drugName"), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prescription)
}

// DeletePrescription removes the caller's earliest prescription named in the path
func (h *PrescriptionHandler) DeletePrescription(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	if err := h.prescriptionUC.Delete(c.Request().Context(), session, c.Param("drugName")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// GetForm describes the add or edit form; ?drug_name= selects the prescription to prefill
func (h *PrescriptionHandler) GetForm(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	form, err := h.prescriptionUC.Form(c.Request().Context(), session,
		usecase.FormKind(c.Param("kind")), c.QueryParam("drug_name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, form)
}
