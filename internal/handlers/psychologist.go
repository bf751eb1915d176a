package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Alex-Dias4/psicologia-tatiane/internal/config"
	"github.com/Alex-Dias4/psicologia-tatiane/internal/middleware"
	"github.com/Alex-Dias4/psicologia-tatiane/internal/models"
	"github.com/Alex-Dias4/psicologia-tatiane/internal/scheduling"
	"github.com/Alex-Dias4/psicologia-tatiane/internal/utils"
)

// PsychologistHandler handles the psychologist-facing views and actions.
type PsychologistHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewPsychologistHandler creates a new PsychologistHandler.
func NewPsychologistHandler(db *gorm.DB, cfg *config.Config) *PsychologistHandler {
	return &PsychologistHandler{DB: db, Cfg: cfg}
}

// ListPsychologists returns the directory patients book from.
func (h *PsychologistHandler) ListPsychologists(c *gin.Context) {
	var psychologists []models.Psychologist
	err := h.DB.Preload("Profile").
		Joins("JOIN profiles ON profiles.id = psychologists.profile_id").
		Order("profiles.full_name asc").
		Find(&psychologists).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch psychologists: "+err.Error())
		return
	}

	utils.Success(c, "Psychologists fetched successfully", psychologists)
}

// Dashboard returns today's actionable appointments and the psychologist's
// patient roster.
func (h *PsychologistHandler) Dashboard(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	today, err := scheduling.PsychologistToday(h.DB, actor.Psychologist.ID, time.Now(), h.Cfg.Location)
	if err != nil {
		utils.InternalServerError(c, "Failed to load today's appointments: "+err.Error())
		return
	}

	patients, err := scheduling.PsychologistPatients(h.DB, actor.Psychologist.ID, 1)
	if err != nil {
		utils.InternalServerError(c, "Failed to load patients: "+err.Error())
		return
	}

	utils.Success(c, "Dashboard loaded successfully", gin.H{
		"today":    today,
		"patients": patients,
	})
}

// Agenda returns one page of the psychologist's full appointment history.
func (h *PsychologistHandler) Agenda(c *gin.Context) {
	actor, _ := middleware.GetActor(c)
	page := utils.PageFromQuery(c)

	appointments, err := scheduling.PsychologistAgenda(h.DB, actor.Psychologist.ID, page)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch agenda: "+err.Error())
		return
	}

	utils.Paginated(c, "Agenda fetched successfully", appointments, page, scheduling.HistoryPageSize)
}

// Patients returns one page of the distinct patients this psychologist has
// ever seen.
func (h *PsychologistHandler) Patients(c *gin.Context) {
	actor, _ := middleware.GetActor(c)
	page := utils.PageFromQuery(c)

	patients, err := scheduling.PsychologistPatients(h.DB, actor.Psychologist.ID, page)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch patients: "+err.Error())
		return
	}

	utils.Paginated(c, "Patients fetched successfully", patients, page, scheduling.PatientsPageSize)
}

// PatientHistory returns one page of the full history between this
// psychologist and one patient, diagnoses included.
func (h *PsychologistHandler) PatientHistory(c *gin.Context) {
	actor, _ := middleware.GetActor(c)
	page := utils.PageFromQuery(c)

	var patient models.Patient
	if err := h.DB.Preload("Profile").First(&patient, "id = ?", c.Param("patientId")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	appointments, err := scheduling.PairHistory(h.DB, actor.Psychologist.ID, patient.ID, page)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch history: "+err.Error())
		return
	}

	utils.Success(c, "History fetched successfully", gin.H{
		"patient": patient,
		"appointments": utils.PageData{
			Items:    appointments,
			Page:     page,
			PageSize: scheduling.PairHistoryPageSize,
		},
	})
}

// UpdateStatusRequest carries the requested status transition.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateAppointmentStatus advances the status of one of the psychologist's
// own appointments, guarded by the state machine.
func (h *PsychologistHandler) UpdateAppointmentStatus(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var req UpdateStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	next, err := scheduling.ParseStatus(req.Status)
	if err != nil {
		domainError(c, err)
		return
	}

	var appointment models.Appointment
	err = h.DB.Preload("Patient.Profile").
		First(&appointment, "id = ? AND psychologist_id = ?", c.Param("id"), actor.Psychologist.ID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := scheduling.AdvanceStatus(h.DB, &appointment, next); err != nil {
		domainError(c, err)
		return
	}

	utils.Success(c, fmt.Sprintf("Appointment status for %s updated to '%s'.",
		appointment.Patient.Profile.FullName, appointment.Status.Label()), appointment)
}

// PendingDiagnoses lists the completed appointments a diagnosis can still
// be recorded against.
func (h *PsychologistHandler) PendingDiagnoses(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	appointments, err := scheduling.CompletedForDiagnosis(h.DB, actor.Psychologist.ID)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch completed appointments: "+err.Error())
		return
	}

	utils.Success(c, "Completed appointments fetched successfully", appointments)
}

// CreateDiagnosisRequest represents the request body for recording a diagnosis.
type CreateDiagnosisRequest struct {
	Description string `json:"description" binding:"required"`
	CID10       string `json:"cid10" binding:"omitempty,max=10"`
}

// CreateDiagnosis records a diagnosis against one of the psychologist's
// completed appointments.
func (h *PsychologistHandler) CreateDiagnosis(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var req CreateDiagnosisRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var appointment models.Appointment
	err := h.DB.Preload("Patient.Profile").
		First(&appointment, "id = ? AND psychologist_id = ?", c.Param("id"), actor.Psychologist.ID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	diagnosis, err := scheduling.RecordDiagnosis(h.DB, &appointment, req.Description, req.CID10)
	if err != nil {
		domainError(c, err)
		return
	}

	utils.Created(c, fmt.Sprintf("Diagnosis for %s recorded successfully.",
		appointment.Patient.Profile.FullName), diagnosis)
}
