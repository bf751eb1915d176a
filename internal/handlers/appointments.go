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

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB, cfg *config.Config) *AppointmentHandler {
	return &AppointmentHandler{DB: db, Cfg: cfg}
}

// CreateAppointmentRequest represents the request body for booking an appointment.
type CreateAppointmentRequest struct {
	PsychologistID string `json:"psychologistId" binding:"required,uuid"`
	// PatientID is only honored when a psychologist books on a patient's
	// behalf; patients always book for themselves.
	PatientID     string `json:"patientId" binding:"omitempty,uuid"`
	ScheduledDate string `json:"scheduledDate" binding:"required"`
	ScheduledTime string `json:"scheduledTime" binding:"required"`
	Note          string `json:"note"`
}

// CreateAppointment books a new appointment. New bookings always start out
// pending until the psychologist confirms them.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	// Store the canonical zero-padded form so lexical ordering in SQL stays
	// chronological even when the client sends "9:05".
	parsedDate, err := time.Parse(models.ScheduleDateLayout, req.ScheduledDate)
	if err != nil {
		utils.BadRequest(c, "Invalid scheduled date, expected YYYY-MM-DD")
		return
	}
	req.ScheduledDate = parsedDate.Format(models.ScheduleDateLayout)

	parsedTime, err := time.Parse(models.ScheduleTimeLayout, req.ScheduledTime)
	if err != nil {
		utils.BadRequest(c, "Invalid scheduled time, expected HH:MM")
		return
	}
	req.ScheduledTime = parsedTime.Format(models.ScheduleTimeLayout)

	var patientID string
	switch actor.Role {
	case middleware.ActorPatient:
		patientID = actor.Patient.ID
	case middleware.ActorPsychologist:
		if req.PatientID == "" {
			utils.BadRequest(c, "patientId is required when booking for a patient")
			return
		}
		patientID = req.PatientID
	default:
		utils.Forbidden(c, "Complete your profile before booking appointments.")
		return
	}

	var psychologist models.Psychologist
	if err := h.DB.First(&psychologist, "id = ?", req.PsychologistID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Psychologist not found")
		} else {
			utils.InternalServerError(c, "Database error verifying psychologist: "+err.Error())
		}
		return
	}
	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error verifying patient: "+err.Error())
		}
		return
	}

	appointment := models.Appointment{
		PatientID:      patient.ID,
		PsychologistID: psychologist.ID,
		ScheduledDate:  req.ScheduledDate,
		ScheduledTime:  req.ScheduledTime,
		Note:           req.Note,
		Status:         models.StatusPending,
	}

	if err := h.DB.Create(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to create appointment: "+err.Error())
		return
	}

	utils.Created(c, "Appointment booked. Awaiting confirmation by the psychologist.", appointment)
}

// GetAppointmentByID fetches a single appointment with its diagnoses.
// Only the patient and the psychologist involved may see it.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var appointment models.Appointment
	err := h.DB.Preload("Patient.Profile").Preload("Psychologist.Profile").Preload("Diagnoses").
		First(&appointment, "id = ?", c.Param("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	isPatientInvolved := actor.Patient != nil && actor.Patient.ID == appointment.PatientID
	isPsychologistInvolved := actor.Psychologist != nil && actor.Psychologist.ID == appointment.PsychologistID
	if !isPatientInvolved && !isPsychologistInvolved {
		utils.Forbidden(c, "You are not authorized to view this appointment")
		return
	}

	utils.Success(c, "Appointment fetched successfully", gin.H{
		"appointment": appointment,
		"statusLabel": appointment.Status.Label(),
		"canReschedule": isPatientInvolved &&
			scheduling.CanReschedule(&appointment, time.Now(), h.Cfg.Location),
	})
}

// PatientDashboard returns the patient's landing lists: next appointments
// plus recent completed and cancelled ones.
func (h *AppointmentHandler) PatientDashboard(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	dashboard, err := scheduling.LoadPatientDashboard(h.DB, actor.Patient.ID, time.Now(), h.Cfg.Location)
	if err != nil {
		utils.InternalServerError(c, "Failed to load dashboard: "+err.Error())
		return
	}

	utils.Success(c, "Dashboard loaded successfully", dashboard)
}

// PatientAppointments returns one page of the patient's full history.
func (h *AppointmentHandler) PatientAppointments(c *gin.Context) {
	actor, _ := middleware.GetActor(c)
	page := utils.PageFromQuery(c)

	appointments, err := scheduling.PatientHistory(h.DB, actor.Patient.ID, page)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Paginated(c, "Appointments fetched successfully", appointments, page, scheduling.HistoryPageSize)
}

// ConfirmAttendance marks the patient's attendance on a confirmed appointment.
func (h *AppointmentHandler) ConfirmAttendance(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := scheduling.ConfirmAttendance(h.DB, &appointment, actor.Patient.ID); err != nil {
		domainError(c, err)
		return
	}

	utils.Success(c, fmt.Sprintf("Your attendance on %s at %s has been confirmed.",
		appointment.ScheduledDate, appointment.ScheduledTime), appointment)
}

// RequestReschedule asks to move the appointment, if the six-hour window
// still allows it. The psychologist follows up to pick a new slot.
func (h *AppointmentHandler) RequestReschedule(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	err := scheduling.RequestReschedule(h.DB, &appointment, actor.Patient.ID, time.Now(), h.Cfg.Location)
	if err != nil {
		domainError(c, err)
		return
	}

	utils.Success(c, fmt.Sprintf("Reschedule requested for the appointment on %s at %s. The psychologist will contact you.",
		appointment.ScheduledDate, appointment.ScheduledTime), appointment)
}
