package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Alex-Dias4/psicologia-tatiane/internal/middleware"
	"github.com/Alex-Dias4/psicologia-tatiane/internal/models"
	"github.com/Alex-Dias4/psicologia-tatiane/internal/utils"
)

// ClinicHandler handles clinics and psychologist affiliations.
type ClinicHandler struct {
	DB *gorm.DB
}

// NewClinicHandler creates a new ClinicHandler.
func NewClinicHandler(db *gorm.DB) *ClinicHandler {
	return &ClinicHandler{DB: db}
}

// ListClinics returns every clinic with its affiliated psychologists.
func (h *ClinicHandler) ListClinics(c *gin.Context) {
	var clinics []models.Clinic
	err := h.DB.Preload("Affiliations.Psychologist.Profile").
		Order("name asc").
		Find(&clinics).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch clinics: "+err.Error())
		return
	}

	utils.Success(c, "Clinics fetched successfully", clinics)
}

// CreateClinicRequest represents the request body for registering a clinic.
type CreateClinicRequest struct {
	Name       string   `json:"name" binding:"required,max=100"`
	Address    string   `json:"address" binding:"max=150"`
	City       string   `json:"city" binding:"max=50"`
	State      string   `json:"state" binding:"omitempty,len=2"`
	PostalCode string   `json:"postalCode" binding:"omitempty,len=8"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

// CreateClinic registers a new clinic.
func (h *ClinicHandler) CreateClinic(c *gin.Context) {
	var req CreateClinicRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	clinic := models.Clinic{
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	}

	if err := h.DB.Create(&clinic).Error; err != nil {
		utils.InternalServerError(c, "Failed to create clinic: "+err.Error())
		return
	}

	utils.Created(c, "Clinic created successfully", clinic)
}

// AffiliateRequest represents the request body for joining a clinic.
type AffiliateRequest struct {
	WorkSchedule string `json:"workSchedule" binding:"max=100"`
}

// Affiliate links the acting psychologist to a clinic with a working
// schedule. A psychologist can be affiliated to a clinic at most once.
func (h *ClinicHandler) Affiliate(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var req AffiliateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var clinic models.Clinic
	if err := h.DB.First(&clinic, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Clinic not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var existing models.ClinicAffiliation
	err := h.DB.Where("clinic_id = ? AND psychologist_id = ?", clinic.ID, actor.Psychologist.ID).
		First(&existing).Error
	if err == nil {
		utils.BadRequest(c, "You are already affiliated with this clinic")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	affiliation := models.ClinicAffiliation{
		ClinicID:       clinic.ID,
		PsychologistID: actor.Psychologist.ID,
		WorkSchedule:   req.WorkSchedule,
	}
	if err := h.DB.Create(&affiliation).Error; err != nil {
		utils.InternalServerError(c, "Failed to create affiliation: "+err.Error())
		return
	}

	utils.Created(c, "Affiliated with clinic successfully", affiliation)
}
