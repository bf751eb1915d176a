package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Alex-Dias4/psicologia-tatiane/internal/middleware"
	"github.com/Alex-Dias4/psicologia-tatiane/internal/models"
	"github.com/Alex-Dias4/psicologia-tatiane/internal/utils"
)

// ProfileHandler handles profile completion and editing.
type ProfileHandler struct {
	DB *gorm.DB
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{DB: db}
}

// CompleteProfileRequest carries the common personal data plus exactly one
// role extension, chosen by ProfileType.
type CompleteProfileRequest struct {
	FullName   string   `json:"fullName" binding:"required,max=100"`
	CPF        string   `json:"cpf" binding:"required,len=11,numeric"`
	Age        *int     `json:"age"`
	Street     string   `json:"street"`
	Number     string   `json:"number"`
	District   string   `json:"district"`
	City       string   `json:"city"`
	PostalCode string   `json:"postalCode"`
	Phones     []string `json:"phones"`

	ProfileType string `json:"profileType" binding:"required,oneof=patient psychologist"`

	// patient fields
	Guardian   string `json:"guardian"`
	HealthPlan string `json:"healthPlan"`

	// psychologist fields
	CRP       string `json:"crp"`
	Specialty string `json:"specialty"`
}

// CompleteProfile creates the Profile and its single role extension for an
// account that has neither yet.
func (h *ProfileHandler) CompleteProfile(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	if actor.Profile != nil {
		utils.BadRequest(c, "Profile has already been completed")
		return
	}

	var req CompleteProfileRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.ProfileType == "psychologist" {
		if req.CRP == "" {
			utils.BadRequest(c, "CRP is required for psychologist profiles")
			return
		}
		var existingPsy models.Psychologist
		if err := h.DB.Where("crp = ?", req.CRP).First(&existingPsy).Error; err == nil {
			utils.BadRequest(c, "A psychologist with this CRP already exists")
			return
		} else if err != gorm.ErrRecordNotFound {
			utils.InternalServerError(c, "Database error: "+err.Error())
			return
		}
	}

	var existing models.Profile
	if err := h.DB.Where("cpf = ?", req.CPF).First(&existing).Error; err == nil {
		utils.BadRequest(c, "A profile with this CPF already exists")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	profile := models.Profile{
		UserID:     actor.UserID,
		CPF:        req.CPF,
		FullName:   req.FullName,
		Age:        req.Age,
		Street:     req.Street,
		Number:     req.Number,
		District:   req.District,
		City:       req.City,
		PostalCode: req.PostalCode,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		for _, number := range req.Phones {
			if number == "" {
				continue
			}
			if err := tx.Create(&models.Phone{ProfileID: profile.ID, Number: number}).Error; err != nil {
				return err
			}
		}
		if req.ProfileType == "patient" {
			return tx.Create(&models.Patient{
				ProfileID:  profile.ID,
				Guardian:   req.Guardian,
				HealthPlan: req.HealthPlan,
			}).Error
		}
		return tx.Create(&models.Psychologist{
			ProfileID: profile.ID,
			CRP:       req.CRP,
			Specialty: req.Specialty,
		}).Error
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to complete profile: "+err.Error())
		return
	}

	utils.Created(c, "Profile completed successfully", profile)
}

// GetMyProfile returns the actor's account, profile and role extension.
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if actor.Profile == nil {
		utils.Success(c, "Profile not completed yet", gin.H{"role": actor.Role})
		return
	}

	var profile models.Profile
	err := h.DB.Preload("Phones").Preload("Patient").Preload("Psychologist").
		First(&profile, "id = ?", actor.Profile.ID).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to load profile: "+err.Error())
		return
	}

	utils.Success(c, "Profile fetched successfully", gin.H{
		"role":    actor.Role,
		"profile": profile,
	})
}

// UpdateProfileRequest allows editing the common personal data and the
// fields of whichever role extension the actor holds. The role itself and
// the CPF are immutable here.
type UpdateProfileRequest struct {
	FullName   string `json:"fullName"`
	Age        *int   `json:"age"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	District   string `json:"district"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`

	Guardian   string `json:"guardian"`
	HealthPlan string `json:"healthPlan"`
	Specialty  string `json:"specialty"`
}

// UpdateProfile edits the actor's profile in place.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	if actor.Profile == nil {
		utils.BadRequest(c, "Complete your profile first")
		return
	}

	var req UpdateProfileRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	profile := actor.Profile
	if req.FullName != "" {
		profile.FullName = req.FullName
	}
	if req.Age != nil {
		profile.Age = req.Age
	}
	if req.Street != "" {
		profile.Street = req.Street
	}
	if req.Number != "" {
		profile.Number = req.Number
	}
	if req.District != "" {
		profile.District = req.District
	}
	if req.City != "" {
		profile.City = req.City
	}
	if req.PostalCode != "" {
		profile.PostalCode = req.PostalCode
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(profile).Error; err != nil {
			return err
		}
		if actor.Patient != nil {
			if req.Guardian != "" {
				actor.Patient.Guardian = req.Guardian
			}
			if req.HealthPlan != "" {
				actor.Patient.HealthPlan = req.HealthPlan
			}
			return tx.Save(actor.Patient).Error
		}
		if actor.Psychologist != nil && req.Specialty != "" {
			actor.Psychologist.Specialty = req.Specialty
			return tx.Save(actor.Psychologist).Error
		}
		return nil
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to update profile: "+err.Error())
		return
	}

	utils.Success(c, "Profile updated successfully", profile)
}
