package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Alex-Dias4/psicologia-tatiane/internal/models"
	"github.com/Alex-Dias4/psicologia-tatiane/internal/utils"
)

// ActorRole is the resolved role of the current request's actor.
type ActorRole string

const (
	ActorIncomplete   ActorRole = "incomplete"
	ActorPatient      ActorRole = "patient"
	ActorPsychologist ActorRole = "psychologist"
)

// Actor is the current account together with its profile and role
// extension. It is resolved exactly once per request, right after
// authentication, so handlers never probe the profile shape themselves.
type Actor struct {
	UserID       string
	Role         ActorRole
	Profile      *models.Profile
	Patient      *models.Patient
	Psychologist *models.Psychologist
}

const actorKey = "actor"

// ResolveActor loads the authenticated account's profile and role extension
// and stores the resulting Actor in the request context. Runs after
// AuthMiddleware.
func ResolveActor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			utils.Unauthorized(c, "User not authenticated")
			c.Abort()
			return
		}

		actor := &Actor{UserID: userID, Role: ActorIncomplete}

		var profile models.Profile
		err := db.Preload("Patient").Preload("Psychologist").
			Where("user_id = ?", userID).First(&profile).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// account exists but the profile was never completed
		case err != nil:
			utils.InternalServerError(c, "Failed to resolve profile: "+err.Error())
			c.Abort()
			return
		default:
			actor.Profile = &profile
			if profile.Patient != nil {
				actor.Role = ActorPatient
				actor.Patient = profile.Patient
			} else if profile.Psychologist != nil {
				actor.Role = ActorPsychologist
				actor.Psychologist = profile.Psychologist
			}
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// GetActor returns the resolved Actor for the current request.
func GetActor(c *gin.Context) (*Actor, bool) {
	value, exists := c.Get(actorKey)
	if !exists {
		return nil, false
	}
	actor, ok := value.(*Actor)
	return actor, ok
}

// RequireRole rejects requests whose actor does not hold one of the allowed
// roles. Incomplete profiles are steered to the profile completion flow.
func RequireRole(allowed ...ActorRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			utils.InternalServerError(c, "Actor not resolved. ResolveActor middleware might be missing.")
			c.Abort()
			return
		}

		for _, role := range allowed {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		if actor.Role == ActorIncomplete {
			utils.Forbidden(c, "Complete your profile before using this feature.")
		} else {
			utils.Forbidden(c, "You do not have permission to access this resource.")
		}
		c.Abort()
	}
}
