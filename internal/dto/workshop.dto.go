package dto

import (
	"encoding/json"

	"github.com/autoservicehub/workshop-scheduler/internal/models"
)

// WorkshopDTO is the directory entry shape; id carries the public slug.
type WorkshopDTO struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Address              string   `json:"address"`
	Phone                string   `json:"phone"`
	Description          string   `json:"description"`
	Hours                string   `json:"hours"`
	Services             []string `json:"services"`
	Rating               float64  `json:"rating"`
	RegistrationLanguage string   `json:"registrationLanguage"`
}

// WorkshopFromModel resolves the localized content for the request locale,
// falling back to the workshop's registration language and then to any
// language the workshop was registered with.
func WorkshopFromModel(w models.Workshop, locale string) WorkshopDTO {
	var byLocale map[string]models.WorkshopContent
	if len(w.Content) > 0 {
		_ = json.Unmarshal(w.Content, &byLocale)
	}

	content, ok := byLocale[locale]
	if !ok {
		content, ok = byLocale[w.RegistrationLanguage]
	}
	if !ok {
		for _, c := range byLocale {
			content = c
			break
		}
	}

	if content.Services == nil {
		content.Services = []string{}
	}

	return WorkshopDTO{
		ID:                   w.Slug,
		Name:                 w.Name,
		Address:              w.Address,
		Phone:                w.Phone,
		Description:          content.Description,
		Hours:                content.Hours,
		Services:             content.Services,
		Rating:               w.Rating,
		RegistrationLanguage: w.RegistrationLanguage,
	}
}
