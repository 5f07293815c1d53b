package db

import (
	"encoding/json"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/autoservicehub/workshop-scheduler/internal/i18n"
	"github.com/autoservicehub/workshop-scheduler/internal/models"
)

// Seed loads the starter catalog when the tables are empty: the service
// type list, the three demo workshops and their staff accounts.
func Seed(db *gorm.DB) error {
	if err := seedServiceTypes(db); err != nil {
		return err
	}
	if err := seedWorkshops(db); err != nil {
		return err
	}
	return seedUsers(db)
}

func seedServiceTypes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ServiceType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	names := []string{
		"Troca de óleo",
		"Revisão completa",
		"Alinhamento e balanceamento",
		"Troca de pneus",
		"Freios",
		"Suspensão",
		"Ar condicionado",
		"Outros",
	}

	types := make([]models.ServiceType, 0, len(names))
	for _, name := range names {
		types = append(types, models.ServiceType{Name: name, IsActive: true})
	}

	return db.Create(&types).Error
}

func content(byLocale map[string]models.WorkshopContent) []byte {
	b, _ := json.Marshal(byLocale)
	return b
}

func seedWorkshops(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Workshop{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	workshops := []models.Workshop{
		{
			Name:    "AutoService Centro",
			Slug:    "oficina-centro",
			Address: "Rua das Flores, 123 - Centro - São Paulo, SP",
			Phone:   "(11) 3456-7890",
			Rating:  4.8,
			Content: content(map[string]models.WorkshopContent{
				i18n.LocalePT: {
					Description: "Oficina especializada em serviços automotivos completos com mais de 20 anos de experiência.",
					Hours:       "Segunda à Sexta: 8h às 18h | Sábado: 8h às 12h",
					Services:    []string{"Troca de óleo", "Revisão completa", "Freios", "Suspensão", "Alinhamento"},
				},
				i18n.LocaleEN: {
					Description: "Workshop specialized in full automotive services with over 20 years of experience.",
					Hours:       "Monday to Friday: 8am to 6pm | Saturday: 8am to 12pm",
					Services:    []string{"Oil change", "Full inspection", "Brakes", "Suspension", "Alignment"},
				},
			}),
			RegistrationLanguage: i18n.LocalePT,
		},
		{
			Name:    "AutoService Zona Sul",
			Slug:    "oficina-zona-sul",
			Address: "Av. Paulista, 456 - Zona Sul - São Paulo, SP",
			Phone:   "(11) 2345-6789",
			Rating:  4.6,
			Content: content(map[string]models.WorkshopContent{
				i18n.LocalePT: {
					Description: "Moderna oficina com equipamentos de última geração e atendimento personalizado.",
					Hours:       "Segunda à Sexta: 7h30 às 18h30 | Sábado: 8h às 13h",
					Services:    []string{"Alinhamento", "Balanceamento", "Ar condicionado", "Elétrica", "Diagnóstico"},
				},
			}),
			RegistrationLanguage: i18n.LocalePT,
		},
		{
			Name:    "AutoService Zona Norte",
			Slug:    "oficina-zona-norte",
			Address: "Rua dos Automóveis, 789 - Zona Norte - São Paulo, SP",
			Phone:   "(11) 1234-5678",
			Rating:  4.3,
			Content: content(map[string]models.WorkshopContent{
				i18n.LocaleEN: {
					Description: "Specialized in national and imported vehicles with competitive prices.",
					Hours:       "Monday to Friday: 8am to 5pm | Saturday: 8am to 12pm",
					Services:    []string{"Tire replacement", "Diagnostics", "General mechanics", "Body work", "Painting"},
				},
			}),
			RegistrationLanguage: i18n.LocaleEN,
		},
	}

	return db.Create(&workshops).Error
}

func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	type account struct {
		name     string
		email    string
		phone    string
		password string
		userType models.UserType
	}

	accounts := []account{
		{"Admin Sistema", "admin@autoservice.com", "(11) 9999-9999", "admin123", models.UserTypeAdmin},
		{"AutoService Centro", "contato@oficina-centro.com", "(11) 3456-7890", "centro123", models.UserTypeWorkshop},
		{"AutoService Zona Sul", "contato@oficina-zona-sul.com", "(11) 2345-6789", "zonasul123", models.UserTypeWorkshop},
		{"AutoService Zona Norte", "contact@oficina-zona-norte.com", "(11) 1234-5678", "zonanorte123", models.UserTypeWorkshop},
	}

	users := make([]models.User, 0, len(accounts))
	for _, a := range accounts {
		hashed, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		users = append(users, models.User{
			Name:         a.name,
			Email:        a.email,
			Phone:        a.phone,
			PasswordHash: string(hashed),
			UserType:     a.userType,
		})
	}

	return db.Create(&users).Error
}
