package api

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/herhealth/internal/db"
	"github.com/terraincognita07/herhealth/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	log          logrus.FieldLogger
	now          func() time.Time

	repositories        *db.Repositories
	authService         *services.AuthService
	cycleService        *services.CycleService
	dashboardService    *services.DashboardService
	notificationService *services.NotificationService
	medicineService     *services.MedicineService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, log logrus.FieldLogger, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.UTC
	}
	if log == nil {
		quiet := logrus.New()
		quiet.SetLevel(logrus.PanicLevel)
		log = quiet
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		log:          log,
		now:          time.Now,
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	engine := services.NewPredictionEngine(handler.repositories.Cycles, handler.repositories.Predictions, handler.log)

	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.cycleService = services.NewCycleService(handler.repositories.Cycles, engine)
	handler.dashboardService = services.NewDashboardService(
		handler.repositories.Notifications,
		handler.repositories.Predictions,
		handler.repositories.Cycles,
	)
	handler.notificationService = services.NewNotificationService(handler.repositories.Notifications)
	handler.medicineService = services.NewMedicineService(handler.repositories.Medicines, handler.repositories.Cycles)
	return handler
}
