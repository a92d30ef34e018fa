package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"redditstage/internal/config"
	"redditstage/internal/repository"
	"redditstage/internal/service"
)

type Handlers struct {
	Catalog     service.CatalogService
	Files       service.FilesService
	Publish     service.PublishService
	UserRepo    repository.UserRepository
	AccountRepo repository.AccountRepository
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		Catalog:     services.Catalog,
		Files:       services.Files,
		Publish:     services.Publish,
		UserRepo:    repo.User,
		AccountRepo: repo.Account,
		Cfg:         config,
		Validate:    validator.New(),
	}
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
