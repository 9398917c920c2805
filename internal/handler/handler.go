package handlers

import (
	"github.com/go-playground/validator/v10"

	"aigallery/internal/config"
	"aigallery/internal/database"
	"aigallery/internal/service"
	"aigallery/internal/storage"
)

type Handlers struct {
	AuthService service.AuthService
	ItemService service.ItemService
	Storage     storage.Storage
	DB          *database.DB
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(services *service.Service, storage storage.Storage, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService: services.Auth,
		ItemService: services.Item,
		Storage:     storage,
		DB:          db,
		Cfg:         config,
		Validate:    validator.New(),
	}
}
