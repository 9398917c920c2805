package service

import (
	"aigallery/internal/config"
	"aigallery/internal/repository"
	"aigallery/internal/storage"
)

type Service struct {
	Auth AuthService
	Item ItemService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth: NewAuthService(rep.User, cfg),
		Item: NewItemService(rep.Item, rep.User, storage),
	}
}
