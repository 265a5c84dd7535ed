package services

import (
	"context"

	"shawon-burger/models"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context, page models.Page) (*models.PagedResult[models.User], error) {
	users, total, err := s.users.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return &models.PagedResult[models.User]{
		Items:       users,
		Total:       total,
		TotalPages:  page.TotalPages(total),
		CurrentPage: page.Number,
	}, nil
}
