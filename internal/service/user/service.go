package user

import (
	"context"
	"fmt"

	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/internal/repository"
)

type UserServicer interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	UpdateUser(ctx context.Context, id string, req *model.UpdateUserRequest) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
	AddFavorite(ctx context.Context, id, productID string) (*model.User, error)
	RemoveFavorite(ctx context.Context, id, productID string) (*model.User, error)
}

type Service struct {
	repo repository.UserRepository
}

func NewService(repo repository.UserRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	user := &model.User{
		Name:          req.Name,
		Email:         req.Email,
		Persona:       req.Persona,
		OwnedProducts: req.OwnedProducts,
	}
	if user.OwnedProducts == nil {
		user.OwnedProducts = []string{}
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, id string, req *model.UpdateUserRequest) (*model.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Persona != nil {
		user.Persona = *req.Persona
	}
	if req.OwnedProducts != nil {
		user.OwnedProducts = *req.OwnedProducts
	}
	if req.Favorites != nil {
		user.Favorites = *req.Favorites
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// AddFavorite is idempotent: favouriting an already-favourite product is a
// no-op.
func (s *Service) AddFavorite(ctx context.Context, id, productID string) (*model.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, fav := range user.Favorites {
		if fav == productID {
			return user, nil
		}
	}
	user.Favorites = append(user.Favorites, productID)
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) RemoveFavorite(ctx context.Context, id, productID string) (*model.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	for i, fav := range user.Favorites {
		if fav == productID {
			user.Favorites = append(user.Favorites[:i], user.Favorites[i+1:]...)
			if err := s.repo.Update(ctx, user); err != nil {
				return nil, err
			}
			break
		}
	}
	return user, nil
}
