package query

import (
	"context"
	"fmt"

	"github.com/stocktrail/stocktrail/internal/user/domain"
)

// GetUserQuery represents the query to get a user.
type GetUserQuery struct {
	UserID uint
}

// GetUserHandler handles get user query
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query
func (h *GetUserHandler) Handle(ctx context.Context, q GetUserQuery) (*domain.User, error) {
	if q.UserID == 0 {
		return nil, fmt.Errorf("user id is required")
	}

	return h.repo.FindByID(ctx, q.UserID)
}
