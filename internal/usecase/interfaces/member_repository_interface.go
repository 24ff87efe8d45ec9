package interfaces

import (
	"context"

	"mensalidade_pix/internal/domain/entities"
)

//go:generate mockgen -source=member_repository_interface.go -destination=mocks/mock_member_repository_interface.go -package=mock_interfaces

// IMemberRepository reads members. Missing members come back as a zero value.
type IMemberRepository interface {
	GetByID(ctx context.Context, id string) (entities.Member, error)
}
