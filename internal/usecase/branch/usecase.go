package branch

import (
	"context"
	"errors"
	"strings"

	"goldloan-backend/internal/domain/apperr"
	domain "goldloan-backend/internal/domain/branch"
	"goldloan-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	branches domain.Repository
}

func NewUsecase(branches domain.Repository) *Usecase {
	return &Usecase{branches: branches}
}

type Input struct {
	Name    string
	Address string
}

func (u *Usecase) Create(ctx context.Context, in Input) (*domain.Branch, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return nil, apperr.Validation("branch name and address are required")
	}
	b := &domain.Branch{
		BranchID: id.NewID32(),
		Name:     in.Name,
		Address:  in.Address,
		IsActive: true,
	}
	if err := u.branches.Create(ctx, b); err != nil {
		return nil, apperr.Internal(err)
	}
	return b, nil
}

func (u *Usecase) Get(ctx context.Context, branchID string) (*domain.Branch, error) {
	b, err := u.branches.GetByBranchID(ctx, branchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("branch")
		}
		return nil, apperr.Internal(err)
	}
	return b, nil
}

func (u *Usecase) List(ctx context.Context) ([]domain.Branch, error) {
	out, err := u.branches.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, branchID string, in Input) (*domain.Branch, error) {
	b, err := u.Get(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		b.Name = in.Name
	}
	if in.Address != "" {
		b.Address = in.Address
	}
	if err := u.branches.Save(ctx, b); err != nil {
		return nil, apperr.Internal(err)
	}
	return b, nil
}

func (u *Usecase) Delete(ctx context.Context, branchID string) error {
	b, err := u.Get(ctx, branchID)
	if err != nil {
		return err
	}
	if err := u.branches.Delete(ctx, b.ID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
