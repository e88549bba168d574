package customer

import (
	"context"
	"errors"
	"strings"

	"goldloan-backend/internal/domain/actor"
	"goldloan-backend/internal/domain/apperr"
	domain "goldloan-backend/internal/domain/customer"
	"goldloan-backend/internal/domain/loan"
	"goldloan-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	customers domain.Repository
	loans     loan.Repository
}

func NewUsecase(customers domain.Repository, loans loan.Repository) *Usecase {
	return &Usecase{customers: customers, loans: loans}
}

type CreateInput struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	AadharNumber string
	PanNumber    string
	Nominee      string
	Photo        string
	AadharCard   string
	PanCard      string
}

func (u *Usecase) Create(ctx context.Context, act actor.Actor, in CreateInput) (*domain.Customer, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" || strings.TrimSpace(in.Address) == "" {
		return nil, apperr.Validation("name, phone and address are required")
	}
	c := &domain.Customer{
		CustomerID:   id.NewID32(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		AadharNumber: in.AadharNumber,
		PanNumber:    in.PanNumber,
		Nominee:      in.Nominee,
		Photo:        in.Photo,
		AadharCard:   in.AadharCard,
		PanCard:      in.PanCard,
		CreatedBy:    act.UserID,
		BranchID:     act.BranchID,
	}
	if err := u.customers.Create(ctx, c); err != nil {
		return nil, apperr.Internal(err)
	}
	return c, nil
}

func (u *Usecase) Get(ctx context.Context, customerID string) (*domain.Customer, error) {
	c, err := u.customers.GetByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("customer")
		}
		return nil, apperr.Internal(err)
	}
	return c, nil
}

func (u *Usecase) Update(ctx context.Context, customerID string, in CreateInput) (*domain.Customer, error) {
	c, err := u.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		c.Name = in.Name
	}
	if in.Email != "" {
		c.Email = in.Email
	}
	if in.Phone != "" {
		c.Phone = in.Phone
	}
	if in.Address != "" {
		c.Address = in.Address
	}
	if in.AadharNumber != "" {
		c.AadharNumber = in.AadharNumber
	}
	if in.PanNumber != "" {
		c.PanNumber = in.PanNumber
	}
	if in.Nominee != "" {
		c.Nominee = in.Nominee
	}
	if in.Photo != "" {
		c.Photo = in.Photo
	}
	if in.AadharCard != "" {
		c.AadharCard = in.AadharCard
	}
	if in.PanCard != "" {
		c.PanCard = in.PanCard
	}
	if err := u.customers.Save(ctx, c); err != nil {
		return nil, apperr.Internal(err)
	}
	return c, nil
}

// Delete refuses to remove a customer still referenced by loans; nothing
// cascades, the loans are the ledger of record.
func (u *Usecase) Delete(ctx context.Context, customerID string) error {
	c, err := u.Get(ctx, customerID)
	if err != nil {
		return err
	}
	n, err := u.loans.CountByCustomerRef(ctx, c.ID)
	if err != nil {
		return apperr.Internal(err)
	}
	if n > 0 {
		return apperr.Validation("customer has %d loans on file and cannot be deleted", n)
	}
	if err := u.customers.Delete(ctx, c.ID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (u *Usecase) List(ctx context.Context, act actor.Actor, requestedBranch string) ([]domain.Customer, error) {
	out, err := u.customers.List(ctx, act.BranchScope(requestedBranch))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}
