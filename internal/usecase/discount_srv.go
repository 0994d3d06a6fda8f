package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DiscountService interface {
	CreateDiscount(ctx context.Context, req *request.CreateDiscountRequest) (*response.DiscountResponse, error)
	GetDiscounts(ctx context.Context, activeOnly bool) ([]response.DiscountResponse, error)
	ValidateDiscount(ctx context.Context, code string) (*response.DiscountValidationResponse, error)
	DeactivateDiscount(ctx context.Context, discountID string) error
}

type discountService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDiscountService(repo *repository.Repository, log *zap.Logger) DiscountService {
	return &discountService{
		repo: repo,
		log:  log.With(zap.String("service", "discount")),
	}
}

func (s *discountService) CreateDiscount(ctx context.Context, req *request.CreateDiscountRequest) (*response.DiscountResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create discount validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	validFrom, err := time.Parse(time.RFC3339, req.ValidFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: valid_from must be RFC 3339, got %q", ErrValidation, req.ValidFrom)
	}
	validTo, err := time.Parse(time.RFC3339, req.ValidTo)
	if err != nil {
		return nil, fmt.Errorf("%w: valid_to must be RFC 3339, got %q", ErrValidation, req.ValidTo)
	}
	if validTo.Before(validFrom) {
		return nil, fmt.Errorf("%w: valid_to is before valid_from", ErrValidation)
	}

	now := time.Now()
	code := &entity.DiscountCode{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:               req.Code,
		DiscountPercentage: req.DiscountPercentage,
		ValidFrom:          validFrom,
		ValidTo:            validTo,
		MaxUses:            req.MaxUses,
		IsActive:           true,
	}

	if err := s.repo.Discount.Create(ctx, code); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: discount code %s already exists", ErrConflict, req.Code)
		}
		s.log.Error("Failed to create discount code", zap.Error(err), zap.String("code", req.Code))
		return nil, fmt.Errorf("create discount code: %w", err)
	}

	s.log.Info("Discount code created",
		zap.String("discount_id", code.ID.String()),
		zap.String("code", code.Code),
		zap.Float64("percentage", code.DiscountPercentage),
	)

	resp := response.DiscountToResponse(code)
	return &resp, nil
}

func (s *discountService) GetDiscounts(ctx context.Context, activeOnly bool) ([]response.DiscountResponse, error) {
	codes, err := s.repo.Discount.FindAll(ctx, activeOnly)
	if err != nil {
		s.log.Error("Failed to list discount codes", zap.Error(err))
		return nil, fmt.Errorf("list discount codes: %w", err)
	}

	items := make([]response.DiscountResponse, len(codes))
	for i, code := range codes {
		items[i] = response.DiscountToResponse(code)
	}

	return items, nil
}

func (s *discountService) ValidateDiscount(ctx context.Context, codeStr string) (*response.DiscountValidationResponse, error) {
	code, err := s.repo.Discount.FindByCode(ctx, codeStr)
	if err != nil {
		return nil, fmt.Errorf("find discount code: %w", err)
	}
	if code == nil {
		return nil, fmt.Errorf("%w: discount code %s", ErrNotFound, codeStr)
	}

	resp := &response.DiscountValidationResponse{
		Code:  code.Code,
		Valid: code.Valid(time.Now()),
	}
	if resp.Valid {
		resp.DiscountPercentage = code.DiscountPercentage
	}

	return resp, nil
}

func (s *discountService) DeactivateDiscount(ctx context.Context, discountID string) error {
	id, err := uuid.Parse(discountID)
	if err != nil {
		return fmt.Errorf("%w: invalid discount ID %s", ErrValidation, discountID)
	}

	code, err := s.repo.Discount.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find discount code: %w", err)
	}
	if code == nil {
		return fmt.Errorf("%w: discount %s", ErrNotFound, discountID)
	}

	if err := s.repo.Discount.SetActive(ctx, id, false); err != nil {
		s.log.Error("Failed to deactivate discount", zap.Error(err), zap.String("discount_id", discountID))
		return err
	}

	s.log.Info("Discount code deactivated", zap.String("discount_id", discountID), zap.String("code", code.Code))
	return nil
}
