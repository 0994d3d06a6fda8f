package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/gateway"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	GetRentalPayments(ctx context.Context, rentalID string) ([]response.PaymentResponse, error)
	BuildPaymentURL(ctx context.Context, req *request.PaymentURLRequest, clientIP string) (*response.PaymentURLResponse, error)
	HandleGatewayCallback(ctx context.Context, params url.Values) (string, bool, error)
	ConfirmGatewayPayment(ctx context.Context, txnRef string, success bool) error
}

type paymentService struct {
	repo    *repository.Repository
	gateway gateway.PaymentGateway
	log     *zap.Logger
}

func NewPaymentService(repo *repository.Repository, gw gateway.PaymentGateway, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:    repo,
		gateway: gw,
		log:     log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) GetRentalPayments(ctx context.Context, rentalID string) ([]response.PaymentResponse, error) {
	id, err := uuid.Parse(rentalID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid rental ID %s", ErrValidation, rentalID)
	}

	payments, err := s.repo.Payment.FindByRentalID(ctx, id)
	if err != nil {
		s.log.Error("Failed to list payments", zap.Error(err), zap.String("rental_id", rentalID))
		return nil, fmt.Errorf("list payments: %w", err)
	}

	items := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		items[i] = response.PaymentToResponse(payment)
	}

	return items, nil
}

func (s *paymentService) BuildPaymentURL(ctx context.Context, req *request.PaymentURLRequest, clientIP string) (*response.PaymentURLResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(req.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid payment ID %s", ErrValidation, req.PaymentID)
	}

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find payment: %w", err)
	}
	if payment == nil {
		return nil, fmt.Errorf("%w: payment %s", ErrNotFound, req.PaymentID)
	}
	if payment.Paid {
		return nil, fmt.Errorf("%w: payment %s is already paid", ErrState, req.PaymentID)
	}
	if !payment.Method.Gateway() {
		return nil, fmt.Errorf("%w: payment method %s is not a gateway method", ErrValidation, payment.Method)
	}

	orderInfo := fmt.Sprintf("Hotel payment %s", payment.TransactionID)
	paymentURL, err := s.gateway.BuildPaymentURL(payment.Amount, payment.TransactionID, orderInfo, clientIP)
	if err != nil {
		s.log.Error("Failed to build payment URL", zap.Error(err), zap.String("payment_id", req.PaymentID))
		return nil, fmt.Errorf("build payment url: %w", err)
	}

	return &response.PaymentURLResponse{
		PaymentID: payment.ID.String(),
		URL:       paymentURL,
	}, nil
}

// HandleGatewayCallback verifies the provider's signature over the raw
// callback parameters, then records the outcome. Returns the transaction
// reference and whether the provider reported success.
func (s *paymentService) HandleGatewayCallback(ctx context.Context, params url.Values) (string, bool, error) {
	txnRef, success, err := s.gateway.VerifyCallback(params)
	if err != nil {
		s.log.Warn("Rejected gateway callback", zap.Error(err))
		return "", false, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.ConfirmGatewayPayment(ctx, txnRef, success); err != nil {
		return txnRef, success, err
	}

	return txnRef, success, nil
}

// ConfirmGatewayPayment handles the provider's asynchronous confirmation.
// The provider may deliver the same callback more than once; a payment
// that is already paid stays exactly as it is, paid_at included.
func (s *paymentService) ConfirmGatewayPayment(ctx context.Context, txnRef string, success bool) error {
	payment, err := s.repo.Payment.FindByTransactionID(ctx, txnRef)
	if err != nil {
		return fmt.Errorf("find payment: %w", err)
	}
	if payment == nil {
		return fmt.Errorf("%w: transaction %s", ErrNotFound, txnRef)
	}

	if !success {
		// The use consumed at checkout goes back when the provider rejects
		// the payment, so the code can be retried. Detaching the code from
		// the payment first makes the reversal exactly-once: a replayed
		// failure callback finds no code to detach and returns nothing.
		if payment.DiscountCodeID != nil {
			codeID := *payment.DiscountCodeID
			detached, err := s.repo.Payment.DetachDiscount(ctx, payment.ID)
			if err != nil {
				s.log.Warn("Failed to detach discount", zap.Error(err),
					zap.String("payment_id", payment.ID.String()))
			} else if detached {
				if err := s.repo.Discount.DecrementUsage(ctx, codeID); err != nil {
					s.log.Warn("Failed to return discount use", zap.Error(err),
						zap.String("discount_id", codeID.String()))
				}
			}
		}
		s.log.Warn("Gateway reported payment failure",
			zap.String("transaction_id", txnRef),
			zap.String("payment_id", payment.ID.String()))
		return nil
	}

	paid, err := s.repo.Payment.MarkPaid(ctx, payment.ID, time.Now())
	if err != nil {
		return fmt.Errorf("mark payment paid: %w", err)
	}
	if !paid {
		s.log.Info("Duplicate payment confirmation ignored", zap.String("transaction_id", txnRef))
		return nil
	}

	if err := recomputeCustomerStats(ctx, s.repo, payment.CustomerID); err != nil {
		s.log.Warn("Failed to recompute customer stats", zap.Error(err), zap.String("customer_id", payment.CustomerID.String()))
	}

	s.log.Info("Gateway payment confirmed",
		zap.String("transaction_id", txnRef),
		zap.String("payment_id", payment.ID.String()),
		zap.Float64("amount", payment.Amount),
	)

	return nil
}
