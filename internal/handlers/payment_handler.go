package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/renukapahade/sprouts-coach-connect/internal/services"
	"go.uber.org/zap"
)

type paymentApplicationService interface {
	OpenPayment(ctx context.Context, subscriptionID int64) (*services.PaymentSession, error)
	Verify(ctx context.Context, orderID string) (*services.VerifyResult, error)
}

type PaymentHandler struct {
	service paymentApplicationService
	log     *zap.Logger
}

func NewPaymentHandler(service *services.SubscriptionService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

type createPaymentSessionRequest struct {
	SubscriptionID int64 `json:"subscriptionId" validate:"required,min=1"`
}

type verifyPaymentRequest struct {
	OrderID string `json:"orderId" validate:"required"`
}

func (h *PaymentHandler) CreatePaymentSession(c *fiber.Ctx) error {
	var req createPaymentSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if details := validateStruct(req); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": details,
		})
	}

	session, err := h.service.OpenPayment(c.Context(), req.SubscriptionID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSubscriptionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subscription not found"})
		case errors.Is(err, services.ErrInvalidState):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Subscription is not awaiting payment"})
		default:
			h.log.Error("create payment session failed",
				zap.Int64("subscription_id", req.SubscriptionID),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create payment session"})
		}
	}

	return c.JSON(session)
}

func (h *PaymentHandler) VerifyPayment(c *fiber.Ctx) error {
	var req verifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if details := validateStruct(req); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": details,
		})
	}

	result, err := h.service.Verify(c.Context(), req.OrderID)
	if err != nil {
		if errors.Is(err, services.ErrSubscriptionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		h.log.Error("verify payment failed", zap.String("order_id", req.OrderID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify payment"})
	}

	if !result.Activated {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payment verification failed"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payment verified and booking confirmed",
	})
}
