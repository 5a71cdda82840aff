package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aftab6363/Spare-Parts-Depot/internal/auth"
	"github.com/aftab6363/Spare-Parts-Depot/internal/cache"
	"github.com/aftab6363/Spare-Parts-Depot/internal/errors"
	"github.com/aftab6363/Spare-Parts-Depot/internal/model"
	"github.com/aftab6363/Spare-Parts-Depot/internal/repository"
)

// OrderItemInput is one cart line in an order submission. Only the part
// reference and quantity are taken from the client; name, price and
// image are snapshotted from the catalog.
type OrderItemInput struct {
	PartID uuid.UUID
	Qty    int
}

// CreateOrderInput carries a cart submission.
type CreateOrderInput struct {
	Items           []OrderItemInput
	ShippingAddress model.ShippingAddress
	PaymentMethod   string
	TaxPrice        decimal.Decimal
	ShippingPrice   decimal.Decimal
}

// OrderService is the order workflow engine: it creates orders from
// cart submissions and moves them through payment and delivery.
type OrderService interface {
	Create(ctx context.Context, actor auth.Identity, input CreateOrderInput) (*model.Order, error)
	Get(ctx context.Context, id uuid.UUID, actor auth.Identity) (*model.Order, error)
	ListMine(ctx context.Context, actor auth.Identity) ([]model.Order, error)
	ListAll(ctx context.Context, actor auth.Identity) ([]model.Order, error)
	MarkPaid(ctx context.Context, id uuid.UUID, actor auth.Identity) (*model.Order, error)
	MarkDelivered(ctx context.Context, id uuid.UUID, actor auth.Identity) (*model.Order, error)
}

// PartCache evicts cached catalog entries when stock changes.
// Satisfied by *cache.Client.
type PartCache interface {
	Delete(ctx context.Context, key string) error
}

var _ PartCache = (*cache.Client)(nil)

type orderService struct {
	orderRepo repository.OrderRepository
	partCache PartCache
	logger    *zap.Logger
	// Mutex map for per-order locking of pay/deliver transitions
	orderMutexes sync.Map
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, partCache PartCache, logger *zap.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		partCache: partCache,
		logger:    logger,
	}
}

// getMutex returns a mutex for a specific order ID.
func (s *orderService) getMutex(orderID uuid.UUID) *sync.Mutex {
	value, _ := s.orderMutexes.LoadOrStore(orderID.String(), &sync.Mutex{})
	return value.(*sync.Mutex)
}

// Create validates a cart submission, snapshots the referenced parts,
// recomputes all totals server-side and persists the order while
// decrementing stock, all inside one transaction.
func (s *orderService) Create(ctx context.Context, actor auth.Identity, input CreateOrderInput) (*model.Order, error) {
	if len(input.Items) == 0 {
		return nil, errors.ErrEmptyOrder
	}
	for _, item := range input.Items {
		if item.Qty <= 0 {
			return nil, errors.ErrInvalidQuantity
		}
	}

	order := &model.Order{
		UserID:          actor.UserID,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		TaxPrice:        input.TaxPrice,
		ShippingPrice:   input.ShippingPrice,
	}

	err := s.orderRepo.WithTransaction(ctx, func(ctx context.Context, orders repository.OrderRepository, parts repository.PartRepository) error {
		itemsPrice := decimal.Zero
		lines := make([]model.OrderItem, 0, len(input.Items))

		for _, item := range input.Items {
			part, err := parts.FindByIDForUpdate(ctx, item.PartID)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					return errors.ErrPartNotFound
				}
				return fmt.Errorf("lock part %s: %w", item.PartID, err)
			}

			if part.CountInStock < item.Qty {
				return errors.ErrInsufficientStock
			}

			part.CountInStock -= item.Qty
			if err := parts.Save(ctx, part); err != nil {
				return fmt.Errorf("decrement stock for part %s: %w", part.ID, err)
			}

			lines = append(lines, model.OrderItem{
				PartID: part.ID,
				Name:   part.Name,
				Qty:    item.Qty,
				Price:  part.Price,
				Image:  part.Image,
			})
			itemsPrice = itemsPrice.Add(part.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
		}

		order.OrderItems = lines
		order.ItemsPrice = itemsPrice
		order.TotalPrice = itemsPrice.Add(input.TaxPrice).Add(input.ShippingPrice)

		if err := orders.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The purchase changed stock levels, so cached copies of the
	// purchased parts are stale.
	for _, item := range input.Items {
		_ = s.partCache.Delete(ctx, partCacheKey(item.PartID))
	}

	s.logger.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", actor.UserID.String()),
		zap.Int("items", len(order.OrderItems)),
		zap.String("total", order.TotalPrice.String()),
	)

	return order, nil
}

// Get returns an order if the actor owns it or is an admin.
func (s *orderService) Get(ctx context.Context, id uuid.UUID, actor auth.Identity) (*model.Order, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, errors.ErrForbidden
	}
	return order, nil
}

// ListMine lists the actor's orders.
func (s *orderService) ListMine(ctx context.Context, actor auth.Identity) ([]model.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// ListAll lists every order. Admin only.
func (s *orderService) ListAll(ctx context.Context, actor auth.Identity) ([]model.Order, error) {
	if !actor.IsAdmin() {
		return nil, errors.ErrForbidden
	}
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// MarkPaid records payment on an order. Only the owner (or an admin)
// may pay; the call is idempotent and never overwrites paidAt. The
// payment gateway itself is a no-op stand-in.
func (s *orderService) MarkPaid(ctx context.Context, id uuid.UUID, actor auth.Identity) (*model.Order, error) {
	mutex := s.getMutex(id)
	mutex.Lock()
	defer mutex.Unlock()

	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, errors.ErrForbidden
	}

	if order.IsPaid {
		// Already paid: succeed without touching paidAt.
		return order, nil
	}

	now := time.Now()
	order.IsPaid = true
	order.PaidAt = &now
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	s.logger.Info("order paid",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", actor.UserID.String()),
	)

	return order, nil
}

// MarkDelivered records delivery on a paid order. Admin only; an unpaid
// order cannot be delivered. Idempotent on deliveredAt.
func (s *orderService) MarkDelivered(ctx context.Context, id uuid.UUID, actor auth.Identity) (*model.Order, error) {
	if !actor.IsAdmin() {
		return nil, errors.ErrForbidden
	}

	mutex := s.getMutex(id)
	mutex.Lock()
	defer mutex.Unlock()

	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.IsPaid {
		return nil, errors.ErrOrderNotPaid
	}

	if order.IsDelivered {
		return order, nil
	}

	now := time.Now()
	order.IsDelivered = true
	order.DeliveredAt = &now
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	s.logger.Info("order delivered",
		zap.String("order_id", order.ID.String()),
		zap.String("admin_id", actor.UserID.String()),
	)

	return order, nil
}

func (s *orderService) findOrder(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return order, nil
}
