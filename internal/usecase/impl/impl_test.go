package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/persistence/memory"
	"bazaar/internal/infra/receipt"
	"bazaar/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// capturingPublisher records published events so tests can assert on them.
type capturingPublisher struct {
	events []*service.MarketplaceEvent
}

func (p *capturingPublisher) PublishMarketplaceEvent(_ context.Context, event *service.MarketplaceEvent) error {
	p.events = append(p.events, event)

	return nil
}

func (p *capturingPublisher) Close() error {
	return nil
}

// staticTokenService issues fixed tokens; the services under test only care
// that issuance succeeds.
type staticTokenService struct{}

func (staticTokenService) GenerateTokens(uuid.UUID, string) (string, string, error) {
	return "access-token", "refresh-token", nil
}

func (staticTokenService) ValidateToken(string, string) (*jwt.Token, error) {
	return nil, errors.New("not implemented")
}

func (staticTokenService) GetRefreshTokenDuration() time.Duration {
	return 7 * 24 * time.Hour
}

type fixture struct {
	store     *memory.Store
	publisher *capturingPublisher

	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
	accounts    usecase.AccountUsecase
	catalog     usecase.CatalogUsecase
	orders      usecase.OrderUsecase
	payments    usecase.PaymentUsecase
	complaints  usecase.ComplaintUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	logger := slog.New(slog.DiscardHandler)
	publisher := &capturingPublisher{}

	userRepo := memory.NewUserRepository(store)
	resourceRepo := memory.NewResourceRepository(store)
	orderRepo := memory.NewOrderRepository(store)
	paymentRepo := memory.NewPaymentRepository(store)
	complaintRepo := memory.NewComplaintRepository(store)
	txManager := memory.NewTransactionManager(store)

	return &fixture{
		store:       store,
		publisher:   publisher,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		accounts:    NewAccountService(userRepo, staticTokenService{}),
		catalog:     NewCatalogService(resourceRepo),
		orders:      NewOrderService(userRepo, resourceRepo, orderRepo, txManager, publisher, logger),
		payments:    NewPaymentService(paymentRepo, receipt.NewReceiptService(256, "M"), publisher, logger),
		complaints:  NewComplaintService(complaintRepo, userRepo, publisher, logger),
	}
}

func (f *fixture) registerUser(t *testing.T, name, email, phone string, role entity.Role) *entity.User {
	t.Helper()

	output, err := f.accounts.Register(context.Background(), &usecase.RegisterInput{
		FullName: name,
		Email:    email,
		Phone:    phone,
		Password: "secret123",
		Role:     role,
	})
	require.NoError(t, err)

	return output.User
}

func (f *fixture) addResource(t *testing.T, name string, price string) *entity.Resource {
	t.Helper()

	amount, err := decimal.NewFromString(price)
	require.NoError(t, err)

	resource, err := f.catalog.AddResource(context.Background(), &usecase.AddResourceInput{
		Name:        name,
		Description: name + " for street vendors",
		Price:       amount,
		Category:    entity.CategoryIngredients,
	})
	require.NoError(t, err)

	return resource
}

// requireAppError asserts that err carries the given business error code.
func requireAppError(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.ErrorCode())
}
