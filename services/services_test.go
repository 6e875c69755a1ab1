package services

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/junaidrashid-git/echocart-api/apperrors"
	"github.com/junaidrashid-git/echocart-api/auth"
	"github.com/junaidrashid-git/echocart-api/models"
	"github.com/junaidrashid-git/echocart-api/repository"
	"github.com/junaidrashid-git/echocart-api/repository/memstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

type fixture struct {
	store    repository.Store
	users    *UserService
	products *ProductService
	carts    *CartService
	orders   *OrderService
	payments *PaymentService
	notes    *recordingNotifier
}

type recordingNotifier struct {
	mu      sync.Mutex
	created []models.Order
	changed []models.Order
}

func (n *recordingNotifier) OrderCreated(o models.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, o)
}

func (n *recordingNotifier) OrderStatusChanged(o models.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changed = append(n.changed, o)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New().Store()
	notes := &recordingNotifier{}
	return &fixture{
		store:    store,
		users:    NewUserService(store, auth.PlainTextHasher{}, auth.NewTokenIssuer("test-secret", time.Hour), "ADMIN"),
		products: NewProductService(store),
		carts:    NewCartService(store),
		orders:   NewOrderService(store, notes),
		payments: NewPaymentService(store, nil),
		notes:    notes,
	}
}

func ptr[T any](v T) *T { return &v }

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func (f *fixture) mustRegister(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := f.users.RegisterCustomer(context.Background(), RegisterInput{
		Username: username,
		Email:    username + "@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) mustProduct(t *testing.T, stock int) *models.Product {
	t.Helper()
	product, err := f.products.Add(context.Background(), ProductInput{
		Name:          ptr("Widget"),
		Price:         dec("9.99"),
		CategoryID:    ptr(uint(1)),
		StockQuantity: ptr(stock),
		ImageURL:      ptr("http://img/w.png"),
	})
	require.NoError(t, err)
	return product
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.mustRegister(t, "alice")
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleCustomer, user.Role)

	res, err := f.users.Login(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, res.User.ID)
	assert.NotEmpty(t, res.Token)

	res, err = f.users.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, res.User.ID)

	_, err = f.users.Login(ctx, "alice@x.com", "wrong")
	assert.True(t, apperrors.Is(err, apperrors.KindAuth))

	_, err = f.users.Login(ctx, "nobody@x.com", "secret1")
	assert.True(t, apperrors.Is(err, apperrors.KindAuth))
	assert.Equal(t, "Invalid credentials", apperrors.MessageOf(err))
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   RegisterInput
		msg  string
	}{
		{"blank username", RegisterInput{Username: " ", Email: "a@x.com", Password: "secret1"}, "Username cannot be empty"},
		{"blank email", RegisterInput{Username: "alice", Password: "secret1"}, "Email cannot be empty"},
		{"short password", RegisterInput{Username: "alice", Email: "a@x.com", Password: "abc"}, "Password must be at least 6 characters"},
		{"short username", RegisterInput{Username: "al", Email: "a@x.com", Password: "secret1"}, "Username must be between 3 and 50 characters"},
		{"bad email", RegisterInput{Username: "alice", Email: "not-an-email", Password: "secret1"}, "Email should be valid"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.users.RegisterCustomer(ctx, tc.in)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.KindValidation))
			assert.Equal(t, tc.msg, apperrors.MessageOf(err))
		})
	}
}

func TestRegisterDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustRegister(t, "alice")

	_, err := f.users.RegisterCustomer(ctx, RegisterInput{Username: "alice", Email: "other@x.com", Password: "secret1"})
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
	assert.Equal(t, "Username already exists", apperrors.MessageOf(err))

	_, err = f.users.RegisterCustomer(ctx, RegisterInput{Username: "alice2", Email: "alice@x.com", Password: "secret1"})
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
	assert.Equal(t, "Email already exists", apperrors.MessageOf(err))
}

func TestRegisterAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := RegisterInput{Username: "root", Email: "root@x.com", Password: "secret1"}

	_, err := f.users.RegisterAdmin(ctx, in, "nope")
	assert.True(t, apperrors.Is(err, apperrors.KindForbidden))

	admin, err := f.users.RegisterAdmin(ctx, in, "ADMIN")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	ok, err := f.users.IsAdmin(ctx, admin.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.users.IsAdmin(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.mustRegister(t, "alice")
	f.mustRegister(t, "bob")

	updated, err := f.users.UpdateProfile(ctx, alice.ID, ProfileUpdate{Username: ptr("alice2"), Password: ptr("  ")})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "secret1", updated.Password)

	_, err = f.users.UpdateProfile(ctx, alice.ID, ProfileUpdate{Username: ptr("bob")})
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))

	_, err = f.users.UpdateProfile(ctx, alice.ID, ProfileUpdate{Email: ptr("bob@x.com")})
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))

	_, err = f.users.UpdateProfile(ctx, alice.ID, ProfileUpdate{Password: ptr("abc")})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	_, err = f.users.UpdateProfile(ctx, alice.ID, ProfileUpdate{Password: ptr("newsecret")})
	require.NoError(t, err)
	_, err = f.users.Login(ctx, "alice2", "newsecret")
	assert.NoError(t, err)

	_, err = f.users.UpdateProfile(ctx, 404, ProfileUpdate{})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	assert.Equal(t, "User not found with ID: 404", apperrors.MessageOf(err))
}

func TestUpdateRoleAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.mustRegister(t, "alice")

	_, err := f.users.UpdateRole(ctx, alice.ID, "")
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	user, err := f.users.UpdateRole(ctx, alice.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())

	admins, err := f.users.ListUsersByRole(ctx, models.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, admins, 1)

	require.NoError(t, f.users.Delete(ctx, alice.ID))
	err = f.users.Delete(ctx, alice.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.mustRegister(t, "alice")
	_, err := f.users.RegisterAdmin(ctx, RegisterInput{Username: "root", Email: "root@x.com", Password: "secret1"}, "ADMIN")
	require.NoError(t, err)
	f.mustProduct(t, 3)

	order, err := f.orders.CreateOrder(ctx, CreateOrderInput{UserID: ptr(alice.ID), TotalAmount: dec("10")})
	require.NoError(t, err)
	_, err = f.orders.CreateOrder(ctx, CreateOrderInput{UserID: ptr(alice.ID), TotalAmount: dec("5")})
	require.NoError(t, err)
	_, err = f.orders.UpdateOrderStatus(ctx, order.ID, "SHIPPED")
	require.NoError(t, err)

	d, err := f.users.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, UserStats{Total: 2, Customers: 1, Admins: 1}, d.Users)
	assert.Equal(t, OrderStats{Total: 2, Pending: 1, Shipped: 1}, d.Orders)
	assert.Equal(t, int64(1), d.Products.Total)
}

func TestProductLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.products.Add(ctx, ProductInput{Name: ptr("X"), Price: dec("0"), CategoryID: ptr(uint(1)), StockQuantity: ptr(1), ImageURL: ptr("u")})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	assert.Equal(t, "Price must be greater than 0", apperrors.MessageOf(err))

	p := f.mustProduct(t, 4)
	assert.Equal(t, "9.99", p.Price.StringFixed(2))

	updated, err := f.products.Update(ctx, p.ID, ProductInput{
		Name:          ptr("Gadget"),
		Price:         dec("12.5"),
		CategoryID:    ptr(uint(2)),
		StockQuantity: ptr(0),
		ImageURL:      ptr("http://img/g.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Gadget", updated.Name)
	assert.Equal(t, 0, updated.StockQuantity)
	assert.Equal(t, "http://img/w.png", updated.ImageURL)

	updated, err = f.products.Update(ctx, p.ID, ProductInput{
		Name:          ptr("Gadget"),
		Price:         dec("12.5"),
		CategoryID:    ptr(uint(2)),
		StockQuantity: ptr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.StockQuantity)

	_, err = f.products.Update(ctx, 999, ProductInput{})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	require.NoError(t, f.products.Delete(ctx, p.ID))
	err = f.products.Delete(ctx, p.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	assert.Equal(t, "Product not found", apperrors.MessageOf(err))
}

func TestExportExcel(t *testing.T) {
	f := newFixture(t)
	f.mustProduct(t, 4)

	var buf bytes.Buffer
	require.NoError(t, f.products.ExportExcel(context.Background(), &buf))

	book, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, book.Sheets, 1)
	sheet := book.Sheets[0]
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "Name", sheet.Rows[0].Cells[1].String())
	assert.Equal(t, "Widget", sheet.Rows[1].Cells[1].String())
	assert.Equal(t, "9.99", sheet.Rows[1].Cells[3].String())
}

func TestAddToCartMergesQuantities(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.mustRegister(t, "alice")
	p := f.mustProduct(t, 5)

	first, err := f.carts.AddToCart(ctx, AddToCartInput{UserID: ptr(alice.ID), ProductID: ptr(p.ID), Quantity: ptr(3)})
	require.NoError(t, err)
	second, err := f.carts.AddToCart(ctx, AddToCartInput{UserID: ptr(alice.ID), ProductID: ptr(p.ID), Quantity: ptr(4)})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 7, second.Quantity)

	items, err := f.carts.GetCartDetails(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestAddToCartRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.mustRegister(t, "alice")
	p := f.mustProduct(t, 2)

	_, err := f.carts.AddToCart(ctx, AddToCartInput{ProductID: ptr(p.ID), Quantity: ptr(1)})
	assert.Equal(t, "User ID cannot be null", apperrors.MessageOf(err))

	_, err = f.carts.AddToCart(ctx, AddToCartInput{UserID: ptr(alice.ID), ProductID: ptr(p.ID), Quantity: ptr(0)})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	_, err = f.carts.AddToCart(ctx, AddToCartInput{UserID: ptr(uint(99)), ProductID: ptr(p.ID), Quantity: ptr(1)})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	_, err = f.carts.AddToCart(ctx, AddToCartInput{UserID: ptr(alice.ID), ProductID: ptr(uint(99)), Quantity: ptr(1)})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	_, err = f.carts.AddToCart(ctx, AddToCartInput{UserID: ptr(alice.ID), ProductID: ptr(p.ID), Quantity: ptr(3)})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	assert.True(t, errors.Is(err, ErrInsufficientStock))
	assert.Equal(t, "Insufficient stock. Available: 2", apperrors.MessageOf(err))
}

func TestRemoveFromCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.mustRegister(t, "alice")
	p := f.mustProduct(t, 5)

	item, err := f.carts.AddToCart(ctx, AddToCartInput{UserID: ptr(alice.ID), ProductID: ptr(p.ID), Quantity: ptr(1)})
	require.NoError(t, err)

	require.NoError(t, f.carts.RemoveFromCart(ctx, item.ID))
	err = f.carts.RemoveFromCart(ctx, item.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	items, err := f.carts.GetCartDetails(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateOrderForcesPendingAndToday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.mustRegister(t, "alice")
	fixed := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)
	f.orders.clock = func() time.Time { return fixed }

	order, err := f.orders.CreateOrder(ctx, CreateOrderInput{UserID: ptr(alice.ID), TotalAmount: dec("19.999")})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "2024-03-09", order.OrderDate.String())
	assert.Equal(t, "20.00", order.TotalAmount.StringFixed(2))
	require.Len(t, f.notes.created, 1)
	assert.Equal(t, order.ID, f.notes.created[0].ID)

	_, err = f.orders.CreateOrder(ctx, CreateOrderInput{UserID: ptr(alice.ID), TotalAmount: dec("0")})
	assert.Equal(t, "Total amount must be greater than 0", apperrors.MessageOf(err))

	_, err = f.orders.CreateOrder(ctx, CreateOrderInput{UserID: ptr(uint(42)), TotalAmount: dec("1")})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestOrderStatusMovesFreely(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.mustRegister(t, "alice")
	order, err := f.orders.CreateOrder(ctx, CreateOrderInput{UserID: ptr(alice.ID), TotalAmount: dec("10")})
	require.NoError(t, err)

	for _, status := range []string{"CANCELLED", "pending", "DELIVERED", "SHIPPED"} {
		updated, err := f.orders.UpdateOrderStatus(ctx, order.ID, status)
		require.NoError(t, err)
		expected, _ := models.ParseOrderStatus(status)
		assert.Equal(t, expected, updated.Status)
	}
	assert.Len(t, f.notes.changed, 4)

	_, err = f.orders.UpdateOrderStatus(ctx, order.ID, "")
	assert.Equal(t, "Status cannot be null", apperrors.MessageOf(err))

	_, err = f.orders.UpdateOrderStatus(ctx, order.ID, "LOST")
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	_, err = f.orders.UpdateOrderStatus(ctx, 999, "SHIPPED")
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestListUserOrdersNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.mustRegister(t, "alice")

	f.orders.clock = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	older, err := f.orders.CreateOrder(ctx, CreateOrderInput{UserID: ptr(alice.ID), TotalAmount: dec("1")})
	require.NoError(t, err)
	f.orders.clock = func() time.Time { return time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC) }
	newer, err := f.orders.CreateOrder(ctx, CreateOrderInput{UserID: ptr(alice.ID), TotalAmount: dec("1")})
	require.NoError(t, err)

	orders, err := f.orders.ListUserOrders(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)

	orders, err = f.orders.ListUserOrders(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestProcessPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.mustRegister(t, "alice")
	order, err := f.orders.CreateOrder(ctx, CreateOrderInput{UserID: ptr(alice.ID), TotalAmount: dec("10")})
	require.NoError(t, err)

	payment, err := f.payments.ProcessPayment(ctx, PaymentInput{OrderID: ptr(order.ID), Amount: dec("3.50")})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, payment.PaymentStatus)
	assert.Equal(t, models.Today(), payment.PaymentDate)
	assert.Regexp(t, `^\d{14}-[0-9a-f-]{36}$`, payment.TransactionRef)

	got, err := f.payments.GetPaymentStatus(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, payment.ID, got.ID)

	_, err = f.payments.ProcessPayment(ctx, PaymentInput{OrderID: ptr(uint(77)), Amount: dec("1")})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	_, err = f.payments.ProcessPayment(ctx, PaymentInput{OrderID: ptr(order.ID), Amount: dec("-1")})
	assert.Equal(t, "Payment amount must be greater than 0", apperrors.MessageOf(err))

	_, err = f.payments.GetPaymentStatus(ctx, 999)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

type failingGateway struct{}

func (failingGateway) Charge(context.Context, uint, decimal.Decimal) (string, error) {
	return "", errors.New("gateway down")
}

func TestProcessPaymentGatewayFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.mustRegister(t, "alice")
	order, err := f.orders.CreateOrder(ctx, CreateOrderInput{UserID: ptr(alice.ID), TotalAmount: dec("10")})
	require.NoError(t, err)

	payments := NewPaymentService(f.store, failingGateway{})
	_, err = payments.ProcessPayment(ctx, PaymentInput{OrderID: ptr(order.ID), Amount: dec("1")})
	assert.True(t, apperrors.Is(err, apperrors.KindUnexpected))
}

func TestAddToCartOverStockLeavesStateUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.mustRegister(t, "alice")
	held := f.mustProduct(t, 2)
	fresh := f.mustProduct(t, 2)

	_, err := f.carts.AddToCart(ctx, AddToCartInput{UserID: ptr(alice.ID), ProductID: ptr(held.ID), Quantity: ptr(2)})
	require.NoError(t, err)
	before, err := f.carts.GetCartDetails(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, before, 1)

	for _, p := range []*models.Product{held, fresh} {
		_, err = f.carts.AddToCart(ctx, AddToCartInput{UserID: ptr(alice.ID), ProductID: ptr(p.ID), Quantity: ptr(3)})
		require.True(t, errors.Is(err, ErrInsufficientStock), "product %d", p.ID)

		after, err := f.carts.GetCartDetails(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after, "product %d", p.ID)

		stored, err := f.products.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stored.StockQuantity, "product %d", p.ID)
	}
}

func TestMoneyIsCheckedAfterRounding(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.mustRegister(t, "alice")
	order, err := f.orders.CreateOrder(ctx, CreateOrderInput{UserID: ptr(alice.ID), TotalAmount: dec("10")})
	require.NoError(t, err)

	_, err = f.orders.CreateOrder(ctx, CreateOrderInput{UserID: ptr(alice.ID), TotalAmount: dec("0.004")})
	assert.Equal(t, "Total amount must be greater than 0", apperrors.MessageOf(err))

	_, err = f.payments.ProcessPayment(ctx, PaymentInput{OrderID: ptr(order.ID), Amount: dec("0.003")})
	assert.Equal(t, "Payment amount must be greater than 0", apperrors.MessageOf(err))

	in := ProductInput{
		Name:          ptr("Widget"),
		Price:         dec("0.001"),
		CategoryID:    ptr(uint(1)),
		StockQuantity: ptr(1),
		ImageURL:      ptr("http://img/w.png"),
	}
	_, err = f.products.Add(ctx, in)
	assert.Equal(t, "Price must be greater than 0", apperrors.MessageOf(err))

	products, err := f.products.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	// 0.005 rounds up to a cent and is accepted.
	cent, err := f.orders.CreateOrder(ctx, CreateOrderInput{UserID: ptr(alice.ID), TotalAmount: dec("0.005")})
	require.NoError(t, err)
	assert.Equal(t, "0.01", cent.TotalAmount.StringFixed(2))
}

func TestMoneyUpperBound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.mustRegister(t, "alice")
	p := f.mustProduct(t, 1)
	order, err := f.orders.CreateOrder(ctx, CreateOrderInput{UserID: ptr(alice.ID), TotalAmount: dec("99999999.99")})
	require.NoError(t, err)

	_, err = f.orders.CreateOrder(ctx, CreateOrderInput{UserID: ptr(alice.ID), TotalAmount: dec("100000000")})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	assert.Equal(t, "Total amount must be less than 100000000", apperrors.MessageOf(err))

	// Rounds up to 1e8.
	_, err = f.payments.ProcessPayment(ctx, PaymentInput{OrderID: ptr(order.ID), Amount: dec("99999999.995")})
	assert.Equal(t, "Payment amount must be less than 100000000", apperrors.MessageOf(err))

	_, err = f.products.Update(ctx, p.ID, ProductInput{
		Name:          ptr("Widget"),
		Price:         dec("123456789"),
		CategoryID:    ptr(uint(1)),
		StockQuantity: ptr(1),
	})
	assert.Equal(t, "Price must be less than 100000000", apperrors.MessageOf(err))
}

func TestListOrdersByStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.mustRegister(t, "alice")
	first, err := f.orders.CreateOrder(ctx, CreateOrderInput{UserID: ptr(alice.ID), TotalAmount: dec("1")})
	require.NoError(t, err)
	_, err = f.orders.CreateOrder(ctx, CreateOrderInput{UserID: ptr(alice.ID), TotalAmount: dec("2")})
	require.NoError(t, err)
	_, err = f.orders.UpdateOrderStatus(ctx, first.ID, "SHIPPED")
	require.NoError(t, err)

	shipped, err := f.orders.ListByStatus(ctx, models.OrderStatusShipped)
	require.NoError(t, err)
	require.Len(t, shipped, 1)
	assert.Equal(t, first.ID, shipped[0].ID)

	cancelled, err := f.orders.ListByStatus(ctx, models.OrderStatusCancelled)
	require.NoError(t, err)
	assert.NotNil(t, cancelled)
	assert.Empty(t, cancelled)
}
