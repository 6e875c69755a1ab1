// Package memstore is an in-memory implementation of the repository
// interfaces. It backs STORAGE_DRIVER=memory and the service/controller tests.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/junaidrashid-git/echocart-api/models"
	"github.com/junaidrashid-git/echocart-api/repository"
)

// DB holds every table behind one lock.
type DB struct {
	mu sync.RWMutex

	users    map[uint]models.User
	products map[uint]models.Product
	carts    map[uint]models.Cart
	orders   map[uint]models.Order
	payments map[uint]models.Payment

	nextUser, nextProduct, nextCart, nextOrder, nextPayment uint
}

func New() *DB {
	return &DB{
		users:    make(map[uint]models.User),
		products: make(map[uint]models.Product),
		carts:    make(map[uint]models.Cart),
		orders:   make(map[uint]models.Order),
		payments: make(map[uint]models.Payment),
	}
}

// Store returns repository.Store views over db.
func (db *DB) Store() repository.Store {
	return repository.Store{
		Users:    &userRepo{db},
		Products: &productRepo{db},
		Carts:    &cartRepo{db},
		Orders:   &orderRepo{db},
		Payments: &paymentRepo{db},
	}
}

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ---------------- users ----------------

type userRepo struct{ db *DB }

func (r *userRepo) find(match func(models.User) bool) (*models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, id := range sortedKeys(r.db.users) {
		if u := r.db.users[id]; match(u) {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id })
}

func (r *userRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username })
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r *userRepo) FindByUsernameOrEmail(_ context.Context, identifier string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == identifier || u.Email == identifier })
}

func (r *userRepo) FindAll(_ context.Context) ([]models.User, error) {
	return r.filter(func(models.User) bool { return true }), nil
}

func (r *userRepo) FindByRole(_ context.Context, role models.Role) ([]models.User, error) {
	return r.filter(func(u models.User) bool { return u.Role == role }), nil
}

func (r *userRepo) filter(match func(models.User) bool) []models.User {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := []models.User{}
	for _, id := range sortedKeys(r.db.users) {
		if u := r.db.users[id]; match(u) {
			out = append(out, u)
		}
	}
	return out
}

func (r *userRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return present(r.FindByID(ctx, id))
}

func (r *userRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return present(r.FindByUsername(ctx, username))
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return present(r.FindByEmail(ctx, email))
}

func (r *userRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.filter(func(models.User) bool { return true }))), nil
}

func (r *userRepo) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	users, _ := r.FindByRole(ctx, role)
	return int64(len(users)), nil
}

func (r *userRepo) Create(_ context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.collides(*user) {
		return repository.ErrDuplicate
	}
	r.db.nextUser++
	user.ID = r.db.nextUser
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	r.db.users[user.ID] = *user
	return nil
}

func (r *userRepo) Save(_ context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.collides(*user) {
		return repository.ErrDuplicate
	}
	r.db.users[user.ID] = *user
	return nil
}

// collides mirrors the unique indexes on username and email. Caller holds the lock.
func (r *userRepo) collides(user models.User) bool {
	for id, u := range r.db.users {
		if id == user.ID {
			continue
		}
		if u.Username == user.Username || u.Email == user.Email {
			return true
		}
	}
	return false
}

func (r *userRepo) DeleteByID(_ context.Context, id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.users, id)
	return nil
}

// ---------------- products ----------------

type productRepo struct{ db *DB }

func (r *productRepo) FindByID(_ context.Context, id uint) (*models.Product, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	p, ok := r.db.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *productRepo) FindAll(_ context.Context) ([]models.Product, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := []models.Product{}
	for _, id := range sortedKeys(r.db.products) {
		out = append(out, r.db.products[id])
	}
	return out, nil
}

func (r *productRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return present(r.FindByID(ctx, id))
}

func (r *productRepo) Count(_ context.Context) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return int64(len(r.db.products)), nil
}

func (r *productRepo) Create(_ context.Context, product *models.Product) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.nextProduct++
	product.ID = r.db.nextProduct
	r.db.products[product.ID] = *product
	return nil
}

func (r *productRepo) Save(_ context.Context, product *models.Product) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.products[product.ID] = *product
	return nil
}

func (r *productRepo) DeleteByID(_ context.Context, id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.products, id)
	return nil
}

// ---------------- cart ----------------

type cartRepo struct{ db *DB }

func (r *cartRepo) FindByID(_ context.Context, id uint) (*models.Cart, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	c, ok := r.db.carts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *cartRepo) FindByUserID(_ context.Context, userID uint) ([]models.Cart, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := []models.Cart{}
	for _, id := range sortedKeys(r.db.carts) {
		if c := r.db.carts[id]; c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *cartRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return present(r.FindByID(ctx, id))
}

func (r *cartRepo) DeleteByID(_ context.Context, id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.carts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.carts, id)
	return nil
}

func (r *cartRepo) MergeQuantity(_ context.Context, userID, productID uint, quantity int) (*models.Cart, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, id := range sortedKeys(r.db.carts) {
		c := r.db.carts[id]
		if c.UserID == userID && c.ProductID == productID {
			c.Quantity += quantity
			r.db.carts[id] = c
			return &c, nil
		}
	}

	r.db.nextCart++
	c := models.Cart{ID: r.db.nextCart, UserID: userID, ProductID: productID, Quantity: quantity}
	r.db.carts[c.ID] = c
	return &c, nil
}

// ---------------- orders ----------------

type orderRepo struct{ db *DB }

func (r *orderRepo) FindByID(_ context.Context, id uint) (*models.Order, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	o, ok := r.db.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (r *orderRepo) filter(match func(models.Order) bool) []models.Order {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := []models.Order{}
	for _, id := range sortedKeys(r.db.orders) {
		if o := r.db.orders[id]; match(o) {
			out = append(out, o)
		}
	}
	return out
}

func (r *orderRepo) FindAll(_ context.Context) ([]models.Order, error) {
	return r.filter(func(models.Order) bool { return true }), nil
}

func (r *orderRepo) FindByUserID(_ context.Context, userID uint) ([]models.Order, error) {
	orders := r.filter(func(o models.Order) bool { return o.UserID == userID })
	sort.SliceStable(orders, func(i, j int) bool {
		if !orders[i].OrderDate.Equal(orders[j].OrderDate.Time) {
			return orders[i].OrderDate.After(orders[j].OrderDate.Time)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders, nil
}

func (r *orderRepo) FindByStatus(_ context.Context, status models.OrderStatus) ([]models.Order, error) {
	return r.filter(func(o models.Order) bool { return o.Status == status }), nil
}

func (r *orderRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return present(r.FindByID(ctx, id))
}

func (r *orderRepo) Count(_ context.Context) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return int64(len(r.db.orders)), nil
}

func (r *orderRepo) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	orders, _ := r.FindByStatus(ctx, status)
	return int64(len(orders)), nil
}

func (r *orderRepo) Create(_ context.Context, order *models.Order) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.nextOrder++
	order.ID = r.db.nextOrder
	r.db.orders[order.ID] = *order
	return nil
}

func (r *orderRepo) UpdateStatus(_ context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	o, ok := r.db.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	o.Status = status
	r.db.orders[id] = o
	return &o, nil
}

// ---------------- payments ----------------

type paymentRepo struct{ db *DB }

func (r *paymentRepo) FindByID(_ context.Context, id uint) (*models.Payment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	p, ok := r.db.payments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *paymentRepo) Create(_ context.Context, payment *models.Payment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.nextPayment++
	payment.ID = r.db.nextPayment
	r.db.payments[payment.ID] = *payment
	return nil
}

func present[T any](v *T, err error) (bool, error) {
	switch {
	case err == nil:
		return v != nil, nil
	case err == repository.ErrNotFound:
		return false, nil
	default:
		return false, err
	}
}
