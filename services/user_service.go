package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/junaidrashid-git/echocart-api/apperrors"
	"github.com/junaidrashid-git/echocart-api/auth"
	"github.com/junaidrashid-git/echocart-api/models"
	"github.com/junaidrashid-git/echocart-api/repository"
	log "github.com/sirupsen/logrus"
)

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate carries the fields a user may change; nil means unchanged.
type ProfileUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type LoginResult struct {
	User  models.User
	Token string
}

type UserStats struct {
	Total     int64 `json:"total"`
	Customers int64 `json:"customers"`
	Admins    int64 `json:"admins"`
}

type OrderStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Shipped   int64 `json:"shipped"`
	Delivered int64 `json:"delivered"`
	Cancelled int64 `json:"cancelled"`
}

type ProductStats struct {
	Total int64 `json:"total"`
}

type Dashboard struct {
	Users    UserStats    `json:"users"`
	Orders   OrderStats   `json:"orders"`
	Products ProductStats `json:"products"`
}

type UserService struct {
	users    repository.UserRepository
	orders   repository.OrderRepository
	products repository.ProductRepository
	hasher   auth.PasswordHasher
	tokens   *auth.TokenIssuer
	adminKey string
}

// NewUserService wires the user service. adminKey is the shared secret that
// gates admin self-registration; an empty key disables it.
func NewUserService(store repository.Store, hasher auth.PasswordHasher, tokens *auth.TokenIssuer, adminKey string) *UserService {
	if hasher == nil {
		hasher = auth.PlainTextHasher{}
	}
	return &UserService{
		users:    store.Users,
		orders:   store.Orders,
		products: store.Products,
		hasher:   hasher,
		tokens:   tokens,
		adminKey: adminKey,
	}
}

func (s *UserService) RegisterCustomer(ctx context.Context, in RegisterInput) (*models.User, error) {
	return s.register(ctx, in, models.RoleCustomer)
}

// RegisterAdmin registers an ADMIN user when presentedKey matches the configured admin key.
func (s *UserService) RegisterAdmin(ctx context.Context, in RegisterInput, presentedKey string) (*models.User, error) {
	if s.adminKey == "" || subtle.ConstantTimeCompare([]byte(presentedKey), []byte(s.adminKey)) != 1 {
		return nil, apperrors.Forbidden("Invalid admin key")
	}
	return s.register(ctx, in, models.RoleAdmin)
}

func (s *UserService) register(ctx context.Context, in RegisterInput, role models.Role) (*models.User, error) {
	if isBlank(in.Username) {
		return nil, apperrors.Validation("Username cannot be empty")
	}
	if isBlank(in.Email) {
		return nil, apperrors.Validation("Email cannot be empty")
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	if err := validateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, err
	}

	taken, err := s.users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, apperrors.Unexpected("storage failure", err)
	}
	if taken {
		return nil, apperrors.Conflict("Username already exists")
	}

	taken, err = s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperrors.Unexpected("storage failure", err)
	}
	if taken {
		return nil, apperrors.Conflict("Email already exists")
	}

	stored, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperrors.Unexpected("password hashing failed", err)
	}

	if role == "" {
		role = models.RoleCustomer
	}
	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: stored,
		Role:     role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("Username or email already exists")
		}
		return nil, apperrors.Unexpected("storage failure", err)
	}

	log.WithFields(log.Fields{"userId": user.ID, "role": user.Role}).Info("user registered")
	return user, nil
}

// Login matches identifier against username or email, then checks the password.
func (s *UserService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	if isBlank(identifier) {
		return nil, apperrors.Validation("Email/Username cannot be empty")
	}
	if isBlank(password) {
		return nil, apperrors.Validation("Password cannot be empty")
	}

	user, err := s.users.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Auth("Invalid credentials")
		}
		return nil, apperrors.Unexpected("storage failure", err)
	}
	if !s.hasher.Matches(user.Password, password) {
		return nil, apperrors.Auth("Invalid credentials")
	}

	token, err := s.tokens.Issue(*user)
	if err != nil {
		return nil, apperrors.Unexpected("token signing failed", err)
	}
	return &LoginResult{User: *user, Token: token}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, lookupError(err, "User not found with ID: %d", userID)
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, upd ProfileUpdate) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Username != nil {
		user.Username = *upd.Username
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if err := validateUsername(user.Username); err != nil {
		return nil, err
	}
	if err := validateEmail(user.Email); err != nil {
		return nil, err
	}

	if other, err := s.users.FindByUsername(ctx, user.Username); err == nil && other.ID != userID {
		return nil, apperrors.Conflict("Username already exists")
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Unexpected("storage failure", err)
	}
	if other, err := s.users.FindByEmail(ctx, user.Email); err == nil && other.ID != userID {
		return nil, apperrors.Conflict("Email already exists")
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Unexpected("storage failure", err)
	}

	// Only update password if provided and not blank
	if upd.Password != nil && strings.TrimSpace(*upd.Password) != "" {
		if err := validatePassword(*upd.Password); err != nil {
			return nil, err
		}
		stored, err := s.hasher.Hash(*upd.Password)
		if err != nil {
			return nil, apperrors.Unexpected("password hashing failed", err)
		}
		user.Password = stored
	}

	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("Username or email already exists")
		}
		return nil, apperrors.Unexpected("storage failure", err)
	}
	return user, nil
}

func (s *UserService) UpdateRole(ctx context.Context, userID uint, role models.Role) (*models.User, error) {
	if role == "" {
		return nil, apperrors.Validation("Role cannot be null")
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.users.Save(ctx, user); err != nil {
		return nil, apperrors.Unexpected("storage failure", err)
	}

	log.WithFields(log.Fields{"userId": userID, "role": role}).Info("user role updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, userID uint) error {
	if err := s.users.DeleteByID(ctx, userID); err != nil {
		return lookupError(err, "User not found with ID: %d", userID)
	}
	log.WithField("userId", userID).Info("user deleted")
	return nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Unexpected("Failed to get users", err)
	}
	return users, nil
}

func (s *UserService) ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	users, err := s.users.FindByRole(ctx, role)
	if err != nil {
		return nil, apperrors.Unexpected("Failed to get users", err)
	}
	return users, nil
}

func (s *UserService) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Unexpected("Failed to get orders", err)
	}
	return orders, nil
}

// Dashboard counts users by role, orders by status and products.
func (s *UserService) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	var err error

	count := func(dst *int64, fn func() (int64, error)) {
		if err != nil {
			return
		}
		*dst, err = fn()
	}

	count(&d.Users.Total, func() (int64, error) { return s.users.Count(ctx) })
	count(&d.Users.Customers, func() (int64, error) { return s.users.CountByRole(ctx, models.RoleCustomer) })
	count(&d.Users.Admins, func() (int64, error) { return s.users.CountByRole(ctx, models.RoleAdmin) })

	count(&d.Orders.Total, func() (int64, error) { return s.orders.Count(ctx) })
	byStatus := map[models.OrderStatus]*int64{
		models.OrderStatusPending:   &d.Orders.Pending,
		models.OrderStatusShipped:   &d.Orders.Shipped,
		models.OrderStatusDelivered: &d.Orders.Delivered,
		models.OrderStatusCancelled: &d.Orders.Cancelled,
	}
	for _, status := range models.OrderStatuses {
		status := status
		count(byStatus[status], func() (int64, error) { return s.orders.CountByStatus(ctx, status) })
	}

	count(&d.Products.Total, func() (int64, error) { return s.products.Count(ctx) })

	if err != nil {
		return nil, apperrors.Unexpected("Failed to load dashboard", err)
	}
	return &d, nil
}

// IsAdmin re-reads the user and checks its role. A missing user is not an admin.
func (s *UserService) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

// Tokens exposes the issuer the admin gate verifies bearer tokens with.
func (s *UserService) Tokens() *auth.TokenIssuer { return s.tokens }
