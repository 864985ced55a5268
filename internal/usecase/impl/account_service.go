// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"medreminder/config"
	deliverycontext "medreminder/internal/delivery/context"
	"medreminder/internal/domain/entity"
	domainerrors "medreminder/internal/domain/errors"
	"medreminder/internal/domain/repository"
	"medreminder/internal/domain/service"
	"medreminder/internal/errors"
	"medreminder/internal/usecase"
	"medreminder/internal/usecase/validation"

	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	store        repository.CustomerRepository
	validators   *validation.Factory
	tokenService service.TokenService
	sessions     usecase.SessionTracker
	sessionTTL   time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Store        repository.RecordStore
	Validators   *validation.Factory
	TokenService service.TokenService
	Sessions     usecase.SessionTracker
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	sessionTTL := 24 * time.Hour
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.SessionTTL > 0 {
		sessionTTL = params.Config.Auth.SessionTTL
	}

	return &accountService{
		store:        params.Store,
		validators:   params.Validators,
		tokenService: params.TokenService,
		sessions:     params.Sessions,
		sessionTTL:   sessionTTL,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp validates the form, creates the customer, persists customers and logs them in.
func (srv *accountService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.AuthOutput, error) {
	v := srv.validators.New()
	v.CheckNotBlank("First name", input.FirstName)
	v.CheckNotBlank("Last name", input.LastName)
	v.CheckNotBlank("Username", input.Username)
	v.CheckUsernameUnique(input.Username)
	v.CheckEmailFormat(input.Email)
	v.CheckPasswordStrength(input.Password)
	if !v.NoFailures() {
		srv.log(ctx).Info("Sign-up rejected", slog.String("username", input.Username), slog.Int("failures", len(v.Failures())))

		return nil, v.Err()
	}

	id := srv.store.AddCustomer(entity.CustomerFields{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Username:    input.Username,
		Password:    input.Password,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
	})
	if err := srv.store.PersistCustomers(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to persist new customer")
	}

	customer, ok := srv.store.FindCustomerByID(id)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrCustomerNotFound)
	}

	srv.log(ctx).Info("Customer signed up", slog.String("customerID", id.String()))

	return srv.openSession(customer)
}

// Login checks the credentials and opens a session.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	v := srv.validators.New()
	v.CheckUsernameExists(input.Username)
	v.CheckCredentials(input.Username, input.Password)
	if !v.NoFailures() {
		srv.log(ctx).Info("Login rejected", slog.String("username", input.Username))

		return nil, v.Err()
	}

	customer, ok := srv.store.FindCustomerByCredentials(input.Username, input.Password)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	srv.log(ctx).Info("Customer logged in", slog.String("customerID", customer.ID.String()))

	return srv.openSession(customer)
}

// Logout stops reminders for the session's customer.
func (srv *accountService) Logout(ctx context.Context, session entity.Session) error {
	srv.sessions.Forget(session.CustomerID)
	srv.log(ctx).Info("Customer logged out", slog.String("customerID", session.CustomerID.String()))

	return nil
}

// Profile returns the session's customer.
func (srv *accountService) Profile(_ context.Context, session entity.Session) (*entity.Customer, error) {
	customer, ok := srv.store.FindCustomerByID(session.CustomerID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrCustomerNotFound)
	}

	return &customer, nil
}

func (srv *accountService) openSession(customer entity.Customer) (*usecase.AuthOutput, error) {
	session := entity.NewSession(customer, srv.now(), srv.sessionTTL)

	token, err := srv.tokenService.IssueToken(session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.sessions.Track(session)

	return &usecase.AuthOutput{
		Token:    token,
		Session:  session,
		Customer: customer,
	}, nil
}
