package student

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var ErrProviderUnavailable = errors.New("sign-in provider unavailable")

// AuthProvider signs users in through a hosted identity provider.
type AuthProvider interface {
	SignIn(ctx context.Context) (AuthUser, error)
	SignOut(ctx context.Context) error
}

// MockUser is the account MockProvider signs in.
var MockUser = AuthUser{
	ID:       "google-user-123",
	Name:     "Google User",
	Email:    "googleuser@example.com",
	PhotoURL: "https://i.pravatar.cc/150?img=2",
}

// MockProvider stands in for the hosted provider: it always signs in MockUser after Delay.
type MockProvider struct {
	Delay time.Duration
	User  *AuthUser // overrides MockUser when set
}

var _ AuthProvider = (*MockProvider)(nil)

func NewMockProvider(delay time.Duration) *MockProvider {
	return &MockProvider{Delay: delay}
}

func (p *MockProvider) SignIn(ctx context.Context) (AuthUser, error) {
	if err := p.wait(ctx); err != nil {
		return AuthUser{}, errors.Wrap(err, "signing in")
	}
	if p.User != nil {
		return *p.User, nil
	}
	return MockUser, nil
}

func (p *MockProvider) SignOut(ctx context.Context) error {
	return errors.Wrap(p.wait(ctx), "signing out")
}

func (p *MockProvider) wait(ctx context.Context) error {
	if p.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
