package student

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestMockProvider(t *testing.T) {
	custom := AuthUser{ID: "u1", Email: "bwubca23734@brainwareuniversity.ac.in"}
	expired, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name     string
		provider *MockProvider
		ctx      context.Context
		want     AuthUser
		wantErr  error
	}{
		{name: "default user", provider: NewMockProvider(0), ctx: context.Background(), want: MockUser},
		{name: "with delay", provider: NewMockProvider(time.Millisecond), ctx: context.Background(), want: MockUser},
		{name: "custom user", provider: &MockProvider{User: &custom}, ctx: context.Background(), want: custom},
		{name: "canceled", provider: NewMockProvider(0), ctx: expired, wantErr: context.Canceled},
		{name: "canceled while waiting", provider: NewMockProvider(time.Hour), ctx: expired, wantErr: context.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.provider.SignIn(tt.ctx)
			if errors.Cause(err) != tt.wantErr {
				t.Fatalf("SignIn() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SignIn() = %+v, want %+v", got, tt.want)
			}
			if err := tt.provider.SignOut(tt.ctx); errors.Cause(err) != tt.wantErr {
				t.Errorf("SignOut() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
