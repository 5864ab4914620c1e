// Package mocks provides centralized mock implementations for testing.
//
// Store mocks are built on testify/mock so tests can set expectations with
// On(...).Return(...). Service, cache and token mocks use function fields
// with fixed default return values and record their calls.
//
// Usage:
//
//	import "github.com/phrazzld/hunterprice/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    users := &mocks.MockUserService{
//	        GetUserByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
//	            return &domain.User{ID: 1, Email: email}, nil
//	        },
//	    }
//	    // Use the mock in your test...
//	}
package mocks
