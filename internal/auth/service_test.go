package auth_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	internal "github.com/frahmantamala/teampulse/internal"
	"github.com/frahmantamala/teampulse/internal/auth"
	"github.com/frahmantamala/teampulse/internal/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Service Suite")
}

// MockUserRepository implements auth.UserRepository for testing
type MockUserRepository struct {
	usersByEmail   map[string]*user.User
	usersByID      map[int64]*user.User
	nextID         int64
	emailLookupErr error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		usersByEmail: make(map[string]*user.User),
		usersByID:    make(map[int64]*user.User),
		nextID:       1,
	}
}

func (m *MockUserRepository) GetByEmail(email string) (*user.User, error) {
	if m.emailLookupErr != nil {
		return nil, m.emailLookupErr
	}
	return m.usersByEmail[email], nil
}

func (m *MockUserRepository) GetByID(id int64) (*user.User, error) {
	u, ok := m.usersByID[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

func (m *MockUserRepository) Create(u *user.User) error {
	u.ID = m.nextID
	m.nextID++
	m.usersByEmail[u.Email] = u
	m.usersByID[u.ID] = u
	return nil
}

func (m *MockUserRepository) UpdatePassword(id int64, passwordHash string) error {
	u, ok := m.usersByID[id]
	if !ok {
		return errors.New("record not found")
	}
	u.PasswordHash = passwordHash
	return nil
}

const testSecret = "0123456789abcdef0123456789abcdef"

var _ = Describe("Auth Service", func() {
	var (
		mockRepo *MockUserRepository
		service  *auth.Service
	)

	addUser := func(email, password string, active bool) *user.User {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())
		u := &user.User{
			Email:        email,
			PasswordHash: string(hash),
			FirstName:    "Dewi",
			LastName:     "Lestari",
			Role:         user.RoleEmployee,
			IsActive:     active,
		}
		Expect(mockRepo.Create(u)).To(Succeed())
		return u
	}

	BeforeEach(func() {
		mockRepo = NewMockUserRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		tokenGen := auth.NewJWTTokenGenerator(testSecret, time.Hour)
		service = auth.NewService(mockRepo, tokenGen, bcrypt.MinCost, logger)
	})

	Describe("Authenticate", func() {
		It("should return a token for valid credentials", func() {
			addUser("dewi@mail.com", "secret123", true)

			token, u, err := service.Authenticate(auth.LoginDTO{Email: "dewi@mail.com", Password: "secret123"})
			Expect(err).NotTo(HaveOccurred())
			Expect(token).NotTo(BeEmpty())
			Expect(u.Email).To(Equal("dewi@mail.com"))
		})

		It("should normalize the email case", func() {
			addUser("dewi@mail.com", "secret123", true)

			_, _, err := service.Authenticate(auth.LoginDTO{Email: "  Dewi@Mail.com ", Password: "secret123"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject a wrong password", func() {
			addUser("dewi@mail.com", "secret123", true)

			_, _, err := service.Authenticate(auth.LoginDTO{Email: "dewi@mail.com", Password: "nope"})
			Expect(err).To(MatchError(internal.ErrInvalidCredentials))
		})

		It("should reject an unknown email", func() {
			_, _, err := service.Authenticate(auth.LoginDTO{Email: "ghost@mail.com", Password: "secret123"})
			Expect(err).To(MatchError(internal.ErrInvalidCredentials))
		})

		It("should surface a failed email lookup as a server error", func() {
			mockRepo.emailLookupErr = errors.New("connection reset")

			_, _, err := service.Authenticate(auth.LoginDTO{Email: "dewi@mail.com", Password: "secret123"})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(500))
		})

		It("should reject a deactivated account", func() {
			addUser("dewi@mail.com", "secret123", false)

			_, _, err := service.Authenticate(auth.LoginDTO{Email: "dewi@mail.com", Password: "secret123"})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(401))
			Expect(appErr.Message).To(Equal("Account is deactivated"))
		})

		It("should require email and password", func() {
			_, _, err := service.Authenticate(auth.LoginDTO{})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Message).To(Equal("Email and password are required"))
		})
	})

	Describe("Register", func() {
		It("should create an employee by default", func() {
			u, err := service.Register(auth.RegisterDTO{
				Email:     "Budi@Mail.com",
				Password:  "secret123",
				FirstName: "Budi",
				LastName:  "Santoso",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(u.Email).To(Equal("budi@mail.com"))
			Expect(u.Role).To(Equal(user.RoleEmployee))
			Expect(u.IsActive).To(BeTrue())
			Expect(u.PasswordHash).NotTo(Equal("secret123"))
		})

		It("should conflict on a duplicate email", func() {
			addUser("budi@mail.com", "secret123", true)

			_, err := service.Register(auth.RegisterDTO{
				Email:     "budi@mail.com",
				Password:  "secret123",
				FirstName: "Budi",
				LastName:  "Santoso",
			})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(409))
		})

		It("should reject a short password", func() {
			_, err := service.Register(auth.RegisterDTO{
				Email:     "budi@mail.com",
				Password:  "12345",
				FirstName: "Budi",
				LastName:  "Santoso",
			})
			Expect(err).To(HaveOccurred())
		})

		It("should reject an unknown role", func() {
			_, err := service.Register(auth.RegisterDTO{
				Email:     "budi@mail.com",
				Password:  "secret123",
				FirstName: "Budi",
				LastName:  "Santoso",
				Role:      "superuser",
			})
			Expect(err).To(HaveOccurred())
		})

		It("should surface a failed email lookup instead of writing", func() {
			mockRepo.emailLookupErr = errors.New("connection reset")

			_, err := service.Register(auth.RegisterDTO{
				Email:     "budi@mail.com",
				Password:  "secret123",
				FirstName: "Budi",
				LastName:  "Santoso",
			})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(500))
			Expect(mockRepo.usersByEmail).To(BeEmpty())
		})
	})

	Describe("ChangePassword", func() {
		It("should replace the hash when the current password matches", func() {
			u := addUser("dewi@mail.com", "secret123", true)
			oldHash := u.PasswordHash

			err := service.ChangePassword(u.ID, auth.ChangePasswordDTO{
				CurrentPassword: "secret123",
				NewPassword:     "evenmoresecret",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(u.PasswordHash).NotTo(Equal(oldHash))

			_, _, err = service.Authenticate(auth.LoginDTO{Email: "dewi@mail.com", Password: "evenmoresecret"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject a wrong current password", func() {
			u := addUser("dewi@mail.com", "secret123", true)

			err := service.ChangePassword(u.ID, auth.ChangePasswordDTO{
				CurrentPassword: "wrong",
				NewPassword:     "evenmoresecret",
			})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(401))
		})
	})

	Describe("tokens", func() {
		It("should round-trip claims through validation", func() {
			u := addUser("dewi@mail.com", "secret123", true)

			token, _, err := service.Authenticate(auth.LoginDTO{Email: "dewi@mail.com", Password: "secret123"})
			Expect(err).NotTo(HaveOccurred())

			claims, err := service.ValidateAccessToken(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.Email).To(Equal("dewi@mail.com"))
			Expect(claims.Role).To(Equal(user.RoleEmployee))

			resolved, err := service.ResolveUser(claims)
			Expect(err).NotTo(HaveOccurred())
			Expect(resolved.ID).To(Equal(u.ID))
		})

		It("should reject a token signed with another secret", func() {
			otherGen := auth.NewJWTTokenGenerator("another-secret-another-secret-xx", time.Hour)
			token, err := otherGen.GenerateAccessToken(1, "dewi@mail.com", user.RoleEmployee)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			Expect(err).To(HaveOccurred())
		})

		It("should reject an expired token", func() {
			expiredGen := auth.NewJWTTokenGenerator(testSecret, -time.Minute)
			token, err := expiredGen.GenerateAccessToken(1, "dewi@mail.com", user.RoleEmployee)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			Expect(err).To(HaveOccurred())
		})
	})
})
