package postgres_test

import (
	"testing"

	"github.com/frahmantamala/teampulse/internal/user"
	userPostgres "github.com/frahmantamala/teampulse/internal/user/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestUserPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Postgres Suite")
}

var _ = Describe("User Repository", func() {
	var (
		db   *gorm.DB
		repo user.Repository
	)

	seed := func(email, role string, active bool, teamID *int64) *user.User {
		u := &user.User{
			Email:        email,
			PasswordHash: "x",
			FirstName:    "Test",
			LastName:     "User",
			Role:         role,
			IsActive:     active,
			TeamID:       teamID,
		}
		Expect(db.Create(u).Error).To(Succeed())
		return u
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.AutoMigrate(&user.User{})).To(Succeed())

		repo = userPostgres.NewUserRepository(db)
	})

	Describe("List", func() {
		It("should filter by role and active state", func() {
			seed("admin@mail.com", user.RoleAdmin, true, nil)
			seed("dewi@mail.com", user.RoleEmployee, true, nil)
			seed("gone@mail.com", user.RoleEmployee, false, nil)

			active := true
			users, total, err := repo.List(user.ListFilter{Role: user.RoleEmployee, IsActive: &active}, 20, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
			Expect(users[0].Email).To(Equal("dewi@mail.com"))
		})

		It("should filter by team", func() {
			teamID := int64(7)
			seed("dewi@mail.com", user.RoleEmployee, true, &teamID)
			seed("budi@mail.com", user.RoleEmployee, true, nil)

			users, total, err := repo.List(user.ListFilter{TeamID: &teamID}, 20, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
			Expect(users[0].Email).To(Equal("dewi@mail.com"))
		})

		It("should paginate with a stable order", func() {
			seed("a@mail.com", user.RoleEmployee, true, nil)
			seed("b@mail.com", user.RoleEmployee, true, nil)
			seed("c@mail.com", user.RoleEmployee, true, nil)

			users, total, err := repo.List(user.ListFilter{}, 2, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(3)))
			Expect(users).To(HaveLen(1))
			Expect(users[0].Email).To(Equal("c@mail.com"))
		})
	})

	Describe("SetActive", func() {
		It("should flip the active flag without touching other fields", func() {
			u := seed("dewi@mail.com", user.RoleEmployee, true, nil)

			Expect(repo.SetActive(u.ID, false)).To(Succeed())

			reloaded, err := repo.GetByID(u.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(reloaded.IsActive).To(BeFalse())
			Expect(reloaded.Email).To(Equal("dewi@mail.com"))
		})
	})
})
