package internal_test

import (
	internal "github.com/frahmantamala/teampulse/internal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Pagination", func() {
	It("should compute pages and navigation flags", func() {
		p := internal.NewPagination(2, 20, 45)
		Expect(p.Page).To(Equal(2))
		Expect(p.PerPage).To(Equal(20))
		Expect(p.Total).To(Equal(int64(45)))
		Expect(p.Pages).To(Equal(3))
		Expect(p.HasNext).To(BeTrue())
		Expect(p.HasPrev).To(BeTrue())
	})

	It("should report zero pages for an empty result", func() {
		p := internal.NewPagination(1, 20, 0)
		Expect(p.Pages).To(Equal(0))
		Expect(p.HasNext).To(BeFalse())
		Expect(p.HasPrev).To(BeFalse())
	})

	Describe("NormalizePageParams", func() {
		It("should default page and per_page", func() {
			page, perPage := internal.NormalizePageParams(0, 0)
			Expect(page).To(Equal(1))
			Expect(perPage).To(Equal(internal.DefaultPerPage))
		})

		It("should cap per_page", func() {
			_, perPage := internal.NormalizePageParams(1, 1000)
			Expect(perPage).To(Equal(internal.MaxPerPage))
		})

		It("should reject negative pages", func() {
			page, _ := internal.NormalizePageParams(-5, 20)
			Expect(page).To(Equal(1))
		})
	})
})
