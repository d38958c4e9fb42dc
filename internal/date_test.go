package internal_test

import (
	"encoding/json"
	"time"

	internal "github.com/frahmantamala/teampulse/internal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Date", func() {
	It("should parse and format YYYY-MM-DD", func() {
		d, err := internal.ParseDate("2026-08-31")
		Expect(err).NotTo(HaveOccurred())
		Expect(d.String()).To(Equal("2026-08-31"))
	})

	It("should reject malformed input", func() {
		_, err := internal.ParseDate("31/08/2026")
		Expect(err).To(HaveOccurred())
	})

	It("should marshal as a quoted date string", func() {
		d := internal.NewDate(2026, time.August, 31)
		out, err := json.Marshal(d)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(`"2026-08-31"`))
	})

	It("should unmarshal from a quoted date string", func() {
		var d internal.Date
		Expect(json.Unmarshal([]byte(`"2026-08-31"`), &d)).To(Succeed())
		Expect(d.Equal(internal.NewDate(2026, time.August, 31))).To(BeTrue())
	})

	Describe("StartOfWeek", func() {
		It("should return the Monday of the same week", func() {
			// 2026-08-31 is a Monday
			monday := internal.NewDate(2026, time.August, 31)
			Expect(monday.StartOfWeek().Equal(monday)).To(BeTrue())

			wednesday := internal.NewDate(2026, time.September, 2)
			Expect(wednesday.StartOfWeek().Equal(monday)).To(BeTrue())

			sunday := internal.NewDate(2026, time.September, 6)
			Expect(sunday.StartOfWeek().Equal(monday)).To(BeTrue())
		})
	})

	Describe("Scan", func() {
		It("should accept time.Time values", func() {
			var d internal.Date
			Expect(d.Scan(time.Date(2026, time.August, 31, 13, 45, 0, 0, time.UTC))).To(Succeed())
			Expect(d.String()).To(Equal("2026-08-31"))
		})

		It("should accept date strings and truncate timestamps", func() {
			var d internal.Date
			Expect(d.Scan("2026-08-31")).To(Succeed())
			Expect(d.String()).To(Equal("2026-08-31"))

			Expect(d.Scan("2026-09-01T00:00:00Z")).To(Succeed())
			Expect(d.String()).To(Equal("2026-09-01"))
		})

		It("should leave the zero value for nil", func() {
			var d internal.Date
			Expect(d.Scan(nil)).To(Succeed())
			Expect(d.IsZero()).To(BeTrue())
		})
	})

	It("should store as a YYYY-MM-DD string", func() {
		d := internal.NewDate(2026, time.August, 31)
		v, err := d.Value()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal("2026-08-31"))
	})
})
