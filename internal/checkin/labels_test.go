package checkin_test

import (
	"github.com/frahmantamala/teampulse/internal/checkin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Rating labels", func() {
	It("should map every mood rating to its label", func() {
		Expect(checkin.MoodLabel(1)).To(Equal("Very Low"))
		Expect(checkin.MoodLabel(2)).To(Equal("Low"))
		Expect(checkin.MoodLabel(3)).To(Equal("Neutral"))
		Expect(checkin.MoodLabel(4)).To(Equal("Good"))
		Expect(checkin.MoodLabel(5)).To(Equal("Excellent"))
	})

	It("should label out-of-range moods as Unknown", func() {
		Expect(checkin.MoodLabel(0)).To(Equal("Unknown"))
		Expect(checkin.MoodLabel(6)).To(Equal("Unknown"))
	})

	It("should return nil labels for absent optional ratings", func() {
		Expect(checkin.WorkloadLabel(nil)).To(BeNil())
		Expect(checkin.StressLabel(nil)).To(BeNil())
	})

	It("should map workload and stress ratings to their own scales", func() {
		Expect(*checkin.WorkloadLabel(intPtr(1))).To(Equal("Very Light"))
		Expect(*checkin.WorkloadLabel(intPtr(5))).To(Equal("Very Heavy"))
		Expect(*checkin.StressLabel(intPtr(3))).To(Equal("Moderate"))
		Expect(*checkin.StressLabel(intPtr(5))).To(Equal("Very High"))
	})

	It("should label out-of-range stored optional ratings as Unknown", func() {
		Expect(*checkin.WorkloadLabel(intPtr(0))).To(Equal("Unknown"))
		Expect(*checkin.StressLabel(intPtr(7))).To(Equal("Unknown"))
	})
})
