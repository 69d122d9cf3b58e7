package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/isasim/core"
	"github.com/sarchlab/isasim/htif"
	"github.com/sarchlab/isasim/mem"
)

type heapMapper struct{}

func (heapMapper) Map(size uint64) ([]byte, error) { return make([]byte, size), nil }
func (heapMapper) Unmap([]byte) error              { return nil }

var _ = Describe("Core", func() {
	var (
		region *mem.Region
		mmu    *mem.MMU
		c      *core.Core
	)

	BeforeEach(func() {
		var err error
		region, err = mem.Allocate(heapMapper{}, mem.MB, mem.PageSize)
		Expect(err).NotTo(HaveOccurred())

		mmu = mem.NewMMU(region)
		c = core.New(0, mmu)
	})

	It("should be running after creation", func() {
		Expect(c.Running()).To(BeTrue())
		Expect(c.MMU()).To(BeIdenticalTo(mmu))
	})

	It("should retire every step", func() {
		c.Step(10, false)
		c.Step(5, true)

		Expect(c.Retired).To(Equal(uint64(15)))
	})

	It("should take a pending IPI on the next step", func() {
		c.DeliverIPI()
		Expect(c.IPIPending()).To(BeTrue())

		c.Step(1, false)

		Expect(c.IPIPending()).To(BeFalse())
		Expect(c.IPIsTaken).To(Equal(uint64(1)))
	})

	It("should request a halt when core 0 spends its budget", func() {
		c.WithBudget(8)

		c.Step(100, false)

		Expect(c.Retired).To(Equal(uint64(8)))
		Expect(c.Running()).To(BeFalse())
		Expect(c.ToHost()).To(Equal(htif.HaltRequest))
	})

	It("should only stop other cores when their budget is spent", func() {
		other := core.New(1, mem.NewMMU(region)).WithBudget(3)

		other.Step(5, false)

		Expect(other.Running()).To(BeFalse())
		Expect(other.ToHost()).To(BeZero())
	})

	It("should not retire steps once halted", func() {
		c.Halt()

		c.Step(10, false)

		Expect(c.Retired).To(BeZero())
	})

	It("should keep the signaling words", func() {
		c.SetToHost(5)
		c.SetFromHost(6)

		Expect(c.ToHost()).To(Equal(uint64(5)))
		Expect(c.FromHost()).To(Equal(uint64(6)))
	})

	It("should release its MMU on close", func() {
		Expect(c.Close()).To(Succeed())

		_, err := mmu.Load64(0)
		Expect(err).To(HaveOccurred())
		Expect(c.Running()).To(BeFalse())
	})
})
