package arrfile_test

import (
	"github.com/bsm/arrfile"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("TextCodec", func() {
	It("should round-trip the representable repertoire", func() {
		for _, s := range []string{
			"",
			"ABC",
			"příliš žluťoučký kůň úpěl ďábelské ódy",
			"Zażółć gęślą jaźń",
			"árvíztűrő tükörfúrógép",
		} {
			Expect(arrfile.DecodeText(arrfile.EncodeText(s))).To(Equal(s), "for %q", s)
		}
	})

	It("should encode one byte per character", func() {
		Expect(arrfile.EncodeText("Žluťoučký")).To(HaveLen(9))
	})

	It("should substitute runes outside the code page", func() {
		Expect(arrfile.EncodeText("A→B")).To(Equal([]byte{'A', 0x1A, 'B'}))
	})

	It("should decode undefined bytes as the replacement rune", func() {
		Expect(arrfile.DecodeText([]byte{0x81})).To(Equal("�"))
	})

	It("should decode the fixture alphabet", func() {
		Expect(arrfile.DecodeText([]byte{0x41, 0x42, 0x43})).To(Equal("ABC"))
	})
})
