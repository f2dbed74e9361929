package arrfile_test

import (
	"bytes"

	"github.com/bsm/arrfile"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decode", func() {
	// count=2; entry 0: Integer 42; entry 1: String "ABC"
	var fixture = []byte{
		0x02, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 0x2A, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 'A', 'B', 'C',
	}

	It("should decode", func() {
		Expect(arrfile.Decode(fixture)).To(Equal([]arrfile.Entry{
			arrfile.Integer(42),
			arrfile.String("ABC"),
		}))
	})

	It("should re-encode to the identical byte sequence", func() {
		entries, err := arrfile.Decode(fixture)
		Expect(err).NotTo(HaveOccurred())
		Expect(arrfile.Encode(entries)).To(Equal(fixture))
	})

	It("should decode an empty buffer to an empty sequence", func() {
		Expect(arrfile.Decode(nil)).To(BeEmpty())
		Expect(arrfile.Decode([]byte{})).To(BeEmpty())
	})

	It("should decode all four types", func() {
		data := arrfile.Encode(seedEntries())
		Expect(arrfile.Decode(data)).To(Equal(seedEntries()))
	})

	It("should read any nonzero boolean as true", func() {
		Expect(arrfile.Decode([]byte{
			0x02, 0x00, 0x00, 0x00,
			0x03, 0x00, 0x00, 0x00, 0x07, 0x00, 0x00, 0x00,
			0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		})).To(Equal([]arrfile.Entry{
			arrfile.Boolean(true),
			arrfile.Boolean(false),
		}))
	})

	It("should fail on truncated buffers", func() {
		data := arrfile.Encode(seedEntries())
		for n := 1; n < len(data); n++ {
			_, err := arrfile.Decode(data[:n])
			Expect(err).To(MatchError(arrfile.ErrTruncated), "for prefix of %d bytes", n)
		}
	})

	It("should fail on unknown type tags", func() {
		_, err := arrfile.Decode([]byte{
			0x01, 0x00, 0x00, 0x00,
			0x07, 0x00, 0x00, 0x00,
		})
		Expect(err).To(MatchError(arrfile.ErrUnknownType))
		Expect(err.Error()).To(Equal("arrfile: unknown type tag 7 (entry 0)"))
	})

	It("should not trust the declared count", func() {
		_, err := arrfile.Decode([]byte{0xFF, 0xFF, 0xFF, 0xFF})
		Expect(err).To(MatchError(arrfile.ErrTruncated))
	})

	It("should fail when a string length exceeds the buffer", func() {
		_, err := arrfile.Decode([]byte{
			0x01, 0x00, 0x00, 0x00,
			0x02, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 'A', 'B',
		})
		Expect(err).To(MatchError(arrfile.ErrTruncated))
	})
})

var _ = Describe("Read", func() {
	It("should consume a reader", func() {
		data := arrfile.Encode(seedEntries())
		Expect(arrfile.Read(bytes.NewReader(data))).To(Equal(seedEntries()))
	})
})
