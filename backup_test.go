package arrfile_test

import (
	"bytes"
	"strings"

	"github.com/bsm/arrfile"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Backup", func() {
	It("should round-trip", func() {
		buf := new(bytes.Buffer)
		Expect(arrfile.WriteBackup(buf, seedEntries())).To(Succeed())
		Expect(arrfile.ReadBackup(buf)).To(Equal(seedEntries()))
	})

	It("should round-trip an empty sequence", func() {
		buf := new(bytes.Buffer)
		Expect(arrfile.WriteBackup(buf, nil)).To(Succeed())
		Expect(buf.Len()).To(Equal(8 + 4 + 1))
		Expect(arrfile.ReadBackup(buf)).To(BeEmpty())
	})

	It("should compress compressible payloads", func() {
		entries := make([]arrfile.Entry, 0, 1000)
		for i := 0; i < 1000; i++ {
			entries = append(entries, arrfile.String(strings.Repeat("na", 40)))
		}
		plain := len(arrfile.Encode(entries))

		buf := new(bytes.Buffer)
		Expect(arrfile.WriteBackup(buf, entries)).To(Succeed())
		Expect(buf.Len()).To(BeNumerically("<", plain))
		Expect(arrfile.ReadBackup(buf)).To(Equal(entries))
	})

	It("should reject bad magic", func() {
		_, err := arrfile.ReadBackup(strings.NewReader("notabackupfile"))
		Expect(err).To(MatchError("arrfile: bad magic byte sequence"))

		_, err = arrfile.ReadBackup(strings.NewReader(""))
		Expect(err).To(MatchError("arrfile: bad magic byte sequence"))
	})

	It("should reject bad compression indicators", func() {
		buf := new(bytes.Buffer)
		Expect(arrfile.WriteBackup(buf, nil)).To(Succeed())

		raw := buf.Bytes()
		raw[len(raw)-1] = 0x07
		_, err := arrfile.ReadBackup(bytes.NewReader(raw))
		Expect(err).To(MatchError("arrfile: bad compression codec"))
	})
})
