package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/service"
)

var _ = Describe("AttachmentService", func() {
	var (
		objects *mockObjectStore
		caller  *model.User
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		objects = &mockObjectStore{}
		caller = &model.User{ID: 42}
	})

	It("stores the file under the uploader's prefix with a random name", func() {
		svc := service.NewAttachmentService(objects)

		url, err := svc.Upload(ctx, caller, "Screen Shot.PNG", "image/png", 3, bytes.NewReader([]byte("png")))

		Expect(err).NotTo(HaveOccurred())
		Expect(objects.keys).To(HaveLen(1))
		Expect(objects.keys[0]).To(MatchRegexp(`^comments/42/[0-9a-f-]{36}\.png$`))
		Expect(url).To(HaveSuffix(objects.keys[0]))
	})

	It("refuses files over the size limit", func() {
		svc := service.NewAttachmentService(objects)

		_, err := svc.Upload(ctx, caller, "big.bin", "", service.MaxAttachmentSize+1, bytes.NewReader(nil))

		Expect(err).To(MatchError(service.ErrAttachmentTooLarge))
		Expect(objects.keys).To(BeEmpty())
	})

	It("reports disabled storage", func() {
		svc := service.NewAttachmentService(nil)

		_, err := svc.Upload(ctx, caller, "a.txt", "text/plain", 1, bytes.NewReader([]byte("a")))

		Expect(err).To(MatchError(service.ErrStorageDisabled))
	})

	It("wraps upload failures", func() {
		objects.putFn = func(_ context.Context, _ string, _ io.Reader, _ int64, _ string) (string, error) {
			return "", errors.New("bucket gone")
		}
		svc := service.NewAttachmentService(objects)

		_, err := svc.Upload(ctx, caller, "a.txt", "text/plain", 1, bytes.NewReader([]byte("a")))

		Expect(err).To(MatchError(ContainSubstring("bucket gone")))
	})

	It("stores HTML as an opaque download whatever the client declares", func() {
		svc := service.NewAttachmentService(objects)
		page := []byte("<html><script>alert(document.cookie)</script></html>")

		_, err := svc.Upload(ctx, caller, "chart.png", "image/png", int64(len(page)), bytes.NewReader(page))

		Expect(err).NotTo(HaveOccurred())
		Expect(objects.contentTypes).To(Equal([]string{"application/octet-stream"}))
		Expect(objects.bodies[0]).To(Equal(page))
	})

	It("keeps a sniffed image type and the full body", func() {
		svc := service.NewAttachmentService(objects)
		img := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 1024)...)

		_, err := svc.Upload(ctx, caller, "chart.png", "text/html", int64(len(img)), bytes.NewReader(img))

		Expect(err).NotTo(HaveOccurred())
		Expect(objects.contentTypes).To(Equal([]string{"image/png"}))
		Expect(objects.bodies[0]).To(Equal(img))
	})

	It("keeps only the extension of the client's file name", func() {
		key := service.AttachmentKey(7, "abc", "../../etc/passwd.TXT")
		Expect(key).To(Equal("comments/7/abc.txt"))
		Expect(regexp.MustCompile(`\.\.`).MatchString(key)).To(BeFalse())
	})
})
