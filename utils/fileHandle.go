package utils

import (
	"fmt"
	"mime/multipart"
	"strings"

	"storefront/apiclient"

	"github.com/gofiber/fiber/v2"
)

// Upload field names accepted from forms.
const (
	FieldThumbnail      = "thumbnail"
	FieldPreviewVideo   = "previewVideo"
	FieldVideo          = "video"
	FieldProfilePicture = "profilePicture"
)

// Uploads holds the file parts of a multipart form, keyed by field name.
// Text fields are parsed separately.
type Uploads map[string]*multipart.FileHeader

// IsMultipart reports whether the request body is multipart/form-data.
func IsMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm)
}

// CollectUploads picks the first file of each named field. It returns nil for non-multipart requests.
func CollectUploads(c *fiber.Ctx, fields ...string) (Uploads, error) {
	if !IsMultipart(c) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	uploads := Uploads{}
	for _, field := range fields {
		if files := form.File[field]; len(files) > 0 && files[0].Size > 0 {
			uploads[field] = files[0]
		}
	}
	return uploads, nil
}

func (u Uploads) Has(field string) bool {
	_, ok := u[field]
	return ok
}

// CheckSize returns a field error for every upload larger than maxMB.
func (u Uploads) CheckSize(maxMB int) map[string]string {
	errors := make(map[string]string)
	if maxMB <= 0 {
		return errors
	}
	limit := int64(maxMB) << 20
	for field, fh := range u {
		if fh.Size > limit {
			errors[field] = fmt.Sprintf("File must be at most %d MB!", maxMB)
		}
	}
	return errors
}

// Open opens every upload for forwarding. The returned func closes them.
func (u Uploads) Open() ([]apiclient.File, func(), error) {
	files := make([]apiclient.File, 0, len(u))
	closers := make([]multipart.File, 0, len(u))
	closeAll := func() {
		for _, f := range closers {
			f.Close()
		}
	}

	for field, fh := range u {
		src, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		closers = append(closers, src)

		contentType := fh.Header.Get(fiber.HeaderContentType)
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		files = append(files, apiclient.File{
			Field:       field,
			Name:        fh.Filename,
			ContentType: contentType,
			Reader:      src,
		})
	}
	return files, closeAll, nil
}

// UploadsFrom returns the uploads a validator stored on the request.
func UploadsFrom(c *fiber.Ctx) Uploads {
	if u, ok := c.Locals("uploads").(Uploads); ok {
		return u
	}
	return nil
}
