package courseValidator

import (
	"strings"

	"storefront/apiclient"
	"storefront/config"
	"storefront/middleware"
	"storefront/models/course"
	"storefront/utils"
	"storefront/validators/shared"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	paidPriceTag    = "paidprice"
	sourceBothTag   = "videosource_both"
	sourceNeededTag = "videosource_required"
)

func init() {
	shared.Validate.RegisterStructValidation(courseFormRules, CourseForm{})
	shared.Validate.RegisterStructValidation(videoFormRules, VideoForm{})
	shared.RegisterMessages(map[string]string{
		paidPriceTag:    "{0} must be greater than 0 for paid courses",
		sourceBothTag:   "{0} must be either an uploaded file or a URL, not both",
		sourceNeededTag: "{0} requires an uploaded file or a URL",
	})
}

// CourseForm is the create/edit course form. Thumbnail and preview video arrive as uploads.
type CourseForm struct {
	Name        string            `json:"name" form:"name" validate:"notblank,min=3,max=120"`
	Description string            `json:"description" form:"description" validate:"notblank,min=10,max=5000"`
	Type        course.CourseType `json:"type" form:"type" validate:"required,oneof=FREE PAID"`
	Price       float64           `json:"price" form:"price" validate:"gte=0"`
	Discount    float64           `json:"discount" form:"discount" validate:"gte=0,lte=100"`
	Tags        []string          `json:"tags" form:"tags" validate:"max=10,dive,max=30"`
}

// Normalize forces free courses to zero price and flattens comma separated tags.
func (f *CourseForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Type = course.CourseType(strings.ToUpper(strings.TrimSpace(string(f.Type))))
	if f.Type == course.TypeFree {
		f.Price = 0
		f.Discount = 0
	}
	f.Tags = utils.ParseTags(strings.Join(f.Tags, ","))
}

func (f CourseForm) Input() apiclient.CourseInput {
	return apiclient.CourseInput{
		Name:        f.Name,
		Description: f.Description,
		Type:        f.Type,
		Price:       f.Price,
		Discount:    f.Discount,
		Tags:        f.Tags,
	}
}

func courseFormRules(sl validator.StructLevel) {
	f := sl.Current().Interface().(CourseForm)
	if f.Type == course.TypePaid && f.Price <= 0 {
		sl.ReportError(f.Price, "price", "Price", paidPriceTag, "")
	}
}

type ModuleForm struct {
	Title        string `json:"title" form:"title" validate:"notblank,max=120"`
	ModuleNumber int    `json:"moduleNumber" form:"moduleNumber" validate:"gte=1"`
}

func (f ModuleForm) Input() apiclient.ModuleInput {
	return apiclient.ModuleInput{Title: strings.TrimSpace(f.Title), ModuleNumber: f.ModuleNumber}
}

// VideoForm describes a video. Its source is an uploaded file or an external URL, never both.
type VideoForm struct {
	Title       string `json:"title" form:"title" validate:"notblank,max=120"`
	Duration    int    `json:"duration" form:"duration" validate:"gt=0"`
	VideoNumber int    `json:"videoNumber" form:"videoNumber" validate:"gte=1"`
	ExternalURL string `json:"externalUrl" form:"externalUrl" validate:"omitempty,url"`

	HasFile       bool `json:"-" form:"-"`
	RequireSource bool `json:"-" form:"-"`
}

func (f VideoForm) Input() apiclient.VideoInput {
	return apiclient.VideoInput{
		Title:       strings.TrimSpace(f.Title),
		Duration:    f.Duration,
		VideoNumber: f.VideoNumber,
		ExternalURL: f.ExternalURL,
	}
}

func videoFormRules(sl validator.StructLevel) {
	f := sl.Current().Interface().(VideoForm)
	switch {
	case f.HasFile && f.ExternalURL != "":
		sl.ReportError(f.ExternalURL, "video", "ExternalURL", sourceBothTag, "")
	case f.RequireSource && !f.HasFile && f.ExternalURL == "":
		sl.ReportError(f.ExternalURL, "video", "ExternalURL", sourceNeededTag, "")
	}
}

type ApprovalForm struct {
	Status course.Status `json:"status" form:"status" validate:"required,oneof=APPROVED REJECTED"`
	Reason string        `json:"reason" form:"reason" validate:"required_if=Status REJECTED,max=500"`
}

type PublishForm struct {
	IsPublished *bool `json:"isPublished" form:"isPublished" validate:"required"`
}

// PurchaseForm names the course by id in the body, or by slug in the query string.
type PurchaseForm struct {
	CourseID string `json:"courseId" form:"courseId" validate:"required_without=Slug"`
	Slug     string `json:"course" validate:"required_without=CourseID"`
}

// ValidateCourse validates the course form and collects thumbnail/preview uploads.
func ValidateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseForm)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Normalize()

		uploads, err := utils.CollectUploads(c, utils.FieldThumbnail, utils.FieldPreviewVideo)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid multipart form!", nil)
		}

		errors := shared.Struct(reqData)
		for field, msg := range uploads.CheckSize(maxUploadMB()) {
			errors[field] = msg
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		c.Locals("uploads", uploads)
		return c.Next()
	}
}

func ValidateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ModuleForm)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := shared.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// ValidateVideo checks the video form. New videos need a source; edits may keep the current one.
func ValidateVideo(requireSource bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VideoForm)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.ExternalURL = strings.TrimSpace(reqData.ExternalURL)

		uploads, err := utils.CollectUploads(c, utils.FieldVideo)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid multipart form!", nil)
		}
		reqData.HasFile = uploads.Has(utils.FieldVideo)
		reqData.RequireSource = requireSource

		errors := shared.Struct(reqData)
		for field, msg := range uploads.CheckSize(maxUploadMB()) {
			errors[field] = msg
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVideo", reqData)
		c.Locals("uploads", uploads)
		return c.Next()
	}
}

func ValidateApproval() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ApprovalForm)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Status = course.Status(strings.ToUpper(strings.TrimSpace(string(reqData.Status))))

		if errors := shared.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedApproval", reqData)
		return c.Next()
	}
}

func ValidatePublish() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PublishForm)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := shared.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPublish", reqData)
		return c.Next()
	}
}

// CheckoutQuery requires the course slug in ?course=.
func CheckoutQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Query("course"))
		if slug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No course selected.", fiber.Map{"redirect": "/courses"})
		}

		c.Locals("checkoutSlug", slug)
		return c.Next()
	}
}

func ValidatePurchase() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PurchaseForm)
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}
		reqData.CourseID = strings.TrimSpace(reqData.CourseID)
		reqData.Slug = strings.TrimSpace(c.Query("course"))

		if errors := shared.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPurchase", reqData)
		return c.Next()
	}
}

func maxUploadMB() int {
	if config.AppConfig == nil {
		return 0
	}
	return config.AppConfig.MaxUploadMB
}
