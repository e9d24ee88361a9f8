package newsservice

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/newsroom/newsdesk/app/models"
	"github.com/newsroom/newsdesk/internal/pkg/upload"
)

// NewsInput is the candidate field set for create and update. All values
// arrive as strings from the multipart form.
type NewsInput struct {
	Date     string `form:"date" validate:"required,datetime=2006-01-02,notfuture"`
	Title    string `form:"title" validate:"required,max=200"`
	Category string `form:"category" validate:"required,newscategory"`
	URL      string `form:"url" validate:"required,url,max=500"`
	Status   string `form:"status" validate:"omitempty,oneof=published unpublished"`
}

// ImageUpload is an optional uploaded image payload.
type ImageUpload struct {
	Filename string
	Data     []byte
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their form name, not the Go struct field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Runs after the datetime rule, so the value is a canonical ISO date
	// and a plain string comparison is safe.
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		return fl.Field().String() <= time.Now().Format("2006-01-02")
	})

	_ = v.RegisterValidation("newscategory", func(fl validator.FieldLevel) bool {
		return models.IsValidNewsCategory(fl.Field().String())
	})

	return v
}

var validationMessages = map[string]string{
	"date.required":         "Date is required",
	"date.datetime":         "Please provide a valid date",
	"date.notfuture":        "Date cannot be in the future",
	"title.required":        "Title is required",
	"title.max":             "Title must not exceed 200 characters",
	"category.required":     "Category is required",
	"category.newscategory": "Please select a valid category",
	"url.required":          "URL is required",
	"url.url":               "Please provide a valid URL",
	"url.max":               "URL must not exceed 500 characters",
	"status.oneof":          "Status must be either published or unpublished",
}

func messageFor(field, tag string) string {
	if msg, ok := validationMessages[field+"."+tag]; ok {
		return msg
	}
	return "The " + field + " field is invalid"
}

// Validate evaluates all field rules and the optional image payload,
// collecting every violation keyed by field name. A nil result means the
// input is acceptable. Rules are identical for create and update.
func Validate(in NewsInput, image *ImageUpload) map[string][]string {
	fieldErrors := map[string][]string{}

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				field := fe.Field()
				fieldErrors[field] = append(fieldErrors[field], messageFor(field, fe.Tag()))
			}
		}
	}

	if image != nil {
		if len(image.Data) > upload.MaxImageSize {
			fieldErrors["image"] = append(fieldErrors["image"], upload.ErrImageTooLarge.Error())
		}
		head := image.Data
		if len(head) > 512 {
			head = head[:512]
		}
		if _, err := upload.ValidateImageBySniff(image.Filename, head); err != nil {
			fieldErrors["image"] = append(fieldErrors["image"], err.Error())
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}
