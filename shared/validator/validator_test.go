package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"venuebook/shared/failure"
	"venuebook/shared/validator"

	"github.com/stretchr/testify/assert"
)

type contactRequest struct {
	Name  string   `json:"customerName"  validate:"required,max=100"`
	Email string   `json:"customerEmail" validate:"required,email"`
	Phone string   `json:"customerPhone" validate:"required,phone10"`
	Date  string   `json:"bookingDate"   validate:"required,isodate"`
	Extra []string `json:"extraDates"    validate:"omitempty,dive,isodate"`
	Image string   `json:"image"         validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=1"`
}

func validContact() contactRequest {
	return contactRequest{
		Name:  "Alice",
		Email: "a@x.com",
		Phone: "9876543210",
		Date:  "2026-12-01",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *contactRequest)
		wantMsg string
	}{
		{
			name:   "valid",
			mutate: func(_ *contactRequest) {},
		},
		{
			name:    "missing name",
			mutate:  func(r *contactRequest) { r.Name = "" },
			wantMsg: "customerName is required",
		},
		{
			name:    "invalid email",
			mutate:  func(r *contactRequest) { r.Email = "not-an-email" },
			wantMsg: "customerEmail must be a valid email address",
		},
		{
			name:    "short phone",
			mutate:  func(r *contactRequest) { r.Phone = "12345" },
			wantMsg: "customerPhone must be exactly 10 digits",
		},
		{
			name:    "phone with symbols",
			mutate:  func(r *contactRequest) { r.Phone = "987-654-32" },
			wantMsg: "customerPhone must be exactly 10 digits",
		},
		{
			name:    "phone with eleven digits",
			mutate:  func(r *contactRequest) { r.Phone = "98765432101" },
			wantMsg: "customerPhone must be exactly 10 digits",
		},
		{
			name:   "iso date time",
			mutate: func(r *contactRequest) { r.Date = "2026-12-01T00:00:00.000Z" },
		},
		{
			name:    "unparsable date",
			mutate:  func(r *contactRequest) { r.Date = "01/12/2026" },
			wantMsg: "bookingDate must be a date in YYYY-MM-DD or ISO-8601 format",
		},
		{
			name:    "unparsable date inside slice",
			mutate:  func(r *contactRequest) { r.Extra = []string{"2026-12-01", "tomorrow"} },
			wantMsg: "extraDates[1] must be a date in YYYY-MM-DD or ISO-8601 format",
		},
		{
			name:   "png data uri",
			mutate: func(r *contactRequest) { r.Image = "data:image/png;base64,iVBORw0KGgo=" },
		},
		{
			name:    "text data uri",
			mutate:  func(r *contactRequest) { r.Image = "data:text/plain;base64,SGVsbG8=" },
			wantMsg: "image must be one of image/png image/jpeg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validContact()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidate_DecodesBody(t *testing.T) {
	var req contactRequest

	err := validator.Validate(strings.NewReader(`{"customerName":"Bob","customerEmail":"b@x.com","customerPhone":"0123456789","bookingDate":"2026-12-02"}`), &req)

	assert.NoError(t, err)
	assert.Equal(t, "Bob", req.Name)
}

func TestValidate_MalformedBody(t *testing.T) {
	var req contactRequest

	err := validator.Validate(strings.NewReader(`{"customerName":`), &req)

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "failed to decode request body")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2026-12-05", "isodate"))
	assert.Error(t, validator.ValidateVar("12/05/2026", "isodate"))
	assert.NoError(t, validator.ValidateVar("0000000000", "phone10"))
	assert.Error(t, validator.ValidateVar("", "required"))
}
