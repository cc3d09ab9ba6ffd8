package dto

import (
	"regexp"
	"strings"

	"github.com/gookit/validate"
	"github.com/movya/candidate-suite/internal/model"
	"github.com/movya/candidate-suite/internal/util"
)

var (
	// conservative on purpose: lowercase local/domain, real TLD, no spaces
	emailRe = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	// numeric only, country code included, no separators
	phoneRe = regexp.MustCompile(`^\d{8,15}$`)
)

func init() {
	validate.AddValidator("sheetEmail", func(val string) bool {
		return emailRe.MatchString(val)
	})
	validate.AddValidator("phoneDigits", func(val string) bool {
		return phoneRe.MatchString(val)
	})
}

// CandidateForm is the create payload and the "updated" half of an edit.
// JSON keys mirror the sheet columns.
type CandidateForm struct {
	Name    string `json:"Name" validate:"required"`
	Email   string `json:"Email" validate:"required|sheetEmail"`
	Phone   string `json:"Phone Number" validate:"required|phoneDigits"`
	JobRole string `json:"Job Role Admin" validate:"required"`
}

func (f *CandidateForm) Messages() map[string]string {
	return validate.MS{
		"Name.required":     "Name is required",
		"Email.required":    "Email is required",
		"Email.sheetEmail":  "Enter a valid email address",
		"Phone.required":    "Phone Number is required",
		"Phone.phoneDigits": "Phone must be 8-15 digits (with country code)",
		"JobRole.required":  "Job Role Admin is required",
	}
}

func (f *CandidateForm) Translates() map[string]string {
	return validate.MS{
		"Name":    "Name",
		"Email":   "Email",
		"Phone":   "Phone Number",
		"JobRole": "Job Role Admin",
	}
}

// Normalize trims every field and lowercases the email before validation.
func (f *CandidateForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.Phone = strings.TrimSpace(f.Phone)
	f.JobRole = strings.TrimSpace(f.JobRole)
}

func (f *CandidateForm) Validate() *util.FormError {
	f.Normalize()
	v := validate.Struct(f)
	if v.Validate() {
		return nil
	}
	fields := map[string]string{}
	for field, messages := range v.Errors {
		for _, message := range messages {
			fields[field] = message
			break
		}
	}
	return util.NewFormError("Validation failed", fields)
}

// Lite builds the Apps Script payload with a freshly generated timestamp.
func (f *CandidateForm) Lite(datetime string) model.CandidateLite {
	return model.CandidateLite{
		Name:     f.Name,
		Email:    f.Email,
		Phone:    f.Phone,
		JobRole:  f.JobRole,
		Datetime: datetime,
	}
}

// CandidateKey is the original identity an update or delete is keyed by.
type CandidateKey struct {
	Name  string `json:"Name"`
	Email string `json:"Email"`
	Phone string `json:"Phone Number"`
}

func (k *CandidateKey) Validate() *util.FormError {
	k.Name = strings.TrimSpace(k.Name)
	k.Email = strings.TrimSpace(k.Email)
	fields := map[string]string{}
	if k.Name == "" {
		fields["Name"] = "Name is required"
	}
	if k.Email == "" {
		fields["Email"] = "Email is required"
	}
	if len(fields) > 0 {
		return util.NewFormError("Validation failed", fields)
	}
	return nil
}

// UpdateCandidateForm pairs the original identity with the proposed values.
type UpdateCandidateForm struct {
	Original CandidateKey  `json:"original"`
	Updated  CandidateForm `json:"updated"`
}

func (f *UpdateCandidateForm) Validate() *util.FormError {
	if err := f.Original.Validate(); err != nil {
		return err
	}
	return f.Updated.Validate()
}

// DeleteCandidateForm identifies the row to remove.
type DeleteCandidateForm struct {
	Name    string `json:"Name"`
	Email   string `json:"Email"`
	Phone   string `json:"Phone Number"`
	JobRole string `json:"Job Role Admin"`
}

func (f *DeleteCandidateForm) Validate() *util.FormError {
	key := CandidateKey{Name: f.Name, Email: f.Email}
	if err := key.Validate(); err != nil {
		return err
	}
	f.Name, f.Email = key.Name, key.Email
	return nil
}

// DecisionForm accepts or rejects one selection-queue record by email.
type DecisionForm struct {
	Email string `json:"Email"`
}

func (f *DecisionForm) Validate() *util.FormError {
	f.Email = strings.TrimSpace(f.Email)
	if f.Email == "" {
		return util.NewFormError("Validation failed", map[string]string{"Email": "Email is required"})
	}
	return nil
}
