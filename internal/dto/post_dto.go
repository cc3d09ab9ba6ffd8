package dto

import (
	"regexp"
	"strings"

	"github.com/gookit/validate"
	"github.com/movya/candidate-suite/internal/util"
)

var (
	// Position and Skill must start with a letter; punctuation allowed after.
	positionRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9\s,\.\-/&()]*$`)
	skillRe    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9\s,\.\-]*$`)
	// Experience is free-form: "3", "3+ years", "1.5", "3-5"
	experienceRe = regexp.MustCompile(`^[A-Za-z0-9\s+\-\./()%]+$`)
)

func init() {
	validate.AddValidator("postPosition", func(val string) bool {
		return positionRe.MatchString(val)
	})
	validate.AddValidator("postSkill", func(val string) bool {
		return skillRe.MatchString(val)
	})
	validate.AddValidator("postExperience", func(val string) bool {
		return experienceRe.MatchString(val)
	})
}

// PostForm is the LinkedIn job post payload.
type PostForm struct {
	Position   string `json:"Position" validate:"required|postPosition"`
	Experience string `json:"Experience" validate:"required|postExperience"`
	Skill      string `json:"Skill" validate:"required|postSkill"`
}

func (f *PostForm) Messages() map[string]string {
	return validate.MS{
		"Position.required":         "Position is required",
		"Position.postPosition":     "Position must start with a letter and may contain letters, numbers and ,.-/&()",
		"Experience.required":       "Experience is required",
		"Experience.postExperience": "Experience may include numbers, letters and symbols like + - . / ( ) %",
		"Skill.required":            "Skill is required",
		"Skill.postSkill":           "Skill must start with a letter and may contain letters, numbers and ,.-",
	}
}

func (f *PostForm) Validate() *util.FormError {
	f.Position = strings.TrimSpace(f.Position)
	f.Experience = strings.TrimSpace(f.Experience)
	f.Skill = strings.TrimSpace(f.Skill)
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
