package internal

import (
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/tfphases/internal/apperr"
	"github.com/starford/tfphases/internal/models"
)

// GenerateRequest carries the raw inputs of one generate invocation.
type GenerateRequest struct {
	Phase        string
	Cloud        string
	Region       string
	OutRoot      string
	TemplateRoot string
}

// Normalize trims every field and case-folds the cloud.
func (r GenerateRequest) Normalize() GenerateRequest {
	return GenerateRequest{
		Phase:        strings.TrimSpace(r.Phase),
		Cloud:        strings.ToLower(strings.TrimSpace(r.Cloud)),
		Region:       strings.TrimSpace(r.Region),
		OutRoot:      strings.TrimSpace(r.OutRoot),
		TemplateRoot: strings.TrimSpace(r.TemplateRoot),
	}
}

// TemplateDir is the template tree for the requested phase.
func (r GenerateRequest) TemplateDir() string {
	return filepath.Join(r.TemplateRoot, r.Phase)
}

// Validate checks a normalized request. It only reads the file system.
func (r GenerateRequest) Validate() error {
	phases := make([]interface{}, 0, len(models.Phases()))
	for _, p := range models.PhaseNames() {
		phases = append(phases, p)
	}
	phaseMsg := "--phase must be one of: " + strings.Join(models.PhaseNames(), ", ")
	if err := validation.Validate(r.Phase,
		validation.Required.Error(phaseMsg),
		validation.In(phases...).Error(phaseMsg),
	); err != nil {
		return apperr.Invalid(apperr.ErrUnknownPhase, "%v", err)
	}

	if err := validation.Validate(r.Cloud,
		validation.Required.Error(apperr.ErrInvalidCloud.Error()),
		validation.In(models.CloudAWS).Error(apperr.ErrInvalidCloud.Error()),
	); err != nil {
		return apperr.Invalid(apperr.ErrInvalidCloud, "%v", err)
	}

	if err := validation.Validate(r.Region,
		validation.Required.Error(apperr.ErrMissingRegion.Error()),
	); err != nil {
		return apperr.Invalid(apperr.ErrMissingRegion, "%v", err)
	}

	if info, err := os.Stat(r.TemplateDir()); err != nil || !info.IsDir() {
		return apperr.Invalid(apperr.ErrMissingTemplate, "Missing template for phase: %s", r.Phase)
	}
	return nil
}
