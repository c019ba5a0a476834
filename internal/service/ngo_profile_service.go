package service

import (
	"context"
	"strings"
	"time"

	"mindconnect/internal/domain"
	"mindconnect/internal/models"
	"mindconnect/internal/repository"
	"mindconnect/internal/types"
)

const profileNotFound = "NGO profile not found"

// NGOProfileInput is the request body for register and update. Every field
// keeps whether its key was sent so updates only touch supplied columns.
type NGOProfileInput struct {
	UserID       types.Optional `json:"userId"`
	NGOName      types.Optional `json:"ngoName"`
	Description  types.Optional `json:"description"`
	ContactEmail types.Optional `json:"contactEmail"`
	ContactPhone types.Optional `json:"contactPhone"`
	WebsiteURL   types.Optional `json:"websiteUrl"`
	LogoURL      types.Optional `json:"logoUrl"`
	Approved     types.Optional `json:"approved"`
}

type NGOProfileService struct {
	profiles *repository.NGOProfileRepository
	users    *repository.UserRepository
	now      func() time.Time
}

func NewNGOProfileService(profiles *repository.NGOProfileRepository, users *repository.UserRepository) *NGOProfileService {
	return &NGOProfileService{profiles: profiles, users: users, now: time.Now}
}

// Register creates an unapproved profile for an existing user.
func (s *NGOProfileService) Register(ctx context.Context, in NGOProfileInput) (*models.NGOProfile, error) {
	if in.UserID.Empty() {
		return nil, domain.Validation(domain.CodeMissingUserID, "User ID is required")
	}
	name, ok := requiredText(in.NGOName)
	if !ok {
		return nil, domain.Validation(domain.CodeMissingNGOName, "NGO name is required")
	}
	email, ok := requiredText(in.ContactEmail)
	if !ok {
		return nil, domain.Validation(domain.CodeMissingContactEmail, "Contact email is required")
	}
	userID, err := in.UserID.Uint()
	if err != nil {
		return nil, domain.Validation(domain.CodeInvalidUserID, "Valid user ID is required")
	}
	if !validEmail(email) {
		return nil, domain.Validation(domain.CodeInvalidEmailFormat, "Invalid email format")
	}

	p := &models.NGOProfile{
		UserID:       userID,
		NGOName:      name,
		ContactEmail: strings.ToLower(email),
	}
	if p.Description, err = optionalText("description", in.Description); err != nil {
		return nil, err
	}
	if p.ContactPhone, err = optionalText("contactPhone", in.ContactPhone); err != nil {
		return nil, err
	}
	if p.WebsiteURL, err = optionalText("websiteUrl", in.WebsiteURL); err != nil {
		return nil, err
	}
	if p.LogoURL, err = optionalText("logoUrl", in.LogoURL); err != nil {
		return nil, err
	}

	found, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.Validation(domain.CodeUserNotFound, "User not found")
	}

	now := stamp(s.now)
	p.CreatedAt, p.UpdatedAt = now, now
	if err := s.profiles.Create(ctx, p); err != nil {
		return nil, storeErr(err, profileNotFound)
	}
	return p, nil
}

// Update writes only the fields present in the request. Approval is toggled
// through this path as well.
func (s *NGOProfileService) Update(ctx context.Context, id uint, in NGOProfileInput) (*models.NGOProfile, error) {
	current, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, profileNotFound)
	}

	fields := map[string]any{}
	if in.NGOName.Present() {
		name, ok := requiredText(in.NGOName)
		if !ok {
			return nil, domain.Validation(domain.CodeInvalidNGOName, "NGO name cannot be empty")
		}
		fields["ngo_name"] = name
	}
	if err := setOptionalText(fields, "description", "description", in.Description); err != nil {
		return nil, err
	}
	if in.ContactEmail.Present() {
		email, ok := requiredText(in.ContactEmail)
		if !ok {
			return nil, domain.Validation(domain.CodeInvalidContactEmail, "Contact email cannot be empty")
		}
		if !validEmail(email) {
			return nil, domain.Validation(domain.CodeInvalidEmailFormat, "Invalid email format")
		}
		fields["contact_email"] = strings.ToLower(email)
	}
	if err := setOptionalText(fields, "contact_phone", "contactPhone", in.ContactPhone); err != nil {
		return nil, err
	}
	if err := setOptionalText(fields, "website_url", "websiteUrl", in.WebsiteURL); err != nil {
		return nil, err
	}
	if err := setOptionalText(fields, "logo_url", "logoUrl", in.LogoURL); err != nil {
		return nil, err
	}
	if in.Approved.Present() {
		v, ok := in.Approved.Bool()
		if !ok {
			return nil, domain.Validation(domain.CodeInvalidApprovedNGO, "Approved must be a boolean")
		}
		fields["approved"] = v
	}
	fields["updated_at"] = nextStamp(s.now, current.UpdatedAt)

	if err := s.profiles.Update(ctx, id, fields); err != nil {
		return nil, storeErr(err, profileNotFound)
	}
	updated, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, profileNotFound)
	}
	return updated, nil
}

func (s *NGOProfileService) Remove(ctx context.Context, id uint) (*models.NGOProfile, error) {
	p, err := s.profiles.Delete(ctx, id)
	if err != nil {
		return nil, storeErr(err, profileNotFound)
	}
	return p, nil
}

func (s *NGOProfileService) Get(ctx context.Context, id uint) (*models.NGOProfile, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, profileNotFound)
	}
	return p, nil
}

func (s *NGOProfileService) List(ctx context.Context, f repository.NGOProfileFilter) ([]models.NGOProfile, error) {
	return s.profiles.List(ctx, f)
}
