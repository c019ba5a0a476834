package service

import (
	"context"
	"time"

	"mindconnect/internal/domain"
	"mindconnect/internal/models"
	"mindconnect/internal/repository"
	"mindconnect/internal/types"
)

const eventNotFound = "Event not found"

type EventInput struct {
	NGOID            types.Optional `json:"ngoId"`
	Title            types.Optional `json:"title"`
	Description      types.Optional `json:"description"`
	EventDate        types.Optional `json:"eventDate"`
	Location         types.Optional `json:"location"`
	Category         types.Optional `json:"category"`
	RegistrationLink types.Optional `json:"registrationLink"`
	ImageURL         types.Optional `json:"imageUrl"`
	Approved         types.Optional `json:"approved"`
}

type EventService struct {
	events   *repository.EventRepository
	profiles *repository.NGOProfileRepository
	now      func() time.Time
}

func NewEventService(events *repository.EventRepository, profiles *repository.NGOProfileRepository) *EventService {
	return &EventService{events: events, profiles: profiles, now: time.Now}
}

// Create inserts an unapproved event dated strictly after the current
// instant. The owning profile does not need to be approved.
func (s *EventService) Create(ctx context.Context, in EventInput) (*models.Event, error) {
	if in.NGOID.Empty() {
		return nil, domain.Validation(domain.CodeMissingNGOID, "NGO ID is required")
	}
	title, ok := requiredText(in.Title)
	if !ok {
		return nil, domain.Validation(domain.CodeMissingTitle, "Title is required")
	}
	rawDate, ok := requiredText(in.EventDate)
	if !ok {
		return nil, domain.Validation(domain.CodeMissingEventDate, "Event date is required")
	}
	location, ok := requiredText(in.Location)
	if !ok {
		return nil, domain.Validation(domain.CodeMissingLocation, "Location is required")
	}
	category, ok := requiredText(in.Category)
	if !ok {
		return nil, domain.Validation(domain.CodeMissingCategory, "Category is required")
	}
	ngoID, err := in.NGOID.Uint()
	if err != nil {
		return nil, domain.Validation(domain.CodeInvalidNGOID, "Valid NGO ID is required")
	}
	date, ok := parseEventDate(rawDate)
	if !ok {
		return nil, domain.Validation(domain.CodeInvalidEventDate, "Event date must be a valid ISO date string")
	}
	if !date.After(s.now()) {
		return nil, domain.Validation(domain.CodePastEventDate, "Event date must be in the future")
	}

	e := &models.Event{
		NGOID:     ngoID,
		Title:     title,
		EventDate: date,
		Location:  location,
		Category:  category,
	}
	if e.Description, err = optionalText("description", in.Description); err != nil {
		return nil, err
	}
	if e.RegistrationLink, err = optionalText("registrationLink", in.RegistrationLink); err != nil {
		return nil, err
	}
	if e.ImageURL, err = optionalText("imageUrl", in.ImageURL); err != nil {
		return nil, err
	}

	found, err := s.profiles.Exists(ctx, ngoID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.NotFound(domain.CodeNGONotFound, "NGO profile not found")
	}

	now := stamp(s.now)
	e.CreatedAt, e.UpdatedAt = now, now
	if err := s.events.Create(ctx, e); err != nil {
		return nil, storeErr(err, eventNotFound)
	}
	return e, nil
}

// Update validates each supplied field like Create does, except that the
// event date only has to parse; it may lie in the past.
func (s *EventService) Update(ctx context.Context, id uint, in EventInput) (*models.Event, error) {
	current, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, eventNotFound)
	}

	fields := map[string]any{}
	if in.Title.Present() {
		title, ok := requiredText(in.Title)
		if !ok {
			return nil, domain.Validation(domain.CodeInvalidTitle, "Title must be a non-empty string")
		}
		fields["title"] = title
	}
	if err := setOptionalText(fields, "description", "description", in.Description); err != nil {
		return nil, err
	}
	if in.EventDate.Present() {
		raw, ok := requiredText(in.EventDate)
		if !ok {
			return nil, domain.Validation(domain.CodeInvalidEventDate, "Event date must be a string")
		}
		date, ok := parseEventDate(raw)
		if !ok {
			return nil, domain.Validation(domain.CodeInvalidEventDate, "Event date must be a valid ISO date string")
		}
		fields["event_date"] = date
	}
	if in.Location.Present() {
		location, ok := requiredText(in.Location)
		if !ok {
			return nil, domain.Validation(domain.CodeInvalidLocation, "Location must be a non-empty string")
		}
		fields["location"] = location
	}
	if in.Category.Present() {
		category, ok := requiredText(in.Category)
		if !ok {
			return nil, domain.Validation(domain.CodeInvalidCategory, "Category must be a non-empty string")
		}
		fields["category"] = category
	}
	if err := setOptionalText(fields, "registration_link", "registrationLink", in.RegistrationLink); err != nil {
		return nil, err
	}
	if err := setOptionalText(fields, "image_url", "imageUrl", in.ImageURL); err != nil {
		return nil, err
	}
	if in.Approved.Present() {
		v, ok := in.Approved.Bool()
		if !ok {
			return nil, domain.Validation(domain.CodeInvalidApprovedEvt, "Approved must be a boolean")
		}
		fields["approved"] = v
	}
	fields["updated_at"] = nextStamp(s.now, current.UpdatedAt)

	if err := s.events.Update(ctx, id, fields); err != nil {
		return nil, storeErr(err, eventNotFound)
	}
	updated, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, eventNotFound)
	}
	return updated, nil
}

func (s *EventService) Remove(ctx context.Context, id uint) (*models.Event, error) {
	e, err := s.events.Delete(ctx, id)
	if err != nil {
		return nil, storeErr(err, eventNotFound)
	}
	return e, nil
}

func (s *EventService) Get(ctx context.Context, id uint) (*models.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, eventNotFound)
	}
	return e, nil
}

func (s *EventService) List(ctx context.Context, f repository.EventFilter) ([]models.Event, error) {
	return s.events.List(ctx, f)
}
