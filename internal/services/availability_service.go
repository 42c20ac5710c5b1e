package services

import (
	"lawlink_backend/internal/algorithms"
	"lawlink_backend/internal/models"
	"lawlink_backend/internal/repositories"
	"lawlink_backend/internal/services/dto"
	"lawlink_backend/pkg/apperrors"
)

type AvailabilityService interface {
	// Get returns a lawyer's office hours together with the bookable
	// 30-minute slots derived from them.
	Get(lawyerID uint) (*dto.AvailabilityResponse, error)

	Upsert(lawyerID uint, req *dto.UpsertAvailabilityRequest) (*dto.AvailabilityResponse, error)
}

type availabilityService struct {
	availabilityRepo repositories.AvailabilityRepository
	userRepo         repositories.UserRepository
}

func NewAvailabilityService(
	availabilityRepo repositories.AvailabilityRepository,
	userRepo repositories.UserRepository,
) AvailabilityService {
	return &availabilityService{
		availabilityRepo: availabilityRepo,
		userRepo:         userRepo,
	}
}

func (s *availabilityService) Get(lawyerID uint) (*dto.AvailabilityResponse, error) {
	availability, err := s.availabilityRepo.FindByLawyer(lawyerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAvailabilityNotFound) {
			return nil, apperrors.ErrNotFound(err, "availability")
		}
		return nil, apperrors.InternalError(err)
	}
	return buildAvailabilityResponse(availability), nil
}

func (s *availabilityService) Upsert(lawyerID uint, req *dto.UpsertAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	lawyer, err := s.userRepo.FindByID(lawyerID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "lawyer")
	}
	if lawyer.Role != models.UserRoleLawyer {
		return nil, apperrors.NewForbiddenError("Only lawyers can set office hours")
	}

	if req.MorningStart >= req.MorningEnd || req.EveningStart >= req.EveningEnd {
		return nil, apperrors.NewBadRequestError("Window start must be before window end")
	}
	if req.MorningEnd > req.EveningStart {
		return nil, apperrors.NewBadRequestError("Morning window must end before the evening window starts")
	}

	availability := &models.Availability{
		LawyerID:     lawyerID,
		MorningStart: req.MorningStart,
		MorningEnd:   req.MorningEnd,
		EveningStart: req.EveningStart,
		EveningEnd:   req.EveningEnd,
		WorkdayStart: req.WorkdayStart,
		WorkdayEnd:   req.WorkdayEnd,
	}
	if err := s.availabilityRepo.Upsert(availability); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildAvailabilityResponse(availability), nil
}

func buildAvailabilityResponse(a *models.Availability) *dto.AvailabilityResponse {
	slots := algorithms.SlotsForWindow(a.MorningStart, a.MorningEnd)
	slots = append(slots, algorithms.SlotsForWindow(a.EveningStart, a.EveningEnd)...)

	return &dto.AvailabilityResponse{
		LawyerID:     a.LawyerID,
		MorningStart: a.MorningStart,
		MorningEnd:   a.MorningEnd,
		EveningStart: a.EveningStart,
		EveningEnd:   a.EveningEnd,
		WorkdayStart: a.WorkdayStart,
		WorkdayEnd:   a.WorkdayEnd,
		Slots:        slots,
	}
}
