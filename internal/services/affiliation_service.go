package services

import (
	"lawlink_backend/internal/email"
	"lawlink_backend/internal/logger"
	"lawlink_backend/internal/models"
	"lawlink_backend/internal/repositories"
	"lawlink_backend/internal/services/dto"
	"lawlink_backend/pkg/apperrors"
)

type AffiliationService interface {
	// Request files a secretary's application to work for a lawyer and
	// notifies the lawyer.
	Request(secretaryID uint, req *dto.RequestAffiliationRequest) (*dto.AffiliationResponse, error)

	// Decide approves or rejects a pending application and notifies the
	// secretary.
	Decide(lawyerID, affiliationID uint, approve bool) error

	ListForLawyer(lawyerID uint) ([]dto.AffiliationResponse, error)
}

type affiliationService struct {
	affiliationRepo repositories.AffiliationRepository
	userRepo        repositories.UserRepository
	mail            email.Provider // optional
}

func NewAffiliationService(
	affiliationRepo repositories.AffiliationRepository,
	userRepo repositories.UserRepository,
	mail email.Provider,
) AffiliationService {
	return &affiliationService{
		affiliationRepo: affiliationRepo,
		userRepo:        userRepo,
		mail:            mail,
	}
}

func (s *affiliationService) Request(secretaryID uint, req *dto.RequestAffiliationRequest) (*dto.AffiliationResponse, error) {
	lawyer, err := s.userRepo.FindByID(req.LawyerID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "lawyer")
	}
	if lawyer.Role != models.UserRoleLawyer {
		return nil, apperrors.NewBadRequestError("Selected user is not a lawyer")
	}

	affiliation := &models.SecretaryAffiliation{
		SecretaryID: secretaryID,
		LawyerID:    req.LawyerID,
		WorkStatus:  models.AffiliationPending,
	}

	err = s.affiliationRepo.CreateWithNotification(affiliation, ApplicationNotification(secretaryID, req.LawyerID))
	switch {
	case apperrors.Is(err, repositories.ErrAffiliationExists):
		return nil, apperrors.New(apperrors.CodeAlreadyExists, "affiliation", "An application for this lawyer already exists", 409)
	case err != nil:
		return nil, apperrors.InternalError(err)
	}

	return buildAffiliationResponse(affiliation), nil
}

func (s *affiliationService) Decide(lawyerID, affiliationID uint, approve bool) error {
	affiliation, err := s.affiliationRepo.FindByID(affiliationID)
	if err != nil {
		return apperrors.ErrNotFound(err, "affiliation")
	}
	if affiliation.LawyerID != lawyerID {
		return apperrors.ErrInsufficientPermissions
	}
	if affiliation.WorkStatus != models.AffiliationPending {
		return apperrors.NewBadRequestError("Application has already been decided")
	}

	status := models.AffiliationRejected
	if approve {
		status = models.AffiliationApproved
	}

	notification := ApplicationDecisionNotification(lawyerID, affiliation.SecretaryID, approve)
	if err := s.affiliationRepo.UpdateStatusWithNotification(affiliationID, status, notification); err != nil {
		if apperrors.Is(err, repositories.ErrAffiliationNotFound) {
			return apperrors.ErrNotFound(err, "affiliation")
		}
		return apperrors.InternalError(err)
	}

	if approve {
		s.sendAcceptedEmail(affiliation)
	}
	return nil
}

func (s *affiliationService) ListForLawyer(lawyerID uint) ([]dto.AffiliationResponse, error) {
	affiliations, err := s.affiliationRepo.FindByLawyer(lawyerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.AffiliationResponse, 0, len(affiliations))
	for i := range affiliations {
		items = append(items, *buildAffiliationResponse(&affiliations[i]))
	}
	return items, nil
}

func (s *affiliationService) sendAcceptedEmail(affiliation *models.SecretaryAffiliation) {
	if s.mail == nil {
		return
	}

	secretary, err := s.userRepo.FindByID(affiliation.SecretaryID)
	if err != nil {
		return
	}

	if err := s.mail.SendAffiliationAccepted(secretary.Email, secretary.Name); err != nil {
		logger.Warn("failed to send affiliation email", "affiliation_id", affiliation.ID, "error", err)
	}
}

func buildAffiliationResponse(a *models.SecretaryAffiliation) *dto.AffiliationResponse {
	resp := &dto.AffiliationResponse{
		ID:          a.ID,
		SecretaryID: a.SecretaryID,
		LawyerID:    a.LawyerID,
		WorkStatus:  a.WorkStatus,
		CreatedAt:   a.CreatedAt,
	}
	if a.Secretary != nil {
		resp.SecretaryName = a.Secretary.Name
	}
	if a.Lawyer != nil {
		resp.LawyerName = a.Lawyer.Name
	}
	return resp
}
