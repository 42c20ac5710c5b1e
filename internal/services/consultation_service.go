package services

import (
	"time"

	"lawlink_backend/internal/algorithms"
	"lawlink_backend/internal/models"
	"lawlink_backend/internal/repositories"
	"lawlink_backend/internal/services/dto"
	"lawlink_backend/pkg/apperrors"
)

type ConsultationService interface {
	Create(clientID uint, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error)
	Get(consultationID, requesterID uint) (*dto.ConsultationResponse, error)
	ListForClient(clientID uint, page, pageSize int) (*dto.ConsultationListResponse, error)
	ListForLawyer(lawyerID uint, page, pageSize int) (*dto.ConsultationListResponse, error)

	// TransitionStatus applies one edge of the status table. actorID is the
	// authenticated caller: the consultation's own lawyer, or a secretary
	// holding an Approved affiliation with that lawyer.
	TransitionStatus(consultationID, actorID uint, req *dto.TransitionRequest) (*dto.ConsultationResponse, error)

	// Reschedule validates the new date/time against the lawyer's office
	// hours and overwrites the scheduling fields in place.
	Reschedule(consultationID, requesterID uint, req *dto.RescheduleRequest) (*dto.ConsultationResponse, error)

	// GetNote returns the lawyer's note, visible to the client only once
	// the consultation is completed.
	GetNote(consultationID, requesterID uint) (*dto.NoteResponse, error)

	// CompleteOverdue is the reconciliation sweep body: force-complete
	// every Upcoming consultation dated before today and backfill empty
	// notes. Returns how many rows changed.
	CompleteOverdue(now time.Time) (int, error)
}

type consultationService struct {
	consultationRepo repositories.ConsultationRepository
	availabilityRepo repositories.AvailabilityRepository
	affiliationRepo  repositories.AffiliationRepository
	paymentRepo      repositories.PaymentRepository
	noteRepo         repositories.NoteRepository
	userRepo         repositories.UserRepository
}

func NewConsultationService(
	consultationRepo repositories.ConsultationRepository,
	availabilityRepo repositories.AvailabilityRepository,
	affiliationRepo repositories.AffiliationRepository,
	paymentRepo repositories.PaymentRepository,
	noteRepo repositories.NoteRepository,
	userRepo repositories.UserRepository,
) ConsultationService {
	return &consultationService{
		consultationRepo: consultationRepo,
		availabilityRepo: availabilityRepo,
		affiliationRepo:  affiliationRepo,
		paymentRepo:      paymentRepo,
		noteRepo:         noteRepo,
		userRepo:         userRepo,
	}
}

func (s *consultationService) Create(clientID uint, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	lawyer, err := s.userRepo.FindByID(req.LawyerID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "lawyer")
	}
	if lawyer.Role != models.UserRoleLawyer {
		return nil, apperrors.NewBadRequestError("Selected user is not a lawyer")
	}

	date, err := time.Parse(algorithms.DateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Date must be formatted YYYY-MM-DD")
	}
	if _, err := time.Parse(algorithms.TimeLayout, req.Time); err != nil {
		return nil, apperrors.NewBadRequestError("Time must be formatted HH:MM")
	}

	fee := lawyer.ConsultationRate * float64(req.DurationHours)
	if fee <= 0 {
		return nil, apperrors.NewBadRequestError("Lawyer has no consultation rate configured")
	}

	consultation := &models.Consultation{
		ClientID:      clientID,
		LawyerID:      req.LawyerID,
		Category:      req.Category,
		Description:   req.Description,
		Date:          date,
		Time:          req.Time,
		DurationHours: req.DurationHours,
		Fee:           fee,
		Mode:          models.ConsultationMode(req.Mode),
		PaymentMode:   models.PaymentMode(req.PaymentMode),
		Status:        models.ConsultationPending,
	}

	if err := s.consultationRepo.CreateWithNotification(consultation, BookingNotification(consultation)); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildConsultationResponse(consultation), nil
}

func (s *consultationService) Get(consultationID, requesterID uint) (*dto.ConsultationResponse, error) {
	consultation, err := s.findVisible(consultationID, requesterID)
	if err != nil {
		return nil, err
	}
	return buildConsultationResponse(consultation), nil
}

func (s *consultationService) ListForClient(clientID uint, page, pageSize int) (*dto.ConsultationListResponse, error) {
	consultations, total, err := s.consultationRepo.FindByClient(clientID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildConsultationList(consultations, total, page, pageSize), nil
}

func (s *consultationService) ListForLawyer(lawyerID uint, page, pageSize int) (*dto.ConsultationListResponse, error) {
	consultations, total, err := s.consultationRepo.FindByLawyer(lawyerID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildConsultationList(consultations, total, page, pageSize), nil
}

func (s *consultationService) TransitionStatus(consultationID, actorID uint, req *dto.TransitionRequest) (*dto.ConsultationResponse, error) {
	consultation, err := s.consultationRepo.FindByID(consultationID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "consultation")
	}

	target := models.ConsultationStatus(req.Status)
	if !models.ValidConsultationStatus(target) {
		return nil, apperrors.NewBadRequestError("Unknown consultation status: " + req.Status)
	}

	secretaryID, err := s.checkActor(consultation, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.checkTransition(consultation, target); err != nil {
		return nil, err
	}

	var note *models.LawyerNote
	if target == models.ConsultationCompletedPaid {
		note = &models.LawyerNote{
			ConsultationID: consultation.ID,
			Note:           req.Note,
			Recommendation: req.Recommendation,
		}
	}

	notifications := TransitionNotifications(consultation, target, secretaryID)

	err = s.consultationRepo.UpdateStatus(consultation.ID, consultation.Status, target, notifications, note)
	switch {
	case apperrors.Is(err, repositories.ErrConsultationNotFound):
		return nil, apperrors.ErrNotFound(err, "consultation")
	case apperrors.Is(err, repositories.ErrStatusConflict):
		return nil, apperrors.ErrConflict(err, "consultation", "Consultation status changed concurrently, please retry")
	case err != nil:
		return nil, apperrors.InternalError(err)
	}

	consultation.Status = target
	return buildConsultationResponse(consultation), nil
}

// checkTransition enforces the status table. The sweep-only edge
// Upcoming->Completed is unreachable through the API.
func (s *consultationService) checkTransition(c *models.Consultation, target models.ConsultationStatus) error {
	from := c.Status

	switch target {
	case models.ConsultationRejected:
		if from != models.ConsultationPending {
			return apperrors.ErrInvalidTransition(string(from), string(target))
		}

	case models.ConsultationUnpaid:
		if from != models.ConsultationPending || c.PaymentMode != models.PaymentModeGCash {
			return apperrors.ErrInvalidTransition(string(from), string(target))
		}

	case models.ConsultationUpcoming:
		switch from {
		case models.ConsultationPending:
			if c.PaymentMode != models.PaymentModeOverTheCounter {
				return apperrors.ErrInvalidTransition(string(from), string(target))
			}
		case models.ConsultationUnpaid:
			if _, err := s.paymentRepo.FindByConsultation(c.ID); err != nil {
				return apperrors.ErrReceiptRequired
			}
		default:
			return apperrors.ErrInvalidTransition(string(from), string(target))
		}

	case models.ConsultationCompletedPaid:
		if from.IsTerminal() {
			return apperrors.ErrInvalidTransition(string(from), string(target))
		}

	default:
		return apperrors.ErrInvalidTransition(string(from), string(target))
	}

	return nil
}

// checkActor binds the transition to the authenticated caller: the
// consultation's own lawyer acts directly, a secretary only through an
// Approved affiliation with that lawyer. Returns the secretary's ID for
// delegated actions, 0 otherwise.
func (s *consultationService) checkActor(c *models.Consultation, actorID uint) (uint, error) {
	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return 0, apperrors.ErrInsufficientPermissions
	}

	switch actor.Role {
	case models.UserRoleLawyer:
		if c.LawyerID != actorID {
			return 0, apperrors.ErrInsufficientPermissions
		}
		return 0, nil
	case models.UserRoleSecretary:
		if err := s.checkSecretary(actorID, c.LawyerID); err != nil {
			return 0, err
		}
		return actorID, nil
	default:
		return 0, apperrors.ErrInsufficientPermissions
	}
}

// checkSecretary requires an Approved affiliation between the acting
// secretary and the consultation's lawyer before a delegated action counts.
func (s *consultationService) checkSecretary(secretaryID, lawyerID uint) error {
	affiliation, err := s.affiliationRepo.FindBySecretaryAndLawyer(secretaryID, lawyerID)
	if err != nil || affiliation.WorkStatus != models.AffiliationApproved {
		return apperrors.ErrInsufficientPermissions
	}
	return nil
}

func (s *consultationService) Reschedule(consultationID, requesterID uint, req *dto.RescheduleRequest) (*dto.ConsultationResponse, error) {
	consultation, err := s.findVisible(consultationID, requesterID)
	if err != nil {
		return nil, err
	}

	if consultation.Status != models.ConsultationUnpaid && consultation.Status != models.ConsultationUpcoming {
		return nil, apperrors.NewBadRequestError("Only Unpaid or Upcoming consultations can be rescheduled")
	}

	availability, err := s.availabilityRepo.FindByLawyer(consultation.LawyerID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "availability")
	}

	err = algorithms.ValidateReschedule(time.Now(), req.Date, req.Time, availability)
	switch {
	case apperrors.Is(err, algorithms.ErrDateTooSoon):
		return nil, apperrors.ErrOutsideCooldown
	case apperrors.Is(err, algorithms.ErrOutsideOfficeHours):
		return nil, apperrors.ErrOutsideOfficeHours
	case err != nil:
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	date, _ := time.Parse(algorithms.DateLayout, req.Date)
	notification := RescheduleNotification(consultation, req.Date, req.Time)

	if err := s.consultationRepo.UpdateSchedule(consultation.ID, date, req.Time, []*models.Notification{notification}); err != nil {
		if apperrors.Is(err, repositories.ErrConsultationNotFound) {
			return nil, apperrors.ErrNotFound(err, "consultation")
		}
		return nil, apperrors.InternalError(err)
	}

	consultation.Date = date
	consultation.Time = req.Time
	return buildConsultationResponse(consultation), nil
}

func (s *consultationService) GetNote(consultationID, requesterID uint) (*dto.NoteResponse, error) {
	consultation, err := s.findVisible(consultationID, requesterID)
	if err != nil {
		return nil, err
	}

	if requesterID == consultation.ClientID &&
		consultation.Status != models.ConsultationCompleted &&
		consultation.Status != models.ConsultationCompletedPaid {
		return nil, apperrors.ErrInsufficientPermissions
	}

	note, err := s.noteRepo.FindByConsultation(consultationID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "note")
	}

	return &dto.NoteResponse{
		ConsultationID: note.ConsultationID,
		Note:           note.Note,
		Recommendation: note.Recommendation,
	}, nil
}

func (s *consultationService) CompleteOverdue(now time.Time) (int, error) {
	ids, err := s.consultationRepo.CompleteOverdue(models.DateOnly(now))
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// findVisible loads a consultation and rejects requesters that are neither
// party to it.
func (s *consultationService) findVisible(consultationID, requesterID uint) (*models.Consultation, error) {
	consultation, err := s.consultationRepo.FindByID(consultationID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "consultation")
	}

	if requesterID != consultation.ClientID && requesterID != consultation.LawyerID {
		// Secretaries act through the lawyer's affiliation.
		if err := s.checkSecretary(requesterID, consultation.LawyerID); err != nil {
			return nil, apperrors.ErrInsufficientPermissions
		}
	}

	return consultation, nil
}

func buildConsultationResponse(c *models.Consultation) *dto.ConsultationResponse {
	resp := &dto.ConsultationResponse{
		ID:            c.ID,
		ClientID:      c.ClientID,
		LawyerID:      c.LawyerID,
		Category:      c.Category,
		Description:   c.Description,
		Date:          c.Date.Format(algorithms.DateLayout),
		Time:          c.Time,
		DurationHours: c.DurationHours,
		Fee:           c.Fee,
		Mode:          c.Mode,
		PaymentMode:   c.PaymentMode,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
	}
	if c.Client != nil {
		resp.ClientName = c.Client.Name
	}
	if c.Lawyer != nil {
		resp.LawyerName = c.Lawyer.Name
	}
	return resp
}

func buildConsultationList(consultations []models.Consultation, total int64, page, pageSize int) *dto.ConsultationListResponse {
	items := make([]dto.ConsultationResponse, 0, len(consultations))
	for i := range consultations {
		items = append(items, *buildConsultationResponse(&consultations[i]))
	}
	return &dto.ConsultationListResponse{
		Consultations: items,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}
}
