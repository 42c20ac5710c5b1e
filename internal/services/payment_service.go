package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"lawlink_backend/internal/email"
	"lawlink_backend/internal/logger"
	"lawlink_backend/internal/models"
	"lawlink_backend/internal/repositories"
	"lawlink_backend/internal/services/dto"
	"lawlink_backend/internal/storage"
	"lawlink_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type PaymentService interface {
	// SubmitProof stores the proof image and creates (or replaces) the
	// receipt for an Unpaid consultation. The consultation status does not
	// change; the lawyer is notified to verify.
	SubmitProof(ctx context.Context, consultationID, clientID uint, proof io.Reader, contentType string) (*dto.PaymentReceiptResponse, error)

	// ConfirmPayment is the lawyer's manual attestation: requires a
	// receipt, moves the consultation to Upcoming and notifies the client.
	ConfirmPayment(ctx context.Context, consultationID, lawyerID uint) error

	// DenyPayment deletes the receipt so the client can resubmit. The
	// consultation stays Unpaid on purpose: denial clears the submission
	// signal, it does not revert the approval.
	DenyPayment(ctx context.Context, consultationID, lawyerID uint) error

	GetReceipt(ctx context.Context, consultationID, requesterID uint) (*dto.PaymentReceiptResponse, error)
	OpenProofImage(ctx context.Context, consultationID, requesterID uint) (io.ReadCloser, error)
}

type paymentService struct {
	paymentRepo      repositories.PaymentRepository
	consultationRepo repositories.ConsultationRepository
	userRepo         repositories.UserRepository
	files            storage.Storage
	mail             email.Provider // optional, nil disables the side-channel
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	consultationRepo repositories.ConsultationRepository,
	userRepo repositories.UserRepository,
	files storage.Storage,
	mail email.Provider,
) PaymentService {
	return &paymentService{
		paymentRepo:      paymentRepo,
		consultationRepo: consultationRepo,
		userRepo:         userRepo,
		files:            files,
		mail:             mail,
	}
}

func (s *paymentService) SubmitProof(ctx context.Context, consultationID, clientID uint, proof io.Reader, contentType string) (*dto.PaymentReceiptResponse, error) {
	consultation, err := s.consultationRepo.FindByID(consultationID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "consultation")
	}
	if consultation.ClientID != clientID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if consultation.Status != models.ConsultationUnpaid {
		return nil, apperrors.NewBadRequestError("Consultation is not awaiting payment")
	}

	var previousPath string
	if previous, err := s.paymentRepo.FindByConsultation(consultationID); err == nil {
		previousPath = previous.ImagePath
	}

	key := fmt.Sprintf("receipts/%d/%s", consultationID, uuid.New().String())
	if err := s.files.Save(ctx, key, proof, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	receipt := &models.PaymentReceipt{
		ConsultationID: consultationID,
		ClientID:       consultation.ClientID,
		LawyerID:       consultation.LawyerID,
		ImagePath:      key,
		SubmittedAt:    time.Now(),
	}

	if err := s.paymentRepo.SaveWithNotification(receipt, PaymentSubmittedNotification(consultation)); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Best effort; an orphaned blob is harmless.
	if previousPath != "" {
		if err := s.files.Delete(ctx, previousPath); err != nil {
			logger.Warn("failed to delete superseded proof image", "path", previousPath, "error", err)
		}
	}

	return &dto.PaymentReceiptResponse{
		ID:             receipt.ID,
		ConsultationID: receipt.ConsultationID,
		SubmittedAt:    receipt.SubmittedAt,
	}, nil
}

func (s *paymentService) ConfirmPayment(ctx context.Context, consultationID, lawyerID uint) error {
	consultation, err := s.consultationRepo.FindByID(consultationID)
	if err != nil {
		return apperrors.ErrNotFound(err, "consultation")
	}
	if consultation.LawyerID != lawyerID {
		return apperrors.ErrInsufficientPermissions
	}
	if consultation.Status != models.ConsultationUnpaid {
		return apperrors.ErrInvalidTransition(string(consultation.Status), string(models.ConsultationUpcoming))
	}

	if _, err := s.paymentRepo.FindByConsultation(consultationID); err != nil {
		return apperrors.ErrReceiptRequired
	}

	notifications := TransitionNotifications(consultation, models.ConsultationUpcoming, 0)
	err = s.consultationRepo.UpdateStatus(consultationID, models.ConsultationUnpaid, models.ConsultationUpcoming, notifications, nil)
	switch {
	case apperrors.Is(err, repositories.ErrStatusConflict):
		return apperrors.ErrConflict(err, "payment", "Consultation status changed concurrently, please retry")
	case err != nil:
		return apperrors.InternalError(err)
	}

	s.sendConfirmationEmail(consultation)
	return nil
}

func (s *paymentService) DenyPayment(ctx context.Context, consultationID, lawyerID uint) error {
	consultation, err := s.consultationRepo.FindByID(consultationID)
	if err != nil {
		return apperrors.ErrNotFound(err, "consultation")
	}
	if consultation.LawyerID != lawyerID {
		return apperrors.ErrInsufficientPermissions
	}

	receipt, err := s.paymentRepo.FindByConsultation(consultationID)
	if err != nil {
		return apperrors.ErrNotFound(err, "receipt")
	}

	if err := s.paymentRepo.DeleteWithNotification(consultationID, PaymentDeniedNotification(consultation)); err != nil {
		if apperrors.Is(err, repositories.ErrReceiptNotFound) {
			return apperrors.ErrNotFound(err, "receipt")
		}
		return apperrors.InternalError(err)
	}

	// Best effort; an orphaned blob is harmless.
	if err := s.files.Delete(ctx, receipt.ImagePath); err != nil {
		logger.Warn("failed to delete denied proof image", "path", receipt.ImagePath, "error", err)
	}

	return nil
}

func (s *paymentService) GetReceipt(ctx context.Context, consultationID, requesterID uint) (*dto.PaymentReceiptResponse, error) {
	receipt, err := s.findReceiptVisible(consultationID, requesterID)
	if err != nil {
		return nil, err
	}

	url, err := s.files.GetURL(ctx, receipt.ImagePath)
	if err != nil {
		url = ""
	}

	return &dto.PaymentReceiptResponse{
		ID:             receipt.ID,
		ConsultationID: receipt.ConsultationID,
		SubmittedAt:    receipt.SubmittedAt,
		ImageURL:       url,
	}, nil
}

func (s *paymentService) OpenProofImage(ctx context.Context, consultationID, requesterID uint) (io.ReadCloser, error) {
	receipt, err := s.findReceiptVisible(consultationID, requesterID)
	if err != nil {
		return nil, err
	}

	reader, err := s.files.Get(ctx, receipt.ImagePath)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reader, nil
}

func (s *paymentService) findReceiptVisible(consultationID, requesterID uint) (*models.PaymentReceipt, error) {
	receipt, err := s.paymentRepo.FindByConsultation(consultationID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "receipt")
	}
	if requesterID != receipt.ClientID && requesterID != receipt.LawyerID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return receipt, nil
}

func (s *paymentService) sendConfirmationEmail(consultation *models.Consultation) {
	if s.mail == nil {
		return
	}

	client, err := s.userRepo.FindByID(consultation.ClientID)
	if err != nil {
		return
	}

	if err := s.mail.SendPaymentConfirmed(client.Email, client.Name, consultation.ID); err != nil {
		logger.Warn("failed to send payment confirmation email", "consultation_id", consultation.ID, "error", err)
	}
}
