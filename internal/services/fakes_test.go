package services

import (
	"bytes"
	"context"
	"io"
	"sort"
	"time"

	"lawlink_backend/internal/models"
	"lawlink_backend/internal/repositories"
)

// In-memory repository fakes. They mirror the repository contracts closely
// enough to exercise the service logic, including the guarded status update
// and the atomic notification inserts.

type fakeState struct {
	consultations map[uint]*models.Consultation
	receipts      map[uint]*models.PaymentReceipt // by consultation id
	notes         map[uint]*models.LawyerNote     // by consultation id
	notifications []*models.Notification
	users         map[uint]*models.User
	availability  map[uint]*models.Availability // by lawyer id
	affiliations  map[uint]*models.SecretaryAffiliation
	nextID        uint
}

func newFakeState() *fakeState {
	return &fakeState{
		consultations: map[uint]*models.Consultation{},
		receipts:      map[uint]*models.PaymentReceipt{},
		notes:         map[uint]*models.LawyerNote{},
		users:         map[uint]*models.User{},
		availability:  map[uint]*models.Availability{},
		affiliations:  map[uint]*models.SecretaryAffiliation{},
		nextID:        1,
	}
}

func (s *fakeState) id() uint {
	id := s.nextID
	s.nextID++
	return id
}

// notificationsFor filters the recorded notifications by receiver and
// purpose, insertion order preserved.
func (s *fakeState) notificationsFor(receiverID uint, purpose models.NotificationPurpose) []*models.Notification {
	var out []*models.Notification
	for _, n := range s.notifications {
		if n.ReceiverID == receiverID && n.Purpose == purpose {
			out = append(out, n)
		}
	}
	return out
}

// --- consultation repo ---

type fakeConsultationRepo struct{ s *fakeState }

func (r *fakeConsultationRepo) CreateWithNotification(c *models.Consultation, n *models.Notification) error {
	c.ID = r.s.id()
	c.CreatedAt = time.Now()
	r.s.consultations[c.ID] = c
	n.ConsultationID = c.ID
	r.s.notifications = append(r.s.notifications, n)
	return nil
}

func (r *fakeConsultationRepo) FindByID(id uint) (*models.Consultation, error) {
	c, ok := r.s.consultations[id]
	if !ok {
		return nil, repositories.ErrConsultationNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *fakeConsultationRepo) FindByClient(clientID uint, limit, offset int) ([]models.Consultation, int64, error) {
	return r.list(func(c *models.Consultation) bool { return c.ClientID == clientID }, limit, offset)
}

func (r *fakeConsultationRepo) FindByLawyer(lawyerID uint, limit, offset int) ([]models.Consultation, int64, error) {
	return r.list(func(c *models.Consultation) bool { return c.LawyerID == lawyerID }, limit, offset)
}

func (r *fakeConsultationRepo) list(match func(*models.Consultation) bool, limit, offset int) ([]models.Consultation, int64, error) {
	var all []models.Consultation
	for _, c := range r.s.consultations {
		if match(c) {
			all = append(all, *c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	if offset > len(all) {
		offset = len(all)
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (r *fakeConsultationRepo) UpdateStatus(id uint, from, to models.ConsultationStatus, notifications []*models.Notification, note *models.LawyerNote) error {
	c, ok := r.s.consultations[id]
	if !ok {
		return repositories.ErrConsultationNotFound
	}
	if c.Status != from {
		return repositories.ErrStatusConflict
	}

	c.Status = to
	r.s.notifications = append(r.s.notifications, notifications...)
	if note != nil {
		if _, exists := r.s.notes[id]; !exists {
			note.ID = r.s.id()
		}
		r.s.notes[id] = note
	}
	return nil
}

func (r *fakeConsultationRepo) UpdateSchedule(id uint, date time.Time, timeOfDay string, notifications []*models.Notification) error {
	c, ok := r.s.consultations[id]
	if !ok {
		return repositories.ErrConsultationNotFound
	}
	c.Date = date
	c.Time = timeOfDay
	r.s.notifications = append(r.s.notifications, notifications...)
	return nil
}

func (r *fakeConsultationRepo) CompleteOverdue(before time.Time) ([]uint, error) {
	var ids []uint
	for _, c := range r.s.consultations {
		if c.Status == models.ConsultationUpcoming && c.Date.Before(before) {
			c.Status = models.ConsultationCompleted
			if _, exists := r.s.notes[c.ID]; !exists {
				r.s.notes[c.ID] = &models.LawyerNote{
					BaseModel:      models.BaseModel{ID: r.s.id()},
					ConsultationID: c.ID,
				}
			}
			ids = append(ids, c.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// --- payment repo ---

type fakePaymentRepo struct{ s *fakeState }

func (r *fakePaymentRepo) SaveWithNotification(receipt *models.PaymentReceipt, n *models.Notification) error {
	receipt.ID = r.s.id()
	r.s.receipts[receipt.ConsultationID] = receipt
	r.s.notifications = append(r.s.notifications, n)
	return nil
}

func (r *fakePaymentRepo) FindByConsultation(consultationID uint) (*models.PaymentReceipt, error) {
	receipt, ok := r.s.receipts[consultationID]
	if !ok {
		return nil, repositories.ErrReceiptNotFound
	}
	clone := *receipt
	return &clone, nil
}

func (r *fakePaymentRepo) DeleteWithNotification(consultationID uint, n *models.Notification) error {
	if _, ok := r.s.receipts[consultationID]; !ok {
		return repositories.ErrReceiptNotFound
	}
	delete(r.s.receipts, consultationID)
	r.s.notifications = append(r.s.notifications, n)
	return nil
}

// --- notification repo ---

type fakeNotificationRepo struct{ s *fakeState }

func (r *fakeNotificationRepo) Create(n *models.Notification) error {
	n.ID = r.s.id()
	r.s.notifications = append(r.s.notifications, n)
	return nil
}

func (r *fakeNotificationRepo) FindByReceiver(receiverID uint, purposes []models.NotificationPurpose, criteria repositories.NotificationCriteria) ([]models.Notification, int64, error) {
	if len(purposes) == 0 {
		return nil, 0, nil
	}

	allowed := map[models.NotificationPurpose]bool{}
	for _, p := range purposes {
		allowed[p] = true
	}

	var out []models.Notification
	for _, n := range r.s.notifications {
		if n.ReceiverID != receiverID || !allowed[n.Purpose] {
			continue
		}
		if criteria.UnreadOnly && n.Status == models.NotificationRead {
			continue
		}
		out = append(out, *n)
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) FindByID(id uint) (*models.Notification, error) {
	for _, n := range r.s.notifications {
		if n.ID == id {
			clone := *n
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) MarkAsRead(id uint) error {
	for _, n := range r.s.notifications {
		if n.ID == id {
			n.Status = models.NotificationRead
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) UnreadCount(receiverID uint, purposes []models.NotificationPurpose) (int64, error) {
	if len(purposes) == 0 {
		return 0, nil
	}

	allowed := map[models.NotificationPurpose]bool{}
	for _, p := range purposes {
		allowed[p] = true
	}

	var count int64
	for _, n := range r.s.notifications {
		if n.ReceiverID == receiverID && allowed[n.Purpose] && n.Status != models.NotificationRead {
			count++
		}
	}
	return count, nil
}

// --- availability repo ---

type fakeAvailabilityRepo struct{ s *fakeState }

func (r *fakeAvailabilityRepo) FindByLawyer(lawyerID uint) (*models.Availability, error) {
	av, ok := r.s.availability[lawyerID]
	if !ok {
		return nil, repositories.ErrAvailabilityNotFound
	}
	clone := *av
	return &clone, nil
}

func (r *fakeAvailabilityRepo) Upsert(av *models.Availability) error {
	if existing, ok := r.s.availability[av.LawyerID]; ok {
		av.ID = existing.ID
	} else {
		av.ID = r.s.id()
	}
	r.s.availability[av.LawyerID] = av
	return nil
}

// --- note repo ---

type fakeNoteRepo struct{ s *fakeState }

func (r *fakeNoteRepo) FindByConsultation(consultationID uint) (*models.LawyerNote, error) {
	note, ok := r.s.notes[consultationID]
	if !ok {
		return nil, repositories.ErrNoteNotFound
	}
	clone := *note
	return &clone, nil
}

// --- user repo ---

type fakeUserRepo struct{ s *fakeState }

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	user.ID = r.s.id()
	r.s.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByRole(role models.UserRole, limit, offset int) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range r.s.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, int64(len(out)), nil
}

// --- affiliation repo ---

type fakeAffiliationRepo struct{ s *fakeState }

func (r *fakeAffiliationRepo) CreateWithNotification(a *models.SecretaryAffiliation, n *models.Notification) error {
	for _, existing := range r.s.affiliations {
		if existing.SecretaryID == a.SecretaryID && existing.LawyerID == a.LawyerID &&
			(existing.WorkStatus == models.AffiliationPending || existing.WorkStatus == models.AffiliationApproved) {
			return repositories.ErrAffiliationExists
		}
	}
	a.ID = r.s.id()
	a.CreatedAt = time.Now()
	r.s.affiliations[a.ID] = a
	r.s.notifications = append(r.s.notifications, n)
	return nil
}

func (r *fakeAffiliationRepo) FindByID(id uint) (*models.SecretaryAffiliation, error) {
	a, ok := r.s.affiliations[id]
	if !ok {
		return nil, repositories.ErrAffiliationNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *fakeAffiliationRepo) FindBySecretaryAndLawyer(secretaryID, lawyerID uint) (*models.SecretaryAffiliation, error) {
	var latest *models.SecretaryAffiliation
	for _, a := range r.s.affiliations {
		if a.SecretaryID == secretaryID && a.LawyerID == lawyerID {
			if latest == nil || a.CreatedAt.After(latest.CreatedAt) {
				latest = a
			}
		}
	}
	if latest == nil {
		return nil, repositories.ErrAffiliationNotFound
	}
	clone := *latest
	return &clone, nil
}

func (r *fakeAffiliationRepo) FindByLawyer(lawyerID uint) ([]models.SecretaryAffiliation, error) {
	var out []models.SecretaryAffiliation
	for _, a := range r.s.affiliations {
		if a.LawyerID == lawyerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAffiliationRepo) UpdateStatusWithNotification(id uint, status models.AffiliationStatus, n *models.Notification) error {
	a, ok := r.s.affiliations[id]
	if !ok || a.WorkStatus != models.AffiliationPending {
		return repositories.ErrAffiliationNotFound
	}
	a.WorkStatus = status
	r.s.notifications = append(r.s.notifications, n)
	return nil
}

// --- storage ---

type fakeStorage struct {
	objects map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.objects[path] = data
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := f.objects[path]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(f.objects, path)
	return nil
}

func (f *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "/files/" + path, nil
}

// --- email ---

type fakeMailer struct {
	paymentConfirmed     []uint // consultation ids
	affiliationsAccepted []string
}

func (f *fakeMailer) SendPaymentConfirmed(to, name string, consultationID uint) error {
	f.paymentConfirmed = append(f.paymentConfirmed, consultationID)
	return nil
}

func (f *fakeMailer) SendAffiliationAccepted(to, name string) error {
	f.affiliationsAccepted = append(f.affiliationsAccepted, to)
	return nil
}

// --- harness ---

type testEnv struct {
	state *fakeState

	consultations ConsultationService
	payments      PaymentService
	notifications NotificationService
	availability  AvailabilityService
	affiliations  AffiliationService
	authService   AuthService

	files *fakeStorage
	mail  *fakeMailer
}

func newTestEnv() *testEnv {
	s := newFakeState()

	consultationRepo := &fakeConsultationRepo{s: s}
	paymentRepo := &fakePaymentRepo{s: s}
	notificationRepo := &fakeNotificationRepo{s: s}
	availabilityRepo := &fakeAvailabilityRepo{s: s}
	noteRepo := &fakeNoteRepo{s: s}
	userRepo := &fakeUserRepo{s: s}
	affiliationRepo := &fakeAffiliationRepo{s: s}

	files := newFakeStorage()
	mail := &fakeMailer{}

	return &testEnv{
		state: s,
		consultations: NewConsultationService(
			consultationRepo, availabilityRepo, affiliationRepo, paymentRepo, noteRepo, userRepo,
		),
		payments:      NewPaymentService(paymentRepo, consultationRepo, userRepo, files, mail),
		notifications: NewNotificationService(notificationRepo),
		availability:  NewAvailabilityService(availabilityRepo, userRepo),
		affiliations:  NewAffiliationService(affiliationRepo, userRepo, mail),
		authService:   NewAuthService(userRepo),
		files:         files,
		mail:          mail,
	}
}

func (e *testEnv) auth() AuthService { return e.authService }

// seed helpers

func (e *testEnv) addUser(role models.UserRole, rate float64) *models.User {
	u := &models.User{
		Name:             string(role) + " user",
		Email:            string(rune('a'+len(e.state.users))) + "@example.com",
		Role:             role,
		ConsultationRate: rate,
	}
	u.ID = e.state.id()
	e.state.users[u.ID] = u
	return u
}

func (e *testEnv) addConsultation(clientID, lawyerID uint, status models.ConsultationStatus, paymentMode models.PaymentMode, date time.Time) *models.Consultation {
	c := &models.Consultation{
		ClientID:      clientID,
		LawyerID:      lawyerID,
		Category:      "Family Law",
		Date:          date,
		Time:          "09:00",
		DurationHours: 1,
		Fee:           500,
		Mode:          models.ModeInPerson,
		PaymentMode:   paymentMode,
		Status:        status,
	}
	c.ID = e.state.id()
	e.state.consultations[c.ID] = c
	return c
}

func (e *testEnv) addReceipt(consultationID, clientID, lawyerID uint) *models.PaymentReceipt {
	receipt := &models.PaymentReceipt{
		ConsultationID: consultationID,
		ClientID:       clientID,
		LawyerID:       lawyerID,
		ImagePath:      "receipts/test",
		SubmittedAt:    time.Now(),
	}
	receipt.ID = e.state.id()
	e.state.receipts[consultationID] = receipt
	return receipt
}

func (e *testEnv) addAffiliation(secretaryID, lawyerID uint, status models.AffiliationStatus) *models.SecretaryAffiliation {
	a := &models.SecretaryAffiliation{
		SecretaryID: secretaryID,
		LawyerID:    lawyerID,
		WorkStatus:  status,
	}
	a.ID = e.state.id()
	a.CreatedAt = time.Now()
	e.state.affiliations[a.ID] = a
	return a
}
