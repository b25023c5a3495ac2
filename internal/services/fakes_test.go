package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeSeminarRepo is an in-memory SeminarRepository for tests.
type fakeSeminarRepo struct {
	byID   map[string]*domain.Seminar
	nextID int
	err    error // if set, every method returns this error
}

func newFakeSeminarRepo() *fakeSeminarRepo {
	return &fakeSeminarRepo{
		byID:   make(map[string]*domain.Seminar),
		nextID: 1,
	}
}

func (f *fakeSeminarRepo) Create(ctx context.Context, s *domain.Seminar) error {
	if f.err != nil {
		return f.err
	}
	s.ID = fmt.Sprintf("sem-%d", f.nextID)
	f.nextID++
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSeminarRepo) GetByID(ctx context.Context, id string) (*domain.Seminar, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSeminarRepo) Update(ctx context.Context, s *domain.Seminar) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[s.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSeminarRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeSeminarRepo) ListAll(ctx context.Context) ([]*domain.Seminar, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Seminar, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSeminarRepo) ListByHall(ctx context.Context, hallName string) ([]*domain.Seminar, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Seminar, 0)
	for _, s := range f.byID {
		if strings.EqualFold(s.HallName, hallName) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSeminarRepo) ListByDepartmentAndEmail(ctx context.Context, department, email string, params domain.PaginationParams) ([]*domain.Seminar, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	out := make([]*domain.Seminar, 0)
	for _, s := range f.byID {
		if strings.EqualFold(s.Department, department) && strings.EqualFold(s.Email, email) {
			out = append(out, s)
		}
	}
	return out, len(out), nil
}

func (f *fakeSeminarRepo) ListByStatus(ctx context.Context, status string) ([]*domain.Seminar, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Seminar, 0)
	for _, s := range f.byID {
		if strings.EqualFold(s.Status, status) {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeHallRepo is an in-memory HallRepository for tests.
type fakeHallRepo struct {
	byID   map[string]*domain.Hall
	nextID int
}

func newFakeHallRepo(names ...string) *fakeHallRepo {
	f := &fakeHallRepo{byID: make(map[string]*domain.Hall), nextID: 1}
	for _, name := range names {
		_ = f.Create(context.Background(), domain.NewHall(name, 100))
	}
	return f
}

func (f *fakeHallRepo) Create(ctx context.Context, h *domain.Hall) error {
	h.ID = fmt.Sprintf("hall-%d", f.nextID)
	f.nextID++
	f.byID[h.ID] = h
	return nil
}

func (f *fakeHallRepo) GetByID(ctx context.Context, id string) (*domain.Hall, error) {
	if h, ok := f.byID[id]; ok {
		return h, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeHallRepo) GetByName(ctx context.Context, name string) (*domain.Hall, error) {
	for _, h := range f.byID {
		if strings.EqualFold(h.Name, name) {
			return h, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeHallRepo) ListAll(ctx context.Context) ([]*domain.Hall, error) {
	out := make([]*domain.Hall, 0, len(f.byID))
	for _, h := range f.byID {
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeHallRepo) Update(ctx context.Context, h *domain.Hall) error {
	if _, ok := f.byID[h.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[h.ID] = h
	return nil
}

func (f *fakeHallRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	byID   map[string]*domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	for _, existing := range f.byID {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrDuplicateEmail
		}
	}
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.nextID++
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) ListAll(ctx context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, email, hash, salt string) error {
	u, err := f.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.Salt = salt
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeOtpRepo is an in-memory OtpRepository for tests.
type fakeOtpRepo struct {
	codes map[string]time.Time // email+":"+codeHash -> expiry
}

func newFakeOtpRepo() *fakeOtpRepo {
	return &fakeOtpRepo{codes: make(map[string]time.Time)}
}

func (f *fakeOtpRepo) Create(ctx context.Context, email, codeHash string, expiresAt time.Time) error {
	f.codes[email+":"+codeHash] = expiresAt
	return nil
}

func (f *fakeOtpRepo) Check(ctx context.Context, email, codeHash string) (bool, error) {
	expiry, ok := f.codes[email+":"+codeHash]
	if !ok || time.Now().After(expiry) {
		return false, nil
	}
	return true, nil
}

func (f *fakeOtpRepo) Consume(ctx context.Context, email, codeHash string) (bool, error) {
	key := email + ":" + codeHash
	expiry, ok := f.codes[key]
	if !ok || time.Now().After(expiry) {
		return false, nil
	}
	delete(f.codes, key)
	return true, nil
}

// fakeHasher avoids bcrypt cost in service tests.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }
func (fakeHasher) Hash(salt, password string) (string, error) {
	return salt + "|" + password, nil
}
func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != salt+"|"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

// fakeIssuer issues predictable tokens.
type fakeIssuer struct{}

func (fakeIssuer) Issue(user *domain.User, expiry time.Duration) (string, error) {
	return "token-" + user.ID, nil
}

// fakeVerifier accepts tokens minted by fakeIssuer and maps them back to the
// seeded user.
type fakeVerifier struct {
	users *fakeUserRepo
}

func (f fakeVerifier) Verify(token string) (*domain.TokenClaims, error) {
	id, ok := strings.CutPrefix(token, "token-")
	if !ok {
		return nil, fmt.Errorf("malformed token")
	}
	u, err := f.users.GetByID(context.Background(), id)
	if err != nil {
		return nil, fmt.Errorf("unknown subject")
	}
	return &domain.TokenClaims{
		UserID:     u.ID,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
	}, nil
}

// fakeEmailService records what was sent.
type fakeEmailService struct {
	otps     []*domain.OtpEmailData
	statuses []*domain.BookingStatusEmailData
	welcomes []*domain.OperatorWelcomeEmailData
	err      error
}

func (f *fakeEmailService) SendOtp(ctx context.Context, data *domain.OtpEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.otps = append(f.otps, data)
	return nil
}

func (f *fakeEmailService) SendBookingStatus(ctx context.Context, data *domain.BookingStatusEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.statuses = append(f.statuses, data)
	return nil
}

func (f *fakeEmailService) SendOperatorWelcome(ctx context.Context, data *domain.OperatorWelcomeEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.welcomes = append(f.welcomes, data)
	return nil
}

// fakeOperatorRepo is an in-memory HallOperatorRepository for tests.
type fakeOperatorRepo struct {
	byID   map[string]*domain.HallOperator
	nextID int
}

func newFakeOperatorRepo() *fakeOperatorRepo {
	return &fakeOperatorRepo{byID: make(map[string]*domain.HallOperator), nextID: 1}
}

func (f *fakeOperatorRepo) Create(ctx context.Context, op *domain.HallOperator) error {
	for _, existing := range f.byID {
		if strings.EqualFold(existing.HeadEmail, op.HeadEmail) {
			return domain.ErrDuplicateEmail
		}
	}
	op.ID = fmt.Sprintf("op-%d", f.nextID)
	f.nextID++
	f.byID[op.ID] = op
	return nil
}

func (f *fakeOperatorRepo) GetByID(ctx context.Context, id string) (*domain.HallOperator, error) {
	if op, ok := f.byID[id]; ok {
		return op, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeOperatorRepo) GetByEmail(ctx context.Context, email string) (*domain.HallOperator, error) {
	for _, op := range f.byID {
		if strings.EqualFold(op.HeadEmail, email) {
			return op, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeOperatorRepo) ListAll(ctx context.Context) ([]*domain.HallOperator, error) {
	out := make([]*domain.HallOperator, 0, len(f.byID))
	for _, op := range f.byID {
		out = append(out, op)
	}
	return out, nil
}

func (f *fakeOperatorRepo) ListByHallName(ctx context.Context, hallName string) ([]*domain.HallOperator, error) {
	out := make([]*domain.HallOperator, 0)
	for _, op := range f.byID {
		for _, name := range op.HallNames {
			if strings.EqualFold(name, hallName) {
				out = append(out, op)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeOperatorRepo) Update(ctx context.Context, op *domain.HallOperator) error {
	if _, ok := f.byID[op.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[op.ID] = op
	return nil
}

func (f *fakeOperatorRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeLogService records audit actions.
type fakeLogService struct {
	actions []string
}

func (f *fakeLogService) Record(ctx context.Context, email, action, detail string) {
	f.actions = append(f.actions, action)
}

func (f *fakeLogService) ListAll(ctx context.Context, params domain.PaginationParams) ([]*domain.LogEntry, int, error) {
	return nil, 0, nil
}

func (f *fakeLogService) ListByEmail(ctx context.Context, email string, params domain.PaginationParams) ([]*domain.LogEntry, int, error) {
	return nil, 0, nil
}
