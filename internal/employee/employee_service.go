package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	employeeerrors "dayflow/internal/employee/errors"
	"dayflow/internal/shared/contextutil"
	"dayflow/internal/shared/ids"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// passwordAlphabet omits visually ambiguous characters (0/O, 1/l/I).
const passwordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

const passwordLength = 8

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (CreatedEmployeeResponse, error)
	GetAll(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
	ValidateCredentials(ctx context.Context, loginID, password string) (Employee, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (CreatedEmployeeResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	logger.Debug("create employee requested",
		zap.String("name", req.Name),
		zap.String("email", req.Email),
	)

	loginID, err := GenerateLoginID(req.Name, req.JoinDate)
	if err != nil {
		logger.Warn("create employee invalid joinDate", zap.String("joinDate", req.JoinDate))
		return CreatedEmployeeResponse{}, err
	}
	password := GeneratePassword()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("create employee begin tx failed", zap.Error(err))
		return CreatedEmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}
	e := &Employee{
		ID:             ids.New(ids.PrefixEmployee),
		LoginID:        loginID,
		Password:       password,
		Name:           req.Name,
		Email:          req.Email,
		Role:           RoleEmployee,
		Department:     req.Department,
		Position:       req.Position,
		Avatar:         avatarFor(req.Name, req.Photo),
		JoinDate:       req.JoinDate,
		Phone:          req.Phone,
		Address:        req.Address,
		Photo:          req.Photo,
		Resume:         req.Resume,
		Skills:         skills,
		Certifications: []string{},
	}

	if err := qtx.Create(ctx, e); err != nil {
		logger.Error("create employee persist failed", zap.Error(err))
		return CreatedEmployeeResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		logger.Error("create employee commit failed", zap.Error(err))
		return CreatedEmployeeResponse{}, err
	}

	logger.Info("create employee success",
		zap.String("employee_id", e.ID),
		zap.String("login_id", loginID),
	)

	return CreatedEmployeeResponse{
		ID:       e.ID,
		Employee: e.Sanitized(),
		LoginID:  loginID,
		Password: password,
	}, nil
}

func (s *service) GetAll(ctx context.Context) ([]Employee, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		logger.Error("get all employees failed", zap.Error(err))
		return nil, err
	}
	for i := range emps {
		emps[i] = emps[i].Sanitized()
	}
	return emps, nil
}

func (s *service) GetByID(ctx context.Context, id string) (Employee, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Employee{}, employeeerrors.ErrEmployeeNotFound
		}
		logger.Error("get employee by id failed", zap.Error(err))
		return Employee{}, err
	}
	return e.Sanitized(), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	logger.Debug("update employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("update employee begin tx failed", zap.Error(err))
		return Employee{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Employee{}, employeeerrors.ErrEmployeeNotFound
		}
		logger.Error("update employee fetch existing failed", zap.Error(err))
		return Employee{}, err
	}

	applyPatch(e, req)

	if err := qtx.Update(ctx, e); err != nil {
		logger.Error("update employee persist failed", zap.Error(err))
		return Employee{}, err
	}
	if err := tx.Commit(); err != nil {
		logger.Error("update employee commit failed", zap.Error(err))
		return Employee{}, err
	}

	logger.Info("update employee success", zap.String("employee_id", id))
	return e.Sanitized(), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	logger := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		return err
	}

	// No cascade: historical attendance and leave rows keep their userId even
	// once it dangles.
	if err := qtx.Delete(ctx, id); err != nil {
		logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) ValidateCredentials(ctx context.Context, loginID, password string) (Employee, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	e, err := s.repo.FindByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Debug("login unknown loginId", zap.String("login_id", loginID))
			return Employee{}, employeeerrors.ErrInvalidLoginID
		}
		logger.Error("login lookup failed", zap.Error(err))
		return Employee{}, err
	}
	if e.Password != password {
		logger.Debug("login wrong password", zap.String("login_id", loginID))
		return Employee{}, employeeerrors.ErrIncorrectPassword
	}
	return e.Sanitized(), nil
}

// applyPatch merges a partial update over the existing record: a set pointer
// wins, except that id, loginId and password ignore empty replacement values.
func applyPatch(e *Employee, req UpdateEmployeeRequest) {
	if req.ID != nil && *req.ID != "" {
		e.ID = *req.ID
	}
	if req.LoginID != nil && *req.LoginID != "" {
		e.LoginID = *req.LoginID
	}
	if req.Password != nil && *req.Password != "" {
		e.Password = *req.Password
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if req.Avatar != nil {
		e.Avatar = *req.Avatar
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.Address != nil {
		e.Address = *req.Address
	}
	if req.Photo != nil {
		e.Photo = *req.Photo
	}
	if req.Resume != nil {
		e.Resume = *req.Resume
	}
	if req.Skills != nil {
		e.Skills = *req.Skills
	}
	if req.Certifications != nil {
		e.Certifications = *req.Certifications
	}
	if req.Salary != nil {
		e.Salary = req.Salary
	}
	if req.PrivateInfo != nil {
		e.PrivateInfo = *req.PrivateInfo
	}
}

// GenerateLoginID builds "OI" + up to 4 uppercase name initials + the 4-digit
// join year + a 4-digit random serial. Collisions are not checked against
// existing records.
func GenerateLoginID(name, joinDate string) (string, error) {
	t, err := time.Parse("2006-01-02", joinDate)
	if err != nil {
		return "", employeeerrors.ErrInvalidJoinDate
	}

	var initials []rune
	for _, tok := range strings.Fields(name) {
		initials = append(initials, unicode.ToUpper([]rune(tok)[0]))
	}
	if len(initials) > 4 {
		initials = initials[:4]
	}

	serial := 1000 + rand.Intn(9000)
	return fmt.Sprintf("OI%s%d%d", string(initials), t.Year(), serial), nil
}

// GeneratePassword returns an 8-character random password.
func GeneratePassword() string {
	b := make([]byte, passwordLength)
	for i := range b {
		b[i] = passwordAlphabet[rand.Intn(len(passwordAlphabet))]
	}
	return string(b)
}

func avatarFor(name, photo string) string {
	if photo != "" {
		return photo
	}
	seed := strings.Join(strings.Fields(name), "")
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + seed
}
