package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentoplus/talento-api/internal/application/dto"
	"github.com/talentoplus/talento-api/internal/application/ports"
	"github.com/talentoplus/talento-api/internal/domain"
	"github.com/talentoplus/talento-api/internal/domain/entity"
	"github.com/talentoplus/talento-api/internal/domain/repository"
	"github.com/talentoplus/talento-api/pkg/jwt"
)

// DefaultPassword contraseña fija asignada en el autoregistro.
// El flujo de "definir contraseña" no existe todavía; hasta entonces toda
// cuenta nueva entra con esta credencial.
const DefaultPassword = "DefaultPass123!"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int // por defecto 10080 (7 días); única vía de invalidación
	Issuer     string
}

// UseCase casos de uso de autenticación: autoregistro y login.
type UseCase struct {
	userRepo     repository.UserRepository
	employeeRepo repository.EmployeeRepository
	mailer       ports.Mailer
	jwtCfg       JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(
	userRepo repository.UserRepository,
	employeeRepo repository.EmployeeRepository,
	mailer ports.Mailer,
	jwtCfg JWTConfig,
) *UseCase {
	return &UseCase{userRepo: userRepo, employeeRepo: employeeRepo, mailer: mailer, jwtCfg: jwtCfg}
}

// Register crea la cuenta de acceso (password fija por defecto, rol employee)
// y el registro de empleado enlazado, y envía exactamente un correo de
// bienvenida. El correo se intenta una sola vez; si falla, el error se
// propaga aunque las filas ya quedaron persistidas (sin saga ni rollback).
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         entity.RoleEmployee,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	emp := &entity.Employee{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		DocumentNumber: in.DocumentNumber,
		ContactPhone:   in.ContactPhone,
		Position:       in.Position,
		EducationLevel: in.EducationLevel,
		DepartmentID:   in.DepartmentID,
		JoinDate:       time.Now().UTC(),
		Status:         entity.StatusActive,
		UserID:         &user.ID,
	}
	if err := uc.employeeRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	if err := uc.mailer.Send(in.Email, "Welcome to TalentoPlus",
		"Your registration was successful. You can now login."); err != nil {
		return nil, fmt.Errorf("enviar correo de bienvenida: %w", err)
	}

	return &dto.RegisterResponse{
		Message:    "Registration successful",
		UserID:     user.ID,
		EmployeeID: emp.ID,
	}, nil
}

// Login verifica email/password y genera un JWT con sub, email y role.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
