// seed aplica el esquema y carga los datos iniciales de TalentoPlus:
// el usuario administrador, cuatro departamentos y tres empleados de muestra.
//
// Uso: go run ./cmd/seed
// Es idempotente: si ya hay departamentos, solo garantiza el usuario admin.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentoplus/talento-api/internal/domain/entity"
	"github.com/talentoplus/talento-api/internal/infrastructure/postgres"
	"github.com/talentoplus/talento-api/pkg/config"
	"github.com/talentoplus/talento-api/pkg/logger"
)

const (
	adminEmail    = "admin@talentoplus.com"
	adminPassword = "Admin123!"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: "talento-seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.ApplyMigrations(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Msg("esquema aplicado")

	if err := seedAdmin(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear usuario admin")
	}

	var deptCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&deptCount); err != nil {
		log.Fatal().Err(err).Msg("verificar departamentos")
	}
	if deptCount > 0 {
		log.Info().Msg("la base ya tiene datos, se omite el seed")
		return
	}

	if err := seedData(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("cargar datos iniciales")
	}
	log.Info().Msg("seed completado")
}

// seedAdmin garantiza el usuario administrador.
func seedAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	var exists bool
	err := pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, adminEmail).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, first_name, last_name, role, email_confirmed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		uuid.New().String(), adminEmail, string(hash), "Admin", "User", entity.RoleAdmin, true, now,
	)
	return err
}

type seedEmployee struct {
	firstName, lastName, email, document string
	position                             string
	salary                               decimal.Decimal
	joinedMonthsAgo                      int
	status                               string
	education, profile, phone            string
	department                           string
}

// seedData inserta los departamentos y empleados de muestra.
func seedData(ctx context.Context, pool *pgxpool.Pool) error {
	deptIDs := make(map[string]int64)
	for _, name := range []string{"Technology", "Human Resources", "Sales", "Marketing"} {
		var id int64
		if err := pool.QueryRow(ctx, `INSERT INTO departments (name) VALUES ($1) RETURNING id`, name).Scan(&id); err != nil {
			return err
		}
		deptIDs[name] = id
	}

	employees := []seedEmployee{
		{
			firstName: "Alice", lastName: "Smith", email: "alice.smith@talentoplus.com",
			document: "1001", position: "Senior Developer", salary: decimal.NewFromInt(8000),
			joinedMonthsAgo: 24, status: entity.StatusActive,
			education: "Master", profile: "Full Stack Developer", phone: "555-0101",
			department: "Technology",
		},
		{
			firstName: "Bob", lastName: "Jones", email: "bob.jones@talentoplus.com",
			document: "1002", position: "HR Manager", salary: decimal.NewFromInt(6000),
			joinedMonthsAgo: 12, status: entity.StatusActive,
			education: "Bachelor", profile: "HR Specialist", phone: "555-0102",
			department: "Human Resources",
		},
		{
			firstName: "Charlie", lastName: "Brown", email: "charlie.brown@talentoplus.com",
			document: "1003", position: "Junior Developer", salary: decimal.NewFromInt(4000),
			joinedMonthsAgo: 1, status: entity.StatusVacation,
			education: "Bachelor", profile: "Backend Developer", phone: "555-0103",
			department: "Technology",
		},
	}

	for _, e := range employees {
		joinDate := time.Now().UTC().AddDate(0, -e.joinedMonthsAgo, 0)
		_, err := pool.Exec(ctx, `
			INSERT INTO employees (first_name, last_name, email, document_number, position, salary,
				join_date, status, education_level, professional_profile, contact_phone, department_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			e.firstName, e.lastName, e.email, e.document, e.position, e.salary,
			joinDate, e.status, e.education, e.profile, e.phone, deptIDs[e.department],
		)
		if err != nil {
			return err
		}
	}
	return nil
}
