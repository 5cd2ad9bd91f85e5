package accountrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gosalon/internal/domain"
	"gosalon/internal/errors"
	"gosalon/internal/pkg/database"
	"gosalon/internal/pkg/logger"
)

const accountColumns = `id, cedula, full_name, address, phone, email, password_hash, role, status,
	registered_at, activation_code, activation_code_created_at, recovery_code, recovery_code_created_at,
	failed_logins, locked_until`

// AccountRepository implementa a persistência de contas no PostgreSQL.
type AccountRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewAccountRepository cria e retorna uma nova instância do Repositório de Contas.
func NewAccountRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *AccountRepository {
	return &AccountRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// Create insere uma nova conta. Violações dos índices únicos viram ConflictError.
func (r *AccountRepository) Create(ctx context.Context, a domain.Account) error {
	r.logger.Debug("Iniciando Create no repositório de contas.", map[string]interface{}{"email": a.Email})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	activation, activationAt := codeArgs(a.ActivationCode)
	recovery, recoveryAt := codeArgs(a.RecoveryCode)

	query := `INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.DB.ExecContext(ctxTimeout, query,
		a.ID, a.Cedula, a.FullName, a.Address, a.Phone, a.Email, a.PasswordHash, a.Role, a.Status,
		a.RegisteredAt, activation, activationAt, recovery, recoveryAt, a.FailedLogins, nullTime(a.LockedUntil),
	)
	if err != nil {
		if database.IsUniqueViolation(err, "") {
			r.logger.Info("Cédula ou email já cadastrado.", map[string]interface{}{"email": a.Email})
			return errors.NewConflictError("Ya existe una cuenta con la cédula o el email ingresado.")
		}
		r.logger.Error("Falha ao inserir conta no DB.", err)
		return errors.NewDBError("Falha ao criar conta", err)
	}

	r.logger.Info("Conta criada com sucesso.", map[string]interface{}{"id": a.ID})
	return nil
}

// FindByID busca uma conta pelo ID, em qualquer estado.
func (r *AccountRepository) FindByID(ctx context.Context, id domain.ID) (domain.Account, error) {
	r.logger.Debug("Iniciando FindByID no repositório de contas.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	a, err := scanAccount(r.DB.QueryRowContext(ctxTimeout, query, id))
	if err == sql.ErrNoRows {
		return domain.Account{}, errors.NewNotFoundError(fmt.Sprintf("La cuenta %s no existe.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar conta no DB.", err)
		return domain.Account{}, errors.NewDBError("Falha ao buscar conta", err)
	}
	return a, nil
}

// FindActiveByEmail busca a conta não eliminada com o email informado.
func (r *AccountRepository) FindActiveByEmail(ctx context.Context, email string) (domain.Account, error) {
	r.logger.Debug("Iniciando FindActiveByEmail no repositório de contas.", map[string]interface{}{"email": email})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1 AND status <> $2`

	a, err := scanAccount(r.DB.QueryRowContext(ctxTimeout, query, email, domain.AccountDeleted))
	if err == sql.ErrNoRows {
		return domain.Account{}, errors.NewNotFoundError(fmt.Sprintf("No existe una cuenta con el email %s.", email))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar conta por email no DB.", err)
		return domain.Account{}, errors.NewDBError("Falha ao buscar conta por email", err)
	}
	return a, nil
}

// ExistsActiveByCedula indica se há conta não eliminada com a cédula.
func (r *AccountRepository) ExistsActiveByCedula(ctx context.Context, cedula string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE cedula = $1 AND status <> $2)`, cedula)
}

// ExistsActiveByEmail indica se há conta não eliminada com o email.
func (r *AccountRepository) ExistsActiveByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1 AND status <> $2)`, email)
}

func (r *AccountRepository) exists(ctx context.Context, query, value string) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var found bool
	if err := r.DB.QueryRowContext(ctxTimeout, query, value, domain.AccountDeleted).Scan(&found); err != nil {
		r.logger.Error("Falha ao verificar unicidade da conta.", err)
		return false, errors.NewDBError("Falha ao verificar conta", err)
	}
	return found, nil
}

// Update grava todos os campos mutáveis da conta.
func (r *AccountRepository) Update(ctx context.Context, a domain.Account) error {
	r.logger.Debug("Iniciando Update no repositório de contas.", map[string]interface{}{"id": a.ID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	activation, activationAt := codeArgs(a.ActivationCode)
	recovery, recoveryAt := codeArgs(a.RecoveryCode)

	query := `
		UPDATE accounts SET
			cedula = $2, full_name = $3, address = $4, phone = $5, email = $6, password_hash = $7,
			role = $8, status = $9, activation_code = $10, activation_code_created_at = $11,
			recovery_code = $12, recovery_code_created_at = $13, failed_logins = $14, locked_until = $15
		WHERE id = $1`

	result, err := r.DB.ExecContext(ctxTimeout, query,
		a.ID, a.Cedula, a.FullName, a.Address, a.Phone, a.Email, a.PasswordHash,
		a.Role, a.Status, activation, activationAt, recovery, recoveryAt, a.FailedLogins, nullTime(a.LockedUntil),
	)
	if err != nil {
		if database.IsUniqueViolation(err, "") {
			return errors.NewConflictError("Ya existe una cuenta con la cédula o el email ingresado.")
		}
		r.logger.Error("Falha ao atualizar conta no DB.", err)
		return errors.NewDBError("Falha ao atualizar conta", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("La cuenta %s no existe.", a.ID))
	}

	r.logger.Info("Conta atualizada.", map[string]interface{}{"id": a.ID, "status": a.Status})
	return nil
}

func scanAccount(row *sql.Row) (domain.Account, error) {
	var (
		a                                    domain.Account
		activation, recovery                 sql.NullString
		activationAt, recoveryAt, lockedTill sql.NullTime
	)

	err := row.Scan(
		&a.ID, &a.Cedula, &a.FullName, &a.Address, &a.Phone, &a.Email, &a.PasswordHash, &a.Role, &a.Status,
		&a.RegisteredAt, &activation, &activationAt, &recovery, &recoveryAt, &a.FailedLogins, &lockedTill,
	)
	if err != nil {
		return domain.Account{}, err
	}

	if activation.Valid {
		a.ActivationCode = &domain.VerificationCode{Code: activation.String, CreatedAt: activationAt.Time}
	}
	if recovery.Valid {
		a.RecoveryCode = &domain.VerificationCode{Code: recovery.String, CreatedAt: recoveryAt.Time}
	}
	if lockedTill.Valid {
		t := lockedTill.Time
		a.LockedUntil = &t
	}
	return a, nil
}

func codeArgs(c *domain.VerificationCode) (sql.NullString, sql.NullTime) {
	if c == nil {
		return sql.NullString{}, sql.NullTime{}
	}
	return sql.NullString{String: c.Code, Valid: true}, sql.NullTime{Time: c.CreatedAt, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
