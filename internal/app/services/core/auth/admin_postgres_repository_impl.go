package auth

import (
	"context"
	"database/sql"
	"sync"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/app/models"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/exceptions"
	"valivio-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type adminPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	adminPostgresRepositoryInstance contracts.AdminRepository
	onceAdminPostgresRepository     sync.Once
)

func NewAdminPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.AdminRepository {
	onceAdminPostgresRepository.Do(func() {
		instance := &adminPostgresRepository{
			DB:  db,
			Log: logger,
		}
		adminPostgresRepositoryInstance = instance
	})
	return adminPostgresRepositoryInstance
}

func (repo *adminPostgresRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("adminPostgresRepository.FindByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdminEmailKey, email),
	)
	return repo.findOne(ctx, "adminPostgresRepository.FindByEmail", queries.GetAdminByEmail, email)
}

func (repo *adminPostgresRepository) FindByID(ctx context.Context, adminID int64) (*models.AdminUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("adminPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAdminIDKey, adminID),
	)
	return repo.findOne(ctx, "adminPostgresRepository.FindByID", queries.GetAdminByID, adminID)
}

func (repo *adminPostgresRepository) Upsert(ctx context.Context, email, passwordHash string) (*models.AdminUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("adminPostgresRepository.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdminEmailKey, email),
	)

	var admin models.AdminUser
	err := repo.DB.QueryRowContext(ctx, queries.UpsertAdmin, email, passwordHash).
		Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		repo.Log.Error("adminPostgresRepository.Upsert error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	repo.Log.Info("adminPostgresRepository.Upsert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAdminIDKey, admin.ID),
	)
	return &admin, nil
}

func (repo *adminPostgresRepository) findOne(ctx context.Context, caller, query string, arg interface{}) (*models.AdminUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var admin models.AdminUser
	err := repo.DB.QueryRowContext(ctx, query, arg).
		Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt, &admin.UpdatedAt)
	if err == sql.ErrNoRows {
		repo.Log.Warn(caller+" no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error(caller+" error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info(caller+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAdminIDKey, admin.ID),
	)
	return &admin, nil
}
