package jwtmanager

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"valivio-service/internal/app/config"
	"valivio-service/internal/app/models"
	"valivio-service/internal/pkg/constvars"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JWTManager issues and verifies the HS256 admin session tokens.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type adminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, errors.New("JWT_SECRET is empty")
	}
	if cfg.TokenTTL() <= 0 {
		return nil, fmt.Errorf("token lifetime must be positive, got %s", cfg.TokenTTL())
	}

	return &JWTManager{
		log:    log,
		secret: []byte(secret),
		ttl:    cfg.TokenTTL(),
		now:    time.Now,
	}, nil
}

// CreateToken signs a token for admin with sub, email, jti, iat and exp set.
func (j *JWTManager) CreateToken(ctx context.Context, admin *models.AdminUser) (string, *models.AdminClaims, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Info("JWTManager.CreateToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if admin == nil || admin.ID <= 0 {
		return "", nil, errors.New("admin is required")
	}

	now := j.now().UTC().Truncate(time.Second)
	expiresAt := now.Add(j.ttl)
	tokenID := uuid.NewString()

	claims := adminClaims{
		Email: admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(admin.ID, 10),
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", nil, err
	}

	return signed, &models.AdminClaims{
		AdminID:   admin.ID,
		Email:     admin.Email,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

// VerifyToken checks signature, algorithm and expiry. It does not consult
// the denylist.
func (j *JWTManager) VerifyToken(ctx context.Context, token string) (*models.AdminClaims, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Info("JWTManager.VerifyToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if strings.TrimSpace(token) == "" {
		return nil, errors.New("token is required")
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, t.Header["alg"])
		}
		return j.secret, nil
	}

	var claims adminClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := parser.ParseWithClaims(token, &claims, keyFunc)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.ExpiresAt == nil || claims.ID == "" {
		return nil, errors.New("token is not valid")
	}

	adminID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || adminID <= 0 {
		return nil, fmt.Errorf("invalid subject %q", claims.Subject)
	}

	return &models.AdminClaims{
		AdminID:   adminID,
		Email:     claims.Email,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
