package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const TokenTypeAccess = "access"

// Claims is the identity carried by an access token.
type Claims struct {
	EmployeeID string
	Email      string
	Name       string
	Role       string
}

type Service interface {
	GenerateAccessToken(claims Claims) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	issuer                    string
	audience                  string
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey, issuer, audience, accessTokenExpirationTime string) (Service, error) {
	expiration, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, err
	}
	return &JWTService{
		issuer:                    issuer,
		audience:                  audience,
		accessTokenExpirationTime: expiration,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil,
			jwt.WithAcceptableSkew(30*time.Second),
			jwt.WithIssuer(issuer),
			jwt.WithAudience(audience),
		),
	}, nil
}

func (j *JWTService) GenerateAccessToken(claims Claims) (token string, expiresAt int64, err error) {
	now := time.Now()
	expiresAt = now.Add(j.accessTokenExpirationTime).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"sub":         claims.EmployeeID,
		"jti":         uuid.NewString(),
		"iss":         j.issuer,
		"aud":         j.audience,
		"iat":         now.Unix(),
		"exp":         expiresAt,
		"employee_id": claims.EmployeeID,
		"email":       claims.Email,
		"name":        claims.Name,
		"role":        claims.Role,
		"type":        TokenTypeAccess,
	})
	return tokenString, expiresAt, err
}

var ErrMissingClaims = errors.New("token claims missing")

// ClaimsFromContext reads the verified token placed in ctx by jwtauth.Verifier.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, err
	}

	employeeID, _ := claims["employee_id"].(string)
	role, _ := claims["role"].(string)
	if employeeID == "" || role == "" {
		return Claims{}, ErrMissingClaims
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	return Claims{
		EmployeeID: employeeID,
		Email:      email,
		Name:       name,
		Role:       role,
	}, nil
}
