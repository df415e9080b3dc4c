package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

const (
	RoleStoreManager    = "store_manager"
	RoleRegionalManager = "regional_manager"
)

type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

// User is the caller a verified token belongs to.
type User struct {
	ID   int64
	Role string
}

// CanApprove reports whether the user may approve, fulfill or cancel orders.
func (u User) CanApprove() bool {
	return u.Role == RoleRegionalManager
}

// BuildJWTString signs a session token. Tokens are normally issued by the
// identity service; this is used by tests and local tooling.
func BuildJWTString(user User, secret []byte) (string, error) {

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{},

		UserID: user.ID,
		Role:   user.Role,
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GetUser(tokenString string, secret []byte) (User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
	if err != nil {
		return User{}, err
	}

	if !token.Valid {
		return User{}, fmt.Errorf("token invalid")
	}
	if claims.UserID <= 0 {
		return User{}, fmt.Errorf("token has no user")
	}

	return User{ID: claims.UserID, Role: claims.Role}, nil
}
