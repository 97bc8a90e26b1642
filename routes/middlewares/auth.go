package middlewares

import (
	"crypto/rsa"
	"encoding/base64"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
)

var (
	AuthzInvalidSession = "authz.invalid_session"
	JwtDecodeAndVerify  = "jwt.decode_and_verify"
)

// Auth struct represents parsed jwt information.
type Auth struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Role  string `json:"role"`

	jwt.StandardClaims
}

// Authenticate verifies RS256 bearer tokens against a base64-encoded PEM
// public key and stores the claims under the "CurrentAuth" local.
func Authenticate(publicKeyBase64 string) (fiber.Handler, error) {
	public_key_pem, err := base64.StdEncoding.DecodeString(publicKeyBase64)
	if err != nil {
		return nil, err
	}

	public_key, err := jwt.ParseRSAPublicKeyFromPEM(public_key_pem)
	if err != nil {
		return nil, err
	}

	return func(c *fiber.Ctx) error {
		return authenticate(c, public_key)
	}, nil
}

func authenticate(c *fiber.Ctx, public_key *rsa.PublicKey) error {
	var auth Auth

	token := c.Get("Authorization")

	if len(token) == 0 {
		return c.Status(401).JSON(fiber.Map{
			"errors": []string{AuthzInvalidSession},
		})
	}

	token = strings.Replace(token, "Bearer ", "", -1)

	_, err := jwt.ParseWithClaims(token, &auth, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return public_key, nil
	})

	if err != nil {
		return c.Status(401).JSON(fiber.Map{
			"errors": []string{JwtDecodeAndVerify},
		})
	}

	c.Locals("CurrentAuth", &auth)

	return c.Next()
}
