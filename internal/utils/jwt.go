package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-pass-vault/models"
)

// GenerateJWTToken creates a signed HMAC-SHA256 identity token.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - username:        the user name, omitted when empty
//
// issuer, userID, tokenDuration and signKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("identity", "user-1", "alice", time.Hour, "secret")
func GenerateJWTToken(issuer, userID, username string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID, Username: usernameOr(username, userID)}, nil
}

// ValidateAndParseJWTToken validates an identity token and extracts its
// claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "identity")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userID == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       userID,
		Username:     usernameOr(claims.Username, userID),
	}, nil
}

// ParseUnverifiedJWTToken reads the claims of an identity token without
// checking its signature. The client uses it to learn its own identity; the
// token is verified by the service it is presented to.
func ParseUnverifiedJWTToken(tokenString string) (models.Token, error) {
	claims := &models.IdentityClaims{}
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred parsing token: %w", err)
	}
	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       claims.Subject,
		Username:     usernameOr(claims.Username, claims.Subject),
	}, nil
}

// GenerateOwnershipProof signs a proof that owner owns profileID. The proof
// carries [models.OwnershipProofAudience] and expires after duration.
func GenerateOwnershipProof(issuer, profileID, owner string, duration time.Duration, signKey string) (string, error) {
	if issuer == "" || profileID == "" || owner == "" || duration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating ownership proof")
	}

	now := time.Now()
	claims := &models.OwnershipClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   profileID,
			Audience:  jwt.ClaimStrings{models.OwnershipProofAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Owner: owner,
	}

	proof, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing ownership proof: %w", err)
	}
	return proof, nil
}

// ValidateOwnershipProof verifies a proof produced by GenerateOwnershipProof
// and returns its claims. The audience must be
// [models.OwnershipProofAudience].
func ValidateOwnershipProof(proof, signKey, issuer string) (models.OwnershipClaims, error) {
	claims := &models.OwnershipClaims{}
	_, err := jwt.ParseWithClaims(proof, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithAudience(models.OwnershipProofAudience),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.OwnershipClaims{}, fmt.Errorf("error occurred validating ownership proof: %w", err)
	}
	if claims.Subject == "" || claims.Owner == "" {
		return models.OwnershipClaims{}, errors.New("ownership proof has no subject or owner")
	}
	return *claims, nil
}

func usernameOr(username, subject string) string {
	if username == "" {
		return subject
	}
	return username
}
