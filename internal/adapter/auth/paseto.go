package auth

import (
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/mcirstea/storefront/internal/adapter/config"
	"github.com/mcirstea/storefront/internal/core/domain"
	"github.com/mcirstea/storefront/internal/core/port"
)

const tokenDuration = 24 * time.Hour

type PasetoToken struct {
	parser *paseto.Parser
	key    *paseto.V4SymmetricKey
}

func New(conf *config.Token) (port.TokenService, error) {
	parser := paseto.NewParser()

	var key paseto.V4SymmetricKey
	if conf.SymmetricKey != "" {
		var err error
		key, err = paseto.V4SymmetricKeyFromHex(conf.SymmetricKey)
		if err != nil {
			return nil, err
		}
	} else {
		key = paseto.NewV4SymmetricKey()
	}

	s := PasetoToken{
		parser: &parser,
		key:    &key,
	}

	return &s, nil
}

func (p *PasetoToken) CreateToken(user *domain.User) (string, error) {
	token := paseto.NewToken()
	token.SetIssuedAt(time.Now())
	token.SetExpiration(time.Now().Add(tokenDuration))

	payload := port.TokenPayload{UserID: user.ID, Role: user.Role}
	err := token.Set("payload", payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(*p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(*p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get("payload", &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
