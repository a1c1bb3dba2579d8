package auth

import (
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"github.com/MikeRez0/waiterdesk/internal/core/port"
)

const payloadClaim = "payload"

type PasetoToken struct {
	parser   *paseto.Parser
	key      *paseto.V4SymmetricKey
	lifetime time.Duration
}

func New(lifetime time.Duration) (port.TokenService, error) {
	parser := paseto.NewParser()
	key := paseto.NewV4SymmetricKey()

	s := PasetoToken{
		parser:   &parser,
		key:      &key,
		lifetime: lifetime,
	}

	return &s, nil
}

func (p *PasetoToken) CreateToken(waiter *domain.Waiter) (string, error) {
	token := paseto.NewToken()
	token.SetIssuedAt(time.Now())
	token.SetExpiration(time.Now().Add(p.lifetime))

	payload := port.TokenPayload{WaiterID: waiter.ID, WaiterName: waiter.Name}
	err := token.Set(payloadClaim, payload)
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
	err = parsedToken.Get(payloadClaim, &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
