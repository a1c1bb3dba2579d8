package port

import "github.com/MikeRez0/waiterdesk/internal/core/domain"

type TokenPayload struct {
	WaiterID   uint64
	WaiterName string
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(waiter *domain.Waiter) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
