package requestdata

import (
	"context"

	"github.com/google/uuid"

	types "github.com/annolab/tenselab-backend/internal/domain"
)

type requestDataKey struct{}

// RequestData carries the authenticated caller through the request context.
// Role is the role baked into the access token at login; role changes made
// after login are not visible until the next login.
type RequestData struct {
	TokenString string
	UserID      uuid.UUID
	Role        types.Role
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey{}).(*RequestData); ok {
		return rd
	}
	return nil
}
