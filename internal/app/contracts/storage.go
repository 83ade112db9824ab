package contracts

import "context"

type ContentStorage interface {
	ReadObject(ctx context.Context, objectName string) ([]byte, error)
}
