package contracts

import "context"

type TextExtractor interface {
	ExtractText(ctx context.Context, document []byte) (string, error)
}
