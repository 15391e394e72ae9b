package tr

import (
	"context"
	"testing"

	"github.com/DRSN-tech/products-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxFromCtxMissing(t *testing.T) {
	_, err := TxFromCtx(context.Background())
	assert.ErrorIs(t, err, e.ErrTransactionNotFound)
}

func TestTxFromCtxWrongType(t *testing.T) {
	ctx := WithTx(context.Background(), "not a tx")

	_, err := TxFromCtx(ctx)
	assert.ErrorIs(t, err, e.ErrTransactionNotFound)
}

func TestTxFromCtxRoundTrip(t *testing.T) {
	var want pgx.Tx = fakeTx{}
	ctx := WithTx(context.Background(), want)

	got, err := TxFromCtx(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// fakeTx удовлетворяет pgx.Tx за счёт встраивания интерфейса.
type fakeTx struct {
	pgx.Tx
}
