package postgres

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riseagainX/orm/internal/domain"
)

var promocodeQueryPattern = queryPattern(
	"SELECT promotion_id, promocode FROM promocodes",
	"WHERE promotion_id = ANY($1)",
	"status = $2",
	"start_date <= CURRENT_DATE",
	"expiry_date >= CURRENT_DATE",
	"(usage_type = $3 OR (usage_type = $4 AND blasted = $5))",
	"ORDER BY id",
)

func TestPromocodeRepository_ListRedeemable(t *testing.T) {
	mock := newMock(t)
	repo := NewPromocodeRepository(mock)

	ids := []int64{7, 9}
	mock.ExpectQuery(promocodeQueryPattern).
		WithArgs(ids, "VALID", "M", "S", "Y").
		WillReturnRows(pgxmock.NewRows([]string{"promotion_id", "promocode"}).
			AddRow(int64(7), "SAVE15").
			AddRow(int64(9), "GIFT5").
			AddRow(int64(7), "SAVE15B"))

	got, err := repo.ListRedeemable(context.Background(), ids)
	require.NoError(t, err)
	assert.Equal(t, []domain.Promocode{
		{PromotionID: 7, Code: "SAVE15"},
		{PromotionID: 9, Code: "GIFT5"},
		{PromotionID: 7, Code: "SAVE15B"},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPromocodeRepository_ListRedeemable_NoRows(t *testing.T) {
	mock := newMock(t)
	repo := NewPromocodeRepository(mock)

	mock.ExpectQuery(promocodeQueryPattern).
		WithArgs([]int64{7}, "VALID", "M", "S", "Y").
		WillReturnRows(pgxmock.NewRows([]string{"promotion_id", "promocode"}))

	got, err := repo.ListRedeemable(context.Background(), []int64{7})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPromocodeRepository_ListRedeemable_EmptyIDsSkipsQuery(t *testing.T) {
	mock := newMock(t)
	repo := NewPromocodeRepository(mock)

	got, err := repo.ListRedeemable(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPromocodeRepository_ListRedeemable_QueryError(t *testing.T) {
	mock := newMock(t)
	repo := NewPromocodeRepository(mock)

	mock.ExpectQuery(promocodeQueryPattern).
		WithArgs([]int64{7}, "VALID", "M", "S", "Y").
		WillReturnError(errors.New("timeout"))

	_, err := repo.ListRedeemable(context.Background(), []int64{7})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list redeemable promocodes")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPromocodeRepository_ListRedeemable_RowError(t *testing.T) {
	mock := newMock(t)
	repo := NewPromocodeRepository(mock)

	mock.ExpectQuery(promocodeQueryPattern).
		WithArgs([]int64{7, 9}, "VALID", "M", "S", "Y").
		WillReturnRows(pgxmock.NewRows([]string{"promotion_id", "promocode"}).
			AddRow(int64(7), "SAVE15").
			AddRow(int64(9), "GIFT5").
			RowError(1, errors.New("network blip")))

	got, err := repo.ListRedeemable(context.Background(), []int64{7, 9})
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorContains(t, err, "network blip")
	assert.NoError(t, mock.ExpectationsWereMet())
}
