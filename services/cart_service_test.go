package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"restaurant-backend/entity"
	"restaurant-backend/pkg/session"
	"restaurant-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Category{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.PaymentOTP{}, &entity.ContactMessage{}, &entity.User{},
	))
	return db
}

func seedItem(t *testing.T, db *gorm.DB, name, category string, price int64, available bool) entity.MenuItem {
	t.Helper()
	item := entity.MenuItem{Name: name, Category: category, Price: price, IsAvailable: available}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func newCartService(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	store := session.NewMemoryStore(time.Hour)
	return NewCartService(store, repository.NewMenuRepository(db)), db
}

func TestCartIncreaseDecreaseNetting(t *testing.T) {
	ctx := context.Background()
	svc, db := newCartService(t)
	item := seedItem(t, db, "Paneer Tikka", entity.CategoryStarters, 20000, true)
	id := strconv.Itoa(int(item.ID))

	for i := 1; i <= 3; i++ {
		qty, _, err := svc.Increase(ctx, "s1", id)
		require.NoError(t, err)
		assert.Equal(t, i, qty)
	}
	qty, _, err := svc.Decrease(ctx, "s1", id)
	require.NoError(t, err)
	assert.Equal(t, 2, qty)

	// net <= 0 removes the line entirely
	for i := 0; i < 5; i++ {
		qty, _, err = svc.Decrease(ctx, "s1", id)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, qty)

	items, subtotal, err := svc.Totals(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, subtotal)
}

func TestCartIncreaseUnknownItem(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartService(t)

	_, _, err := svc.Increase(ctx, "s1", "999")
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, _, err = svc.Increase(ctx, "s1", "not-a-number")
	assert.ErrorIs(t, err, ErrInvalidItemID)
}

func TestCartIncreaseUnavailableItem(t *testing.T) {
	ctx := context.Background()
	svc, db := newCartService(t)
	item := seedItem(t, db, "Off Menu", entity.CategoryStarters, 10000, false)

	_, _, err := svc.Increase(ctx, "s1", strconv.Itoa(int(item.ID)))
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCartDecreaseAbsentLineIsNoop(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartService(t)

	qty, count, err := svc.Decrease(ctx, "s1", "42")
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
	assert.Equal(t, 0, count)
}

func TestCartTotalsUseSnapshotPrice(t *testing.T) {
	ctx := context.Background()
	svc, db := newCartService(t)
	item := seedItem(t, db, "Chicken Biryani", entity.CategoryMainCourse, 26000, true)
	id := strconv.Itoa(int(item.ID))

	_, _, err := svc.Increase(ctx, "s1", id)
	require.NoError(t, err)
	_, _, err = svc.Increase(ctx, "s1", id)
	require.NoError(t, err)

	// catalog price change must not reach the cart already populated
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", item.ID).Update("price", 99000).Error)

	items, subtotal, err := svc.Totals(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(26000), items[0].Price)
	assert.Equal(t, int64(52000), subtotal)
}

func TestCartCount(t *testing.T) {
	ctx := context.Background()
	svc, db := newCartService(t)

	// N distinct items incremented once each -> count N
	for i := 0; i < 4; i++ {
		item := seedItem(t, db, "Item "+strconv.Itoa(i), entity.CategoryStarters, 1000, true)
		_, _, err := svc.Increase(ctx, "s1", strconv.Itoa(int(item.ID)))
		require.NoError(t, err)
	}
	assert.Equal(t, 4, svc.Count(ctx, "s1"))
}

func TestCartRemove(t *testing.T) {
	ctx := context.Background()
	svc, db := newCartService(t)
	item := seedItem(t, db, "Gulab Jamun", entity.CategoryDesserts, 12000, true)
	id := strconv.Itoa(int(item.ID))

	_, _, err := svc.Increase(ctx, "s1", id)
	require.NoError(t, err)
	_, _, err = svc.Increase(ctx, "s1", id)
	require.NoError(t, err)

	count, err := svc.Remove(ctx, "s1", id)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	items, _, err := svc.Totals(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartMalformedSessionDataCoercesToZero(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartService(t)
	store := svc.Store

	// a line with garbage quantity/price, written by hand
	raw := []byte(`{"7":{"id":7,"name":"Mystery","category":"Starters","price":"oops","quantity":"bad","image_url":""}}`)
	require.NoError(t, store.Set(ctx, "s1", session.KeyCart, raw))

	items, subtotal, err := svc.Totals(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items) // qty coerced to 0 -> treated as absent
	assert.Zero(t, subtotal)
	assert.Equal(t, 0, svc.Count(ctx, "s1"))
}

func TestCartSessionIsolation(t *testing.T) {
	ctx := context.Background()
	svc, db := newCartService(t)
	item := seedItem(t, db, "Cool Drink", entity.CategoryBeverages, 6000, true)
	id := strconv.Itoa(int(item.ID))

	_, _, err := svc.Increase(ctx, "alice", id)
	require.NoError(t, err)

	assert.Equal(t, 1, svc.Count(ctx, "alice"))
	assert.Equal(t, 0, svc.Count(ctx, "bob"))
}
