package services

import (
	"os"
	"path/filepath"
	"testing"

	"restaurant-backend/entity"
	"restaurant-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Paneer Tikka":        "paneer_tikka",
		"  Veg  Fried Rice  ": "veg_fried_rice",
		"Gulab-Jamun!":        "gulab_jamun",
		"...":                 "",
		"":                    "",
		"Ice   Cream (2x)":    "ice_cream_2x",
		"MANGO juice":         "mango_juice",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slug(in), "input %q", in)
	}
}

func TestImagePathForMenuName(t *testing.T) {
	assert.Equal(t, "menu_items/chicken_biryani.jpg", ImagePathForMenuName("Chicken Biryani"))
	assert.Equal(t, "menu_items/veg_fried_rice.jpg", ImagePathForMenuName("Veg Fried Rice"))
	assert.Equal(t, "", ImagePathForMenuName("Masala Dosa"))
}

func TestEnsureMenuItemImages(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewMenuRepository(db)

	mediaDir := t.TempDir()
	dir := filepath.Join(mediaDir, "menu_items")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range []string{"paneer_tikka.jpg", "Mango Juice.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644))
	}

	matched := seedItem(t, db, "Paneer Tikka", entity.CategoryStarters, 20000, true)
	cased := seedItem(t, db, "Mango Juice", entity.CategoryBeverages, 9000, true)
	unmatched := seedItem(t, db, "Masala Dosa", entity.CategoryMainCourse, 15000, true)

	already := entity.MenuItem{Name: "Paneer Tikka Special", Category: entity.CategoryStarters,
		Price: 25000, IsAvailable: true, Image: "menu_items/custom.jpg"}
	require.NoError(t, db.Create(&already).Error)

	require.NoError(t, EnsureMenuItemImages(repo, mediaDir))

	var got entity.MenuItem
	require.NoError(t, db.First(&got, matched.ID).Error)
	assert.Equal(t, "menu_items/paneer_tikka.jpg", got.Image)

	// slugs are matched case- and punctuation-insensitively
	got = entity.MenuItem{}
	require.NoError(t, db.First(&got, cased.ID).Error)
	assert.Equal(t, "menu_items/Mango Juice.png", got.Image)

	got = entity.MenuItem{}
	require.NoError(t, db.First(&got, unmatched.ID).Error)
	assert.Equal(t, "", got.Image)

	// items that already carry an image are skipped
	got = entity.MenuItem{}
	require.NoError(t, db.First(&got, already.ID).Error)
	assert.Equal(t, "menu_items/custom.jpg", got.Image)
}

func TestEnsureMenuItemImagesMissingDirIsNoop(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewMenuRepository(db)
	seedItem(t, db, "Paneer Tikka", entity.CategoryStarters, 20000, true)

	assert.NoError(t, EnsureMenuItemImages(repo, filepath.Join(t.TempDir(), "nope")))
	assert.NoError(t, EnsureMenuItemImages(repo, ""))
}

func TestEnsureMenuItemImagesIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewMenuRepository(db)

	mediaDir := t.TempDir()
	dir := filepath.Join(mediaDir, "menu_items")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ice_cream.jpg"), []byte("img"), 0o644))

	item := seedItem(t, db, "Ice Cream", entity.CategoryDesserts, 10000, true)

	require.NoError(t, EnsureMenuItemImages(repo, mediaDir))
	require.NoError(t, EnsureMenuItemImages(repo, mediaDir))

	var got entity.MenuItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, "menu_items/ice_cream.jpg", got.Image)
}
