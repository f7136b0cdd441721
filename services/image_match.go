package services

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"restaurant-backend/repository"
)

// imageNameMap maps a keyword found in a menu item name to a bundled sample
// image, used when seeding sample data.
var imageNameMap = []struct{ key, filename string }{
	{"paneer", "paneer_tikka.jpg"},
	{"biryani", "chicken_biryani.jpg"},
	{"mango", "mango_juice.jpg"},
	{"cool", "cool_drink.jpg"},
	{"gulab", "gulab_jamun.jpg"},
	{"ice", "ice_cream.jpg"},
	{"manchuria", "veg_manchuria.jpg"},
	{"fried rice", "veg_fried_rice.jpg"},
	{"chocolate", "chocolate_lava_cake.jpg"},
}

// ImagePathForMenuName returns the sample image for a name by keyword, or ""
// when no keyword matches.
func ImagePathForMenuName(name string) string {
	value := strings.ToLower(name)
	for _, e := range imageNameMap {
		if strings.Contains(value, e.key) {
			return "menu_items/" + e.filename
		}
	}
	return ""
}

// Slug normalizes a name for filename matching: lowercase, runs of
// non-alphanumeric characters collapse to a single underscore, no leading or
// trailing underscores.
func Slug(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	var b strings.Builder
	prevUnderscore := false
	for _, ch := range value {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			b.WriteRune(ch)
			prevUnderscore = false
		} else if !prevUnderscore {
			b.WriteByte('_')
			prevUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}

// EnsureMenuItemImages pairs items that lack an image with files found under
// <mediaDir>/menu_items by slug. First file wins per slug; items that already
// have an image are left alone, so the pass is idempotent. A missing
// directory is a no-op. Runs once at startup.
func EnsureMenuItemImages(menu *repository.MenuRepository, mediaDir string) error {
	if mediaDir == "" {
		return nil
	}
	dir := filepath.Join(mediaDir, "menu_items")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	fileMap := map[string]string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		base := strings.TrimSuffix(name, filepath.Ext(name))
		slug := Slug(base)
		if slug == "" {
			continue
		}
		if _, ok := fileMap[slug]; !ok {
			fileMap[slug] = name
		}
	}

	items, err := menu.List()
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.Image != "" {
			continue
		}
		slug := Slug(item.Name)
		if slug == "" {
			continue
		}
		filename, ok := fileMap[slug]
		if !ok {
			continue
		}
		if err := menu.SetImage(item.ID, "menu_items/"+filename); err != nil {
			return err
		}
	}
	return nil
}
