package services

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"restaurant-backend/pkg/session"
	"restaurant-backend/repository"

	"gorm.io/gorm"
)

var (
	ErrInvalidItemID = errors.New("invalid item id")
	ErrItemNotFound  = errors.New("item not found")
)

// CartLine is the session payload for one chosen menu item. Price and
// Quantity are FlexInt so malformed session data degrades to zero instead of
// failing the request. Price is the snapshot taken when the line was created;
// later catalog edits do not reach existing carts.
type CartLine struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    session.FlexInt `json:"price"`
	Quantity session.FlexInt `json:"quantity"`
	ImageURL string          `json:"image_url"`
}

// CartLineView is a cleaned-up line handed to callers: positive quantity,
// coerced numbers, computed line total.
type CartLineView struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"image_url"`
	LineTotal int64  `json:"line_total"`
}

type CartService struct {
	Store session.Store
	Menu  *repository.MenuRepository
}

func NewCartService(store session.Store, menu *repository.MenuRepository) *CartService {
	return &CartService{Store: store, Menu: menu}
}

// load never fails: a missing or corrupt cart reads as empty.
func (s *CartService) load(ctx context.Context, sid string) map[string]CartLine {
	cart := map[string]CartLine{}
	_, _ = session.GetJSON(ctx, s.Store, sid, session.KeyCart, &cart)
	if cart == nil {
		cart = map[string]CartLine{}
	}
	return cart
}

func (s *CartService) save(ctx context.Context, sid string, cart map[string]CartLine) error {
	return session.SetJSON(ctx, s.Store, sid, session.KeyCart, cart)
}

// Increase adds one unit of the item, seeding a snapshot line from the
// catalog on first use. The item must resolve to an available catalog entry.
func (s *CartService) Increase(ctx context.Context, sid, itemID string) (quantity, cartCount int, err error) {
	pk, err := strconv.ParseUint(itemID, 10, 64)
	if err != nil {
		return 0, 0, ErrInvalidItemID
	}

	cart := s.load(ctx, sid)
	key := strconv.FormatUint(pk, 10)

	line, ok := cart[key]
	if !ok {
		item, err := s.Menu.GetAvailable(uint(pk))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrItemNotFound
		}
		if err != nil {
			return 0, 0, err
		}
		line = CartLine{
			ID:       item.ID,
			Name:     item.Name,
			Category: item.Category,
			Price:    session.FlexInt(item.Price),
			Quantity: 0,
			ImageURL: item.ImageURL,
		}
	}

	qty := line.Quantity.Int() + 1
	line.Quantity = session.FlexInt(qty)
	cart[key] = line

	if err := s.save(ctx, sid, cart); err != nil {
		return 0, 0, err
	}
	return qty, countOf(cart), nil
}

// Decrease drops one unit; at zero the line is removed entirely, not kept.
// Decreasing an absent line is a no-op reported as quantity 0.
func (s *CartService) Decrease(ctx context.Context, sid, itemID string) (quantity, cartCount int, err error) {
	pk, err := strconv.ParseUint(itemID, 10, 64)
	if err != nil {
		return 0, 0, ErrInvalidItemID
	}

	cart := s.load(ctx, sid)
	key := strconv.FormatUint(pk, 10)

	line, ok := cart[key]
	if !ok {
		return 0, countOf(cart), nil
	}

	qty := line.Quantity.Int() - 1
	if qty <= 0 {
		delete(cart, key)
		qty = 0
	} else {
		line.Quantity = session.FlexInt(qty)
		cart[key] = line
	}

	if err := s.save(ctx, sid, cart); err != nil {
		return 0, 0, err
	}
	return qty, countOf(cart), nil
}

func (s *CartService) Remove(ctx context.Context, sid, itemID string) (cartCount int, err error) {
	pk, err := strconv.ParseUint(itemID, 10, 64)
	if err != nil {
		return 0, ErrInvalidItemID
	}

	cart := s.load(ctx, sid)
	delete(cart, strconv.FormatUint(pk, 10))

	if err := s.save(ctx, sid, cart); err != nil {
		return 0, err
	}
	return countOf(cart), nil
}

// Totals returns the positive-quantity lines (ordered by item id) and their
// subtotal, computed from the snapshotted prices.
func (s *CartService) Totals(ctx context.Context, sid string) ([]CartLineView, int64, error) {
	cart := s.load(ctx, sid)

	views := make([]CartLineView, 0, len(cart))
	var subtotal int64
	for key, line := range cart {
		qty := line.Quantity.Int()
		if qty <= 0 {
			continue
		}
		id := line.ID
		if id == 0 {
			if pk, err := strconv.ParseUint(key, 10, 64); err == nil {
				id = uint(pk)
			}
		}
		price := line.Price.Int64()
		lineTotal := price * int64(qty)
		views = append(views, CartLineView{
			ID:        id,
			Name:      line.Name,
			Category:  line.Category,
			Price:     price,
			Quantity:  qty,
			ImageURL:  line.ImageURL,
			LineTotal: lineTotal,
		})
		subtotal += lineTotal
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views, subtotal, nil
}

func (s *CartService) Count(ctx context.Context, sid string) int {
	return countOf(s.load(ctx, sid))
}

func (s *CartService) Clear(ctx context.Context, sid string) error {
	return s.save(ctx, sid, map[string]CartLine{})
}

func countOf(cart map[string]CartLine) int {
	total := 0
	for _, line := range cart {
		if q := line.Quantity.Int(); q > 0 {
			total += q
		}
	}
	return total
}
