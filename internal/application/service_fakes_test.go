package application_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/freshpantry/stockroom/internal/domain"
	"github.com/freshpantry/stockroom/internal/ports"
	"github.com/google/uuid"
)

// fakeStock mirrors the persistence semantics the service depends on:
// upserts keyed by (name, owner), and adjustments that read the quantity,
// compute the new value, then write it in a second step. adjustGate, when
// set, runs between the read and the write so tests can interleave
// concurrent adjustments deterministically.
type fakeStock struct {
	mu         sync.Mutex
	byID       map[uuid.UUID]domain.Product
	adjustGate func()
	failUpsert error
}

func (f *fakeStock) seed(t *testing.T, typ, name string, quantity int, owner string) domain.Product {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	product := domain.Product{
		ProductID:  uuid.New(),
		Type:       typ,
		Name:       name,
		Quantity:   quantity,
		Owner:      owner,
		ExpiryDate: "2030-01-01",
		DateAdded:  "2026-09-01",
	}
	f.byID[product.ProductID] = product
	return product
}

func (f *fakeStock) list() []domain.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Product, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out
}

func (f *fakeStock) findByName(t *testing.T, name, owner string) domain.Product {
	t.Helper()
	for _, p := range f.list() {
		if p.Name == name && p.Owner == owner {
			return p
		}
	}
	t.Fatalf("no stock row for %s/%s", name, owner)
	return domain.Product{}
}

func (f *fakeStock) GetByID(_ context.Context, productID uuid.UUID) (domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	product, ok := f.byID[productID]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return product, nil
}

func (f *fakeStock) FindByID(_ context.Context, productID uuid.UUID) (domain.Product, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	product, ok := f.byID[productID]
	return product, ok, nil
}

func (f *fakeStock) UpsertAdd(_ context.Context, params ports.AddStockParams) (domain.Product, error) {
	if f.failUpsert != nil {
		return domain.Product{}, f.failUpsert
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, p := range f.byID {
		if p.Name == params.Name && p.Owner == params.Owner {
			p.Quantity += params.Quantity
			f.byID[id] = p
			return p, nil
		}
	}
	product := domain.Product{
		ProductID:  uuid.New(),
		Type:       params.Type,
		Name:       params.Name,
		Quantity:   params.Quantity,
		Owner:      params.Owner,
		ExpiryDate: params.ExpiryDate,
		DateAdded:  params.DateAdded,
	}
	f.byID[product.ProductID] = product
	return product, nil
}

func (f *fakeStock) AdjustQuantity(_ context.Context, productID uuid.UUID, delta int) (int64, error) {
	f.mu.Lock()
	product, ok := f.byID[productID]
	f.mu.Unlock()
	if !ok {
		return 0, domain.ErrNotFound
	}
	if f.adjustGate != nil {
		f.adjustGate()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	newQuantity := product.Quantity + delta
	if newQuantity <= 0 {
		if _, ok := f.byID[productID]; !ok {
			return 0, nil
		}
		delete(f.byID, productID)
		return 1, nil
	}
	current, ok := f.byID[productID]
	if !ok {
		return 0, nil
	}
	current.Quantity = newQuantity
	f.byID[productID] = current
	return 1, nil
}

func (f *fakeStock) Delete(_ context.Context, productID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[productID]; !ok {
		return 0, nil
	}
	delete(f.byID, productID)
	return 1, nil
}

func (f *fakeStock) ListAll(_ context.Context) ([]domain.Product, error) {
	return f.list(), nil
}

func (f *fakeStock) ListByOwner(_ context.Context, owner string) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, p := range f.list() {
		if p.Owner == owner {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeBasket struct {
	mu           sync.Mutex
	byID         map[uuid.UUID]domain.BasketItem
	failUpsert   error
	failDeleteOf uuid.UUID
}

func (f *fakeBasket) seed(t *testing.T, productID uuid.UUID, typ, name string, quantity int, owner string) domain.BasketItem {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	item := domain.BasketItem{
		BasketItemID: uuid.New(),
		ProductID:    productID,
		Type:         typ,
		Name:         name,
		Quantity:     quantity,
		Owner:        owner,
		ExpiryDate:   "2030-01-01",
		DateAdded:    "2026-09-01",
	}
	f.byID[item.BasketItemID] = item
	return item
}

func (f *fakeBasket) list() []domain.BasketItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.BasketItem, 0, len(f.byID))
	for _, item := range f.byID {
		out = append(out, item)
	}
	return out
}

func (f *fakeBasket) GetByID(_ context.Context, basketItemID uuid.UUID) (domain.BasketItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.byID[basketItemID]
	if !ok {
		return domain.BasketItem{}, domain.ErrNotFound
	}
	return item, nil
}

func (f *fakeBasket) UpsertAdd(_ context.Context, params ports.AddBasketParams) (domain.BasketItem, error) {
	if f.failUpsert != nil {
		return domain.BasketItem{}, f.failUpsert
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, item := range f.byID {
		if item.ProductID == params.ProductID {
			item.Quantity += params.Quantity
			f.byID[id] = item
			return item, nil
		}
	}
	item := domain.BasketItem{
		BasketItemID: uuid.New(),
		ProductID:    params.ProductID,
		Type:         params.Type,
		Name:         params.Name,
		Quantity:     params.Quantity,
		Owner:        params.Owner,
		ExpiryDate:   params.ExpiryDate,
		DateAdded:    params.DateAdded,
	}
	f.byID[item.BasketItemID] = item
	return item, nil
}

func (f *fakeBasket) AdjustQuantity(_ context.Context, basketItemID uuid.UUID, delta int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.byID[basketItemID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	item.Quantity += delta
	if item.Quantity <= 0 {
		delete(f.byID, basketItemID)
		return 1, nil
	}
	f.byID[basketItemID] = item
	return 1, nil
}

func (f *fakeBasket) Delete(_ context.Context, basketItemID uuid.UUID) (int64, error) {
	if f.failDeleteOf == basketItemID {
		return 0, fmt.Errorf("delete refused")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[basketItemID]; !ok {
		return 0, nil
	}
	delete(f.byID, basketItemID)
	return 1, nil
}

func (f *fakeBasket) DeleteAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	removed := int64(len(f.byID))
	f.byID = map[uuid.UUID]domain.BasketItem{}
	return removed, nil
}

func (f *fakeBasket) ListAll(_ context.Context) ([]domain.BasketItem, error) {
	return f.list(), nil
}

type fakeUsers struct {
	mu   sync.Mutex
	byID map[uuid.UUID]domain.User
}

func (f *fakeUsers) Create(_ context.Context, params ports.CreateUserParams) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Username == params.Username {
			return domain.User{}, domain.ErrConflict
		}
	}
	user := domain.User{
		UserID:       uuid.New(),
		Username:     params.Username,
		PasswordHash: params.PasswordHash,
		IsAdmin:      params.IsAdmin,
	}
	f.byID[user.UserID] = user
	return user, nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, userID uuid.UUID) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byID[userID]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

func (f *fakeUsers) Update(_ context.Context, params ports.UpdateUserParams) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byID[params.UserID]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	if params.Username != nil {
		user.Username = *params.Username
	}
	if params.PasswordHash != nil {
		user.PasswordHash = *params.PasswordHash
	}
	if params.IsAdmin != nil {
		user.IsAdmin = *params.IsAdmin
	}
	f.byID[params.UserID] = user
	return user, nil
}

func (f *fakeUsers) Delete(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[userID]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, userID)
	return nil
}

func (f *fakeUsers) ListAll(_ context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

type fakeMessages struct {
	mu       sync.Mutex
	messages []domain.Message
}

func (f *fakeMessages) Create(_ context.Context, message domain.Message) (domain.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	message.MessageID = uuid.New()
	f.messages = append(f.messages, message)
	return message, nil
}

func (f *fakeMessages) ListAll(_ context.Context) ([]domain.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Message, len(f.messages))
	copy(out, f.messages)
	return out, nil
}

type fakeRevocations struct {
	mu      sync.Mutex
	revoked map[uuid.UUID]bool
}

func (f *fakeRevocations) MarkRevoked(_ context.Context, sessionID uuid.UUID, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[sessionID] = true
	return nil
}

func (f *fakeRevocations) IsRevoked(_ context.Context, sessionID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.revoked[sessionID], nil
}

type fakeSigner struct {
	mu     sync.Mutex
	serial int
	tokens map[string]ports.AuthClaims
}

func (f *fakeSigner) Sign(claims ports.AuthClaims) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.serial++
	token := fmt.Sprintf("token-%d", f.serial)
	f.tokens[token] = claims
	return token, nil
}

func (f *fakeSigner) ParseAndValidate(token string) (ports.AuthClaims, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	claims, ok := f.tokens[token]
	if !ok {
		return ports.AuthClaims{}, domain.ErrUnauthorized
	}
	return claims, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return domain.ErrUnauthorized
	}
	return nil
}
