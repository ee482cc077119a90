package invitation

import (
	"context"
	"sync"

	"github.com/campaignhub/campaignhub/internal/apiserver/database"
	"gorm.io/gorm"
)

// memDB is a mutex-guarded in-memory Database. Transaction holds the lock
// for the whole callback, so each accept attempt observes and mutates state
// atomically while still racing with the others for the lock. Calls made
// with the transaction's context skip re-locking.
type memDB struct {
	mu          sync.Mutex
	accounts    map[string]*database.Account
	users       map[string]*database.User
	invitations map[string]*database.Invitation
}

var _ database.Database = (*memDB)(nil)

type memTxKey struct{}

func newMemDB() *memDB {
	return &memDB{
		accounts:    make(map[string]*database.Account),
		users:       make(map[string]*database.User),
		invitations: make(map[string]*database.Invitation),
	}
}

func (m *memDB) lock(ctx context.Context) func() {
	if ctx.Value(memTxKey{}) != nil {
		return func() {}
	}
	m.mu.Lock()
	return m.mu.Unlock
}

func (m *memDB) Close() error { return nil }

func (m *memDB) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(context.WithValue(ctx, memTxKey{}, struct{}{}))
}

func (m *memDB) CreateAccount(ctx context.Context, account *database.Account) error {
	defer m.lock(ctx)()
	m.accounts[account.ID] = account
	return nil
}

func (m *memDB) GetAccount(ctx context.Context, id string) (*database.Account, error) {
	defer m.lock(ctx)()
	if acc, ok := m.accounts[id]; ok {
		cp := *acc
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memDB) GetAccountByName(ctx context.Context, name string) (*database.Account, error) {
	defer m.lock(ctx)()
	for _, acc := range m.accounts {
		if acc.Name == name {
			cp := *acc
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memDB) UpdateAccount(ctx context.Context, account *database.Account) error {
	defer m.lock(ctx)()
	m.accounts[account.ID] = account
	return nil
}

func (m *memDB) CreateUser(ctx context.Context, user *database.User) error {
	defer m.lock(ctx)()
	m.users[user.ID] = user
	return nil
}

func (m *memDB) GetUser(ctx context.Context, id string) (*database.User, error) {
	defer m.lock(ctx)()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memDB) GetUserByEmail(ctx context.Context, email string) (*database.User, error) {
	defer m.lock(ctx)()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memDB) ListUsersByAccount(ctx context.Context, accountID string) ([]*database.User, error) {
	defer m.lock(ctx)()
	var out []*database.User
	for _, u := range m.users {
		if u.AccountID == accountID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memDB) UpdateUser(ctx context.Context, user *database.User) error {
	defer m.lock(ctx)()
	m.users[user.ID] = user
	return nil
}

func (m *memDB) DeleteUser(ctx context.Context, accountID, id string) error {
	defer m.lock(ctx)()
	if u, ok := m.users[id]; ok && u.AccountID == accountID {
		delete(m.users, id)
	}
	return nil
}

func (m *memDB) CreateInvitation(ctx context.Context, inv *database.Invitation) error {
	defer m.lock(ctx)()
	m.invitations[inv.ID] = inv
	return nil
}

func (m *memDB) GetInvitationByToken(ctx context.Context, token string) (*database.Invitation, error) {
	defer m.lock(ctx)()
	for _, inv := range m.invitations {
		if inv.Token == token {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memDB) ListInvitationsByAccount(ctx context.Context, accountID string) ([]*database.Invitation, error) {
	defer m.lock(ctx)()
	var out []*database.Invitation
	for _, inv := range m.invitations {
		if inv.AccountID == accountID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memDB) UpdateInvitationStatus(ctx context.Context, id string, from, to database.InvitationStatus) (bool, error) {
	defer m.lock(ctx)()
	inv, ok := m.invitations[id]
	if !ok || inv.Status != from {
		return false, nil
	}
	inv.Status = to
	return true, nil
}

func (m *memDB) CreateTag(context.Context, *database.Tag) error { return nil }
func (m *memDB) GetTag(context.Context, string, string) (*database.Tag, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *memDB) GetTagByName(context.Context, string, string) (*database.Tag, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *memDB) ListTagsByAccount(context.Context, string) ([]*database.Tag, error) {
	return nil, nil
}
func (m *memDB) UpdateTag(context.Context, *database.Tag) error { return nil }
func (m *memDB) DeleteTag(context.Context, string, string) error { return nil }
func (m *memDB) CreateUtmLink(context.Context, *database.UtmLink) error { return nil }
func (m *memDB) GetUtmLink(context.Context, string, string) (*database.UtmLink, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *memDB) GetUtmLinkByID(context.Context, string) (*database.UtmLink, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *memDB) ListUtmLinksByAccount(context.Context, string) ([]*database.UtmLink, error) {
	return nil, nil
}
func (m *memDB) ListUtmLinksByCampaign(context.Context, string, string) ([]*database.UtmLink, error) {
	return nil, nil
}
func (m *memDB) UpdateUtmLink(context.Context, *database.UtmLink) error { return nil }
func (m *memDB) DeleteUtmLinksByCampaign(context.Context, string, string) error { return nil }
func (m *memDB) SetUtmLinksArchived(context.Context, string, string, string, bool) error {
	return nil
}
func (m *memDB) CreateLandingPage(context.Context, *database.CampaignLandingPage) error { return nil }
func (m *memDB) ListLandingPagesByAccount(context.Context, string) ([]*database.CampaignLandingPage, error) {
	return nil, nil
}
func (m *memDB) ListLandingPagesByCampaign(context.Context, string, string) ([]*database.CampaignLandingPage, error) {
	return nil, nil
}
func (m *memDB) DeleteLandingPagesByCampaign(context.Context, string, string) error { return nil }
func (m *memDB) SetLandingPagesArchived(context.Context, string, string, string, bool) error {
	return nil
}
