package services

import (
	"testing"

	"github.com/interpark/realty-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoritesFixture(t *testing.T) (*FavoritesService, *models.User, *models.Property) {
	t.Helper()
	db := newTestDB(t)
	accounts := &AccountsService{DB: db}
	properties := &PropertiesService{DB: db}
	svc := &FavoritesService{DB: db, Accounts: accounts, Properties: properties}

	user, err := accounts.Register(testRegisterInfo(models.RoleClient))
	require.NoError(t, err)
	property, err := properties.Add(testPropertyInfo("A1"))
	require.NoError(t, err)
	return svc, user, property
}

func TestFavoritesAddAndList(t *testing.T) {
	svc, user, property := newFavoritesFixture(t)

	favorite, err := svc.Add(user.ID, property.ID)
	require.NoError(t, err)
	assert.Equal(t, property.ID, favorite.PropertyID)

	favorites, err := svc.ListForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	require.NotNil(t, favorites[0].Property)
	assert.Equal(t, property.Title, favorites[0].Property.Title)
}

func TestFavoritesAddUnknownProperty(t *testing.T) {
	svc, user, _ := newFavoritesFixture(t)

	_, err := svc.Add(user.ID, "no-such-property")
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestFavoritesRequireClientProfile(t *testing.T) {
	svc, _, property := newFavoritesFixture(t)

	// An agent account has no client profile to hang favorites off
	agent, err := svc.Accounts.Register(&RegisterInfo{
		Username: "agent",
		Email:    "agent@example.com",
		Password: "hunter22",
		Role:     models.RoleAgentLandlord,
	})
	require.NoError(t, err)

	_, err = svc.Add(agent.ID, property.ID)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestFavoritesRemove(t *testing.T) {
	svc, user, property := newFavoritesFixture(t)

	_, err := svc.Add(user.ID, property.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(user.ID, property.ID))

	favorites, err := svc.ListForUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	// Removing again is a not-found
	assert.ErrorIs(t, svc.Remove(user.ID, property.ID), ErrFavoriteNotFound)
}
