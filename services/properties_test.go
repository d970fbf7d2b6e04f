package services

import (
	"encoding/json"
	"testing"

	"github.com/interpark/realty-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPropertyInfo(agentID string) *PropertyInfo {
	return &PropertyInfo{
		Title:           "Two-bed apartment",
		Location:        "Nairobi",
		Type:            "Apartment",
		Price:           "45000",
		Description:     "Bright two-bedroom near the park",
		NearbyPlaces:    []string{"school", "mall"},
		Purpose:         "rent",
		AgentLandlordID: agentID,
		Images:          []string{"/uploads/propertypic/a.jpg"},
	}
}

func TestPropertyAdd(t *testing.T) {
	svc := &PropertiesService{DB: newTestDB(t)}

	property, err := svc.Add(testPropertyInfo("A1"))
	require.NoError(t, err)
	assert.NotEmpty(t, property.ID)
	assert.Equal(t, 45000.0, property.Price)
	assert.Equal(t, models.PurposeRent, property.Purpose)

	// The JSON columns round-trip as string slices
	var nearby []string
	require.NoError(t, json.Unmarshal(property.NearbyPlaces, &nearby))
	assert.Equal(t, []string{"school", "mall"}, nearby)
}

func TestPropertyAddValidation(t *testing.T) {
	svc := &PropertiesService{DB: newTestDB(t)}

	info := testPropertyInfo("A1")
	info.Images = nil
	_, err := svc.Add(info)
	assert.True(t, IsValidation(err))

	info = testPropertyInfo("A1")
	info.Price = "a lot"
	_, err = svc.Add(info)
	assert.True(t, IsValidation(err))

	info = testPropertyInfo("A1")
	info.Title = ""
	_, err = svc.Add(info)
	assert.True(t, IsValidation(err))
}

func TestPropertyPurposeNormalization(t *testing.T) {
	svc := &PropertiesService{DB: newTestDB(t)}

	info := testPropertyInfo("A1")
	info.Purpose = "Buy"
	property, err := svc.Add(info)
	require.NoError(t, err)
	assert.Equal(t, models.PurposeBuy, property.Purpose)

	// Anything that isn't BUY falls back to RENT
	info = testPropertyInfo("A2")
	info.Purpose = "lease"
	property, err = svc.Add(info)
	require.NoError(t, err)
	assert.Equal(t, models.PurposeRent, property.Purpose)
}

func TestPropertyListByAgent(t *testing.T) {
	svc := &PropertiesService{DB: newTestDB(t)}

	_, err := svc.Add(testPropertyInfo("A1"))
	require.NoError(t, err)
	_, err = svc.Add(testPropertyInfo("A1"))
	require.NoError(t, err)
	_, err = svc.Add(testPropertyInfo("A2"))
	require.NoError(t, err)

	mine, err := svc.ListByAgent("A1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := svc.ListByAgent("A3")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = svc.ListByAgent("")
	assert.True(t, IsValidation(err))
}
