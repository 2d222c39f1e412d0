package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/request_models"
	"tripweaver/pkg/utils"
)

type fakeSavedItineraryRepo struct {
	byID      map[string]*db_models.SavedItinerary
	published map[string]bool
	deleted   []string
	upvoted   []string
}

func newFakeSavedItineraryRepo() *fakeSavedItineraryRepo {
	return &fakeSavedItineraryRepo{
		byID:      make(map[string]*db_models.SavedItinerary),
		published: make(map[string]bool),
	}
}

func (f *fakeSavedItineraryRepo) Insert(ctx context.Context, itinerary *db_models.SavedItinerary) error {
	if itinerary.ID == uuid.Nil {
		itinerary.ID = uuid.New()
	}
	f.byID[itinerary.ID.String()] = itinerary
	return nil
}

func (f *fakeSavedItineraryRepo) ListByAccount(ctx context.Context, accountID string) ([]db_models.SavedItinerary, error) {
	var out []db_models.SavedItinerary
	for _, itinerary := range f.byID {
		if itinerary.AccountID.String() == accountID {
			out = append(out, *itinerary)
		}
	}
	return out, nil
}

func (f *fakeSavedItineraryRepo) GetByID(ctx context.Context, id string) (*db_models.SavedItinerary, error) {
	return f.byID[id], nil
}

func (f *fakeSavedItineraryRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

func (f *fakeSavedItineraryRepo) SetPublished(ctx context.Context, id string, published bool) error {
	f.published[id] = published
	if itinerary, ok := f.byID[id]; ok {
		itinerary.Published = published
	}
	return nil
}

func (f *fakeSavedItineraryRepo) ListPublished(ctx context.Context) ([]db_models.SavedItinerary, error) {
	var out []db_models.SavedItinerary
	for _, itinerary := range f.byID {
		if itinerary.Published {
			out = append(out, *itinerary)
		}
	}
	return out, nil
}

func (f *fakeSavedItineraryRepo) IncrementUpvotes(ctx context.Context, id string) error {
	f.upvoted = append(f.upvoted, id)
	if itinerary, ok := f.byID[id]; ok && itinerary.Published {
		itinerary.Upvotes++
	}
	return nil
}

func TestSaveItineraryFromGeneratedText(t *testing.T) {
	repo := newFakeSavedItineraryRepo()
	service := NewSavedItineraryService(repo)
	owner := uuid.New()

	content, err := json.Marshal(sampleItinerary(2))
	require.NoError(t, err)

	resp, err := service.SaveItinerary(context.Background(), owner, request_models.SaveItineraryRequest{
		Title:   "Paris weekend",
		City:    "Paris",
		Days:    2,
		Content: content,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Days, 2)

	stored := repo.byID[resp.ID]
	require.NotNil(t, stored)
	assert.Equal(t, owner, stored.AccountID)
	// The stored content is the normalized document, not the raw text.
	var days []interface{}
	require.NoError(t, json.Unmarshal([]byte(stored.Content), &days))
	assert.Len(t, days, 2)
}

func TestSaveItineraryFromStructuredDays(t *testing.T) {
	service := NewSavedItineraryService(newFakeSavedItineraryRepo())

	content := []byte(`[{"day_number":1,"sections":[{"title":"Morning","activities":[{"name":"Castle"}]}]}]`)
	resp, err := service.SaveItinerary(context.Background(), uuid.New(), request_models.SaveItineraryRequest{
		Title:   "Castle day",
		Content: content,
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, "Castle", resp.Days[0].Sections[0].Activities[0].Name)
}

func TestSaveItineraryRejectsUnknownShape(t *testing.T) {
	service := NewSavedItineraryService(newFakeSavedItineraryRepo())

	_, err := service.SaveItinerary(context.Background(), uuid.New(), request_models.SaveItineraryRequest{
		Title:   "Bad",
		Content: []byte(`42`),
	})
	assert.ErrorIs(t, err, utils.ErrUnrecognizedItineraryShape)
}

func TestGetItineraryOwnership(t *testing.T) {
	repo := newFakeSavedItineraryRepo()
	service := NewSavedItineraryService(repo)
	owner := uuid.New()

	content, _ := json.Marshal(sampleItinerary(1))
	resp, err := service.SaveItinerary(context.Background(), owner, request_models.SaveItineraryRequest{
		Title:   "Mine",
		City:    "Paris",
		Days:    1,
		Content: content,
	})
	require.NoError(t, err)

	_, err = service.GetItinerary(context.Background(), uuid.New(), resp.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	got, err := service.GetItinerary(context.Background(), owner, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.Title)

	// Publishing opens it to everyone.
	require.NoError(t, service.SetPublished(context.Background(), owner, resp.ID, true))
	_, err = service.GetItinerary(context.Background(), uuid.New(), resp.ID)
	assert.NoError(t, err)
}

func TestDeleteItineraryRequiresOwner(t *testing.T) {
	repo := newFakeSavedItineraryRepo()
	service := NewSavedItineraryService(repo)
	owner := uuid.New()

	content, _ := json.Marshal(sampleItinerary(1))
	resp, err := service.SaveItinerary(context.Background(), owner, request_models.SaveItineraryRequest{
		Title:   "Mine",
		Content: content,
		Days:    1,
	})
	require.NoError(t, err)

	err = service.DeleteItinerary(context.Background(), uuid.New(), resp.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)
	assert.Empty(t, repo.deleted)

	require.NoError(t, service.DeleteItinerary(context.Background(), owner, resp.ID))
	assert.Equal(t, []string{resp.ID}, repo.deleted)
}

func TestUpvoteOnlyPublished(t *testing.T) {
	repo := newFakeSavedItineraryRepo()
	service := NewSavedItineraryService(repo)
	owner := uuid.New()

	content, _ := json.Marshal(sampleItinerary(1))
	resp, err := service.SaveItinerary(context.Background(), owner, request_models.SaveItineraryRequest{
		Title:   "Mine",
		Content: content,
		Days:    1,
	})
	require.NoError(t, err)

	err = service.Upvote(context.Background(), resp.ID)
	assert.ErrorIs(t, err, utils.ErrItineraryNotFound)

	require.NoError(t, service.SetPublished(context.Background(), owner, resp.ID, true))
	require.NoError(t, service.Upvote(context.Background(), resp.ID))
	assert.Equal(t, []string{resp.ID}, repo.upvoted)
}

func TestUpvoteUnknownItinerary(t *testing.T) {
	service := NewSavedItineraryService(newFakeSavedItineraryRepo())
	err := service.Upvote(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrItineraryNotFound)
}
